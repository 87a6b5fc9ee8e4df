package roadmap

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

func newEntry(id string, weeks int, created time.Time) *types.Entry {
	plan := types.Plan{RoadmapID: id, Title: "Plan " + id, Topic: types.TopicWeb}
	for i := 1; i <= weeks; i++ {
		plan.WeeklyPlan = append(plan.WeeklyPlan, types.WeekPlan{Week: i})
	}
	return &types.Entry{Roadmap: plan, CreatedAt: created}
}

func TestRegistryGetUnknown(t *testing.T) {
	repo := NewRegistryRepo(logger.NewNop())
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if _, err := repo.Update(context.Background(), "missing", func(*types.Entry) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update err=%v, want ErrNotFound", err)
	}
}

func TestRegistryInsertRejectsMissingID(t *testing.T) {
	repo := NewRegistryRepo(logger.NewNop())
	if err := repo.Insert(context.Background(), &types.Entry{}); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestRegistryInsertKeepsExistingEntry(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistryRepo(logger.NewNop())
	if err := repo.Insert(ctx, newEntry("abc12345", 4, time.Now())); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := repo.Update(ctx, "abc12345", func(e *types.Entry) error {
		e.Progress.CompletedWeeks = []int{1}
		return nil
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	err := repo.Insert(ctx, newEntry("abc12345", 2, time.Now()))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err=%v want ErrDuplicate", err)
	}
	got, _ := repo.Get(ctx, "abc12345")
	if len(got.Roadmap.WeeklyPlan) != 4 || len(got.Progress.CompletedWeeks) != 1 || repo.Len() != 1 {
		t.Fatalf("stored entry replaced: weeks=%d completed=%v len=%d", len(got.Roadmap.WeeklyPlan), got.Progress.CompletedWeeks, repo.Len())
	}
}

func TestRegistryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistryRepo(logger.NewNop())
	if err := repo.Insert(ctx, newEntry("abc12345", 4, time.Now())); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got, err := repo.Get(ctx, "abc12345")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.Progress.CompletedWeeks = append(got.Progress.CompletedWeeks, 1)
	got.Roadmap.WeeklyPlan[0].Theme = "mutated"

	again, _ := repo.Get(ctx, "abc12345")
	if len(again.Progress.CompletedWeeks) != 0 || again.Roadmap.WeeklyPlan[0].Theme != "" {
		t.Fatalf("stored entry changed through a returned copy: %+v", again)
	}
}

func TestRegistryUpdateIsSerialized(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistryRepo(logger.NewNop())
	_ = repo.Insert(ctx, newEntry("abc12345", 4, time.Now()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Update(ctx, "abc12345", func(e *types.Entry) error {
				e.Progress.CompletedProjects = append(e.Progress.CompletedProjects, 1)
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := repo.Get(ctx, "abc12345")
	if len(got.Progress.CompletedProjects) != 50 {
		t.Fatalf("completed_projects=%d, want 50", len(got.Progress.CompletedProjects))
	}
}

func TestRegistryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistryRepo(logger.NewNop())
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_ = repo.Insert(ctx, newEntry("old00000", 2, base))
	_ = repo.Insert(ctx, newEntry("new00000", 3, base.Add(time.Hour)))

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || repo.Len() != 2 {
		t.Fatalf("len=%d", len(list))
	}
	if list[0].RoadmapID != "new00000" || list[0].TotalWeeks != 3 {
		t.Fatalf("unexpected order: %+v", list)
	}
}

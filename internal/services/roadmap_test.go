package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/yungbote/roadmap-backend/internal/data/repos"
	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	roadmapmod "github.com/yungbote/roadmap-backend/internal/modules/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/apierr"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/platform/openai"
	"github.com/yungbote/roadmap-backend/internal/realtime"
)

type recordingBus struct {
	mu     sync.Mutex
	events []realtime.Event
	err    error
}

func (b *recordingBus) Publish(ctx context.Context, evt realtime.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return b.err
}

func (b *recordingBus) StartForwarder(ctx context.Context, onEvent func(evt realtime.Event)) error {
	return nil
}

func (b *recordingBus) Close() error { return nil }

func (b *recordingBus) eventTypes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

type testServices struct {
	roadmaps RoadmapService
	progress ProgressService
	registry repos.RoadmapRegistryRepo
	events   *recordingBus
}

func newTestServices(t *testing.T, opts roadmapmod.ProgressOptions) testServices {
	t.Helper()
	log := logger.NewNop()
	client, err := openai.NewClient(log, openai.Config{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	catalog := roadmapmod.DefaultCatalog()
	gen := roadmapmod.NewGenerator(log, roadmapmod.NewStructureProvider(log, client, 2, time.Second), catalog)
	registry := repos.NewRoadmapRegistryRepo(log)
	events := &recordingBus{}
	return testServices{
		roadmaps: NewRoadmapService(log, gen, catalog, registry, events),
		progress: NewProgressService(log, registry, events, opts),
		registry: registry,
		events:   events,
	}
}

var pythonRequest = types.LearningGoalRequest{
	Goal:           "Learn Python",
	Proficiency:    "beginner",
	TimeCommitment: "10 hours/week",
	LearningStyle:  []string{"hands-on"},
}

func TestRoadmapServiceGenerateStoresPlan(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, roadmapmod.ProgressOptions{})

	plan, err := s.roadmaps.Generate(ctx, pythonRequest)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.Topic != types.TopicPython || plan.Source != types.SourceDefault || plan.TotalWeeks() != 4 {
		t.Fatalf("topic=%s source=%s weeks=%d", plan.Topic, plan.Source, plan.TotalWeeks())
	}
	if s.registry.Len() != 1 {
		t.Fatalf("registry len=%d", s.registry.Len())
	}

	view, err := s.roadmaps.Get(ctx, plan.RoadmapID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.Roadmap.RoadmapID != plan.RoadmapID || view.Stats.TotalWeeks != 4 || view.Stats.ProgressPercentage != 0 {
		t.Fatalf("view=%+v", view.Stats)
	}
	if got := s.events.eventTypes(); len(got) != 1 || got[0] != realtime.EventRoadmapGenerated {
		t.Fatalf("events=%v", got)
	}
}

func TestRoadmapServiceSanitizesGoal(t *testing.T) {
	s := newTestServices(t, roadmapmod.ProgressOptions{})

	req := pythonRequest
	req.Goal = "<b>Learn</b> Python<script>alert(1)</script>"
	plan, err := s.roadmaps.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.Title != "Learn Learn Python - beginner Roadmap" {
		t.Fatalf("title=%q", plan.Title)
	}

	req.Goal = "<p></p>"
	plan, err = s.roadmaps.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("markup-only goal: %v", err)
	}
	if plan.Topic != types.TopicGeneral || plan.TotalWeeks() != 4 {
		t.Fatalf("topic=%s weeks=%d", plan.Topic, plan.TotalWeeks())
	}
}

func TestRoadmapServiceClassifiesGoalAsSubmitted(t *testing.T) {
	s := newTestServices(t, roadmapmod.ProgressOptions{})

	tests := []struct {
		goal  string
		topic types.Topic
	}{
		{"Learn <python> scripting", types.TopicPython},
		{"<HTML> and <css>", types.TopicWeb},
		{"<data>", types.TopicData},
		{"<b>gardening</b>", types.TopicGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			req := pythonRequest
			req.Goal = tt.goal
			plan, err := s.roadmaps.Generate(context.Background(), req)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if plan.Topic != tt.topic {
				t.Fatalf("topic=%s want %s", plan.Topic, tt.topic)
			}
			if strings.ContainsAny(plan.Title, "<>") {
				t.Fatalf("title kept markup: %q", plan.Title)
			}
		})
	}
}

func TestRoadmapServiceRetriesTakenID(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, roadmapmod.ProgressOptions{})

	first, err := s.roadmaps.Generate(ctx, pythonRequest)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := s.progress.Update(ctx, ProgressInput{RoadmapID: first.RoadmapID, Week: 1, ProjectDone: true}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	svc := s.roadmaps.(*roadmapService)
	ids := []string{first.RoadmapID, "fresh001"}
	svc.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	clash := *first
	clash.Title = "clash"
	if err := svc.store(ctx, &clash); err != nil {
		t.Fatalf("store: %v", err)
	}
	if clash.RoadmapID != "fresh001" || s.registry.Len() != 2 {
		t.Fatalf("id=%q len=%d", clash.RoadmapID, s.registry.Len())
	}

	kept, err := s.roadmaps.Get(ctx, first.RoadmapID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if kept.Roadmap.Title == "clash" || kept.Stats.CompletedWeeks != 1 {
		t.Fatalf("original entry replaced: title=%q completed=%d", kept.Roadmap.Title, kept.Stats.CompletedWeeks)
	}
}

func TestRoadmapServiceStoreGivesUp(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, roadmapmod.ProgressOptions{})
	first, err := s.roadmaps.Generate(ctx, pythonRequest)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	svc := s.roadmaps.(*roadmapService)
	svc.newID = func() string { return first.RoadmapID }

	clash := *first
	if err := svc.store(ctx, &clash); !errors.Is(err, repos.ErrDuplicate) {
		t.Fatalf("err=%v want ErrDuplicate", err)
	}
}

func TestRoadmapServiceUnknownID(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, roadmapmod.ProgressOptions{})

	for name, call := range map[string]func() error{
		"get": func() error {
			_, err := s.roadmaps.Get(ctx, "missing")
			return err
		},
		"timeline": func() error {
			_, err := s.roadmaps.Timeline(ctx, "missing")
			return err
		},
		"progress": func() error {
			_, err := s.progress.Update(ctx, ProgressInput{RoadmapID: "missing", Week: 1})
			return err
		},
	} {
		err := call()
		ae, ok := apierr.As(err)
		if !ok || ae.Status != http.StatusNotFound || ae.Code != "roadmap_not_found" {
			t.Fatalf("%s: expected not found, got %v", name, err)
		}
		if !errors.Is(err, repos.ErrNotFound) {
			t.Fatalf("%s: expected wrapped ErrNotFound", name)
		}
	}
}

func TestRoadmapServiceListAndCatalog(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t, roadmapmod.ProgressOptions{})

	if _, err := s.roadmaps.Generate(ctx, pythonRequest); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	web := pythonRequest
	web.Goal = "Build a website with React"
	if _, err := s.roadmaps.Generate(ctx, web); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	list, err := s.roadmaps.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("list=%v err=%v", list, err)
	}

	cat, err := s.roadmaps.Catalog(types.TopicWeb)
	if err != nil || cat.Topic != types.TopicWeb || len(cat.Resources) == 0 || len(cat.Projects) == 0 {
		t.Fatalf("catalog=%+v err=%v", cat, err)
	}
	if _, err := s.roadmaps.Catalog(types.TopicGeneral); err != nil {
		t.Fatalf("general topic: %v", err)
	}
	_, err = s.roadmaps.Catalog(types.Topic("cooking"))
	if ae, ok := apierr.As(err); !ok || ae.Code != "topic_not_found" {
		t.Fatalf("expected topic_not_found, got %v", err)
	}
}

func TestRoadmapServicePublishFailureIsIgnored(t *testing.T) {
	s := newTestServices(t, roadmapmod.ProgressOptions{})
	s.events.err = errors.New("broker down")

	if _, err := s.roadmaps.Generate(context.Background(), pythonRequest); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

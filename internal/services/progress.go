package services

import (
	"context"
	"errors"
	"time"

	"github.com/yungbote/roadmap-backend/internal/data/repos"
	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	roadmapmod "github.com/yungbote/roadmap-backend/internal/modules/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/ctxutil"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/platform/sanitize"
	"github.com/yungbote/roadmap-backend/internal/realtime"
	"github.com/yungbote/roadmap-backend/internal/realtime/bus"
)

type ProgressInput struct {
	RoadmapID   string
	Week        int
	ProjectDone bool
	Notes       string
}

type ProgressResult struct {
	Status             string  `json:"status"`
	ProgressPercentage float64 `json:"progress_percentage"`
	CompletedWeeks     []int   `json:"completed_weeks"`
	TotalWeeks         int     `json:"total_weeks"`
}

type ProgressService interface {
	Update(ctx context.Context, in ProgressInput) (*ProgressResult, error)
}

type progressService struct {
	log      *logger.Logger
	registry repos.RoadmapRegistryRepo
	events   bus.Bus
	opts     roadmapmod.ProgressOptions
	now      func() time.Time
}

func NewProgressService(
	baseLog *logger.Logger,
	registry repos.RoadmapRegistryRepo,
	events bus.Bus,
	opts roadmapmod.ProgressOptions,
) ProgressService {
	if events == nil {
		events = bus.NoopBus{}
	}
	return &progressService{
		log:      baseLog.With("service", "ProgressService"),
		registry: registry,
		events:   events,
		opts:     opts,
		now:      time.Now,
	}
}

func (s *progressService) Update(ctx context.Context, in ProgressInput) (*ProgressResult, error) {
	update := roadmapmod.ProgressUpdate{
		Week:        in.Week,
		ProjectDone: in.ProjectDone,
		Note:        sanitize.Text(in.Notes),
	}
	entry, err := s.registry.Update(ctx, in.RoadmapID, func(e *types.Entry) error {
		roadmapmod.ApplyProgress(&e.Progress, update, s.opts, s.now())
		return nil
	})
	if errors.Is(err, repos.ErrNotFound) {
		return nil, errRoadmapNotFound(err)
	}
	if err != nil {
		return nil, err
	}

	total := entry.Roadmap.TotalWeeks()
	res := &ProgressResult{
		Status:             "success",
		ProgressPercentage: roadmapmod.Percentage(len(entry.Progress.CompletedWeeks), total),
		CompletedWeeks:     entry.Progress.CompletedWeeks,
		TotalWeeks:         total,
	}
	s.log.Info("progress updated", append([]any{
		"roadmap_id", in.RoadmapID,
		"week", in.Week,
		"project_done", in.ProjectDone,
		"progress_percentage", res.ProgressPercentage,
	}, ctxutil.LogFields(ctx)...)...)
	if err := s.events.Publish(ctx, realtime.Event{
		Type:      realtime.EventProgressUpdated,
		RoadmapID: in.RoadmapID,
		Data: map[string]any{
			"week":                in.Week,
			"project_done":        in.ProjectDone,
			"progress_percentage": res.ProgressPercentage,
		},
		At: s.now(),
	}); err != nil {
		s.log.Warn("event publish failed (ignored)", "roadmap_id", in.RoadmapID, "error", err)
	}
	return res, nil
}

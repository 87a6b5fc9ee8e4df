package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yungbote/roadmap-backend/internal/data/repos"
	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	roadmapmod "github.com/yungbote/roadmap-backend/internal/modules/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/apierr"
	"github.com/yungbote/roadmap-backend/internal/platform/ctxutil"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/platform/sanitize"
	"github.com/yungbote/roadmap-backend/internal/realtime"
	"github.com/yungbote/roadmap-backend/internal/realtime/bus"
)

// RoadmapView is a stored entry plus computed progress stats.
type RoadmapView struct {
	types.Entry
	Stats roadmapmod.ProgressStats `json:"stats"`
}

type CatalogView struct {
	Topic     types.Topic             `json:"topic"`
	Resources []types.Resource        `json:"resources"`
	Projects  []types.ProjectTemplate `json:"projects"`
}

type RoadmapService interface {
	Generate(ctx context.Context, req types.LearningGoalRequest) (*types.Plan, error)
	Get(ctx context.Context, roadmapID string) (*RoadmapView, error)
	Timeline(ctx context.Context, roadmapID string) (*roadmapmod.ProgressTimeline, error)
	List(ctx context.Context) ([]repos.RoadmapSummary, error)
	Catalog(topic types.Topic) (*CatalogView, error)
}

type roadmapService struct {
	log       *logger.Logger
	generator *roadmapmod.Generator
	catalog   *roadmapmod.Catalog
	registry  repos.RoadmapRegistryRepo
	events    bus.Bus
	newID     func() string
}

const maxInsertAttempts = 5

func NewRoadmapService(
	baseLog *logger.Logger,
	generator *roadmapmod.Generator,
	catalog *roadmapmod.Catalog,
	registry repos.RoadmapRegistryRepo,
	events bus.Bus,
) RoadmapService {
	if events == nil {
		events = bus.NoopBus{}
	}
	return &roadmapService{
		log:       baseLog.With("service", "RoadmapService"),
		generator: generator,
		catalog:   catalog,
		registry:  registry,
		events:    events,
		newID:     roadmapmod.NewRoadmapID,
	}
}

// Generate classifies the goal as submitted, then strips markup from the
// request before it reaches prompts, titles and the registry.
func (s *roadmapService) Generate(ctx context.Context, req types.LearningGoalRequest) (*types.Plan, error) {
	topic := roadmapmod.ClassifyTopic(req.Goal)
	req = cleanRequest(req)

	res := s.generator.GenerateForTopic(ctx, req, topic)
	plan := res.Plan

	if err := s.store(ctx, &plan); err != nil {
		return nil, fmt.Errorf("store roadmap: %w", err)
	}
	fields := []any{
		"roadmap_id", plan.RoadmapID,
		"topic", plan.Topic,
		"source", plan.Source,
		"weeks", plan.TotalWeeks(),
	}
	if res.Err != nil {
		fields = append(fields, "generation_error", res.Err)
	}
	s.log.Info("roadmap generated", append(fields, ctxutil.LogFields(ctx)...)...)
	s.publish(ctx, realtime.Event{
		Type:      realtime.EventRoadmapGenerated,
		RoadmapID: plan.RoadmapID,
		Data:      map[string]any{"topic": plan.Topic, "source": plan.Source, "total_weeks": plan.TotalWeeks()},
		At:        time.Now(),
	})
	return &plan, nil
}

func (s *roadmapService) Get(ctx context.Context, roadmapID string) (*RoadmapView, error) {
	entry, err := s.lookup(ctx, roadmapID)
	if err != nil {
		return nil, err
	}
	return &RoadmapView{Entry: *entry, Stats: roadmapmod.Stats(entry.Roadmap, entry.Progress)}, nil
}

func (s *roadmapService) Timeline(ctx context.Context, roadmapID string) (*roadmapmod.ProgressTimeline, error) {
	entry, err := s.lookup(ctx, roadmapID)
	if err != nil {
		return nil, err
	}
	view := roadmapmod.BuildProgressTimeline(entry.Roadmap, entry.Progress)
	return &view, nil
}

func (s *roadmapService) List(ctx context.Context) ([]repos.RoadmapSummary, error) {
	return s.registry.List(ctx)
}

// Catalog serves any topic the catalog carries plus "general", which shares
// the python lists.
func (s *roadmapService) Catalog(topic types.Topic) (*CatalogView, error) {
	if !s.knownTopic(topic) {
		return nil, apierr.NotFound("topic_not_found", fmt.Errorf("unknown topic %q", topic))
	}
	return &CatalogView{
		Topic:     topic,
		Resources: s.catalog.Resources(topic),
		Projects:  s.catalog.Projects(topic),
	}, nil
}

func (s *roadmapService) knownTopic(topic types.Topic) bool {
	if topic == types.TopicGeneral {
		return true
	}
	for _, t := range s.catalog.Topics() {
		if t == topic {
			return true
		}
	}
	return false
}

func (s *roadmapService) lookup(ctx context.Context, roadmapID string) (*types.Entry, error) {
	entry, err := s.registry.Get(ctx, roadmapID)
	if errors.Is(err, repos.ErrNotFound) {
		return nil, errRoadmapNotFound(err)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// store inserts plan, drawing a new id when the generated one is already
// taken. plan.RoadmapID reflects the id it was stored under.
func (s *roadmapService) store(ctx context.Context, plan *types.Plan) error {
	var err error
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		if attempt > 0 {
			prev := plan.RoadmapID
			plan.RoadmapID = s.newID()
			s.log.Warn("roadmap id collision, retrying", "roadmap_id", prev, "new_roadmap_id", plan.RoadmapID)
		}
		err = s.registry.Insert(ctx, &types.Entry{Roadmap: *plan, CreatedAt: plan.GeneratedAt})
		if !errors.Is(err, repos.ErrDuplicate) {
			return err
		}
	}
	return err
}

func (s *roadmapService) publish(ctx context.Context, evt realtime.Event) {
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warn("event publish failed (ignored)", "type", evt.Type, "roadmap_id", evt.RoadmapID, "error", err)
	}
}

func errRoadmapNotFound(err error) error {
	return apierr.NotFound("roadmap_not_found", err)
}

func cleanRequest(req types.LearningGoalRequest) types.LearningGoalRequest {
	req.Goal = sanitize.Text(req.Goal)
	req.Proficiency = sanitize.Text(req.Proficiency)
	req.TimeCommitment = sanitize.Text(req.TimeCommitment)
	req.SpecificInterests = sanitize.Text(req.SpecificInterests)
	req.Challenges = sanitize.Text(req.Challenges)
	styles := make([]string, 0, len(req.LearningStyle))
	for _, st := range req.LearningStyle {
		styles = append(styles, sanitize.Text(st))
	}
	req.LearningStyle = styles
	return req
}

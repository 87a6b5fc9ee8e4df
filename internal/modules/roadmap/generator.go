package roadmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

var ErrEmptyPlan = errors.New("assembled plan has no weeks")

// GenerateResult carries the plan and how it was produced. Err is non-nil
// only when the workflow failed and Plan is the independent fallback plan.
type GenerateResult struct {
	Plan   types.Plan
	Source types.Source
	Err    error
}

type Generator struct {
	log      *logger.Logger
	provider StructureProvider
	catalog  *Catalog
	now      func() time.Time
	newID    func() string
}

func NewGenerator(log *logger.Logger, provider StructureProvider, catalog *Catalog) *Generator {
	return &Generator{
		log:      log.With("service", "RoadmapGenerator"),
		provider: provider,
		catalog:  catalog,
		now:      time.Now,
		newID:    NewRoadmapID,
	}
}

// NewRoadmapID returns a short identifier: the first 8 hex characters of a
// random UUID.
func NewRoadmapID() string {
	return uuid.New().String()[:8]
}

// Generate classifies req.Goal and always returns a usable plan.
func (g *Generator) Generate(ctx context.Context, req types.LearningGoalRequest) GenerateResult {
	return g.GenerateForTopic(ctx, req, ClassifyTopic(req.Goal))
}

// GenerateForTopic builds a plan for an already classified topic. Callers that
// rewrite the goal text before generation classify the text as submitted.
func (g *Generator) GenerateForTopic(ctx context.Context, req types.LearningGoalRequest, topic types.Topic) GenerateResult {
	ctx, span := otel.Tracer("roadmap").Start(ctx, "roadmap.generate")
	defer span.End()

	span.SetAttributes(attribute.String("roadmap.topic", string(topic)))

	plan, source, err := g.generate(ctx, req, topic)
	if err != nil {
		g.log.Error("roadmap generation failed, using fallback plan", "topic", topic, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fallback plan")
		plan = FallbackPlan(req, topic, g.catalog)
		source = types.SourceFallback
	}

	plan.RoadmapID = g.newID()
	plan.GeneratedAt = g.now()
	plan.Topic = topic
	plan.Source = source
	span.SetAttributes(attribute.String("roadmap.source", string(source)), attribute.Int("roadmap.weeks", plan.TotalWeeks()))
	return GenerateResult{Plan: plan, Source: source, Err: err}
}

// generate runs the primary workflow, converting panics from the provider or
// assembler into an error so the caller can pick the fallback explicitly.
func (g *Generator) generate(ctx context.Context, req types.LearningGoalRequest, topic types.Topic) (plan types.Plan, source types.Source, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected generation failure: %v", r)
		}
	}()

	res := g.provider.Structure(ctx, req)
	plan = Assemble(res.Structure, topic, g.catalog)
	if plan.TotalWeeks() == 0 {
		return types.Plan{}, "", ErrEmptyPlan
	}
	return plan, res.Source, nil
}

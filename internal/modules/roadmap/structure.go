package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/semaphore"

	types "github.com/yungbote/roadmap-backend/internal/domain/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/platform/openai"
)

// StructureResult is the outcome of asking for a plan skeleton. Err is set
// when the generation service could not be used and Structure holds the
// deterministic default instead.
type StructureResult struct {
	Structure types.Structure
	Source    types.Source
	Err       error
}

type StructureProvider interface {
	Structure(ctx context.Context, req types.LearningGoalRequest) StructureResult
}

var (
	ErrGenerationBusy     = errors.New("generation capacity exhausted")
	ErrMalformedStructure = errors.New("generation service returned a malformed structure")
)

type llmStructureProvider struct {
	log     *logger.Logger
	client  openai.Client
	sem     *semaphore.Weighted
	timeout time.Duration
}

// NewStructureProvider returns a provider backed by the chat-completion client.
// maxConcurrent bounds in-flight generation calls; timeout bounds each call
// including the wait for a slot.
func NewStructureProvider(log *logger.Logger, client openai.Client, maxConcurrent int, timeout time.Duration) StructureProvider {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &llmStructureProvider{
		log:     log.With("service", "StructureProvider"),
		client:  client,
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		timeout: timeout,
	}
}

func (p *llmStructureProvider) Structure(ctx context.Context, req types.LearningGoalRequest) StructureResult {
	ctx, span := otel.Tracer("roadmap").Start(ctx, "roadmap.structure")
	defer span.End()

	s, err := p.generate(ctx, req)
	if err != nil {
		span.SetAttributes(attribute.String("roadmap.structure_source", string(types.SourceDefault)))
		if errors.Is(err, openai.ErrMissingAPIKey) {
			p.log.Debug("no generation credential, using default structure")
		} else {
			p.log.Warn("generation service failed, using default structure", "error", err)
		}
		return StructureResult{Structure: DefaultStructure(req), Source: types.SourceDefault, Err: err}
	}
	span.SetAttributes(attribute.String("roadmap.structure_source", string(types.SourceAI)), attribute.Int("roadmap.weeks", s.Weeks()))
	return StructureResult{Structure: s, Source: types.SourceAI}
}

func (p *llmStructureProvider) generate(ctx context.Context, req types.LearningGoalRequest) (types.Structure, error) {
	if p.client == nil || !p.client.Configured() {
		return types.Structure{}, openai.ErrMissingAPIKey
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return types.Structure{}, fmt.Errorf("%w: %v", ErrGenerationBusy, err)
	}
	defer p.sem.Release(1)

	var s types.Structure
	if err := p.client.GenerateJSON(ctx, structureSystemPrompt, structureUserPrompt(req), &s); err != nil {
		return types.Structure{}, err
	}
	return normalizeStructure(s)
}

// normalizeStructure truncates the week lists to a common length and rejects
// skeletons that describe no weeks at all.
func normalizeStructure(s types.Structure) (types.Structure, error) {
	n := s.Weeks()
	if n == 0 {
		return types.Structure{}, ErrMalformedStructure
	}
	s.Title = strings.TrimSpace(s.Title)
	s.Overview = strings.TrimSpace(s.Overview)
	s.WeeklyThemes = s.WeeklyThemes[:n]
	s.WeeklyFocus = s.WeeklyFocus[:n]
	s.WeeklyObjectives = s.WeeklyObjectives[:n]
	return s, nil
}

const defaultStructureWeeks = 4

// DefaultStructure is the deterministic skeleton used whenever the generation
// service is unavailable. Only title and overview depend on the request.
func DefaultStructure(req types.LearningGoalRequest) types.Structure {
	return types.Structure{
		Title:    fmt.Sprintf("Learn %s - %s Roadmap", req.Goal, req.Proficiency),
		Overview: fmt.Sprintf("A %d-week journey to master %s through hands-on projects and real resources.", defaultStructureWeeks, req.Goal),
		WeeklyThemes: []string{
			"Foundation & Setup",
			"Core Concepts",
			"Advanced Techniques",
			"Real Projects",
		},
		WeeklyFocus: []string{
			"Learn basics and set up environment",
			"Master fundamental concepts",
			"Explore advanced features",
			"Build complete applications",
		},
		WeeklyObjectives: [][]string{
			{"Install tools", "Learn syntax", "First program"},
			{"Practice concepts", "Debug issues", "Small projects"},
			{"Advanced features", "Optimization", "Testing"},
			{"Portfolio project", "Deployment", "Documentation"},
		},
	}
}

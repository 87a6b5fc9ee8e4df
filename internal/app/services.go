package app

import (
	"fmt"

	roadmapmod "github.com/yungbote/roadmap-backend/internal/modules/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/services"
)

type Services struct {
	Roadmaps services.RoadmapService
	Progress services.ProgressService
	Renderer services.TimelineRenderer
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	catalog, err := roadmapmod.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return Services{}, fmt.Errorf("load catalog: %w", err)
	}
	provider := roadmapmod.NewStructureProvider(log, clients.Generation, cfg.GenerationMaxConcurrency, cfg.GenerationTimeout)
	generator := roadmapmod.NewGenerator(log, provider, catalog)

	renderer, err := services.NewTimelineRenderer(log, cfg.TimelineFont)
	if err != nil {
		return Services{}, fmt.Errorf("init timeline renderer: %w", err)
	}

	return Services{
		Roadmaps: services.NewRoadmapService(log, generator, catalog, reposet.Registry, clients.Events),
		Progress: services.NewProgressService(log, reposet.Registry, clients.Events, roadmapmod.ProgressOptions{
			DedupeProjects: cfg.DedupeProjects,
		}),
		Renderer: renderer,
	}, nil
}

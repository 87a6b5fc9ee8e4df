package app

import (
	"github.com/yungbote/roadmap-backend/internal/http"
	httpH "github.com/yungbote/roadmap-backend/internal/http/handlers"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Roadmap  *httpH.RoadmapHandler
	Progress *httpH.ProgressHandler
	Timeline *httpH.TimelineHandler
	Events   *httpH.EventsHandler
}

func wireHandlers(log *logger.Logger, cfg Config, clients Clients, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(cfg.Version),
		Roadmap:  httpH.NewRoadmapHandler(services.Roadmaps),
		Progress: httpH.NewProgressHandler(services.Progress),
		Timeline: httpH.NewTimelineHandler(services.Roadmaps, services.Renderer),
		Events:   httpH.NewEventsHandler(clients.Hub),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers) *http.Server {
	serviceName := ""
	if cfg.OtelEnabled {
		serviceName = cfg.OtelServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:             log,
		ServiceName:     serviceName,
		CORSOrigins:     cfg.CORSAllowOrigins,
		HealthHandler:   handlers.Health,
		RoadmapHandler:  handlers.Roadmap,
		ProgressHandler: handlers.Progress,
		TimelineHandler: handlers.Timeline,
		EventsHandler:   handlers.Events,
	})
}

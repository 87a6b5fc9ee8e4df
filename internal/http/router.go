package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/roadmap-backend/internal/http/handlers"
	httpMW "github.com/yungbote/roadmap-backend/internal/http/middleware"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	HealthHandler   *httpH.HealthHandler
	RoadmapHandler  *httpH.RoadmapHandler
	ProgressHandler *httpH.ProgressHandler
	TimelineHandler *httpH.TimelineHandler
	EventsHandler   *httpH.EventsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Roadmaps
	if cfg.RoadmapHandler != nil {
		r.POST("/generate-roadmap", cfg.RoadmapHandler.GenerateRoadmap)
		r.GET("/roadmap/:roadmap_id", cfg.RoadmapHandler.GetRoadmap)
		r.GET("/roadmaps", cfg.RoadmapHandler.ListRoadmaps)
		r.GET("/catalog/:topic", cfg.RoadmapHandler.GetCatalog)
	}

	// Progress
	if cfg.ProgressHandler != nil {
		r.POST("/update-progress", cfg.ProgressHandler.UpdateProgress)
	}

	// Timeline
	if cfg.TimelineHandler != nil {
		r.GET("/visual-timeline/:roadmap_id", cfg.TimelineHandler.GetTimeline)
		r.GET("/visual-timeline/:roadmap_id/image", cfg.TimelineHandler.GetTimelineImage)
	}

	// Realtime (SSE)
	if cfg.EventsHandler != nil {
		r.GET("/events", cfg.EventsHandler.Stream)
	}

	return r
}

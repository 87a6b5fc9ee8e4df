package repos

import (
	"github.com/yungbote/roadmap-backend/internal/data/repos/roadmap"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

type RoadmapRegistryRepo = roadmap.RegistryRepo
type RoadmapSummary = roadmap.Summary

var (
	ErrNotFound  = roadmap.ErrNotFound
	ErrDuplicate = roadmap.ErrDuplicate
)

func NewRoadmapRegistryRepo(log *logger.Logger) RoadmapRegistryRepo {
	return roadmap.NewRegistryRepo(log)
}

package app

import (
	"github.com/yungbote/roadmap-backend/internal/data/repos"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

type Repos struct {
	Registry repos.RoadmapRegistryRepo
}

func wireRepos(log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Registry: repos.NewRoadmapRegistryRepo(log),
	}
}

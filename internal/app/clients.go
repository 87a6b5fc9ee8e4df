package app

import (
	"fmt"

	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/platform/openai"
	"github.com/yungbote/roadmap-backend/internal/realtime"
	"github.com/yungbote/roadmap-backend/internal/realtime/bus"
)

type Clients struct {
	Generation openai.Client
	Events     bus.Bus
	// Hub feeds GET /events. With Redis configured it is filled by the bus
	// forwarder, otherwise LocalBus writes to it directly.
	Hub *realtime.Hub
	// Forward is true when events reach Hub through the broker.
	Forward bool
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	gen, err := openai.NewClient(log, openai.Config{
		BaseURL:     cfg.OpenRouterBaseURL,
		APIKey:      cfg.OpenRouterAPIKey,
		Model:       cfg.OpenRouterModel,
		Temperature: cfg.GenerationTemperature,
		Timeout:     cfg.GenerationTimeout,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init generation client: %w", err)
	}
	if !gen.Configured() {
		log.Warn("OPENROUTER_API_KEY not set; roadmaps will use the default structure")
	}

	hub := realtime.NewHub(log)
	if cfg.RedisAddr == "" {
		return Clients{Generation: gen, Events: bus.LocalBus{Hub: hub}, Hub: hub}, nil
	}
	rb, err := bus.NewRedisBus(log, bus.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Channel:  cfg.RedisChannel,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init redis bus: %w", err)
	}
	return Clients{Generation: gen, Events: rb, Hub: hub, Forward: true}, nil
}

func (c Clients) Close() {
	if c.Events != nil {
		_ = c.Events.Close()
	}
}

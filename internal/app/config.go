package app

import (
	"time"

	"github.com/yungbote/roadmap-backend/internal/platform/envutil"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/platform/openai"
	"github.com/yungbote/roadmap-backend/internal/realtime/bus"
)

type Config struct {
	Port    string
	LogMode string
	Version string

	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string

	GenerationTimeout        time.Duration
	GenerationMaxConcurrency int
	GenerationTemperature    float64

	DedupeProjects bool
	CatalogPath    string
	TimelineFont   string

	CORSAllowOrigins []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string

	OtelEnabled     bool
	OtelEndpoint    string
	OtelHeaders     string
	OtelInsecure    bool
	OtelSampleRatio float64
	OtelServiceName string
	Environment     string
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:    envutil.String("PORT", "8000"),
		LogMode: envutil.String("LOG_MODE", "development"),
		Version: envutil.String("APP_VERSION", "3.0"),

		OpenRouterAPIKey:  envutil.String("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: envutil.String("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:   envutil.String("OPENROUTER_MODEL", "meta-llama/llama-3.1-8b-instruct"),

		GenerationTimeout:        envutil.Seconds("GENERATION_TIMEOUT_SECONDS", 30*time.Second),
		GenerationMaxConcurrency: envutil.Int("GENERATION_MAX_CONCURRENCY", 4),
		GenerationTemperature:    envutil.Float("GENERATION_TEMPERATURE", openai.DefaultTemperature),

		DedupeProjects: envutil.Bool("PROGRESS_DEDUPE_PROJECTS", false),
		CatalogPath:    envutil.String("ROADMAP_CATALOG_PATH", ""),
		TimelineFont:   envutil.String("TIMELINE_FONT", ""),

		CORSAllowOrigins: envutil.List("CORS_ALLOW_ORIGINS", []string{"*"}),

		RedisAddr:     envutil.String("REDIS_ADDR", ""),
		RedisPassword: envutil.String("REDIS_PASSWORD", ""),
		RedisDB:       envutil.Int("REDIS_DB", 0),
		RedisChannel:  envutil.String("REDIS_CHANNEL", bus.DefaultRedisChannel),

		OtelEnabled:     envutil.Bool("OTEL_ENABLED", false),
		OtelEndpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OtelHeaders:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", ""),
		OtelInsecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
		OtelSampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1),
		OtelServiceName: envutil.String("OTEL_SERVICE_NAME", "roadmap-backend"),
		Environment:     envutil.String("APP_ENV", "development"),
	}
	if log != nil {
		log.Info("Config loaded",
			"port", cfg.Port,
			"model", cfg.OpenRouterModel,
			"generation_configured", cfg.OpenRouterAPIKey != "",
			"generation_timeout", cfg.GenerationTimeout.String(),
			"generation_max_concurrency", cfg.GenerationMaxConcurrency,
			"generation_temperature", cfg.GenerationTemperature,
			"dedupe_projects", cfg.DedupeProjects,
			"redis_enabled", cfg.RedisAddr != "",
			"otel_enabled", cfg.OtelEnabled,
		)
	}
	return cfg
}

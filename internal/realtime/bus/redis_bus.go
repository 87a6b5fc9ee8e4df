package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/realtime"
)

const (
	DefaultRedisChannel = "roadmap-events"

	redisDialTimeout  = 5 * time.Second
	redisPublishAfter = 2 * time.Second
	forwardBuffer     = 256
)

var errInvalidEvent = errors.New("event requires type and roadmap_id")

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// redisBus fans roadmap events out over a single pub/sub channel.
type redisBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewRedisBus(log *logger.Logger, cfg RedisConfig) (Bus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ch := strings.TrimSpace(cfg.Channel)
	if ch == "" {
		ch = DefaultRedisChannel
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: redisDialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return &redisBus{
		log:     log.With("service", "RedisEventBus", "channel", ch),
		rdb:     rdb,
		channel: ch,
	}, nil
}

// Publish encodes evt and sends it on the channel. A zero At is stamped with
// the current time.
func (b *redisBus) Publish(ctx context.Context, evt realtime.Event) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis event bus not initialized")
	}
	if evt.Type == "" || evt.RoadmapID == "" {
		return errInvalidEvent
	}
	if evt.At.IsZero() {
		evt.At = time.Now().UTC()
	}
	raw, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", evt.Type, err)
	}
	pctx, cancel := context.WithTimeout(ctx, redisPublishAfter)
	defer cancel()
	if err := b.rdb.Publish(pctx, b.channel, raw).Err(); err != nil {
		return fmt.Errorf("publish %s for %s: %w", evt.Type, evt.RoadmapID, err)
	}
	return nil
}

// StartForwarder subscribes to the channel and calls onEvent for every
// decodable roadmap event until ctx is cancelled.
func (b *redisBus) StartForwarder(ctx context.Context, onEvent func(evt realtime.Event)) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis event bus not initialized")
	}
	if onEvent == nil {
		return fmt.Errorf("onEvent callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}
	b.log.Info("Forwarding roadmap events")

	go func() {
		defer sub.Close()
		ch := sub.Channel(goredis.WithChannelSize(forwardBuffer))
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					b.log.Warn("redis subscription closed")
					return
				}
				evt, err := decodeEvent(m.Payload)
				if err != nil {
					b.log.Warn("bad redis event payload", "error", err)
					continue
				}
				onEvent(evt)
			}
		}
	}()
	return nil
}

func (b *redisBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}

func decodeEvent(payload string) (realtime.Event, error) {
	var evt realtime.Event
	if err := json.Unmarshal([]byte(payload), &evt); err != nil {
		return realtime.Event{}, err
	}
	if evt.Type == "" || evt.RoadmapID == "" {
		return realtime.Event{}, errInvalidEvent
	}
	return evt, nil
}

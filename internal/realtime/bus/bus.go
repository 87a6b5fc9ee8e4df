package bus

import (
	"context"

	"github.com/yungbote/roadmap-backend/internal/realtime"
)

type Bus interface {
	Publish(ctx context.Context, evt realtime.Event) error
	StartForwarder(ctx context.Context, onEvent func(evt realtime.Event)) error
	Close() error
}

// NoopBus drops every event. Used when no broker is configured.
type NoopBus struct{}

func (NoopBus) Publish(ctx context.Context, evt realtime.Event) error { return nil }

func (NoopBus) StartForwarder(ctx context.Context, onEvent func(evt realtime.Event)) error {
	return nil
}

func (NoopBus) Close() error { return nil }

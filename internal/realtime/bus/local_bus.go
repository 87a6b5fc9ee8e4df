package bus

import (
	"context"

	"github.com/yungbote/roadmap-backend/internal/realtime"
)

// LocalBus delivers events straight to the in-process hub. Used when no Redis
// broker is configured.
type LocalBus struct {
	Hub *realtime.Hub
}

func (b LocalBus) Publish(ctx context.Context, evt realtime.Event) error {
	if b.Hub != nil {
		b.Hub.Broadcast(evt)
	}
	return nil
}

func (b LocalBus) StartForwarder(ctx context.Context, onEvent func(evt realtime.Event)) error {
	return nil
}

func (b LocalBus) Close() error { return nil }

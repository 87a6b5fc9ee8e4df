package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/roadmap-backend/internal/app"
	"github.com/yungbote/roadmap-backend/internal/platform/logger"
	"github.com/yungbote/roadmap-backend/internal/realtime"
	"github.com/yungbote/roadmap-backend/internal/realtime/bus"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Print roadmap events published on the Redis channel",
	RunE:  runEvents,
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg := app.LoadConfig(nil)
	if cfg.RedisAddr == "" {
		return errors.New("REDIS_ADDR is not set")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := bus.NewRedisBus(logger.NewNop(), bus.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Channel:  cfg.RedisChannel,
	})
	if err != nil {
		return err
	}
	defer b.Close()

	out := cmd.OutOrStdout()
	err = b.StartForwarder(ctx, func(evt realtime.Event) {
		raw, err := json.Marshal(evt)
		if err != nil {
			return
		}
		fmt.Fprintln(out, string(raw))
	})
	if err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

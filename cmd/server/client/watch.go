package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/internal/broadcast"
	"github.com/KirkDiggler/rpg-quest/internal/redis"
)

var (
	redisAddr      string
	watchSessionID string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream the session channel from Redis",
	Long: `Print every snapshot and event the server publishes for a session. Only
works when the server runs with REDIS_ADDR.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "Redis address")
	watchCmd.Flags().StringVar(&watchSessionID, "session-id", "lobby", "Session to watch")
}

func runWatch(_ *cobra.Command, _ []string) error {
	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ready := func() {
		fmt.Printf("Watching session %s, Ctrl+C to stop\n", watchSessionID)
	}
	return broadcast.Listen(ctx, client, watchSessionID, ready, func(msg *broadcast.Message) error {
		if msg.Kind == broadcast.KindSnapshot {
			fmt.Printf("[%s] snapshot v%d %s\n", msg.SentAt.Format("15:04:05"), msg.Version, msg.Payload)
			return nil
		}
		fmt.Printf("[%s] %s %s\n", msg.SentAt.Format("15:04:05"), msg.Event, msg.Payload)
		return nil
	})
}

package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/redis"
)

// Listen delivers every message published on the session channel to handle
// until ctx is done or handle returns an error. ready, if not nil, is called
// once the subscription is confirmed.
func Listen(ctx context.Context, client redis.Client, sessionID string, ready func(), handle func(*Message) error) error {
	sub := client.Subscribe(ctx, Channel(sessionID))
	defer func() {
		if err := sub.Close(); err != nil {
			slog.Warn("failed to close subscription", "session_id", sessionID, "error", err)
		}
	}()

	if _, err := sub.Receive(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to subscribe")
	}
	if ready != nil {
		ready()
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-ch:
			if !ok {
				return nil
			}

			var msg Message
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				slog.Warn("dropping malformed message", "session_id", sessionID, "error", err)
				continue
			}
			if err := handle(&msg); err != nil {
				return err
			}
		}
	}
}

package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-quest/internal/redis"
)

// RepairReport lists the registry entries that disagree with each other
type RepairReport struct {
	SessionID string
	// Orphans are connected ids with no stored client data
	Orphans []string
	// Strays are stored client data with no connection entry
	Strays []string
	// Corrupted are stored client data that no longer decodes
	Corrupted []string
	Fixed     bool
}

// Clean reports whether nothing needed repairing
func (r *RepairReport) Clean() bool {
	return len(r.Orphans) == 0 && len(r.Strays) == 0 && len(r.Corrupted) == 0
}

// SessionsWithRegistry scans Redis for every session that has a client registry
func SessionsWithRegistry(ctx context.Context, client redisclient.Client) ([]string, error) {
	pattern := fmt.Sprintf(orderKeyFormat, "*")
	prefix, suffix, _ := strings.Cut(orderKeyFormat, "%s")

	var sessions []string
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		sessions = append(sessions, strings.TrimSuffix(strings.TrimPrefix(key, prefix), suffix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan sessions")
	}

	sort.Strings(sessions)
	return sessions, nil
}

// RepairRedis finds registry entries left half-written by a failed Add or an
// interrupted Remove. Unless dryRun is set, it deletes them so List and Get
// agree again.
func RepairRedis(ctx context.Context, cfg *Config, dryRun bool) (*RepairReport, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	orderKey := fmt.Sprintf(orderKeyFormat, cfg.SessionID)
	dataKey := fmt.Sprintf(dataKeyFormat, cfg.SessionID)

	ids, err := cfg.Client.ZRange(ctx, orderKey, 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list clients")
	}
	data, err := cfg.Client.HGetAll(ctx, dataKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load clients")
	}

	report := &RepairReport{SessionID: cfg.SessionID}
	connected := make(map[string]bool, len(ids))
	for _, id := range ids {
		connected[id] = true
		raw, ok := data[id]
		if !ok {
			report.Orphans = append(report.Orphans, id)
			continue
		}
		if !decodes(raw) {
			report.Corrupted = append(report.Corrupted, id)
		}
	}
	for id := range data {
		if !connected[id] {
			report.Strays = append(report.Strays, id)
		}
	}
	sort.Strings(report.Strays)

	if dryRun || report.Clean() {
		return report, nil
	}

	broken := append(append([]string{}, report.Orphans...), report.Corrupted...)
	_, err = cfg.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(broken) > 0 {
			members := make([]any, len(broken))
			for i, id := range broken {
				members[i] = id
			}
			pipe.ZRem(ctx, orderKey, members...)
		}
		if dead := append(append([]string{}, report.Strays...), report.Corrupted...); len(dead) > 0 {
			pipe.HDel(ctx, dataKey, dead...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to repair registry")
	}

	report.Fixed = true
	return report, nil
}

func decodes(raw string) bool {
	var c entities.Client
	return json.Unmarshal([]byte(raw), &c) == nil && c.ID != ""
}

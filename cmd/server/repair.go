package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-quest/internal/config"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-quest/internal/redis"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/clients"
)

var (
	repairAll    bool
	repairDryRun bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find and remove half-written client registry entries in Redis",
	Long: `Scan the Redis client registry for ids without data, data without ids and
data that no longer decodes. Uses REDIS_ADDR and QUEST_SESSION_ID; --all
checks every session found in Redis.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairAll, "all", false, "Repair every session in Redis")
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "Report problems without deleting anything")
	repairCmd.Flags().StringVar(&envFile, "env-file", ".env", "env file to load before reading the environment")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Redis.Enabled() {
		return fmt.Errorf("REDIS_ADDR is required for repair")
	}

	client, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Options())
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	sessions := []string{cfg.SessionID}
	if repairAll {
		sessions, err = clients.SessionsWithRegistry(ctx, client)
		if err != nil {
			return err
		}
	}

	for _, sessionID := range sessions {
		report, err := clients.RepairRedis(ctx, &clients.Config{
			Client:    client,
			SessionID: sessionID,
			Clock:     clock.New(),
		}, repairDryRun)
		if err != nil {
			return fmt.Errorf("failed to repair session %s: %w", sessionID, err)
		}

		if report.Clean() {
			fmt.Printf("%s: clean\n", sessionID)
			continue
		}
		fmt.Printf("%s: orphans=%v strays=%v corrupted=%v fixed=%t\n",
			sessionID, report.Orphans, report.Strays, report.Corrupted, report.Fixed)
	}
	return nil
}

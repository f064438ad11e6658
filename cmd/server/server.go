package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-quest/internal/broadcast"
	"github.com/KirkDiggler/rpg-quest/internal/config"
	"github.com/KirkDiggler/rpg-quest/internal/errors"
	"github.com/KirkDiggler/rpg-quest/internal/handlers/quest/v1alpha1"
	"github.com/KirkDiggler/rpg-quest/internal/orchestrators/quest"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-quest/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-quest/internal/quests"
	"github.com/KirkDiggler/rpg-quest/internal/redis"
	"github.com/KirkDiggler/rpg-quest/internal/repositories/clients"
)

// memoryRetention bounds the in-process channel when running without Redis
const memoryRetention = 1000

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the quest gRPC server",
	Long: `Start the quest server. Settings come from the environment (and an
optional .env file); REDIS_ADDR switches the session channel and the client
registry from in-process to Redis.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides QUEST_GRPC_PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "env file to load before reading the environment")
}

// backend bundles the session collaborators that differ between in-process
// and Redis runs
type backend struct {
	clients     clients.Repository
	broadcaster broadcast.Broadcaster
	chat        broadcast.ChatSink
	replicator  broadcast.Replicator
	close       func() error
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	level, _ := cfg.SlogLevel() // nolint:errcheck // validated by config.Load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	clk := clock.New()
	roller := newRoller(cfg.Seed)

	be, err := newBackend(ctx, cfg, clk)
	if err != nil {
		return err
	}
	defer func() {
		if err := be.close(); err != nil {
			slog.Warn("Failed to close backend", "error", err)
		}
	}()

	bus := events.NewBus()
	subscribeTurnLogging(bus)

	generator, err := quests.NewGenerator(&quests.GeneratorConfig{
		Catalog: catalog,
		IDGen:   idgen.NewUUID("enemy"),
		Roller:  roller,
	})
	if err != nil {
		return fmt.Errorf("failed to create room generator: %w", err)
	}

	questService, err := quest.NewOrchestrator(&quest.Config{
		Catalog:        catalog,
		Generator:      generator,
		Clients:        be.clients,
		Broadcaster:    be.broadcaster,
		Chat:           be.chat,
		Replicator:     be.replicator,
		EventBus:       bus,
		Clock:          clk,
		Roller:         roller,
		SessionID:      cfg.SessionID,
		EnemyTurnDelay: cfg.EnemyTurnDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to create quest service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		QuestService: questService,
		Clients:      be.clients,
		Catalog:      catalog,
	})
	if err != nil {
		return fmt.Errorf("failed to create quest handler: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
	v1alpha1.RegisterQuestServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Quest server starting",
			"port", cfg.GRPCPort,
			"session_id", cfg.SessionID,
			"redis", cfg.Redis.Enabled(),
			"quests", catalog.Len())
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down quest server")
		healthServer.Shutdown()
		shutdown(srv, cfg.ShutdownTimeout)

		if _, err := questService.Dispose(context.Background(), &quest.DisposeInput{}); err != nil {
			slog.Warn("Failed to dispose quest session", "error", err)
		}
		return nil
	})

	return g.Wait()
}

// shutdown drains in-flight calls, forcing a stop after timeout
func shutdown(srv *grpc.Server, timeout time.Duration) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(timeout):
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop", "timeout", timeout)
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}
}

func loadCatalog(path string) (*quests.Catalog, error) {
	if path == "" {
		catalog, err := quests.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		return catalog, nil
	}

	catalog, err := quests.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}

func newRoller(seed int64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	slog.Info("Using seeded roller", "seed", seed)
	return quests.NewSeededRoller(seed)
}

func newBackend(ctx context.Context, cfg *config.Config, clk clock.Clock) (*backend, error) {
	if !cfg.Redis.Enabled() {
		memory := broadcast.NewMemory(clk, broadcast.WithRetention(memoryRetention))
		return &backend{
			clients:     clients.NewInMemory(clk),
			broadcaster: memory,
			chat:        memory,
			replicator:  memory,
			close:       func() error { return nil },
		}, nil
	}

	client, err := redis.NewClient(cfg.Redis.Addr, cfg.Redis.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
	}

	registry, err := clients.NewRedisRepository(&clients.Config{
		Client:    client,
		SessionID: cfg.SessionID,
		Clock:     clk,
	})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to create client registry: %w", err)
	}

	publisher, err := broadcast.NewRedisPublisher(&broadcast.RedisConfig{
		Client:    client,
		SessionID: cfg.SessionID,
		Clock:     clk,
	})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	return &backend{
		clients:     registry,
		broadcaster: publisher,
		chat:        publisher,
		replicator:  publisher,
		close:       client.Close,
	}, nil
}

// subscribeTurnLogging logs every turn change published on bus
func subscribeTurnLogging(bus events.EventBus) {
	for _, eventType := range []string{events.EventTurnStart, events.EventTurnEnd} {
		bus.SubscribeFunc(eventType, 100, func(_ context.Context, e events.Event) error {
			var sessionID, roomIndex any
			if v, ok := e.Context().Get(quest.ContextSessionID); ok {
				sessionID = v
			}
			if v, ok := e.Context().Get(quest.ContextRoomIndex); ok {
				roomIndex = v
			}
			slog.Debug("Turn event",
				"type", eventType,
				"entity_id", e.Source().GetID(),
				"entity_type", e.Source().GetType(),
				"session_id", sessionID,
				"room_index", roomIndex)
			return nil
		})
	}
}

// interceptorLogger adapts slog to the grpc logging middleware
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

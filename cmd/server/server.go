package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/equipbest/internal/handlers/upgrade/v1alpha1"
	"github.com/KirkDiggler/equipbest/internal/notify"
	"github.com/KirkDiggler/equipbest/internal/orchestrators/upgrade"
	"github.com/KirkDiggler/equipbest/internal/pkg/idgen"
	"github.com/KirkDiggler/equipbest/internal/redis"
	"github.com/KirkDiggler/equipbest/internal/repositories/settings"
	"github.com/KirkDiggler/equipbest/internal/repositories/transfers"
	"github.com/KirkDiggler/equipbest/internal/scoring"
)

var (
	grpcPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the equipbest gRPC server backed by redis for settings and the transfer journal.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redis.Connect(ctx, redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	settingsRepo, err := settings.NewRedis(&settings.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create settings repository: %w", err)
	}
	transfersRepo, err := transfers.NewRedisRepository(&transfers.Config{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create transfers repository: %w", err)
	}

	catalog := notify.DefaultCatalog()
	eventBus := events.NewBus()
	eventBus.SubscribeFunc(notify.EventItemEquipped, 0, func(_ context.Context, e events.Event) error {
		if message, ok := e.Context().Get(notify.ContextKeyMessage); ok {
			log.Printf("event %s: %v", e.Type(), message)
		}
		return nil
	})

	upgradeService, err := upgrade.NewOrchestrator(&upgrade.Config{
		Scorer: scoring.New(),
		Notifier: notify.Multi{
			notify.NewLogger(catalog, slog.Default()),
			notify.NewBus(eventBus, catalog),
		},
		IDGenerator: idgen.NewUUID("transfer"),
	})
	if err != nil {
		return fmt.Errorf("failed to create upgrade orchestrator: %w", err)
	}

	upgradeHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		UpgradeService: upgradeService,
		SettingsRepo:   settingsRepo,
		TransfersRepo:  transfersRepo,
		Catalog:        catalog,
	})
	if err != nil {
		return fmt.Errorf("failed to create upgrade handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterUpgradeServiceServer(srv, upgradeHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d (redis %s)...", grpcPort, redisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(_ context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}

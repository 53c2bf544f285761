// Maestro orchestrator server — provides the HTTP API, manages queue
// workers, and runs workflows through the stage pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/maestro/pkg/api"
	"github.com/codeready-toolchain/maestro/pkg/approval"
	"github.com/codeready-toolchain/maestro/pkg/checkpoint"
	"github.com/codeready-toolchain/maestro/pkg/cleanup"
	"github.com/codeready-toolchain/maestro/pkg/config"
	"github.com/codeready-toolchain/maestro/pkg/database"
	"github.com/codeready-toolchain/maestro/pkg/eventlog"
	"github.com/codeready-toolchain/maestro/pkg/events"
	"github.com/codeready-toolchain/maestro/pkg/executor"
	"github.com/codeready-toolchain/maestro/pkg/gateway"
	"github.com/codeready-toolchain/maestro/pkg/notify"
	"github.com/codeready-toolchain/maestro/pkg/orchestrator"
	"github.com/codeready-toolchain/maestro/pkg/planner"
	"github.com/codeready-toolchain/maestro/pkg/queue"
	"github.com/codeready-toolchain/maestro/pkg/reflector"
	"github.com/codeready-toolchain/maestro/pkg/registry"
	"github.com/codeready-toolchain/maestro/pkg/sandbox"
	"github.com/codeready-toolchain/maestro/pkg/services"
	"github.com/codeready-toolchain/maestro/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting maestro",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded", "endpoints", stats.Endpoints, "features", stats.Features)

	// 2. Initialize database (runs migrations and partial indexes)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event log and registry
	log := eventlog.New(dbClient.Client)
	reg := registry.New(dbClient.Client)
	if err := reg.Seed(ctx, *cfg.LLM); err != nil {
		slog.Error("Failed to seed registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Registry seeded", "endpoints", len(cfg.LLM.Endpoints))

	// 4. Streaming infrastructure
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(log, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	slog.Info("Streaming infrastructure initialized")

	// 5. LLM gateway and health prober
	llm := gateway.New(reg, log, publisher, *cfg.Gateway)
	defer llm.Close()

	prober := gateway.NewProber(reg, llm, cfg.Gateway.HealthInterval)
	prober.Start(ctx)
	defer prober.Stop()

	// 6. Task queue and notifications
	q := queue.New(dbClient.Client, log, *cfg.Queue)

	notifier := notify.NewFromConfig(cfg.Notifier, cfg.Features)
	var poolNotifier queue.Notifier
	var gateNotifier approval.Notifier
	if notifier != nil {
		poolNotifier = notifier
		gateNotifier = notifier
		slog.Info("Slack notifications enabled")
	}

	// 7. Pipeline components
	sb := sandbox.New(sandbox.Limits{
		WallMS: cfg.Sandbox.Limits.WallMS,
		MemMB:  cfg.Sandbox.Limits.MemMB,
		CPUMS:  cfg.Sandbox.Limits.CPUMS,
	})
	checkpoints := checkpoint.New(dbClient.Client)
	plnr := planner.New(dbClient.Client, *cfg.Planner)
	gate := approval.New(dbClient.Client, log, reg, gateNotifier, *cfg.Approval)
	exec := executor.New(dbClient.Client, q)
	refl := reflector.New(dbClient.Client, reg, gate)

	orch := orchestrator.New(dbClient.Client, log, reg, llm, sb, checkpoints, plnr, gate, exec, refl, cfg)

	// 8. Background loops: approval expiry, reflection digests
	sweeper := approval.NewSweeper(gate, cfg.Approval.SweepInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	digester := reflector.NewDigester(refl, q)
	digester.Start(ctx)
	defer digester.Stop()

	// 9. Worker pool (before HTTP server so intake never outpaces capacity)
	workerPool := queue.NewWorkerPool(dbClient.Client, q, orch, poolNotifier, *cfg.Queue)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Services and retention
	workflowService := services.NewWorkflowService(dbClient.Client, q, log, workerPool)
	planService := services.NewPlanService(dbClient.Client, q, gate, log)

	retention := cleanup.NewService(cfg.Retention, workflowService)
	retention.Start(ctx)
	defer retention.Stop()

	// 11. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, workflowService, planService, gate, reg, workerPool, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully", "workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: drain workers first, then close intake
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete workflows will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

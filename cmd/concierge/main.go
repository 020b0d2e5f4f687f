// Concierge server. Exposes the HTTP turn API and channel webhooks,
// and runs the background cleanup loop.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/desteklab/concierge/pkg/api"
	"github.com/desteklab/concierge/pkg/catalog"
	"github.com/desteklab/concierge/pkg/cleanup"
	"github.com/desteklab/concierge/pkg/config"
	"github.com/desteklab/concierge/pkg/database"
	"github.com/desteklab/concierge/pkg/directory"
	"github.com/desteklab/concierge/pkg/egress"
	"github.com/desteklab/concierge/pkg/events"
	"github.com/desteklab/concierge/pkg/guardrails"
	"github.com/desteklab/concierge/pkg/identity"
	"github.com/desteklab/concierge/pkg/llm"
	"github.com/desteklab/concierge/pkg/orchestrator"
	"github.com/desteklab/concierge/pkg/session"
	"github.com/desteklab/concierge/pkg/tools"
	"github.com/desteklab/concierge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
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

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting concierge",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
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

	// 3. Domain services
	cat := catalog.New(cfg.Messages)
	recorder := events.NewEntRecorder(dbClient.Client)
	dir := directory.NewService(dbClient.Client)
	verifier := identity.NewVerifier(cat)
	proofs := identity.NewProofDeriver(dir)
	autoverify := identity.NewAutoverifyGate(dir)

	// 4. Tool registry and gated executor
	registry := tools.NewRegistry()
	for _, tool := range []tools.Tool{
		tools.NewOrderStatusTool(dir, cat),
		tools.NewDebtInquiryTool(dir, cat),
		tools.NewCallbackRequestTool(dir, cat),
		tools.NewComplaintTool(cat),
	} {
		if err := registry.Register(tool); err != nil {
			slog.Error("Failed to register tool", "error", err)
			os.Exit(1)
		}
	}
	invocations := tools.NewEntInvocationStore(dbClient.Client)
	executor, err := tools.NewExecutor(registry, invocations, cat,
		cfg.Runtime.ToolTimeout, cfg.Runtime.ToolMaxRetries)
	if err != nil {
		slog.Error("Failed to build tool executor", "error", err)
		os.Exit(1)
	}

	// 5. LLM client behind the egress guard
	guard := egress.NewGuard(cfg.Guardrails.EgressDenyHosts, recorder)
	llmClient, err := llm.NewOpenAIClient(cfg.LLM, guard.Client(cfg.Runtime.TurnDeadline))
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	// 6. Session plumbing and guardrails
	mapper := session.NewMapper(dbClient.Client)
	states := session.NewStateStore(dbClient.Client, cfg.Runtime.StateTTL)
	locks := session.NewLockService(dbClient.Client)
	serializer := session.NewSerializer(cfg.Runtime.SerializerShards)
	throttle := guardrails.NewThrottle(cfg.Runtime.ThrottlePerMin, cfg.Runtime.ThrottleBurst)
	chain, err := guardrails.NewChain(cfg.Guardrails, cat)
	if err != nil {
		slog.Error("Failed to build guardrail chain", "error", err)
		os.Exit(1)
	}

	orch := orchestrator.New(orchestrator.Deps{
		Config:     cfg,
		Catalog:    cat,
		Sessions:   mapper,
		States:     states,
		Locks:      locks,
		Serializer: serializer,
		Throttle:   throttle,
		Chain:      chain,
		Verifier:   verifier,
		Proofs:     proofs,
		Autoverify: autoverify,
		Registry:   registry,
		Runner:     executor,
		Client:     llmClient,
		Recorder:   recorder,
	})
	slog.Info("Orchestrator initialized", "businesses", len(cfg.Businesses))

	// 7. Background cleanup of expired state, locks, and rate limiters
	sweeper := cleanup.NewService(cleanup.Config{}, states, locks, invocations, throttle)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// 8. Start HTTP server (non-blocking)
	httpServer := api.NewServer(orch, dbClient, recorder)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}

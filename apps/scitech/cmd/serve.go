package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quatton/scitech/pkg/db"
	"github.com/quatton/scitech/pkg/kv"
	"github.com/quatton/scitech/pkg/scapi"
	"github.com/quatton/scitech/pkg/scapi/config"
	"github.com/quatton/scitech/pkg/scapi/metrics"
	"github.com/quatton/scitech/pkg/scapi/routes"
	"github.com/quatton/scitech/pkg/scapi/services"
	"github.com/quatton/scitech/pkg/scapi/services/auth"
	"github.com/quatton/scitech/pkg/scapi/services/broadcast"
	"github.com/quatton/scitech/pkg/scapi/services/machines"
	"github.com/quatton/scitech/pkg/sclog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run"},
	Short:   "Run the dashboard API and temperature simulator",
	Long: `Starts the HTTP API, seeds the machine table when it is empty and runs the
temperature simulator until interrupted. Configuration comes from the
environment (and .env in development).`,
	Run: serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.ValidateEnv()
	if err != nil {
		log.Fatalf("❌ %v\n", err)
	}
	cfg.Print(log.Printf)

	level, _ := sclog.ParseLevel(cfg.LogLevel)
	logger := sclog.NewLogger(level, os.Stdout)

	database, err := db.New(ctx, cfg.Database())
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if cfg.AutoMigrate {
		group, err := db.Migrate(ctx, database)
		if err != nil {
			logger.Fatal("failed to migrate", "error", err)
		}
		if group != "" {
			logger.Info("migrated", "group", group)
		}
	}

	revoked, err := newRevocationStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to valkey", "error", err)
	}
	defer revoked.Close()

	var mirrors []broadcast.Publisher
	if cfg.NATSURL != "" {
		nc, err := broadcast.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubject, logger)
		if err != nil {
			logger.Fatal("failed to connect to nats", "error", err)
		}
		defer nc.Close()
		mirrors = append(mirrors, nc)
	}

	svcs := services.NewServices(services.Deps{
		Store:    machines.NewBunStore(database),
		Revoked:  revoked,
		Verifier: auth.StaticVerifier{Email: cfg.AdminEmail, Password: cfg.AdminPassword},
		Secret:   cfg.AuthSecret,
		TokenTTL: cfg.TokenTTL(),
		Mirrors:  mirrors,
		SimOpts:  []machines.SimulatorOption{machines.WithInterval(cfg.SimulatorInterval)},
		Metrics:  metrics.New(),
		Logger:   logger,
	})

	if err := svcs.Machines.Seed(ctx); err != nil {
		logger.Fatal("failed to seed machines", "error", err)
	}

	if cfg.SimulatorEnabled {
		svcs.Simulator.Start(ctx)
		defer svcs.Simulator.Stop()
	}

	api := scapi.NewApi()
	routes.RegisterAPI(api.Api, svcs)
	routes.RegisterRaw(api.Router, svcs)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := scapi.NewServer(ctx, addr, api.Router, svcs.Hub)

	log.Printf("🚀 Dashboard API starting on %s\n", addr)
	log.Printf("📚 OpenAPI docs: %s/docs\n", cfg.BaseURL)
	log.Printf("📡 Live updates: %s/machines/events and %s/socket\n", cfg.BaseURL, cfg.BaseURL)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", "error", err)
	}
}

func newRevocationStore(ctx context.Context, cfg *config.EnvConfig) (kv.Store, error) {
	if cfg.ValkeyAddr == "" {
		return kv.NewMemoryStore(), nil
	}
	return kv.NewValkeyStore(ctx, kv.ValkeyConfig{
		Addr:     cfg.ValkeyAddr,
		Password: cfg.ValkeyPassword,
		DB:       cfg.ValkeyDB,
		Prefix:   "scitech:",
	})
}

// Package main provides the snapshot refresh daemon: it re-runs the
// analysis pipeline on a cron schedule and exposes health and metrics
// endpoints.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/fixture-scout/internal/config"
	"github.com/yourusername/fixture-scout/internal/datasource"
	"github.com/yourusername/fixture-scout/internal/engine"
	"github.com/yourusername/fixture-scout/internal/health"
	"github.com/yourusername/fixture-scout/internal/logger"
	"github.com/yourusername/fixture-scout/internal/metrics"
	"github.com/yourusername/fixture-scout/internal/scheduler"
	"github.com/yourusername/fixture-scout/internal/service"
)

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
}

var rootCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run the fixture-scout refresh daemon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDaemon() error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewLogger(cfg.App.LogLevel)
	metrics.InitRegistry()

	source, err := datasource.New(cfg.Data, log)
	if err != nil {
		return fmt.Errorf("building data source: %w", err)
	}

	svc := service.NewAnalysisService(
		source,
		engine.FromConfig(&cfg.Engine),
		engine.OverridesFromConfig(&cfg.Engine),
		engine.OwnedFromConfig(&cfg.Engine),
		log,
	)

	sched := scheduler.NewScheduler(log)
	refreshJob := func(ctx context.Context) error {
		if cached, ok := source.(*datasource.CachedSource); ok {
			cached.Invalidate()
		}
		_, _, err := svc.Run(ctx)
		return err
	}
	if err := sched.ScheduleRefresh(cfg.Refresh.CronExpression, "analysis", refreshJob); err != nil {
		return fmt.Errorf("scheduling refresh: %w", err)
	}

	srv := health.NewServer(health.Config{
		ServiceName: cfg.App.Name,
		Addr:        cfg.Refresh.ListenAddress,
		MetricsPath: cfg.Metrics.Path,
		Logger:      log,
		Scheduler:   sched,
	})
	srv.Start()

	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	srv.SetReady(true)

	// Prime the report once at startup rather than waiting for the first
	// cron tick.
	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	if _, _, err := svc.Run(startupCtx); err != nil {
		log.Warnf("Initial analysis failed: %v", err)
	}
	cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	srv.SetReady(false)
	if err := sched.Stop(); err != nil {
		log.Errorf("Stopping scheduler: %v", err)
	}
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// Package main provides the entry point for the analysis CLI tool.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/fixture-scout/internal/config"
	"github.com/yourusername/fixture-scout/internal/datasource"
	"github.com/yourusername/fixture-scout/internal/engine"
	"github.com/yourusername/fixture-scout/internal/logger"
	"github.com/yourusername/fixture-scout/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile  string
	outputPath  string
	startPeriod int
	endPeriod   int
	ownedTeams  []int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.Flags().IntVar(&startPeriod, "start-gw", 0, "Override the window start gameweek")
	rootCmd.Flags().IntVar(&endPeriod, "end-gw", 0, "Override the window end gameweek")
	rootCmd.Flags().IntSliceVar(&ownedTeams, "owned", nil, "Override the owned team ids")
}

var rootCmd = &cobra.Command{
	Use:     "analyze",
	Short:   "Run the fixture-scout analysis pipeline",
	Long:    `Loads a data snapshot, runs the event-probability pipeline, and emits the analysis report as JSON.`,
	Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnalysis(ctx context.Context) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewLogger(cfg.App.LogLevel)

	source, err := datasource.New(cfg.Data, log)
	if err != nil {
		return fmt.Errorf("building data source: %w", err)
	}

	params := engine.FromConfig(&cfg.Engine)
	if startPeriod > 0 {
		params.StartPeriod = startPeriod
	}
	if endPeriod > 0 {
		params.EndPeriod = endPeriod
	}

	owned := engine.OwnedFromConfig(&cfg.Engine)
	if len(ownedTeams) > 0 {
		owned = make(engine.OwnedSet, len(ownedTeams))
		for _, id := range ownedTeams {
			owned[id] = true
		}
	}

	svc := service.NewAnalysisService(source, params, engine.OverridesFromConfig(&cfg.Engine), owned, log)

	report, quality, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	for _, issue := range quality.Issues() {
		log.Warnf("Data quality: %s", issue)
	}

	return writeReport(report, log)
}

func writeReport(report any, log *logrus.Logger) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.WithField("path", outputPath).Info("Report written")
	return nil
}

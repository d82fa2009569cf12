// Package main provides the training entry point: it rebuilds league model
// bundles from the historical match database.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/database"
	applogger "github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/normalizer"
	"github.com/yourusername/matchcast/internal/repository"
	"github.com/yourusername/matchcast/internal/training"
)

var (
	configFile string
	leagueCode string
	logger     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	runCmd.Flags().StringVarP(&leagueCode, "league", "l", "", "Train a single league (default: all configured leagues)")
	inspectCmd.Flags().StringVarP(&leagueCode, "league", "l", "", "League whose bundle to inspect")
}

var rootCmd = &cobra.Command{
	Use:   "train",
	Short: "Rebuild league prediction model bundles",
	Long:  `Load historical match corpora, engineer features, train the outcome classifier and write per-league model bundles.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		logger = applogger.NewLogger(cfg.App.LogLevel)
		metrics.InitRegistry()
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Train and persist model bundles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTraining(cmd.Context())
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print a persisted bundle's summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspectBundle()
	},
}

func main() {
	rootCmd.AddCommand(runCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runTraining(ctx context.Context) error {
	db, err := database.NewDB(ctx, cfg.GetDatabaseDSN(), cfg.Database.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repo := repository.NewPostgresMatchRepository(db)

	leagues, err := selectLeagues()
	if err != nil {
		return err
	}

	for _, league := range leagues {
		norm := normalizer.New(league.Aliases)
		pipeline := training.NewPipeline(repo, norm, logger)

		artifacts, err := pipeline.Run(ctx, league)
		if err != nil {
			return fmt.Errorf("training failed for league %s: %w", league.Code, err)
		}

		if err := artifacts.Save(league.ArtifactsPath); err != nil {
			return fmt.Errorf("failed to save bundle for league %s: %w", league.Code, err)
		}

		logger.WithFields(logrus.Fields{
			"league":   league.Code,
			"path":     league.ArtifactsPath,
			"accuracy": fmt.Sprintf("%.2f", artifacts.Accuracy),
			"teams":    len(artifacts.Encoder),
		}).Info("Model bundle written")
	}

	return nil
}

func inspectBundle() error {
	leagues, err := selectLeagues()
	if err != nil {
		return err
	}

	for _, league := range leagues {
		artifacts, err := ml.LoadArtifacts(league.ArtifactsPath)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "league=%s id=%s trained_at=%s accuracy=%.2f teams=%d\n",
			artifacts.League, artifacts.ID, artifacts.TrainedAt.Format("2006-01-02 15:04"),
			artifacts.Accuracy, len(artifacts.Encoder))
	}

	return nil
}

func selectLeagues() ([]*config.LeagueConfig, error) {
	if leagueCode == "" {
		leagues := make([]*config.LeagueConfig, 0, len(cfg.Leagues))
		for i := range cfg.Leagues {
			leagues = append(leagues, &cfg.Leagues[i])
		}
		return leagues, nil
	}

	league, ok := cfg.League(leagueCode)
	if !ok {
		return nil, fmt.Errorf("league %s is not configured", leagueCode)
	}
	return []*config.LeagueConfig{league}, nil
}

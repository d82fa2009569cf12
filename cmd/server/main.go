// Package main provides the entry point for the prediction API server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/api/rest"
	"github.com/yourusername/matchcast/internal/cache"
	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/datasource"
	"github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/normalizer"
	"github.com/yourusername/matchcast/internal/scheduler"
	"github.com/yourusername/matchcast/internal/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load AWS secrets if enabled
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Set up logging
	appLog := logger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
	}).Info("Matchcast prediction server starting")

	metrics.InitRegistry()

	// Team name aliases from every configured league feed one normalizer
	aliases := make(map[string]string)
	for _, league := range cfg.Leagues {
		for from, to := range league.Aliases {
			aliases[from] = to
		}
	}
	norm := normalizer.New(aliases)

	// Load each league's model bundle. A missing bundle takes its league
	// out of rotation but does not stop the server.
	var leagues []*service.League
	for i := range cfg.Leagues {
		leagueCfg := &cfg.Leagues[i]
		artifacts, err := ml.LoadArtifacts(leagueCfg.ArtifactsPath)
		if err != nil {
			appLog.WithError(err).WithField("league", leagueCfg.Code).
				Error("Failed to load model bundle, league disabled")
			continue
		}
		leagues = append(leagues, service.NewLeague(leagueCfg, artifacts))
		appLog.WithFields(logrus.Fields{
			"league":     leagueCfg.Code,
			"trained_at": artifacts.TrainedAt,
			"accuracy":   artifacts.Accuracy,
			"teams":      len(artifacts.Encoder),
		}).Info("Model bundle loaded")
	}
	if len(leagues) == 0 {
		appLog.Fatal("No league model bundles could be loaded")
	}
	metrics.LoadedLeagues.Set(float64(len(leagues)))

	// Upstream fixtures client
	httpCfg := datasource.DefaultHTTPClientConfig()
	httpCfg.Timeout = cfg.APITimeout()
	httpCfg.MaxRetries = cfg.FootballAPI.RetryAttempts
	httpCfg.RateLimit = cfg.FootballAPI.RateLimit
	httpClient := datasource.NewRateLimitedHTTPClient(httpCfg, appLog)
	source := datasource.NewFootballDataClient(httpClient, cfg.FootballAPI.BaseURL, cfg.FootballAPI.Token, appLog)

	// Services
	predictor := service.NewPredictor(leagues, norm, appLog)
	fixtures := service.NewFixtureService(source, cache.NewFixtureCache(), predictor, cfg, appLog)

	// Cache-warming scheduler
	var warmer *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		warmer = scheduler.NewScheduler(fixtures, cfg.Leagues, appLog)
		if err := warmer.ScheduleCacheWarm(cfg.Scheduler.WarmSchedule); err != nil {
			appLog.WithError(err).Fatal("Failed to schedule cache warming")
		}
		if err := warmer.Start(); err != nil {
			appLog.WithError(err).Fatal("Failed to start scheduler")
		}
	}

	server := rest.NewServer(cfg, fixtures, appLog)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down")

	if warmer != nil {
		if err := warmer.Stop(); err != nil {
			appLog.WithError(err).Error("Failed to stop scheduler")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLog.WithError(err).Error("Failed to shut down HTTP server cleanly")
	}

	appLog.Info("Server stopped")
}

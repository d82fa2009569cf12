// Package config provides configuration management for the matchcast backend.
package config

import (
	"fmt"
	"time"

	"github.com/yourusername/matchcast/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	App         AppConfig         `mapstructure:"app" validate:"required"`
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Database    DatabaseConfig    `mapstructure:"database"`
	FootballAPI FootballAPIConfig `mapstructure:"football_api" validate:"required"`
	Cache       CacheConfig       `mapstructure:"cache" validate:"required"`
	Scheduler   SchedulerConfig   `mapstructure:"scheduler"`
	Leagues     []LeagueConfig    `mapstructure:"leagues" validate:"required,min=1,dive"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Port            int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSec  int `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSec int `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig represents the historical-corpus database connection. Only
// the training binary needs it; the server runs without a database.
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// FootballAPIConfig represents the upstream fixtures API configuration
type FootballAPIConfig struct {
	BaseURL        string  `mapstructure:"base_url" validate:"required,url"`
	Token          string  `mapstructure:"token"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	RetryAttempts  int     `mapstructure:"retry_attempts" validate:"gte=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"required,gt=0"`
}

// CacheConfig represents fixture cache TTLs
type CacheConfig struct {
	TeamFixturesTTLSeconds int `mapstructure:"team_fixtures_ttl_seconds" validate:"required,gt=0"`
	MatchdayTTLSeconds     int `mapstructure:"matchday_ttl_seconds" validate:"required,gt=0"`
}

// SchedulerConfig represents the cache-warming scheduler
type SchedulerConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	WarmSchedule string `mapstructure:"warm_schedule"`
}

// LeagueConfig represents one supported league. Leagues are data: the same
// pipeline serves each entry.
type LeagueConfig struct {
	Code            string             `mapstructure:"code" validate:"required"`
	CompetitionID   int                `mapstructure:"competition_id" validate:"required,gt=0"`
	CompetitionName string             `mapstructure:"competition_name" validate:"required"`
	ArtifactsPath   string             `mapstructure:"artifacts_path" validate:"required"`
	Seasons         []string           `mapstructure:"seasons"`
	RecentSeasons   []string           `mapstructure:"recent_seasons"`
	Teams           []models.TeamEntry `mapstructure:"teams"`
	Aliases         map[string]string  `mapstructure:"aliases"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// League resolves a league config by code.
func (c *Config) League(code string) (*LeagueConfig, bool) {
	for i := range c.Leagues {
		if c.Leagues[i].Code == code {
			return &c.Leagues[i], true
		}
	}
	return nil, false
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		sslMode,
	)
}

// APITimeout returns the upstream request timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.FootballAPI.TimeoutSeconds) * time.Second
}

// TeamFixturesTTL returns the per-team fixture list TTL.
func (c *Config) TeamFixturesTTL() time.Duration {
	return time.Duration(c.Cache.TeamFixturesTTLSeconds) * time.Second
}

// MatchdayTTL returns the matchday fixture list TTL.
func (c *Config) MatchdayTTL() time.Duration {
	return time.Duration(c.Cache.MatchdayTTLSeconds) * time.Second
}

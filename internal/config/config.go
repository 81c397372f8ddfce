// Package config provides configuration management for the fixture-scout
// analytics engine.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Data    DataConfig    `mapstructure:"data" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Refresh RefreshConfig `mapstructure:"refresh"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DataConfig represents data source configuration
type DataConfig struct {
	Source          string  `mapstructure:"source" validate:"required,oneof=snapshot fpl_api"`
	SnapshotDir     string  `mapstructure:"snapshot_dir"`
	APIBaseURL      string  `mapstructure:"api_base_url" validate:"omitempty,url"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries      int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit       float64 `mapstructure:"rate_limit" validate:"gt=0"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// EngineConfig represents pipeline tuning. Zero values fall back to the
// engine defaults.
type EngineConfig struct {
	DefenseThreshold float64        `mapstructure:"defense_threshold" validate:"gte=0"`
	AttackThreshold  float64        `mapstructure:"attack_threshold" validate:"gte=0"`
	PriorStrength    float64        `mapstructure:"prior_strength" validate:"gte=0"`
	LeagueBaseline   float64        `mapstructure:"league_baseline" validate:"gte=0,lte=1"`
	ConcedeWeight    float64        `mapstructure:"concede_weight" validate:"gte=0,lte=1"`
	AttackWeight     float64        `mapstructure:"attack_weight" validate:"gte=0,lte=1"`
	StartPeriod      int            `mapstructure:"start_period" validate:"gte=0"`
	EndPeriod        int            `mapstructure:"end_period" validate:"gte=0"`
	Overrides        map[int]string `mapstructure:"overrides"`
	OwnedTeams       []int          `mapstructure:"owned_teams"`
}

// RefreshConfig represents the snapshot refresh daemon configuration
type RefreshConfig struct {
	CronExpression string `mapstructure:"cron_expression"`
	ListenAddress  string `mapstructure:"listen_address"`
}

// MetricsConfig represents Prometheus metrics configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

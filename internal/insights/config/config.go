package config

import (
	pipelineconfig "bank-reviews-insights/internal/pipeline/config"
	"bank-reviews-insights/pkg/config"
)

// Cache holds the TTL and warm-up settings for the insights caches.
type Cache struct {
	FilterTTLSeconds int    `mapstructure:"filter_ttl_seconds"`
	QueryTTLSeconds  int    `mapstructure:"query_ttl_seconds"`
	WarmCron         string `mapstructure:"warm_cron"` // e.g. "*/5 * * * *"
}

// Predict holds the settings of the interactive prediction bridge. Themes
// are an optional capability: when disabled, predictions carry sentiment
// only.
type Predict struct {
	Enabled      bool `mapstructure:"enabled"`
	EnableThemes bool `mapstructure:"enable_themes"`
}

// Config holds the full configuration for the insights service.
type Config struct {
	App          config.App                  `mapstructure:"app"`
	Logger       config.Logger               `mapstructure:"logger"`
	Database     config.Database             `mapstructure:"database"`
	Redis        config.Redis                `mapstructure:"redis"`
	API          config.API                  `mapstructure:"api"`
	Cache        Cache                       `mapstructure:"cache"`
	Predict      Predict                     `mapstructure:"predict"`
	AI           pipelineconfig.AI           `mapstructure:"ai"`
	InferenceAPI pipelineconfig.InferenceAPI `mapstructure:"inference_api"`
	Gemini       pipelineconfig.Gemini       `mapstructure:"gemini"`
	Pipeline     pipelineconfig.Pipeline     `mapstructure:"pipeline"`
}

// Load loads the insights service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"bank-reviews-insights/pkg/config"
)

// Themes holds the theme classifier knobs.
type Themes struct {
	PhraseWeight    float64 `mapstructure:"phrase_weight"`
	WordWeight      float64 `mapstructure:"word_weight"`
	Threshold       float64 `mapstructure:"threshold"`
	AllowMultilabel bool    `mapstructure:"allow_multilabel"`
	MaxThemes       int     `mapstructure:"max_themes"`
}

// Pipeline holds the batch pipeline knobs.
type Pipeline struct {
	MinValidRows  int     `mapstructure:"min_valid_rows"`
	NeutralMargin float64 `mapstructure:"neutral_margin"`
	BatchSize     int     `mapstructure:"batch_size"`
	Themes        Themes  `mapstructure:"themes"`
}

// InferenceAPI holds the configuration for the HTTP sentiment inference
// endpoint.
type InferenceAPI struct {
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// AI selects the sentiment classifier provider.
type AI struct {
	Provider string `mapstructure:"provider"` // "http" or "gemini"
}

// Config holds the full configuration for the pipeline CLI.
type Config struct {
	App          config.App      `mapstructure:"app"`
	Logger       config.Logger   `mapstructure:"logger"`
	Database     config.Database `mapstructure:"database"`
	Telegram     config.Telegram `mapstructure:"telegram"`
	Pipeline     Pipeline        `mapstructure:"pipeline"`
	AI           AI              `mapstructure:"ai"`
	InferenceAPI InferenceAPI    `mapstructure:"inference_api"`
	Gemini       Gemini          `mapstructure:"gemini"`
}

// Load loads the pipeline configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

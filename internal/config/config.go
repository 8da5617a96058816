package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/insightdelivered/finance-insights/internal/categorize"
	"github.com/insightdelivered/finance-insights/internal/insights"
)

// Config is the optional insights.yaml configuration. Every field has
// a working default; an absent file means defaults throughout.
type Config struct {
	// ModelPath is where the trained classifier artifact lives. A
	// missing artifact is normal and selects rule-based
	// categorization.
	ModelPath string `yaml:"model_path"`
	// Listen is the HTTP API bind address.
	Listen string `yaml:"listen"`

	Thresholds ThresholdsConfig `yaml:"thresholds"`

	// Categories overrides the built-in keyword table when non-empty.
	Categories []CategoryConfig `yaml:"categories,omitempty"`
}

// ThresholdsConfig tunes the analytical views.
type ThresholdsConfig struct {
	TopExpenses    int     `yaml:"top_expenses"`
	MinOccurrences int     `yaml:"min_occurrences"`
	AnomalyZScore  float64 `yaml:"anomaly_z_score"`
}

// CategoryConfig is one keyword rule in the configured table.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ModelPath: "models/transaction_classifier.gob",
		Listen:    ":8080",
		Thresholds: ThresholdsConfig{
			TopExpenses:    insights.DefaultTopN,
			MinOccurrences: insights.DefaultMinOccurrences,
			AnomalyZScore:  insights.DefaultZThreshold,
		},
	}
}

// Load reads a YAML config file. A missing file is not an error; it
// yields the defaults. Unset fields fall back to their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	def := Default()
	if cfg.ModelPath == "" {
		cfg.ModelPath = def.ModelPath
	}
	if cfg.Listen == "" {
		cfg.Listen = def.Listen
	}
	if cfg.Thresholds.TopExpenses <= 0 {
		cfg.Thresholds.TopExpenses = def.Thresholds.TopExpenses
	}
	if cfg.Thresholds.MinOccurrences <= 0 {
		cfg.Thresholds.MinOccurrences = def.Thresholds.MinOccurrences
	}
	if cfg.Thresholds.AnomalyZScore <= 0 {
		cfg.Thresholds.AnomalyZScore = def.Thresholds.AnomalyZScore
	}
	return cfg, nil
}

// Rules converts configured categories into the categorizer's rule
// table, or nil when no override is configured.
func (c Config) Rules() []categorize.CategoryRule {
	if len(c.Categories) == 0 {
		return nil
	}
	rules := make([]categorize.CategoryRule, 0, len(c.Categories))
	for _, cat := range c.Categories {
		rules = append(rules, categorize.CategoryRule{
			Category: cat.Name,
			Keywords: cat.Keywords,
		})
	}
	return rules
}

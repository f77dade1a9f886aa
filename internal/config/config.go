package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for an averse invocation.
// Values are populated from .averse.yaml, AVERSE_* env vars, and CLI flags.
type Config struct {
	RecipeDir    string `mapstructure:"recipe_dir"`
	PlanDir      string `mapstructure:"plan_dir"`
	HistoryPath  string `mapstructure:"history_path"`
	MealsPerDay  int    `mapstructure:"meals_per_day"`
	CooldownDays int    `mapstructure:"cooldown_days"`
	PlanDays     int    `mapstructure:"plan_days"`
	NoColor      bool   `mapstructure:"no_color"`
	Verbose      bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("recipe_dir", "./recipes")
	viper.SetDefault("plan_dir", "./plans")
	viper.SetDefault("history_path", "")
	viper.SetDefault("meals_per_day", 1)
	viper.SetDefault("cooldown_days", 2)
	viper.SetDefault("plan_days", 7)
	viper.SetDefault("no_color", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)

	// The history db lives next to the plans unless placed explicitly.
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = filepath.Join(cfg.PlanDir, "history.db")
	}
	return cfg
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the daemon.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr                   string   `json:"addr" yaml:"addr" toml:"addr"`
	StatePath              string   `json:"state_path" yaml:"state_path" toml:"state_path"`
	LevelTemps             []int    `json:"level_temps" yaml:"level_temps" toml:"level_temps"`
	SectionsPerLevel       int      `json:"sections_per_level" yaml:"sections_per_level" toml:"sections_per_level"`
	SoonWindowDays         int      `json:"soon_window_days" yaml:"soon_window_days" toml:"soon_window_days"`
	MonitorIntervalSeconds int      `json:"monitor_interval_seconds" yaml:"monitor_interval_seconds" toml:"monitor_interval_seconds"`
	VisionBaseURL          string   `json:"vision_base_url" yaml:"vision_base_url" toml:"vision_base_url"`
	VisionModel            string   `json:"vision_model" yaml:"vision_model" toml:"vision_model"`
	CORSEnabled            bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins     []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/planner/core/chart"
	"github.com/kilianp07/planner/core/metrics"
)

// EnvPrefix selects the environment variables overriding the file, e.g.
// PLANNER_PLANNING__DAY_START=07:00.
const EnvPrefix = "PLANNER_"

type Config struct {
	Planning PlanningConfig `json:"planning"`
	Input    InputConfig    `json:"input"`
	Chart    chart.Config   `json:"chart"`
	Metrics  metrics.Config `json:"metrics"`
	Logging  LoggingConfig  `json:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	c := Config{
		Planning: DefaultPlanning(),
		Chart:    chart.DefaultConfig(),
	}
	// main chart look: vertical tick labels, bold task names, PNG export
	c.Chart.XTickRotation = 90
	c.Chart.YTickRotation = 90
	c.Chart.TaskLabelFontSize = 12
	c.Chart.SaveFile = "schedule.png"
	c.Input.SetDefaults()
	c.Logging.SetDefaults()
	return c
}

// Load reads the yaml or json file at path on top of Default, then applies
// environment overrides. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Input.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Chart.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Planning.Validate(); err != nil {
		return err
	}
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if err := c.Chart.Validate(); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

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

	"github.com/StevenSignal/dtek-schedule/core/metrics"
	"github.com/StevenSignal/dtek-schedule/infra/fetch"
	"github.com/StevenSignal/dtek-schedule/infra/mqtt"
	"github.com/StevenSignal/dtek-schedule/infra/store"
)

// Config assembles the settings for one collection cycle.
type Config struct {
	Source  fetch.Config   `json:"source"`
	Output  store.Config   `json:"output"`
	Groups  []string       `json:"groups"`
	Metrics metrics.Config `json:"metrics"`
	MQTT    mqtt.Config    `json:"mqtt"`
}

// DefaultGroups is the stock distribution-zone queue list.
var DefaultGroups = []string{
	"GPV1.1", "GPV1.2", "GPV2.1", "GPV2.2", "GPV3.1", "GPV3.2",
	"GPV4.1", "GPV4.2", "GPV5.1", "GPV5.2", "GPV6.1", "GPV6.2",
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	c.Source.SetDefaults()
	c.Output.SetDefaults()
	c.MQTT.SetDefaults()
	if len(c.Groups) == 0 {
		c.Groups = append([]string(nil), DefaultGroups...)
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.MQTT.Validate(); err != nil {
		return err
	}
	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one group is required")
	}
	return nil
}

// Load reads the configuration file (YAML or JSON, selected by extension)
// and applies DTEK_-prefixed environment overrides. An empty path yields the
// built-in defaults plus environment overrides.
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
	// Optional environment overrides, e.g. DTEK_OUTPUT__PATH=/var/lib/dtek.json
	if err := k.Load(env.Provider("DTEK_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dtek_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

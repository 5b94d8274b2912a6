package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration for the tool.
type Config struct {
	// Identities lists the email addresses that count as "you" when
	// deciding whether a message was sent or received.
	Identities []string `yaml:"identities"`
}

// loadConfig reads the config named by --config. Without the flag an
// empty config is returned.
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if configPath == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config %q: %w", configPath, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %q: %w", configPath, err)
	}
	return cfg, nil
}

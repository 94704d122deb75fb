package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PITCHPERFECT_*). The legacy PORT variable
// is honored last for the gateway listen port, matching the original relay.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PITCHPERFECT_GATEWAY_PORT ->
	// gateway.port, etc. Every config key is a single word, so the
	// underscore-to-dot mapping is unambiguous.
	if err := k.Load(env.Provider("PITCHPERFECT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "PITCHPERFECT_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Gateway.Port = p
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderGateway: true,
	ProviderOllama:  true,
	ProviderOpenAI:  true,
}

// validModes is the set of recognized client facade modes.
var validModes = map[ClientMode]bool{
	ModeAuto:            true,
	ModeOnline:          true,
	ModeBackendRequired: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of gateway, ollama, openai", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.Gateway.Port < 1 || c.Gateway.Port > 65535 {
		return fmt.Errorf("gateway.port %d out of range", c.Gateway.Port)
	}
	if c.Gateway.Interval < 0 {
		return fmt.Errorf("gateway.interval must be non-negative")
	}

	if c.Ollama.URL == "" {
		return fmt.Errorf("ollama.url is required")
	}
	if c.Ollama.Timeout <= 0 {
		return fmt.Errorf("ollama.timeout must be positive")
	}
	if c.Ollama.Retries < 0 {
		return fmt.Errorf("ollama.retries must be non-negative")
	}
	if c.Ollama.Delay < 0 {
		return fmt.Errorf("ollama.delay must be non-negative")
	}

	if c.Client.Mode != "" && !validModes[c.Client.Mode] {
		return fmt.Errorf("invalid client.mode %q: must be one of auto, online, backend-required", c.Client.Mode)
	}

	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render dimensions must be positive")
	}

	return nil
}

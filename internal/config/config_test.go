package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Gateway.Port != 8081 {
		t.Errorf("expected default gateway port 8081, got %d", cfg.Gateway.Port)
	}
	if cfg.Gateway.Interval != 1000 {
		t.Errorf("expected default interval 1000ms, got %d", cfg.Gateway.Interval)
	}
	if cfg.Ollama.Timeout != 60 || cfg.Ollama.Retries != 1 || cfg.Ollama.Delay != 3 {
		t.Errorf("unexpected upstream defaults: %+v", cfg.Ollama)
	}
	if cfg.Models.Live {
		t.Error("live model fetching must be off by default")
	}
}

func TestCachedModelsHasEightEntries(t *testing.T) {
	if len(CachedModels) != 8 {
		t.Fatalf("expected 8 cached models, got %d", len(CachedModels))
	}
	if CachedModels[0] != DefaultModel {
		t.Errorf("expected default model first in cached list, got %q", CachedModels[0])
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gateway.Port != 8081 {
		t.Errorf("expected default port, got %d", cfg.Gateway.Port)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pitchperfect.yml")
	content := `
gateway:
  port: 9090
  interval: 250
ollama:
  url: http://10.0.0.5:11434
models:
  live: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gateway.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Gateway.Port)
	}
	if cfg.Gateway.Interval != 250 {
		t.Errorf("expected interval 250, got %d", cfg.Gateway.Interval)
	}
	if cfg.Ollama.URL != "http://10.0.0.5:11434" {
		t.Errorf("unexpected ollama url %q", cfg.Ollama.URL)
	}
	if !cfg.Models.Live {
		t.Error("expected live model fetching enabled")
	}
	// Untouched keys keep defaults.
	if cfg.Ollama.Timeout != 60 {
		t.Errorf("expected default timeout, got %d", cfg.Ollama.Timeout)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PITCHPERFECT_GATEWAY_PORT", "7000")
	t.Setenv("PITCHPERFECT_MODEL", "llama3:latest")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gateway.Port != 7000 {
		t.Errorf("expected env port 7000, got %d", cfg.Gateway.Port)
	}
	if cfg.Model != "llama3:latest" {
		t.Errorf("expected env model, got %q", cfg.Model)
	}
}

func TestPortEnvWinsForGateway(t *testing.T) {
	t.Setenv("PITCHPERFECT_GATEWAY_PORT", "7000")
	t.Setenv("PORT", "7500")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gateway.Port != 7500 {
		t.Errorf("expected PORT to win, got %d", cfg.Gateway.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty provider", func(c *Config) { c.Provider = "" }},
		{"unknown provider", func(c *Config) { c.Provider = "bedrock" }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"port too low", func(c *Config) { c.Gateway.Port = 0 }},
		{"port too high", func(c *Config) { c.Gateway.Port = 70000 }},
		{"negative interval", func(c *Config) { c.Gateway.Interval = -1 }},
		{"empty upstream url", func(c *Config) { c.Ollama.URL = "" }},
		{"zero timeout", func(c *Config) { c.Ollama.Timeout = 0 }},
		{"negative retries", func(c *Config) { c.Ollama.Retries = -1 }},
		{"bad client mode", func(c *Config) { c.Client.Mode = "sometimes" }},
		{"zero render width", func(c *Config) { c.Render.Width = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yml")

	cfg := DefaultConfig()
	cfg.Gateway.Port = 8123
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Gateway.Port != 8123 {
		t.Errorf("expected round-tripped port 8123, got %d", loaded.Gateway.Port)
	}
}

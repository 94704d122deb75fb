package cmd

import (
	"context"
	"fmt"

	"github.com/ipedrax/pitch-perfect/internal/apiclient"
	"github.com/ipedrax/pitch-perfect/internal/config"
	"github.com/ipedrax/pitch-perfect/internal/deck"
	"github.com/ipedrax/pitch-perfect/internal/generator"
	"github.com/ipedrax/pitch-perfect/internal/llm"
	"github.com/ipedrax/pitch-perfect/internal/theme"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newGenerator builds the slide generator for the configured provider. The
// facade probe runs here when the provider is the gateway, so commands get
// offline-mode behavior without extra wiring.
func newGenerator(ctx context.Context, cfg *config.Config) (*generator.Generator, error) {
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	if gw, ok := provider.(*llm.GatewayProvider); ok {
		gw.DetectEnvironment(ctx)
	}
	return generator.New(provider, theme.NewRegistry(), deck.NewSessionLog()), nil
}

// newFacade builds the relay client facade used by model-listing commands.
func newFacade(ctx context.Context, cfg *config.Config) *apiclient.Client {
	client := apiclient.New(cfg.Client, cfg.Models)
	client.DetectEnvironment(ctx)
	return client
}

// loadDeck reads a deck file into a store.
func loadDeck(path string) (*deck.File, *deck.Store, error) {
	f, err := deck.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	store := deck.NewStore()
	store.Append(f.Slides...)
	return f, store, nil
}

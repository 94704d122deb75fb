package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/ipedrax/pitch-perfect/internal/apiclient"
	"github.com/ipedrax/pitch-perfect/internal/config"
	"github.com/ipedrax/pitch-perfect/internal/ollama"
)

// NewProvider creates the chat backend selected by the configuration.
// Supported provider types: "gateway", "ollama", "openai".
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderGateway:
		client := apiclient.New(cfg.Client, cfg.Models)
		return NewGatewayProvider(client, cfg.Model), nil

	case config.ProviderOllama:
		client := ollama.NewClient(cfg.Ollama.URL, ollama.Options{
			Timeout:    time.Duration(cfg.Ollama.Timeout) * time.Second,
			Retries:    cfg.Ollama.Retries,
			RetryDelay: time.Duration(cfg.Ollama.Delay) * time.Second,
		})
		return NewOllamaProvider(client, cfg.Model), nil

	case config.ProviderOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Provider)
	}
}

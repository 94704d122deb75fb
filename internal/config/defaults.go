package config

// DefaultModel is the model used when a chat request does not name one.
// It matches the default the relay applies on the server side.
const DefaultModel = "ipedrax-weeky:latest"

// CachedModels is the static model list the client facade answers with
// unless live fetching is enabled. Kept in sync with the models installed
// on the shared Ollama host.
var CachedModels = []string{
	"ipedrax-weeky:latest",
	"llama3:latest",
	"llama3:70b",
	"mistral:latest",
	"gemma2:latest",
	"phi3:latest",
	"qwen2.5:latest",
	"codellama:latest",
}

// DefaultConfig returns a Config with the defaults the source system shipped
// with: gateway on 8081 pacing at one request per second, a 60s upstream
// timeout with one retry after 3s, and the cached model list.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGateway,
		Model:    DefaultModel,
		Gateway: GatewayConfig{
			Port:     8081,
			Interval: 1000,
		},
		Ollama: OllamaConfig{
			URL:     "http://localhost:11434",
			Timeout: 60,
			Retries: 1,
			Delay:   3,
		},
		Models: ModelsConfig{
			Default: DefaultModel,
			Live:    false,
		},
		Client: ClientConfig{
			URL:   "http://localhost:8081",
			Mode:  ModeAuto,
			Probe: 3,
		},
		Render: RenderConfig{
			Width:  1280,
			Height: 720,
			Output: "slides",
		},
		Preview: PreviewConfig{
			Port: 8082,
		},
	}
}

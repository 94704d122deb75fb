package config

// ProviderType identifies where chat completions are sent.
type ProviderType string

const (
	// ProviderGateway routes completions through the local relay process.
	ProviderGateway ProviderType = "gateway"
	// ProviderOllama talks to the Ollama API directly, bypassing the relay.
	ProviderOllama ProviderType = "ollama"
	// ProviderOpenAI talks to an OpenAI-compatible chat completion API.
	ProviderOpenAI ProviderType = "openai"
)

// ClientMode selects how the client facade behaves when the gateway is
// unreachable.
type ClientMode string

const (
	// ModeAuto probes the gateway on startup and installs the offline
	// fallback wrapper when the probe fails.
	ModeAuto ClientMode = "auto"
	// ModeOnline always attempts real network calls.
	ModeOnline ClientMode = "online"
	// ModeBackendRequired short-circuits every call with an instructional
	// "start the gateway" response and never touches the network. This is
	// the behavior used on static hosting.
	ModeBackendRequired ClientMode = "backend-required"
)

// Config is the top-level pitchperfect configuration, corresponding to
// .pitchperfect.yml.
type Config struct {
	Provider ProviderType  `yaml:"provider" koanf:"provider"`
	Model    string        `yaml:"model" koanf:"model"`
	Gateway  GatewayConfig `yaml:"gateway" koanf:"gateway"`
	Ollama   OllamaConfig  `yaml:"ollama" koanf:"ollama"`
	Models   ModelsConfig  `yaml:"models" koanf:"models"`
	Client   ClientConfig  `yaml:"client" koanf:"client"`
	Render   RenderConfig  `yaml:"render" koanf:"render"`
	Preview  PreviewConfig `yaml:"preview" koanf:"preview"`
}

// GatewayConfig holds relay server settings.
type GatewayConfig struct {
	Port int `yaml:"port" koanf:"port"`
	// Interval is the minimum spacing between inbound requests in
	// milliseconds. Every request, regardless of endpoint, waits out the
	// remainder of this interval before it is processed.
	Interval int `yaml:"interval" koanf:"interval"`
}

// OllamaConfig holds upstream model-API settings.
type OllamaConfig struct {
	URL string `yaml:"url" koanf:"url"`
	// Timeout is the per-request upstream timeout in seconds.
	Timeout int `yaml:"timeout" koanf:"timeout"`
	// Retries is the number of retry attempts after a transient
	// transport error.
	Retries int `yaml:"retries" koanf:"retries"`
	// Delay is the fixed wait before a retry, in seconds.
	Delay int `yaml:"delay" koanf:"delay"`
}

// ModelsConfig controls the model list exposed to callers.
type ModelsConfig struct {
	Default string `yaml:"default" koanf:"default"`
	// Live enables fetching the model list from the gateway instead of
	// answering from the built-in cached list. Off by default: the live
	// endpoint has been seen rate-limited upstream, so the cached list is
	// the safe answer.
	Live bool `yaml:"live" koanf:"live"`
}

// ClientConfig holds client facade settings.
type ClientConfig struct {
	URL  string     `yaml:"url" koanf:"url"`
	Mode ClientMode `yaml:"mode" koanf:"mode"`
	// Probe is the gateway liveness probe timeout in seconds.
	Probe int `yaml:"probe" koanf:"probe"`
}

// RenderConfig holds slide rendering settings.
type RenderConfig struct {
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
	Output string `yaml:"output" koanf:"output"`
}

// PreviewConfig holds the deck preview server settings.
type PreviewConfig struct {
	Port int `yaml:"port" koanf:"port"`
}

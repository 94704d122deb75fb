package llm

import (
	"context"
	"fmt"

	"github.com/ipedrax/pitch-perfect/internal/ollama"
)

// OllamaProvider implements Provider with direct calls to an Ollama host,
// bypassing the relay. It reuses the upstream client and so inherits its
// timeout and transient-error retry behavior.
type OllamaProvider struct {
	client *ollama.Client
	model  string
}

// NewOllamaProvider creates a provider talking to the given Ollama host.
func NewOllamaProvider(client *ollama.Client, model string) *OllamaProvider {
	return &OllamaProvider{client: client, model: model}
}

func (p *OllamaProvider) Name() string {
	return "ollama"
}

func (p *OllamaProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	resp, err := p.client.Generate(ctx, ollama.GenerateRequest{
		Model:  model,
		Prompt: flatten(req.Messages),
		Stream: false,
	})
	if err != nil {
		return nil, fmt.Errorf("ollama generate: %w", err)
	}

	out := &CompletionResponse{
		Content:      resp.Response,
		InputTokens:  resp.PromptEvalCount,
		OutputTokens: resp.EvalCount,
		Model:        resp.Model,
	}
	if resp.Done {
		out.FinishReason = "stop"
	}
	return out, nil
}

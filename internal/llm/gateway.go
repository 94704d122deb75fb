package llm

import (
	"context"
	"errors"

	"github.com/ipedrax/pitch-perfect/internal/apiclient"
)

// GatewayProvider implements Provider on top of the relay's client facade.
// The facade already folds transport failures into its response shape, so
// the only errors surfaced here are the facade's own failure messages.
type GatewayProvider struct {
	client *apiclient.Client
	model  string
}

// NewGatewayProvider creates a provider routing completions through the
// relay.
func NewGatewayProvider(client *apiclient.Client, model string) *GatewayProvider {
	return &GatewayProvider{client: client, model: model}
}

func (p *GatewayProvider) Name() string {
	return "gateway"
}

// DetectEnvironment runs the facade's relay probe. Call once before the
// first completion when the client mode is auto.
func (p *GatewayProvider) DetectEnvironment(ctx context.Context) {
	p.client.DetectEnvironment(ctx)
}

func (p *GatewayProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	resp := p.client.Chat(ctx, flatten(req.Messages), model)
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "gateway request failed"
		}
		return nil, errors.New(msg)
	}

	out := &CompletionResponse{
		Content: resp.Response,
		Model:   resp.Model,
	}
	if resp.Done {
		out.FinishReason = "stop"
	}
	return out, nil
}

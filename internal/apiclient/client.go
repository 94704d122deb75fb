// Package apiclient is the client-side facade over the relay. It owns all
// fallback behavior: the cached model list, offline-mode retry-then-fallback,
// and the backend-required short circuit used on static hosting.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ipedrax/pitch-perfect/internal/config"
)

// BackendRequiredMessage is surfaced instead of a network error when the
// facade is configured for an environment with no reachable relay.
const BackendRequiredMessage = "AI backend required: start the relay with `pitchperfect serve` and try again"

// OfflineMessage is the fixed failure surfaced when the relay probe failed
// and a live attempt did not succeed either.
const OfflineMessage = "offline mode: the relay is not reachable; AI features are unavailable"

// ChatResponse is the facade's chat result. Every call produces one;
// failures are reported through Success and Error, never panics.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Model    string `json:"model,omitempty"`
	Done     bool   `json:"done,omitempty"`
	Error    string `json:"error,omitempty"`
}

// TestResult is the facade's connection test result.
type TestResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Models   int    `json:"models"`
	Endpoint string `json:"endpoint"`
	Error    string `json:"error,omitempty"`
}

// Client calls the relay's HTTP surface.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	mode         config.ClientMode
	liveModels   bool
	cachedModels []string
	probeTimeout time.Duration

	// offline is set when the startup probe failed; cleared again the
	// first time a real call succeeds.
	offline atomic.Bool
}

// New creates a facade for the relay at the configured URL. Call
// DetectEnvironment before first use when the mode is auto.
func New(client config.ClientConfig, models config.ModelsConfig) *Client {
	probe := time.Duration(client.Probe) * time.Second
	if probe == 0 {
		probe = 3 * time.Second
	}
	mode := client.Mode
	if mode == "" {
		mode = config.ModeAuto
	}

	return &Client{
		baseURL:      strings.TrimRight(client.URL, "/"),
		httpClient:   &http.Client{},
		mode:         mode,
		liveModels:   models.Live,
		cachedModels: config.CachedModels,
		probeTimeout: probe,
	}
}

// DetectEnvironment probes the relay and installs offline-mode fallback
// behavior when the probe fails. In backend-required mode it does nothing;
// that mode never touches the network.
func (c *Client) DetectEnvironment(ctx context.Context) {
	if c.mode != config.ModeAuto {
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	res := c.testConnection(probeCtx)
	if !res.Success {
		log.Printf("apiclient: relay probe failed, entering offline mode: %s", res.Error)
		c.offline.Store(true)
	}
}

// Offline reports whether the facade is currently in offline mode.
func (c *Client) Offline() bool { return c.offline.Load() }

// Chat sends a prompt through the relay. The returned response is always
// non-nil; network and HTTP failures are folded into the Success/Error
// fields.
func (c *Client) Chat(ctx context.Context, prompt, model string) *ChatResponse {
	if c.mode == config.ModeBackendRequired {
		return &ChatResponse{Success: false, Error: BackendRequiredMessage}
	}

	resp := c.chat(ctx, prompt, model)
	if resp.Success {
		c.offline.Store(false)
		return resp
	}

	// The offline wrapper always tries the real call first in case the
	// relay came back; only after that failure does it answer with the
	// fixed offline response.
	if c.offline.Load() {
		return &ChatResponse{Success: false, Error: OfflineMessage}
	}
	return resp
}

func (c *Client) chat(ctx context.Context, prompt, model string) *ChatResponse {
	body, err := json.Marshal(map[string]string{"prompt": prompt, "model": model})
	if err != nil {
		return &ChatResponse{Success: false, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return &ChatResponse{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return &ChatResponse{Success: false, Error: err.Error()}
	}
	defer httpResp.Body.Close()

	var resp ChatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return &ChatResponse{Success: false, Error: fmt.Sprintf("HTTP %d: unreadable response: %v", httpResp.StatusCode, err)}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Relay failures arrive as structured bodies; keep their error.
		if resp.Error == "" {
			resp.Error = fmt.Sprintf("HTTP %d", httpResp.StatusCode)
		}
		resp.Success = false
	}
	return &resp
}

// ListModels returns the model names available for chat. By default it
// answers from the cached list without touching the network; the live
// endpoint has been seen rate-limited upstream. With live fetching enabled
// it asks the relay and falls back to the cached list on any failure.
func (c *Client) ListModels(ctx context.Context) []string {
	if !c.liveModels || c.mode == config.ModeBackendRequired {
		return c.cachedModels
	}

	models, err := c.fetchModels(ctx)
	if err != nil {
		log.Printf("apiclient: live model fetch failed, using cached list: %v", err)
		return c.cachedModels
	}
	if len(models) == 0 {
		return c.cachedModels
	}
	return models
}

func (c *Client) fetchModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/models", nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	var body struct {
		Success bool `json:"success"`
		Models  []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("relay reported failure (HTTP %d)", httpResp.StatusCode)
	}

	names := make([]string, 0, len(body.Models))
	for _, m := range body.Models {
		if m.Name != "" {
			names = append(names, m.Name)
		}
	}
	return names, nil
}

// TestConnection checks relay and upstream liveness.
func (c *Client) TestConnection(ctx context.Context) *TestResult {
	if c.mode == config.ModeBackendRequired {
		return &TestResult{
			Success:  false,
			Message:  BackendRequiredMessage,
			Endpoint: c.baseURL,
		}
	}
	return c.testConnection(ctx)
}

func (c *Client) testConnection(ctx context.Context) *TestResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/test", nil)
	if err != nil {
		return &TestResult{Success: false, Error: err.Error(), Endpoint: c.baseURL}
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return &TestResult{Success: false, Error: err.Error(), Endpoint: c.baseURL}
	}
	defer httpResp.Body.Close()

	var res TestResult
	if err := json.NewDecoder(httpResp.Body).Decode(&res); err != nil {
		return &TestResult{Success: false, Error: err.Error(), Endpoint: c.baseURL}
	}
	return &res
}

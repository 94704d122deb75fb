package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// UpstreamError reports a non-2xx response from the Ollama API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// InvalidJSONError reports a 2xx upstream response whose body could not be
// parsed as JSON. Distinct from transport errors so callers can surface it
// as a protocol failure rather than retrying.
type InvalidJSONError struct {
	Raw string
	Err error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid JSON response: %v", e.Err)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

// Client talks to the Ollama HTTP API. Connections are reused through a
// bounded keep-alive pool shared by all requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
}

// Options configures a Client. A zero Timeout falls back to 60s and a
// zero RetryDelay to 3s. Retries is taken as-is: zero means a single
// attempt with no retry. The caller owns the retry policy; the config
// layer defaults it to one retry.
type Options struct {
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// NewClient creates a client for the Ollama API at baseURL.
func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.RetryDelay == 0 {
		opts.RetryDelay = 3 * time.Second
	}

	transport := &http.Transport{
		MaxConnsPerHost:     5,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     60 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		retries:    opts.Retries,
		retryDelay: opts.RetryDelay,
	}
}

// BaseURL returns the upstream endpoint this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Generate sends a non-streaming generate request and returns the parsed
// response. Transient transport errors are retried up to the configured
// budget, with a fixed delay between attempts.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	req.Stream = false

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshalling generate request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/api/generate", body)
	if err != nil {
		return nil, err
	}

	var resp GenerateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &InvalidJSONError{Raw: string(raw), Err: err}
	}
	return &resp, nil
}

// ListTags fetches the installed model list from /api/tags.
func (c *Client) ListTags(ctx context.Context) (*TagsResponse, error) {
	raw, err := c.do(ctx, http.MethodGet, "/api/tags", nil)
	if err != nil {
		return nil, err
	}

	var resp TagsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &InvalidJSONError{Raw: string(raw), Err: err}
	}
	return &resp, nil
}

// do performs one upstream request, retrying transient transport failures
// up to the configured budget.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			log.Printf("ollama: retrying %s %s after transient error: %v", method, path, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		raw, err := c.doOnce(ctx, method, path, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		// Only transport-level failures are worth a retry; upstream HTTP
		// errors and malformed bodies will not improve on a second attempt.
		if !IsTransient(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "PitchPerfect/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading ollama response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

// IsTransient reports whether err is a transport failure worth one retry:
// connection reset, timeout, or an abruptly closed connection.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return false
	}
	var badJSON *InvalidJSONError
	if errors.As(err, &badJSON) {
		return false
	}

	if errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	// net/http wraps abrupt server closes in plain-text errors.
	msg := err.Error()
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "Client.Timeout exceeded")
}

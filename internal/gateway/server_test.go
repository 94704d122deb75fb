package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ipedrax/pitch-perfect/internal/ollama"
)

// stubUpstream is a canned Upstream for handler tests.
type stubUpstream struct {
	generateResp *ollama.GenerateResponse
	generateErr  error
	tagsResp     *ollama.TagsResponse
	tagsErr      error
}

func (s *stubUpstream) Generate(ctx context.Context, req ollama.GenerateRequest) (*ollama.GenerateResponse, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	resp := *s.generateResp
	if resp.Model == "" {
		resp.Model = req.Model
	}
	return &resp, nil
}

func (s *stubUpstream) ListTags(ctx context.Context) (*ollama.TagsResponse, error) {
	if s.tagsErr != nil {
		return nil, s.tagsErr
	}
	return s.tagsResp, nil
}

func (s *stubUpstream) BaseURL() string { return "http://upstream.test:11434" }

func newTestServer(up Upstream) *Server {
	return New(Config{Port: 0, Interval: 0, DefaultModel: "default-model:latest"}, up)
}

func doRequest(t *testing.T, s *Server, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestChatSuccess(t *testing.T) {
	up := &stubUpstream{generateResp: &ollama.GenerateResponse{
		Response: "hi", Model: "m1", Done: true, EvalCount: 3,
	}}
	s := newTestServer(up)

	for _, path := range []string{"/api/chat", "/api/ollama/chat"} {
		w := doRequest(t, s, "POST", path, `{"prompt":"hello","model":"m1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}

		var resp chatResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Success || resp.Response != "hi" || resp.Model != "m1" || !resp.Done {
			t.Errorf("%s: unexpected body %+v", path, resp)
		}
	}
}

func TestChatDefaultsModel(t *testing.T) {
	var seen string
	up := &stubUpstream{generateResp: &ollama.GenerateResponse{Response: "ok", Done: true}}
	s := New(Config{DefaultModel: "default-model:latest"}, upstreamFunc{
		generate: func(ctx context.Context, req ollama.GenerateRequest) (*ollama.GenerateResponse, error) {
			seen = req.Model
			return up.generateResp, nil
		},
	})

	w := doRequest(t, s, "POST", "/api/chat", `{"prompt":"hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if seen != "default-model:latest" {
		t.Errorf("expected default model applied, got %q", seen)
	}
}

// upstreamFunc adapts closures to Upstream.
type upstreamFunc struct {
	generate func(context.Context, ollama.GenerateRequest) (*ollama.GenerateResponse, error)
	tags     func(context.Context) (*ollama.TagsResponse, error)
}

func (u upstreamFunc) Generate(ctx context.Context, req ollama.GenerateRequest) (*ollama.GenerateResponse, error) {
	return u.generate(ctx, req)
}

func (u upstreamFunc) ListTags(ctx context.Context) (*ollama.TagsResponse, error) {
	if u.tags == nil {
		return nil, errors.New("no tags stub")
	}
	return u.tags(ctx)
}

func (u upstreamFunc) BaseURL() string { return "http://upstream.test:11434" }

func TestChatBadJSONIs400(t *testing.T) {
	s := newTestServer(&stubUpstream{})

	w := doRequest(t, s, "POST", "/api/chat", `{"prompt": "unterminated`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad JSON, got %d", w.Code)
	}

	var resp failureResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success {
		t.Error("expected success false")
	}
	if !strings.Contains(resp.Error, "Invalid request body") {
		t.Errorf("unexpected error %q", resp.Error)
	}
}

func TestChatUpstreamErrorIs500(t *testing.T) {
	up := &stubUpstream{generateErr: &ollama.UpstreamError{StatusCode: 404, Body: "model not found"}}
	s := newTestServer(up)

	w := doRequest(t, s, "POST", "/api/chat", `{"prompt":"hello"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp failureResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success {
		t.Error("expected success false")
	}
	if resp.StatusCode != 404 {
		t.Errorf("expected upstream statusCode 404, got %d", resp.StatusCode)
	}
	if resp.Error == "" || resp.Details == nil {
		t.Errorf("expected error and details populated: %+v", resp)
	}
}

func TestModelsSuccess(t *testing.T) {
	up := &stubUpstream{tagsResp: &ollama.TagsResponse{Models: []json.RawMessage{
		json.RawMessage(`{"name":"llama3:latest"}`),
	}}}
	s := newTestServer(up)

	w := doRequest(t, s, "GET", "/api/models", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp modelsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || len(resp.Models) != 1 {
		t.Errorf("unexpected body %+v", resp)
	}
}

func TestModelsFailureIs500WithEmptyList(t *testing.T) {
	up := &stubUpstream{tagsErr: errors.New("connection refused")}
	s := newTestServer(up)

	w := doRequest(t, s, "GET", "/api/models", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["success"] != false {
		t.Error("expected success false")
	}
	models, ok := body["models"].([]any)
	if !ok || len(models) != 0 {
		t.Errorf("expected empty models array, got %v", body["models"])
	}
}

func TestTestEndpointAlways200(t *testing.T) {
	t.Run("upstream up", func(t *testing.T) {
		up := &stubUpstream{tagsResp: &ollama.TagsResponse{Models: []json.RawMessage{
			json.RawMessage(`{}`), json.RawMessage(`{}`),
		}}}
		w := doRequest(t, newTestServer(up), "GET", "/api/test", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp testResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		if !resp.Success || resp.Models != 2 || resp.Message != "Ollama connection successful" {
			t.Errorf("unexpected body %+v", resp)
		}
		if resp.Endpoint == "" {
			t.Error("expected endpoint populated")
		}
	})

	t.Run("upstream down", func(t *testing.T) {
		up := &stubUpstream{tagsErr: errors.New("dial tcp: connection refused")}
		w := doRequest(t, newTestServer(up), "GET", "/api/ollama/test", "")
		if w.Code != http.StatusOK {
			t.Fatalf("test endpoint must stay 200 on failure, got %d", w.Code)
		}

		var resp testResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Success || resp.Models != 0 || resp.Message != "Connection failed" {
			t.Errorf("unexpected body %+v", resp)
		}
		if resp.Error == "" {
			t.Error("expected error populated")
		}
	})
}

func TestNotFoundShapes(t *testing.T) {
	s := newTestServer(&stubUpstream{})

	w := doRequest(t, s, "GET", "/api/bogus", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Endpoint not found") {
		t.Errorf("expected api-scoped message, got %s", w.Body.String())
	}

	w = doRequest(t, s, "GET", "/bogus", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Not found") || strings.Contains(w.Body.String(), "Endpoint") {
		t.Errorf("expected generic message, got %s", w.Body.String())
	}
}

func TestOptionsIs200(t *testing.T) {
	s := newTestServer(&stubUpstream{})

	for _, path := range []string{"/api/chat", "/anything"} {
		w := doRequest(t, s, "OPTIONS", path, "")
		if w.Code != http.StatusOK {
			t.Errorf("OPTIONS %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestPacerSpacesRequests(t *testing.T) {
	const interval = 50 * time.Millisecond
	up := &stubUpstream{tagsResp: &ollama.TagsResponse{}}
	s := New(Config{Interval: interval}, up)

	start := time.Now()
	for i := 0; i < 3; i++ {
		doRequest(t, s, "GET", "/api/test", "")
	}
	elapsed := time.Since(start)

	// Three back-to-back requests must span at least two full intervals.
	if elapsed < 2*interval {
		t.Errorf("3 requests finished in %v, want >= %v", elapsed, 2*interval)
	}
}

func TestPacerConcurrentWaiters(t *testing.T) {
	const interval = 30 * time.Millisecond
	p := NewPacer(interval)

	start := time.Now()
	done := make(chan time.Duration, 4)
	for i := 0; i < 4; i++ {
		go func() {
			if err := p.Wait(context.Background()); err != nil {
				t.Errorf("Wait: %v", err)
			}
			done <- time.Since(start)
		}()
	}

	var last time.Duration
	for i := 0; i < 4; i++ {
		d := <-done
		if d > last {
			last = d
		}
	}
	if last < 3*interval {
		t.Errorf("last of 4 concurrent waiters released after %v, want >= %v", last, 3*interval)
	}
}

func TestPacerWaitHonorsContext(t *testing.T) {
	p := NewPacer(1 * time.Second)
	// Burn the first free slot.
	if err := p.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := p.Wait(ctx); err == nil {
		t.Error("expected context deadline error while queued")
	}
}

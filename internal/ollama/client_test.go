package ollama

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"syscall"
	"testing"
	"time"
)

func testClient(url string, retries int) *Client {
	return NewClient(url, Options{
		Timeout:    5 * time.Second,
		Retries:    retries,
		RetryDelay: 10 * time.Millisecond,
	})
}

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Write([]byte(`{"response":"hi","model":"m1","done":true,"eval_count":7}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL, 1).Generate(context.Background(), GenerateRequest{
		Model:  "m1",
		Prompt: "hello",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Response != "hi" || resp.Model != "m1" || !resp.Done {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.EvalCount != 7 {
		t.Errorf("expected eval_count 7, got %d", resp.EvalCount)
	}
}

func TestGenerateUpstreamErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 1).Generate(context.Background(), GenerateRequest{Prompt: "x"})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", upstream.StatusCode)
	}
	if calls.Load() != 1 {
		t.Errorf("expected no retry on HTTP error, got %d calls", calls.Load())
	}
}

func TestGenerateInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 1).Generate(context.Background(), GenerateRequest{Prompt: "x"})
	var badJSON *InvalidJSONError
	if !errors.As(err, &badJSON) {
		t.Fatalf("expected InvalidJSONError, got %v", err)
	}
	if badJSON.Raw == "" {
		t.Error("expected raw body preserved")
	}
}

func TestRetryRecoversFromAbruptClose(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Abruptly close the connection without a response.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("recorder does not support hijacking")
			}
			conn, _, _ := hj.Hijack()
			conn.Close()
			return
		}
		w.Write([]byte(`{"response":"recovered","model":"m1","done":true}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL, 1).Generate(context.Background(), GenerateRequest{Prompt: "x"})
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if resp.Response != "recovered" {
		t.Errorf("unexpected response %q", resp.Response)
	}
	if calls.Load() != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", calls.Load())
	}
}

func TestRetryBudgetExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		hj := w.(http.Hijacker)
		conn, _, _ := hj.Hijack()
		conn.Close()
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 1).Generate(context.Background(), GenerateRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected failure after retry budget exhausted")
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 attempts with budget 1, got %d", calls.Load())
	}
}

func TestZeroOptionsMakesSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		hj := w.(http.Hijacker)
		conn, _, _ := hj.Hijack()
		conn.Close()
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, Options{}).Generate(context.Background(), GenerateRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected failure without a retry budget")
	}
	if calls.Load() != 1 {
		t.Errorf("expected a single attempt with zero Retries, got %d", calls.Load())
	}
}

func TestListTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"models":[{"name":"llama3:latest"},{"name":"mistral:latest"}]}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL, 1).ListTags(context.Background())
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(resp.Models) != 2 {
		t.Errorf("expected 2 models, got %d", len(resp.Models))
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"conn reset", syscall.ECONNRESET, true},
		{"unexpected eof", io.ErrUnexpectedEOF, true},
		{"upstream 500", &UpstreamError{StatusCode: 500}, false},
		{"bad json", &InvalidJSONError{Err: io.EOF}, false},
		{"plain error", errors.New("no route to host"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTransient(tc.err); got != tc.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

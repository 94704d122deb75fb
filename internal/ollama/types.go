package ollama

import "encoding/json"

// GenerateRequest is the body sent to the Ollama /api/generate endpoint.
// Streaming is always disabled; the relay works with complete responses.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse is the non-streaming body returned by /api/generate.
type GenerateResponse struct {
	Response        string `json:"response"`
	Model           string `json:"model"`
	Done            bool   `json:"done"`
	Context         []int  `json:"context,omitempty"`
	TotalDuration   int64  `json:"total_duration,omitempty"`
	LoadDuration    int64  `json:"load_duration,omitempty"`
	PromptEvalCount int    `json:"prompt_eval_count,omitempty"`
	EvalCount       int    `json:"eval_count,omitempty"`
}

// TagsResponse is the body returned by /api/tags. Model entries are kept as
// raw JSON so the relay can pass them through without reshaping.
type TagsResponse struct {
	Models []json.RawMessage `json:"models"`
}

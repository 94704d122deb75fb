package gateway

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ipedrax/pitch-perfect/internal/ollama"
)

// chatRequest is the inbound chat body.
type chatRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// chatResponse is the relay's chat success shape, a flattened view of the
// upstream generate response.
type chatResponse struct {
	Success         bool   `json:"success"`
	Response        string `json:"response"`
	Model           string `json:"model"`
	Done            bool   `json:"done"`
	Context         []int  `json:"context,omitempty"`
	TotalDuration   int64  `json:"total_duration,omitempty"`
	LoadDuration    int64  `json:"load_duration,omitempty"`
	PromptEvalCount int    `json:"prompt_eval_count,omitempty"`
	EvalCount       int    `json:"eval_count,omitempty"`
}

// failureResponse is the relay's error shape. StatusCode carries the
// upstream HTTP status when one was received.
type failureResponse struct {
	Success    bool            `json:"success"`
	Error      string          `json:"error"`
	StatusCode int             `json:"statusCode,omitempty"`
	Details    *failureDetails `json:"details,omitempty"`
	Models     *[]string       `json:"models,omitempty"`
}

type failureDetails struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	model := req.Model
	if model == "" {
		model = s.cfg.DefaultModel
	}

	log.Printf("gateway: chat request (model %s, %d chars)", model, len(req.Prompt))

	resp, err := s.upstream.Generate(r.Context(), ollama.GenerateRequest{
		Model:  model,
		Prompt: req.Prompt,
	})
	if err != nil {
		log.Printf("gateway: chat request failed: %v", err)
		fail := failureResponse{Error: err.Error()}
		var upstream *ollama.UpstreamError
		if errors.As(err, &upstream) {
			fail.StatusCode = upstream.StatusCode
		}
		fail.Details = &failureDetails{Error: fail.Error, StatusCode: fail.StatusCode}
		writeJSON(w, http.StatusInternalServerError, fail)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Success:         true,
		Response:        resp.Response,
		Model:           resp.Model,
		Done:            resp.Done,
		Context:         resp.Context,
		TotalDuration:   resp.TotalDuration,
		LoadDuration:    resp.LoadDuration,
		PromptEvalCount: resp.PromptEvalCount,
		EvalCount:       resp.EvalCount,
	})
}

// modelsResponse passes the upstream tag entries through untouched.
type modelsResponse struct {
	Success bool              `json:"success"`
	Models  []json.RawMessage `json:"models"`
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	tags, err := s.upstream.ListTags(r.Context())
	if err != nil {
		log.Printf("gateway: fetching models failed: %v", err)
		empty := []string{}
		writeJSON(w, http.StatusInternalServerError, failureResponse{
			Error:  err.Error(),
			Models: &empty,
		})
		return
	}

	models := tags.Models
	if models == nil {
		models = []json.RawMessage{}
	}
	writeJSON(w, http.StatusOK, modelsResponse{Success: true, Models: models})
}

// testResponse reports upstream liveness. The HTTP status is always 200;
// failure is communicated only through the success field. Consumers depend
// on the always-200 contract, so it is preserved even though it conflates
// relay liveness with upstream liveness.
type testResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Models   int    `json:"models"`
	Endpoint string `json:"endpoint"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	resp := testResponse{Endpoint: s.upstream.BaseURL()}

	tags, err := s.upstream.ListTags(r.Context())
	if err != nil {
		resp.Message = "Connection failed"
		resp.Error = err.Error()
	} else {
		resp.Success = true
		resp.Message = "Ollama connection successful"
		resp.Models = len(tags.Models)
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("gateway: encoding response: %v", err)
	}
}

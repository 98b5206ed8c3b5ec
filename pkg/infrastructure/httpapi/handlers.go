package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/application"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/scoring"
	"github.com/KnownUser19/Smart-Task-Analyzer/pkg/domain/task"
)

// errorResponse is the JSON error envelope for all failure modes.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readValidated(w, r, analyzeSchema)
	if !ok {
		return
	}

	var req application.AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	t := timeout.New[*scoring.Analysis](timeout.Config{DefaultTimeout: s.requestTimeout})
	result, err := t.Execute(r.Context(), s.requestTimeout, func(ctx context.Context) (*scoring.Analysis, error) {
		return s.svc.Analyze(ctx, req)
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readValidated(w, r, suggestSchema)
	if !ok {
		return
	}

	var req application.SuggestRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	t := timeout.New[*application.SuggestionResult](timeout.Config{DefaultTimeout: s.requestTimeout})
	result, err := t.Execute(r.Context(), s.requestTimeout, func(ctx context.Context) (*application.SuggestionResult, error) {
		return s.svc.Suggest(ctx, req)
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readValidated(w, r, validateSchema)
	if !ok {
		return
	}

	var req application.AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data", err.Error())
		return
	}

	result, err := s.svc.Validate(r.Context(), req.Tasks)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"strategies": s.svc.Strategies(),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "Smart Task Analyzer API",
		"version":     s.version,
		"description": "Task prioritization via weighted multi-factor scoring",
		"endpoints": map[string]string{
			"POST /api/tasks/analyze":  "Score and sort tasks by priority",
			"POST /api/tasks/suggest":  "Get top task suggestions with explanations",
			"POST /api/tasks/validate": "Validate task data without scoring",
			"GET /api/strategies":      "List available strategies and weights",
		},
		"strategies": s.svc.Strategies(),
	})
}

// readValidated reads the body and checks it against the JSON schema
// before any typed decoding happens. Returns false after writing an
// error response.
func (s *Server) readValidated(w http.ResponseWriter, r *http.Request, schema schemaKind) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data", "unreadable request body")
		return nil, false
	}

	if details, err := validateBody(schema, body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data", details...)
		return nil, false
	}
	return body, true
}

// writeDomainError maps service errors onto the HTTP taxonomy: invalid
// input and invalid strategy are client errors, timeouts are 503,
// everything else is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoring.ErrInvalidStrategy):
		writeError(w, http.StatusBadRequest, "Invalid strategy", err.Error())
	case isInvalidInput(err):
		writeError(w, http.StatusBadRequest, "Invalid input data", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "Analysis timed out", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Analysis failed", err.Error())
	}
}

func isInvalidInput(err error) bool {
	return errors.Is(err, task.ErrNoTasks) ||
		errors.Is(err, task.ErrMissingID) ||
		errors.Is(err, task.ErrMissingTitle) ||
		errors.Is(err, task.ErrDuplicateID) ||
		errors.Is(err, application.ErrInvalidReferenceDate) ||
		errors.Is(err, scoring.ErrInvalidWeights)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details ...string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/nyayasetu/nyayasetu/internal/core"
	"github.com/nyayasetu/nyayasetu/pkg/log"
)

// defaultAnalyzeQuery is used when a GET analyze request carries no question.
const defaultAnalyzeQuery = "Summarize this document"

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondPipelineError maps domain errors onto status codes: missing context
// is a 404, a failed model call is a 500 carrying the upstream message.
func respondPipelineError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.FromCtx(r.Context())
	switch {
	case errors.Is(err, core.ErrContextUnavailable):
		logger.Warn().Err(err).Msg("context unavailable")
		respondError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error().Err(err).Msg("request failed")
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var query core.Query
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if query.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	if query.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	answer, err := s.advisor.Answer(r.Context(), query.Text, query.UserID)
	if err != nil {
		respondPipelineError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, answer)
}

// handleAnalyze answers a question about the externally parsed document.
// GET reads text and user_id from the query string and defaults the question
// so a bare GET summarizes the current document.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var query core.Query
	if r.Method == http.MethodGet {
		query.Text = r.URL.Query().Get("text")
		query.UserID = r.URL.Query().Get("user_id")
		if query.Text == "" {
			query.Text = defaultAnalyzeQuery
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if query.Text == "" {
			query.Text = defaultAnalyzeQuery
		}
	}
	if query.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	answer, err := s.analyzer.Answer(r.Context(), query.Text, query.UserID)
	if err != nil {
		respondPipelineError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, answer)
}

// handleGenerateDocument runs the full generation workflow and streams the
// rendered PDF back.
func (s *Server) handleGenerateDocument(w http.ResponseWriter, r *http.Request) {
	var req core.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Issue == "" {
		respondError(w, http.StatusBadRequest, "issue is required")
		return
	}
	if req.UserName == "" {
		respondError(w, http.StatusBadRequest, "user_name is required")
		return
	}
	if req.Location == "" {
		respondError(w, http.StatusBadRequest, "location is required")
		return
	}

	result, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		respondPipelineError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(result.Path)+`"`)
	w.Header().Set("X-Document-Type", string(result.Type))
	http.ServeFile(w, r, result.Path)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": core.ServiceName,
		"version": core.ServiceVersion,
	})
}

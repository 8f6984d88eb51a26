package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/pipeline"
	"wellspring-ai/internal/profile"
)

// RelevanceHandler handles HTTP requests for query relevance checks.
type RelevanceHandler struct {
	registry *profile.Registry
	pipeline *pipeline.Pipeline
}

// NewRelevanceHandler creates a new RelevanceHandler.
func NewRelevanceHandler(registry *profile.Registry, p *pipeline.Pipeline) *RelevanceHandler {
	return &RelevanceHandler{registry: registry, pipeline: p}
}

// RelevanceRequest represents the HTTP request payload for relevance checks.
type RelevanceRequest struct {
	Text string `json:"text"`
}

// RelevanceResponse represents the HTTP response payload for relevance checks.
type RelevanceResponse struct {
	IsRelevant bool   `json:"isRelevant"`
	Status     string `json:"status"`
}

func (h *RelevanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	prof, ok := resolveProfile(w, r, h.registry, chi.URLParam(r, "chatbotID"))
	if !ok {
		return
	}

	var req RelevanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	relevant := h.pipeline.CheckRelevance(ctx, prof, req.Text)
	status := "relevant"
	if !relevant {
		status = "off_topic"
	}
	writeJSON(ctx, w, RelevanceResponse{IsRelevant: relevant, Status: status})
}

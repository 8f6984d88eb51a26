package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/pipeline"
	"wellspring-ai/internal/profile"
)

// RerankHandler handles HTTP requests for second-pass reranking and context
// assembly over an already-retrieved source set.
type RerankHandler struct {
	registry *profile.Registry
	pipeline *pipeline.Pipeline
}

// NewRerankHandler creates a new RerankHandler.
func NewRerankHandler(registry *profile.Registry, p *pipeline.Pipeline) *RerankHandler {
	return &RerankHandler{registry: registry, pipeline: p}
}

// RerankRequest represents the HTTP request payload for reranking.
type RerankRequest struct {
	QueryText string            `json:"queryText"`
	Sources   []pipeline.Source `json:"sources"`
}

// RerankResponse represents the HTTP response payload for reranking.
type RerankResponse struct {
	Sources     []pipeline.Source `json:"sources"`
	ContextText string            `json:"contextText"`
}

func (h *RerankHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	prof, ok := resolveProfile(w, r, h.registry, chi.URLParam(r, "chatbotID"))
	if !ok {
		return
	}

	var req RerankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.QueryText == "" {
		writeError(w, http.StatusBadRequest, "Query text is required")
		return
	}

	reranked, block := h.pipeline.Rerank(ctx, prof, req.QueryText, req.Sources)
	if reranked == nil {
		reranked = []pipeline.Source{}
	}
	writeJSON(ctx, w, RerankResponse{
		Sources:     reranked,
		ContextText: block.Text,
	})
}

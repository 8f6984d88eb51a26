package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/pipeline"
	"wellspring-ai/internal/profile"
)

// SearchHandler handles HTTP requests for the retrieval stage of the
// pipeline: rewrite, expand, embed, and search the corpus.
type SearchHandler struct {
	registry *profile.Registry
	pipeline *pipeline.Pipeline
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(registry *profile.Registry, p *pipeline.Pipeline) *SearchHandler {
	return &SearchHandler{registry: registry, pipeline: p}
}

// SearchRequest represents the HTTP request payload for retrieval.
type SearchRequest struct {
	Text        string          `json:"text"`
	ChatHistory []pipeline.Turn `json:"chatHistory,omitempty"`
}

// SearchResponse represents the HTTP response payload for retrieval.
type SearchResponse struct {
	Sources       []pipeline.Source     `json:"sources"`
	EnhancedQuery string                `json:"enhancedQuery"`
	Status        pipeline.SearchStatus `json:"status"`
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	prof, ok := resolveProfile(w, r, h.registry, chi.URLParam(r, "chatbotID"))
	if !ok {
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	result, err := h.pipeline.Search(ctx, prof, req.Text, req.ChatHistory, nil)
	if err != nil {
		mapPipelineError(w, ctx, err, "Failed to search sources")
		return
	}

	sources := result.Sources
	if sources == nil {
		sources = []pipeline.Source{}
	}
	writeJSON(ctx, w, SearchResponse{
		Sources:       sources,
		EnhancedQuery: result.EnhancedQuery,
		Status:        result.Status,
	})
}

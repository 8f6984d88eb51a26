package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/profile"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// writeJSON writes a JSON success response.
func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// resolveProfile looks up the chatbot named in the URL, writing a 404 on a
// miss. The second return value reports whether the caller should continue.
func resolveProfile(w http.ResponseWriter, r *http.Request, registry *profile.Registry, chatbotID string) (*profile.Profile, bool) {
	ctx := r.Context()
	prof, err := registry.Lookup(chatbotID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "unknown chatbot", "chatbot_id", chatbotID)
			writeError(w, http.StatusNotFound, "Chatbot not found")
			return nil, false
		}
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "profile lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to resolve chatbot")
		return nil, false
	}
	return prof, true
}

// mapPipelineError maps pipeline errors to appropriate HTTP status codes.
func mapPipelineError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "pipeline error", "error", err)

	if err == nil {
		writeError(w, http.StatusInternalServerError, defaultMsg)
		return
	}

	errMsg := strings.ToLower(err.Error())

	// Vector store errors -> 503
	if strings.Contains(errMsg, "vector store") ||
		strings.Contains(errMsg, "qdrant") ||
		strings.Contains(errMsg, "failed to search") {
		writeError(w, http.StatusServiceUnavailable, "Vector store unavailable")
		return
	}

	// LLM/embedding errors -> 502
	if strings.Contains(errMsg, "embed") ||
		strings.Contains(errMsg, "chat completion") ||
		strings.Contains(errMsg, "rewrite") {
		writeError(w, http.StatusBadGateway, "External service error")
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}

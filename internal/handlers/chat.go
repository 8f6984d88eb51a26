package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/pipeline"
	"wellspring-ai/internal/profile"
)

// ChatHandler handles HTTP requests for a full streamed chat turn. The
// response is Server-Sent Events: status transitions, the resolved source
// list, answer fragments, and a terminal [DONE] marker.
type ChatHandler struct {
	registry *profile.Registry
	pipeline *pipeline.Pipeline
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(registry *profile.Registry, p *pipeline.Pipeline) *ChatHandler {
	return &ChatHandler{registry: registry, pipeline: p}
}

// ChatRequest represents the HTTP request payload for a chat turn. The last
// message must be from the user; everything before it is history.
type ChatRequest struct {
	Messages []pipeline.Turn `json:"messages"`
}

type statusEvent struct {
	Status pipeline.Status `json:"status"`
}

type sourceEvent struct {
	Index  int             `json:"index"`
	Source pipeline.Source `json:"source"`
}

type chunkEvent struct {
	Content string `json:"content"`
}

func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	prof, ok := resolveProfile(w, r, h.registry, chi.URLParam(r, "chatbotID"))
	if !ok {
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "Messages are required")
		return
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != pipeline.RoleUser || last.Content == "" {
		writeError(w, http.StatusBadRequest, "Last message must be a non-empty user message")
		return
	}
	history := req.Messages[:len(req.Messages)-1]

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	writeEvent := func(event string, v any) error {
		payload, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if event != "" {
			if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	tracker := pipeline.NewStatusTracker(func(status pipeline.Status) {
		_ = writeEvent("status", statusEvent{Status: status})
	})
	// The auto-revert after a failed search must not outlive the response.
	defer tracker.Stop()

	events := pipeline.AnswerEvents{
		OnSources: func(items []pipeline.ContextItem) error {
			out := make([]sourceEvent, len(items))
			for i, item := range items {
				out[i] = sourceEvent{Index: item.Index, Source: item.Source}
			}
			payload, err := json.Marshal(out)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "event: sources\ndata: %s\n\n", payload); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		},
		OnChunk: func(chunk string) error {
			return writeEvent("", chunkEvent{Content: chunk})
		},
	}

	result, err := h.pipeline.Answer(ctx, prof, last.Content, history, tracker, events)
	if err != nil {
		// Headers are already written, so signal the failure in-stream.
		logger.ErrorContext(ctx, "chat turn failed", "error", err)
		_ = writeEvent("error", ErrorResponse{Error: "Failed to generate answer"})
		return
	}

	logger.InfoContext(ctx, "chat turn completed",
		"chatbot_id", prof.ID,
		"relevant", result.Relevant,
		"status", result.Status,
		"answer_chars", len(result.Text),
	)
	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

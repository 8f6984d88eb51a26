package handlers

import (
	"encoding/json"
	"net/http"

	"wellspring-ai/internal/citation"
	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/pipeline"
)

// RenderHandler handles HTTP requests for citation-aware rendering of a
// generated answer against its source list.
type RenderHandler struct{}

// NewRenderHandler creates a new RenderHandler.
func NewRenderHandler() *RenderHandler {
	return &RenderHandler{}
}

// RenderRequest represents the HTTP request payload for rendering.
type RenderRequest struct {
	Content string            `json:"content"`
	Sources []pipeline.Source `json:"sources,omitempty"`
}

// RenderedSegment is one run of answer text or one resolved citation marker.
type RenderedSegment struct {
	Kind   string           `json:"kind"`
	Text   string           `json:"text,omitempty"`
	Bold   bool             `json:"bold,omitempty"`
	Number int              `json:"number,omitempty"`
	Source *pipeline.Source `json:"source,omitempty"`
}

// RenderedParagraph is one line of the answer with its header level.
type RenderedParagraph struct {
	HeaderLevel int               `json:"headerLevel,omitempty"`
	Segments    []RenderedSegment `json:"segments"`
}

// RenderResponse represents the HTTP response payload for rendering.
type RenderResponse struct {
	Paragraphs []RenderedParagraph `json:"paragraphs"`
	HTML       string              `json:"html"`
}

func (h *RenderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	rendered := citation.Render(req.Content, req.Sources)

	html, err := citation.ToHTML(rendered)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render HTML", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render content")
		return
	}

	paragraphs := make([]RenderedParagraph, 0, len(rendered.Paragraphs))
	for _, para := range rendered.Paragraphs {
		segments := make([]RenderedSegment, 0, len(para.Segments))
		for _, seg := range para.Segments {
			out := RenderedSegment{Bold: seg.Bold}
			switch seg.Kind {
			case citation.SegmentCitation:
				out.Kind = "citation"
				out.Number = seg.Number
				out.Source = seg.Source
			default:
				out.Kind = "text"
				out.Text = seg.Text
			}
			segments = append(segments, out)
		}
		paragraphs = append(paragraphs, RenderedParagraph{
			HeaderLevel: para.HeaderLevel,
			Segments:    segments,
		})
	}

	writeJSON(ctx, w, RenderResponse{Paragraphs: paragraphs, HTML: html})
}

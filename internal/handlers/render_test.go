package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestRenderHandler(t *testing.T) {
	handler := NewRenderHandler()
	w := postJSON(t, handler, "test-bot", `{
		"content": "Grace is unmerited favor [1].",
		"sources": [{"id":"a","title":"First Source","content":"alpha","url":"https://example.com/a","similarity":0.9}]
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp RenderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Paragraphs) != 1 {
		t.Fatalf("paragraphs = %d, want 1", len(resp.Paragraphs))
	}
	var citation *RenderedSegment
	for i := range resp.Paragraphs[0].Segments {
		if resp.Paragraphs[0].Segments[i].Kind == "citation" {
			citation = &resp.Paragraphs[0].Segments[i]
		}
	}
	if citation == nil {
		t.Fatal("no citation segment in response")
	}
	if citation.Number != 1 || citation.Source == nil || citation.Source.ID != "a" {
		t.Errorf("citation = %+v, want [1] bound to source a", citation)
	}

	if !strings.Contains(resp.HTML, `href="https://example.com/a"`) {
		t.Errorf("html = %q, want citation link", resp.HTML)
	}
}

func TestRenderHandler_OutOfRangeMarkerLiteral(t *testing.T) {
	handler := NewRenderHandler()
	w := postJSON(t, handler, "test-bot", `{"content":"A claim [7].","sources":[]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp RenderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, seg := range resp.Paragraphs[0].Segments {
		if seg.Kind == "citation" {
			t.Errorf("segment %+v bound, want literal text for out-of-range marker", seg)
		}
	}
}

func TestRenderHandler_BadRequests(t *testing.T) {
	handler := NewRenderHandler()

	if w := postJSON(t, handler, "test-bot", `{not json`); w.Code != http.StatusBadRequest {
		t.Errorf("invalid body status = %d, want 400", w.Code)
	}
	if w := postJSON(t, handler, "test-bot", `{"sources":[]}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing content status = %d, want 400", w.Code)
	}
}

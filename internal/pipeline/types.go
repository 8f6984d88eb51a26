package pipeline

import (
	"wellspring-ai/internal/vectorstore"
)

// Source is a corpus passage flowing through the pipeline. ID is the identity
// key for dedupe across all stages.
type Source struct {
	ID         string         `json:"id"`
	Type       string         `json:"type,omitempty"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	URL        string         `json:"url,omitempty"`
	Similarity float32        `json:"similarity"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Turn is a single conversation turn. The pipeline only reads history, never
// mutates it.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation roles the pipeline reads from history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// historyWindow bounds how many trailing turns the rewriter folds into a query.
const historyWindow = 6

// SearchStatus reports the outcome of the retrieval stage.
type SearchStatus string

const (
	// StatusSearchComplete means retrieval produced at least one source.
	StatusSearchComplete SearchStatus = "search_complete"
	// StatusNoResults means every retrieval branch failed or nothing matched.
	StatusNoResults SearchStatus = "no_results"
)

// SearchResult is the output of the retrieval stage for one turn.
type SearchResult struct {
	// Sources is the merged, deduplicated, similarity-ranked candidate list.
	Sources []Source
	// EnhancedQuery is the history-enriched query used for retrieval.
	EnhancedQuery string
	// Status reports whether retrieval produced anything.
	Status SearchStatus
}

// RetrievalOutcome is the settled result of one retrieval branch. Branches
// never throw into their siblings; errors ride along here.
type RetrievalOutcome struct {
	Query   string
	Sources []Source
	Err     error
}

// documentToSource converts a similarity-search hit into a pipeline source.
func documentToSource(doc vectorstore.Document) Source {
	return Source{
		ID:         doc.ID,
		Type:       doc.Type,
		Title:      doc.Title,
		Content:    doc.Content,
		URL:        doc.URL,
		Similarity: doc.Similarity,
		Metadata:   doc.Metadata,
	}
}

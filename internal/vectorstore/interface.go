package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks wellspring-ai/internal/vectorstore Store

import "context"

// Document is a corpus passage returned by a similarity search.
type Document struct {
	// ID is unique within a corpus and is the dedupe key across the pipeline.
	ID string
	// Type is the kind of document (book, podcast, article, ...).
	Type string
	// Title is the document title.
	Title string
	// Content is the passage text.
	Content string
	// URL optionally points at the original document.
	URL string
	// Similarity is the vector similarity score in [0,1].
	Similarity float32
	// Metadata carries additional index payload fields.
	Metadata map[string]any
}

// SearchParams mirrors the similarity-search RPC contract.
type SearchParams struct {
	// MatchThreshold is the minimum similarity score for a hit.
	MatchThreshold float32
	// MatchCount is the maximum number of hits to return.
	MatchCount int
	// Namespace scopes the search to one assistant's corpus partition.
	Namespace string
}

// Store defines the similarity-search collaborator interface.
type Store interface {
	// Search performs a namespace-scoped similarity search.
	Search(ctx context.Context, collection string, query []float32, params SearchParams) ([]Document, error)

	// CollectionExists checks if a collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)
}

package pipeline

import (
	"context"
	"fmt"
	"sync"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/profile"
	"wellspring-ai/internal/retry"
	"wellspring-ai/internal/vectorstore"
)

// VectorRetriever embeds a query string and runs a namespace-scoped similarity
// search, retrying transient failures with exponential backoff.
type VectorRetriever struct {
	embedder   Embedder
	store      vectorstore.Store
	collection string
	policy     retry.Policy
}

// NewVectorRetriever creates a retriever over the given collection with the
// default retry budget (3 attempts, 1s/2s backoff on transient errors).
func NewVectorRetriever(embedder Embedder, store vectorstore.Store, collection string) *VectorRetriever {
	return &VectorRetriever{
		embedder:   embedder,
		store:      store,
		collection: collection,
		policy:     retry.DefaultPolicy(vectorstore.IsTransient),
	}
}

// NewVectorRetrieverWithPolicy creates a retriever with a custom retry policy.
func NewVectorRetrieverWithPolicy(embedder Embedder, store vectorstore.Store, collection string, policy retry.Policy) *VectorRetriever {
	return &VectorRetriever{
		embedder:   embedder,
		store:      store,
		collection: collection,
		policy:     policy,
	}
}

// Retrieve runs one retrieval branch for one query variant. Errors are
// returned, not thrown: the caller folds them into a settled outcome so
// sibling branches are unaffected.
func (r *VectorRetriever) Retrieve(ctx context.Context, p *profile.Profile, query string) ([]Source, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var sources []Source
	err := retry.Do(ctx, r.policy, func(ctx context.Context) error {
		embeddings, err := r.embedder.EmbedTexts(ctx, []string{query})
		if err != nil {
			return fmt.Errorf("failed to embed query: %w", err)
		}
		if len(embeddings) == 0 {
			return fmt.Errorf("no embedding returned for query")
		}

		docs, err := r.store.Search(ctx, r.collection, embeddings[0], vectorstore.SearchParams{
			MatchThreshold: p.MatchThreshold,
			MatchCount:     p.MatchCount,
			Namespace:      p.CorpusNamespace,
		})
		if err != nil {
			return err
		}

		sources = make([]Source, 0, len(docs))
		for _, doc := range docs {
			sources = append(sources, documentToSource(doc))
		}
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "retrieval branch failed",
			"chatbot", p.ID, "query", query, "error", err)
		return nil, err
	}

	return sources, nil
}

// RetrieveAll fans out one retrieval branch per expanded query. Branches run
// concurrently; the returned outcomes are settled into the same order as the
// input queries so downstream dedupe stays deterministic.
func (r *VectorRetriever) RetrieveAll(ctx context.Context, p *profile.Profile, queries []string) []RetrievalOutcome {
	outcomes := make([]RetrievalOutcome, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()
			sources, err := r.Retrieve(ctx, p, query)
			outcomes[i] = RetrievalOutcome{Query: query, Sources: sources, Err: err}
		}(i, query)
	}
	wg.Wait()

	return outcomes
}

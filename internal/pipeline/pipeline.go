// Package pipeline implements the retrieval-augmented query pipeline: relevance
// gating, query rewriting and expansion, concurrent vector retrieval with
// retry, merge/dedupe/rank, second-pass reranking, and context assembly. Every
// entity it creates lives for one user turn.
package pipeline

import (
	"context"
	"log/slog"

	"wellspring-ai/internal/llm"
	"wellspring-ai/internal/profile"
	"wellspring-ai/internal/vectorstore"
)

// Config holds pipeline construction parameters.
type Config struct {
	// Collection is the vector store collection holding all corpora.
	Collection string
	// UtilityModel runs the gate, rewriter, expander, and reranker.
	UtilityModel string
	// AnswerModel generates the final user-facing answer.
	AnswerModel string
	// AnswerMaxTokens bounds the final answer length. Zero means no limit.
	AnswerMaxTokens int
	// AnswerTemperature is the sampling temperature for the final answer.
	AnswerTemperature float32
}

// Pipeline coordinates one assistant turn end to end. It holds no per-turn
// state; all methods are safe for concurrent turns.
type Pipeline struct {
	gate      *RelevanceGate
	rewriter  *QueryRewriter
	expander  *QueryExpander
	retriever *VectorRetriever
	reranker  *Reranker
	streamer  StreamGenerator
	cfg       Config
	logger    *slog.Logger
}

// New creates a pipeline over the given providers.
func New(gen Generator, streamer StreamGenerator, embedder Embedder, store vectorstore.Store, cfg Config) *Pipeline {
	return &Pipeline{
		gate:      NewRelevanceGate(gen, cfg.UtilityModel),
		rewriter:  NewQueryRewriter(gen, cfg.UtilityModel),
		expander:  NewQueryExpander(gen, cfg.UtilityModel),
		retriever: NewVectorRetriever(embedder, store, cfg.Collection),
		reranker:  NewReranker(gen, cfg.UtilityModel),
		streamer:  streamer,
		cfg:       cfg,
		logger:    slog.Default(),
	}
}

// SetRetriever swaps the retriever, e.g. to adjust the retry policy.
func (p *Pipeline) SetRetriever(r *VectorRetriever) {
	p.retriever = r
}

// CheckRelevance reports whether the query is in-scope for the assistant.
func (p *Pipeline) CheckRelevance(ctx context.Context, prof *profile.Profile, query string) bool {
	return p.gate.Check(ctx, prof, query)
}

// Search runs the retrieval stage for one turn: rewrite, expand, concurrent
// retrieval, merge. The tracker may be nil. A rewrite failure is the only
// error path; retrieval failures degrade to a no_results status.
func (p *Pipeline) Search(ctx context.Context, prof *profile.Profile, query string, history []Turn, tracker *StatusTracker) (SearchResult, error) {
	tracker.Set(StatusPlanning)

	enhanced, err := p.rewriter.Rewrite(ctx, query, history)
	if err != nil {
		tracker.Set(StatusIdle)
		return SearchResult{}, err
	}

	queries := p.expander.Expand(ctx, enhanced)

	tracker.Set(StatusSearching)
	outcomes := p.retriever.RetrieveAll(ctx, prof, queries)
	merged, allFailed := MergeOutcomes(outcomes)

	if allFailed {
		tracker.Fail()
		return SearchResult{EnhancedQuery: enhanced, Status: StatusNoResults}, nil
	}

	tracker.Set(StatusIdle)
	if len(merged) == 0 {
		return SearchResult{EnhancedQuery: enhanced, Status: StatusNoResults}, nil
	}

	return SearchResult{
		Sources:       merged,
		EnhancedQuery: enhanced,
		Status:        StatusSearchComplete,
	}, nil
}

// Rerank runs the second-pass ranking and context assembly for one turn.
// Cardinality is preserved: the result holds the same sources, reordered.
func (p *Pipeline) Rerank(ctx context.Context, prof *profile.Profile, query string, sources []Source) ([]Source, ContextBlock) {
	reranked := p.reranker.Rerank(ctx, query, sources, prof.RerankSkipThreshold)
	return reranked, AssembleContext(reranked)
}

// AnswerResult is the outcome of a full turn.
type AnswerResult struct {
	// Text is the complete generated answer.
	Text string
	// Context carries the citation numbering used by the answer; empty when
	// the turn was answered without sources.
	Context ContextBlock
	// EnhancedQuery is the rewritten query, empty on the off-topic path.
	EnhancedQuery string
	// Status reports the retrieval outcome; no_results covers both the
	// nothing-matched and all-branches-failed cases.
	Status SearchStatus
	// Relevant is false when the gate short-circuited to the redirect path.
	Relevant bool
}

// AnswerEvents carries optional observer callbacks for a streamed turn.
type AnswerEvents struct {
	// OnSources fires once the turn's citation numbering is fixed, before
	// generation starts. Not called on the off-topic and no-sources paths.
	OnSources func(items []ContextItem) error
	// OnChunk receives answer fragments as they arrive.
	OnChunk func(chunk string) error
}

// Answer runs a full turn: gate, retrieval, rerank, context assembly, and the
// final streamed generation. No retrieval failure blocks the answer; the worst
// case is an unsourced, disclaimed response.
func (p *Pipeline) Answer(ctx context.Context, prof *profile.Profile, query string, history []Turn, tracker *StatusTracker, events AnswerEvents) (AnswerResult, error) {
	tracker.Set(StatusPlanning)

	// Off-topic queries skip retrieval entirely. This is a cost-saving
	// branch, not an error path.
	if !p.gate.Check(ctx, prof, query) {
		text, err := p.generate(ctx, OffTopicSystemPrompt(prof), query, history, events.OnChunk)
		tracker.Set(StatusIdle)
		if err != nil {
			return AnswerResult{}, err
		}
		return AnswerResult{Text: text, Relevant: false}, nil
	}

	search, err := p.Search(ctx, prof, query, history, tracker)
	if err != nil {
		return AnswerResult{}, err
	}

	if search.Status == StatusNoResults {
		text, genErr := p.generate(ctx, FallbackSystemPrompt(prof), query, history, events.OnChunk)
		if genErr != nil {
			return AnswerResult{}, genErr
		}
		return AnswerResult{
			Text:          text,
			EnhancedQuery: search.EnhancedQuery,
			Status:        StatusNoResults,
			Relevant:      true,
		}, nil
	}

	tracker.Set(StatusSummarizing)
	_, block := p.Rerank(ctx, prof, search.EnhancedQuery, search.Sources)
	if events.OnSources != nil {
		if err := events.OnSources(block.Items); err != nil {
			tracker.Set(StatusIdle)
			return AnswerResult{}, err
		}
	}

	text, err := p.generate(ctx, GroundedSystemPrompt(prof, block), query, history, events.OnChunk)
	tracker.Set(StatusIdle)
	if err != nil {
		return AnswerResult{}, err
	}

	return AnswerResult{
		Text:          text,
		Context:       block,
		EnhancedQuery: search.EnhancedQuery,
		Status:        StatusSearchComplete,
		Relevant:      true,
	}, nil
}

// generate streams the final answer and accumulates the full text.
func (p *Pipeline) generate(ctx context.Context, systemPrompt, query string, history []Turn, onChunk func(chunk string) error) (string, error) {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, turn := range historyTail(history, historyWindow) {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: query})

	params := llm.ChatParams{
		Model:       p.cfg.AnswerModel,
		MaxTokens:   p.cfg.AnswerMaxTokens,
		Temperature: p.cfg.AnswerTemperature,
	}

	var full []byte
	err := p.streamer.StreamChatWithMessages(ctx, messages, params, func(chunk string) error {
		full = append(full, chunk...)
		if onChunk != nil {
			return onChunk(chunk)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return string(full), nil
}

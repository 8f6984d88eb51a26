package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/llm"
)

// rerankContentBudget bounds how much of each source is shown to the model.
const rerankContentBudget = 1000

// Reranker reorders a merged candidate list using a second-pass relevance
// judgment from a generation model.
type Reranker struct {
	gen   Generator
	model string
}

// NewReranker creates a reranker using the given utility model.
func NewReranker(gen Generator, model string) *Reranker {
	return &Reranker{gen: gen, model: model}
}

// Rerank returns the sources reordered most-relevant-first. Sets of size
// skipThreshold or smaller are returned unchanged. The output is always a
// permutation of the input: malformed or partial model answers fall back to
// original order for the unranked remainder, and a failed model call returns
// the input untouched.
func (r *Reranker) Rerank(ctx context.Context, query string, sources []Source, skipThreshold int) []Source {
	logger := contextutil.LoggerFromContext(ctx)

	if len(sources) <= skipThreshold {
		return sources
	}

	var b strings.Builder
	for i, src := range sources {
		if i > 0 {
			b.WriteString("\n\n")
		}
		content := truncateOnRuneBoundary(src.Content, rerankContentBudget)
		fmt.Fprintf(&b, "Document %d: %s", i+1, content)
	}

	messages := []llm.Message{
		{
			Role: llm.RoleSystem,
			Content: "You are a document re-ranking assistant. You'll receive a query and a set of " +
				"documents. Rank these documents by their relevance to the query. Return ONLY the " +
				"document numbers in order of relevance (most relevant first), separated by commas. " +
				"For example: '3,1,5,2,4'",
		},
		{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Query: %s\n\nDocuments to rank:\n%s", query, b.String()),
		},
	}

	answer, err := r.gen.ChatWithMessages(ctx, messages, llm.ChatParams{Model: r.model})
	if err != nil {
		logger.WarnContext(ctx, "rerank failed, keeping similarity order", "error", err)
		return sources
	}

	indices := parseRankedIndices(answer, len(sources))

	reranked := make([]Source, 0, len(sources))
	for _, idx := range indices {
		reranked = append(reranked, sources[idx])
	}
	return reranked
}

// truncateOnRuneBoundary cuts s to at most limit bytes without splitting a
// multi-byte rune, marking the cut with an ellipsis.
func truncateOnRuneBoundary(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// parseRankedIndices defensively parses a comma-separated ranking into a full
// permutation of 0..n-1. Non-numeric, out-of-range, and duplicate tokens are
// discarded; indices the model never mentioned are appended in original order.
func parseRankedIndices(answer string, n int) []int {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' {
			return r
		}
		return -1
	}, answer)

	indices := make([]int, 0, n)
	mentioned := make(map[int]struct{}, n)
	for _, token := range strings.Split(cleaned, ",") {
		if token == "" {
			continue
		}
		num, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		idx := num - 1
		if idx < 0 || idx >= n {
			continue
		}
		if _, dup := mentioned[idx]; dup {
			continue
		}
		mentioned[idx] = struct{}{}
		indices = append(indices, idx)
	}

	for i := 0; i < n; i++ {
		if _, ok := mentioned[i]; !ok {
			indices = append(indices, i)
		}
	}
	return indices
}

package pipeline

import (
	"context"
	"fmt"
	"strings"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/llm"
)

// maxExpandedQueries caps the expanded query set, original included.
const maxExpandedQueries = 4

// QueryExpander generates paraphrased variants of a query to widen recall.
type QueryExpander struct {
	gen   Generator
	model string
}

// NewQueryExpander creates an expander using the given utility model.
func NewQueryExpander(gen Generator, model string) *QueryExpander {
	return &QueryExpander{gen: gen, model: model}
}

// Expand returns the query followed by up to 3 paraphrases, capped at 4 total.
// The original is always element 0. Malformed model output and model call
// failures both degrade to fewer expansions, never an error.
func (e *QueryExpander) Expand(ctx context.Context, query string) []string {
	logger := contextutil.LoggerFromContext(ctx)

	messages := []llm.Message{
		{
			Role: llm.RoleSystem,
			Content: "You are a query expansion assistant. Your job is to generate 3 alternative versions " +
				"of the user's query using synonyms and related terms. Each version should capture the same " +
				"intent but use different wording. Return exactly 3 versions, one per line, with no " +
				"numbering or additional text.",
		},
		{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Generate 3 expanded versions of this query: %q", query),
		},
	}

	answer, err := e.gen.ChatWithMessages(ctx, messages, llm.ChatParams{Model: e.model})
	if err != nil {
		logger.WarnContext(ctx, "query expansion failed, searching with original query only", "error", err)
		return []string{query}
	}

	expanded := []string{query}
	seen := map[string]struct{}{query: {}}
	for _, line := range strings.Split(answer, "\n") {
		variant := strings.TrimSpace(line)
		if variant == "" {
			continue
		}
		if _, dup := seen[variant]; dup {
			continue
		}
		seen[variant] = struct{}{}
		expanded = append(expanded, variant)
		if len(expanded) == maxExpandedQueries {
			break
		}
	}

	logger.DebugContext(ctx, "query expanded", "query", query, "variants", len(expanded))
	return expanded
}

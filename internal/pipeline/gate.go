package pipeline

import (
	"context"
	"fmt"
	"strings"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/llm"
	"wellspring-ai/internal/profile"
)

// RelevanceGate classifies whether a query belongs to an assistant's domain.
type RelevanceGate struct {
	gen   Generator
	model string
}

// NewRelevanceGate creates a relevance gate using the given utility model.
func NewRelevanceGate(gen Generator, model string) *RelevanceGate {
	return &RelevanceGate{gen: gen, model: model}
}

// Check reports whether the query is in-scope for the assistant. The gate
// fails open: a classifier error or unparseable answer treats the query as
// relevant, since the merger already degrades gracefully on empty results.
func (g *RelevanceGate) Check(ctx context.Context, p *profile.Profile, query string) bool {
	logger := contextutil.LoggerFromContext(ctx)

	messages := []llm.Message{
		{
			Role: llm.RoleSystem,
			Content: fmt.Sprintf("You are a query relevance checker. Your job is to determine if a query "+
				"is relevant to the chatbot's domain. The chatbot is configured with the following system "+
				"prompt: %q. Return ONLY \"true\" or \"false\" based on whether the query is relevant to "+
				"this domain.", p.SystemPrompt),
		},
		{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Is this query relevant to the chatbot's domain? Query: %q", query),
		},
	}

	answer, err := g.gen.ChatWithMessages(ctx, messages, llm.ChatParams{Model: g.model})
	if err != nil {
		logger.WarnContext(ctx, "relevance classifier failed, treating query as relevant",
			"chatbot", p.ID, "error", err)
		return true
	}

	switch normalized := strings.ToLower(strings.TrimSpace(answer)); {
	case strings.HasPrefix(normalized, "true"):
		return true
	case strings.HasPrefix(normalized, "false"):
		return false
	default:
		logger.WarnContext(ctx, "unparseable relevance answer, treating query as relevant",
			"chatbot", p.ID, "answer", answer)
		return true
	}
}

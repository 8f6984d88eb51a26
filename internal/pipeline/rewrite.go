package pipeline

import (
	"context"
	"fmt"
	"strings"

	"wellspring-ai/internal/contextutil"
	"wellspring-ai/internal/llm"
)

// QueryRewriter folds recent conversation turns into a self-contained query.
type QueryRewriter struct {
	gen   Generator
	model string
}

// NewQueryRewriter creates a rewriter using the given utility model.
func NewQueryRewriter(gen Generator, model string) *QueryRewriter {
	return &QueryRewriter{gen: gen, model: model}
}

// Rewrite returns a history-enriched version of the query. With no usable
// history it returns the input unchanged and makes no model call. A rewrite
// failure propagates: continuing with an un-rewritten query would silently
// hide quality loss.
func (r *QueryRewriter) Rewrite(ctx context.Context, query string, history []Turn) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	window := historyTail(history, historyWindow)
	if len(window) == 0 {
		return query, nil
	}

	messages := make([]llm.Message, 0, len(window)+2)
	messages = append(messages, llm.Message{
		Role: llm.RoleSystem,
		Content: "You are a query enhancement assistant. Your job is to rewrite the user's latest query " +
			"to include important context from the conversation history. Don't summarize the entire " +
			"conversation - just enhance the latest query to make it more specific based on the " +
			"conversation context. Return only the enhanced query text with no additional explanation.",
	})
	for _, turn := range window {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: fmt.Sprintf("Based on our conversation, please rewrite this query to include relevant context: %q", query),
	})

	rewritten, err := r.gen.ChatWithMessages(ctx, messages, llm.ChatParams{Model: r.model})
	if err != nil {
		return "", fmt.Errorf("failed to rewrite query: %w", err)
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		logger.WarnContext(ctx, "rewriter returned empty text, keeping original query")
		return query, nil
	}

	logger.DebugContext(ctx, "query rewritten", "original", query, "rewritten", rewritten)
	return rewritten, nil
}

// historyTail returns the trailing n user/assistant turns.
func historyTail(history []Turn, n int) []Turn {
	filtered := make([]Turn, 0, len(history))
	for _, turn := range history {
		if turn.Role == RoleUser || turn.Role == RoleAssistant {
			filtered = append(filtered, turn)
		}
	}
	if len(filtered) > n {
		filtered = filtered[len(filtered)-n:]
	}
	return filtered
}

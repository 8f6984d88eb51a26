package pipeline

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deps.go -package=mocks wellspring-ai/internal/pipeline Generator,StreamGenerator,Embedder

import (
	"context"

	"wellspring-ai/internal/llm"
)

// Generator is the non-streaming generation provider used by the relevance
// gate, rewriter, expander, and reranker. Defined from the pipeline's
// perspective (consumer-first).
type Generator interface {
	// ChatWithMessages sends a message list and returns the reply text.
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// StreamGenerator streams the final user-facing answer.
type StreamGenerator interface {
	// StreamChatWithMessages streams the reply via callback.
	StreamChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams, callback func(chunk string) error) error
}

// Embedder turns query text into vectors for similarity search.
type Embedder interface {
	// EmbedTexts generates one embedding per input text.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

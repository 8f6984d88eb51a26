package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"wellspring-ai/internal/config"
	"wellspring-ai/internal/http"
	"wellspring-ai/internal/llm"
	"wellspring-ai/internal/pipeline"
	"wellspring-ai/internal/profile"
	"wellspring-ai/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	registry, err := profile.NewDefaultRegistry()
	if err != nil {
		log.Fatalf("Failed to build chatbot registry: %v", err)
	}
	slog.Info("Chatbot registry ready", "chatbots", len(registry.IDs()))

	ctx := context.Background()

	store, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	// The corpus is ingested out of band; a missing collection is a
	// deployment error, so fail fast.
	exists, err := store.CollectionExists(ctx, cfg.QdrantCollection)
	if err != nil {
		log.Fatalf("Failed to check Qdrant collection: %v", err)
	}
	if !exists {
		log.Fatalf("Qdrant collection %q does not exist", cfg.QdrantCollection)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.EmbeddingVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.EmbeddingVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.EmbeddingVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.EmbeddingVectorSize)

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.AnswerModel)

	pipe := pipeline.New(llmClient, llmClient, embedder, store, pipeline.Config{
		Collection:        cfg.QdrantCollection,
		UtilityModel:      cfg.UtilityModel,
		AnswerModel:       cfg.AnswerModel,
		AnswerTemperature: 0.7,
	})
	slog.Info("Query pipeline initialized",
		"utility_model", cfg.UtilityModel,
		"answer_model", cfg.AnswerModel,
	)

	deps := &http.Deps{
		Registry:   registry,
		Pipeline:   pipe,
		Store:      store,
		Collection: cfg.QdrantCollection,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

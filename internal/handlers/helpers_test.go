package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"wellspring-ai/internal/llm"
	"wellspring-ai/internal/pipeline"
	"wellspring-ai/internal/pipeline/mocks"
	"wellspring-ai/internal/profile"
	"wellspring-ai/internal/retry"
	"wellspring-ai/internal/vectorstore"
	storemocks "wellspring-ai/internal/vectorstore/mocks"
)

func testRegistry(t *testing.T) *profile.Registry {
	t.Helper()
	registry, err := profile.NewRegistry([]profile.Profile{
		{
			ID:              "test-bot",
			Title:           "Test Bot",
			Description:     "A bot for tests",
			Category:        "Testing",
			SystemPrompt:    "You are a helpful assistant about test subjects.",
			CorpusNamespace: "test-namespace",
			WelcomeMessage:  "Hello!",
		},
	})
	if err != nil {
		t.Fatalf("failed to build test registry: %v", err)
	}
	return registry
}

// utilityAnswers routes utility-model calls by system prompt prefix.
type utilityAnswers map[string]string

func testPipeline(t *testing.T, ctrl *gomock.Controller, answers utilityAnswers, docs []vectorstore.Document, chunks ...string) *pipeline.Pipeline {
	t.Helper()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages []llm.Message, _ llm.ChatParams) (string, error) {
			system := messages[0].Content
			for prefix, answer := range answers {
				if strings.HasPrefix(system, prefix) {
					return answer, nil
				}
			}
			return "", fmt.Errorf("unexpected utility call: %q", system)
		}).
		AnyTimes()

	streamer := mocks.NewMockStreamGenerator(ctrl)
	streamer.EXPECT().
		StreamChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []llm.Message, _ llm.ChatParams, callback func(string) error) error {
			for _, chunk := range chunks {
				if err := callback(chunk); err != nil {
					return err
				}
			}
			return nil
		}).
		AnyTimes()

	embedder := mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().
		EmbedTexts(gomock.Any(), gomock.Any()).
		Return([][]float32{{0.1}}, nil).
		AnyTimes()

	store := storemocks.NewMockStore(ctrl)
	store.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(docs, nil).
		AnyTimes()

	p := pipeline.New(gen, streamer, embedder, store, pipeline.Config{
		Collection:   "sources",
		UtilityModel: "utility-model",
		AnswerModel:  "answer-model",
	})
	p.SetRetriever(pipeline.NewVectorRetrieverWithPolicy(embedder, store, "sources", retry.Policy{
		MaxAttempts: 1,
		Retryable:   vectorstore.IsTransient,
	}))
	return p
}

func fastRetry() retry.Policy {
	return retry.Policy{MaxAttempts: 1, Retryable: vectorstore.IsTransient}
}

// withChatbotID injects the chi URL parameter handlers read.
func withChatbotID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("chatbotID", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func postJSON(t *testing.T, handler http.Handler, chatbotID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withChatbotID(req, chatbotID)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

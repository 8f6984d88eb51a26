package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"wellspring-ai/internal/llm"
	"wellspring-ai/internal/pipeline/mocks"
)

func TestQueryRewriter_Rewrite_NoHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []Turn
	}{
		{
			name:    "nil history",
			history: nil,
		},
		{
			name:    "empty history",
			history: []Turn{},
		},
		{
			name: "history with only foreign roles",
			history: []Turn{
				{Role: "system", Content: "be helpful"},
				{Role: "tool", Content: "output"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No model call is expected on this path.
			gen := mocks.NewMockGenerator(ctrl)

			rewriter := NewQueryRewriter(gen, "test-model")
			got, err := rewriter.Rewrite(context.Background(), "what is grace?", tt.history)
			if err != nil {
				t.Fatalf("Rewrite() error = %v", err)
			}
			if got != "what is grace?" {
				t.Errorf("Rewrite() = %q, want original query", got)
			}
		})
	}
}

func TestQueryRewriter_Rewrite_WithHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	history := []Turn{
		{Role: RoleUser, Content: "Tell me about the book of Genesis."},
		{Role: RoleAssistant, Content: "Genesis is the first book of the Bible."},
	}

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("  What themes appear in the book of Genesis?  ", nil)

	rewriter := NewQueryRewriter(gen, "test-model")
	got, err := rewriter.Rewrite(context.Background(), "what themes appear in it?", history)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got != "What themes appear in the book of Genesis?" {
		t.Errorf("Rewrite() = %q, want trimmed rewritten query", got)
	}
}

func TestQueryRewriter_Rewrite_WindowsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 8 turns; only the trailing 6 should reach the model.
	var history []Turn
	for i := 0; i < 4; i++ {
		history = append(history,
			Turn{Role: RoleUser, Content: "question"},
			Turn{Role: RoleAssistant, Content: "answer"},
		)
	}

	var captured []llm.Message
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages []llm.Message, _ llm.ChatParams) (string, error) {
			captured = messages
			return "rewritten", nil
		})

	rewriter := NewQueryRewriter(gen, "test-model")
	if _, err := rewriter.Rewrite(context.Background(), "and then?", history); err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	// System prompt + 6 history turns + final user instruction.
	if len(captured) != 8 {
		t.Errorf("Rewrite() sent %d messages, want 8", len(captured))
	}
}

func TestQueryRewriter_Rewrite_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	rewriter := NewQueryRewriter(gen, "test-model")
	_, err := rewriter.Rewrite(context.Background(), "what is grace?", []Turn{
		{Role: RoleUser, Content: "hi"},
	})
	if err == nil {
		t.Fatal("Rewrite() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "failed to rewrite query") {
		t.Errorf("Rewrite() error = %v, want wrapped rewrite error", err)
	}
}

func TestQueryRewriter_Rewrite_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("   ", nil)

	rewriter := NewQueryRewriter(gen, "test-model")
	got, err := rewriter.Rewrite(context.Background(), "what is grace?", []Turn{
		{Role: RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got != "what is grace?" {
		t.Errorf("Rewrite() = %q, want original query on empty rewrite", got)
	}
}

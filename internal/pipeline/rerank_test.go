package pipeline

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/mock/gomock"

	"wellspring-ai/internal/llm"
	"wellspring-ai/internal/pipeline/mocks"
)

func TestReranker_Rerank_SkipsSmallSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No model call is expected at or below the skip threshold.
	gen := mocks.NewMockGenerator(ctrl)

	sources := []Source{src("a", 0.9), src("b", 0.8)}
	reranker := NewReranker(gen, "test-model")
	got := reranker.Rerank(context.Background(), "query", sources, 2)

	if !reflect.DeepEqual(got, sources) {
		t.Errorf("Rerank() = %v, want input unchanged", got)
	}
}

func TestReranker_Rerank_AppliesPermutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("3,1,2", nil)

	sources := []Source{src("a", 0.9), src("b", 0.8), src("c", 0.7)}
	reranker := NewReranker(gen, "test-model")
	got := reranker.Rerank(context.Background(), "query", sources, 2)

	for i, want := range []string{"c", "a", "b"} {
		if got[i].ID != want {
			t.Errorf("Rerank()[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestReranker_Rerank_ModelFailureKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	sources := []Source{src("a", 0.9), src("b", 0.8), src("c", 0.7)}
	reranker := NewReranker(gen, "test-model")
	got := reranker.Rerank(context.Background(), "query", sources, 2)

	if !reflect.DeepEqual(got, sources) {
		t.Errorf("Rerank() = %v, want input unchanged on model failure", got)
	}
}

func TestReranker_Rerank_TruncatesLongContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	long := strings.Repeat("x", 1500)
	var prompt string
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages []llm.Message, _ llm.ChatParams) (string, error) {
			prompt = messages[1].Content
			return "1,2,3", nil
		})

	sources := []Source{
		{ID: "a", Content: long, Similarity: 0.9},
		src("b", 0.8),
		src("c", 0.7),
	}
	reranker := NewReranker(gen, "test-model")
	reranker.Rerank(context.Background(), "query", sources, 2)

	if !strings.Contains(prompt, strings.Repeat("x", 1000)+"...") {
		t.Error("Rerank() prompt should truncate long content to 1000 chars with ellipsis")
	}
	if strings.Contains(prompt, strings.Repeat("x", 1001)) {
		t.Error("Rerank() prompt carries more than the content budget")
	}
}

func TestTruncateOnRuneBoundary(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		limit int
		want  string
	}{
		{
			name:  "short string untouched",
			s:     "hello",
			limit: 10,
			want:  "hello",
		},
		{
			name:  "ascii cut at limit",
			s:     "abcdef",
			limit: 4,
			want:  "abcd...",
		},
		{
			name:  "cut lands mid-rune, backs off",
			s:     "abécd", // é is 2 bytes starting at offset 2
			limit: 3,
			want:  "ab...",
		},
		{
			name:  "cut lands on rune start",
			s:     "abécd",
			limit: 4,
			want:  "abé...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateOnRuneBoundary(tt.s, tt.limit)
			if got != tt.want {
				t.Errorf("truncateOnRuneBoundary(%q, %d) = %q, want %q", tt.s, tt.limit, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateOnRuneBoundary(%q, %d) = %q, not valid UTF-8", tt.s, tt.limit, got)
			}
		})
	}
}

func TestParseRankedIndices(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		n      int
		want   []int
	}{
		{
			name:   "clean ranking",
			answer: "3,1,2",
			n:      3,
			want:   []int{2, 0, 1},
		},
		{
			name:   "prose around the numbers",
			answer: "The best order is: 2, then 1, then 3.",
			n:      3,
			want:   []int{1, 0, 2},
		},
		{
			name:   "out of range dropped, missing appended",
			answer: "5,2",
			n:      3,
			want:   []int{1, 0, 2},
		},
		{
			name:   "duplicates dropped",
			answer: "2,2,1",
			n:      3,
			want:   []int{1, 0, 2},
		},
		{
			name:   "garbage falls back to original order",
			answer: "no ranking available",
			n:      3,
			want:   []int{0, 1, 2},
		},
		{
			name:   "partial ranking completed in order",
			answer: "3",
			n:      4,
			want:   []int{2, 0, 1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseRankedIndices(tt.answer, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseRankedIndices(%q, %d) = %v, want %v", tt.answer, tt.n, got, tt.want)
			}
		})
	}
}

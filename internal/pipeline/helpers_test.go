package pipeline

import (
	"fmt"
	"strings"

	"wellspring-ai/internal/llm"
)

// messageContaining matches a []llm.Message whose element at index contains
// the given substring.
func messageContaining(index int, substr string) messageMatcher {
	return messageMatcher{index: index, substr: substr}
}

type messageMatcher struct {
	index  int
	substr string
}

func (m messageMatcher) Matches(x any) bool {
	messages, ok := x.([]llm.Message)
	if !ok || m.index >= len(messages) {
		return false
	}
	return strings.Contains(messages[m.index].Content, m.substr)
}

func (m messageMatcher) String() string {
	return fmt.Sprintf("messages[%d] contains %q", m.index, m.substr)
}

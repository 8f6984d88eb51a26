package pipeline

import (
	"fmt"
	"strings"

	"wellspring-ai/internal/profile"
)

// ContextItem pairs a source with its 1-based citation index. Index order is
// the authoritative citation numbering contract for the turn.
type ContextItem struct {
	Index  int    `json:"index"`
	Source Source `json:"source"`
}

// ContextBlock is the numbered source context injected into the generation
// prompt.
type ContextBlock struct {
	Items []ContextItem
	Text  string
}

// AssembleContext numbers the reranked sources 1..N and renders the context
// text blob. Index 1 is always the top-ranked source.
func AssembleContext(sources []Source) ContextBlock {
	items := make([]ContextItem, 0, len(sources))
	blocks := make([]string, 0, len(sources))
	for i, src := range sources {
		items = append(items, ContextItem{Index: i + 1, Source: src})
		blocks = append(blocks, fmt.Sprintf("Source %d: %s", i+1, src.Content))
	}
	return ContextBlock{
		Items: items,
		Text:  strings.Join(blocks, "\n\n"),
	}
}

// CitationInstructions builds the instruction string that binds the generator
// to the block's numbering. This string is the only contract between the
// retrieval pipeline and the generation call.
func CitationInstructions(sourceCount int) string {
	return fmt.Sprintf("You have been given %d numbered sources. Ground every factual claim in these "+
		"sources and cite them inline with bracketed source numbers, e.g. [1]. A single clause may carry "+
		"multiple citations, e.g. [1][2], and citations may appear in any order. If a source is relevant, "+
		"cite it at least once somewhere in your answer. Never cite a number outside 1 to %d.",
		sourceCount, sourceCount)
}

// generalKnowledgeDisclaimer is injected when retrieval produced nothing.
const generalKnowledgeDisclaimer = "No sources from the knowledge base were available for this " +
	"question. Answer from your general knowledge, and clearly tell the user that this response is " +
	"not grounded in the curated library."

// offTopicRedirect is injected when the relevance gate rejects the query.
const offTopicRedirect = "The user's question is outside this assistant's domain. Politely explain " +
	"what this assistant focuses on and redirect the user toward topics it can help with. Do not " +
	"attempt to answer the off-topic question."

// GroundedSystemPrompt composes the final system message for a sourced answer:
// citation instructions, then the numbered context, then the persona prompt.
func GroundedSystemPrompt(p *profile.Profile, block ContextBlock) string {
	return CitationInstructions(len(block.Items)) + "\n\n" + block.Text + "\n\n" + p.SystemPrompt
}

// FallbackSystemPrompt composes the system message for the no-sources path.
func FallbackSystemPrompt(p *profile.Profile) string {
	return generalKnowledgeDisclaimer + "\n\n" + p.SystemPrompt
}

// OffTopicSystemPrompt composes the system message for the off-topic path.
func OffTopicSystemPrompt(p *profile.Profile) string {
	return offTopicRedirect + "\n\n" + p.SystemPrompt
}

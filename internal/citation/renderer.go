package citation

import (
	"strings"

	"wellspring-ai/internal/pipeline"
)

// SegmentKind discriminates rendered segments.
type SegmentKind string

const (
	// SegmentText is plain prose.
	SegmentText SegmentKind = "text"
	// SegmentCitation is a citation marker bound to a source.
	SegmentCitation SegmentKind = "citation"
)

// Segment is one rendered unit of a paragraph.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	// Text is the literal prose, or the raw marker for citations.
	Text string `json:"text"`
	// Bold marks segments inside a bold span.
	Bold bool `json:"bold,omitempty"`
	// Number is the 1-based citation number for SegmentCitation.
	Number int `json:"number,omitempty"`
	// Source is the bound source for SegmentCitation.
	Source *pipeline.Source `json:"source,omitempty"`
}

// Paragraph is one rendered line of the answer.
type Paragraph struct {
	// HeaderLevel is the markdown header depth, zero for body text.
	HeaderLevel int       `json:"headerLevel,omitempty"`
	Segments    []Segment `json:"segments"`
}

// Rendered is a generated answer with its citation markers bound to sources.
type Rendered struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Render binds the [n] markers in content to the 1-based source list. Markers
// outside 1..len(sources) stay literal text, never dropped. Text with no
// markers comes back as its original lines, untouched.
func Render(content string, sources []pipeline.Source) Rendered {
	var out Rendered
	for _, rawLine := range strings.Split(content, "\n") {
		line := LexLine(rawLine)
		line.Tokens = normalizeTrailingPunctuation(line.Tokens)

		p := Paragraph{HeaderLevel: line.HeaderLevel}
		for _, tok := range line.Tokens {
			p.Segments = append(p.Segments, bindToken(tok, sources))
		}
		out.Paragraphs = append(out.Paragraphs, p)
	}
	return out
}

func bindToken(tok Token, sources []pipeline.Source) Segment {
	if tok.Kind == TokenCitation && tok.Number >= 1 && tok.Number <= len(sources) {
		src := sources[tok.Number-1]
		return Segment{
			Kind:   SegmentCitation,
			Text:   tok.Text,
			Bold:   tok.Bold,
			Number: tok.Number,
			Source: &src,
		}
	}
	// Out-of-range markers degrade to their literal bracketed text.
	return Segment{Kind: SegmentText, Text: tok.Text, Bold: tok.Bold}
}

// trailingPunctuation is the set of characters relocated past a citation run.
const trailingPunctuation = ".,;:!?"

// normalizeTrailingPunctuation relocates markers that trail punctuation
// (word.[1] becomes word[1].) so adjacent multi-citations render consistently.
func normalizeTrailingPunctuation(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind != TokenText || len(tok.Text) == 0 {
			out = append(out, tok)
			continue
		}
		last := tok.Text[len(tok.Text)-1]
		if !strings.ContainsRune(trailingPunctuation, rune(last)) || i+1 >= len(tokens) || tokens[i+1].Kind != TokenCitation {
			out = append(out, tok)
			continue
		}

		// Strip the punctuation, emit the citation run, then re-attach it.
		trimmed := tok.Text[:len(tok.Text)-1]
		if trimmed != "" {
			out = append(out, Token{Kind: TokenText, Text: trimmed, Bold: tok.Bold})
		}
		j := i + 1
		for j < len(tokens) && tokens[j].Kind == TokenCitation {
			out = append(out, tokens[j])
			j++
		}
		out = append(out, Token{Kind: TokenText, Text: string(last), Bold: tok.Bold})
		i = j - 1
	}
	return out
}

// Citations returns the resolved citation segments in reading order.
func (r Rendered) Citations() []Segment {
	var cites []Segment
	for _, p := range r.Paragraphs {
		for _, s := range p.Segments {
			if s.Kind == SegmentCitation {
				cites = append(cites, s)
			}
		}
	}
	return cites
}

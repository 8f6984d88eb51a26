// Package citation parses generated answers for bracketed citation markers and
// binds them to the turn's numbered sources. Parsing is a small explicit
// tokenizer feeding a separate renderer, so the lexing rules stay testable
// independent of presentation.
package citation

import "strings"

// TokenKind discriminates lexed tokens.
type TokenKind int

const (
	// TokenText is a literal text run.
	TokenText TokenKind = iota
	// TokenCitation is a [n] citation marker.
	TokenCitation
)

// Token is one lexed unit of a line. Bold is carried as a flag so citation
// markers inside bold spans keep their boundaries.
type Token struct {
	Kind TokenKind
	// Text is the literal run for TokenText, or the raw marker (e.g. "[3]")
	// for TokenCitation.
	Text string
	// Number is the captured citation number for TokenCitation.
	Number int
	// Bold marks tokens inside a **...** span.
	Bold bool
}

// Line is the lexed form of one input line.
type Line struct {
	// HeaderLevel is the markdown header depth (# = 1), zero for plain lines.
	HeaderLevel int
	Tokens      []Token
}

// LexLine tokenizes one line into text runs and citation markers, tracking
// markdown headers and bold spans.
func LexLine(line string) Line {
	var out Line

	rest := line
	if hashes := countLeadingHashes(line); hashes > 0 {
		out.HeaderLevel = hashes
		rest = strings.TrimLeft(line[hashes:], " ")
	}

	bold := false
	textStart := 0
	i := 0
	flush := func(end int) {
		if end > textStart {
			out.Tokens = append(out.Tokens, Token{Kind: TokenText, Text: rest[textStart:end], Bold: bold})
		}
	}

	for i < len(rest) {
		switch {
		case rest[i] == '[':
			marker, num, ok := scanCitation(rest[i:])
			if !ok {
				i++
				continue
			}
			flush(i)
			out.Tokens = append(out.Tokens, Token{Kind: TokenCitation, Text: marker, Number: num, Bold: bold})
			i += len(marker)
			textStart = i
		case strings.HasPrefix(rest[i:], "**"):
			// An opening ** without a closing partner stays literal text.
			if !bold && !strings.Contains(rest[i+2:], "**") {
				i += 2
				continue
			}
			flush(i)
			bold = !bold
			i += 2
			textStart = i
		default:
			i++
		}
	}
	flush(len(rest))

	return out
}

// scanCitation matches a leading "[<digits>]" and returns the raw marker and
// its number.
func scanCitation(s string) (string, int, bool) {
	if len(s) < 3 || s[0] != '[' {
		return "", 0, false
	}
	num := 0
	i := 1
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			num = num*10 + int(c-'0')
			continue
		}
		if c == ']' && i > 1 {
			return s[:i+1], num, true
		}
		return "", 0, false
	}
	return "", 0, false
}

func countLeadingHashes(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return 0
	}
	if n == len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

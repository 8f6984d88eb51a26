package citation

import (
	"reflect"
	"testing"
)

func TestLexLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantHeader int
		wantTokens []Token
	}{
		{
			name: "plain text",
			line: "Grace is unmerited favor.",
			wantTokens: []Token{
				{Kind: TokenText, Text: "Grace is unmerited favor."},
			},
		},
		{
			name: "single citation",
			line: "Grace is unmerited favor [1].",
			wantTokens: []Token{
				{Kind: TokenText, Text: "Grace is unmerited favor "},
				{Kind: TokenCitation, Text: "[1]", Number: 1},
				{Kind: TokenText, Text: "."},
			},
		},
		{
			name: "adjacent citations",
			line: "favor [1][12]",
			wantTokens: []Token{
				{Kind: TokenText, Text: "favor "},
				{Kind: TokenCitation, Text: "[1]", Number: 1},
				{Kind: TokenCitation, Text: "[12]", Number: 12},
			},
		},
		{
			name: "non-numeric bracket stays literal",
			line: "see [note] here",
			wantTokens: []Token{
				{Kind: TokenText, Text: "see [note] here"},
			},
		},
		{
			name: "unclosed bracket stays literal",
			line: "see [12 here",
			wantTokens: []Token{
				{Kind: TokenText, Text: "see [12 here"},
			},
		},
		{
			name:       "header line",
			line:       "## Key Themes",
			wantHeader: 2,
			wantTokens: []Token{
				{Kind: TokenText, Text: "Key Themes"},
			},
		},
		{
			name: "hashes without space are not a header",
			line: "#hashtag",
			wantTokens: []Token{
				{Kind: TokenText, Text: "#hashtag"},
			},
		},
		{
			name: "bold span",
			line: "this is **important [2]** indeed",
			wantTokens: []Token{
				{Kind: TokenText, Text: "this is "},
				{Kind: TokenText, Text: "important ", Bold: true},
				{Kind: TokenCitation, Text: "[2]", Number: 2, Bold: true},
				{Kind: TokenText, Text: " indeed"},
			},
		},
		{
			name: "unpaired bold marker stays literal",
			line: "a ** b",
			wantTokens: []Token{
				{Kind: TokenText, Text: "a ** b"},
			},
		},
		{
			name:       "empty line",
			line:       "",
			wantTokens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LexLine(tt.line)
			if got.HeaderLevel != tt.wantHeader {
				t.Errorf("LexLine(%q) header = %d, want %d", tt.line, got.HeaderLevel, tt.wantHeader)
			}
			if !reflect.DeepEqual(got.Tokens, tt.wantTokens) {
				t.Errorf("LexLine(%q) tokens = %+v, want %+v", tt.line, got.Tokens, tt.wantTokens)
			}
		})
	}
}

func TestScanCitation(t *testing.T) {
	tests := []struct {
		input      string
		wantMarker string
		wantNumber int
		wantOK     bool
	}{
		{"[1]", "[1]", 1, true},
		{"[12] more", "[12]", 12, true},
		{"[]", "", 0, false},
		{"[a]", "", 0, false},
		{"[1a]", "", 0, false},
		{"[1", "", 0, false},
		{"1]", "", 0, false},
	}

	for _, tt := range tests {
		marker, num, ok := scanCitation(tt.input)
		if marker != tt.wantMarker || num != tt.wantNumber || ok != tt.wantOK {
			t.Errorf("scanCitation(%q) = (%q, %d, %v), want (%q, %d, %v)",
				tt.input, marker, num, ok, tt.wantMarker, tt.wantNumber, tt.wantOK)
		}
	}
}

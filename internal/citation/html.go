package citation

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		ghhtml.WithHardWraps(),
	),
)

// ToMarkdown re-emits a rendered answer as markdown, turning each bound
// citation into a link on its source URL. Unresolved markers stay literal.
func ToMarkdown(r Rendered) string {
	var b strings.Builder
	for i, p := range r.Paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		if p.HeaderLevel > 0 {
			b.WriteString(strings.Repeat("#", p.HeaderLevel))
			b.WriteString(" ")
		}
		for _, seg := range p.Segments {
			text := seg.Text
			if seg.Kind == SegmentCitation && seg.Source != nil && seg.Source.URL != "" {
				text = fmt.Sprintf(`[\[%d\]](%s "%s")`, seg.Number, seg.Source.URL, escapeTitle(seg.Source.Title))
			}
			if seg.Bold {
				text = "**" + text + "**"
			}
			b.WriteString(text)
		}
	}
	return b.String()
}

// ToHTML renders a cited answer as HTML via goldmark.
func ToHTML(r Rendered) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(ToMarkdown(r)), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

func escapeTitle(title string) string {
	return strings.ReplaceAll(title, `"`, `\"`)
}

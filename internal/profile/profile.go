package profile

// SourceType identifies the kind of corpus document a source came from.
type SourceType string

const (
	SourceTypeBook          SourceType = "book"
	SourceTypePodcast       SourceType = "podcast"
	SourceTypeArticle       SourceType = "article"
	SourceTypeVideo         SourceType = "video"
	SourceTypeSpeech        SourceType = "speech"
	SourceTypeResearchPaper SourceType = "research_paper"
	SourceTypeBlog          SourceType = "blog"
	SourceTypeWebsite       SourceType = "website"
	SourceTypeBible         SourceType = "bible"
)

// Valid reports whether t is one of the known source types.
func (t SourceType) Valid() bool {
	switch t {
	case SourceTypeBook, SourceTypePodcast, SourceTypeArticle, SourceTypeVideo,
		SourceTypeSpeech, SourceTypeResearchPaper, SourceTypeBlog, SourceTypeWebsite,
		SourceTypeBible:
		return true
	}
	return false
}

// Profile holds the per-assistant configuration consumed by every pipeline stage.
// Profiles are immutable after registry construction and safe to share across turns.
type Profile struct {
	// ID is the assistant identifier used in URLs and registry lookups.
	ID string `json:"id"`
	// Title is the human-readable assistant name.
	Title string `json:"title"`
	// Description is a short blurb shown in assistant listings.
	Description string `json:"description"`
	// Category groups assistants in listings (e.g., "Bible Study").
	Category string `json:"category"`
	// SystemPrompt is the assistant's base persona prompt. It also serves as the
	// domain description given to the relevance classifier.
	SystemPrompt string `json:"systemPrompt"`
	// WelcomeMessage is the greeting shown before the first user turn.
	WelcomeMessage string `json:"welcomeMessage"`
	// PlaceholderText is the input placeholder suggested to clients.
	PlaceholderText string `json:"placeholderText"`
	// CorpusNamespace is the opaque partition id scoping similarity searches to
	// this assistant's indexed documents.
	CorpusNamespace string `json:"corpusNamespace"`
	// MatchThreshold is the minimum similarity for a retrieved source, in [0,1].
	MatchThreshold float32 `json:"matchThreshold"`
	// MatchCount is the number of candidates requested per similarity search.
	MatchCount int `json:"matchCount"`
	// RerankSkipThreshold is the candidate-set size at or below which the
	// second-pass rerank is skipped.
	RerankSkipThreshold int `json:"rerankSkipThreshold"`
	// Examples are suggested starter questions.
	Examples []string `json:"examples,omitempty"`
}

const (
	// DefaultMatchThreshold is applied when a profile does not set its own.
	DefaultMatchThreshold = float32(0.5)
	// DefaultMatchCount is applied when a profile does not set its own.
	DefaultMatchCount = 20
	// DefaultRerankSkipThreshold is applied when a profile does not set its own.
	DefaultRerankSkipThreshold = 2
)

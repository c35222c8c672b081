package domain

// TermFrequency is the occurrence count of one cleaned term.
type TermFrequency struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Top frequency list bounds.
const (
	DefaultTopWords = 20
	MinTopWords     = 5
	MaxTopWords     = 50
)

// Analysis is the output of text normalisation.
type Analysis struct {
	// CleanText is the lowercased, lemmatised text without stop words.
	CleanText string `json:"clean_text"`

	// Frequencies is sorted by count descending, then term.
	Frequencies []TermFrequency `json:"frequencies"`

	// WordCount is the number of words in the original text.
	WordCount int `json:"word_count"`
}

// Top returns at most n frequencies.
func (a *Analysis) Top(n int) []TermFrequency {
	if n < 0 || n >= len(a.Frequencies) {
		return a.Frequencies
	}
	return a.Frequencies[:n]
}

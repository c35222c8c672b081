package french

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// paragraphRe separates blank-line paragraphs and bulleted lines.
	paragraphRe = regexp.MustCompile(`\n\s*\n|\n\s*(?:[-*•▪]|\d+[.)])\s+`)

	// terminatorRe finds sentence ends: terminal punctuation followed by
	// whitespace.
	terminatorRe = regexp.MustCompile(`[.!?…]+["»)]?\s+`)

	abbreviations = words("m", "mme", "mlle", "mm", "dr", "art", "etc", "cf", "p", "pp", "ex", "env", "n°", "no", "vol", "chap", "fig")
)

// Sentences splits text into trimmed, whitespace-collapsed sentences.
func (m *Model) Sentences(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []string
	for _, para := range paragraphRe.Split(norm.NFC.String(text), -1) {
		out = append(out, splitParagraph(para)...)
	}
	return out, nil
}

func splitParagraph(para string) []string {
	var out []string
	start := 0
	for _, loc := range terminatorRe.FindAllStringIndex(para, -1) {
		if isAbbreviation(para[start:loc[0]]) {
			continue
		}
		if s := collapse(para[start:loc[1]]); s != "" {
			out = append(out, s)
		}
		start = loc[1]
	}
	if s := collapse(para[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// isAbbreviation reports whether the text before a period ends with a
// known abbreviation or a single letter initial.
func isAbbreviation(before string) bool {
	fields := strings.Fields(before)
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(strings.TrimLeft(fields[len(fields)-1], "(«\""))
	return abbreviations[last]
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

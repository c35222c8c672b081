// Package similarity scores rules against control points with TF-IDF
// weighted bag-of-words vectors and cosine similarity.
//
// Weighting follows the common smoothed scheme: raw term counts scaled by
// idf(t) = ln((1+n)/(1+df(t))) + 1, each vector L2-normalised. Tokens are
// lowercase runs of two or more letters, digits or underscores.
package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into lowercase terms of at least two characters.
func Tokenize(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	tokens := raw[:0]
	for _, t := range raw {
		if utf8.RuneCountInString(t) >= 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Vector is a sparse, L2-normalised term-weight vector.
type Vector map[int]float64

// Dot returns the dot product of two vectors. For normalised vectors this
// is their cosine similarity.
func (v Vector) Dot(other Vector) float64 {
	small, large := v, other
	if len(small) > len(large) {
		small, large = large, small
	}
	var sum float64
	for i, w := range small {
		sum += w * large[i]
	}
	return sum
}

// Vectorizer holds a vocabulary and idf weights fitted on a corpus.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// Fit builds the vocabulary and idf weights of a corpus.
func Fit(corpus []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, t := range Tokenize(doc) {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(corpus))
	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	for i, t := range terms {
		v.vocabulary[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v
}

// Vocabulary returns the fitted terms in index order.
func (v *Vectorizer) Vocabulary() []string {
	terms := make([]string, len(v.vocabulary))
	for t, i := range v.vocabulary {
		terms[i] = t
	}
	return terms
}

// Transform weights a document against the fitted vocabulary. Unknown
// terms are ignored; a document without known terms yields an empty
// vector.
func (v *Vectorizer) Transform(doc string) Vector {
	vec := make(Vector)
	for _, t := range Tokenize(doc) {
		if i, ok := v.vocabulary[t]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i, count := range vec {
		w := count * v.idf[i]
		vec[i] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

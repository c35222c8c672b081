package domain

// Part-of-speech tags from the universal tag set.
const (
	POSAdjective   = "ADJ"
	POSAdposition  = "ADP"
	POSAdverb      = "ADV"
	POSAuxiliary   = "AUX"
	POSConjunction = "CCONJ"
	POSDeterminer  = "DET"
	POSNoun        = "NOUN"
	POSNumeral     = "NUM"
	POSParticle    = "PART"
	POSPronoun     = "PRON"
	POSPunctuation = "PUNCT"
	POSSubordinate = "SCONJ"
	POSVerb        = "VERB"
	POSOther       = "X"
)

// Token is one annotated word produced by a linguistic model.
type Token struct {
	// Text is the surface form as it appears in the input.
	Text string

	// Lemma is the base form.
	Lemma string

	// POS is the universal part-of-speech tag.
	POS string

	// IsStop reports whether the token is a stop word.
	IsStop bool

	// IsPunct reports whether the token is punctuation.
	IsPunct bool
}

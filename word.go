package paligen

// Word is one dictionary sense of a lemma. Several Word records may
// share a LemmaID (distinct senses of the same headword); all of them
// inflect identically, so the generator only needs stem and pattern.
// Word data is produced by the offline extraction step and is immutable
// at runtime.
type Word struct {
	// LemmaID is the stable lemma identity, assigned once by the
	// extraction registry and never renumbered. Nouns and verbs occupy
	// disjoint ranges (see NounLemmaMin etc.).
	LemmaID int
	// Lemma is the cleaned headword, without sense numbering.
	Lemma string
	POS   PartOfSpeech
	// Stem is the inflection base with source markers already stripped.
	Stem string
	// Pattern is the raw pattern name as published by the source
	// dictionary; resolve it with Classify.
	Pattern string
	// Gender of the lemma; GenderNone for verbs.
	Gender Gender
	// CorpusCount is the headword's occurrence count in the early
	// Buddhist texts, used for ordering only.
	CorpusCount int
}

// CanInflect reports whether the word carries enough data to generate
// any form at all. A word with an empty stem or empty pattern yields
// nothing.
func (w Word) CanInflect() bool {
	return CleanStem(w.Stem) != "" && w.Stem != "-" && w.Pattern != ""
}

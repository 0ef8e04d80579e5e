// Package paligen generates the inflected forms of Pali nouns and verbs
// for drill-based training, assigns each surface-form variant a stable
// numeric identity, and flags whether the form is attested in the
// Tipitaka corpus.
//
// The generator is a pure, synchronous computation over immutable static
// tables; it is safe for concurrent use. Its only collaborators are two
// read-only lookups supplied at construction: the irregular-form store
// and the corpus attestation set (both served by Store, or by any other
// implementation of the interfaces below).
package paligen

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate reports a generation request whose coordinate
// carries a none/unspecified axis or does not match the word's part of
// speech.
var ErrInvalidCoordinate = errors.New("invalid grammatical coordinate")

// IrregularSource supplies complete surface forms for irregular lemmas.
// Forms are ordered by variant index; an empty slice means no form is
// recorded for the coordinate, which is a normal outcome. Irregular
// forms are only ever entered into the store when observed in the
// corpus, so every returned form is attested by construction.
type IrregularSource interface {
	NounForms(lemmaID int, c NounCoordinate) ([]string, error)
	VerbForms(lemmaID int, c VerbCoordinate) ([]string, error)
}

// AttestationSet is the membership test against the corpus attestation
// set built at release time.
type AttestationSet interface {
	Contains(id FormID) bool
}

// CandidateForm is one generated surface-form variant.
type CandidateForm struct {
	// Surface is the complete inflected form.
	Surface string
	// Ending is the suffix attached to the stem. For irregular forms no
	// stem/ending split is meaningful and Ending equals Surface.
	Ending string
	// VariantIndex is the 1-based position among the coordinate's
	// co-valid endings (index GroupVariant is reserved).
	VariantIndex int
	ID           FormID
	// Attested reports whether the form occurs in the reference corpus.
	Attested bool
}

// FormGroup is the generation result for one grammatical coordinate.
// An empty Forms list is a valid, non-error outcome: the word simply
// has no form at that coordinate.
type FormGroup struct {
	Coordinate Coordinate
	Forms      []CandidateForm
}

// Primary returns the most standard candidate, or false if the group is
// empty. Callers must treat "no primary form" as distinct from a
// generation failure.
func (g FormGroup) Primary() (CandidateForm, bool) {
	if len(g.Forms) == 0 {
		return CandidateForm{}, false
	}
	return g.Forms[0], true
}

// Generator produces FormGroups for words at grammatical coordinates.
type Generator struct {
	irregs IrregularSource
	corpus AttestationSet
}

// NewGenerator wires the generator to its two read-only collaborators.
func NewGenerator(irregs IrregularSource, corpus AttestationSet) *Generator {
	return &Generator{irregs: irregs, corpus: corpus}
}

// Generate produces every linguistically valid surface form of w at the
// given coordinate.
//
// Words without a stem or pattern yield an empty group. Unknown pattern
// names are a hard error: shipped data guarantees every pattern is in
// the catalog, so a miss indicates a data-pipeline defect. Collaborator
// failures propagate so the caller can distinguish "no such form" from
// "data failed to load".
func (g *Generator) Generate(w Word, coord Coordinate) (FormGroup, error) {
	group := FormGroup{Coordinate: coord}
	if !w.CanInflect() {
		return group, nil
	}
	p, err := Classify(w.Pattern)
	if err != nil {
		return group, err
	}
	if coord == nil || !coord.Valid() {
		return group, fmt.Errorf("%w: %v", ErrInvalidCoordinate, coord)
	}

	switch c := coord.(type) {
	case NounCoordinate:
		if w.POS != POSNoun || p.POS != POSNoun {
			return group, fmt.Errorf("%w: noun coordinate for %s %q", ErrInvalidCoordinate, w.POS, w.Lemma)
		}
		return g.generateNoun(w, p, c)
	case VerbCoordinate:
		if w.POS != POSVerb || p.POS != POSVerb {
			return group, fmt.Errorf("%w: verb coordinate for %s %q", ErrInvalidCoordinate, w.POS, w.Lemma)
		}
		return g.generateVerb(w, p, c)
	}
	return group, fmt.Errorf("%w: unsupported coordinate type %T", ErrInvalidCoordinate, coord)
}

func (g *Generator) generateNoun(w Word, p *Pattern, c NounCoordinate) (FormGroup, error) {
	group := FormGroup{Coordinate: c}

	if p.IsIrregular() {
		forms, err := g.irregs.NounForms(w.LemmaID, c)
		if err != nil {
			return group, fmt.Errorf("irregular forms for %q %s: %w", w.Lemma, c, err)
		}
		for i, f := range forms {
			group.Forms = append(group.Forms, CandidateForm{
				Surface:      f,
				Ending:       f,
				VariantIndex: i + 1,
				ID:           EncodeDeclension(w.LemmaID, c, i+1),
				Attested:     true,
			})
		}
		return group, nil
	}

	stem := CleanStem(w.Stem)
	for i, ending := range NounEndings(p, c) {
		surface := stem + ending
		if ending == "-" {
			// Bare-stem cell in the source templates.
			surface = stem
		}
		id := EncodeDeclension(w.LemmaID, c, i+1)
		group.Forms = append(group.Forms, CandidateForm{
			Surface:      surface,
			Ending:       ending,
			VariantIndex: i + 1,
			ID:           id,
			Attested:     g.corpus.Contains(id),
		})
	}
	return group, nil
}

func (g *Generator) generateVerb(w Word, p *Pattern, c VerbCoordinate) (FormGroup, error) {
	group := FormGroup{Coordinate: c}

	if p.IsIrregular() {
		forms, err := g.irregs.VerbForms(w.LemmaID, c)
		if err != nil {
			return group, fmt.Errorf("irregular forms for %q %s: %w", w.Lemma, c, err)
		}
		for i, f := range forms {
			group.Forms = append(group.Forms, CandidateForm{
				Surface:      f,
				Ending:       f,
				VariantIndex: i + 1,
				ID:           EncodeConjugation(w.LemmaID, c, i+1),
				Attested:     true,
			})
		}
		return group, nil
	}

	stem := CleanStem(w.Stem)
	for i, ending := range VerbEndings(p, c) {
		surface := stem + ending
		if ending == "-" {
			surface = stem
		}
		id := EncodeConjugation(w.LemmaID, c, i+1)
		group.Forms = append(group.Forms, CandidateForm{
			Surface:      surface,
			Ending:       ending,
			VariantIndex: i + 1,
			ID:           id,
			Attested:     g.corpus.Contains(id),
		})
	}
	return group, nil
}

// Table generates the word's complete inflection table: one FormGroup
// per coordinate, in canonical axis order. Empty groups are included so
// callers can render defective cells.
func (g *Generator) Table(w Word) ([]FormGroup, error) {
	var coords []Coordinate
	switch w.POS {
	case POSNoun:
		for _, c := range AllNounCoordinates(w.Gender) {
			coords = append(coords, c)
		}
	case POSVerb:
		for _, c := range AllVerbCoordinates() {
			coords = append(coords, c)
		}
	default:
		return nil, fmt.Errorf("%w: part of speech %q", ErrInvalidCoordinate, w.POS)
	}

	out := make([]FormGroup, 0, len(coords))
	for _, c := range coords {
		grp, err := g.Generate(w, c)
		if err != nil {
			return nil, err
		}
		out = append(out, grp)
	}
	return out, nil
}

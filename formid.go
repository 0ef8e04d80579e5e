package paligen

import (
	"errors"
	"fmt"
)

// FormID is the packed integer naming one generated surface-form
// variant. It is the join key between generated forms and persisted
// per-form learner progress, so the packing below is a frozen contract:
// changing a digit width or the field order would orphan every saved
// progress record.
//
// Declension:  lemmaID(5) case(1) gender(1) number(1) variant(1)
// Conjugation: lemmaID(5) tense(1) person(1) number(1) voice(1) variant(1)
//
// The voice digit is 0 for active and 1 for reflexive (one less than the
// Voice enum value), matching the persisted data.
type FormID int64

// Stable lemma-identity ranges. Noun and verb ranges are disjoint, which
// keeps the two identity spaces disjoint as well (a 9-digit declension
// identity can never equal a 10-digit conjugation identity).
const (
	NounLemmaMin = 10001
	NounLemmaMax = 69999
	VerbLemmaMin = 70001
	VerbLemmaMax = 99999
)

// GroupVariant is the reserved variant index meaning "the coordinate
// group as a whole" rather than one specific surface form. Generated
// candidates are numbered from 1.
const GroupVariant = 0

// ErrBadFormID reports an identity that decodes outside every valid
// lemma or axis range.
var ErrBadFormID = errors.New("malformed form identity")

// NounLemmaID reports whether id is in the noun lemma-identity range.
func NounLemmaID(id int) bool { return id >= NounLemmaMin && id <= NounLemmaMax }

// VerbLemmaID reports whether id is in the verb lemma-identity range.
func VerbLemmaID(id int) bool { return id >= VerbLemmaMin && id <= VerbLemmaMax }

// EncodeDeclension packs a declension form identity. It is a pure,
// injective function of its inputs; callers are expected to pass a
// lemma identity in the noun range, a valid coordinate and a variant
// index in 0..9 (these hold for all shipped data, and DecodeDeclension
// rejects anything else).
func EncodeDeclension(lemmaID int, c NounCoordinate, variant int) FormID {
	return FormID(int64(lemmaID)*10_000 +
		int64(c.Case)*1_000 +
		int64(c.Gender)*100 +
		int64(c.Number)*10 +
		int64(variant))
}

// DecodeDeclension unpacks a declension form identity.
func DecodeDeclension(id FormID) (lemmaID int, c NounCoordinate, variant int, err error) {
	n := int64(id)
	variant = int(n % 10)
	n /= 10
	c.Number = Number(n % 10)
	n /= 10
	c.Gender = Gender(n % 10)
	n /= 10
	c.Case = Case(n % 10)
	lemmaID = int(n / 10)
	if !NounLemmaID(lemmaID) || !c.Valid() {
		return 0, NounCoordinate{}, 0, fmt.Errorf("%w: %d is not a declension identity", ErrBadFormID, id)
	}
	return lemmaID, c, variant, nil
}

// EncodeConjugation packs a conjugation form identity. Same contract as
// EncodeDeclension, with the lemma identity in the verb range.
func EncodeConjugation(lemmaID int, c VerbCoordinate, variant int) FormID {
	return FormID(int64(lemmaID)*100_000 +
		int64(c.Tense)*10_000 +
		int64(c.Person)*1_000 +
		int64(c.Number)*100 +
		int64(c.Voice-Active)*10 +
		int64(variant))
}

// DecodeConjugation unpacks a conjugation form identity.
func DecodeConjugation(id FormID) (lemmaID int, c VerbCoordinate, variant int, err error) {
	n := int64(id)
	variant = int(n % 10)
	n /= 10
	c.Voice = Voice(n%10) + Active
	n /= 10
	c.Number = Number(n % 10)
	n /= 10
	c.Person = Person(n % 10)
	n /= 10
	c.Tense = Tense(n % 10)
	lemmaID = int(n / 10)
	if !VerbLemmaID(lemmaID) || !c.Valid() {
		return 0, VerbCoordinate{}, 0, fmt.Errorf("%w: %d is not a conjugation identity", ErrBadFormID, id)
	}
	return lemmaID, c, variant, nil
}

// Decode unpacks either kind of form identity, dispatching on the
// disjoint lemma ranges.
func Decode(id FormID) (lemmaID int, coord Coordinate, variant int, err error) {
	if NounLemmaID(int(int64(id) / 10_000)) {
		l, c, v, err := DecodeDeclension(id)
		return l, c, v, err
	}
	if VerbLemmaID(int(int64(id) / 100_000)) {
		l, c, v, err := DecodeConjugation(id)
		return l, c, v, err
	}
	return 0, nil, 0, fmt.Errorf("%w: %d matches neither lemma range", ErrBadFormID, id)
}

package paligen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDeclensionKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		lemmaID int
		coord   NounCoordinate
		variant int
		want    FormID
	}{
		{
			name:    "instr masc pl second variant",
			lemmaID: 10789,
			coord:   NounCoordinate{Case: Instrumental, Gender: Masculine, Number: Plural},
			variant: 2,
			want:    107893122,
		},
		{
			name:    "nom masc sg first variant",
			lemmaID: 10001,
			coord:   NounCoordinate{Case: Nominative, Gender: Masculine, Number: Singular},
			variant: 1,
			want:    100011111,
		},
		{
			name:    "voc nt pl group identity",
			lemmaID: 69999,
			coord:   NounCoordinate{Case: Vocative, Gender: Neuter, Number: Plural},
			variant: GroupVariant,
			want:    699998320,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeDeclension(tt.lemmaID, tt.coord, tt.variant))
		})
	}
}

func TestEncodeConjugationKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		lemmaID int
		coord   VerbCoordinate
		variant int
		want    FormID
	}{
		{
			name:    "imp 3rd sg active third variant",
			lemmaID: 70683,
			coord:   VerbCoordinate{Tense: Imperative, Person: Third, Number: Singular, Voice: Active},
			variant: 3,
			want:    7068323103,
		},
		{
			name:    "pr 1st sg reflexive first variant",
			lemmaID: 70001,
			coord:   VerbCoordinate{Tense: Present, Person: First, Number: Singular, Voice: Reflexive},
			variant: 1,
			want:    7000111111,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeConjugation(tt.lemmaID, tt.coord, tt.variant))
		})
	}
}

func TestDeclensionRoundTrip(t *testing.T) {
	for _, lemmaID := range []int{NounLemmaMin, 10789, 42000, NounLemmaMax} {
		for _, g := range []Gender{Masculine, Feminine, Neuter} {
			for _, c := range AllNounCoordinates(g) {
				for _, variant := range []int{GroupVariant, 1, 4, 9} {
					id := EncodeDeclension(lemmaID, c, variant)
					gotLemma, gotCoord, gotVariant, err := DecodeDeclension(id)
					require.NoError(t, err)
					assert.Equal(t, lemmaID, gotLemma)
					assert.Equal(t, c, gotCoord)
					assert.Equal(t, variant, gotVariant)
				}
			}
		}
	}
}

func TestConjugationRoundTrip(t *testing.T) {
	for _, lemmaID := range []int{VerbLemmaMin, 70683, 85000, VerbLemmaMax} {
		for _, c := range AllVerbCoordinates() {
			for _, variant := range []int{GroupVariant, 1, 9} {
				id := EncodeConjugation(lemmaID, c, variant)
				gotLemma, gotCoord, gotVariant, err := DecodeConjugation(id)
				require.NoError(t, err)
				assert.Equal(t, lemmaID, gotLemma)
				assert.Equal(t, c, gotCoord)
				assert.Equal(t, variant, gotVariant)
			}
		}
	}
}

// The noun and verb lemma ranges are disjoint, so a declension identity
// can never collide with a conjugation identity even though their digit
// counts overlap at the boundaries.
func TestIdentitySpacesDisjoint(t *testing.T) {
	nounID := EncodeDeclension(NounLemmaMax, NounCoordinate{Case: Vocative, Gender: Neuter, Number: Plural}, 9)
	verbID := EncodeConjugation(VerbLemmaMin, VerbCoordinate{Tense: Present, Person: First, Number: Singular, Voice: Active}, 0)
	assert.Less(t, int64(nounID), int64(verbID))

	_, _, _, err := DecodeConjugation(nounID)
	assert.ErrorIs(t, err, ErrBadFormID)
	_, _, _, err = DecodeDeclension(verbID)
	assert.ErrorIs(t, err, ErrBadFormID)
}

func TestDecodeDispatch(t *testing.T) {
	nounCoord := NounCoordinate{Case: Ablative, Gender: Feminine, Number: Singular}
	lemmaID, coord, variant, err := Decode(EncodeDeclension(23456, nounCoord, 1))
	require.NoError(t, err)
	assert.Equal(t, 23456, lemmaID)
	assert.Equal(t, nounCoord, coord)
	assert.Equal(t, 1, variant)

	verbCoord := VerbCoordinate{Tense: Optative, Person: Second, Number: Plural, Voice: Reflexive}
	lemmaID, coord, variant, err = Decode(EncodeConjugation(88888, verbCoord, 2))
	require.NoError(t, err)
	assert.Equal(t, 88888, lemmaID)
	assert.Equal(t, verbCoord, coord)
	assert.Equal(t, 2, variant)
}

func TestDecodeRejectsMalformedIdentities(t *testing.T) {
	tests := []struct {
		name string
		id   FormID
	}{
		{"zero", 0},
		{"negative", -107893122},
		{"lemma below noun range", 99991111},
		{"lemma in the inter-range gap", 700001111},
		{"none case digit", 107890111},
		{"case digit out of range", 107899111},
		{"none number digit", 107893101},
		{"verb tense digit out of range", 7068363103},
		{"verb person digit out of range", 7068324103},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := Decode(tt.id)
			assert.ErrorIs(t, err, ErrBadFormID)
		})
	}
}

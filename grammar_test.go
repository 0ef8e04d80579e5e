package paligen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNounGrammar(t *testing.T) {
	tests := []struct {
		grammar string
		label   string
		want    NounCoordinate
	}{
		{"masc nom sg", "", NounCoordinate{Case: Nominative, Gender: Masculine, Number: Singular}},
		{"fem instr pl", "", NounCoordinate{Case: Instrumental, Gender: Feminine, Number: Plural}},
		{"nt acc sg", "", NounCoordinate{Case: Accusative, Gender: Neuter, Number: Singular}},
		{"masculine vocative plural", "", NounCoordinate{Case: Vocative, Gender: Masculine, Number: Plural}},
		// Case only named in the row label.
		{"masc sg", "abl", NounCoordinate{Case: Ablative, Gender: Masculine, Number: Singular}},
		// Undetectable axes stay at their none value.
		{"nom sg", "", NounCoordinate{Case: Nominative, Number: Singular}},
		{"", "", NounCoordinate{}},
	}
	for _, tt := range tests {
		t.Run(tt.grammar+"/"+tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNounGrammar(tt.grammar, tt.label))
		})
	}
}

func TestParseVerbGrammar(t *testing.T) {
	tests := []struct {
		grammar string
		label   string
		want    VerbCoordinate
	}{
		{"pr 3rd sg", "", VerbCoordinate{Tense: Present, Person: Third, Number: Singular, Voice: Active}},
		{"reflx opt 2nd sg", "", VerbCoordinate{Tense: Optative, Person: Second, Number: Singular, Voice: Reflexive}},
		{"imp 2nd pl", "", VerbCoordinate{Tense: Imperative, Person: Second, Number: Plural, Voice: Active}},
		{"fut 1st sg", "", VerbCoordinate{Tense: Future, Person: First, Number: Singular, Voice: Active}},
		{"aor 3rd pl", "", VerbCoordinate{Tense: Aorist, Person: Third, Number: Plural, Voice: Active}},
		// Tense only named in the row label.
		{"3rd sg", "pr", VerbCoordinate{Tense: Present, Person: Third, Number: Singular, Voice: Active}},
	}
	for _, tt := range tests {
		t.Run(tt.grammar+"/"+tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVerbGrammar(tt.grammar, tt.label))
		})
	}
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, NounCoordinate{Case: Nominative, Gender: Masculine, Number: Singular}.Valid())
	assert.True(t, NounCoordinate{Case: Vocative, Gender: Neuter, Number: Plural}.Valid())
	assert.False(t, NounCoordinate{}.Valid())
	assert.False(t, NounCoordinate{Case: Nominative, Number: Singular}.Valid())
	assert.False(t, NounCoordinate{Case: Case(9), Gender: Masculine, Number: Singular}.Valid())

	assert.True(t, VerbCoordinate{Tense: Present, Person: Third, Number: Singular, Voice: Active}.Valid())
	assert.True(t, VerbCoordinate{Tense: Aorist, Person: First, Number: Plural, Voice: Reflexive}.Valid())
	assert.False(t, VerbCoordinate{}.Valid())
	assert.False(t, VerbCoordinate{Tense: Present, Person: Third, Number: Singular}.Valid())
	assert.False(t, VerbCoordinate{Tense: Tense(6), Person: Third, Number: Singular, Voice: Active}.Valid())
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "masc abl sg",
		NounCoordinate{Case: Ablative, Gender: Masculine, Number: Singular}.String())
	assert.Equal(t, "pr 3rd sg",
		VerbCoordinate{Tense: Present, Person: Third, Number: Singular, Voice: Active}.String())
	assert.Equal(t, "reflx opt 2nd pl",
		VerbCoordinate{Tense: Optative, Person: Second, Number: Plural, Voice: Reflexive}.String())
}

func TestAllNounCoordinates(t *testing.T) {
	coords := AllNounCoordinates(Feminine)
	assert.Len(t, coords, 16)
	seen := make(map[NounCoordinate]bool)
	for _, c := range coords {
		assert.True(t, c.Valid(), c.String())
		assert.Equal(t, Feminine, c.Gender)
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
	// Case-major, number-minor order.
	assert.Equal(t, NounCoordinate{Case: Nominative, Number: Singular, Gender: Feminine}, coords[0])
	assert.Equal(t, NounCoordinate{Case: Nominative, Number: Plural, Gender: Feminine}, coords[1])
	assert.Equal(t, NounCoordinate{Case: Vocative, Number: Plural, Gender: Feminine}, coords[15])
}

func TestAllVerbCoordinates(t *testing.T) {
	coords := AllVerbCoordinates()
	assert.Len(t, coords, 48)
	seen := make(map[VerbCoordinate]bool)
	for _, c := range coords {
		assert.True(t, c.Valid(), c.String())
		assert.NotEqual(t, Aorist, c.Tense, "aorist cells are not drilled")
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

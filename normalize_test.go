package paligen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStem(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dhamm", "dhamm"},
		{"dhamm!", "dhamm"},
		{"*kubb", "kubb"},
		{"sa!ṅgh*", "saṅgh"},
		{"", ""},
		{"!*", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanStem(tt.in), tt.in)
	}
}

func TestFromVelthuis(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dhamma", "dhamma"},
		{"naarii", "nārī"},
		{"bhikkhuu", "bhikkhū"},
		{".thaana", "ṭhāna"},
		{"sa\"ngha", "saṅgha"},
		{"~naa.na", "ñāṇa"},
		{"ruupa.m", "rūpaṃ"},
		{"AAnanda", "Ānanda"},
		// Unicode passes through untouched.
		{"saññā", "saññā"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromVelthuis(tt.in), tt.in)
	}
}

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "rupam", StripDiacritics("rūpaṃ"))
	assert.Equal(t, "sanna", StripDiacritics("saññā"))
	assert.Equal(t, "thana", StripDiacritics("ṭhāna"))
	assert.Equal(t, "plain", StripDiacritics("plain"))
}

// ASCII Velthuis input, bare ASCII input and full Unicode input must
// all normalize to the same lookup key.
func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		inputs []string
		key    string
	}{
		{[]string{"nārī", "naarii", "nari", "Nārī"}, "nari"},
		{[]string{"bhikkhū", "bhikkhuu", "bhikkhu"}, "bhikkhu"},
		{[]string{"ṭhāna", ".thaana", "thana"}, "thana"},
		{[]string{"saṅgha", "sa\"ngha", "sangha"}, "sangha"},
	}
	for _, tt := range tests {
		for _, in := range tt.inputs {
			assert.Equal(t, tt.key, NormalizeKey(in), in)
		}
	}
}

package paligen

import "strings"

// stemMarkerReplacer strips the source dictionary's stem markers.
// The upstream data uses ! and * inside stems to flag editorial notes;
// they never appear in surface forms.
var stemMarkerReplacer = strings.NewReplacer("!", "", "*", "")

// CleanStem removes source-markup characters from a raw dictionary stem.
func CleanStem(stem string) string {
	if stem == "" {
		return ""
	}
	return stemMarkerReplacer.Replace(stem)
}

// velthuisReplacer expands Velthuis ASCII romanization into Pali
// Unicode. Two-character sequences are listed before any single
// character they start with, so "aa" wins over "a".
var velthuisReplacer = strings.NewReplacer(
	"aa", "ā",
	"ii", "ī",
	"uu", "ū",
	".t", "ṭ",
	".d", "ḍ",
	".n", "ṇ",
	".l", "ḷ",
	".m", "ṃ",
	"\"n", "ṅ",
	"~n", "ñ",
	"AA", "Ā",
	"II", "Ī",
	"UU", "Ū",
	".T", "Ṭ",
	".D", "Ḍ",
	".N", "Ṇ",
	".L", "Ḷ",
	".M", "Ṃ",
	"\"N", "Ṅ",
	"~N", "Ñ",
)

// FromVelthuis converts Velthuis ASCII romanization (aa, .t, "n, ~n …)
// into Pali Unicode. Text already in Unicode passes through unchanged.
func FromVelthuis(s string) string {
	return velthuisReplacer.Replace(s)
}

// asciiReplacer strips Pali diacritics down to plain ASCII. Loses the
// long/short and retroflex distinctions, so use it only for building
// fuzzy lookup keys.
var asciiReplacer = strings.NewReplacer(
	"ā", "a",
	"ī", "i",
	"ū", "u",
	"ṭ", "t",
	"ḍ", "d",
	"ṇ", "n",
	"ḷ", "l",
	"ṃ", "m",
	"ṅ", "n",
	"ñ", "n",
	"Ā", "A",
	"Ī", "I",
	"Ū", "U",
	"Ṭ", "T",
	"Ḍ", "D",
	"Ṇ", "N",
	"Ḷ", "L",
	"Ṃ", "M",
	"Ṅ", "N",
	"Ñ", "N",
)

// StripDiacritics removes all Pali diacritics from s.
func StripDiacritics(s string) string {
	return asciiReplacer.Replace(s)
}

// NormalizeKey returns the canonical fuzzy lookup key for a headword:
// Velthuis expansion first (so ASCII input and Unicode input normalize
// to the same key), then diacritic stripping and lowercasing.
func NormalizeKey(s string) string {
	return strings.ToLower(StripDiacritics(FromVelthuis(s)))
}

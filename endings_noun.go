package paligen

// nounEndings holds the candidate endings for one declension paradigm,
// indexed by case and number. The first ending in each cell is the
// primary (most standard) one; the rest are historically attested
// alternates, kept in order because each may independently be
// corpus-attested. An empty cell means the paradigm has no form there.
type nounEndings [Vocative + 1][Plural + 1][]string

func (t *nounEndings) at(c Case, n Number) []string {
	if c < Nominative || c > Vocative || (n != Singular && n != Plural) {
		return nil
	}
	return t[c][n]
}

// NounEndings returns the ordered candidate endings for one declension
// cell. It is pure and total: variant and irregular patterns without a
// table, unsupported coordinates, and gender mismatches all yield nil,
// never an error.
func NounEndings(p *Pattern, c NounCoordinate) []string {
	if p == nil || p.POS != POSNoun || p.IsIrregular() {
		return nil
	}
	if !c.Valid() || c.Gender != p.Gender {
		return nil
	}
	t, ok := nounTables[p.Name]
	if !ok {
		return nil
	}
	return t.at(c.Case, c.Number)
}

// Masculine a-stems (dhamma, loka).
var aMasc = nounEndings{
	Nominative:   {Singular: {"o"}, Plural: {"ā", "āse"}},
	Accusative:   {Singular: {"aṃ"}, Plural: {"e"}},
	Instrumental: {Singular: {"ena"}, Plural: {"ehi", "ebhi"}},
	Dative:       {Singular: {"assa", "āya"}, Plural: {"ānaṃ"}},
	Ablative:     {Singular: {"ā", "asmā", "amhā", "ato"}, Plural: {"ehi", "ebhi"}},
	Genitive:     {Singular: {"assa"}, Plural: {"ānaṃ"}},
	Locative:     {Singular: {"e", "asmiṃ", "amhi"}, Plural: {"esu"}},
	Vocative:     {Singular: {"a", "ā"}, Plural: {"ā"}},
}

// Masculine i-stems (aggi, muni).
var iMasc = nounEndings{
	Nominative:   {Singular: {"i"}, Plural: {"ī", "ayo"}},
	Accusative:   {Singular: {"iṃ"}, Plural: {"ī", "ayo"}},
	Instrumental: {Singular: {"inā"}, Plural: {"īhi", "ībhi"}},
	Dative:       {Singular: {"issa", "ino"}, Plural: {"īnaṃ"}},
	Ablative:     {Singular: {"inā", "ismā", "imhā"}, Plural: {"īhi", "ībhi"}},
	Genitive:     {Singular: {"issa", "ino"}, Plural: {"īnaṃ"}},
	Locative:     {Singular: {"ismiṃ", "imhi"}, Plural: {"īsu", "isu"}},
	Vocative:     {Singular: {"i"}, Plural: {"ī", "ayo"}},
}

// Masculine ī-stems (pakkhī, seṭṭhī). The stem vowel shortens before
// most oblique endings, so the endings below carry the vowel themselves.
var longIMasc = nounEndings{
	Nominative:   {Singular: {"ī"}, Plural: {"ī", "ino"}},
	Accusative:   {Singular: {"inaṃ", "iṃ"}, Plural: {"ī", "ino"}},
	Instrumental: {Singular: {"inā"}, Plural: {"īhi", "ībhi"}},
	Dative:       {Singular: {"issa", "ino"}, Plural: {"īnaṃ"}},
	Ablative:     {Singular: {"inā", "ismā", "imhā"}, Plural: {"īhi", "ībhi"}},
	Genitive:     {Singular: {"issa", "ino"}, Plural: {"īnaṃ"}},
	Locative:     {Singular: {"ismiṃ", "imhi", "ini"}, Plural: {"īsu"}},
	Vocative:     {Singular: {"ī"}, Plural: {"ī", "ino"}},
}

// Masculine u-stems (bhikkhu, garu).
var uMasc = nounEndings{
	Nominative:   {Singular: {"u"}, Plural: {"ū", "avo"}},
	Accusative:   {Singular: {"uṃ"}, Plural: {"ū", "avo"}},
	Instrumental: {Singular: {"unā"}, Plural: {"ūhi", "ūbhi"}},
	Dative:       {Singular: {"ussa", "uno"}, Plural: {"ūnaṃ"}},
	Ablative:     {Singular: {"unā", "usmā", "umhā"}, Plural: {"ūhi", "ūbhi"}},
	Genitive:     {Singular: {"ussa", "uno"}, Plural: {"ūnaṃ"}},
	Locative:     {Singular: {"usmiṃ", "umhi"}, Plural: {"ūsu"}},
	Vocative:     {Singular: {"u"}, Plural: {"ū", "ave", "avo"}},
}

// Masculine ū-stems (viññū, abhibhū).
var longUMasc = nounEndings{
	Nominative:   {Singular: {"ū"}, Plural: {"ū", "uno"}},
	Accusative:   {Singular: {"uṃ"}, Plural: {"ū", "uno"}},
	Instrumental: {Singular: {"unā"}, Plural: {"ūhi", "ūbhi"}},
	Dative:       {Singular: {"ussa", "uno"}, Plural: {"ūnaṃ"}},
	Ablative:     {Singular: {"unā", "usmā", "umhā"}, Plural: {"ūhi", "ūbhi"}},
	Genitive:     {Singular: {"ussa", "uno"}, Plural: {"ūnaṃ"}},
	Locative:     {Singular: {"usmiṃ", "umhi"}, Plural: {"ūsu"}},
	Vocative:     {Singular: {"ū"}, Plural: {"ū", "uno"}},
}

// Masculine as-stems (manas-group: mano, tapo).
var asMasc = nounEndings{
	Nominative:   {Singular: {"o"}, Plural: {"ā"}},
	Accusative:   {Singular: {"o", "aṃ"}, Plural: {"e"}},
	Instrumental: {Singular: {"asā", "ena"}, Plural: {"ehi", "ebhi"}},
	Dative:       {Singular: {"aso", "assa"}, Plural: {"ānaṃ"}},
	Ablative:     {Singular: {"asā", "ā", "asmā"}, Plural: {"ehi", "ebhi"}},
	Genitive:     {Singular: {"aso", "assa"}, Plural: {"ānaṃ"}},
	Locative:     {Singular: {"asi", "e"}, Plural: {"esu"}},
	Vocative:     {Singular: {"o"}, Plural: {"ā"}},
}

// Masculine ar-stems, agent-noun grade (satthar: satthā, satthāraṃ).
var arMasc = nounEndings{
	Nominative:   {Singular: {"ā"}, Plural: {"āro"}},
	Accusative:   {Singular: {"āraṃ"}, Plural: {"āre", "āro"}},
	Instrumental: {Singular: {"ārā", "unā"}, Plural: {"ārehi", "ūhi"}},
	Dative:       {Singular: {"u", "uno", "ussa"}, Plural: {"ārānaṃ", "ūnaṃ", "ānaṃ"}},
	Ablative:     {Singular: {"ārā"}, Plural: {"ārehi", "ūhi"}},
	Genitive:     {Singular: {"u", "uno", "ussa"}, Plural: {"ārānaṃ", "ūnaṃ", "ānaṃ"}},
	Locative:     {Singular: {"ari"}, Plural: {"āresu", "ūsu"}},
	Vocative:     {Singular: {"a", "ā", "e"}, Plural: {"āro"}},
}

// Masculine ant-stems (participles and -vant/-mant adjectives used as
// nouns: bhagavant, arahant-class regulars).
var antMasc = nounEndings{
	Nominative:   {Singular: {"ā", "anto"}, Plural: {"anto", "antā"}},
	Accusative:   {Singular: {"antaṃ"}, Plural: {"ante"}},
	Instrumental: {Singular: {"atā", "antena"}, Plural: {"antehi"}},
	Dative:       {Singular: {"ato", "antassa"}, Plural: {"ataṃ", "antānaṃ"}},
	Ablative:     {Singular: {"atā", "antā", "antasmā"}, Plural: {"antehi"}},
	Genitive:     {Singular: {"ato", "antassa"}, Plural: {"ataṃ", "antānaṃ"}},
	Locative:     {Singular: {"ati", "ante", "antasmiṃ"}, Plural: {"antesu"}},
	Vocative:     {Singular: {"a", "ā", "aṃ"}, Plural: {"anto", "antā"}},
}

// Feminine ā-stems (vedanā, saññā).
var aaFem = nounEndings{
	Nominative:   {Singular: {"ā"}, Plural: {"ā", "āyo"}},
	Accusative:   {Singular: {"aṃ"}, Plural: {"ā", "āyo"}},
	Instrumental: {Singular: {"āya"}, Plural: {"āhi", "ābhi"}},
	Dative:       {Singular: {"āya"}, Plural: {"ānaṃ"}},
	Ablative:     {Singular: {"āya", "ato"}, Plural: {"āhi", "ābhi"}},
	Genitive:     {Singular: {"āya"}, Plural: {"ānaṃ"}},
	Locative:     {Singular: {"āya", "āyaṃ"}, Plural: {"āsu"}},
	Vocative:     {Singular: {"e"}, Plural: {"ā", "āyo"}},
}

// Feminine i-stems (bhūmi, khanti).
var iFem = nounEndings{
	Nominative:   {Singular: {"i"}, Plural: {"ī", "iyo"}},
	Accusative:   {Singular: {"iṃ"}, Plural: {"ī", "iyo"}},
	Instrumental: {Singular: {"iyā"}, Plural: {"īhi", "ībhi"}},
	Dative:       {Singular: {"iyā"}, Plural: {"īnaṃ"}},
	Ablative:     {Singular: {"iyā"}, Plural: {"īhi", "ībhi"}},
	Genitive:     {Singular: {"iyā"}, Plural: {"īnaṃ"}},
	Locative:     {Singular: {"iyā", "iyaṃ"}, Plural: {"īsu"}},
	Vocative:     {Singular: {"i"}, Plural: {"ī", "iyo"}},
}

// Feminine ī-stems (devī, itthī-class regulars).
var longIFem = nounEndings{
	Nominative:   {Singular: {"ī"}, Plural: {"ī", "iyo"}},
	Accusative:   {Singular: {"iṃ", "iyaṃ"}, Plural: {"ī", "iyo"}},
	Instrumental: {Singular: {"iyā"}, Plural: {"īhi", "ībhi"}},
	Dative:       {Singular: {"iyā"}, Plural: {"īnaṃ"}},
	Ablative:     {Singular: {"iyā"}, Plural: {"īhi", "ībhi"}},
	Genitive:     {Singular: {"iyā"}, Plural: {"īnaṃ"}},
	Locative:     {Singular: {"iyā", "iyaṃ"}, Plural: {"īsu"}},
	Vocative:     {Singular: {"ī"}, Plural: {"ī", "iyo"}},
}

// Feminine u-stems (dhenu, yāgu).
var uFem = nounEndings{
	Nominative:   {Singular: {"u"}, Plural: {"ū", "uyo"}},
	Accusative:   {Singular: {"uṃ"}, Plural: {"ū", "uyo"}},
	Instrumental: {Singular: {"uyā"}, Plural: {"ūhi", "ūbhi"}},
	Dative:       {Singular: {"uyā"}, Plural: {"ūnaṃ"}},
	Ablative:     {Singular: {"uyā"}, Plural: {"ūhi", "ūbhi"}},
	Genitive:     {Singular: {"uyā"}, Plural: {"ūnaṃ"}},
	Locative:     {Singular: {"uyā", "uyaṃ"}, Plural: {"ūsu"}},
	Vocative:     {Singular: {"u"}, Plural: {"ū", "uyo"}},
}

// Feminine ar-stems, kinship grade (dhītar-class regulars; mātar itself
// is irregular).
var arFem = nounEndings{
	Nominative:   {Singular: {"ā"}, Plural: {"aro"}},
	Accusative:   {Singular: {"araṃ"}, Plural: {"are", "aro"}},
	Instrumental: {Singular: {"arā", "uyā"}, Plural: {"arehi", "ūhi"}},
	Dative:       {Singular: {"u", "uyā"}, Plural: {"arānaṃ", "ūnaṃ"}},
	Ablative:     {Singular: {"arā"}, Plural: {"arehi", "ūhi"}},
	Genitive:     {Singular: {"u", "uyā"}, Plural: {"arānaṃ", "ūnaṃ"}},
	Locative:     {Singular: {"ari"}, Plural: {"aresu", "ūsu"}},
	Vocative:     {Singular: {"a", "e"}, Plural: {"aro"}},
}

// Neuter a-stems (citta, rūpa).
var aNt = nounEndings{
	Nominative:   {Singular: {"aṃ"}, Plural: {"āni", "ā"}},
	Accusative:   {Singular: {"aṃ"}, Plural: {"āni", "e"}},
	Instrumental: {Singular: {"ena"}, Plural: {"ehi", "ebhi"}},
	Dative:       {Singular: {"assa", "āya"}, Plural: {"ānaṃ"}},
	Ablative:     {Singular: {"ā", "asmā", "amhā", "ato"}, Plural: {"ehi", "ebhi"}},
	Genitive:     {Singular: {"assa"}, Plural: {"ānaṃ"}},
	Locative:     {Singular: {"e", "asmiṃ", "amhi"}, Plural: {"esu"}},
	Vocative:     {Singular: {"a"}, Plural: {"āni"}},
}

// Neuter i-stems (akkhi, aṭṭhi).
var iNt = nounEndings{
	Nominative:   {Singular: {"i"}, Plural: {"ī", "īni"}},
	Accusative:   {Singular: {"iṃ", "i"}, Plural: {"ī", "īni"}},
	Instrumental: {Singular: {"inā"}, Plural: {"īhi", "ībhi"}},
	Dative:       {Singular: {"issa", "ino"}, Plural: {"īnaṃ"}},
	Ablative:     {Singular: {"inā", "ismā", "imhā"}, Plural: {"īhi", "ībhi"}},
	Genitive:     {Singular: {"issa", "ino"}, Plural: {"īnaṃ"}},
	Locative:     {Singular: {"ismiṃ", "imhi"}, Plural: {"īsu"}},
	Vocative:     {Singular: {"i"}, Plural: {"ī", "īni"}},
}

// Neuter u-stems (cakkhu, vatthu).
var uNt = nounEndings{
	Nominative:   {Singular: {"u", "uṃ"}, Plural: {"ū", "ūni"}},
	Accusative:   {Singular: {"uṃ", "u"}, Plural: {"ū", "ūni"}},
	Instrumental: {Singular: {"unā"}, Plural: {"ūhi", "ūbhi"}},
	Dative:       {Singular: {"ussa", "uno"}, Plural: {"ūnaṃ"}},
	Ablative:     {Singular: {"unā", "usmā", "umhā"}, Plural: {"ūhi", "ūbhi"}},
	Genitive:     {Singular: {"ussa", "uno"}, Plural: {"ūnaṃ"}},
	Locative:     {Singular: {"usmiṃ", "umhi"}, Plural: {"ūsu"}},
	Vocative:     {Singular: {"u"}, Plural: {"ū", "ūni"}},
}

// pluralOnly derives a variant table keeping only the plural column.
// Singular cells stay nil so plural-only paradigms return no singular
// candidates by table construction.
func pluralOnly(src *nounEndings) *nounEndings {
	var out nounEndings
	for c := Nominative; c <= Vocative; c++ {
		out[c][Plural] = src[c][Plural]
	}
	return &out
}

// override derives a variant table replacing individual cells of a base
// table, the same way the source dictionary's variant paradigms restate
// only the cells that differ.
func override(src *nounEndings, cells map[Case]map[Number][]string) *nounEndings {
	out := *src
	for c, byNum := range cells {
		for n, endings := range byNum {
			out[c][n] = endings
		}
	}
	return &out
}

// Eastern (Māgadhī) a-stems keep -e in the nominative singular.
var aMascEast = override(&aMasc, map[Case]map[Number][]string{
	Nominative: {Singular: {"e"}},
	Vocative:   {Singular: {"e", "a"}},
})

var aNtEast = override(&aNt, map[Case]map[Number][]string{
	Nominative: {Singular: {"e", "aṃ"}},
})

// Secondary a-stems favour the archaic -āse nominative plural and the
// sandhi-free oblique singulars.
var a2Masc = override(&aMasc, map[Case]map[Number][]string{
	Nominative: {Plural: {"āse", "ā"}},
	Ablative:   {Singular: {"ato", "ā", "asmā"}},
})

// Short-grade ar-stems (pitar-class: pitā, pitaraṃ).
var ar2Masc = override(&arMasc, map[Case]map[Number][]string{
	Nominative:   {Plural: {"aro"}},
	Accusative:   {Singular: {"araṃ"}, Plural: {"are", "aro"}},
	Instrumental: {Singular: {"arā", "unā"}, Plural: {"arehi", "ūhi"}},
	Ablative:     {Singular: {"arā"}, Plural: {"arehi", "ūhi"}},
	Dative:       {Plural: {"arānaṃ", "ūnaṃ", "unnaṃ"}},
	Genitive:     {Plural: {"arānaṃ", "ūnaṃ", "unnaṃ"}},
	Locative:     {Plural: {"aresu", "ūsu"}},
	Vocative:     {Singular: {"a", "ā"}, Plural: {"aro"}},
})

var nounTables = map[string]*nounEndings{
	"a masc":   &aMasc,
	"i masc":   &iMasc,
	"ī masc":   &longIMasc,
	"u masc":   &uMasc,
	"ū masc":   &longUMasc,
	"as masc":  &asMasc,
	"ar masc":  &arMasc,
	"ant masc": &antMasc,
	"ā fem":    &aaFem,
	"i fem":    &iFem,
	"ī fem":    &longIFem,
	"u fem":    &uFem,
	"ar fem":   &arFem,
	"a nt":     &aNt,
	"i nt":     &iNt,
	"u nt":     &uNt,

	"a masc pl":   pluralOnly(&aMasc),
	"ī masc pl":   pluralOnly(&longIMasc),
	"u masc pl":   pluralOnly(&uMasc),
	"a nt pl":     pluralOnly(&aNt),
	"a masc east": aMascEast,
	"a nt east":   aNtEast,
	"a2 masc":     a2Masc,
	"ar2 masc":    ar2Masc,
}

package paligen

import "strings"

// PartOfSpeech distinguishes the two word classes the trainer covers.
type PartOfSpeech rune

const (
	POSNoun PartOfSpeech = 'n'
	POSVerb PartOfSpeech = 'v'
)

func (p PartOfSpeech) String() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSVerb:
		return "verb"
	}
	return "unknown"
}

// Case is a Pali noun case. The numeric values are embedded in persisted
// form identities and must never be renumbered.
type Case int

const (
	CaseNone Case = iota
	Nominative
	Accusative
	Instrumental
	Dative
	Ablative
	Genitive
	Locative
	Vocative
)

var caseNames = [...]string{"", "nom", "acc", "instr", "dat", "abl", "gen", "loc", "voc"}

func (c Case) String() string {
	if c < CaseNone || int(c) >= len(caseNames) {
		return "?"
	}
	return caseNames[c]
}

// Number is grammatical number.
type Number int

const (
	NumberNone Number = iota
	Singular
	Plural
)

func (n Number) String() string {
	switch n {
	case Singular:
		return "sg"
	case Plural:
		return "pl"
	}
	return "?"
}

// Gender is grammatical gender of a noun lemma.
type Gender int

const (
	GenderNone Gender = iota
	Masculine
	Feminine
	Neuter
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masc"
	case Feminine:
		return "fem"
	case Neuter:
		return "nt"
	}
	return "?"
}

// Person is grammatical person of a verb form.
type Person int

const (
	PersonNone Person = iota
	First
	Second
	Third
)

func (p Person) String() string {
	switch p {
	case First:
		return "1st"
	case Second:
		return "2nd"
	case Third:
		return "3rd"
	}
	return "?"
}

// Tense covers the tenses taught by the trainer. The traditional moods
// (imperative, optative) are folded into this axis, following the source
// dictionary's conjugation templates.
type Tense int

const (
	TenseNone Tense = iota
	Present
	Imperative
	Optative
	Future
	Aorist
)

var tenseNames = [...]string{"", "pr", "imp", "opt", "fut", "aor"}

func (t Tense) String() string {
	if t < TenseNone || int(t) >= len(tenseNames) {
		return "?"
	}
	return tenseNames[t]
}

// Voice distinguishes active from reflexive (attanopada) conjugation rows.
type Voice int

const (
	VoiceNone Voice = iota
	Active
	Reflexive
)

func (v Voice) String() string {
	switch v {
	case Active:
		return "act"
	case Reflexive:
		return "reflx"
	}
	return "?"
}

// Coordinate identifies one cell of an inflection table. It is implemented
// by NounCoordinate and VerbCoordinate only.
type Coordinate interface {
	// Valid reports whether every axis carries a concrete value. The
	// zero/none sentinels are never valid generation input.
	Valid() bool
	String() string
}

// NounCoordinate addresses one declension cell.
type NounCoordinate struct {
	Case   Case
	Number Number
	Gender Gender
}

func (c NounCoordinate) Valid() bool {
	return c.Case >= Nominative && c.Case <= Vocative &&
		(c.Number == Singular || c.Number == Plural) &&
		c.Gender >= Masculine && c.Gender <= Neuter
}

func (c NounCoordinate) String() string {
	return c.Gender.String() + " " + c.Case.String() + " " + c.Number.String()
}

// VerbCoordinate addresses one conjugation cell.
type VerbCoordinate struct {
	Tense  Tense
	Person Person
	Number Number
	Voice  Voice
}

func (c VerbCoordinate) Valid() bool {
	return c.Tense >= Present && c.Tense <= Aorist &&
		c.Person >= First && c.Person <= Third &&
		(c.Number == Singular || c.Number == Plural) &&
		(c.Voice == Active || c.Voice == Reflexive)
}

func (c VerbCoordinate) String() string {
	s := c.Tense.String() + " " + c.Person.String() + " " + c.Number.String()
	if c.Voice == Reflexive {
		s = "reflx " + s
	}
	return s
}

// ParseNounGrammar extracts a noun coordinate from a dictionary grammar
// string such as "masc nom sg". The label is a fallback source for the
// case when the grammar string omits it (some template rows only carry
// "masc sg" and name the case in the row label). Axes that cannot be
// determined stay at their none value; check Valid() before generating.
func ParseNounGrammar(grammar, label string) NounCoordinate {
	var c NounCoordinate
	parts := tokens(grammar)

	switch {
	case parts["masc"] || parts["masculine"]:
		c.Gender = Masculine
	case parts["fem"] || parts["feminine"]:
		c.Gender = Feminine
	case parts["nt"] || parts["neut"] || parts["neuter"]:
		c.Gender = Neuter
	}

	switch {
	case parts["sg"] || parts["singular"]:
		c.Number = Singular
	case parts["pl"] || parts["plural"]:
		c.Number = Plural
	}

	c.Case = caseFromTokens(parts)
	if c.Case == CaseNone && label != "" {
		c.Case = caseFromTokens(tokens(label))
	}
	return c
}

// ParseVerbGrammar extracts a verb coordinate from a dictionary grammar
// string such as "reflx opt 2nd sg".
func ParseVerbGrammar(grammar, label string) VerbCoordinate {
	c := VerbCoordinate{Voice: Active}
	parts := tokens(grammar)
	if parts["reflx"] || parts["reflexive"] {
		c.Voice = Reflexive
	}

	switch {
	case parts["1st"] || parts["first"]:
		c.Person = First
	case parts["2nd"] || parts["second"]:
		c.Person = Second
	case parts["3rd"] || parts["third"]:
		c.Person = Third
	}

	switch {
	case parts["sg"] || parts["singular"]:
		c.Number = Singular
	case parts["pl"] || parts["plural"]:
		c.Number = Plural
	}

	c.Tense = tenseFromTokens(parts)
	if c.Tense == TenseNone && label != "" {
		c.Tense = tenseFromTokens(tokens(label))
	}
	return c
}

func tokens(s string) map[string]bool {
	out := make(map[string]bool)
	for _, f := range strings.Fields(strings.ToLower(s)) {
		out[f] = true
	}
	return out
}

func caseFromTokens(parts map[string]bool) Case {
	switch {
	case parts["nom"] || parts["nominative"]:
		return Nominative
	case parts["acc"] || parts["accusative"]:
		return Accusative
	case parts["instr"] || parts["instrumental"]:
		return Instrumental
	case parts["dat"] || parts["dative"]:
		return Dative
	case parts["abl"] || parts["ablative"]:
		return Ablative
	case parts["gen"] || parts["genitive"]:
		return Genitive
	case parts["loc"] || parts["locative"]:
		return Locative
	case parts["voc"] || parts["vocative"]:
		return Vocative
	}
	return CaseNone
}

func tenseFromTokens(parts map[string]bool) Tense {
	// opt before imp: both abbreviate to substrings of longer labels,
	// and optative rows in the source templates also carry "imp"-like
	// mood wording.
	switch {
	case parts["opt"] || parts["optative"]:
		return Optative
	case parts["imp"] || parts["imperative"]:
		return Imperative
	case parts["fut"] || parts["future"]:
		return Future
	case parts["aor"] || parts["aorist"]:
		return Aorist
	case parts["pr"] || parts["pres"] || parts["present"]:
		return Present
	}
	return TenseNone
}

// AllNounCoordinates lists every declension cell for the given gender,
// in case-major, number-minor order.
func AllNounCoordinates(g Gender) []NounCoordinate {
	out := make([]NounCoordinate, 0, 16)
	for c := Nominative; c <= Vocative; c++ {
		for _, n := range []Number{Singular, Plural} {
			out = append(out, NounCoordinate{Case: c, Number: n, Gender: g})
		}
	}
	return out
}

// AllVerbCoordinates lists every conjugation cell for the tenses the
// trainer teaches (aorist excluded), in tense/person/number/voice order.
func AllVerbCoordinates() []VerbCoordinate {
	out := make([]VerbCoordinate, 0, 48)
	for t := Present; t <= Future; t++ {
		for p := First; p <= Third; p++ {
			for _, n := range []Number{Singular, Plural} {
				for _, v := range []Voice{Active, Reflexive} {
					out = append(out, VerbCoordinate{Tense: t, Person: p, Number: n, Voice: v})
				}
			}
		}
	}
	return out
}

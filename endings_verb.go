package paligen

// verbEndings holds the candidate endings for one conjugation paradigm,
// indexed by tense, person, number and voice. Ordering follows the same
// primary-first rule as nounEndings. Cells left empty are combinations
// the paradigm does not conjugate (most reflexive rows outside the
// ati-class, and the aorist throughout: the trainer teaches the aorist
// from attested forms only).
type verbEndings [Aorist + 1][Third + 1][Plural + 1][Reflexive + 1][]string

func (t *verbEndings) at(c VerbCoordinate) []string {
	if !c.Valid() {
		return nil
	}
	return t[c.Tense][c.Person][c.Number][c.Voice]
}

// VerbEndings returns the ordered candidate endings for one conjugation
// cell. Pure and total, like NounEndings.
func VerbEndings(p *Pattern, c VerbCoordinate) []string {
	if p == nil || p.POS != POSVerb || p.IsIrregular() {
		return nil
	}
	t, ok := verbTables[p.Name]
	if !ok {
		return nil
	}
	return t.at(c)
}

// First-conjugation a-stems (bhavati, gacchati). The only class with a
// full reflexive (attanopada) paradigm in the source templates.
var atiPr = verbEndings{
	Present: {
		First: {
			Singular: {Active: {"āmi"}, Reflexive: {"e"}},
			Plural:   {Active: {"āma"}, Reflexive: {"āmhe"}},
		},
		Second: {
			Singular: {Active: {"asi"}, Reflexive: {"ase"}},
			Plural:   {Active: {"atha"}, Reflexive: {"avhe"}},
		},
		Third: {
			Singular: {Active: {"ati"}, Reflexive: {"ate"}},
			Plural:   {Active: {"anti"}, Reflexive: {"ante"}},
		},
	},
	Imperative: {
		First: {
			Singular: {Active: {"āmi"}, Reflexive: {"e"}},
			Plural:   {Active: {"āma"}, Reflexive: {"āmase"}},
		},
		Second: {
			Singular: {Active: {"a", "āhi"}, Reflexive: {"assu"}},
			Plural:   {Active: {"atha"}, Reflexive: {"avho"}},
		},
		Third: {
			Singular: {Active: {"atu"}, Reflexive: {"ataṃ"}},
			Plural:   {Active: {"antu"}, Reflexive: {"antaṃ"}},
		},
	},
	Optative: {
		First: {
			Singular: {Active: {"eyyāmi", "eyyaṃ"}, Reflexive: {"eyyaṃ"}},
			Plural:   {Active: {"eyyāma"}, Reflexive: {"eyyāmhe"}},
		},
		Second: {
			Singular: {Active: {"eyyāsi"}, Reflexive: {"etho"}},
			Plural:   {Active: {"eyyātha"}, Reflexive: {"eyyavho"}},
		},
		Third: {
			Singular: {Active: {"e", "eyya"}, Reflexive: {"etha"}},
			Plural:   {Active: {"eyyuṃ"}, Reflexive: {"eraṃ"}},
		},
	},
	Future: {
		First: {
			Singular: {Active: {"issāmi"}, Reflexive: {"issaṃ"}},
			Plural:   {Active: {"issāma"}, Reflexive: {"issāmhe"}},
		},
		Second: {
			Singular: {Active: {"issasi"}, Reflexive: {"issase"}},
			Plural:   {Active: {"issatha"}, Reflexive: {"issavhe"}},
		},
		Third: {
			Singular: {Active: {"issati"}, Reflexive: {"issate"}},
			Plural:   {Active: {"issanti"}, Reflexive: {"issante"}},
		},
	},
}

// ā-stems (yāti, vāti). Defective outside the active voice.
var aatiPr = verbEndings{
	Present: {
		First: {
			Singular: {Active: {"āmi"}},
			Plural:   {Active: {"āma"}},
		},
		Second: {
			Singular: {Active: {"āsi"}},
			Plural:   {Active: {"ātha"}},
		},
		Third: {
			Singular: {Active: {"āti"}},
			Plural:   {Active: {"anti"}},
		},
	},
	Imperative: {
		First: {
			Singular: {Active: {"āmi"}},
			Plural:   {Active: {"āma"}},
		},
		Second: {
			Singular: {Active: {"āhi"}},
			Plural:   {Active: {"ātha"}},
		},
		Third: {
			Singular: {Active: {"ātu"}},
			Plural:   {Active: {"antu"}},
		},
	},
	Optative: {
		First: {
			Singular: {Active: {"āyeyyāmi"}},
			Plural:   {Active: {"āyeyyāma"}},
		},
		Second: {
			Singular: {Active: {"āyeyyāsi"}},
			Plural:   {Active: {"āyeyyātha"}},
		},
		Third: {
			Singular: {Active: {"āyeyya", "āye"}},
			Plural:   {Active: {"āyeyyuṃ"}},
		},
	},
	Future: {
		First: {
			Singular: {Active: {"issāmi"}},
			Plural:   {Active: {"issāma"}},
		},
		Second: {
			Singular: {Active: {"issasi"}},
			Plural:   {Active: {"issatha"}},
		},
		Third: {
			Singular: {Active: {"issati"}},
			Plural:   {Active: {"issanti"}},
		},
	},
}

// Seventh-conjugation e-stems (deseti, māreti).
var etiPr = verbEndings{
	Present: {
		First: {
			Singular: {Active: {"emi"}},
			Plural:   {Active: {"ema", "emu"}},
		},
		Second: {
			Singular: {Active: {"esi"}},
			Plural:   {Active: {"etha"}},
		},
		Third: {
			Singular: {Active: {"eti"}, Reflexive: {"ete"}},
			Plural:   {Active: {"enti"}, Reflexive: {"ente"}},
		},
	},
	Imperative: {
		First: {
			Singular: {Active: {"emi"}},
			Plural:   {Active: {"ema"}},
		},
		Second: {
			Singular: {Active: {"ehi"}},
			Plural:   {Active: {"etha"}},
		},
		Third: {
			Singular: {Active: {"etu"}},
			Plural:   {Active: {"entu"}},
		},
	},
	Optative: {
		First: {
			Singular: {Active: {"eyyāmi"}},
			Plural:   {Active: {"eyyāma"}},
		},
		Second: {
			Singular: {Active: {"eyyāsi"}},
			Plural:   {Active: {"eyyātha"}},
		},
		Third: {
			Singular: {Active: {"eyya", "e"}},
			Plural:   {Active: {"eyyuṃ"}},
		},
	},
	Future: {
		First: {
			Singular: {Active: {"essāmi"}},
			Plural:   {Active: {"essāma"}},
		},
		Second: {
			Singular: {Active: {"essasi"}},
			Plural:   {Active: {"essatha"}},
		},
		Third: {
			Singular: {Active: {"essati"}},
			Plural:   {Active: {"essanti"}},
		},
	},
}

// o-stems (the tanoti class; karoti itself is irregular).
var otiPr = verbEndings{
	Present: {
		First: {
			Singular: {Active: {"omi"}},
			Plural:   {Active: {"oma"}},
		},
		Second: {
			Singular: {Active: {"osi"}},
			Plural:   {Active: {"otha"}},
		},
		Third: {
			Singular: {Active: {"oti"}, Reflexive: {"ute"}},
			Plural:   {Active: {"onti"}},
		},
	},
	Imperative: {
		First: {
			Singular: {Active: {"omi"}},
			Plural:   {Active: {"oma"}},
		},
		Second: {
			Singular: {Active: {"ohi"}},
			Plural:   {Active: {"otha"}},
		},
		Third: {
			Singular: {Active: {"otu"}},
			Plural:   {Active: {"ontu"}},
		},
	},
	Optative: {
		First: {
			Singular: {Active: {"eyyāmi"}},
			Plural:   {Active: {"eyyāma"}},
		},
		Second: {
			Singular: {Active: {"eyyāsi"}},
			Plural:   {Active: {"eyyātha"}},
		},
		Third: {
			Singular: {Active: {"eyya", "e"}},
			Plural:   {Active: {"eyyuṃ"}},
		},
	},
	Future: {
		First: {
			Singular: {Active: {"issāmi"}},
			Plural:   {Active: {"issāma"}},
		},
		Second: {
			Singular: {Active: {"issasi"}},
			Plural:   {Active: {"issatha"}},
		},
		Third: {
			Singular: {Active: {"issati"}},
			Plural:   {Active: {"issanti"}},
		},
	},
}

var verbTables = map[string]*verbEndings{
	"ati pr": &atiPr,
	"āti pr": &aatiPr,
	"eti pr": &etiPr,
	"oti pr": &otiPr,
}

package paligen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownPattern reports a raw pattern name outside the shipped
	// catalog. This is a data-pipeline defect: it must abort loading,
	// never be swallowed at generation time.
	ErrUnknownPattern = errors.New("unknown inflection pattern")

	// ErrNotIrregular reports a ParentOf call on a base or variant pattern.
	ErrNotIrregular = errors.New("pattern is not irregular")
)

// PatternKind partitions the pattern catalog.
type PatternKind int

const (
	// BasePattern is rule-generated with the default ending table for
	// its gender (nouns) or conjugation class (verbs).
	BasePattern PatternKind = iota
	// VariantPattern is rule-generated but carries its own ending table
	// (plural-only paradigms, eastern dialect forms, secondary stems).
	// Variants never take the irregular lookup path.
	VariantPattern
	// IrregularPattern bypasses rule generation entirely; its surface
	// forms come from the irregular-form store.
	IrregularPattern
)

func (k PatternKind) String() string {
	switch k {
	case BasePattern:
		return "base"
	case VariantPattern:
		return "variant"
	case IrregularPattern:
		return "irregular"
	}
	return "?"
}

// Pattern is one member of the fixed, versioned inflection-pattern
// catalog. Instances are process-wide constants; never mutate them.
type Pattern struct {
	// Name is the raw pattern name as published by the source
	// dictionary, e.g. "a masc", "hoti pr".
	Name string
	POS  PartOfSpeech
	Kind PatternKind
	// Parent names the base pattern an irregular pattern is grouped
	// under for UI purposes. It carries no generative meaning and is
	// empty for base and variant patterns.
	Parent string
	// Gender of the paradigm; GenderNone for verb patterns.
	Gender Gender
	// Group is the ending group used by settings filters: "a", "ī",
	// "ant" for nouns, "ati", "eti" for verbs.
	Group string
}

// IsIrregular reports whether forms for this pattern come from the
// irregular-form store instead of the ending tables.
func (p *Pattern) IsIrregular() bool { return p.Kind == IrregularPattern }

// IsVariant reports whether this pattern is rule-generated with
// non-default endings.
func (p *Pattern) IsVariant() bool { return p.Kind == VariantPattern }

// PluralOnly reports whether the paradigm lacks singular forms entirely.
func (p *Pattern) PluralOnly() bool { return strings.HasSuffix(p.Name, " pl") }

func noun(name string, kind PatternKind, parent string, g Gender, group string) *Pattern {
	return &Pattern{Name: name, POS: POSNoun, Kind: kind, Parent: parent, Gender: g, Group: group}
}

func verb(name string, kind PatternKind, parent, group string) *Pattern {
	return &Pattern{Name: name, POS: POSVerb, Kind: kind, Parent: parent, Group: group}
}

// patternCatalog is the closed catalog keyed by raw pattern name.
// Irregularity is explicit catalog membership, not a heuristic: any
// pattern newly published by the source dictionary that is not added to
// the base/variant lists below must be entered as irregular, so that it
// takes the safer database-backed path instead of silently generating
// wrong endings.
var patternCatalog = map[string]*Pattern{
	// Noun base patterns.
	"a masc":   noun("a masc", BasePattern, "", Masculine, "a"),
	"i masc":   noun("i masc", BasePattern, "", Masculine, "i"),
	"ī masc":   noun("ī masc", BasePattern, "", Masculine, "ī"),
	"u masc":   noun("u masc", BasePattern, "", Masculine, "u"),
	"ū masc":   noun("ū masc", BasePattern, "", Masculine, "ū"),
	"as masc":  noun("as masc", BasePattern, "", Masculine, "as"),
	"ar masc":  noun("ar masc", BasePattern, "", Masculine, "ar"),
	"ant masc": noun("ant masc", BasePattern, "", Masculine, "ant"),
	"ā fem":    noun("ā fem", BasePattern, "", Feminine, "ā"),
	"i fem":    noun("i fem", BasePattern, "", Feminine, "i"),
	"ī fem":    noun("ī fem", BasePattern, "", Feminine, "ī"),
	"u fem":    noun("u fem", BasePattern, "", Feminine, "u"),
	"ar fem":   noun("ar fem", BasePattern, "", Feminine, "ar"),
	"a nt":     noun("a nt", BasePattern, "", Neuter, "a"),
	"i nt":     noun("i nt", BasePattern, "", Neuter, "i"),
	"u nt":     noun("u nt", BasePattern, "", Neuter, "u"),

	// Noun variant patterns: rule-generated, own ending tables.
	"a masc pl":   noun("a masc pl", VariantPattern, "", Masculine, "a"),
	"a masc east": noun("a masc east", VariantPattern, "", Masculine, "a"),
	"a2 masc":     noun("a2 masc", VariantPattern, "", Masculine, "a"),
	"ī masc pl":   noun("ī masc pl", VariantPattern, "", Masculine, "ī"),
	"u masc pl":   noun("u masc pl", VariantPattern, "", Masculine, "u"),
	"ar2 masc":    noun("ar2 masc", VariantPattern, "", Masculine, "ar"),
	"a nt pl":     noun("a nt pl", VariantPattern, "", Neuter, "a"),
	"a nt east":   noun("a nt east", VariantPattern, "", Neuter, "a"),

	// Noun irregular patterns, grouped under a base parent for settings
	// toggles only.
	"rāja masc":      noun("rāja masc", IrregularPattern, "a masc", Masculine, "a"),
	"brahma masc":    noun("brahma masc", IrregularPattern, "a masc", Masculine, "a"),
	"addha masc":     noun("addha masc", IrregularPattern, "a masc", Masculine, "a"),
	"go masc":        noun("go masc", IrregularPattern, "a masc", Masculine, "a"),
	"yuva masc":      noun("yuva masc", IrregularPattern, "a masc", Masculine, "a"),
	"jantu masc":     noun("jantu masc", IrregularPattern, "u masc", Masculine, "u"),
	"anta masc":      noun("anta masc", IrregularPattern, "ant masc", Masculine, "ant"),
	"arahant masc":   noun("arahant masc", IrregularPattern, "ant masc", Masculine, "ant"),
	"bhavant masc":   noun("bhavant masc", IrregularPattern, "ant masc", Masculine, "ant"),
	"santa masc":     noun("santa masc", IrregularPattern, "ant masc", Masculine, "ant"),
	"parisā fem":     noun("parisā fem", IrregularPattern, "ā fem", Feminine, "ā"),
	"jāti fem":       noun("jāti fem", IrregularPattern, "i fem", Feminine, "i"),
	"ratti fem":      noun("ratti fem", IrregularPattern, "i fem", Feminine, "i"),
	"nadī fem":       noun("nadī fem", IrregularPattern, "ī fem", Feminine, "ī"),
	"pokkharaṇī fem": noun("pokkharaṇī fem", IrregularPattern, "ī fem", Feminine, "ī"),
	"mātar fem":      noun("mātar fem", IrregularPattern, "ar fem", Feminine, "ar"),
	"kamma nt":       noun("kamma nt", IrregularPattern, "a nt", Neuter, "a"),
	"a nt irreg":     noun("a nt irreg", IrregularPattern, "a nt", Neuter, "a"),

	// Verb base patterns (present-stem conjugation classes).
	"ati pr": verb("ati pr", BasePattern, "", "ati"),
	"āti pr": verb("āti pr", BasePattern, "", "āti"),
	"eti pr": verb("eti pr", BasePattern, "", "eti"),
	"oti pr": verb("oti pr", BasePattern, "", "oti"),

	// Verb irregular patterns.
	"hoti pr":     verb("hoti pr", IrregularPattern, "ati pr", "ati"),
	"atthi pr":    verb("atthi pr", IrregularPattern, "ati pr", "ati"),
	"natthi pr":   verb("natthi pr", IrregularPattern, "ati pr", "ati"),
	"dakkhati pr": verb("dakkhati pr", IrregularPattern, "ati pr", "ati"),
	"dammi pr":    verb("dammi pr", IrregularPattern, "ati pr", "ati"),
	"hanati pr":   verb("hanati pr", IrregularPattern, "ati pr", "ati"),
	"kubbati pr":  verb("kubbati pr", IrregularPattern, "ati pr", "ati"),
	"karoti pr":   verb("karoti pr", IrregularPattern, "oti pr", "oti"),
	"brūti pr":    verb("brūti pr", IrregularPattern, "oti pr", "oti"),
	"eti pr 2":    verb("eti pr 2", IrregularPattern, "eti pr", "eti"),
}

// Classify resolves a raw pattern name to its catalog entry.
// Names outside the catalog fail with ErrUnknownPattern.
func Classify(rawPattern string) (*Pattern, error) {
	p, ok := patternCatalog[strings.TrimSpace(rawPattern)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, rawPattern)
	}
	return p, nil
}

// ParentOf returns the base pattern an irregular pattern is grouped
// under. Calling it on a base or variant pattern fails with
// ErrNotIrregular.
func ParentOf(p *Pattern) (*Pattern, error) {
	if !p.IsIrregular() {
		return nil, fmt.Errorf("%w: %q", ErrNotIrregular, p.Name)
	}
	parent, ok := patternCatalog[p.Parent]
	if !ok {
		// Unreachable for the shipped catalog; guarded by tests.
		return nil, fmt.Errorf("%w: parent %q of %q", ErrUnknownPattern, p.Parent, p.Name)
	}
	return parent, nil
}

// ChildrenOf returns the irregular patterns grouped under base,
// sorted by name. The base pattern itself is not included.
func ChildrenOf(base *Pattern) []*Pattern {
	var out []*Pattern
	for _, p := range patternCatalog {
		if p.IsIrregular() && p.Parent == base.Name {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Patterns returns the whole catalog for the given part of speech,
// sorted by name. Used by settings UIs and the cross-validator.
func Patterns(pos PartOfSpeech) []*Pattern {
	var out []*Pattern
	for _, p := range patternCatalog {
		if p.POS == pos {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

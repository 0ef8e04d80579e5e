package paligen

import (
	"encoding/json"
	"fmt"
	"os"
)

// CrossValidator runs the offline consistency checks between the
// generator, the pattern catalog, and two independent data sources:
// the upstream dictionary's irregular-pattern tags and the raw corpus
// wordlists. It is exercised before release, never during interactive
// use.
type CrossValidator struct {
	// Tolerance is the accepted disagreement rate between the
	// attestation flags and the raw corpus wordlists. The two sources
	// legitimately disagree at the margins (vocative/nominative
	// conflation, sandhi variants), but a rising rate signals a
	// regression.
	Tolerance float64
	// MinIrregularCoverage is the minimum fraction of an irregular
	// lemma's attested forms that must be backed by the irregular-form
	// store rather than the rule tables.
	MinIrregularCoverage float64
}

// Issue is one validator finding.
type Issue struct {
	Check  string
	Detail string
}

func (i Issue) String() string { return i.Check + ": " + i.Detail }

// AttestationReport summarizes the comparison between generator
// attestation flags and the raw corpus wordlists.
type AttestationReport struct {
	Checked      int
	Disagreement int
	// FlaggedNotListed counts forms the generator marks attested whose
	// surface string is missing from the wordlists.
	FlaggedNotListed int
	// ListedNotFlagged counts unflagged forms whose surface string the
	// wordlists do contain.
	ListedNotFlagged int
}

// Rate returns the observed disagreement rate.
func (r AttestationReport) Rate() float64 {
	if r.Checked == 0 {
		return 0
	}
	return float64(r.Disagreement) / float64(r.Checked)
}

// LoadWordlist reads a corpus wordlist: a JSON array of surface strings
// as shipped with the source dictionary's frequency data.
func LoadWordlist(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wordlist %q: %w", path, err)
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse wordlist %q: %w", path, err)
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out, nil
}

// CheckCatalog compares the pattern catalog against the upstream
// dictionary's irregular tags. Every catalog irregular must carry the
// upstream tag; catalog variants must not (a variant that gains the tag
// upstream has been reclassified and the catalog has drifted).
func (v *CrossValidator) CheckCatalog(upstreamIrregular map[string]bool) []Issue {
	var issues []Issue
	for _, pos := range []PartOfSpeech{POSNoun, POSVerb} {
		for _, p := range Patterns(pos) {
			tagged := upstreamIrregular[p.Name]
			switch {
			case p.IsIrregular() && !tagged:
				issues = append(issues, Issue{
					Check:  "catalog",
					Detail: fmt.Sprintf("pattern %q is irregular in the catalog but not tagged upstream", p.Name),
				})
			case p.IsVariant() && tagged:
				issues = append(issues, Issue{
					Check:  "catalog",
					Detail: fmt.Sprintf("variant pattern %q carries the upstream irregular tag", p.Name),
				})
			case !p.IsIrregular() && !p.IsVariant() && tagged:
				issues = append(issues, Issue{
					Check:  "catalog",
					Detail: fmt.Sprintf("base pattern %q carries the upstream irregular tag", p.Name),
				})
			}
		}
	}
	return issues
}

// CheckAttestation regenerates every rule-generated form of the given
// words and compares its attestation flag against direct membership of
// the surface string in the corpus wordlists. Returns the report and an
// issue when the disagreement rate exceeds the tolerance.
func (v *CrossValidator) CheckAttestation(g *Generator, words []Word, corpusWords map[string]struct{}) (AttestationReport, []Issue, error) {
	var rep AttestationReport
	for _, w := range words {
		if !w.CanInflect() {
			continue
		}
		p, err := Classify(w.Pattern)
		if err != nil {
			return rep, nil, err
		}
		if p.IsIrregular() {
			continue
		}
		groups, err := g.Table(w)
		if err != nil {
			return rep, nil, err
		}
		for _, grp := range groups {
			for _, f := range grp.Forms {
				rep.Checked++
				_, listed := corpusWords[f.Surface]
				if f.Attested && !listed {
					rep.Disagreement++
					rep.FlaggedNotListed++
				}
				if !f.Attested && listed {
					rep.Disagreement++
					rep.ListedNotFlagged++
				}
			}
		}
	}

	var issues []Issue
	if rep.Rate() > v.Tolerance {
		issues = append(issues, Issue{
			Check: "attestation",
			Detail: fmt.Sprintf("disagreement rate %.4f exceeds tolerance %.4f (%d/%d forms)",
				rep.Rate(), v.Tolerance, rep.Disagreement, rep.Checked),
		})
	}
	return rep, issues, nil
}

// CheckPluralOnly asserts that no lemma with a plural-only pattern has
// a singular-numbered identity in the attestation set.
func (v *CrossValidator) CheckPluralOnly(words []Word, attested []FormID) []Issue {
	pluralOnly := make(map[int]string)
	for _, w := range words {
		p, err := Classify(w.Pattern)
		if err != nil || !p.PluralOnly() {
			continue
		}
		pluralOnly[w.LemmaID] = w.Pattern
	}

	var issues []Issue
	for _, id := range attested {
		lemmaID, coord, _, err := Decode(id)
		if err != nil {
			issues = append(issues, Issue{Check: "plural-only", Detail: err.Error()})
			continue
		}
		pattern, ok := pluralOnly[lemmaID]
		if !ok {
			continue
		}
		singular := false
		switch c := coord.(type) {
		case NounCoordinate:
			singular = c.Number == Singular
		case VerbCoordinate:
			singular = c.Number == Singular
		}
		if singular {
			issues = append(issues, Issue{
				Check:  "plural-only",
				Detail: fmt.Sprintf("lemma %d (%q) has singular identity %d attested", lemmaID, pattern, id),
			})
		}
	}
	return issues
}

// CheckIrregularCoverage asserts that, for each irregular lemma, at
// least MinIrregularCoverage of its attested identities have a form in
// the irregular store. Attested identities without one would fall
// through to rule generation, which irregular patterns must never use.
func (v *CrossValidator) CheckIrregularCoverage(words []Word, attested []FormID, irregs IrregularSource) ([]Issue, error) {
	type tally struct {
		lemma          string
		total, covered int
	}
	irregular := make(map[int]*tally)
	for _, w := range words {
		p, err := Classify(w.Pattern)
		if err != nil || !p.IsIrregular() {
			continue
		}
		irregular[w.LemmaID] = &tally{lemma: w.Lemma}
	}

	for _, id := range attested {
		lemmaID, coord, variant, err := Decode(id)
		if err != nil {
			continue
		}
		t, ok := irregular[lemmaID]
		if !ok || variant == GroupVariant {
			continue
		}
		t.total++

		var forms []string
		switch c := coord.(type) {
		case NounCoordinate:
			forms, err = irregs.NounForms(lemmaID, c)
		case VerbCoordinate:
			forms, err = irregs.VerbForms(lemmaID, c)
		}
		if err != nil {
			return nil, err
		}
		if variant <= len(forms) {
			t.covered++
		}
	}

	var issues []Issue
	for lemmaID, t := range irregular {
		if t.total == 0 {
			continue
		}
		coverage := float64(t.covered) / float64(t.total)
		if coverage < v.MinIrregularCoverage {
			issues = append(issues, Issue{
				Check: "irregular-coverage",
				Detail: fmt.Sprintf("lemma %d (%q): only %.2f of %d attested forms backed by the irregular store",
					lemmaID, t.lemma, coverage, t.total),
			})
		}
	}
	return issues, nil
}

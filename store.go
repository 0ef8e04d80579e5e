package paligen

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Store is the embedded training database: Word records, the
// irregular-form table and the corpus attestation set. Everything is
// read into memory at open time and the connection is closed, so a
// Store is immutable and safe to share across goroutines. It implements
// IrregularSource and AttestationSet.
type Store struct {
	nouns []Word
	verbs []Word

	// byLemmaID maps lemma identity to the senses sharing it.
	byLemmaID map[int][]Word
	// byKey maps NormalizeKey(lemma) to lemma identities, for fuzzy
	// headword lookup by the API server.
	byKey map[string][]int

	irregular map[FormID]string
	corpus    map[FormID]struct{}
}

// OpenStore loads the training database at path. Any lemma identity
// outside its part-of-speech range, and any unknown pattern name, is a
// data-pipeline defect and aborts loading.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open training db %q: %w", path, err)
	}
	defer db.Close()

	s := &Store{
		byLemmaID: make(map[int][]Word),
		byKey:     make(map[string][]int),
		irregular: make(map[FormID]string),
		corpus:    make(map[FormID]struct{}),
	}

	if s.nouns, err = loadWords(db, "nouns", POSNoun); err != nil {
		return nil, err
	}
	if s.verbs, err = loadWords(db, "verbs", POSVerb); err != nil {
		return nil, err
	}
	for _, w := range s.nouns {
		s.index(w)
	}
	for _, w := range s.verbs {
		s.index(w)
	}

	for _, table := range []string{"nouns_irregular_forms", "verbs_irregular_forms"} {
		if err := loadIrregular(db, table, s.irregular); err != nil {
			return nil, err
		}
	}
	for _, table := range []string{"nouns_corpus_forms", "verbs_corpus_forms"} {
		if err := loadCorpus(db, table, s.corpus); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int("nouns", len(s.nouns)).
		Int("verbs", len(s.verbs)).
		Int("irregularForms", len(s.irregular)).
		Int("corpusForms", len(s.corpus)).
		Str("path", path).
		Msg("training database loaded")
	return s, nil
}

func loadWords(db *sql.DB, table string, pos PartOfSpeech) ([]Word, error) {
	cols := "lemma_id, lemma, stem, pattern, ebt_count"
	if pos == POSNoun {
		cols = "lemma_id, lemma, stem, pattern, ebt_count, gender"
	}
	rows, err := db.Query("SELECT " + cols + " FROM " + table + " ORDER BY ebt_count DESC, lemma_id")
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []Word
	for rows.Next() {
		w := Word{POS: pos}
		var stem, pattern sql.NullString
		if pos == POSNoun {
			var gender int
			if err := rows.Scan(&w.LemmaID, &w.Lemma, &stem, &pattern, &w.CorpusCount, &gender); err != nil {
				return nil, fmt.Errorf("scan %s: %w", table, err)
			}
			w.Gender = Gender(gender)
		} else {
			if err := rows.Scan(&w.LemmaID, &w.Lemma, &stem, &pattern, &w.CorpusCount); err != nil {
				return nil, fmt.Errorf("scan %s: %w", table, err)
			}
		}
		w.Stem = CleanStem(stem.String)
		w.Pattern = strings.TrimSpace(pattern.String)

		if pos == POSNoun && !NounLemmaID(w.LemmaID) || pos == POSVerb && !VerbLemmaID(w.LemmaID) {
			return nil, fmt.Errorf("%s %q: lemma identity %d outside the %s range", table, w.Lemma, w.LemmaID, pos)
		}
		if w.Pattern != "" {
			if _, err := Classify(w.Pattern); err != nil {
				return nil, fmt.Errorf("%s %q: %w", table, w.Lemma, err)
			}
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func loadIrregular(db *sql.DB, table string, into map[FormID]string) error {
	rows, err := db.Query("SELECT form_id, form FROM " + table)
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var form string
		if err := rows.Scan(&id, &form); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		into[FormID(id)] = form
	}
	return rows.Err()
}

func loadCorpus(db *sql.DB, table string, into map[FormID]struct{}) error {
	rows, err := db.Query("SELECT form_id FROM " + table)
	if err != nil {
		return fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		into[FormID(id)] = struct{}{}
	}
	return rows.Err()
}

func (s *Store) index(w Word) {
	s.byLemmaID[w.LemmaID] = append(s.byLemmaID[w.LemmaID], w)
	key := NormalizeKey(w.Lemma)
	ids := s.byKey[key]
	for _, id := range ids {
		if id == w.LemmaID {
			return
		}
	}
	s.byKey[key] = append(ids, w.LemmaID)
}

// Nouns returns every noun sense, ordered by corpus frequency.
func (s *Store) Nouns() []Word { return s.nouns }

// Verbs returns every verb sense, ordered by corpus frequency.
func (s *Store) Verbs() []Word { return s.verbs }

// WordsByLemmaID returns the senses sharing a lemma identity.
func (s *Store) WordsByLemmaID(lemmaID int) []Word { return s.byLemmaID[lemmaID] }

// Lookup resolves a headword (Unicode or Velthuis ASCII, diacritics
// optional) to the senses of every matching lemma.
func (s *Store) Lookup(headword string) []Word {
	var out []Word
	for _, id := range s.byKey[NormalizeKey(headword)] {
		out = append(out, s.byLemmaID[id]...)
	}
	return out
}

// NounForms implements IrregularSource against the loaded
// irregular-form table. Variants are probed in identity order, so the
// result preserves the source dictionary's ordering.
func (s *Store) NounForms(lemmaID int, c NounCoordinate) ([]string, error) {
	var out []string
	for v := 1; v <= 9; v++ {
		form, ok := s.irregular[EncodeDeclension(lemmaID, c, v)]
		if !ok {
			break
		}
		out = append(out, form)
	}
	return out, nil
}

// VerbForms implements IrregularSource.
func (s *Store) VerbForms(lemmaID int, c VerbCoordinate) ([]string, error) {
	var out []string
	for v := 1; v <= 9; v++ {
		form, ok := s.irregular[EncodeConjugation(lemmaID, c, v)]
		if !ok {
			break
		}
		out = append(out, form)
	}
	return out, nil
}

// Contains implements AttestationSet.
func (s *Store) Contains(id FormID) bool {
	_, ok := s.corpus[id]
	return ok
}

// AttestedIDs returns the full attestation set in ascending order.
// Used by the cross-validator, not during interactive generation.
func (s *Store) AttestedIDs() []FormID {
	out := make([]FormID, 0, len(s.corpus))
	for id := range s.corpus {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

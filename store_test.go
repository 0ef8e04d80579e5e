package paligen

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureSchema = `
CREATE TABLE nouns (
    lemma_id  INTEGER PRIMARY KEY,
    lemma     TEXT NOT NULL,
    stem      TEXT,
    pattern   TEXT,
    gender    INTEGER NOT NULL,
    ebt_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE verbs (
    lemma_id  INTEGER PRIMARY KEY,
    lemma     TEXT NOT NULL,
    stem      TEXT,
    pattern   TEXT,
    ebt_count INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE nouns_irregular_forms (form_id INTEGER PRIMARY KEY, form TEXT NOT NULL);
CREATE TABLE verbs_irregular_forms (form_id INTEGER PRIMARY KEY, form TEXT NOT NULL);
CREATE TABLE nouns_corpus_forms (form_id INTEGER PRIMARY KEY);
CREATE TABLE verbs_corpus_forms (form_id INTEGER PRIMARY KEY);
`

// newFixtureDB writes a minimal training database and returns its path.
func newFixtureDB(t *testing.T, populate func(t *testing.T, db *sql.DB)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "training.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(fixtureSchema)
	require.NoError(t, err)
	if populate != nil {
		populate(t, db)
	}
	return path
}

func populateFixture(t *testing.T, db *sql.DB) {
	t.Helper()
	exec := func(query string, args ...any) {
		t.Helper()
		_, err := db.Exec(query, args...)
		require.NoError(t, err)
	}

	exec(`INSERT INTO nouns VALUES (10789, 'dhamma', 'dhamm', 'a masc', 1, 2000)`)
	exec(`INSERT INTO nouns VALUES (12345, 'rājā', 'rāj', 'rāja masc', 1, 1500)`)
	exec(`INSERT INTO nouns VALUES (13000, 'iti', '-', 'a masc', 1, 900)`)
	exec(`INSERT INTO verbs VALUES (70683, 'gacchati', 'gacch!', 'ati pr', 800)`)

	nomSg := NounCoordinate{Case: Nominative, Number: Singular, Gender: Masculine}
	exec(`INSERT INTO nouns_irregular_forms VALUES (?, 'rājā')`,
		int64(EncodeDeclension(12345, nomSg, 1)))
	exec(`INSERT INTO nouns_irregular_forms VALUES (?, 'rājāno')`,
		int64(EncodeDeclension(12345, NounCoordinate{Case: Nominative, Number: Plural, Gender: Masculine}, 1)))

	exec(`INSERT INTO nouns_corpus_forms VALUES (?)`,
		int64(EncodeDeclension(10789, nomSg, 1)))
	exec(`INSERT INTO verbs_corpus_forms VALUES (?)`,
		int64(EncodeConjugation(70683, VerbCoordinate{Tense: Present, Person: Third, Number: Singular, Voice: Active}, 1)))
}

func TestOpenStore(t *testing.T) {
	st, err := OpenStore(newFixtureDB(t, populateFixture))
	require.NoError(t, err)

	require.Len(t, st.Nouns(), 3)
	require.Len(t, st.Verbs(), 1)
	// Frequency order.
	assert.Equal(t, "dhamma", st.Nouns()[0].Lemma)
	assert.Equal(t, "rājā", st.Nouns()[1].Lemma)

	words := st.WordsByLemmaID(10789)
	require.Len(t, words, 1)
	w := words[0]
	assert.Equal(t, POSNoun, w.POS)
	assert.Equal(t, Masculine, w.Gender)
	assert.Equal(t, "dhamm", w.Stem)
	assert.Equal(t, 2000, w.CorpusCount)

	// Stem markers are stripped at load time.
	v := st.WordsByLemmaID(70683)[0]
	assert.Equal(t, "gacch", v.Stem)

	// The placeholder stem survives loading but refuses inflection.
	assert.False(t, st.WordsByLemmaID(13000)[0].CanInflect())
}

func TestOpenStoreMissingFile(t *testing.T) {
	_, err := OpenStore(filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}

func TestOpenStoreRejectsBadData(t *testing.T) {
	t.Run("lemma out of range", func(t *testing.T) {
		path := newFixtureDB(t, func(t *testing.T, db *sql.DB) {
			_, err := db.Exec(`INSERT INTO nouns VALUES (70500, 'x', 'x', 'a masc', 1, 1)`)
			require.NoError(t, err)
		})
		_, err := OpenStore(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside the noun range")
	})

	t.Run("unknown pattern", func(t *testing.T) {
		path := newFixtureDB(t, func(t *testing.T, db *sql.DB) {
			_, err := db.Exec(`INSERT INTO verbs VALUES (70001, 'x', 'x', 'zzz pr', 1)`)
			require.NoError(t, err)
		})
		_, err := OpenStore(path)
		assert.ErrorIs(t, err, ErrUnknownPattern)
	})
}

func TestStoreLookup(t *testing.T) {
	st, err := OpenStore(newFixtureDB(t, populateFixture))
	require.NoError(t, err)

	for _, q := range []string{"dhamma", "Dhamma", "DHAMMA"} {
		words := st.Lookup(q)
		require.Len(t, words, 1, q)
		assert.Equal(t, 10789, words[0].LemmaID)
	}
	// Velthuis ASCII and diacritic-free input resolve too.
	for _, q := range []string{"rājā", "raajaa", "raja"} {
		words := st.Lookup(q)
		require.Len(t, words, 1, q)
		assert.Equal(t, 12345, words[0].LemmaID)
	}
	assert.Empty(t, st.Lookup("missing"))
}

func TestStoreIrregularForms(t *testing.T) {
	st, err := OpenStore(newFixtureDB(t, populateFixture))
	require.NoError(t, err)

	nomSg := NounCoordinate{Case: Nominative, Number: Singular, Gender: Masculine}
	forms, err := st.NounForms(12345, nomSg)
	require.NoError(t, err)
	assert.Equal(t, []string{"rājā"}, forms)

	forms, err = st.NounForms(12345, NounCoordinate{Case: Locative, Number: Plural, Gender: Masculine})
	require.NoError(t, err)
	assert.Empty(t, forms)

	forms, err = st.VerbForms(70683, VerbCoordinate{Tense: Present, Person: Third, Number: Singular, Voice: Active})
	require.NoError(t, err)
	assert.Empty(t, forms)
}

func TestStoreAttestation(t *testing.T) {
	st, err := OpenStore(newFixtureDB(t, populateFixture))
	require.NoError(t, err)

	nounID := EncodeDeclension(10789, NounCoordinate{Case: Nominative, Number: Singular, Gender: Masculine}, 1)
	verbID := EncodeConjugation(70683, VerbCoordinate{Tense: Present, Person: Third, Number: Singular, Voice: Active}, 1)
	assert.True(t, st.Contains(nounID))
	assert.True(t, st.Contains(verbID))
	assert.False(t, st.Contains(nounID+1))

	ids := st.AttestedIDs()
	assert.Equal(t, []FormID{nounID, verbID}, ids)
}

// The store plugs straight into the generator as both collaborators.
func TestStoreDrivesGenerator(t *testing.T) {
	st, err := OpenStore(newFixtureDB(t, populateFixture))
	require.NoError(t, err)
	gen := NewGenerator(st, st)

	group, err := gen.Generate(st.WordsByLemmaID(10789)[0],
		NounCoordinate{Case: Nominative, Number: Singular, Gender: Masculine})
	require.NoError(t, err)
	require.Len(t, group.Forms, 1)
	assert.Equal(t, "dhammo", group.Forms[0].Surface)
	assert.True(t, group.Forms[0].Attested)

	group, err = gen.Generate(st.WordsByLemmaID(12345)[0],
		NounCoordinate{Case: Nominative, Number: Plural, Gender: Masculine})
	require.NoError(t, err)
	require.Len(t, group.Forms, 1)
	assert.Equal(t, "rājāno", group.Forms[0].Surface)
}

// Command server exposes the Pali form generator as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/generate?lemma_id=<id>&case=..&gender=..&number=..   (nouns)
//	GET  /api/generate?lemma_id=<id>&tense=..&person=..&number=..&voice=..   (verbs)
//	GET  /api/table?lemma_id=<id>
//	GET  /api/decode?form_id=<id>
//	GET  /api/lookup?q=<velthuis-or-unicode>
//	GET  /api/patterns?pos=noun|verb
//	GET  /api/transliterate?text=<velthuis-ascii>
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"strconv"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	paligen "github.com/pali-practice/paligen"
)

// ---- JSON response types ------------------------------------------------

type wordJSON struct {
	LemmaID     int    `json:"lemma_id"`
	Lemma       string `json:"lemma"`
	POS         string `json:"pos"`
	Stem        string `json:"stem"`
	Pattern     string `json:"pattern"`
	Gender      string `json:"gender,omitempty"`
	CorpusCount int    `json:"corpus_count"`
}

type formJSON struct {
	Surface      string `json:"surface"`
	Ending       string `json:"ending"`
	VariantIndex int    `json:"variant_index"`
	FormID       int64  `json:"form_id"`
	Attested     bool   `json:"attested"`
}

type groupJSON struct {
	Coordinate string     `json:"coordinate"`
	Forms      []formJSON `json:"forms"`
}

type generateResponse struct {
	Word  wordJSON  `json:"word"`
	Group groupJSON `json:"group"`
}

type tableResponse struct {
	Word   wordJSON    `json:"word"`
	Groups []groupJSON `json:"groups"`
}

type decodeResponse struct {
	FormID       int64  `json:"form_id"`
	LemmaID      int    `json:"lemma_id"`
	POS          string `json:"pos"`
	Coordinate   string `json:"coordinate"`
	VariantIndex int    `json:"variant_index"`
}

type patternJSON struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Parent string `json:"parent,omitempty"`
}

type patternsResponse struct {
	Patterns []patternJSON `json:"patterns"`
}

type lookupResponse struct {
	Query string     `json:"query"`
	Words []wordJSON `json:"words"`
}

type transliterateResponse struct {
	Input   string `json:"input"`
	Unicode string `json:"unicode"`
	ASCII   string `json:"ascii"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func posName(p paligen.PartOfSpeech) string {
	switch p {
	case paligen.POSNoun:
		return "noun"
	case paligen.POSVerb:
		return "verb"
	default:
		return "unknown"
	}
}

func kindName(k paligen.PatternKind) string {
	switch k {
	case paligen.BasePattern:
		return "base"
	case paligen.VariantPattern:
		return "variant"
	case paligen.IrregularPattern:
		return "irregular"
	default:
		return "unknown"
	}
}

func toWordJSON(w paligen.Word) wordJSON {
	out := wordJSON{
		LemmaID:     w.LemmaID,
		Lemma:       w.Lemma,
		POS:         posName(w.POS),
		Stem:        w.Stem,
		Pattern:     w.Pattern,
		CorpusCount: w.CorpusCount,
	}
	if w.POS == paligen.POSNoun {
		out.Gender = w.Gender.String()
	}
	return out
}

func toGroupJSON(g paligen.FormGroup) groupJSON {
	forms := make([]formJSON, 0, len(g.Forms))
	for _, f := range g.Forms {
		forms = append(forms, formJSON{
			Surface:      f.Surface,
			Ending:       f.Ending,
			VariantIndex: f.VariantIndex,
			FormID:       int64(f.ID),
			Attested:     f.Attested,
		})
	}
	return groupJSON{Coordinate: g.Coordinate.String(), Forms: forms}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func queryInt(r *http.Request, key string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	return v, err == nil
}

// nounCoordFromQuery builds a noun coordinate from case/gender/number
// query parameters. Reports false if any of them is absent.
func nounCoordFromQuery(r *http.Request) (paligen.NounCoordinate, bool) {
	cs, okC := queryInt(r, "case")
	g, okG := queryInt(r, "gender")
	n, okN := queryInt(r, "number")
	if !okC || !okG || !okN {
		return paligen.NounCoordinate{}, false
	}
	return paligen.NounCoordinate{
		Case:   paligen.Case(cs),
		Gender: paligen.Gender(g),
		Number: paligen.Number(n),
	}, true
}

func verbCoordFromQuery(r *http.Request) (paligen.VerbCoordinate, bool) {
	t, okT := queryInt(r, "tense")
	p, okP := queryInt(r, "person")
	n, okN := queryInt(r, "number")
	if !okT || !okP || !okN {
		return paligen.VerbCoordinate{}, false
	}
	voice := paligen.Active
	if v, ok := queryInt(r, "voice"); ok {
		voice = paligen.Voice(v)
	}
	return paligen.VerbCoordinate{
		Tense:  paligen.Tense(t),
		Person: paligen.Person(p),
		Number: paligen.Number(n),
		Voice:  voice,
	}, true
}

func wordByQuery(st *paligen.Store, r *http.Request) (paligen.Word, bool) {
	id, ok := queryInt(r, "lemma_id")
	if !ok {
		return paligen.Word{}, false
	}
	words := st.WordsByLemmaID(id)
	if len(words) == 0 {
		return paligen.Word{}, false
	}
	return words[0], true
}

// ---- handlers -----------------------------------------------------------

func handleGenerate(st *paligen.Store, gen *paligen.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word, ok := wordByQuery(st, r)
		if !ok {
			writeError(w, http.StatusNotFound, "missing or unknown 'lemma_id' query parameter")
			return
		}

		var coord paligen.Coordinate
		switch word.POS {
		case paligen.POSNoun:
			c, ok := nounCoordFromQuery(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "noun lemma needs 'case', 'gender' and 'number'")
				return
			}
			coord = c
		case paligen.POSVerb:
			c, ok := verbCoordFromQuery(r)
			if !ok {
				writeError(w, http.StatusBadRequest, "verb lemma needs 'tense', 'person' and 'number'")
				return
			}
			coord = c
		}

		group, err := gen.Generate(word, coord)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, generateResponse{
			Word:  toWordJSON(word),
			Group: toGroupJSON(group),
		})
	}
}

func handleTable(st *paligen.Store, gen *paligen.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word, ok := wordByQuery(st, r)
		if !ok {
			writeError(w, http.StatusNotFound, "missing or unknown 'lemma_id' query parameter")
			return
		}
		groups, err := gen.Table(word)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		gj := make([]groupJSON, 0, len(groups))
		for _, g := range groups {
			gj = append(gj, toGroupJSON(g))
		}
		writeJSON(w, http.StatusOK, tableResponse{Word: toWordJSON(word), Groups: gj})
	}
}

func handleDecode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		raw, err := strconv.ParseInt(r.URL.Query().Get("form_id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing or malformed 'form_id' query parameter")
			return
		}
		lemmaID, coord, variant, err := paligen.Decode(paligen.FormID(raw))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		pos := paligen.POSNoun
		if _, ok := coord.(paligen.VerbCoordinate); ok {
			pos = paligen.POSVerb
		}
		writeJSON(w, http.StatusOK, decodeResponse{
			FormID:       raw,
			LemmaID:      lemmaID,
			POS:          posName(pos),
			Coordinate:   coord.String(),
			VariantIndex: variant,
		})
	}
}

func handleLookup(st *paligen.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, http.StatusBadRequest, "missing 'q' query parameter")
			return
		}
		words := st.Lookup(q)
		wj := make([]wordJSON, 0, len(words))
		for _, word := range words {
			wj = append(wj, toWordJSON(word))
		}
		status := http.StatusOK
		if len(wj) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, lookupResponse{Query: q, Words: wj})
	}
}

func handlePatterns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		var pos paligen.PartOfSpeech
		switch r.URL.Query().Get("pos") {
		case "noun":
			pos = paligen.POSNoun
		case "verb":
			pos = paligen.POSVerb
		default:
			writeError(w, http.StatusBadRequest, "'pos' must be \"noun\" or \"verb\"")
			return
		}
		patterns := paligen.Patterns(pos)
		pj := make([]patternJSON, 0, len(patterns))
		for _, p := range patterns {
			pj = append(pj, patternJSON{Name: p.Name, Kind: kindName(p.Kind), Parent: p.Parent})
		}
		writeJSON(w, http.StatusOK, patternsResponse{Patterns: pj})
	}
}

func handleTransliterate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		unicode := paligen.FromVelthuis(text)
		writeJSON(w, http.StatusOK, transliterateResponse{
			Input:   text,
			Unicode: unicode,
			ASCII:   paligen.StripDiacritics(unicode),
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	dbPath := flag.String("db", "training.db", "path to the training database")
	addr := flag.String("addr", ":8080", "listen address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	st, err := paligen.OpenStore(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("open store")
	}
	gen := paligen.NewGenerator(st, st)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", handleGenerate(st, gen))
	mux.HandleFunc("/api/table", handleTable(st, gen))
	mux.HandleFunc("/api/decode", handleDecode())
	mux.HandleFunc("/api/lookup", handleLookup(st))
	mux.HandleFunc("/api/patterns", handlePatterns())
	mux.HandleFunc("/api/transliterate", handleTransliterate())

	handler := cors.Default().Handler(mux)

	log.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

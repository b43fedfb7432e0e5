package entity

import (
	"regexp"
	"strings"

	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/logging"
	"github.com/schemascribe/backend/internal/shared/textutil"
	"go.uber.org/zap"
)

var (
	brandSymbolRe = regexp.MustCompile(`([A-Z][A-Za-z0-9&'-]*(?:\s+[A-Z][A-Za-z0-9&'-]*){0,3})\s*[\x{00AE}\x{2122}\x{00A9}]`)
	capPhraseRe   = regexp.MustCompile(`\b[A-Z][a-zA-Z0-9'-]+(?:\s+[A-Z][a-zA-Z0-9'-]+){0,3}\b`)
)

// commonWords are capitalized words that are not entities (sentence
// starters, generic nouns).
var commonWords = map[string]bool{
	"the": true, "this": true, "that": true, "these": true, "those": true,
	"here": true, "there": true, "when": true, "where": true, "what": true,
	"why": true, "how": true, "who": true, "which": true, "while": true,
	"step": true, "section": true, "chapter": true, "part": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"first": true, "second": true, "third": true, "next": true,
	"finally": true, "however": true, "also": true, "because": true,
	"although": true, "after": true, "before": true, "during": true,
	"today": true, "yesterday": true, "tomorrow": true, "now": true,
}

// contextCues map nearby words to an entity type reassignment.
var contextCues = []struct {
	cue string
	typ Type
}{
	{"company", TypeOrganization},
	{"corporation", TypeOrganization},
	{"organization", TypeOrganization},
	{"founded", TypeOrganization},
	{"startup", TypeOrganization},
	{"product", TypeProduct},
	{"buy", TypeProduct},
	{"purchase", TypeProduct},
	{"price", TypeProduct},
	{"dr", TypePerson},
	{"mr", TypePerson},
	{"mrs", TypePerson},
	{"ceo", TypePerson},
	{"author", TypePerson},
	{"treatment", TypeMedical},
	{"symptom", TypeMedical},
	{"diagnosis", TypeMedical},
	{"workout", TypeFitness},
	{"exercise", TypeFitness},
	{"training", TypeFitness},
}

// Recognizer extracts entities via lexicon, brand-symbol, and
// capitalized-phrase passes. Construct with NewRecognizer; lexicons are
// injected so tests can isolate them.
type Recognizer struct {
	lexicons       []Lexicon
	maxEntities    int
	baseConfidence float64
	log            *logging.Logger
}

// NewRecognizer creates a recognizer with the given lexicons. A nil
// lexicon slice gets DefaultLexicons.
func NewRecognizer(cfg config.EntityConfig, lexicons []Lexicon, log *logging.Logger) *Recognizer {
	if lexicons == nil {
		lexicons = DefaultLexicons()
	}
	return &Recognizer{
		lexicons:       lexicons,
		maxEntities:    cfg.MaxEntities,
		baseConfidence: cfg.BaseConfidence,
		log:            logging.OrNop(log).Named("entity"),
	}
}

// Recognize extracts entities from text, optionally biased by a title and
// an industry hint. Results are sorted by confidence descending and
// capped.
func (r *Recognizer) Recognize(text, title, industry string) []Entity {
	full := text
	if title != "" {
		full = title + ". " + text
	}

	entities := newSet()
	r.lexiconPass(full, industry, entities)
	r.brandPass(full, entities)
	r.phrasePass(full, entities)

	out := entities.sorted(r.maxEntities)
	r.log.Debug("recognized entities",
		zap.Int("count", len(out)),
		zap.String("industry", industry),
	)
	return out
}

// lexiconPass matches known industry terms. The hinted industry's lexicon
// is tried first; without a hint all lexicons apply.
func (r *Recognizer) lexiconPass(text, industry string, out *set) {
	lower := strings.ToLower(text)

	apply := func(lex *Lexicon) {
		for term, info := range lex.Terms {
			count := strings.Count(lower, term)
			if count == 0 {
				continue
			}
			out.add(Entity{
				Name:       info.Canonical,
				Type:       info.Type,
				Confidence: info.Confidence,
				Context:    snippetAround(text, term),
				Mentions:   count,
			})
		}
	}

	if hinted := lexiconFor(r.lexicons, industry); hinted != nil {
		apply(hinted)
		return
	}
	for i := range r.lexicons {
		apply(&r.lexicons[i])
	}
}

// brandPass extracts names suffixed with a registered/trademark/copyright
// symbol.
func (r *Recognizer) brandPass(text string, out *set) {
	for _, m := range brandSymbolRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		out.add(Entity{
			Name:       name,
			Type:       TypeBrand,
			Confidence: 0.95,
			Context:    snippetAround(text, name),
		})
	}
}

// phrasePass extracts capitalized phrases, filters stop and common words,
// and boosts confidence by occurrence frequency and nearby context cues.
func (r *Recognizer) phrasePass(text string, out *set) {
	counts := make(map[string]int)
	canonical := make(map[string]string)

	for _, m := range capPhraseRe.FindAllString(text, -1) {
		phrase := strings.TrimSpace(m)
		key := textutil.NormalizeName(phrase)
		if commonWords[key] || textutil.IsStopWord(key) || len(key) < 3 {
			continue
		}
		counts[key]++
		if _, ok := canonical[key]; !ok {
			canonical[key] = phrase
		}
	}

	for key, count := range counts {
		confidence := r.baseConfidence
		if count > 2 {
			confidence += 0.1
		}
		if count > 5 {
			confidence += 0.1
		}

		typ := TypeConcept
		if cueType, boosted := r.contextType(text, canonical[key]); boosted {
			typ = cueType
			confidence += 0.05
		}
		if confidence > 1.0 {
			confidence = 1.0
		}

		out.add(Entity{
			Name:       canonical[key],
			Type:       typ,
			Confidence: confidence,
			Context:    snippetAround(text, canonical[key]),
			Mentions:   count,
		})
	}
}

// contextType inspects a window around the first occurrence of name for
// type cues.
func (r *Recognizer) contextType(text, name string) (Type, bool) {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(name))
	if idx < 0 {
		return TypeConcept, false
	}

	start := idx - 60
	if start < 0 {
		start = 0
	}
	end := idx + len(name) + 60
	if end > len(text) {
		end = len(text)
	}
	window := strings.ToLower(text[start:end])

	for _, cue := range contextCues {
		if strings.Contains(window, cue.cue) {
			return cue.typ, true
		}
	}
	return TypeConcept, false
}

// snippetAround returns a short context window around the first
// case-insensitive occurrence of term.
func snippetAround(text, term string) string {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(term))
	if idx < 0 {
		return ""
	}
	start := idx - 40
	if start < 0 {
		start = 0
	}
	end := idx + len(term) + 40
	if end > len(text) {
		end = len(text)
	}
	return textutil.NormalizeWhitespace(text[start:end])
}

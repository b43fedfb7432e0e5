package entity

import (
	"regexp"
	"sort"
	"strings"

	"github.com/schemascribe/backend/internal/shared/textutil"
)

// Span is an entity tagged with its character offsets, produced by the
// general named-entity pass.
type Span struct {
	Entity
	Start int `json:"start"`
	End   int `json:"end"`
}

// nerFamily pairs a compiled pattern with the type and confidence it
// assigns. Patterns are matched independently; overlaps are resolved
// afterwards. A nonzero group takes the span from that capture group
// instead of the whole match, for patterns that anchor on trailing
// context.
type nerFamily struct {
	re         *regexp.Regexp
	typ        Type
	confidence float64
	group      int
}

var nerFamilies = []nerFamily{
	// Titles followed by a proper name.
	{re: regexp.MustCompile(`\b(?:Dr|Mr|Mrs|Ms|Prof)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`), typ: TypePerson, confidence: 0.9},
	// Two to three capitalized words followed by a person verb; the span
	// is the name alone.
	{re: regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:said|says|wrote|founded|created|argues|explains)\b`), typ: TypePerson, confidence: 0.85, group: 1},
	// Company suffixes.
	{re: regexp.MustCompile(`\b[A-Z][A-Za-z0-9&'-]+(?:\s+[A-Z][A-Za-z0-9&'-]+)*,?\s+(?:Inc|LLC|Ltd|Corp|Corporation|Company|GmbH)\.?\b`), typ: TypeOrganization, confidence: 0.9},
	// Universities and institutes.
	{re: regexp.MustCompile(`\b(?:University|Institute|College|Academy)\s+of\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\b`), typ: TypeOrganization, confidence: 0.9},
	// City, ST pairs.
	{re: regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?,\s+[A-Z]{2}\b`), typ: TypeLocation, confidence: 0.85},
	// Month-day-year dates.
	{re: regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`), typ: TypeDate, confidence: 0.95},
	// ISO dates.
	{re: regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), typ: TypeDate, confidence: 0.95},
	// Currency amounts.
	{re: regexp.MustCompile(`[$\x{20AC}\x{00A3}]\s?\d[\d,]*(?:\.\d{1,2})?(?:\s?(?:million|billion|thousand|[kKmMbB]))?\b`), typ: TypeMoney, confidence: 0.95},
	// Versioned product names.
	{re: regexp.MustCompile(`\b[A-Z][A-Za-z0-9]+(?:\s+[A-Z][A-Za-z0-9]+)?\s+(?:v?\d+(?:\.\d+)*|Pro|Plus|Max|Ultra)\b`), typ: TypeProduct, confidence: 0.8},
	// Conference/event names.
	{re: regexp.MustCompile(`\b[A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*\s+(?:Conference|Summit|Expo|Festival|Championship)\b`), typ: TypeEvent, confidence: 0.85},
	// Tech keywords with acronym shape.
	{re: regexp.MustCompile(`\b(?:AI|ML|API|SDK|IoT|AR|VR|GPU|CPU|SaaS|PaaS)\b`), typ: TypeTechnology, confidence: 0.8},
}

// RecognizeSpans runs the general NER pass: every family matched against
// the full text, then an overlap-resolution sweep where the
// higher-confidence span replaces the lower.
func RecognizeSpans(text string) []Span {
	var spans []Span
	for _, fam := range nerFamilies {
		for _, loc := range fam.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			if fam.group > 0 {
				start, end = loc[2*fam.group], loc[2*fam.group+1]
			}
			if start < 0 || end < 0 {
				continue
			}
			name := textutil.NormalizeWhitespace(text[start:end])
			if name == "" {
				continue
			}
			spans = append(spans, Span{
				Entity: Entity{
					Name:       name,
					Type:       fam.typ,
					Confidence: fam.confidence,
					Mentions:   1,
				},
				Start: start,
				End:   end,
			})
		}
	}
	return resolveOverlaps(spans)
}

// resolveOverlaps sorts spans by start offset and, where spans overlap,
// keeps the higher-confidence one. The loser is replaced, not merged.
func resolveOverlaps(spans []Span) []Span {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].Confidence > spans[j].Confidence
	})

	var out []Span
	for _, s := range spans {
		if len(out) == 0 {
			out = append(out, s)
			continue
		}
		last := &out[len(out)-1]
		if s.Start < last.End {
			if s.Confidence > last.Confidence {
				*last = s
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// SpanEntities flattens spans into a deduplicated entity list.
func SpanEntities(spans []Span) []Entity {
	entities := make([]Entity, 0, len(spans))
	for _, s := range spans {
		e := s.Entity
		e.Name = strings.TrimSpace(e.Name)
		entities = append(entities, e)
	}
	return Merge(entities)
}

package analyze

import (
	"strings"

	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/shared/textutil"
)

// classifyIndustry counts lexicon-term hits per industry and returns the
// industry with the most hits, or empty when nothing matches.
func (a *Analyzer) classifyIndustry(text, title string) string {
	haystack := strings.ToLower(title + " " + text)

	best := ""
	bestHits := 0
	for _, lex := range a.lexicons {
		hits := 0
		for term := range lex.Terms {
			hits += textutil.CountOccurrences(haystack, term)
		}
		if hits > bestHits {
			best = lex.Industry
			bestHits = hits
		}
	}
	return best
}

// contentTypeSignals maps a content type to the phrases that vote for
// it. Title hits count double.
var contentTypeSignals = map[string][]string{
	"howto":     {"how to", "step by step", "step-by-step", "tutorial", "guide", "instructions", "step 1"},
	"review":    {"review", "rating", "pros and cons", "verdict", "stars", "we tested"},
	"scholarly": {"abstract", "methodology", "citation", "peer-reviewed", "doi:", "et al"},
}

// classifyContentType votes phrase signals per type. URL path hints win
// over content votes.
func classifyContentType(text, title, url string) string {
	lowURL := strings.ToLower(url)
	switch {
	case strings.Contains(lowURL, "/how-to") || strings.Contains(lowURL, "/guide"):
		return "howto"
	case strings.Contains(lowURL, "/review"):
		return "review"
	case strings.Contains(lowURL, "/research") || strings.Contains(lowURL, "/paper"):
		return "scholarly"
	}

	lowTitle := strings.ToLower(title)
	lowText := strings.ToLower(text)

	best := "article"
	bestVotes := 0
	for contentType, signals := range contentTypeSignals {
		votes := 0
		for _, signal := range signals {
			if strings.Contains(lowTitle, signal) {
				votes += 2
			}
			if strings.Contains(lowText, signal) {
				votes++
			}
		}
		if votes > bestVotes || (votes == bestVotes && contentType < best && bestVotes > 0) {
			best = contentType
			bestVotes = votes
		}
	}
	if bestVotes == 0 {
		return "article"
	}
	return best
}

var audienceSignals = []struct {
	audience string
	phrases  []string
}{
	{"beginners", []string{"beginner", "getting started", "introduction to", "basics", "for dummies", "first time"}},
	{"professionals", []string{"enterprise", "professional", "advanced", "expert", "b2b", "practitioners"}},
	{"consumers", []string{"buy", "price", "deal", "shopping", "best value", "affordable"}},
}

// classifyAudience picks the first audience whose phrase list scores at
// least two hits, defaulting to a general audience.
func classifyAudience(text, title string) string {
	haystack := strings.ToLower(title + " " + text)
	for _, sig := range audienceSignals {
		hits := 0
		for _, phrase := range sig.phrases {
			if strings.Contains(haystack, phrase) {
				hits++
			}
		}
		if hits >= 2 {
			return sig.audience
		}
	}
	return "general"
}

// IndustryFor exposes lexicon-based industry classification for callers
// holding only an entity list, scoring lexicon membership of extracted
// entity names.
func IndustryFor(entities []entity.Entity, lexicons []entity.Lexicon) string {
	if lexicons == nil {
		lexicons = entity.DefaultLexicons()
	}
	best := ""
	bestHits := 0
	for _, lex := range lexicons {
		hits := 0
		for _, e := range entities {
			if _, ok := lex.Terms[textutil.NormalizeName(e.Name)]; ok {
				hits++
			}
		}
		if hits > bestHits {
			best = lex.Industry
			bestHits = hits
		}
	}
	return best
}

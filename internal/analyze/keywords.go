package analyze

import (
	"sort"
	"strings"

	"github.com/schemascribe/backend/internal/shared/textutil"
)

// ExtractKeywords ranks content tokens by frequency weighted by first
// position. Earlier terms score higher; title terms get a flat boost.
func ExtractKeywords(text, title string, max int) []string {
	tokens := textutil.ContentTokens(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstPos := make(map[string]int)
	for i, tok := range tokens {
		counts[tok]++
		if _, seen := firstPos[tok]; !seen {
			firstPos[tok] = i
		}
	}

	titleTokens := make(map[string]bool)
	for _, tok := range textutil.ContentTokens(strings.ToLower(title)) {
		titleTokens[tok] = true
	}

	type scored struct {
		term  string
		score float64
	}
	ranked := make([]scored, 0, len(counts))
	for term, count := range counts {
		// Position factor decays linearly from 1.0 at the start of the
		// document to 0.5 at the end.
		position := 1.0 - 0.5*float64(firstPos[term])/float64(len(tokens))
		score := float64(count) * position
		if titleTokens[term] {
			score += 2.0
		}
		ranked = append(ranked, scored{term: term, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].term < ranked[j].term
	})

	out := make([]string, 0, max)
	for _, r := range ranked {
		if len(out) == max {
			break
		}
		out = append(out, r.term)
	}
	return out
}

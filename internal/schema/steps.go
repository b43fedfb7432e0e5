package schema

import (
	"regexp"
	"sort"
	"strings"

	"github.com/schemascribe/backend/internal/shared/textutil"
)

// HowToStep is one `step` entry in an assembled HowTo document.
type HowToStep struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Text     string `json:"text"`
}

var (
	numberedStepRe   = regexp.MustCompile(`(?im)step\s*(\d+)\s*[:.)-]?\s*([^.\n]{3,200}[.!?]?)`)
	listItemStepRe   = regexp.MustCompile(`(?m)^\s*(\d+)[.)]\s+([^\n]{3,200})`)
	sequentialStepRe = regexp.MustCompile(`(?i)\b(first(?:ly)?|then|next|after\s+that|finally)\b[,:]?\s+([^.\n]{10,200}[.!?]?)`)
)

// IsRealHowToContent reports whether content genuinely carries
// step-by-step instructions: the title must signal a how-to AND the
// content must show at least minIndicators distinct sequential-language
// families. A how-to title over prose with no ordering language does not
// qualify.
func IsRealHowToContent(title, content string, minIndicators int) bool {
	if !howToTitleRe.MatchString(title) {
		return false
	}
	return distinctSequentialIndicators(content) >= minIndicators
}

// ExtractSteps pulls ordered HowTo steps from content: numbered-pattern
// match first, sequential-word pattern as fallback. Steps are
// deduplicated by normalized text, sorted by position, and capped.
func ExtractSteps(content string, maxSteps int) []HowToStep {
	type raw struct {
		position int
		text     string
	}
	var found []raw

	for _, m := range numberedStepRe.FindAllStringSubmatch(content, -1) {
		found = append(found, raw{position: atoiSafe(m[1]), text: m[2]})
	}
	if len(found) == 0 {
		for _, m := range listItemStepRe.FindAllStringSubmatch(content, -1) {
			found = append(found, raw{position: atoiSafe(m[1]), text: m[2]})
		}
	}
	if len(found) == 0 {
		for i, m := range sequentialStepRe.FindAllStringSubmatch(content, -1) {
			found = append(found, raw{position: i + 1, text: m[2]})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].position < found[j].position })

	seen := make(map[string]bool)
	var steps []HowToStep
	for _, r := range found {
		text := textutil.NormalizeWhitespace(r.text)
		key := textutil.NormalizeName(text)
		if text == "" || seen[key] {
			continue
		}
		seen[key] = true
		steps = append(steps, HowToStep{
			Type:     "HowToStep",
			Position: len(steps) + 1,
			Text:     text,
		})
		if maxSteps > 0 && len(steps) >= maxSteps {
			break
		}
	}
	return steps
}

// learningOutcomeRe finds "learn/understand/discover how ..." phrases.
var learningOutcomeRe = regexp.MustCompile(`(?i)\b(?:learn|understand|discover|master)\s+(?:how\s+to\s+|about\s+|the\s+)?([^.,\n]{5,100})`)

// IsInstructionalContent gates the teaches property: the title must
// contain a how-to or guide signal, or the content must mention
// learning.
func IsInstructionalContent(title, content string) bool {
	lowerTitle := strings.ToLower(title)
	if strings.Contains(lowerTitle, "how to") || strings.Contains(lowerTitle, "guide") {
		return true
	}
	return strings.Contains(strings.ToLower(content), "learn")
}

// ExtractLearningOutcomes finds outcome phrases, deduplicated by
// normalized name and capped.
func ExtractLearningOutcomes(content string, max int) []string {
	seen := make(map[string]bool)
	var outcomes []string
	for _, m := range learningOutcomeRe.FindAllStringSubmatch(content, -1) {
		outcome := textutil.NormalizeWhitespace(m[1])
		key := textutil.NormalizeName(outcome)
		if outcome == "" || seen[key] {
			continue
		}
		seen[key] = true
		outcomes = append(outcomes, outcome)
		if max > 0 && len(outcomes) >= max {
			break
		}
	}
	return outcomes
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}

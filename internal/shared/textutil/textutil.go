// Package textutil provides shared text helpers for the analysis pipeline.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	wordRe     = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9'-]*`)
	sentenceRe = regexp.MustCompile(`[.!?]+[\s\n]+|[.!?]+$`)
	slugRe     = regexp.MustCompile(`[^a-z0-9]+`)
)

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName lowercases and whitespace-collapses a name for use as a
// deduplication key.
func NormalizeName(s string) string {
	return strings.ToLower(NormalizeWhitespace(s))
}

// Slugify converts a name into a URL-safe identifier.
func Slugify(s string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// Tokenize splits text into lowercase word tokens.
func Tokenize(text string) []string {
	words := wordRe.FindAllString(text, -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, strings.ToLower(w))
	}
	return tokens
}

// ContentTokens returns lowercase tokens with stop words removed.
func ContentTokens(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !IsStopWord(t) && len(t) > 2 {
			out = append(out, t)
		}
	}
	return out
}

// SplitSentences breaks text into trimmed sentences, discarding empties.
func SplitSentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// TitleCaseShape reports whether every word in the phrase starts with an
// uppercase letter, the shape expected of person and organization names.
func TitleCaseShape(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		r := []rune(f)
		if !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}

// TruncateText shortens text to maxLen with a trailing ellipsis.
func TruncateText(s string, maxLen int) string {
	if len(s) <= maxLen || maxLen < 4 {
		return s
	}
	return s[:maxLen-3] + "..."
}

// Deduplicate removes duplicate strings while preserving order.
func Deduplicate(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// CountOccurrences counts case-insensitive occurrences of needle in text.
func CountOccurrences(text, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(needle))
}

package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "vo2 max", NormalizeName("  VO2   Max "))
	assert.Equal(t, "hiit", NormalizeName("HIIT"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "vo2-max", Slugify("VO2 Max"))
	assert.Equal(t, "jane-doe", Slugify("Jane  Doe"))
	assert.Equal(t, "hello-world", Slugify("Hello, World!"))
}

func TestContentTokensFiltersStopWords(t *testing.T) {
	tokens := ContentTokens("The quick brown fox and the lazy dog")
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "and")
	assert.Contains(t, tokens, "quick")
	assert.Contains(t, tokens, "brown")
}

func TestContentTokensDropsShortTokens(t *testing.T) {
	tokens := ContentTokens("go is ok but kubernetes wins")
	assert.NotContains(t, tokens, "go")
	assert.NotContains(t, tokens, "ok")
	assert.Contains(t, tokens, "kubernetes")
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First sentence. Second sentence! Third one?")
	assert.Len(t, sentences, 3)
	assert.Equal(t, "First sentence", sentences[0])
}

func TestSplitSentencesEmptyInput(t *testing.T) {
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences("   "))
}

func TestTitleCaseShape(t *testing.T) {
	assert.True(t, TitleCaseShape("Jane Doe"))
	assert.True(t, TitleCaseShape("John Ronald Tolkien"))
	assert.False(t, TitleCaseShape("jane doe"))
	assert.False(t, TitleCaseShape("posted in News"))
	assert.False(t, TitleCaseShape(""))
}

func TestDeduplicate(t *testing.T) {
	out := Deduplicate([]string{"alpha", "beta", "alpha", "gamma", "beta"})
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, out)
}

func TestCountOccurrences(t *testing.T) {
	text := "VO2 max matters. Improving VO2 max takes time. vo2 max again."
	assert.Equal(t, 3, CountOccurrences(text, "VO2 Max"))
	assert.Equal(t, 0, CountOccurrences(text, "deadlift"))
	assert.Equal(t, 0, CountOccurrences(text, ""))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	long := TruncateText("this text is definitely too long", 10)
	assert.Len(t, long, 10)
	assert.True(t, strings.HasSuffix(long, "..."))
}

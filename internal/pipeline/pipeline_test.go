package pipeline

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitnessPage() string {
	paragraph := strings.Repeat("VO2 max improves with consistent endurance training and HIIT sessions twice a week. ", 12)
	return `<!DOCTYPE html>
<html lang="en">
<head>
<title>VO2 Max Training Plan | Peak Endurance</title>
<meta name="description" content="A training plan built around VO2 max and HIIT.">
<meta name="author" content="Jane Doe">
<meta property="og:site_name" content="Peak Endurance">
</head>
<body>
<nav><a href="/blog">Blog</a></nav>
<article>
<h1>VO2 Max Training Plan</h1>
<p>` + paragraph + `</p>
<p>Track your VO2 max monthly and adjust your endurance volume accordingly.</p>
</article>
<footer>Copyright Peak Endurance</footer>
</body>
</html>`
}

func TestRunProducesFullResult(t *testing.T) {
	p := New(nil, nil, WithTopicSource(rand.NewSource(11)))

	res, err := p.Run(fitnessPage(), "https://peak.example.com/blog/vo2-max-plan")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.NotEmpty(t, res.RunID)
	assert.True(t, strings.HasPrefix(string(res.RunID), "run_"))

	require.NotNil(t, res.Document)
	assert.Equal(t, "VO2 Max Training Plan", res.Document.Title)
	assert.Equal(t, "Jane Doe", res.Document.Author)

	require.NotNil(t, res.Analysis)
	assert.Equal(t, "fitness", res.Analysis.Industry)
	assert.NotEmpty(t, res.Analysis.Entities)

	require.NotNil(t, res.Graph)
	assert.NotEmpty(t, res.Graph.Nodes)

	assert.NotEmpty(t, res.Recommendations)

	require.NotNil(t, res.Schema)
	assert.Contains(t, res.Schema.Type[0], "BlogPosting")

	var tree map[string]any
	require.NoError(t, sonic.Unmarshal(res.SchemaJSON, &tree))
	assert.Equal(t, "https://schema.org", tree["@context"])
}

// TestRunThinContent verifies the sentinel wrapping and the measured
// length on the typed error.
func TestRunThinContent(t *testing.T) {
	p := New(nil, nil)

	_, err := p.Run("<html><body><p>Too short.</p></body></html>", "https://example.com/x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientContent))

	var thin *InsufficientContentError
	require.True(t, errors.As(err, &thin))
	assert.Greater(t, thin.Minimum, thin.Length)
	assert.Contains(t, err.Error(), "insufficient content")
}

func TestRunInvalidURL(t *testing.T) {
	p := New(nil, nil)
	_, err := p.Run(fitnessPage(), "notaurl")
	assert.Error(t, err)
}

func TestRunDeterministicTopicsWithSeed(t *testing.T) {
	page := fitnessPage()
	url := "https://peak.example.com/blog/vo2-max-plan"

	first, err := New(nil, nil, WithTopicSource(rand.NewSource(21))).Run(page, url)
	require.NoError(t, err)
	second, err := New(nil, nil, WithTopicSource(rand.NewSource(21))).Run(page, url)
	require.NoError(t, err)

	require.Equal(t, len(first.Analysis.Topics), len(second.Analysis.Topics))
	for i := range first.Analysis.Topics {
		assert.Equal(t, first.Analysis.Topics[i].Terms, second.Analysis.Topics[i].Terms)
	}
}

func TestStoreAccumulatesRuns(t *testing.T) {
	p := New(nil, nil)

	_, err := p.Run(fitnessPage(), "https://peak.example.com/blog/vo2-max-plan")
	require.NoError(t, err)

	matches := p.Store().FindSimilarText("VO2 max endurance training plan", 3, 0.0)
	assert.NotEmpty(t, matches)
}

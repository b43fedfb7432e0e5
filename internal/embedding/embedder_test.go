package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemascribe/backend/internal/shared/vectormath"
)

func l2(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// TestEmbedNormalized verifies every non-trivial embedding has unit L2
// norm.
func TestEmbedNormalized(t *testing.T) {
	e := NewEmbedder()

	texts := []string{
		"How to improve your VO2 max with interval training",
		"Product review of a budget treadmill",
		"short",
	}
	for _, text := range texts {
		vec := e.Embed(text)
		require.Len(t, vec, Dimension)
		assert.InDelta(t, 1.0, l2(vec), 1e-9, "text %q", text)
	}
}

func TestEmbedEmptyTextZeroVector(t *testing.T) {
	e := NewEmbedder()

	vec := e.Embed("")
	require.Len(t, vec, Dimension)
	assert.True(t, vectormath.IsZero(vec))
}

func TestEmbedDeterministic(t *testing.T) {
	e := NewEmbedder()

	a := e.Embed("consistent input text about endurance training")
	b := e.Embed("consistent input text about endurance training")
	assert.Equal(t, a, b)
}

// TestCosineProperties verifies symmetry, bounds, and self-similarity.
func TestCosineProperties(t *testing.T) {
	e := NewEmbedder()
	a := e.Embed("interval training improves cardiovascular fitness")
	b := e.Embed("slow cooked pasta sauce with garlic and tomatoes")

	ab := vectormath.Cosine(a, b)
	ba := vectormath.Cosine(b, a)
	assert.InDelta(t, ab, ba, 1e-12)
	assert.GreaterOrEqual(t, ab, -1.0-1e-9)
	assert.LessOrEqual(t, ab, 1.0+1e-9)

	assert.InDelta(t, 1.0, vectormath.Cosine(a, a), 1e-9)
}

func TestCosineZeroVector(t *testing.T) {
	zero := make([]float64, Dimension)
	other := make([]float64, Dimension)
	other[0] = 1

	assert.Zero(t, vectormath.Cosine(zero, other))
	assert.Zero(t, vectormath.Cosine(zero, zero))
	assert.Zero(t, vectormath.Cosine([]float64{1, 2}, []float64{1, 2, 3}))
}

func TestSimilarTextsScoreHigher(t *testing.T) {
	e := NewEmbedder()

	base := e.Embed("HIIT workouts improve VO2 max and endurance")
	near := e.Embed("endurance and VO2 max improve with HIIT workouts")
	far := e.Embed("mortgage refinance rates dropped this quarter")

	assert.Greater(t, vectormath.Cosine(base, near), vectormath.Cosine(base, far))
}

// TestComputeTextSimilarityNoOverlap verifies disjoint vocabularies
// score exactly zero, never NaN.
func TestComputeTextSimilarityNoOverlap(t *testing.T) {
	sim := ComputeTextSimilarity(
		"quantum physics entanglement superposition",
		"gardening tomatoes fertilizer watering",
	)
	assert.Equal(t, 0.0, sim)
	assert.False(t, math.IsNaN(sim))
}

func TestComputeTextSimilarityIdentical(t *testing.T) {
	text := "interval training improves endurance capacity"
	assert.InDelta(t, 1.0, ComputeTextSimilarity(text, text), 1e-9)
}

func TestComputeTextSimilarityEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTextSimilarity("", "anything at all here"))
	assert.Equal(t, 0.0, ComputeTextSimilarity("", ""))
}

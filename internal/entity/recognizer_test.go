package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemascribe/backend/internal/infrastructure/config"
)

func newTestRecognizer() *Recognizer {
	return NewRecognizer(config.Default().Entity, nil, nil)
}

// TestRecognizeLexiconTerms verifies hinted lexicon terms surface with
// canonical casing and high confidence.
func TestRecognizeLexiconTerms(t *testing.T) {
	r := newTestRecognizer()
	text := "Your vo2 max improves with interval work. HIIT sessions push vo2 max further."

	entities := r.Recognize(text, "", "fitness")

	byName := make(map[string]Entity)
	for _, e := range entities {
		byName[e.Name] = e
	}

	vo2, ok := byName["VO2 Max"]
	require.True(t, ok, "expected VO2 Max entity")
	assert.Equal(t, TypeFitness, vo2.Type)
	assert.InDelta(t, 0.95, vo2.Confidence, 0.001)
	assert.Equal(t, 2, vo2.Mentions)

	hiit, ok := byName["HIIT"]
	require.True(t, ok, "expected HIIT entity")
	assert.Equal(t, TypeFitness, hiit.Type)
}

func TestRecognizeBrandSymbols(t *testing.T) {
	r := newTestRecognizer()
	text := "We compared Peloton® against the rest of the market."

	entities := r.Recognize(text, "", "")

	found := false
	for _, e := range entities {
		if e.Name == "Peloton" {
			found = true
			assert.Equal(t, TypeBrand, e.Type)
			assert.InDelta(t, 0.95, e.Confidence, 0.001)
		}
	}
	assert.True(t, found, "expected Peloton brand entity")
}

// TestRecognizeFrequencyBoost verifies repeated capitalized phrases gain
// confidence over single occurrences.
func TestRecognizeFrequencyBoost(t *testing.T) {
	r := newTestRecognizer()
	frequent := strings.Repeat("Quantum Widgets ships fast. ", 4)
	text := frequent + "Bespoke Gadgets appeared once."

	entities := r.Recognize(text, "", "")

	var quantum, bespoke float64
	for _, e := range entities {
		switch e.Name {
		case "Quantum Widgets":
			quantum = e.Confidence
		case "Bespoke Gadgets":
			bespoke = e.Confidence
		}
	}
	require.NotZero(t, quantum)
	require.NotZero(t, bespoke)
	assert.Greater(t, quantum, bespoke)
}

func TestRecognizeFiltersCommonWords(t *testing.T) {
	r := newTestRecognizer()
	text := "First we plan. However the outcome depends on Tuesday meetings. Finally we ship."

	entities := r.Recognize(text, "", "")
	for _, e := range entities {
		assert.NotEqual(t, "First", e.Name)
		assert.NotEqual(t, "However", e.Name)
		assert.NotEqual(t, "Finally", e.Name)
		assert.NotEqual(t, "Tuesday", e.Name)
	}
}

func TestRecognizeCapsResults(t *testing.T) {
	cfg := config.Default().Entity
	cfg.MaxEntities = 5
	r := NewRecognizer(cfg, nil, nil)

	var sb strings.Builder
	for _, name := range []string{
		"Alpha Systems", "Beta Works", "Gamma Labs", "Delta Forge",
		"Epsilon Group", "Zeta Partners", "Eta Holdings", "Theta Supply",
	} {
		sb.WriteString(name + " delivers value. ")
	}

	entities := r.Recognize(sb.String(), "", "")
	assert.LessOrEqual(t, len(entities), 5)
}

// TestMergeDeduplication verifies the dedup arithmetic: max confidence
// wins, mention counts sum.
func TestMergeDeduplication(t *testing.T) {
	a := []Entity{{Name: "VO2 Max", Type: TypeFitness, Confidence: 0.95, Mentions: 3}}
	b := []Entity{{Name: "vo2   max", Type: TypeConcept, Confidence: 0.6, Mentions: 2}}

	merged := Merge(a, b)
	require.Len(t, merged, 1)
	assert.Equal(t, "VO2 Max", merged[0].Name)
	assert.Equal(t, TypeFitness, merged[0].Type)
	assert.InDelta(t, 0.95, merged[0].Confidence, 0.001)
	assert.Equal(t, 5, merged[0].Mentions)
}

func TestMergeOrderIndependent(t *testing.T) {
	a := []Entity{{Name: "HIIT", Type: TypeFitness, Confidence: 0.95, Mentions: 1}}
	b := []Entity{{Name: "hiit", Type: TypeConcept, Confidence: 0.6, Mentions: 1}}

	ab := Merge(a, b)
	ba := Merge(b, a)
	require.Len(t, ab, 1)
	require.Len(t, ba, 1)
	assert.Equal(t, ab[0].Confidence, ba[0].Confidence)
	assert.Equal(t, ab[0].Mentions, ba[0].Mentions)
	assert.Equal(t, ab[0].Type, ba[0].Type)
}

func TestRecognizeSortedByConfidence(t *testing.T) {
	r := newTestRecognizer()
	text := "Train your vo2 max weekly. Quantum Widgets builds treadmills."

	entities := r.Recognize(text, "", "fitness")
	for i := 1; i < len(entities); i++ {
		assert.GreaterOrEqual(t, entities[i-1].Confidence, entities[i].Confidence)
	}
}

package embedding

import (
	"github.com/schemascribe/backend/internal/shared/textutil"
	"github.com/schemascribe/backend/internal/shared/vectormath"
)

// ComputeTextSimilarity measures cosine similarity over term-frequency
// vectors of the two texts' non-stopword tokens. Zero shared vocabulary
// returns 0.0, never NaN.
func ComputeTextSimilarity(a, b string) float64 {
	tokensA := textutil.ContentTokens(a)
	tokensB := textutil.ContentTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	vocab := make(map[string]int)
	for _, t := range tokensA {
		if _, ok := vocab[t]; !ok {
			vocab[t] = len(vocab)
		}
	}
	for _, t := range tokensB {
		if _, ok := vocab[t]; !ok {
			vocab[t] = len(vocab)
		}
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for _, t := range tokensA {
		vecA[vocab[t]]++
	}
	for _, t := range tokensB {
		vecB[vocab[t]]++
	}

	return vectormath.Cosine(vecA, vecB)
}

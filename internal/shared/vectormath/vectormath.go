// Package vectormath provides the numeric helpers shared by embeddings,
// clustering, and topic modeling.
package vectormath

import (
	"gonum.org/v1/gonum/floats"
)

// Cosine returns the cosine similarity of a and b. Zero-magnitude input
// short-circuits to 0 rather than dividing by zero.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// Normalize L2-normalizes v in place. An all-zero vector is left as-is.
func Normalize(v []float64) {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, v)
}

// IsZero reports whether every component of v is zero.
func IsZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

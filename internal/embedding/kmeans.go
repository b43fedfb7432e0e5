package embedding

import (
	"math/rand"

	"github.com/schemascribe/backend/internal/shared/vectormath"
)

// ClusterResult is one k-means cluster: its centroid and member indexes
// into the input vector slice.
type ClusterResult struct {
	Centroid []float64 `json:"centroid"`
	Members  []int     `json:"members"`
}

// KMeans clusters vectors into k groups using k-means++ seeding and a
// fixed iteration count with cosine distance. The random source is
// injected so tests can be deterministic. Empty clusters keep a zero
// centroid.
func KMeans(vectors [][]float64, k, iterations int, src rand.Source) []ClusterResult {
	if len(vectors) == 0 || k <= 0 {
		return nil
	}
	if k > len(vectors) {
		k = len(vectors)
	}
	if src == nil {
		src = rand.NewSource(rand.Int63())
	}
	rng := rand.New(src)

	centroids := seedCentroids(vectors, k, rng)
	assignments := make([]int, len(vectors))

	for iter := 0; iter < iterations; iter++ {
		// Assign each vector to its nearest centroid.
		for i, vec := range vectors {
			assignments[i] = nearestCentroid(vec, centroids)
		}

		// Re-average and re-normalize centroids.
		dims := len(vectors[0])
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, vec := range vectors {
			c := assignments[i]
			for d, v := range vec {
				sums[c][d] += v
			}
			counts[c]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				// Empty cluster keeps a zero centroid.
				centroids[c] = make([]float64, dims)
				continue
			}
			for d := range sums[c] {
				sums[c][d] /= float64(counts[c])
			}
			vectormath.Normalize(sums[c])
			centroids[c] = sums[c]
		}
	}

	results := make([]ClusterResult, k)
	for c := range results {
		results[c].Centroid = centroids[c]
	}
	for i, vec := range vectors {
		c := nearestCentroid(vec, centroids)
		results[c].Members = append(results[c].Members, i)
	}
	return results
}

// seedCentroids is k-means++: the first centroid is uniform-random, each
// subsequent one is chosen with probability proportional to its cosine
// distance from the nearest existing centroid.
func seedCentroids(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, cloneVector(vectors[rng.Intn(len(vectors))]))

	for len(centroids) < k {
		distances := make([]float64, len(vectors))
		total := 0.0
		for i, vec := range vectors {
			best := 0.0
			for j, c := range centroids {
				sim := vectormath.Cosine(vec, c)
				if j == 0 || sim > best {
					best = sim
				}
			}
			d := 1.0 - best
			if d < 0 {
				d = 0
			}
			distances[i] = d
			total += d
		}

		if total == 0 {
			// All points coincide with a centroid; fall back to uniform.
			centroids = append(centroids, cloneVector(vectors[rng.Intn(len(vectors))]))
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		chosen := len(vectors) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, cloneVector(vectors[chosen]))
	}

	return centroids
}

// nearestCentroid returns the index of the centroid with the highest
// cosine similarity to vec.
func nearestCentroid(vec []float64, centroids [][]float64) int {
	best := 0
	bestSim := vectormath.Cosine(vec, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if sim := vectormath.Cosine(vec, centroids[c]); sim > bestSim {
			bestSim = sim
			best = c
		}
	}
	return best
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

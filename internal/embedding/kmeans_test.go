package embedding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemascribe/backend/internal/shared/vectormath"
)

func clusterVectors() [][]float64 {
	// Two well-separated groups on orthogonal axes.
	return [][]float64{
		{1, 0.1, 0}, {0.9, 0.2, 0}, {1, 0, 0.1},
		{0, 0.1, 1}, {0.1, 0, 0.9}, {0, 0.2, 1},
	}
}

// TestKMeansAssignmentStability verifies every vector lands in the
// cluster whose centroid it is most similar to.
func TestKMeansAssignmentStability(t *testing.T) {
	vectors := clusterVectors()
	clusters := KMeans(vectors, 2, 50, rand.NewSource(1))
	require.Len(t, clusters, 2)

	centroids := make([][]float64, len(clusters))
	for c := range clusters {
		centroids[c] = clusters[c].Centroid
	}

	seen := 0
	for c, cluster := range clusters {
		for _, i := range cluster.Members {
			seen++
			assert.Equal(t, c, nearestCentroid(vectors[i], centroids),
				"vector %d not assigned to its nearest centroid", i)
		}
	}
	assert.Equal(t, len(vectors), seen)
}

func TestKMeansDeterministicWithSeed(t *testing.T) {
	vectors := clusterVectors()

	a := KMeans(vectors, 2, 50, rand.NewSource(42))
	b := KMeans(vectors, 2, 50, rand.NewSource(42))
	require.Equal(t, len(a), len(b))
	for c := range a {
		assert.Equal(t, a[c].Members, b[c].Members)
		assert.InDeltaSlice(t, a[c].Centroid, b[c].Centroid, 1e-12)
	}
}

func TestKMeansSeparatesGroups(t *testing.T) {
	vectors := clusterVectors()
	clusters := KMeans(vectors, 2, 50, rand.NewSource(7))
	require.Len(t, clusters, 2)

	// The first three vectors form one axis group, the last three the
	// other; both groups must land whole.
	group := func(i int) int {
		for c, cluster := range clusters {
			for _, m := range cluster.Members {
				if m == i {
					return c
				}
			}
		}
		return -1
	}
	assert.Equal(t, group(0), group(1))
	assert.Equal(t, group(1), group(2))
	assert.Equal(t, group(3), group(4))
	assert.Equal(t, group(4), group(5))
	assert.NotEqual(t, group(0), group(3))
}

func TestKMeansCapsKAtVectorCount(t *testing.T) {
	vectors := [][]float64{{1, 0}, {0, 1}}
	clusters := KMeans(vectors, 5, 10, rand.NewSource(1))
	assert.Len(t, clusters, 2)
}

func TestKMeansEmptyInput(t *testing.T) {
	assert.Nil(t, KMeans(nil, 3, 10, rand.NewSource(1)))
	assert.Nil(t, KMeans([][]float64{{1}}, 0, 10, rand.NewSource(1)))
}

// TestKMeansIdenticalVectors verifies duplicate points collapse without
// NaN centroids; surplus clusters keep zero centroids.
func TestKMeansIdenticalVectors(t *testing.T) {
	vectors := [][]float64{{1, 0}, {1, 0}, {1, 0}}
	clusters := KMeans(vectors, 2, 10, rand.NewSource(3))
	require.Len(t, clusters, 2)

	members := 0
	for _, cluster := range clusters {
		members += len(cluster.Members)
		for _, v := range cluster.Centroid {
			assert.False(t, v != v, "NaN centroid component")
		}
	}
	assert.Equal(t, len(vectors), members)
}

func TestKMeansCentroidsNormalized(t *testing.T) {
	clusters := KMeans(clusterVectors(), 2, 50, rand.NewSource(5))
	for _, cluster := range clusters {
		if vectormath.IsZero(cluster.Centroid) {
			continue
		}
		norm := 0.0
		for _, v := range cluster.Centroid {
			norm += v * v
		}
		assert.InDelta(t, 1.0, norm, 1e-9)
	}
}

package embedding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(nil)
	s.Insert("HIIT training improves VO2 max and endurance", "fitness")
	s.Insert("interval workouts build cardiovascular capacity", "fitness")
	s.Insert("slow cooked tomato sauce with garlic", "recipe")
	return s
}

func TestStoreInsertAndQuery(t *testing.T) {
	s := seedStore(t)
	assert.Equal(t, 3, s.Len())

	matches := s.FindSimilarText("VO2 max improvement through HIIT", 2, 0.1)
	require.NotEmpty(t, matches)
	assert.LessOrEqual(t, len(matches), 2)
	assert.Equal(t, "fitness", matches[0].Record.TypeTag)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Similarity, matches[i].Similarity)
	}
}

func TestStoreThresholdFiltering(t *testing.T) {
	s := seedStore(t)

	none := s.FindSimilarText("completely unrelated quantum chromodynamics", 10, 0.99)
	assert.Empty(t, none)
}

func TestStoreClear(t *testing.T) {
	s := seedStore(t)
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.FindSimilarText("anything", 5, 0.0))
}

// TestStoreExportImportRoundTrip verifies a fresh store reproduces the
// original similarity results after import.
func TestStoreExportImportRoundTrip(t *testing.T) {
	s := seedStore(t)
	query := s.Embed("HIIT and VO2 max gains")
	original := s.FindSimilar(query, 3, 0.0)

	for _, compress := range []bool{false, true} {
		data, err := s.Export(compress)
		require.NoError(t, err)

		fresh := NewStore(nil)
		require.NoError(t, fresh.Import(data))
		assert.Equal(t, s.Len(), fresh.Len())

		restored := fresh.FindSimilar(query, 3, 0.0)
		require.Equal(t, len(original), len(restored))
		for i := range original {
			assert.Equal(t, original[i].Record.ID, restored[i].Record.ID)
			assert.InDelta(t, original[i].Similarity, restored[i].Similarity, 1e-12)
		}
	}
}

func TestStoreImportDetectsGzip(t *testing.T) {
	s := seedStore(t)

	compressed, err := s.Export(true)
	require.NoError(t, err)
	assert.Equal(t, gzipMagic, compressed[:2])

	fresh := NewStore(nil)
	require.NoError(t, fresh.Import(compressed))
	assert.Equal(t, s.Len(), fresh.Len())
}

func TestStoreImportRejectsGarbage(t *testing.T) {
	s := NewStore(nil)
	assert.Error(t, s.Import([]byte("not json at all")))
}

// TestStoreCluster verifies stored records are partitioned exhaustively
// with the configured iteration count and an injected seed.
func TestStoreCluster(t *testing.T) {
	s := NewStoreWithIterations(nil, 50)
	s.Insert("HIIT training improves VO2 max and endurance", "fitness")
	s.Insert("interval workouts build cardiovascular capacity", "fitness")
	s.Insert("slow cooked tomato sauce with garlic", "recipe")
	s.Insert("simmer the tomato sauce and add fresh basil", "recipe")

	clusters := s.Cluster(2, rand.NewSource(9))
	require.Len(t, clusters, 2)

	total := 0
	seen := make(map[string]bool)
	for _, c := range clusters {
		require.NotNil(t, c.Centroid)
		for _, rec := range c.Records {
			assert.False(t, seen[rec.ID], "record assigned twice: %s", rec.ID)
			seen[rec.ID] = true
			total++
		}
	}
	assert.Equal(t, s.Len(), total)
}

func TestStoreClusterDeterministicWithSeed(t *testing.T) {
	s := seedStore(t)

	first := s.Cluster(2, rand.NewSource(3))
	second := s.Cluster(2, rand.NewSource(3))
	require.Len(t, second, len(first))
	for c := range first {
		require.Len(t, second[c].Records, len(first[c].Records))
		for i := range first[c].Records {
			assert.Equal(t, first[c].Records[i].ID, second[c].Records[i].ID)
		}
	}
}

func TestStoreClusterEmptyAndInvalidK(t *testing.T) {
	s := NewStore(nil)
	assert.Nil(t, s.Cluster(2, nil))

	s.Insert("one lonely record", "misc")
	assert.Nil(t, s.Cluster(0, nil))
}

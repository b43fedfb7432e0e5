package embedding

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/gzip"

	"github.com/schemascribe/backend/internal/shared/id"
	"github.com/schemascribe/backend/internal/shared/vectormath"
)

// Record is one stored embedding with its metadata.
type Record struct {
	ID        string    `json:"id"`
	Vector    []float64 `json:"vector"`
	Excerpt   string    `json:"excerpt,omitempty"`
	TypeTag   string    `json:"typeTag,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Match is one similarity-search result.
type Match struct {
	Record     *Record `json:"record"`
	Similarity float64 `json:"similarity"`
}

// Store is an in-memory embedding cache: insert, query, cluster, clear,
// export, import. It is a cache, not a database, and carries no locking;
// callers needing concurrent access serialize it themselves.
type Store struct {
	embedder    *Embedder
	records     map[string]*Record
	kmeansIters int
}

const defaultKMeansIterations = 50

// NewStore creates an empty store backed by the given embedder.
func NewStore(embedder *Embedder) *Store {
	return NewStoreWithIterations(embedder, defaultKMeansIterations)
}

// NewStoreWithIterations creates a store with a configured k-means
// iteration count for Cluster.
func NewStoreWithIterations(embedder *Embedder, kmeansIterations int) *Store {
	if embedder == nil {
		embedder = NewEmbedder()
	}
	if kmeansIterations <= 0 {
		kmeansIterations = defaultKMeansIterations
	}
	return &Store{
		embedder:    embedder,
		records:     make(map[string]*Record),
		kmeansIters: kmeansIterations,
	}
}

// Embed returns the vector for text without storing it.
func (s *Store) Embed(text string) []float64 {
	return s.embedder.Embed(text)
}

// Insert embeds text and stores the record, returning it.
func (s *Store) Insert(text, typeTag string) *Record {
	rec := &Record{
		ID:        id.NewEmbeddingID().String(),
		Vector:    s.embedder.Embed(text),
		Excerpt:   excerpt(text, 120),
		TypeTag:   typeTag,
		CreatedAt: time.Now().UTC(),
	}
	s.records[rec.ID] = rec
	return rec
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// FindSimilar returns up to k records whose cosine similarity with the
// query vector meets the threshold, sorted by similarity descending.
func (s *Store) FindSimilar(query []float64, k int, threshold float64) []Match {
	var matches []Match
	for _, rec := range s.records {
		sim := vectormath.Cosine(query, rec.Vector)
		if sim >= threshold {
			matches = append(matches, Match{Record: rec, Similarity: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Record.ID < matches[j].Record.ID
	})

	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// FindSimilarText embeds the query text and searches.
func (s *Store) FindSimilarText(text string, k int, threshold float64) []Match {
	return s.FindSimilar(s.embedder.Embed(text), k, threshold)
}

// Clear discards all stored records.
func (s *Store) Clear() {
	s.records = make(map[string]*Record)
}

// RecordCluster is one cluster of stored records.
type RecordCluster struct {
	Centroid []float64 `json:"centroid"`
	Records  []*Record `json:"records"`
}

// Cluster groups the stored records into k clusters by k-means over
// their vectors, using the configured iteration count. Records are
// ordered by ID before clustering so a given seed is reproducible.
func (s *Store) Cluster(k int, src rand.Source) []RecordCluster {
	if len(s.records) == 0 || k <= 0 {
		return nil
	}

	ordered := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		ordered = append(ordered, rec)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	vectors := make([][]float64, len(ordered))
	for i, rec := range ordered {
		vectors[i] = rec.Vector
	}

	results := KMeans(vectors, k, s.kmeansIters, src)
	clusters := make([]RecordCluster, len(results))
	for c, res := range results {
		clusters[c].Centroid = res.Centroid
		for _, idx := range res.Members {
			clusters[c].Records = append(clusters[c].Records, ordered[idx])
		}
	}
	return clusters
}

// gzipMagic is the two-byte gzip stream header.
var gzipMagic = []byte{0x1f, 0x8b}

// Export serializes all records as JSON, optionally gzip-framed.
func (s *Store) Export(compress bool) ([]byte, error) {
	records := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	data, err := sonic.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}

	if !compress {
		return data, nil
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return nil, fmt.Errorf("compress records: %w", err)
	}
	if err := gw.Close(); err != nil {
		return nil, fmt.Errorf("compress records: %w", err)
	}
	return buf.Bytes(), nil
}

// Import replaces the store's contents with previously exported data.
// Gzip framing is detected from the stream header.
func (s *Store) Import(data []byte) error {
	if bytes.HasPrefix(data, gzipMagic) {
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("open gzip stream: %w", err)
		}
		defer gr.Close()
		decompressed, err := io.ReadAll(gr)
		if err != nil {
			return fmt.Errorf("decompress records: %w", err)
		}
		data = decompressed
	}

	var records []*Record
	if err := sonic.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("unmarshal records: %w", err)
	}

	s.records = make(map[string]*Record, len(records))
	for _, rec := range records {
		if rec == nil || rec.ID == "" {
			continue
		}
		s.records[rec.ID] = rec
	}
	return nil
}

func excerpt(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}

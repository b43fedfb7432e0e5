package semantic

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/shared/textutil"
	"github.com/schemascribe/backend/internal/shared/vectormath"
)

// Topic is one extracted latent topic.
type Topic struct {
	Name      string   `json:"name"` // top-3 terms joined
	Terms     []string `json:"terms"`
	Weight    float64  `json:"weight"`
	Coherence float64  `json:"coherence"`
}

// TopicModeler extracts topics via a simplified non-negative
// factorization. The random source is injected so tests can run
// deterministically; production runs differ across invocations.
type TopicModeler struct {
	iterations      int
	vocabularyCap   int
	minDocFrequency float64
	maxDocFrequency float64
	rng             *rand.Rand
}

// NewTopicModeler creates a topic modeler with the given random source.
// A nil source gets an arbitrary seed.
func NewTopicModeler(cfg config.SemanticConfig, src rand.Source) *TopicModeler {
	if src == nil {
		src = rand.NewSource(rand.Int63())
	}
	return &TopicModeler{
		iterations:      cfg.TopicIterations,
		vocabularyCap:   cfg.VocabularyCap,
		minDocFrequency: cfg.MinDocFrequency,
		maxDocFrequency: cfg.MaxDocFrequency,
		rng:             rand.New(src),
	}
}

// ExtractTopics finds numTopics latent topics across documents. Documents
// shorter than the vocabulary filter yields empty results rather than
// errors.
func (m *TopicModeler) ExtractTopics(documents []string, numTopics int) []Topic {
	if len(documents) == 0 || numTopics <= 0 {
		return nil
	}

	vocab, docTokens := m.buildVocabulary(documents)
	if len(vocab) == 0 {
		return nil
	}

	// Document-term count matrix.
	docVectors := make([][]float64, len(documents))
	for i, tokens := range docTokens {
		vec := make([]float64, len(vocab))
		for _, t := range tokens {
			if idx, ok := vocab[t]; ok {
				vec[idx]++
			}
		}
		docVectors[i] = vec
	}

	terms := make([]string, len(vocab))
	for term, idx := range vocab {
		terms[idx] = term
	}

	if numTopics > len(vocab) {
		numTopics = len(vocab)
	}

	// Topic vectors start random-normalized, then iterate a fixed number
	// of rounds reweighting by similarity-weighted document sums.
	topicVectors := make([][]float64, numTopics)
	for k := range topicVectors {
		vec := make([]float64, len(vocab))
		for i := range vec {
			vec[i] = m.rng.Float64()
		}
		vectormath.Normalize(vec)
		topicVectors[k] = vec
	}

	for iter := 0; iter < m.iterations; iter++ {
		for k, topic := range topicVectors {
			next := make([]float64, len(vocab))
			for _, doc := range docVectors {
				sim := vectormath.Cosine(topic, doc)
				if sim <= 0 {
					continue
				}
				for i, v := range doc {
					next[i] += sim * v
				}
			}
			if vectormath.IsZero(next) {
				continue
			}
			vectormath.Normalize(next)
			topicVectors[k] = next
		}
	}

	topics := make([]Topic, 0, numTopics)
	for _, vec := range topicVectors {
		top := topTerms(vec, terms, 10)
		if len(top) == 0 {
			continue
		}
		nameCount := 3
		if len(top) < nameCount {
			nameCount = len(top)
		}
		topics = append(topics, Topic{
			Name:      strings.Join(top[:nameCount], " "),
			Terms:     top,
			Weight:    topicWeight(vec),
			Coherence: coherence(top, docTokens),
		})
	}

	sort.SliceStable(topics, func(i, j int) bool { return topics[i].Weight > topics[j].Weight })
	return topics
}

// buildVocabulary keeps terms appearing in at least minDocFrequency and at
// most maxDocFrequency of documents, capped at the top vocabularyCap terms
// by raw frequency.
func (m *TopicModeler) buildVocabulary(documents []string) (map[string]int, [][]string) {
	docTokens := make([][]string, len(documents))
	docFreq := make(map[string]int)
	rawFreq := make(map[string]int)

	for i, doc := range documents {
		tokens := textutil.ContentTokens(doc)
		docTokens[i] = tokens

		seen := make(map[string]bool)
		for _, t := range tokens {
			rawFreq[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	n := float64(len(documents))
	type termFreq struct {
		term string
		freq int
	}
	var kept []termFreq
	for term, df := range docFreq {
		ratio := float64(df) / n
		// Single-document corpora would filter everything out with the
		// upper bound; skip it there.
		if ratio < m.minDocFrequency {
			continue
		}
		if len(documents) > 1 && ratio > m.maxDocFrequency {
			continue
		}
		kept = append(kept, termFreq{term, rawFreq[term]})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].freq != kept[j].freq {
			return kept[i].freq > kept[j].freq
		}
		return kept[i].term < kept[j].term
	})
	if len(kept) > m.vocabularyCap {
		kept = kept[:m.vocabularyCap]
	}

	vocab := make(map[string]int, len(kept))
	for i, tf := range kept {
		vocab[tf.term] = i
	}
	return vocab, docTokens
}

// topTerms returns the n highest-weighted terms of a topic vector.
func topTerms(vec []float64, terms []string, n int) []string {
	type weighted struct {
		term   string
		weight float64
	}
	var entries []weighted
	for i, w := range vec {
		if w > 0 {
			entries = append(entries, weighted{terms[i], w})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].term < entries[j].term
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.term
	}
	return out
}

// topicWeight is the mass of the topic's strongest components.
func topicWeight(vec []float64) float64 {
	total := 0.0
	for _, v := range vec {
		total += v
	}
	if len(vec) == 0 {
		return 0
	}
	return total / float64(len(vec))
}

// coherence is the average pairwise co-occurrence rate of the topic's top
// terms across documents.
func coherence(top []string, docTokens [][]string) float64 {
	if len(top) < 2 || len(docTokens) == 0 {
		return 0
	}

	contains := make([]map[string]bool, len(docTokens))
	for i, tokens := range docTokens {
		set := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			set[t] = true
		}
		contains[i] = set
	}

	pairs, sum := 0, 0.0
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			both := 0
			for _, set := range contains {
				if set[top[i]] && set[top[j]] {
					both++
				}
			}
			sum += float64(both) / float64(len(docTokens))
			pairs++
		}
	}
	return sum / float64(pairs)
}

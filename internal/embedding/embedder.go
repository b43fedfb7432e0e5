// Package embedding turns text into fixed-length feature vectors, stores
// them for similarity search, and clusters them with k-means.
package embedding

import (
	"math"
	"strings"
	"sync"

	"github.com/schemascribe/backend/internal/shared/textutil"
	"github.com/schemascribe/backend/internal/shared/vectormath"
)

// Dimension is the fixed embedding length, partitioned into four bands.
const (
	Dimension = 768

	lexicalStart    = 0   // TF-IDF band
	lexicalEnd      = 300 // exclusive
	semanticStart   = 300 // rule-based features
	semanticEnd     = 500
	ngramStart      = 500 // n-gram diversity and bigram hits
	ngramEnd        = 700
	contextualStart = 700 // sentiment/action/temporal ratios
	contextualEnd   = 768
)

// schemaKeywords are type signals scored into the semantic band.
var schemaKeywords = []string{
	"recipe", "ingredients", "review", "rating", "product", "price",
	"event", "tickets", "how to", "guide", "tutorial", "faq", "question",
	"article", "news", "research", "study",
}

// industryKeywords drive the industry-overlap features.
var industryKeywords = map[string][]string{
	"fitness":    {"workout", "exercise", "training", "muscle", "cardio", "fitness"},
	"health":     {"health", "medical", "treatment", "doctor", "patient", "dental"},
	"technology": {"software", "technology", "digital", "data", "cloud", "api"},
	"finance":    {"loan", "mortgage", "interest", "payment", "credit", "finance"},
	"cannabis":   {"cannabis", "cbd", "thc", "strain", "dispensary", "hemp"},
}

// handPickedBigrams are scored individually into the n-gram band.
var handPickedBigrams = []string{
	"how to", "step by", "best way", "learn more", "find out",
	"make sure", "keep in", "such as", "for example", "in order",
}

var (
	positiveWords = []string{"good", "great", "best", "excellent", "amazing", "love"}
	negativeWords = []string{"bad", "worst", "poor", "terrible", "awful", "hate"}
	actionWords   = []string{"buy", "click", "start", "try", "download", "subscribe", "order", "get"}
	temporalWords = []string{"today", "now", "tomorrow", "yesterday", "soon", "daily", "weekly", "annual"}
)

// bootstrapCorpus seeds the vocabulary/IDF table. It is deliberately
// small; TF-IDF here is a feature band, not a retrieval index.
var bootstrapCorpus = []string{
	"how to guide tutorial step instructions learn build make create",
	"product price buy review rating quality brand shop order deal",
	"health medical treatment doctor patient symptoms therapy care",
	"fitness workout exercise training muscle strength cardio endurance",
	"technology software data cloud digital platform system application",
	"recipe ingredients cook bake serve minutes preparation kitchen food",
	"news article report research study analysis results findings",
	"company business service customer market industry growth team",
	"event festival conference tickets schedule venue date location",
	"finance loan mortgage interest payment credit rate investment",
}

// Embedder converts text into 768-dimension vectors. The vocabulary and
// IDF table are built lazily on first use and are read-only afterwards,
// so a single Embedder is safe for concurrent Embed calls.
type Embedder struct {
	once  sync.Once
	vocab map[string]int // term -> lexical band index
	idf   map[string]float64
}

// NewEmbedder creates an embedder; the vocabulary is built on first Embed.
func NewEmbedder() *Embedder {
	return &Embedder{}
}

func (e *Embedder) init() {
	e.once.Do(func() {
		e.vocab = make(map[string]int)
		e.idf = make(map[string]float64)

		docFreq := make(map[string]int)
		for _, doc := range bootstrapCorpus {
			seen := make(map[string]bool)
			for _, t := range textutil.ContentTokens(doc) {
				if !seen[t] {
					seen[t] = true
					docFreq[t]++
				}
			}
		}

		n := float64(len(bootstrapCorpus))
		idx := 0
		for _, doc := range bootstrapCorpus {
			for _, t := range textutil.ContentTokens(doc) {
				if _, ok := e.vocab[t]; ok {
					continue
				}
				if idx >= lexicalEnd-lexicalStart {
					break
				}
				e.vocab[t] = idx
				e.idf[t] = math.Log(n/float64(docFreq[t])) + 1
				idx++
			}
		}
	})
}

// Embed produces the L2-normalized vector for text. Empty input yields an
// all-zero vector, which stays all-zero.
func (e *Embedder) Embed(text string) []float64 {
	e.init()

	vec := make([]float64, Dimension)
	tokens := textutil.ContentTokens(text)
	if len(tokens) == 0 && strings.TrimSpace(text) == "" {
		return vec
	}

	e.lexicalBand(vec, tokens)
	e.semanticBand(vec, text, tokens)
	e.ngramBand(vec, tokens)
	e.contextualBand(vec, tokens)

	vectormath.Normalize(vec)
	return vec
}

// lexicalBand fills dims 0-299 with TF-IDF scores against the bootstrapped
// vocabulary. Out-of-vocabulary terms hash into the band.
func (e *Embedder) lexicalBand(vec []float64, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	width := lexicalEnd - lexicalStart
	for term, count := range tf {
		freq := float64(count) / float64(len(tokens))
		if idx, ok := e.vocab[term]; ok {
			vec[lexicalStart+idx] += freq * e.idf[term]
		} else {
			vec[lexicalStart+hashString(term)%width] += freq * 0.5
		}
	}
}

// semanticBand fills dims 300-499 with rule-based features: schema-type
// keyword hits, content length, punctuation/casing ratios, and industry
// keyword overlap.
func (e *Embedder) semanticBand(vec []float64, text string, tokens []string) {
	lower := strings.ToLower(text)

	for i, kw := range schemaKeywords {
		if semanticStart+i >= semanticEnd {
			break
		}
		vec[semanticStart+i] = float64(strings.Count(lower, kw))
	}

	offset := semanticStart + len(schemaKeywords)
	if offset < semanticEnd {
		vec[offset] = math.Min(float64(len(text))/5000.0, 1.0)
	}
	if offset+1 < semanticEnd {
		vec[offset+1] = ratioOf(text, func(r rune) bool {
			return strings.ContainsRune("!?.,:;", r)
		})
	}
	if offset+2 < semanticEnd {
		vec[offset+2] = ratioOf(text, func(r rune) bool {
			return r >= 'A' && r <= 'Z'
		})
	}

	industryOffset := offset + 3
	i := 0
	for _, industry := range []string{"fitness", "health", "technology", "finance", "cannabis"} {
		if industryOffset+i >= semanticEnd {
			break
		}
		vec[industryOffset+i] = overlapScore(tokens, industryKeywords[industry])
		i++
	}
}

// ngramBand fills dims 500-699 with bigram diversity plus hand-picked
// bigram hit counts.
func (e *Embedder) ngramBand(vec []float64, tokens []string) {
	if len(tokens) < 2 {
		return
	}

	bigrams := make(map[string]int)
	for i := 0; i+1 < len(tokens); i++ {
		bigrams[tokens[i]+" "+tokens[i+1]]++
	}

	vec[ngramStart] = float64(len(bigrams)) / float64(len(tokens)-1) // diversity

	for i, bg := range handPickedBigrams {
		if ngramStart+1+i >= ngramEnd {
			break
		}
		vec[ngramStart+1+i] = float64(bigrams[bg])
	}

	// Remaining slots carry hashed bigram presence.
	width := ngramEnd - ngramStart - 1 - len(handPickedBigrams)
	if width <= 0 {
		return
	}
	base := ngramStart + 1 + len(handPickedBigrams)
	for bg, count := range bigrams {
		vec[base+hashString(bg)%width] += float64(count) * 0.1
	}
}

// contextualBand fills dims 700-767 with sentiment/action/temporal
// keyword ratios.
func (e *Embedder) contextualBand(vec []float64, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	n := float64(len(tokens))
	vec[contextualStart] = countMatches(tokens, positiveWords) / n
	vec[contextualStart+1] = countMatches(tokens, negativeWords) / n
	vec[contextualStart+2] = countMatches(tokens, actionWords) / n
	vec[contextualStart+3] = countMatches(tokens, temporalWords) / n

	// Spread token-level hashes over the remainder for contextual
	// distinctiveness.
	width := contextualEnd - contextualStart - 4
	for _, t := range tokens {
		vec[contextualStart+4+hashString(t)%width] += 1.0 / n
	}
}

func countMatches(tokens, targets []string) float64 {
	set := make(map[string]bool, len(targets))
	for _, t := range targets {
		set[t] = true
	}
	count := 0.0
	for _, t := range tokens {
		if set[t] {
			count++
		}
	}
	return count
}

func overlapScore(tokens, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	hits := 0
	for _, kw := range keywords {
		if set[kw] {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}

func ratioOf(text string, pred func(rune) bool) float64 {
	if len(text) == 0 {
		return 0
	}
	count := 0
	for _, r := range text {
		if pred(r) {
			count++
		}
	}
	return float64(count) / float64(len(text))
}

// hashString is FNV-1a over the string bytes.
func hashString(s string) int {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return int(h % math.MaxInt32)
}

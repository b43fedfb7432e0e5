// Package semantic scores text for sentiment polarity, extracts latent
// topics, and provides the shared tokenization helpers both use.
package semantic

import (
	"math"

	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/shared/textutil"
)

// SentimentResult is the document-level sentiment summary.
type SentimentResult struct {
	Score      float64            `json:"score"` // in [-1, 1]
	Label      string             `json:"label"` // positive, negative, neutral, mixed
	Confidence float64            `json:"confidence"`
	Aspects    map[string]float64 `json:"aspects,omitempty"`
}

// SentimentAnalyzer scores text against a fixed polarity lexicon.
type SentimentAnalyzer struct {
	positiveFloor   float64
	negativeCeiling float64
}

// NewSentimentAnalyzer creates a sentiment analyzer.
func NewSentimentAnalyzer(cfg config.SemanticConfig) *SentimentAnalyzer {
	return &SentimentAnalyzer{
		positiveFloor:   cfg.PositiveFloor,
		negativeCeiling: cfg.NegativeCeiling,
	}
}

// Analyze scores the document: sentence scores normalized by token count
// and averaged, aspect scores from distance-decayed windows, and a label
// derived from thresholds with a mixed override.
func (a *SentimentAnalyzer) Analyze(text string) SentimentResult {
	sentences := textutil.SplitSentences(text)
	if len(sentences) == 0 {
		return SentimentResult{Label: "neutral"}
	}

	total := 0.0
	scored := 0
	for _, sentence := range sentences {
		score, tokens := scoreSentence(sentence)
		if tokens == 0 {
			continue
		}
		total += score / float64(tokens)
		scored++
	}

	score := 0.0
	if scored > 0 {
		score = total / float64(scored)
	}
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}

	aspects := a.aspectScores(text)
	label := a.label(score, aspects)

	return SentimentResult{
		Score:      score,
		Label:      label,
		Confidence: a.confidence(text, score),
		Aspects:    aspects,
	}
}

// scoreSentence applies the lexicon with modifier state: an intensifier
// or negation affects only the next sentiment-bearing token, then clears.
func scoreSentence(sentence string) (score float64, tokens int) {
	words := textutil.Tokenize(sentence)
	multiplier := 1.0
	negated := false

	for _, w := range words {
		if m, ok := intensifiers[w]; ok {
			multiplier = m
			continue
		}
		if negations[w] {
			negated = true
			continue
		}

		if polarity, ok := sentimentLexicon[w]; ok {
			value := polarity * multiplier
			if negated {
				value = -value
			}
			score += value
			// Modifiers apply to one token only.
			multiplier = 1.0
			negated = false
		}
	}

	return score, len(words)
}

// aspectScores scores each fixed aspect noun using a +-5 token window with
// distance decay.
func (a *SentimentAnalyzer) aspectScores(text string) map[string]float64 {
	words := textutil.Tokenize(text)
	aspects := make(map[string]float64)

	for _, aspect := range aspectNouns {
		score := 0.0
		hits := 0
		for i, w := range words {
			if w != aspect {
				continue
			}
			hits++
			for j := i - 5; j <= i+5; j++ {
				if j < 0 || j >= len(words) || j == i {
					continue
				}
				polarity, ok := sentimentLexicon[words[j]]
				if !ok {
					continue
				}
				distance := math.Abs(float64(j - i))
				score += polarity / distance
			}
		}
		if hits > 0 {
			aspects[aspect] = clamp(score/float64(hits), -1, 1)
		}
	}

	if len(aspects) == 0 {
		return nil
	}
	return aspects
}

// label maps the score to a polarity label; mixed overrides when both
// positive and negative aspects are present.
func (a *SentimentAnalyzer) label(score float64, aspects map[string]float64) string {
	hasPositive, hasNegative := false, false
	for _, s := range aspects {
		if s > a.positiveFloor {
			hasPositive = true
		}
		if s < a.negativeCeiling {
			hasNegative = true
		}
	}
	if hasPositive && hasNegative {
		return "mixed"
	}

	switch {
	case score > a.positiveFloor:
		return "positive"
	case score < a.negativeCeiling:
		return "negative"
	default:
		return "neutral"
	}
}

// confidence blends text length (capped beyond 500 characters) with score
// magnitude.
func (a *SentimentAnalyzer) confidence(text string, score float64) float64 {
	lengthFactor := float64(len(text)) / 500.0
	if lengthFactor > 1 {
		lengthFactor = 1
	}
	return clamp(0.5*lengthFactor+0.5*math.Abs(score), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

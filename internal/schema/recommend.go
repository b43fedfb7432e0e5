package schema

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/logging"
)

const (
	patternHitScore = 0.1
	patternScoreCap = 0.3
	urlHintBonus    = 0.2
	entityBonus     = 0.1
)

// Recommendation is one ranked Schema.org type suggestion.
type Recommendation struct {
	Type          string   `json:"type"`
	Confidence    float64  `json:"confidence"`
	Justification string   `json:"justification"`
	Properties    []string `json:"properties,omitempty"`
	RelatedTypes  []string `json:"relatedTypes,omitempty"`
}

// Recommender scores candidate types from content features, pattern hits,
// URL hints, and entity co-occurrence.
type Recommender struct {
	floor             float64
	defaultConfidence float64
	maxResults        int
	log               *logging.Logger
}

// NewRecommender creates a recommender.
func NewRecommender(cfg config.SchemaConfig, log *logging.Logger) *Recommender {
	return &Recommender{
		floor:             cfg.RecommendationFloor,
		defaultConfidence: cfg.DefaultConfidence,
		maxResults:        cfg.MaxRecommendations,
		log:               logging.OrNop(log).Named("recommend"),
	}
}

// Recommend returns ranked type suggestions for the content. Types below
// the floor are dropped; when the best candidate stays below the default
// confidence, an Article/BlogPosting fallback (chosen by URL path) is
// injected at the top.
func (r *Recommender) Recommend(content, title, url string, entities []entity.Entity) []Recommendation {
	features := ExtractFeatures(content, title)
	combined := title + "\n" + content

	scores := make(map[string]float64)
	reasons := make(map[string][]string)

	// Pass 1: pattern hit counts.
	for typ, patterns := range typePatterns {
		hitScore := 0.0
		hits := 0
		for _, re := range patterns {
			if n := len(re.FindAllString(combined, -1)); n > 0 {
				hitScore += patternHitScore
				hits += n
			}
		}
		if hitScore > patternScoreCap {
			hitScore = patternScoreCap
		}
		if hitScore > 0 {
			scores[typ] += hitScore
			reasons[typ] = append(reasons[typ], fmt.Sprintf("%d content pattern matches", hits))
		}
	}

	// Pass 2: feature scoring.
	for typ, score := range featureScores(features) {
		if score > 0 {
			scores[typ] += score
			reasons[typ] = append(reasons[typ], featureReason(typ, features))
		}
	}

	// URL hints.
	lowerURL := strings.ToLower(url)
	for hint, types := range urlHints {
		if !strings.Contains(lowerURL, hint) {
			continue
		}
		for _, typ := range types {
			scores[typ] += urlHintBonus
			reasons[typ] = append(reasons[typ], fmt.Sprintf("URL contains %q", hint))
		}
	}

	// Entity-type co-occurrence.
	for typ, reason := range entityBonuses(entities) {
		scores[typ] += entityBonus
		reasons[typ] = append(reasons[typ], reason)
	}

	var recs []Recommendation
	for typ, score := range scores {
		if score <= r.floor {
			continue
		}
		if score > 1.0 {
			score = 1.0
		}
		recs = append(recs, Recommendation{
			Type:          typ,
			Confidence:    score,
			Justification: fmt.Sprintf("%s recommended: %s", typ, strings.Join(reasons[typ], "; ")),
			Properties:    typeProperties[typ],
			RelatedTypes:  relatedTypes[typ],
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Confidence != recs[j].Confidence {
			return recs[i].Confidence > recs[j].Confidence
		}
		return recs[i].Type < recs[j].Type
	})

	if len(recs) == 0 || recs[0].Confidence < r.defaultConfidence {
		fallback := TypeArticle
		if strings.Contains(lowerURL, "/blog") {
			fallback = TypeBlogPosting
		}
		recs = append([]Recommendation{{
			Type:          fallback,
			Confidence:    r.defaultConfidence,
			Justification: fmt.Sprintf("%s is the safe default for general content", fallback),
			Properties:    typeProperties[fallback],
			RelatedTypes:  relatedTypes[fallback],
		}}, recs...)
	}

	if len(recs) > r.maxResults {
		recs = recs[:r.maxResults]
	}

	r.log.Debug("schema recommendations",
		zap.Int("count", len(recs)),
		zap.String("top", recs[0].Type),
	)
	return recs
}

// featureScores runs every per-type feature scorer over the record.
func featureScores(f ContentFeatures) map[string]float64 {
	return map[string]float64{
		TypeRecipe:           scoreRecipe(f),
		TypeHowTo:            scoreHowTo(f),
		TypeProduct:          scoreProduct(f),
		TypeReview:           scoreReview(f),
		TypeEvent:            scoreEvent(f),
		TypeFAQPage:          scoreFAQ(f),
		TypeScholarlyArticle: scoreScholarly(f),
		TypeLocalBusiness:    scoreLocalBusiness(f),
	}
}

func scoreRecipe(f ContentFeatures) float64 {
	score := 0.0
	if f.HasIngredients {
		score += 0.3
	}
	if f.HasSteps {
		score += 0.2
	}
	if f.CookingVerbCount > 2 {
		score += 0.2
	}
	return score
}

func scoreHowTo(f ContentFeatures) float64 {
	score := 0.0
	if f.HasHowToTitle {
		score += 0.3
	}
	if f.HasSteps {
		score += 0.2
	}
	if f.SequentialCount >= 2 {
		score += 0.2
	}
	return score
}

func scoreProduct(f ContentFeatures) float64 {
	score := 0.0
	if f.HasPrice {
		score += 0.3
	}
	if f.HasRating {
		score += 0.1
	}
	if f.ImageCount > 2 {
		score += 0.1
	}
	return score
}

func scoreReview(f ContentFeatures) float64 {
	score := 0.0
	if f.HasRating {
		score += 0.2
	}
	if f.HasOpinionWords {
		score += 0.3
	}
	return score
}

func scoreEvent(f ContentFeatures) float64 {
	score := 0.0
	if f.HasDate {
		score += 0.2
	}
	if f.HasLocation {
		score += 0.2
	}
	return score
}

func scoreFAQ(f ContentFeatures) float64 {
	switch {
	case f.QuestionCount > 5:
		return 0.4
	case f.QuestionCount > 2:
		return 0.2
	default:
		return 0
	}
}

func scoreScholarly(f ContentFeatures) float64 {
	score := 0.0
	if f.HasCitations {
		score += 0.4
	}
	if f.WordCount > 2000 {
		score += 0.1
	}
	return score
}

func scoreLocalBusiness(f ContentFeatures) float64 {
	score := 0.0
	if f.HasLocation {
		score += 0.2
	}
	if f.HasPrice {
		score += 0.1
	}
	return score
}

// featureReason renders the features that fired for a type into the
// justification string.
func featureReason(typ string, f ContentFeatures) string {
	var parts []string
	switch typ {
	case TypeRecipe:
		if f.HasIngredients {
			parts = append(parts, "ingredient list detected")
		}
		if f.CookingVerbCount > 2 {
			parts = append(parts, "cooking vocabulary")
		}
	case TypeHowTo:
		if f.HasHowToTitle {
			parts = append(parts, "instructional title")
		}
		if f.HasSteps {
			parts = append(parts, "numbered steps")
		}
	case TypeProduct:
		if f.HasPrice {
			parts = append(parts, "pricing present")
		}
	case TypeReview:
		if f.HasOpinionWords {
			parts = append(parts, "opinionated language")
		}
		if f.HasRating {
			parts = append(parts, "rating present")
		}
	case TypeEvent:
		if f.HasDate && f.HasLocation {
			parts = append(parts, "date and venue present")
		}
	case TypeFAQPage:
		parts = append(parts, fmt.Sprintf("%d questions found", f.QuestionCount))
	case TypeScholarlyArticle:
		if f.HasCitations {
			parts = append(parts, "citations present")
		}
	case TypeLocalBusiness:
		if f.HasLocation {
			parts = append(parts, "location details present")
		}
	}
	if len(parts) == 0 {
		return "content features matched"
	}
	return strings.Join(parts, ", ")
}

// entityBonuses maps entity-type co-occurrence to type bonuses.
func entityBonuses(entities []entity.Entity) map[string]string {
	var hasProduct, hasOrg, hasPerson, hasLocation, hasEvent bool
	for _, e := range entities {
		switch e.Type {
		case entity.TypeProduct:
			hasProduct = true
		case entity.TypeOrganization, entity.TypeBrand:
			hasOrg = true
		case entity.TypePerson:
			hasPerson = true
		case entity.TypeLocation:
			hasLocation = true
		case entity.TypeEvent:
			hasEvent = true
		}
	}

	bonuses := make(map[string]string)
	if hasProduct && hasOrg {
		bonuses[TypeProduct] = "product and organization entities co-occur"
	}
	if hasProduct && hasPerson {
		bonuses[TypeReview] = "product and person entities co-occur"
	}
	if hasEvent && hasLocation {
		bonuses[TypeEvent] = "event and location entities co-occur"
	}
	if hasOrg && hasLocation {
		bonuses[TypeLocalBusiness] = "organization and location entities co-occur"
	}
	return bonuses
}

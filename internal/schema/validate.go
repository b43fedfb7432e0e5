package schema

import "fmt"

// ValidationResult reports how well content supports a proposed type.
type ValidationResult struct {
	Type   string   `json:"type"`
	Score  float64  `json:"score"`
	Issues []string `json:"issues,omitempty"`
	Valid  bool     `json:"valid"`
}

// Validate re-scores a single proposed type against the feature record
// and reports concrete missing requirements. The verdict requires both
// zero issues and a score above the recommendation floor.
func (r *Recommender) Validate(proposedType, content, title string) ValidationResult {
	features := ExtractFeatures(content, title)
	score := featureScores(features)[proposedType]

	var issues []string
	switch proposedType {
	case TypeRecipe:
		if !features.HasIngredients {
			issues = append(issues, "Recipe requires an ingredient list")
		}
		if !features.HasSteps {
			issues = append(issues, "Recipe requires preparation steps")
		}
	case TypeHowTo:
		if !features.HasSteps && features.SequentialCount < 2 {
			issues = append(issues, "HowTo requires step-by-step instructions")
		}
	case TypeProduct:
		if !features.HasPrice {
			issues = append(issues, "Product should carry pricing or offer details")
		}
	case TypeReview:
		if !features.HasRating && !features.HasOpinionWords {
			issues = append(issues, "Review requires a rating or evaluative language")
		}
	case TypeEvent:
		if !features.HasDate {
			issues = append(issues, "Event requires a date")
		}
		if !features.HasLocation {
			issues = append(issues, "Event requires a location")
		}
	case TypeFAQPage:
		if features.QuestionCount < 2 {
			issues = append(issues, "FAQPage requires at least two questions")
		}
	case TypeScholarlyArticle:
		if !features.HasCitations {
			issues = append(issues, "ScholarlyArticle requires citations or references")
		}
	case TypeArticle, TypeBlogPosting:
		// General article types carry no structural requirements, but
		// near-empty content still fails.
		if features.WordCount < 50 {
			issues = append(issues, fmt.Sprintf("%s content is too short", proposedType))
		}
		score += 0.4
	default:
		issues = append(issues, fmt.Sprintf("unknown schema type %q", proposedType))
	}

	return ValidationResult{
		Type:   proposedType,
		Score:  score,
		Issues: issues,
		Valid:  len(issues) == 0 && score > r.floor,
	}
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/infrastructure/config"
)

func newTestRecommender() *Recommender {
	return NewRecommender(config.Default().Schema, nil)
}

const recipeContent = `Ingredients: 2 cups flour, 3 tablespoons butter, 1 teaspoon salt.
Step 1: Preheat the oven. Step 2: Whisk the batter. Step 3: Bake until golden.
Simmer the sauce while you chop the herbs.`

// TestRecommendRecipe verifies recipe signals rank Recipe on top.
func TestRecommendRecipe(t *testing.T) {
	r := newTestRecommender()

	recs := r.Recommend(recipeContent, "Grandma's Biscuit Recipe", "https://food.example.com/recipes/biscuits", nil)
	require.NotEmpty(t, recs)
	assert.Equal(t, TypeRecipe, recs[0].Type)
	assert.Greater(t, recs[0].Confidence, 0.5)
	assert.NotEmpty(t, recs[0].Justification)
	assert.NotEmpty(t, recs[0].Properties)
}

func TestRecommendCapsAtThree(t *testing.T) {
	r := newTestRecommender()

	recs := r.Recommend(recipeContent, "How to Bake: Step-by-Step Recipe Guide", "https://food.example.com/recipes/guide", nil)
	assert.LessOrEqual(t, len(recs), 3)
}

// TestRecommendFallback verifies thin signals get the Article default
// injected at the top with the default confidence.
func TestRecommendFallback(t *testing.T) {
	r := newTestRecommender()

	recs := r.Recommend("Some plain narrative paragraph about nothing in particular.", "A Quiet Afternoon", "https://example.com/essays/afternoon", nil)
	require.NotEmpty(t, recs)
	assert.Equal(t, TypeArticle, recs[0].Type)
	assert.InDelta(t, 0.5, recs[0].Confidence, 0.001)
}

func TestRecommendFallbackBlogURL(t *testing.T) {
	r := newTestRecommender()

	recs := r.Recommend("Some plain narrative paragraph about nothing in particular.", "A Quiet Afternoon", "https://example.com/blog/afternoon", nil)
	require.NotEmpty(t, recs)
	assert.Equal(t, TypeBlogPosting, recs[0].Type)
}

func TestRecommendURLHint(t *testing.T) {
	r := newTestRecommender()

	plain := r.Recommend("We tested the new trail shoe. I recommend it. The verdict is in, and the rating is 4 out of 5 stars.", "Trail Shoe Verdict", "https://example.com/posts/shoe", nil)
	hinted := r.Recommend("We tested the new trail shoe. I recommend it. The verdict is in, and the rating is 4 out of 5 stars.", "Trail Shoe Verdict", "https://example.com/reviews/shoe", nil)

	scoreOf := func(recs []Recommendation, typ string) float64 {
		for _, rec := range recs {
			if rec.Type == typ {
				return rec.Confidence
			}
		}
		return 0
	}
	assert.Greater(t, scoreOf(hinted, TypeReview), scoreOf(plain, TypeReview))
}

func TestRecommendEntityBonus(t *testing.T) {
	r := newTestRecommender()
	entities := []entity.Entity{
		{Name: "TrailMaster 3000", Type: entity.TypeProduct, Confidence: 0.9},
		{Name: "Acme Outdoors", Type: entity.TypeOrganization, Confidence: 0.9},
	}

	content := "The TrailMaster 3000 sells at a price of $129. Rated 4 out of 5 stars by buyers."
	with := r.Recommend(content, "TrailMaster 3000", "https://example.com/gear", entities)
	without := r.Recommend(content, "TrailMaster 3000", "https://example.com/gear", nil)

	scoreOf := func(recs []Recommendation, typ string) float64 {
		for _, rec := range recs {
			if rec.Type == typ {
				return rec.Confidence
			}
		}
		return 0
	}
	assert.Greater(t, scoreOf(with, TypeProduct), scoreOf(without, TypeProduct))
}

func TestRecommendSortedByConfidence(t *testing.T) {
	r := newTestRecommender()

	recs := r.Recommend(recipeContent, "Biscuit Recipe", "https://food.example.com/recipes/biscuits", nil)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Confidence, recs[i].Confidence)
	}
	for _, rec := range recs {
		assert.LessOrEqual(t, rec.Confidence, 1.0)
	}
}

// TestValidateRecipeMissingIngredients verifies validation reports the
// concrete missing requirement.
func TestValidateRecipeMissingIngredients(t *testing.T) {
	r := newTestRecommender()

	result := r.Validate(TypeRecipe, "Step 1: Do the thing. Step 2: Do the next thing.", "A Procedure")
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "ingredient")
}

func TestValidateRecipeComplete(t *testing.T) {
	r := newTestRecommender()

	result := r.Validate(TypeRecipe, recipeContent, "Biscuit Recipe")
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
	assert.Greater(t, result.Score, 0.3)
}

func TestValidateArticleShortContent(t *testing.T) {
	r := newTestRecommender()

	result := r.Validate(TypeArticle, "Too short.", "Stub")
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Issues)
}

func TestValidateUnknownType(t *testing.T) {
	r := newTestRecommender()

	result := r.Validate("Nonsense", "any content at all", "Title")
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Issues)
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bongTitle = "How to Clean a Bong: Step-by-Step Guide"
const bongContent = "Cleaning glass is easy. Step 1: Rinse with water. Step 2: Add alcohol. Step 3: Shake and repeat."

// TestIsRealHowToContent verifies the gate: how-to title plus at least
// two distinct sequential indicators.
func TestIsRealHowToContent(t *testing.T) {
	assert.True(t, IsRealHowToContent(bongTitle, bongContent, 2))

	// How-to title over plain prose does not qualify.
	assert.False(t, IsRealHowToContent(bongTitle, "Glass pipes deserve gentle care and regular attention.", 2))

	// Sequential content without an instructional title does not qualify.
	assert.False(t, IsRealHowToContent("Glass Pipe Maintenance Notes", bongContent, 2))
}

func TestDistinctSequentialIndicators(t *testing.T) {
	assert.Equal(t, 3, distinctSequentialIndicators("Step 1: a. Step 2: b. Step 3: c."))
	assert.Equal(t, 2, distinctSequentialIndicators("First do this, then do that."))
	assert.Equal(t, 0, distinctSequentialIndicators("plain prose with no ordering"))
	// Repeating the same marker does not inflate the count.
	assert.Equal(t, 1, distinctSequentialIndicators("Step 1 once. Step 1 again."))
}

// TestExtractStepsNumbered verifies numbered steps are extracted in
// order with text populated.
func TestExtractStepsNumbered(t *testing.T) {
	steps := ExtractSteps(bongContent, 15)
	require.Len(t, steps, 3)

	assert.Equal(t, "HowToStep", steps[0].Type)
	assert.Equal(t, 1, steps[0].Position)
	assert.Equal(t, "Rinse with water.", steps[0].Text)
	assert.Equal(t, "Add alcohol.", steps[1].Text)
	assert.Equal(t, "Shake and repeat.", steps[2].Text)
}

func TestExtractStepsListItems(t *testing.T) {
	content := "Preparation:\n1. Gather all materials\n2. Clear the workspace\n3. Begin assembly"
	steps := ExtractSteps(content, 15)
	require.Len(t, steps, 3)
	assert.Equal(t, "Gather all materials", steps[0].Text)
}

func TestExtractStepsSequentialFallback(t *testing.T) {
	content := "First, soak the parts in warm water. Then scrub every surface carefully. Finally rinse and dry them fully."
	steps := ExtractSteps(content, 15)
	require.NotEmpty(t, steps)
	assert.Contains(t, steps[0].Text, "soak the parts")
}

func TestExtractStepsDeduplicates(t *testing.T) {
	content := "Step 1: Rinse with water. Step 2: Rinse with water. Step 3: Dry it off."
	steps := ExtractSteps(content, 15)
	require.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].Position)
	assert.Equal(t, 2, steps[1].Position)
}

func TestExtractStepsCapped(t *testing.T) {
	content := "Step 1: a one. Step 2: a two. Step 3: a three. Step 4: a four. Step 5: a five."
	steps := ExtractSteps(content, 3)
	assert.Len(t, steps, 3)
}

func TestIsInstructionalContent(t *testing.T) {
	assert.True(t, IsInstructionalContent("How to Train for a Marathon", ""))
	assert.True(t, IsInstructionalContent("Complete Training Guide", ""))
	assert.True(t, IsInstructionalContent("Weekly Update", "You will learn the basics of pacing."))
	assert.False(t, IsInstructionalContent("Weekly Update", "Race results from the weekend."))
}

func TestExtractLearningOutcomes(t *testing.T) {
	content := "You will learn how to pace long runs. Readers also learn how to pace long runs. " +
		"You will understand the role of recovery days. Discover the science of VO2 max improvement."

	outcomes := ExtractLearningOutcomes(content, 5)
	require.NotEmpty(t, outcomes)
	assert.LessOrEqual(t, len(outcomes), 5)

	seen := make(map[string]bool)
	for _, o := range outcomes {
		assert.False(t, seen[o], "duplicate outcome %q", o)
		seen[o] = true
	}
}

func TestExtractLearningOutcomesCapped(t *testing.T) {
	content := "Learn about alpha topics. Learn about beta topics. Learn about gamma topics. " +
		"Learn about delta topics. Learn about epsilon topics. Learn about zeta topics."
	outcomes := ExtractLearningOutcomes(content, 5)
	assert.Len(t, outcomes, 5)
}

// Package schema scores candidate Schema.org types for content and
// assembles the final JSON-LD document from the pipeline's signals.
package schema

import (
	"regexp"
	"strings"
)

// ContentFeatures is the fixed feature record the per-type scorers
// operate on. Each field is derived by an independent regex or count
// check over the raw content and title.
type ContentFeatures struct {
	HasIngredients   bool    `json:"hasIngredients"`
	HasSteps         bool    `json:"hasSteps"`
	HasPrice         bool    `json:"hasPrice"`
	HasRating        bool    `json:"hasRating"`
	HasDate          bool    `json:"hasDate"`
	HasLocation      bool    `json:"hasLocation"`
	HasHowToTitle    bool    `json:"hasHowToTitle"`
	HasOpinionWords  bool    `json:"hasOpinionWords"`
	HasCitations     bool    `json:"hasCitations"`
	QuestionCount    int     `json:"questionCount"`
	ImageCount       int     `json:"imageCount"`
	LinkDensity      float64 `json:"linkDensity"`
	WordCount        int     `json:"wordCount"`
	SequentialCount  int     `json:"sequentialCount"`
	CookingVerbCount int     `json:"cookingVerbCount"`
}

var (
	ingredientsRe = regexp.MustCompile(`(?i)\bingredients?\b|\bcups?\b|\btablespoons?\b|\bteaspoons?\b|\bgrams?\s+of\b`)
	stepsRe       = regexp.MustCompile(`(?i)\bstep\s*\d+\b|^\s*\d+[.)]\s+\w`)
	priceRe       = regexp.MustCompile(`[$\x{20AC}\x{00A3}]\s?\d|\b\d+(?:\.\d{2})?\s?(?:USD|EUR|GBP)\b|\bprice\b`)
	ratingRe      = regexp.MustCompile(`(?i)\b\d(?:\.\d)?\s*(?:out\s+of|/)\s*5\b|\bstars?\b|\brating\b`)
	dateRe        = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}\b|\b\d{4}-\d{2}-\d{2}\b`)
	locationRe    = regexp.MustCompile(`(?i)\bvenue\b|\blocation\b|\baddress\b|\bdirections\b`)
	howToTitleRe  = regexp.MustCompile(`(?i)\bhow\s+to\b|\bguide\b|\btutorial\b|\bstep[\s-]by[\s-]step\b`)
	opinionRe     = regexp.MustCompile(`(?i)\bi\s+(?:think|recommend|tested|tried|loved|hated)\b|\bverdict\b|\bpros\s+and\s+cons\b`)
	citationsRe   = regexp.MustCompile(`(?i)\bet\s+al\.?\b|\breferences\b|\bdoi:\s?\S+|\babstract\b|\bmethodology\b`)
	questionRe    = regexp.MustCompile(`(?m)^[^?\n]{5,120}\?\s*$|\?(?:\s|$)`)
	imageTagRe    = regexp.MustCompile(`(?i)<img\b`)
	linkTagRe     = regexp.MustCompile(`(?i)<a\b`)
	sequentialRe  = regexp.MustCompile(`(?i)\bstep\s*\d+\b|\bfirst(?:ly)?\b|\bsecond(?:ly)?\b|\bthen\b|\bnext\b|\bfinally\b|\bafterwards?\b`)
	cookingVerbRe = regexp.MustCompile(`(?i)\bpreheat\b|\bbake\b|\bsimmer\b|\bwhisk\b|\bchop\b|\bmarinate\b|\bsaut\x{00E9}\b`)
)

// ExtractFeatures derives the feature record from content and title.
func ExtractFeatures(content, title string) ContentFeatures {
	combined := title + "\n" + content
	words := len(strings.Fields(content))

	linkDensity := 0.0
	if words > 0 {
		linkDensity = float64(len(linkTagRe.FindAllString(content, -1))) / float64(words)
	}

	return ContentFeatures{
		HasIngredients:   ingredientsRe.MatchString(combined),
		HasSteps:         stepsRe.MatchString(combined),
		HasPrice:         priceRe.MatchString(combined),
		HasRating:        ratingRe.MatchString(combined),
		HasDate:          dateRe.MatchString(combined),
		HasLocation:      locationRe.MatchString(combined),
		HasHowToTitle:    howToTitleRe.MatchString(title),
		HasOpinionWords:  opinionRe.MatchString(combined),
		HasCitations:     citationsRe.MatchString(combined),
		QuestionCount:    len(questionRe.FindAllString(combined, -1)),
		ImageCount:       len(imageTagRe.FindAllString(content, -1)),
		LinkDensity:      linkDensity,
		WordCount:        words,
		SequentialCount:  distinctSequentialIndicators(combined),
		CookingVerbCount: len(cookingVerbRe.FindAllString(combined, -1)),
	}
}

var stepMarkerRe = regexp.MustCompile(`(?i)\bstep\s*\d+\b|(?m)^\s*\d+[.)]\s`)

// distinctSequentialIndicators counts distinct sequential-language
// indicators, not raw matches: each distinct step marker ("Step 1",
// "Step 2") counts once, and each ordering word counts once.
func distinctSequentialIndicators(text string) int {
	lower := strings.ToLower(text)

	markers := make(map[string]bool)
	for _, m := range stepMarkerRe.FindAllString(lower, -1) {
		markers[strings.Join(strings.Fields(m), " ")] = true
	}

	count := len(markers)
	for _, word := range []string{"first", "then", "next", "finally", "afterwards"} {
		if strings.Contains(lower, word) {
			count++
		}
	}
	return count
}

package schema

import "regexp"

// Candidate Schema.org types the recommender scores.
const (
	TypeRecipe           = "Recipe"
	TypeHowTo            = "HowTo"
	TypeProduct          = "Product"
	TypeReview           = "Review"
	TypeEvent            = "Event"
	TypeFAQPage          = "FAQPage"
	TypeArticle          = "Article"
	TypeBlogPosting      = "BlogPosting"
	TypeScholarlyArticle = "ScholarlyArticle"
	TypeLocalBusiness    = "LocalBusiness"
)

// Per-type content patterns. Each match contributes patternHitScore,
// capped at patternScoreCap per type. Tables are named constants so each
// family can be tested alone.
var (
	RecipePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bingredients?\b`),
		regexp.MustCompile(`(?i)\bpreheat\b|\boven\b`),
		regexp.MustCompile(`(?i)\bservings?\b|\byield\b`),
		regexp.MustCompile(`(?i)\bprep\s+time\b|\bcook\s+time\b`),
	}
	HowToPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bhow\s+to\b`),
		regexp.MustCompile(`(?i)\bstep\s*\d+\b`),
		regexp.MustCompile(`(?i)\byou\s+will\s+need\b|\brequired\s+tools\b`),
		regexp.MustCompile(`(?i)\bfollow\s+these\b|\binstructions\b`),
	}
	ProductPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\badd\s+to\s+cart\b|\bbuy\s+now\b`),
		regexp.MustCompile(`(?i)\bin\s+stock\b|\bfree\s+shipping\b`),
		regexp.MustCompile(`(?i)\bwarranty\b|\bspecifications\b`),
		regexp.MustCompile(`(?i)\bsku\b|\bmodel\s+number\b`),
	}
	ReviewPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\breview\b`),
		regexp.MustCompile(`(?i)\bpros\b|\bcons\b`),
		regexp.MustCompile(`(?i)\bverdict\b|\bbottom\s+line\b`),
		regexp.MustCompile(`(?i)\bstars?\b|\brating\b`),
	}
	EventPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\btickets?\b|\bregister\b|\brsvp\b`),
		regexp.MustCompile(`(?i)\bvenue\b|\bdoors\s+open\b`),
		regexp.MustCompile(`(?i)\bschedule\b|\bagenda\b|\blineup\b`),
	}
	FAQPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bfrequently\s+asked\b|\bfaq\b`),
		regexp.MustCompile(`(?i)\bq:\s|\ba:\s`),
		regexp.MustCompile(`(?i)\bcommon\s+questions?\b`),
	}
	ScholarlyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\babstract\b`),
		regexp.MustCompile(`(?i)\bmethodology\b|\bmethods\b`),
		regexp.MustCompile(`(?i)\bet\s+al\.?\b|\breferences\b`),
		regexp.MustCompile(`(?i)\bpeer[\s-]reviewed\b|\bjournal\b`),
	}
	LocalBusinessPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bopening\s+hours\b|\bhours\s+of\s+operation\b`),
		regexp.MustCompile(`(?i)\bvisit\s+us\b|\bour\s+location\b`),
		regexp.MustCompile(`(?i)\bcall\s+us\b|\bbook\s+an?\s+appointment\b`),
	}
)

var typePatterns = map[string][]*regexp.Regexp{
	TypeRecipe:           RecipePatterns,
	TypeHowTo:            HowToPatterns,
	TypeProduct:          ProductPatterns,
	TypeReview:           ReviewPatterns,
	TypeEvent:            EventPatterns,
	TypeFAQPage:          FAQPatterns,
	TypeScholarlyArticle: ScholarlyPatterns,
	TypeLocalBusiness:    LocalBusinessPatterns,
}

// urlHints map URL path substrings to the types they boost.
var urlHints = map[string][]string{
	"/recipe":   {TypeRecipe},
	"/recipes":  {TypeRecipe},
	"/how-to":   {TypeHowTo},
	"/howto":    {TypeHowTo},
	"/guide":    {TypeHowTo},
	"/review":   {TypeReview},
	"/reviews":  {TypeReview},
	"/product":  {TypeProduct},
	"/shop":     {TypeProduct},
	"/store":    {TypeProduct},
	"/event":    {TypeEvent},
	"/events":   {TypeEvent},
	"/faq":      {TypeFAQPage},
	"/blog":     {TypeBlogPosting},
	"/news":     {TypeArticle},
	"/research": {TypeScholarlyArticle},
}

// typeProperties is the static per-type suggested property table.
var typeProperties = map[string][]string{
	TypeRecipe:           {"name", "recipeIngredient", "recipeInstructions", "cookTime", "prepTime", "recipeYield", "nutrition"},
	TypeHowTo:            {"name", "step", "totalTime", "tool", "supply", "estimatedCost"},
	TypeProduct:          {"name", "offers", "brand", "aggregateRating", "sku", "image"},
	TypeReview:           {"itemReviewed", "reviewRating", "author", "reviewBody", "datePublished"},
	TypeEvent:            {"name", "startDate", "endDate", "location", "offers", "performer"},
	TypeFAQPage:          {"mainEntity"},
	TypeArticle:          {"headline", "author", "datePublished", "publisher", "image", "articleBody"},
	TypeBlogPosting:      {"headline", "author", "datePublished", "publisher", "keywords"},
	TypeScholarlyArticle: {"headline", "author", "datePublished", "citation", "about"},
	TypeLocalBusiness:    {"name", "address", "telephone", "openingHours", "geo"},
}

// relatedTypes is the static per-type related-type table.
var relatedTypes = map[string][]string{
	TypeRecipe:           {TypeHowTo, TypeArticle},
	TypeHowTo:            {TypeArticle, TypeRecipe},
	TypeProduct:          {TypeReview, "Offer"},
	TypeReview:           {TypeProduct, TypeArticle},
	TypeEvent:            {"Place", "Offer"},
	TypeFAQPage:          {"Question", "Answer"},
	TypeArticle:          {TypeBlogPosting, "NewsArticle"},
	TypeBlogPosting:      {TypeArticle, "WebPage"},
	TypeScholarlyArticle: {TypeArticle, "Dataset"},
	TypeLocalBusiness:    {"Organization", "Place"},
}

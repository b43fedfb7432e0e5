package schema

import "github.com/schemascribe/backend/internal/shared/textutil"

// knownReferenceLinks is a static allow-list of external knowledge URIs,
// keyed by normalized entity name. Links are never synthesized from
// names; an entity absent from this table gets no sameAs, which beats
// linking to a reference page that does not exist.
var knownReferenceLinks = map[string][]string{
	"vo2 max": {
		"https://en.wikipedia.org/wiki/VO2_max",
		"https://www.wikidata.org/wiki/Q917198",
	},
	"hiit": {
		"https://en.wikipedia.org/wiki/High-intensity_interval_training",
	},
	"high-intensity interval training": {
		"https://en.wikipedia.org/wiki/High-intensity_interval_training",
	},
	"cbd": {
		"https://en.wikipedia.org/wiki/Cannabidiol",
		"https://www.wikidata.org/wiki/Q422917",
	},
	"thc": {
		"https://en.wikipedia.org/wiki/Tetrahydrocannabinol",
	},
	"machine learning": {
		"https://en.wikipedia.org/wiki/Machine_learning",
		"https://www.wikidata.org/wiki/Q2539",
	},
	"artificial intelligence": {
		"https://en.wikipedia.org/wiki/Artificial_intelligence",
		"https://www.wikidata.org/wiki/Q11660",
	},
	"kubernetes": {
		"https://en.wikipedia.org/wiki/Kubernetes",
	},
	"blockchain": {
		"https://en.wikipedia.org/wiki/Blockchain",
	},
	"invisalign": {
		"https://en.wikipedia.org/wiki/Clear_aligners",
	},
	"strength training": {
		"https://en.wikipedia.org/wiki/Strength_training",
	},
	"cardio": {
		"https://en.wikipedia.org/wiki/Aerobic_exercise",
	},
	"refinance": {
		"https://en.wikipedia.org/wiki/Refinancing",
	},
}

// ReferenceLinksFor returns the allow-listed sameAs URIs for an entity
// name, or nil.
func ReferenceLinksFor(name string) []string {
	return knownReferenceLinks[textutil.NormalizeName(name)]
}

package graph

import (
	"regexp"
	"strings"

	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/shared/textutil"
)

// relationFamily binds a relation label to the verb patterns that signal
// it. Each pattern must capture two groups: the source phrase and the
// target phrase. Tables are named constants so each family can be tested
// in isolation.
type relationFamily struct {
	relation Relation
	patterns []*regexp.Regexp
	weight   float64
}

const phrase = `([A-Za-z][A-Za-z0-9' -]{1,50}?)`

var (
	// IsPartOfPatterns signal containment of the first phrase in the second.
	IsPartOfPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + phrase + `\s+is\s+(?:a\s+)?part\s+of\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+belongs\s+to\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+is\s+a\s+component\s+of\s+` + phrase),
	}

	// HasPropertyPatterns signal attribution.
	HasPropertyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + phrase + `\s+has\s+(?:a\s+|an\s+)?` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+features\s+` + phrase),
	}

	// RelatedToPatterns signal generic association.
	RelatedToPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + phrase + `\s+is\s+related\s+to\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+is\s+associated\s+with\s+` + phrase),
	}

	// CausedByPatterns signal causation.
	CausedByPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + phrase + `\s+is\s+caused\s+by\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+results\s+from\s+` + phrase),
	}

	// UsedForPatterns signal purpose.
	UsedForPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + phrase + `\s+is\s+used\s+(?:for|to)\s+` + phrase),
		regexp.MustCompile(`(?i)use\s+` + phrase + `\s+(?:for|to)\s+` + phrase),
	}

	// LocatedInPatterns signal location.
	LocatedInPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + phrase + `\s+is\s+located\s+in\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+is\s+based\s+in\s+` + phrase),
	}

	// ProducesPatterns signal production.
	ProducesPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + phrase + `\s+produces\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+creates\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+generates\s+` + phrase),
	}

	// RequiresPatterns signal dependency.
	RequiresPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + phrase + `\s+requires\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+depends\s+on\s+` + phrase),
		regexp.MustCompile(`(?i)` + phrase + `\s+needs\s+` + phrase),
	}
)

var relationFamilies = []relationFamily{
	{RelIsPartOf, IsPartOfPatterns, 0.8},
	{RelHasProperty, HasPropertyPatterns, 0.7},
	{RelRelatedTo, RelatedToPatterns, 0.6},
	{RelCausedBy, CausedByPatterns, 0.8},
	{RelUsedFor, UsedForPatterns, 0.7},
	{RelLocatedIn, LocatedInPatterns, 0.8},
	{RelProduces, ProducesPatterns, 0.7},
	{RelRequires, RequiresPatterns, 0.7},
}

// typeHierarchy maps a parent entity type to the child types it may
// contain.
var typeHierarchy = map[entity.Type][]entity.Type{
	entity.TypeOrganization: {entity.TypeProduct, entity.TypeService, entity.TypeBrand, entity.TypePerson},
	entity.TypeConcept:      {entity.TypeConcept},
	entity.TypeProduct:      {entity.TypeMaterial},
	entity.TypeFitness:      {entity.TypeFitness},
	entity.TypeMedical:      {entity.TypeMedical},
}

// patternRelations extracts relations via the verb-pattern families. Both
// captured phrases must resolve to known entity names: exact match first,
// then substring containment in either direction.
func (b *Builder) patternRelations(g *Graph, content string, names map[string]string) {
	for _, fam := range relationFamilies {
		for _, re := range fam.patterns {
			for _, m := range re.FindAllStringSubmatch(content, -1) {
				if len(m) < 3 {
					continue
				}
				src := resolveName(m[1], names)
				dst := resolveName(m[2], names)
				if src == "" || dst == "" || src == dst {
					continue
				}
				g.AddEdge(src, dst, fam.relation, fam.weight)
			}
		}
	}
}

// resolveName maps a captured phrase to a known node id: exact normalized
// match first, then substring containment in either direction.
func resolveName(captured string, names map[string]string) string {
	key := textutil.NormalizeName(captured)
	if key == "" {
		return ""
	}
	if id, ok := names[key]; ok {
		return id
	}
	for known, id := range names {
		if strings.Contains(key, known) || strings.Contains(known, key) {
			return id
		}
	}
	return ""
}

// cooccurrenceBase is the strength of a pair's first shared sentence;
// each additional shared sentence adds the configured step.
const cooccurrenceBase = 0.3

// cooccurrenceRelations strengthens a relatedTo edge for every pair of
// entities sharing a sentence; only pairs above the retention floor keep
// their edge.
func (b *Builder) cooccurrenceRelations(g *Graph, content string, names map[string]string) {
	type pair struct{ a, b string }
	strength := make(map[pair]float64)

	for _, sentence := range textutil.SplitSentences(content) {
		lower := strings.ToLower(sentence)

		var present []string
		for known, id := range names {
			if strings.Contains(lower, known) {
				present = append(present, id)
			}
		}

		for i := 0; i < len(present); i++ {
			for j := i + 1; j < len(present); j++ {
				a, bID := present[i], present[j]
				if a > bID {
					a, bID = bID, a
				}
				p := pair{a, bID}
				if _, seen := strength[p]; !seen {
					strength[p] = cooccurrenceBase
				} else {
					strength[p] += b.cooccurrenceStep
				}
				if strength[p] > 1.0 {
					strength[p] = 1.0
				}
			}
		}
	}

	for p, s := range strength {
		if s > b.cooccurrenceFloor {
			g.AddEdge(p.a, p.b, RelRelatedTo, s)
		}
	}
}

// hierarchyRelations adds contains edges between entities whose types
// match the parent/child table, skipping pairs already connected.
func (b *Builder) hierarchyRelations(g *Graph, entities []entity.Entity) {
	for _, parent := range entities {
		children, ok := typeHierarchy[parent.Type]
		if !ok {
			continue
		}
		parentID := NodeID(parent.Name)
		for _, child := range entities {
			if parent.Name == child.Name {
				continue
			}
			if !containsType(children, child.Type) {
				continue
			}
			childID := NodeID(child.Name)
			if g.HasEdgeBetween(parentID, childID) {
				continue
			}
			g.AddEdge(parentID, childID, RelContains, b.hierarchyConfidence)
		}
	}
}

func containsType(types []entity.Type, t entity.Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

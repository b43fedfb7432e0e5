package graph

import (
	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/infrastructure/config"
	"github.com/schemascribe/backend/internal/logging"
	"github.com/schemascribe/backend/internal/shared/textutil"
	"go.uber.org/zap"
)

// Builder constructs knowledge graphs. Each Build call starts from
// scratch; no state carries over between calls.
type Builder struct {
	damping             float64
	rankIterations      int
	cooccurrenceFloor   float64
	cooccurrenceStep    float64
	hierarchyConfidence float64
	ontologyWeight      float64
	ontologies          map[string]Ontology
	log                 *logging.Logger
}

// NewBuilder creates a graph builder. A nil ontology map gets
// DefaultOntologies.
func NewBuilder(cfg config.GraphConfig, ontologies map[string]Ontology, log *logging.Logger) *Builder {
	if ontologies == nil {
		ontologies = DefaultOntologies()
	}
	return &Builder{
		damping:             cfg.Damping,
		rankIterations:      cfg.RankIterations,
		cooccurrenceFloor:   cfg.CooccurrenceFloor,
		cooccurrenceStep:    cfg.CooccurrenceStep,
		hierarchyConfidence: cfg.HierarchyConfidence,
		ontologyWeight:      cfg.OntologyWeight,
		ontologies:          ontologies,
		log:                 logging.OrNop(log).Named("graph"),
	}
}

// Build links the entities found in content into a weighted graph,
// ranks node importance, and computes clusters. domain optionally selects
// an ontology overlay.
func (b *Builder) Build(entities []entity.Entity, content, domain string) *Graph {
	g := NewGraph()

	names := make(map[string]string, len(entities))
	for _, e := range entities {
		if node := g.AddNode(e); node != nil {
			names[textutil.NormalizeName(e.Name)] = node.ID
		}
	}

	b.patternRelations(g, content, names)
	b.cooccurrenceRelations(g, content, names)
	b.hierarchyRelations(g, entities)
	b.ontologyOverlay(g, entities, domain)

	b.rank(g)
	g.Clusters = clusterComponents(g)

	b.log.Debug("graph built",
		zap.Int("nodes", len(g.Nodes)),
		zap.Int("edges", len(g.Edges)),
		zap.Int("clusters", len(g.Clusters)),
	)
	return g
}

// Ontology describes domain-specific parent/child type pairs that gain
// hierarchical edges.
type Ontology struct {
	Domain      string
	ParentTypes []entity.Type
	ChildTypes  []entity.Type
}

// DefaultOntologies returns the built-in domain overlays.
func DefaultOntologies() map[string]Ontology {
	return map[string]Ontology{
		"fitness": {
			Domain:      "fitness",
			ParentTypes: []entity.Type{entity.TypeConcept, entity.TypeFitness},
			ChildTypes:  []entity.Type{entity.TypeFitness},
		},
		"health": {
			Domain:      "health",
			ParentTypes: []entity.Type{entity.TypeMedical, entity.TypeConcept},
			ChildTypes:  []entity.Type{entity.TypeMedical},
		},
		"technology": {
			Domain:      "technology",
			ParentTypes: []entity.Type{entity.TypeTechnology, entity.TypeOrganization},
			ChildTypes:  []entity.Type{entity.TypeTechnology, entity.TypeProduct},
		},
	}
}

// ontologyOverlay adds hierarchical edges between node pairs whose types
// satisfy the domain ontology's parent/child lists.
func (b *Builder) ontologyOverlay(g *Graph, entities []entity.Entity, domain string) {
	ont, ok := b.ontologies[domain]
	if !ok {
		return
	}

	for _, parent := range entities {
		if !containsType(ont.ParentTypes, parent.Type) {
			continue
		}
		for _, child := range entities {
			if parent.Name == child.Name || !containsType(ont.ChildTypes, child.Type) {
				continue
			}
			g.AddEdge(NodeID(parent.Name), NodeID(child.Name), RelHierarchical, b.ontologyWeight)
		}
	}
}

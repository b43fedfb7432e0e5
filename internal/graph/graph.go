// Package graph links entities into a weighted knowledge graph, ranks
// node importance, clusters connected components, and answers path and
// neighborhood queries.
package graph

import (
	"github.com/schemascribe/backend/internal/entity"
	"github.com/schemascribe/backend/internal/shared/textutil"
)

// Relation labels form a closed set, except dependency extraction which
// may carry a free-text verb.
type Relation string

const (
	RelIsPartOf     Relation = "isPartOf"
	RelHasProperty  Relation = "hasProperty"
	RelRelatedTo    Relation = "relatedTo"
	RelCausedBy     Relation = "causedBy"
	RelUsedFor      Relation = "usedFor"
	RelLocatedIn    Relation = "locatedIn"
	RelProduces     Relation = "produces"
	RelRequires     Relation = "requires"
	RelContains     Relation = "contains"
	RelHierarchical Relation = "hierarchical"
)

// Node wraps an entity with a mutable importance score.
type Node struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       entity.Type `json:"type"`
	Importance float64     `json:"importance"`
	Mentions   int         `json:"mentions"`
}

// Edge is an ordered (source, target) pair with a relation label and a
// weight in [0,1].
type Edge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Relation Relation `json:"relation"`
	Weight   float64  `json:"weight"`
}

// Key is the edge identity: source|relation|target.
func (e *Edge) Key() string {
	return e.Source + "|" + string(e.Relation) + "|" + e.Target
}

// Graph holds one build's nodes, edges, and clusters.
type Graph struct {
	Nodes    map[string]*Node    `json:"nodes"`
	Edges    map[string]*Edge    `json:"edges"`
	Clusters map[string][]string `json:"clusters"`
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes:    make(map[string]*Node),
		Edges:    make(map[string]*Edge),
		Clusters: make(map[string][]string),
	}
}

// NodeID derives the deterministic node id for an entity name.
func NodeID(name string) string {
	return textutil.Slugify(name)
}

// AddNode inserts or refreshes a node for the entity.
func (g *Graph) AddNode(e entity.Entity) *Node {
	id := NodeID(e.Name)
	if id == "" {
		return nil
	}
	if existing, ok := g.Nodes[id]; ok {
		existing.Mentions += e.Mentions
		return existing
	}
	node := &Node{
		ID:       id,
		Name:     e.Name,
		Type:     e.Type,
		Mentions: e.Mentions,
	}
	g.Nodes[id] = node
	return node
}

// AddEdge records an edge. Both endpoints must already exist as nodes;
// otherwise the edge is dropped silently. Re-observing the same
// (source, relation, target) triple raises the weight, capped at 1.0.
func (g *Graph) AddEdge(source, target string, rel Relation, weight float64) {
	if _, ok := g.Nodes[source]; !ok {
		return
	}
	if _, ok := g.Nodes[target]; !ok {
		return
	}
	if source == target {
		return
	}

	edge := &Edge{Source: source, Target: target, Relation: rel, Weight: weight}
	if existing, ok := g.Edges[edge.Key()]; ok {
		existing.Weight += 0.1
		if existing.Weight > 1.0 {
			existing.Weight = 1.0
		}
		return
	}
	if edge.Weight > 1.0 {
		edge.Weight = 1.0
	}
	g.Edges[edge.Key()] = edge
}

// HasEdgeBetween reports whether any edge connects a and b, in either
// direction.
func (g *Graph) HasEdgeBetween(a, b string) bool {
	for _, e := range g.Edges {
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return true
		}
	}
	return false
}

// neighbors returns the undirected adjacency of a node with edge weights.
func (g *Graph) neighbors(id string) map[string]float64 {
	adj := make(map[string]float64)
	for _, e := range g.Edges {
		switch id {
		case e.Source:
			if w, ok := adj[e.Target]; !ok || e.Weight > w {
				adj[e.Target] = e.Weight
			}
		case e.Target:
			if w, ok := adj[e.Source]; !ok || e.Weight > w {
				adj[e.Source] = e.Weight
			}
		}
	}
	return adj
}

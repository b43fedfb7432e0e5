package graph

import (
	"sort"
)

// JSONLDNode is one @graph entry in the exported document.
type JSONLDNode struct {
	ID              string       `json:"@id"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	Importance      float64      `json:"importance,omitempty"`
	PotentialAction []JSONLDLink `json:"potentialAction,omitempty"`
}

// JSONLDLink describes one outbound edge of a node.
type JSONLDLink struct {
	Type             string  `json:"@type"`
	Target           string  `json:"target"`
	RelationshipType string  `json:"relationshipType"`
	Weight           float64 `json:"weight"`
}

// JSONLDGraph is the @graph export envelope.
type JSONLDGraph struct {
	Context string       `json:"@context"`
	Graph   []JSONLDNode `json:"@graph"`
}

// ExportJSONLD serializes the graph as a Schema.org @graph document with
// each node's outbound edges rendered as potentialAction entries.
func (g *Graph) ExportJSONLD() *JSONLDGraph {
	outbound := make(map[string][]JSONLDLink)
	for _, e := range g.Edges {
		outbound[e.Source] = append(outbound[e.Source], JSONLDLink{
			Type:             "Action",
			Target:           "#" + e.Target,
			RelationshipType: string(e.Relation),
			Weight:           e.Weight,
		})
	}

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := make([]JSONLDNode, 0, len(ids))
	for _, id := range ids {
		node := g.Nodes[id]
		links := outbound[id]
		sort.Slice(links, func(i, j int) bool { return links[i].Target < links[j].Target })
		nodes = append(nodes, JSONLDNode{
			ID:              "#" + node.ID,
			Type:            "Thing",
			Name:            node.Name,
			Importance:      node.Importance,
			PotentialAction: links,
		})
	}

	return &JSONLDGraph{
		Context: "https://schema.org",
		Graph:   nodes,
	}
}

package graph

import (
	"fmt"
	"sort"
)

// clusterComponents finds maximal connected components over the edge set,
// treating edges as bidirectional. Traversal uses an explicit stack, not
// recursion, so large graphs cannot exhaust the call stack. Singleton
// components are discarded.
func clusterComponents(g *Graph) map[string][]string {
	visited := make(map[string]bool, len(g.Nodes))
	clusters := make(map[string][]string)
	clusterIdx := 0

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, start := range ids {
		if visited[start] {
			continue
		}

		var component []string
		stack := []string{start}
		visited[start] = true

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, current)

			for neighbor := range g.neighbors(current) {
				if !visited[neighbor] {
					visited[neighbor] = true
					stack = append(stack, neighbor)
				}
			}
		}

		if len(component) < 2 {
			continue
		}
		sort.Strings(component)
		clusters[fmt.Sprintf("cluster-%d", clusterIdx)] = component
		clusterIdx++
	}

	return clusters
}

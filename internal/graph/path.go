package graph

import (
	"container/heap"
	"math"
)

// Path is a shortest-path result: ordered node ids and total cost.
type Path struct {
	Nodes []string `json:"nodes"`
	Cost  float64  `json:"cost"`
}

// ShortestPath runs Dijkstra over the undirected graph with edge cost
// 1/weight, so higher-confidence edges are cheaper. Returns nil when
// either endpoint is absent or no path exists.
func (g *Graph) ShortestPath(from, to string) *Path {
	if _, ok := g.Nodes[from]; !ok {
		return nil
	}
	if _, ok := g.Nodes[to]; !ok {
		return nil
	}

	dist := make(map[string]float64, len(g.Nodes))
	prev := make(map[string]string, len(g.Nodes))
	for id := range g.Nodes {
		dist[id] = math.Inf(1)
	}
	dist[from] = 0

	pq := &nodeQueue{{id: from, cost: 0}}
	heap.Init(pq)
	done := make(map[string]bool, len(g.Nodes))

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*queueItem)
		if done[item.id] {
			continue
		}
		done[item.id] = true
		if item.id == to {
			break
		}

		for neighbor, weight := range g.neighbors(item.id) {
			if weight <= 0 {
				continue
			}
			cost := dist[item.id] + 1.0/weight
			if cost < dist[neighbor] {
				dist[neighbor] = cost
				prev[neighbor] = item.id
				heap.Push(pq, &queueItem{id: neighbor, cost: cost})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return nil
	}

	var nodes []string
	for at := to; ; {
		nodes = append([]string{at}, nodes...)
		if at == from {
			break
		}
		at = prev[at]
	}
	return &Path{Nodes: nodes, Cost: dist[to]}
}

// Neighborhood returns all node ids reachable from id within depth hops,
// excluding id itself. Returns nil when the node is absent.
func (g *Graph) Neighborhood(id string, depth int) []string {
	if _, ok := g.Nodes[id]; !ok {
		return nil
	}

	visited := map[string]bool{id: true}
	frontier := []string{id}
	var out []string

	for d := 0; d < depth && len(frontier) > 0; d++ {
		var next []string
		for _, current := range frontier {
			for neighbor := range g.neighbors(current) {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true
				out = append(out, neighbor)
				next = append(next, neighbor)
			}
		}
		frontier = next
	}
	return out
}

type queueItem struct {
	id   string
	cost float64
}

type nodeQueue []*queueItem

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*queueItem)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

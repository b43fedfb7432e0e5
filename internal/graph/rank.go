package graph

// rank assigns importance scores by damped redistribution: each node
// receives damping * sum of incoming neighbors' score/out-degree, weighted
// by edge weight. Runs the fixed iteration count with no convergence
// check, bounding latency deterministically. Out-degree is floored at 1.
func (b *Builder) rank(g *Graph) {
	n := len(g.Nodes)
	if n == 0 {
		return
	}

	scores := make(map[string]float64, n)
	uniform := 1.0 / float64(n)
	for id := range g.Nodes {
		scores[id] = uniform
	}

	outDegree := make(map[string]int, n)
	incoming := make(map[string][]*Edge, n)
	for _, e := range g.Edges {
		outDegree[e.Source]++
		incoming[e.Target] = append(incoming[e.Target], e)
	}

	base := (1.0 - b.damping) / float64(n)
	for i := 0; i < b.rankIterations; i++ {
		next := make(map[string]float64, n)
		for id := range g.Nodes {
			sum := 0.0
			for _, e := range incoming[id] {
				deg := outDegree[e.Source]
				if deg < 1 {
					deg = 1
				}
				sum += scores[e.Source] / float64(deg) * e.Weight
			}
			next[id] = base + b.damping*sum
		}

		// Renormalize so scores always sum to 1; weighted edges leak
		// mass otherwise.
		total := 0.0
		for _, s := range next {
			total += s
		}
		if total > 0 {
			for id := range next {
				next[id] /= total
			}
		}
		scores = next
	}

	for id, node := range g.Nodes {
		node.Importance = scores[id]
	}
}

package digraph

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
	"github.com/timtadh/sugrami/types/digraph/subgraph"
)

// Seeds builds a one edge pattern for every label triple observed in
// the graph, in schema order.
func (dt *Digraph) Seeds() ([]*Node, error) {
	return dt.SeedsFrom(dt.Indices.Schema)
}

// SeedsFrom builds a one edge pattern for each of the given triples
// in the order given.
func (dt *Digraph) SeedsFrom(types []digraph.Colors) ([]*Node, error) {
	seeds := make([]*Node, 0, len(types))
	for _, c := range types {
		b := subgraph.Build(2, 1, dt.Directed)
		u := b.AddVertex(c.SrcColor)
		v := b.AddVertex(c.TargColor)
		b.AddEdge(u, v, c.EdgeColor)
		pat, err := b.Build()
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, NewNode(dt, pat, nil))
	}
	return seeds, nil
}

package digraph

import (
	"fmt"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
	"github.com/timtadh/sugrami/types/digraph/subgraph"
)

// Node is a candidate pattern under consideration by a miner. The
// support computation is cached after the first call.
type Node struct {
	Dt          *Digraph
	Pat         *subgraph.SubGraph
	parent      *Node
	support     int
	embCount    int
	haveSupport bool
}

func NewNode(dt *Digraph, pat *subgraph.SubGraph, parent *Node) *Node {
	return &Node{
		Dt:     dt,
		Pat:    pat,
		parent: parent,
	}
}

// Level is the number of edges in the pattern.
func (n *Node) Level() int {
	return len(n.Pat.E)
}

// Parent is the pattern this node was generated from, nil for seeds.
// It records lineage only, a pattern reachable from several parents
// keeps its first generator.
func (n *Node) Parent() *Node {
	return n.parent
}

// Label is the pattern's canonical key.
func (n *Node) Label() []byte {
	return n.Pat.Label()
}

// Support computes (and caches) the minimum image support of the
// pattern in the graph.
func (n *Node) Support() (int, error) {
	if n.haveSupport {
		return n.support, nil
	}
	support, embs, err := n.Pat.MinImageSupport(n.Dt.Indices)
	if err != nil {
		return 0, err
	}
	n.support = support
	n.embCount = embs
	n.haveSupport = true
	return n.support, nil
}

// EmbeddingCount is the raw number of embeddings, it can exceed the
// support since many embeddings may reuse the same graph vertices.
func (n *Node) EmbeddingCount() (int, error) {
	if _, err := n.Support(); err != nil {
		return 0, err
	}
	return n.embCount, nil
}

// Embeddings materializes the pattern's embeddings in the graph.
func (n *Node) Embeddings() (subgraph.Embeddings, error) {
	return n.Pat.Embeddings(n.Dt.Indices)
}

// MinEdgeTypeFrequency is the smallest graph frequency among the
// pattern's edge label triples. It bounds the pattern's support from
// above so a value below the threshold proves the pattern infrequent
// without an embedding search.
func (n *Node) MinEdgeTypeFrequency() int {
	min := -1
	for i := range n.Pat.E {
		e := &n.Pat.E[i]
		f := n.Dt.Indices.EdgeTypeFrequency(digraph.Colors{
			SrcColor:  n.Pat.V[e.Src].Color,
			TargColor: n.Pat.V[e.Targ].Color,
			EdgeColor: e.Color,
		})
		if !n.Dt.Directed && n.Pat.V[e.Src].Color == n.Pat.V[e.Targ].Color {
			// an undirected edge between same colored endpoints
			// matches in both orientations, each occurrence can
			// contribute two vertices to a slot image
			f *= 2
		}
		if min == -1 || f < min {
			min = f
		}
	}
	return min
}

func (n *Node) String() string {
	if n.Dt.Labels != nil {
		return fmt.Sprintf("<Node %v>", n.Pat.Pretty(n.Dt.Labels))
	}
	return fmt.Sprintf("<Node %v>", n.Pat)
}

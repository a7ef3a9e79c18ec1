package subgraph

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

type EmbSearchStartPoint uint64

const (
	LeastFrequent EmbSearchStartPoint = 1 << iota
	MostFrequent
	LeastConnected
	MostConnected
)

type EmbIterator func(bool) (*Embedding, EmbIterator)

func (sg *SubGraph) EmbeddedIn(indices *digraph.Indices) bool {
	for _, next := sg.IterEmbeddings(MostConnected, indices, nil)(false); next != nil; _, next = next(true) {
		return true
	}
	return false
}

func (sg *SubGraph) searchStartingPoint(mode EmbSearchStartPoint, indices *digraph.Indices) int {
	switch mode {
	case MostFrequent:
		return argMax(len(sg.V), sg.vertexFrequency(indices))
	case LeastConnected:
		return argMin(len(sg.V), sg.vertexConnectedness)
	case MostConnected:
		return argMax(len(sg.V), sg.vertexConnectedness)
	case LeastFrequent:
		fallthrough
	default:
		return argMin(len(sg.V), sg.vertexFrequency(indices))
	}
}

// IterEmbeddings lazily enumerates the embeddings of the pattern in
// the graph. The search binds slots one edge at a time along a chain
// where every edge has at least one previously bound endpoint.
// Embeddings are injective on vertices. A non-nil prune cuts whole
// branches of the search given a partial embedding.
func (sg *SubGraph) IterEmbeddings(spMode EmbSearchStartPoint, indices *digraph.Indices, prune func(*Embedding) bool) (ei EmbIterator) {
	if len(sg.V) == 0 {
		ei = func(bool) (*Embedding, EmbIterator) {
			return nil, nil
		}
		return ei
	}
	type entry struct {
		ids *Embedding
		eid int
	}
	pop := func(stack []entry) (entry, []entry) {
		return stack[len(stack)-1], stack[0 : len(stack)-1]
	}
	startIdx := sg.searchStartingPoint(spMode, indices)
	chain := sg.edgeChain(startIdx)
	vembs := sg.startEmbeddings(indices, startIdx)
	stack := make([]entry, 0, len(vembs)*2)
	for _, vemb := range vembs {
		stack = append(stack, entry{vemb, 0})
	}

	ei = func(stop bool) (*Embedding, EmbIterator) {
		for !stop && len(stack) > 0 {
			var i entry
			i, stack = pop(stack)
			if prune != nil && prune(i.ids) {
				continue
			}
			if i.eid >= len(chain) {
				emb := i.ids
				return emb, ei
			} else {
				sg.extendEmbedding(indices, i.ids, &sg.E[chain[i.eid]], func(ext *Embedding) {
					stack = append(stack, entry{ext, i.eid + 1})
				})
			}
		}
		return nil, nil
	}
	return ei
}

func argMin(length int, f func(int) int) (arg int) {
	min := 0
	arg = -1
	for i := 0; i < length; i++ {
		x := f(i)
		if arg == -1 || x < min {
			min = x
			arg = i
		}
	}
	return arg
}

func argMax(length int, f func(int) int) (arg int) {
	max := 0
	arg = -1
	for i := 0; i < length; i++ {
		x := f(i)
		if arg == -1 || x > max {
			max = x
			arg = i
		}
	}
	return arg
}

func (sg *SubGraph) vertexFrequency(indices *digraph.Indices) func(int) int {
	return func(idx int) int {
		return indices.VertexColorFrequency(sg.V[idx].Color)
	}
}

func (sg *SubGraph) vertexConnectedness(idx int) int {
	return len(sg.Adj[idx])
}

func (sg *SubGraph) startEmbeddings(indices *digraph.Indices, startIdx int) []*Embedding {
	color := sg.V[startIdx].Color
	embs := make([]*Embedding, 0, indices.VertexColorFrequency(color))
	for _, gIdx := range indices.ColorIndex[color] {
		embs = append(embs, &Embedding{VertexEmbedding: VertexEmbedding{EmbIdx: gIdx, SgIdx: startIdx}})
	}
	return embs
}

func (sg *SubGraph) other(u int, e int) int {
	s := sg.E[e].Src
	t := sg.E[e].Targ
	if s == u {
		return t
	} else if t == u {
		return s
	}
	panic("edge not incident to u")
}

// edgeChain orders the pattern's edges so every edge has at least one
// endpoint bound by an earlier edge (or the start vertex). The order
// is a depth first traversal from startIdx so it is deterministic.
func (sg *SubGraph) edgeChain(startIdx int) []int {
	edges := make([]int, 0, len(sg.E))
	added := make([]bool, len(sg.E))
	seen := make([]bool, len(sg.V))
	var visit func(int)
	visit = func(u int) {
		seen[u] = true
		for _, e := range sg.Adj[u] {
			if !added[e] {
				added[e] = true
				edges = append(edges, e)
			}
		}
		for _, e := range sg.Adj[u] {
			v := sg.other(u, e)
			if !seen[v] {
				visit(v)
			}
		}
	}
	visit(startIdx)
	if len(edges) != len(sg.E) {
		panic("assert-fail: len(edges) != len(sg.E)")
	}
	return edges
}

func (ids *Embedding) ids(srcIdx, targIdx int) (srcId, targId int) {
	srcId = -1
	targId = -1
	for c := ids; c != nil; c = c.Prev {
		if c.SgIdx == srcIdx {
			srcId = c.EmbIdx
		}
		if c.SgIdx == targIdx {
			targId = c.EmbIdx
		}
	}
	return srcId, targId
}

func (sg *SubGraph) degreesFit(indices *digraph.Indices, idx, id int) bool {
	if sg.Directed {
		return sg.OutDeg[idx] <= indices.OutDegree(id) && sg.InDeg[idx] <= indices.InDegree(id)
	}
	return len(sg.Adj[idx]) <= indices.Degree(id)
}

func (sg *SubGraph) extendEmbedding(indices *digraph.Indices, cur *Embedding, e *Edge, do func(*Embedding)) {
	doNew := func(newIdx, newId int) {
		do(&Embedding{
			VertexEmbedding: VertexEmbedding{
				EmbIdx: newId, SgIdx: newIdx},
			Prev: cur})
	}
	srcId, targId := cur.ids(e.Src, e.Targ)
	if srcId == -1 && targId == -1 {
		panic("src and targ == -1. Which means the edge chain was not connected.")
	} else if srcId != -1 && targId != -1 {
		// both endpoints are already bound, this edge is a check
		if indices.HasEdge(srcId, targId, e.Color) {
			do(cur)
		}
	} else if srcId != -1 {
		indices.TargsFromSrc(srcId, e.Color, sg.V[e.Targ].Color, cur.hasId, func(targId int) {
			if sg.degreesFit(indices, e.Targ, targId) {
				doNew(e.Targ, targId)
			}
		})
	} else {
		indices.SrcsToTarg(targId, e.Color, sg.V[e.Src].Color, cur.hasId, func(srcId int) {
			if sg.degreesFit(indices, e.Src, srcId) {
				doNew(e.Src, srcId)
			}
		})
	}
}

package subgraph

import (
	"github.com/timtadh/data-structures/errors"
)

// Builder assembles a pattern in whatever order is convenient. Build
// canonicalizes the accumulated vertices and edges into a SubGraph.
type Builder struct {
	V        Vertices
	E        Edges
	Directed bool
}

func Build(V, E int, directed bool) *Builder {
	return &Builder{
		V:        make([]Vertex, 0, V),
		E:        make([]Edge, 0, E),
		Directed: directed,
	}
}

// From loads the pattern into an empty builder. Mutates the current
// builder and returns it.
func (b *Builder) From(sg *SubGraph) *Builder {
	if len(b.V) != 0 || len(b.E) != 0 {
		panic("builder must be empty to use From")
	}
	b.Directed = sg.Directed
	for i := range sg.V {
		b.AddVertex(sg.V[i].Color)
	}
	for i := range sg.E {
		b.AddEdge(&b.V[sg.E[i].Src], &b.V[sg.E[i].Targ], sg.E[i].Color)
	}
	return b
}

func (b *Builder) FromVertex(color int) *Builder {
	b.AddVertex(color)
	return b
}

func (b *Builder) Copy() *Builder {
	V := make([]Vertex, len(b.V), cap(b.V))
	E := make([]Edge, len(b.E), cap(b.E))
	copy(V, b.V)
	copy(E, b.E)
	return &Builder{
		V:        V,
		E:        E,
		Directed: b.Directed,
	}
}

func (b *Builder) AddVertex(color int) *Vertex {
	b.V = append(b.V, Vertex{
		Idx:   len(b.V),
		Color: color,
	})
	return &b.V[len(b.V)-1]
}

func (b *Builder) AddEdge(src, targ *Vertex, color int) *Edge {
	b.E = append(b.E, Edge{
		Src:   src.Idx,
		Targ:  targ.Idx,
		Color: color,
	})
	return &b.E[len(b.E)-1]
}

// Extend applies an extension to the builder. An endpoint with
// Idx == len(b.V) denotes a fresh vertex; at most one endpoint may be
// fresh.
func (b *Builder) Extend(e *Extension) (newe *Edge, newv *Vertex, err error) {
	if e.Source.Idx > len(b.V) {
		return nil, nil, errors.Errorf("Source.Idx %v outside of |V| %v", e.Source.Idx, len(b.V))
	} else if e.Target.Idx > len(b.V) {
		return nil, nil, errors.Errorf("Target.Idx %v outside of |V| %v", e.Target.Idx, len(b.V))
	} else if e.Source.Idx == len(b.V) && e.Target.Idx == len(b.V) {
		return nil, nil, errors.Errorf("only one new vertex allowed (extension would create a disconnected pattern)")
	}
	var src *Vertex = &e.Source
	var targ *Vertex = &e.Target
	if e.Source.Idx == len(b.V) {
		src = b.AddVertex(e.Source.Color)
		newv = src
	} else if e.Target.Idx == len(b.V) {
		targ = b.AddVertex(e.Target.Color)
		newv = targ
	}
	newe = b.AddEdge(src, targ, e.Color)
	return newe, newv, nil
}

// Connected reports whether every vertex is reachable from vertex 0
// ignoring edge direction.
func (b *Builder) Connected() bool {
	if len(b.V) == 0 {
		return false
	}
	adj := make([][]int, len(b.V))
	for i := range b.E {
		adj[b.E[i].Src] = append(adj[b.E[i].Src], b.E[i].Targ)
		adj[b.E[i].Targ] = append(adj[b.E[i].Targ], b.E[i].Src)
	}
	seen := make([]bool, len(b.V))
	stack := make([]int, 0, len(b.V))
	stack = append(stack, 0)
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}
	return count == len(b.V)
}

// Build canonicalizes the pattern. It errs when the pattern is empty
// or disconnected.
func (b *Builder) Build() (*SubGraph, error) {
	vord, eord, err := b.CanonicalPermutation()
	if err != nil {
		return nil, err
	}
	return b.BuildFromPermutation(vord, eord), nil
}

// BuildFromPermutation builds the SubGraph with vertex i of the
// builder stored at slot vord[i] and edge j stored at position
// eord[j]. For undirected patterns each stored edge is oriented from
// the lower slot to the higher slot.
func (b *Builder) BuildFromPermutation(vord, eord []int) *SubGraph {
	pat := &SubGraph{
		V:        make([]Vertex, len(b.V)),
		E:        make([]Edge, len(b.E)),
		Adj:      make([][]int, len(b.V)),
		InDeg:    make([]int, len(b.V)),
		OutDeg:   make([]int, len(b.V)),
		Directed: b.Directed,
	}
	for i, j := range vord {
		pat.V[j].Idx = j
		pat.V[j].Color = b.V[i].Color
		pat.Adj[j] = make([]int, 0, 5)
	}
	for i, j := range eord {
		src := vord[b.E[i].Src]
		targ := vord[b.E[i].Targ]
		if !b.Directed && targ < src {
			src, targ = targ, src
		}
		pat.E[j].Src = src
		pat.E[j].Targ = targ
		pat.E[j].Color = b.E[i].Color
	}
	// adjacency lists are filled in canonical edge order so that two
	// builds of isomorphic patterns agree structure for structure
	for j := range pat.E {
		e := &pat.E[j]
		pat.Adj[e.Src] = append(pat.Adj[e.Src], j)
		if e.Targ != e.Src {
			pat.Adj[e.Targ] = append(pat.Adj[e.Targ], j)
		}
		pat.OutDeg[e.Src]++
		pat.InDeg[e.Targ]++
	}
	return pat
}

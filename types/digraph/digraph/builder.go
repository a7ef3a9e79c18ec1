package digraph

type Builder struct {
	V            Vertices
	E            Edges
	Adj          [][]int
	VertexColors map[int]int
	EdgeColors   map[int]int
	Directed     bool
}

func Build(V, E int) *Builder {
	if V < 10 {
		V = 10
	}
	if E < 10 {
		E = 10
	}
	return &Builder{
		V:            make(Vertices, 0, V),
		E:            make(Edges, 0, E),
		Adj:          make([][]int, 0, V),
		VertexColors: make(map[int]int, V),
		EdgeColors:   make(map[int]int, E),
	}
}

func (b *Builder) AddVertex(color int) *Vertex {
	idx := len(b.V)
	b.V = append(b.V, Vertex{
		Idx:   idx,
		Color: color,
	})
	b.Adj = append(b.Adj, make([]int, 0, 5))
	b.VertexColors[color]++
	return &b.V[idx]
}

func (b *Builder) AddEdge(u, v *Vertex, color int) *Edge {
	idx := len(b.E)
	b.E = append(b.E, Edge{
		Src:   u.Idx,
		Targ:  v.Idx,
		Color: color,
	})
	e := &b.E[idx]
	b.Adj[e.Src] = append(b.Adj[e.Src], idx)
	if e.Src != e.Targ {
		b.Adj[e.Targ] = append(b.Adj[e.Targ], idx)
	}
	b.EdgeColors[color]++
	return e
}

func (b *Builder) Build(indexVertex func(*Vertex), indexEdge func(*Edge)) *Digraph {
	g := &Digraph{
		V:        make(Vertices, len(b.V)),
		E:        make(Edges, len(b.E)),
		Adj:      make([][]int, len(b.V)),
		Kids:     make([][]int, len(b.V)),
		Parents:  make([][]int, len(b.V)),
		Directed: b.Directed,
	}
	for i := range b.V {
		g.V[i].Idx = b.V[i].Idx
		g.V[i].Color = b.V[i].Color
		g.Adj[i] = make([]int, len(b.Adj[i]))
		copy(g.Adj[i], b.Adj[i])
		g.Kids[i] = make([]int, 0, len(b.Adj[i]))
		g.Parents[i] = make([]int, 0, len(b.Adj[i]))
		for _, e := range b.Adj[i] {
			if b.E[e].Src == i {
				g.Kids[i] = append(g.Kids[i], e)
			}
			if b.E[e].Targ == i {
				g.Parents[i] = append(g.Parents[i], e)
			}
		}
		if indexVertex != nil {
			indexVertex(&g.V[i])
		}
	}
	for i := range b.E {
		g.E[i].Src = b.E[i].Src
		g.E[i].Targ = b.E[i].Targ
		g.E[i].Color = b.E[i].Color
		if indexEdge != nil {
			indexEdge(&g.E[i])
		}
	}
	return g
}

package digraph

import (
	"sort"
)

type IdColorColor struct {
	Id, EdgeColor, VertexColor int
}

// Colors is a label triple (source vertex color, target vertex color,
// edge color). For undirected graphs the triple is stored in its
// normalized form: SrcColor <= TargColor.
type Colors struct {
	SrcColor, TargColor, EdgeColor int
}

func (c Colors) Less(o Colors) bool {
	if c.SrcColor != o.SrcColor {
		return c.SrcColor < o.SrcColor
	}
	if c.TargColor != o.TargColor {
		return c.TargColor < o.TargColor
	}
	return c.EdgeColor < o.EdgeColor
}

// Indices precomputes the adjacency and schema lookups the embedding
// search and candidate generation run on. For undirected graphs every
// edge is entered under both orientations so TargsFromSrc alone walks
// the full neighborhood of a vertex.
type Indices struct {
	G            *Digraph
	ColorIndex   map[int][]int          // color -> []Idx in G.V
	SrcIndex     map[IdColorColor][]int // (SrcIdx, EdgeColor, TargColor) -> TargIdx (where Idx in G.V)
	TargIndex    map[IdColorColor][]int // (TargIdx, EdgeColor, SrcColor) -> SrcIdx (where Idx in G.V)
	EdgeIndex    map[Edge]bool
	EdgeCounts   map[Colors]int // normalized label triple -> count
	Schema       []Colors       // the observed triples, sorted
	VertexColors map[int]int    // the color frequency for vertices
	EdgeColors   map[int]int    // the color frequency for edges
}

func NewIndices(b *Builder) *Indices {
	i := &Indices{
		ColorIndex:   make(map[int][]int, len(b.VertexColors)),
		SrcIndex:     make(map[IdColorColor][]int, len(b.V)),
		TargIndex:    make(map[IdColorColor][]int, len(b.V)),
		EdgeIndex:    make(map[Edge]bool, len(b.E)),
		EdgeCounts:   make(map[Colors]int, len(b.EdgeColors)),
		VertexColors: b.VertexColors,
		EdgeColors:   b.EdgeColors,
	}
	i.G = b.Build(
		func(u *Vertex) {
			i.ColorIndex[u.Color] = append(i.ColorIndex[u.Color], u.Idx)
		},
		func(e *Edge) {
			i.addEdge(e.Src, e.Targ, e.Color, b)
			if !b.Directed && e.Src != e.Targ {
				i.addEdge(e.Targ, e.Src, e.Color, b)
			}
			i.EdgeCounts[i.normalize(b.V[e.Src].Color, b.V[e.Targ].Color, e.Color, b.Directed)]++
		})
	i.Schema = make([]Colors, 0, len(i.EdgeCounts))
	for colors := range i.EdgeCounts {
		i.Schema = append(i.Schema, colors)
	}
	sort.Slice(i.Schema, func(x, y int) bool {
		return i.Schema[x].Less(i.Schema[y])
	})
	return i
}

func (i *Indices) addEdge(src, targ, color int, b *Builder) {
	srcKey := IdColorColor{src, color, b.V[targ].Color}
	targKey := IdColorColor{targ, color, b.V[src].Color}
	i.EdgeIndex[Edge{Src: src, Targ: targ, Color: color}] = true
	i.SrcIndex[srcKey] = append(i.SrcIndex[srcKey], targ)
	i.TargIndex[targKey] = append(i.TargIndex[targKey], src)
}

func (i *Indices) normalize(srcColor, targColor, edgeColor int, directed bool) Colors {
	if !directed && targColor < srcColor {
		srcColor, targColor = targColor, srcColor
	}
	return Colors{SrcColor: srcColor, TargColor: targColor, EdgeColor: edgeColor}
}

// Colors gives the normalized label triple of a graph edge.
func (i *Indices) Colors(e *Edge) Colors {
	return i.normalize(i.G.V[e.Src].Color, i.G.V[e.Targ].Color, e.Color, i.G.Directed)
}

// EdgeTypeFrequency gives the number of graph edges carrying the
// triple. The triple is normalized before lookup so either orientation
// may be passed for an undirected graph.
func (i *Indices) EdgeTypeFrequency(c Colors) int {
	return i.EdgeCounts[i.normalize(c.SrcColor, c.TargColor, c.EdgeColor, i.G.Directed)]
}

// Observed reports whether the triple occurs anywhere in the graph.
func (i *Indices) Observed(c Colors) bool {
	return i.EdgeTypeFrequency(c) > 0
}

// FrequentEdgeTypes gives the triples with at least min occurrences,
// ordered by descending frequency with ties broken by the triple
// ordering.
func (i *Indices) FrequentEdgeTypes(min int) []Colors {
	freq := make([]Colors, 0, len(i.Schema))
	for _, colors := range i.Schema {
		if i.EdgeCounts[colors] >= min {
			freq = append(freq, colors)
		}
	}
	sort.Slice(freq, func(x, y int) bool {
		cx, cy := i.EdgeCounts[freq[x]], i.EdgeCounts[freq[y]]
		if cx != cy {
			return cx > cy
		}
		return freq[x].Less(freq[y])
	})
	return freq
}

func (i *Indices) VertexColorFrequency(color int) int {
	return i.VertexColors[color]
}

func (i *Indices) EdgeColorFrequency(color int) int {
	return i.EdgeColors[color]
}

func (i *Indices) Degree(id int) int {
	return len(i.G.Adj[id])
}

func (i *Indices) InDegree(id int) int {
	if !i.G.Directed {
		return len(i.G.Adj[id])
	}
	return len(i.G.Parents[id])
}

func (i *Indices) OutDegree(id int) int {
	if !i.G.Directed {
		return len(i.G.Adj[id])
	}
	return len(i.G.Kids[id])
}

func (indices *Indices) HasEdge(srcId, targId, color int) bool {
	return indices.EdgeIndex[Edge{Src: srcId, Targ: targId, Color: color}]
}

func (indices *Indices) TargsFromSrc(srcId, edgeColor, targColor int, exclude func(int) bool, do func(int)) {
	for _, targId := range indices.SrcIndex[IdColorColor{srcId, edgeColor, targColor}] {
		if exclude != nil && exclude(targId) {
			continue
		}
		do(targId)
	}
}

func (indices *Indices) SrcsToTarg(targId, edgeColor, srcColor int, exclude func(int) bool, do func(int)) {
	for _, srcId := range indices.TargIndex[IdColorColor{targId, edgeColor, srcColor}] {
		if exclude != nil && exclude(srcId) {
			continue
		}
		do(srcId)
	}
}

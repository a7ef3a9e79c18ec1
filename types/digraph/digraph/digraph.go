package digraph

// Digraph is a labeled graph held entirely in memory. Vertex and edge
// labels are interned as int colors (see Labels). When Directed is
// false each Edge still stores a Src and a Targ but the orientation
// carries no meaning; the indices built over the graph treat the edge
// as traversable both ways.
type Digraph struct {
	V        Vertices
	E        Edges
	Adj      [][]int
	Kids     [][]int
	Parents  [][]int
	Directed bool
}

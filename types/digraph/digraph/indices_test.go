package digraph

import "testing"
import "github.com/stretchr/testify/assert"

func diamond(t *testing.T) *Indices {
	// 0 - 1, 0 - 2, 1 - 3, 2 - 3, plus 1 - 2 with its own edge color
	b := Build(4, 5)
	n0 := b.AddVertex(0)
	n1 := b.AddVertex(1)
	n2 := b.AddVertex(1)
	n3 := b.AddVertex(0)
	b.AddEdge(n0, n1, 2)
	b.AddEdge(n0, n2, 2)
	b.AddEdge(n1, n3, 2)
	b.AddEdge(n2, n3, 2)
	b.AddEdge(n1, n2, 3)
	return NewIndices(b)
}

func TestSchema(t *testing.T) {
	x := assert.New(t)
	i := diamond(t)
	x.Equal(2, len(i.Schema))
	x.Equal(4, i.EdgeTypeFrequency(Colors{SrcColor: 0, TargColor: 1, EdgeColor: 2}))
	// undirected lookups normalize the triple
	x.Equal(4, i.EdgeTypeFrequency(Colors{SrcColor: 1, TargColor: 0, EdgeColor: 2}))
	x.Equal(1, i.EdgeTypeFrequency(Colors{SrcColor: 1, TargColor: 1, EdgeColor: 3}))
	x.False(i.Observed(Colors{SrcColor: 0, TargColor: 0, EdgeColor: 2}))
}

func TestFrequentEdgeTypes(t *testing.T) {
	x := assert.New(t)
	i := diamond(t)
	all := i.FrequentEdgeTypes(1)
	x.Equal(2, len(all))
	// descending frequency
	x.Equal(Colors{SrcColor: 0, TargColor: 1, EdgeColor: 2}, all[0])
	x.Equal(Colors{SrcColor: 1, TargColor: 1, EdgeColor: 3}, all[1])
	x.Equal(1, len(i.FrequentEdgeTypes(2)))
	x.Equal(0, len(i.FrequentEdgeTypes(5)))
}

func TestNeighborhood(t *testing.T) {
	x := assert.New(t)
	i := diamond(t)
	x.True(i.HasEdge(0, 1, 2))
	x.True(i.HasEdge(1, 0, 2))
	x.False(i.HasEdge(0, 3, 2))

	targs := []int{}
	i.TargsFromSrc(0, 2, 1, nil, func(targ int) {
		targs = append(targs, targ)
	})
	x.Equal([]int{1, 2}, targs)

	excluded := []int{}
	i.TargsFromSrc(0, 2, 1, func(targ int) bool { return targ == 1 }, func(targ int) {
		excluded = append(excluded, targ)
	})
	x.Equal([]int{2}, excluded)

	x.Equal(3, i.Degree(1))
	x.Equal(2, i.Degree(0))
}

func TestVertexColorFrequency(t *testing.T) {
	x := assert.New(t)
	i := diamond(t)
	x.Equal(2, i.VertexColorFrequency(0))
	x.Equal(2, i.VertexColorFrequency(1))
	x.Equal(0, i.VertexColorFrequency(9))
	x.Equal(4, i.EdgeColorFrequency(2))
	x.Equal(1, i.EdgeColorFrequency(3))
}

func TestLabels(t *testing.T) {
	x := assert.New(t)
	labels := NewLabels()
	a := labels.Color("a")
	b := labels.Color("b")
	x.NotEqual(a, b)
	x.Equal(a, labels.Color("a"))
	x.Equal("a", labels.Label(a))
	x.Equal("b", labels.Label(b))
	x.Equal([]string{"a", "b"}, labels.Labels())
}

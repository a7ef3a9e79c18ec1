package subgraph

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"encoding/binary"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

// two black vertices each with two red neighbors, the reds linked in
// pairs across the blacks
func host(t *testing.T) *digraph.Indices {
	b := digraph.Build(6, 6)
	n1 := b.AddVertex(0)
	n2 := b.AddVertex(0)
	n3 := b.AddVertex(1)
	n4 := b.AddVertex(1)
	n5 := b.AddVertex(1)
	n6 := b.AddVertex(1)
	b.AddEdge(n1, n3, 2)
	b.AddEdge(n1, n4, 2)
	b.AddEdge(n2, n5, 2)
	b.AddEdge(n2, n6, 2)
	b.AddEdge(n5, n3, 2)
	b.AddEdge(n4, n6, 2)
	return digraph.NewIndices(b)
}

func triangleHost(t *testing.T) *digraph.Indices {
	b := digraph.Build(3, 3)
	n0 := b.AddVertex(0)
	n1 := b.AddVertex(0)
	n2 := b.AddVertex(0)
	b.AddEdge(n0, n1, 1)
	b.AddEdge(n1, n2, 1)
	b.AddEdge(n2, n0, 1)
	return digraph.NewIndices(b)
}

func edgePattern(t *testing.T, srcColor, targColor, edgeColor int) *SubGraph {
	b := Build(2, 1, false)
	u := b.AddVertex(srcColor)
	v := b.AddVertex(targColor)
	b.AddEdge(u, v, edgeColor)
	return build(t, b)
}

func TestEmbeddings(t *testing.T) {
	x := assert.New(t)
	indices := host(t)
	sg := edgePattern(t, 0, 1, 2)
	t.Log(sg)

	embs, err := sg.Embeddings(indices)
	x.Nil(err)
	for _, emb := range embs {
		t.Log(emb)
	}
	x.Equal(4, len(embs))
}

func TestMinImageSupport(t *testing.T) {
	x := assert.New(t)
	indices := host(t)
	sg := edgePattern(t, 0, 1, 2)

	// four embeddings but the black slot only images two vertices
	support, embs, err := sg.MinImageSupport(indices)
	x.Nil(err)
	x.Equal(4, embs)
	x.Equal(2, support)
}

func TestTriangleSupport(t *testing.T) {
	x := assert.New(t)
	indices := triangleHost(t)

	b := Build(3, 3, false)
	u := b.AddVertex(0)
	v := b.AddVertex(0)
	w := b.AddVertex(0)
	b.AddEdge(u, v, 1)
	b.AddEdge(v, w, 1)
	b.AddEdge(w, u, 1)
	sg := build(t, b)

	// every slot images all three vertices, six automorphic embeddings
	support, embs, err := sg.MinImageSupport(indices)
	x.Nil(err)
	x.Equal(6, embs)
	x.Equal(3, support)
}

func TestPathSupportExceedsEdgeCount(t *testing.T) {
	x := assert.New(t)
	// a path host: a - a - a has two edges but the two edge pattern
	// slots each image all three vertices
	b := digraph.Build(3, 2)
	n0 := b.AddVertex(0)
	n1 := b.AddVertex(0)
	n2 := b.AddVertex(0)
	b.AddEdge(n0, n1, 1)
	b.AddEdge(n1, n2, 1)
	indices := digraph.NewIndices(b)

	sg := edgePattern(t, 0, 0, 1)
	support, embs, err := sg.MinImageSupport(indices)
	x.Nil(err)
	x.Equal(4, embs)
	x.Equal(3, support)
}

func TestInjectiveMatching(t *testing.T) {
	x := assert.New(t)
	indices := triangleHost(t)

	// a three vertex path embeds injectively, a four vertex star cannot
	path := Build(3, 2, false)
	p0 := path.AddVertex(0)
	p1 := path.AddVertex(0)
	p2 := path.AddVertex(0)
	path.AddEdge(p0, p1, 1)
	path.AddEdge(p1, p2, 1)
	psg := build(t, path)
	support, _, err := psg.MinImageSupport(indices)
	x.Nil(err)
	x.Equal(3, support)

	star := Build(4, 3, false)
	s0 := star.AddVertex(0)
	s1 := star.AddVertex(0)
	s2 := star.AddVertex(0)
	s3 := star.AddVertex(0)
	star.AddEdge(s0, s1, 1)
	star.AddEdge(s0, s2, 1)
	star.AddEdge(s0, s3, 1)
	ssg := build(t, star)
	support, embs, err := ssg.MinImageSupport(indices)
	x.Nil(err)
	x.Equal(0, embs)
	x.Equal(0, support)
	x.False(ssg.EmbeddedIn(indices))
}

func TestUnmatchedColors(t *testing.T) {
	x := assert.New(t)
	indices := triangleHost(t)
	sg := edgePattern(t, 5, 6, 7)
	support, embs, err := sg.MinImageSupport(indices)
	x.Nil(err)
	x.Equal(0, embs)
	x.Equal(0, support)
}

func TestDirectedEmbeddings(t *testing.T) {
	x := assert.New(t)
	// a directed two cycle: 0 -> 1 and 1 -> 0 with different edge colors
	b := digraph.Build(2, 2)
	b.Directed = true
	n0 := b.AddVertex(0)
	n1 := b.AddVertex(1)
	b.AddEdge(n0, n1, 2)
	b.AddEdge(n1, n0, 3)
	indices := digraph.NewIndices(b)

	forward := Build(2, 1, true)
	fu := forward.AddVertex(0)
	fv := forward.AddVertex(1)
	forward.AddEdge(fu, fv, 2)
	fsg := build(t, forward)
	support, embs, err := fsg.MinImageSupport(indices)
	x.Nil(err)
	x.Equal(1, embs)
	x.Equal(1, support)

	// the same edge against the flow does not embed
	backward := Build(2, 1, true)
	bu := backward.AddVertex(0)
	bv := backward.AddVertex(1)
	backward.AddEdge(bv, bu, 2)
	bsg := build(t, backward)
	support, embs, err = bsg.MinImageSupport(indices)
	x.Nil(err)
	x.Equal(0, embs)
	x.Equal(0, support)
}

// a label can describe a disconnected pattern even though Build never
// produces one, so matching has to reject it rather than counting the
// partial per-component embeddings
func disconnectedLabel(t *testing.T, lenV int, edges []Edge) []byte {
	label := make([]byte, 8+lenV*4+len(edges)*12)
	binary.BigEndian.PutUint32(label[0:4], uint32(len(edges)))
	binary.BigEndian.PutUint32(label[4:8], uint32(lenV))
	off := 8 + lenV*4
	for i, e := range edges {
		s := off + i*12
		binary.BigEndian.PutUint32(label[s:s+4], uint32(e.Src))
		binary.BigEndian.PutUint32(label[s+4:s+8], uint32(e.Targ))
		binary.BigEndian.PutUint32(label[s+8:s+12], uint32(e.Color))
	}
	return label
}

func TestDisconnectedPatternRejected(t *testing.T) {
	x := assert.New(t)
	indices := host(t)

	// two isolated vertices
	sg, err := FromLabel(disconnectedLabel(t, 2, nil), false)
	x.Nil(err)
	support, embs, err := sg.MinImageSupport(indices)
	x.Equal(0, support)
	x.Equal(0, embs)
	x.Error(err)
	_, ok := err.(*MalformedPatternError)
	x.True(ok, "expected a MalformedPatternError got %T", err)
	_, err = sg.Embeddings(indices)
	x.Error(err)
	_, ok = err.(*MalformedPatternError)
	x.True(ok, "expected a MalformedPatternError got %T", err)

	// two components which each have edges
	sg, err = FromLabel(disconnectedLabel(t, 4, []Edge{
		{Src: 0, Targ: 2, Color: 2},
		{Src: 1, Targ: 3, Color: 2},
	}), false)
	x.Nil(err)
	_, _, err = sg.MinImageSupport(indices)
	x.Error(err)
	_, ok = err.(*MalformedPatternError)
	x.True(ok, "expected a MalformedPatternError got %T", err)
}

package subgraph

import "testing"
import "github.com/stretchr/testify/assert"

func build(t *testing.T, b *Builder) *SubGraph {
	sg, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return sg
}

func TestCanonicalOrderInsensitive(t *testing.T) {
	x := assert.New(t)
	// the same path built with two different insertion orders
	b1 := Build(3, 2, false)
	u0 := b1.AddVertex(0)
	u1 := b1.AddVertex(1)
	u2 := b1.AddVertex(0)
	b1.AddEdge(u0, u1, 2)
	b1.AddEdge(u1, u2, 2)
	sg1 := build(t, b1)

	b2 := Build(3, 2, false)
	v2 := b2.AddVertex(0)
	v1 := b2.AddVertex(1)
	v0 := b2.AddVertex(0)
	b2.AddEdge(v2, v1, 2)
	b2.AddEdge(v1, v0, 2)
	sg2 := build(t, b2)

	t.Log(sg1)
	t.Log(sg2)
	x.Equal(sg1.Label(), sg2.Label())
	x.True(sg1.Equals(sg2))
}

func TestCanonicalCycleRotations(t *testing.T) {
	x := assert.New(t)
	square := func(rot int) *SubGraph {
		b := Build(4, 4, false)
		vs := make([]*Vertex, 0, 4)
		for i := 0; i < 4; i++ {
			// alternating vertex colors around the cycle
			vs = append(vs, b.AddVertex((i+rot)%2))
		}
		for i := 0; i < 4; i++ {
			b.AddEdge(vs[i], vs[(i+1)%4], 7)
		}
		return build(t, b)
	}
	a := square(0)
	for rot := 1; rot < 4; rot++ {
		x.Equal(a.Label(), square(rot).Label())
	}
}

func TestCanonicalDistinguishesStructure(t *testing.T) {
	x := assert.New(t)
	// a path and a star with identical vertex, edge, and color counts
	path := Build(4, 3, false)
	p0 := path.AddVertex(0)
	p1 := path.AddVertex(0)
	p2 := path.AddVertex(0)
	p3 := path.AddVertex(0)
	path.AddEdge(p0, p1, 1)
	path.AddEdge(p1, p2, 1)
	path.AddEdge(p2, p3, 1)

	star := Build(4, 3, false)
	s0 := star.AddVertex(0)
	s1 := star.AddVertex(0)
	s2 := star.AddVertex(0)
	s3 := star.AddVertex(0)
	star.AddEdge(s0, s1, 1)
	star.AddEdge(s0, s2, 1)
	star.AddEdge(s0, s3, 1)

	x.NotEqual(build(t, path).Label(), build(t, star).Label())
}

func TestCanonicalDirectedOrientation(t *testing.T) {
	x := assert.New(t)
	forward := Build(2, 1, true)
	fu := forward.AddVertex(0)
	fv := forward.AddVertex(1)
	forward.AddEdge(fu, fv, 2)

	backward := Build(2, 1, true)
	bu := backward.AddVertex(0)
	bv := backward.AddVertex(1)
	backward.AddEdge(bv, bu, 2)

	x.NotEqual(build(t, forward).Label(), build(t, backward).Label())

	// undirected the same two builds are isomorphic
	uforward := Build(2, 1, false)
	ufu := uforward.AddVertex(0)
	ufv := uforward.AddVertex(1)
	uforward.AddEdge(ufu, ufv, 2)

	ubackward := Build(2, 1, false)
	ubu := ubackward.AddVertex(0)
	ubv := ubackward.AddVertex(1)
	ubackward.AddEdge(ubv, ubu, 2)

	x.Equal(build(t, uforward).Label(), build(t, ubackward).Label())
}

func TestCanonicalSingleVertex(t *testing.T) {
	x := assert.New(t)
	b := Build(1, 0, false)
	b.AddVertex(3)
	sg := build(t, b)
	x.Equal(1, len(sg.V))
	x.Equal(0, len(sg.E))
	x.Equal(3, sg.V[0].Color)
}

func TestMalformedEmpty(t *testing.T) {
	x := assert.New(t)
	_, err := Build(0, 0, false).Build()
	x.Error(err)
	_, ok := err.(*MalformedPatternError)
	x.True(ok, "expected a MalformedPatternError got %T", err)
}

func TestMalformedDisconnected(t *testing.T) {
	x := assert.New(t)
	b := Build(3, 1, false)
	u := b.AddVertex(0)
	v := b.AddVertex(0)
	b.AddVertex(0)
	b.AddEdge(u, v, 1)
	_, err := b.Build()
	x.Error(err)
	_, ok := err.(*MalformedPatternError)
	x.True(ok, "expected a MalformedPatternError got %T", err)
}

func TestFromLabelRoundTrip(t *testing.T) {
	x := assert.New(t)
	b := Build(3, 3, false)
	u := b.AddVertex(0)
	v := b.AddVertex(1)
	w := b.AddVertex(2)
	b.AddEdge(u, v, 3)
	b.AddEdge(v, w, 4)
	b.AddEdge(w, u, 5)
	sg := build(t, b)

	got, err := FromLabel(sg.Label(), false)
	x.Nil(err)
	x.Equal(sg.Label(), got.Label())
	x.True(sg.Equals(got))
}

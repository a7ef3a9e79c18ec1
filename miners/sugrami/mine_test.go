package sugrami

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

import (
	"github.com/timtadh/sugrami/config"
	"github.com/timtadh/sugrami/miners"
	"github.com/timtadh/sugrami/miners/reporters"
	"github.com/timtadh/sugrami/types/digraph"
)

const triangleVeg = `vertex	{"id":0,"label":"a"}
vertex	{"id":1,"label":"a"}
vertex	{"id":2,"label":"a"}
edge	{"src":0,"targ":1,"label":"e"}
edge	{"src":1,"targ":2,"label":"e"}
edge	{"src":2,"targ":0,"label":"e"}
`

func load(t *testing.T, text string) *digraph.Digraph {
	input := func() (io.Reader, func()) {
		return strings.NewReader(text), func() {}
	}
	dt, err := digraph.NewVegLoader(&digraph.Config{}).Load(input)
	if err != nil {
		t.Fatal(err)
	}
	return dt
}

func mine(t *testing.T, dt *digraph.Digraph, conf *config.Config) ([]*digraph.Node, error) {
	m := NewMiner(conf)
	c := &reporters.Collector{}
	err := m.Mine(dt, c)
	if err != nil {
		return nil, err
	}
	if state := m.State(); state != "DONE" {
		t.Fatalf("expected the miner to finish, state %v", state)
	}
	return c.Nodes, nil
}

func TestMineTriangle(t *testing.T) {
	x := assert.New(t)
	nodes, err := mine(t, load(t, triangleVeg), &config.Config{Support: 2})
	x.Nil(err)

	// the edge, the three vertex path, and the triangle, all with
	// support three
	x.Equal(3, len(nodes))
	levels := make([]int, 0, len(nodes))
	for _, n := range nodes {
		t.Log(n)
		levels = append(levels, n.Level())
		support, err := n.Support()
		x.Nil(err)
		x.Equal(3, support)
	}
	x.Equal([]int{1, 2, 3}, levels)
}

func TestMineDeterministic(t *testing.T) {
	x := assert.New(t)
	a, err := mine(t, load(t, triangleVeg), &config.Config{Support: 2})
	x.Nil(err)
	b, err := mine(t, load(t, triangleVeg), &config.Config{Support: 2})
	x.Nil(err)
	x.Equal(len(a), len(b))
	for i := range a {
		x.Equal(a[i].Label(), b[i].Label())
	}
}

func TestMineFraction(t *testing.T) {
	x := assert.New(t)
	// ceil(.5 * 3) = 2, same run as an absolute threshold of 2
	nodes, err := mine(t, load(t, triangleVeg), &config.Config{SupportFraction: .5})
	x.Nil(err)
	x.Equal(3, len(nodes))
}

func TestMineThresholdTooHigh(t *testing.T) {
	x := assert.New(t)
	dt := load(t, triangleVeg)
	m := NewMiner(&config.Config{Support: 4})
	err := m.Mine(dt, &reporters.Collector{})
	x.Error(err)
	ite, ok := err.(*miners.InvalidThresholdError)
	x.True(ok, "expected an InvalidThresholdError got %T", err)
	x.Equal(4, ite.Support)
	x.Equal(3, ite.Vertices)
	x.Equal("DONE", m.State())
}

func TestMineThresholdZero(t *testing.T) {
	x := assert.New(t)
	dt := load(t, triangleVeg)
	m := NewMiner(&config.Config{})
	err := m.Mine(dt, &reporters.Collector{})
	x.Error(err)
	_, ok := err.(*miners.InvalidThresholdError)
	x.True(ok, "expected an InvalidThresholdError got %T", err)
}

func TestMineInfrequentDropped(t *testing.T) {
	x := assert.New(t)
	// the triangle with a single pendant vertex: every pattern
	// touching the pendant has support one
	text := triangleVeg +
		"vertex\t{\"id\":3,\"label\":\"b\"}\n" +
		"edge\t{\"src\":0,\"targ\":3,\"label\":\"e\"}\n"
	nodes, err := mine(t, load(t, text), &config.Config{Support: 2})
	x.Nil(err)
	x.Equal(3, len(nodes))

	all, err := mine(t, load(t, text), &config.Config{Support: 1})
	x.Nil(err)
	x.True(len(all) > len(nodes), "a lower threshold should find more patterns")
}

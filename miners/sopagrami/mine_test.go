package sopagrami

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"io"
	"strings"
)

import (
	"github.com/timtadh/sugrami/config"
	"github.com/timtadh/sugrami/miners/reporters"
	"github.com/timtadh/sugrami/miners/sugrami"
	"github.com/timtadh/sugrami/types/digraph"
)

// a triangle of a vertices with a pendant b, the a-b edge type occurs
// only once
const pendantVeg = `vertex	{"id":0,"label":"a"}
vertex	{"id":1,"label":"a"}
vertex	{"id":2,"label":"a"}
vertex	{"id":3,"label":"b"}
edge	{"src":0,"targ":1,"label":"e"}
edge	{"src":1,"targ":2,"label":"e"}
edge	{"src":2,"targ":0,"label":"e"}
edge	{"src":0,"targ":3,"label":"e"}
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

func TestPruningEnabled(t *testing.T) {
	x := assert.New(t)
	m := NewMiner(&config.Config{Support: 2})
	x.True(m.PruneEdgeTypes)
}

func TestMatchesExhaustive(t *testing.T) {
	x := assert.New(t)
	for _, support := range []int{1, 2, 3} {
		pruned := &reporters.Collector{}
		err := NewMiner(&config.Config{Support: support}).Mine(load(t, pendantVeg), pruned)
		x.Nil(err)

		exhaustive := &reporters.Collector{}
		ex := sugrami.NewMiner(&config.Config{Support: support})
		err = ex.Mine(load(t, pendantVeg), exhaustive)
		x.Nil(err)

		x.Equal(len(exhaustive.Nodes), len(pruned.Nodes), "support %v", support)
		got := make(map[string]bool, len(pruned.Nodes))
		for _, n := range pruned.Nodes {
			got[string(n.Label())] = true
		}
		for _, n := range exhaustive.Nodes {
			x.True(got[string(n.Label())], "support %v missing %v", support, n)
		}
	}
}

func TestPrunesRareEdgeTypes(t *testing.T) {
	x := assert.New(t)
	// with threshold three the a-b seed is pruned before any
	// embedding search and the a-a patterns survive
	c := &reporters.Collector{}
	err := NewMiner(&config.Config{Support: 3}).Mine(load(t, pendantVeg), c)
	x.Nil(err)
	x.Equal(3, len(c.Nodes))
	for _, n := range c.Nodes {
		support, err := n.Support()
		x.Nil(err)
		x.Equal(3, support)
	}
}

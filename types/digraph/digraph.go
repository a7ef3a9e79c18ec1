package digraph

import (
	"regexp"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

// Config controls how a graph is loaded and how far patterns may
// grow. A MaxVertices of 0 means unbounded. Include and Exclude
// filter vertices and edges by label at load time.
type Config struct {
	MaxVertices int
	Directed    bool
	Include     *regexp.Regexp
	Exclude     *regexp.Regexp
}

// Digraph is the mining data type: one labeled graph, its indices,
// and the label interning table. Support is the minimum image support
// threshold bound by the miner before the search starts.
type Digraph struct {
	Config
	Support int
	G       *digraph.Digraph
	Indices *digraph.Indices
	Labels  *digraph.Labels
}

func NewDigraph(dc *Config) *Digraph {
	return &Digraph{
		Config: *dc,
	}
}

// Init builds the graph and its indices from the loaded builder.
func (dt *Digraph) Init(b *digraph.Builder, labels *digraph.Labels) error {
	if len(b.V) == 0 {
		return errors.Errorf("the graph was empty")
	}
	b.Directed = dt.Directed
	dt.Indices = digraph.NewIndices(b)
	dt.G = dt.Indices.G
	dt.Labels = labels
	errors.Logf("DEBUG", "built indices |V| %v |E| %v |schema| %v",
		len(dt.G.V), len(dt.G.E), len(dt.Indices.Schema))
	return nil
}

// CheckExtension errs with an UnknownLabelError when the extension's
// label triple never occurs in the graph.
func (dt *Digraph) CheckExtension(srcColor, targColor, edgeColor int) error {
	c := digraph.Colors{SrcColor: srcColor, TargColor: targColor, EdgeColor: edgeColor}
	if !dt.Indices.Observed(c) {
		return &UnknownLabelError{Triple: c}
	}
	return nil
}

func (dt *Digraph) Close() error {
	return nil
}

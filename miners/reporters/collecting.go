package reporters

import (
	"github.com/timtadh/sugrami/types/digraph"
)

type Collector struct {
	Nodes []*digraph.Node
}

func (c *Collector) Report(n *digraph.Node) error {
	c.Nodes = append(c.Nodes, n)
	return nil
}

func (c *Collector) Close() error {
	return nil
}

package digraph

import (
	"fmt"
	"io/ioutil"
)

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/dot"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

// DotLoader reads graphviz dot files. Vertex and edge labels come
// from the label attribute, falling back to the node name for
// vertices and the empty string for edges.
type DotLoader struct {
	dt *Digraph
}

func NewDotLoader(dc *Config) *DotLoader {
	return &DotLoader{
		dt: NewDigraph(dc),
	}
}

func (v *DotLoader) Load(input Input) (*Digraph, error) {
	return v.LoadWithLabels(input, digraph.NewLabels())
}

func (v *DotLoader) LoadWithLabels(input Input, labels *digraph.Labels) (*Digraph, error) {
	in, closer := input()
	defer closer()
	text, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}
	G := digraph.Build(100, 1000)
	dp := &dotParse{
		b:    newBaseLoader(v.dt, G, labels),
		vids: make(map[string]int32),
	}
	err = dot.StreamParse(text, dp)
	if err != nil {
		return nil, err
	}
	err = v.dt.Init(G, labels)
	if err != nil {
		return nil, err
	}
	return v.dt, nil
}

type dotParse struct {
	b        *baseLoader
	graphId  int
	curGraph string
	subgraph int
	nextId   int32
	vids     map[string]int32
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if name == "SubGraph" {
		p.subgraph += 1
		return nil
	}
	p.curGraph = fmt.Sprintf("%v-%d", n.Get(1).Value.(string), p.graphId)
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	if p.subgraph > 0 {
		return nil
	}
	switch n.Label {
	case "Node":
		return p.loadVertex(n)
	case "Edge":
		return p.loadEdge(n)
	}
	return nil
}

func (p *dotParse) Exit(name string) error {
	if name == "SubGraph" {
		p.subgraph--
		return nil
	}
	p.graphId++
	return nil
}

func (p *dotParse) loadVertex(n *combos.Node) (err error) {
	sid := n.Get(0).Value.(string)
	if _, has := p.vids[sid]; has {
		return nil
	}
	attrs := make(map[string]interface{})
	for _, attr := range n.Get(1).Children {
		name := attr.Get(0).Value.(string)
		value := attr.Get(1).Value.(string)
		attrs[name] = value
	}
	id := p.nextId
	p.nextId++
	p.vids[sid] = id
	label := sid
	if l, has := attrs["label"]; has {
		label = l.(string)
	}
	return p.b.addVertex(id, label)
}

func (p *dotParse) loadEdge(n *combos.Node) (err error) {
	getId := func(sid string) (int32, error) {
		if _, has := p.vids[sid]; !has {
			err := p.loadVertex(combos.NewNode("Node").
				AddKid(combos.NewValueNode("ID", sid)).
				AddKid(combos.NewNode("Attrs")))
			if err != nil {
				return 0, err
			}
		}
		return p.vids[sid], nil
	}
	srcSid := n.Get(0).Value.(string)
	sid, err := getId(srcSid)
	if err != nil {
		return err
	}
	targSid := n.Get(1).Value.(string)
	tid, err := getId(targSid)
	if err != nil {
		return err
	}
	label := ""
	for _, attr := range n.Get(2).Children {
		name := attr.Get(0).Value.(string)
		if name == "label" {
			label = attr.Get(1).Value.(string)
			break
		}
	}
	return p.b.addEdge(sid, tid, label)
}

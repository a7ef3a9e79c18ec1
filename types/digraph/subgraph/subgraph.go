package subgraph

import (
	"encoding/binary"
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

// SubGraph is a pattern in canonical form. The vertex and edge order
// is the canonical order computed by the Builder so isomorphic
// patterns are structurally identical and share the same Label. The
// Label bytes serve as the pattern's canonical key.
type SubGraph struct {
	V          Vertices
	E          Edges
	Adj        [][]int
	InDeg      []int
	OutDeg     []int
	Directed   bool
	labelCache []byte
}

type Vertices []Vertex
type Edges []Edge

type Vertex struct {
	Idx   int
	Color int
}

type Edge struct {
	Src, Targ, Color int
}

func EmptySubGraph() *SubGraph {
	return &SubGraph{
		V:   make(Vertices, 0),
		E:   make(Edges, 0),
		Adj: make([][]int, 0),
	}
}

// FromLabel reconstructs a pattern from its canonical key. The
// directedness is not part of the key so it must be supplied.
func FromLabel(label []byte, directed bool) (*SubGraph, error) {
	if len(label) < 8 {
		return nil, errors.Errorf("label was too small %v < 8", len(label))
	}
	lenE := int(binary.BigEndian.Uint32(label[0:4]))
	lenV := int(binary.BigEndian.Uint32(label[4:8]))
	expected := 8 + lenV*4 + lenE*12
	if len(label) < expected {
		return nil, errors.Errorf("label was too small %v < %v", len(label), expected)
	}
	sg := &SubGraph{
		V:        make(Vertices, lenV),
		E:        make(Edges, lenE),
		Adj:      make([][]int, lenV),
		InDeg:    make([]int, lenV),
		OutDeg:   make([]int, lenV),
		Directed: directed,
	}
	off := 8
	for i := 0; i < lenV; i++ {
		s := off + i*4
		sg.V[i].Idx = i
		sg.V[i].Color = int(binary.BigEndian.Uint32(label[s : s+4]))
		sg.Adj[i] = make([]int, 0, 5)
	}
	off += lenV * 4
	for i := 0; i < lenE; i++ {
		s := off + i*12
		src := int(binary.BigEndian.Uint32(label[s : s+4]))
		targ := int(binary.BigEndian.Uint32(label[s+4 : s+8]))
		color := int(binary.BigEndian.Uint32(label[s+8 : s+12]))
		if src >= lenV || targ >= lenV {
			return nil, errors.Errorf("edge %v endpoint outside of |V| %v", i, lenV)
		}
		sg.E[i].Src = src
		sg.E[i].Targ = targ
		sg.E[i].Color = color
		sg.Adj[src] = append(sg.Adj[src], i)
		sg.Adj[targ] = append(sg.Adj[targ], i)
		sg.OutDeg[src]++
		sg.InDeg[targ]++
	}
	sg.labelCache = label
	return sg, nil
}

// Label serializes the pattern in its canonical order. Equal labels
// mean isomorphic patterns.
func (sg *SubGraph) Label() []byte {
	if sg.labelCache != nil {
		return sg.labelCache
	}
	size := 8 + len(sg.V)*4 + len(sg.E)*12
	label := make([]byte, size)
	binary.BigEndian.PutUint32(label[0:4], uint32(len(sg.E)))
	binary.BigEndian.PutUint32(label[4:8], uint32(len(sg.V)))
	off := 8
	for i, v := range sg.V {
		s := off + i*4
		binary.BigEndian.PutUint32(label[s:s+4], uint32(v.Color))
	}
	off += len(sg.V) * 4
	for i, edge := range sg.E {
		s := off + i*12
		binary.BigEndian.PutUint32(label[s:s+4], uint32(edge.Src))
		binary.BigEndian.PutUint32(label[s+4:s+8], uint32(edge.Targ))
		binary.BigEndian.PutUint32(label[s+8:s+12], uint32(edge.Color))
	}
	sg.labelCache = label
	return label
}

// validate errs when the pattern cannot be matched: it is empty or
// disconnected. Patterns built through Build are connected by
// construction but FromLabel accepts arbitrary labels.
func (sg *SubGraph) validate() error {
	if len(sg.V) == 0 {
		return malformed("empty", sg.String())
	}
	if !sg.connected() {
		return malformed("disconnected", sg.String())
	}
	return nil
}

// connected reports whether every slot is reachable from slot 0
// ignoring edge direction.
func (sg *SubGraph) connected() bool {
	if len(sg.V) == 0 {
		return false
	}
	seen := make([]bool, len(sg.V))
	stack := make([]int, 0, len(sg.V))
	stack = append(stack, 0)
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eidx := range sg.Adj[u] {
			e := &sg.E[eidx]
			for _, v := range []int{e.Src, e.Targ} {
				if !seen[v] {
					seen[v] = true
					count++
					stack = append(stack, v)
				}
			}
		}
	}
	return count == len(sg.V)
}

func (sg *SubGraph) Builder() *Builder {
	if sg == nil {
		return Build(1, 2, false)
	}
	return Build(len(sg.V)+1, len(sg.E)+1, sg.Directed).From(sg)
}

// HasEdge reports whether the pattern has an edge between the two
// slots with the given color. For undirected patterns either
// orientation matches.
func (sg *SubGraph) HasEdge(srcIdx, targIdx, color int) bool {
	for _, eidx := range sg.Adj[srcIdx] {
		e := &sg.E[eidx]
		if e.Color != color {
			continue
		}
		if e.Src == srcIdx && e.Targ == targIdx {
			return true
		}
		if !sg.Directed && e.Src == targIdx && e.Targ == srcIdx {
			return true
		}
	}
	return false
}

func (sg *SubGraph) String() string {
	V := make([]string, 0, len(sg.V))
	E := make([]string, 0, len(sg.E))
	for _, v := range sg.V {
		V = append(V, fmt.Sprintf(
			"(%v)",
			v.Color,
		))
	}
	for _, e := range sg.E {
		E = append(E, fmt.Sprintf(
			"[%v->%v:%v]",
			e.Src,
			e.Targ,
			e.Color,
		))
	}
	return fmt.Sprintf("{%v:%v}%v%v", len(sg.E), len(sg.V), strings.Join(V, ""), strings.Join(E, ""))
}

func (sg *SubGraph) Pretty(labels *digraph.Labels) string {
	V := make([]string, 0, len(sg.V))
	E := make([]string, 0, len(sg.E))
	for _, v := range sg.V {
		V = append(V, fmt.Sprintf(
			"(%v)",
			labels.Label(v.Color),
		))
	}
	for _, e := range sg.E {
		E = append(E, fmt.Sprintf(
			"[%v->%v:%v]",
			e.Src,
			e.Targ,
			labels.Label(e.Color),
		))
	}
	return fmt.Sprintf("{%v:%v}%v%v", len(sg.E), len(sg.V), strings.Join(V, ""), strings.Join(E, ""))
}

func (sg *SubGraph) Dotty(labels *digraph.Labels) string {
	V := make([]string, 0, len(sg.V))
	E := make([]string, 0, len(sg.E))
	for vidx, v := range sg.V {
		V = append(V, fmt.Sprintf(
			"n%v [label=\"%v\"];",
			vidx,
			labels.Label(v.Color),
		))
	}
	arrow := "->"
	gtype := "digraph"
	if !sg.Directed {
		arrow = "--"
		gtype = "graph"
	}
	for _, e := range sg.E {
		E = append(E, fmt.Sprintf(
			"n%v%vn%v [label=\"%v\"];",
			e.Src,
			arrow,
			e.Targ,
			labels.Label(e.Color),
		))
	}
	return fmt.Sprintf("%v{\n%v\n%v\n}", gtype, strings.Join(V, "\n"), strings.Join(E, "\n"))
}

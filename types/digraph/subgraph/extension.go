package subgraph

import (
	"fmt"
)

import (
	"github.com/timtadh/data-structures/types"
)

// Extension adds one edge to a pattern. An endpoint whose Idx equals
// the pattern's vertex count denotes a fresh slot.
type Extension struct {
	Source Vertex
	Target Vertex
	Color  int
}

func NewExt(src, targ Vertex, color int) *Extension {
	return &Extension{
		Source: src,
		Target: targ,
		Color:  color,
	}
}

func (e *Extension) String() string {
	return fmt.Sprintf("<(%v:%v)-[%v]->(%v:%v)>",
		e.Source.Idx, e.Source.Color, e.Color, e.Target.Idx, e.Target.Color)
}

// HasExtension reports whether the pattern already carries the edge
// the extension would add. For undirected patterns either orientation
// matches.
func (sg *SubGraph) HasExtension(ext *Extension) bool {
	if ext.Source.Idx >= len(sg.V) || ext.Source.Color != sg.V[ext.Source.Idx].Color {
		return false
	}
	if ext.Target.Idx >= len(sg.V) || ext.Target.Color != sg.V[ext.Target.Idx].Color {
		return false
	}
	return sg.HasEdge(ext.Source.Idx, ext.Target.Idx, ext.Color)
}

func (e *Extension) Equals(o types.Equatable) bool {
	switch x := o.(type) {
	case *Extension:
		return e.ExtEquals(x)
	}
	return false
}

func (e *Extension) ExtEquals(x *Extension) bool {
	if e == nil && x == nil {
		return true
	} else if e == nil {
		return false
	} else if x == nil {
		return false
	}
	return e.Source.Idx == x.Source.Idx &&
		e.Source.Color == x.Source.Color &&
		e.Target.Idx == x.Target.Idx &&
		e.Target.Color == x.Target.Color &&
		e.Color == x.Color
}

func (e *Extension) Less(o types.Sortable) bool {
	switch x := o.(type) {
	case *Extension:
		return e.ExtLess(x)
	}
	return false
}

func (e *Extension) ExtLess(x *Extension) bool {
	if e.Source.Idx != x.Source.Idx {
		return e.Source.Idx < x.Source.Idx
	}
	if e.Source.Color != x.Source.Color {
		return e.Source.Color < x.Source.Color
	}
	if e.Target.Idx != x.Target.Idx {
		return e.Target.Idx < x.Target.Idx
	}
	if e.Target.Color != x.Target.Color {
		return e.Target.Color < x.Target.Color
	}
	return e.Color < x.Color
}

func (e *Extension) Hash() int {
	return e.Source.Idx +
		2*e.Source.Color +
		3*e.Target.Idx +
		5*e.Target.Color +
		7*e.Color
}

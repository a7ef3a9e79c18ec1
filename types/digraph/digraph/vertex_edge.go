package digraph

import (
	"fmt"
)

type Vertex struct {
	Idx, Color int
}

type Edge struct {
	Src, Targ, Color int
}

type Vertices []Vertex
type Edges []Edge

func (v *Vertex) String() string {
	return fmt.Sprintf("(%v:%v)", v.Idx, v.Color)
}

func (e *Edge) String() string {
	return fmt.Sprintf("[%v->%v:%v]", e.Src, e.Targ, e.Color)
}

package digraph

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
	"github.com/timtadh/sugrami/types/digraph/subgraph"
)

// Extensions generates the node's children: every pattern reachable
// by adding one edge whose label triple occurs in the graph. An
// extension either grows the pattern with a fresh vertex or closes a
// cycle between two existing slots. Children are canonicalized and
// deduplicated, the result is free of isomorphic repeats. When the
// MaxVertices cap is reached growth extensions are skipped, cycle
// closing ones are still generated.
func (n *Node) Extensions() ([]*Node, error) {
	dt := n.Dt
	pat := n.Pat
	seen := make(map[string]bool, len(pat.V)*len(dt.Indices.Schema))
	kids := make([]*Node, 0, 10)
	addExt := func(ext *subgraph.Extension) error {
		if err := dt.CheckExtension(ext.Source.Color, ext.Target.Color, ext.Color); err != nil {
			return err
		}
		b := pat.Builder()
		if _, _, err := b.Extend(ext); err != nil {
			return err
		}
		kid, err := b.Build()
		if err != nil {
			return err
		}
		key := string(kid.Label())
		if !seen[key] {
			seen[key] = true
			kids = append(kids, NewNode(dt, kid, n))
		}
		return nil
	}
	atCap := dt.MaxVertices > 0 && len(pat.V) >= dt.MaxVertices
	if !atCap {
		for idx := range pat.V {
			cu := pat.V[idx].Color
			for _, c := range dt.Indices.Schema {
				if c.SrcColor == cu {
					err := addExt(subgraph.NewExt(
						subgraph.Vertex{Idx: idx, Color: cu},
						subgraph.Vertex{Idx: len(pat.V), Color: c.TargColor},
						c.EdgeColor))
					if err != nil {
						return nil, err
					}
				}
				if c.TargColor == cu && (dt.Directed || c.SrcColor != c.TargColor) {
					var ext *subgraph.Extension
					if dt.Directed {
						ext = subgraph.NewExt(
							subgraph.Vertex{Idx: len(pat.V), Color: c.SrcColor},
							subgraph.Vertex{Idx: idx, Color: cu},
							c.EdgeColor)
					} else {
						ext = subgraph.NewExt(
							subgraph.Vertex{Idx: idx, Color: cu},
							subgraph.Vertex{Idx: len(pat.V), Color: c.SrcColor},
							c.EdgeColor)
					}
					if err := addExt(ext); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	for i := range pat.V {
		for j := range pat.V {
			if i == j {
				continue
			}
			if !dt.Directed && j < i {
				continue
			}
			ci := pat.V[i].Color
			cj := pat.V[j].Color
			for _, c := range dt.Indices.Schema {
				if !tripleMatches(&c, ci, cj, dt.Directed) {
					continue
				}
				if pat.HasEdge(i, j, c.EdgeColor) {
					continue
				}
				err := addExt(subgraph.NewExt(
					subgraph.Vertex{Idx: i, Color: ci},
					subgraph.Vertex{Idx: j, Color: cj},
					c.EdgeColor))
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return kids, nil
}

func tripleMatches(c *digraph.Colors, srcColor, targColor int, directed bool) bool {
	if directed {
		return c.SrcColor == srcColor && c.TargColor == targColor
	}
	if targColor < srcColor {
		srcColor, targColor = targColor, srcColor
	}
	return c.SrcColor == srcColor && c.TargColor == targColor
}

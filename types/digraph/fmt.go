package digraph

import (
	"fmt"
	"io"
	"strings"
)

type Formatter struct {
	dt *Digraph
}

func NewFormatter(dt *Digraph) *Formatter {
	return &Formatter{
		dt: dt,
	}
}

func (f *Formatter) FileExt() string {
	return ".dot"
}

func (f *Formatter) PatternName(n *Node) string {
	return n.Pat.Pretty(f.dt.Labels)
}

func (f *Formatter) FormatPattern(w io.Writer, n *Node) error {
	support, err := n.Support()
	if err != nil {
		return err
	}
	embs, err := n.EmbeddingCount()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "// %s support=%d embeddings=%d\n\n%s\n",
		f.PatternName(n), support, embs, n.Pat.Dotty(f.dt.Labels))
	return err
}

func (f *Formatter) FormatEmbeddings(w io.Writer, n *Node) error {
	embs, err := n.Embeddings()
	if err != nil {
		return err
	}
	for _, emb := range embs {
		ids := emb.Slice(n.Pat)
		parts := make([]string, 0, len(ids))
		for slot, id := range ids {
			parts = append(parts, fmt.Sprintf("%v=%v(%v)",
				slot, id, f.dt.Labels.Label(n.Pat.V[slot].Color)))
		}
		if _, err := fmt.Fprintf(w, "%s\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

package subgraph

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

// MinImageSupport computes the minimum image based support of the
// pattern: for each slot collect the distinct graph vertices matched
// across every embedding, the support is the size of the smallest
// such set. It is anti-monotone, extending a pattern can never raise
// it. The total embedding count is reported alongside.
func (sg *SubGraph) MinImageSupport(indices *digraph.Indices) (support, embs int, err error) {
	if err := sg.validate(); err != nil {
		return 0, 0, err
	}
	images := make([]*set.SortedSet, 0, len(sg.V))
	for range sg.V {
		images = append(images, set.NewSortedSet(10))
	}
	ei := sg.IterEmbeddings(MostConnected, indices, nil)
	for emb, next := ei(false); next != nil; emb, next = next(false) {
		for e := emb; e != nil; e = e.Prev {
			images[e.SgIdx].Add(types.Int(e.EmbIdx))
		}
		embs++
	}
	if embs == 0 {
		return 0, 0, nil
	}
	support = images[0].Size()
	for _, img := range images[1:] {
		if img.Size() < support {
			support = img.Size()
		}
	}
	return support, embs, nil
}

// Embeddings materializes every embedding of the pattern.
func (sg *SubGraph) Embeddings(indices *digraph.Indices) (Embeddings, error) {
	if err := sg.validate(); err != nil {
		return nil, err
	}
	embs := make(Embeddings, 0, 10)
	ei := sg.IterEmbeddings(MostConnected, indices, nil)
	for emb, next := ei(false); next != nil; emb, next = next(false) {
		embs = append(embs, emb)
	}
	return embs, nil
}

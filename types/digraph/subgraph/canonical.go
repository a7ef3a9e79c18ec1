package subgraph

// The canonical form of a pattern is computed by minimizing its
// traversal code over every choice of root vertex and every order the
// edges can be discovered in. A traversal code is the sequence of
// edge entries in discovery order where each entry records the
// positions of the endpoints in the traversal, their colors, and the
// edge color. The lexicographically least code is unique up to
// isomorphism so positions under the minimizing traversal give the
// canonical vertex order.

type codeEntry struct {
	a, b                   int // endpoint positions in the traversal
	aColor, eColor, bColor int
}

func (x *codeEntry) less(y *codeEntry) bool {
	if x.a != y.a {
		return x.a < y.a
	}
	if x.b != y.b {
		return x.b < y.b
	}
	if x.aColor != y.aColor {
		return x.aColor < y.aColor
	}
	if x.eColor != y.eColor {
		return x.eColor < y.eColor
	}
	return x.bColor < y.bColor
}

func (x *codeEntry) equals(y *codeEntry) bool {
	return x.a == y.a && x.b == y.b &&
		x.aColor == y.aColor && x.eColor == y.eColor && x.bColor == y.bColor
}

func codeLess(x, y []codeEntry) bool {
	for i := range x {
		if x[i].less(&y[i]) {
			return true
		}
		if !x[i].equals(&y[i]) {
			return false
		}
	}
	return false
}

// CanonicalPermutation finds the vertex and edge orders of the
// pattern's canonical form. It errs with a MalformedPatternError when
// the pattern is empty or disconnected.
func (b *Builder) CanonicalPermutation() (vord, eord []int, err error) {
	if len(b.V) == 0 {
		return nil, nil, malformed("empty", "{}")
	}
	if len(b.V) == 1 && len(b.E) == 0 {
		return []int{0}, []int{}, nil
	}
	if !b.Connected() {
		return nil, nil, malformed("disconnected", (&SubGraph{V: b.V, E: b.E}).String())
	}
	c := newCanonizer(b)
	for root := range b.V {
		c.searchFrom(root)
	}
	return c.bestVord, c.bestEord, nil
}

type canonizer struct {
	b        *Builder
	adj      [][]int // vertex -> incident edge idxs
	pos      []int   // vertex -> traversal position, -1 when unplaced
	placed   int
	used     []bool // edge already in the traversal
	cur      []codeEntry
	curEmit  []int // traversal step -> edge idx
	best     []codeEntry
	bestVord []int
	bestEord []int
}

func newCanonizer(b *Builder) *canonizer {
	adj := make([][]int, len(b.V))
	for i := range b.E {
		adj[b.E[i].Src] = append(adj[b.E[i].Src], i)
		if b.E[i].Targ != b.E[i].Src {
			adj[b.E[i].Targ] = append(adj[b.E[i].Targ], i)
		}
	}
	pos := make([]int, len(b.V))
	for i := range pos {
		pos[i] = -1
	}
	return &canonizer{
		b:       b,
		adj:     adj,
		pos:     pos,
		used:    make([]bool, len(b.E)),
		cur:     make([]codeEntry, 0, len(b.E)),
		curEmit: make([]int, 0, len(b.E)),
	}
}

func (c *canonizer) searchFrom(root int) {
	c.pos[root] = 0
	c.placed = 1
	cmp := -1
	if c.best != nil {
		cmp = 0
	}
	c.step(cmp)
	c.pos[root] = -1
	c.placed = 0
}

// step extends the current traversal by one edge in every legal way.
// cmp tracks how the current code compares to the best one found so
// far: 0 means equal on the shared prefix, -1 means already strictly
// less. Branches whose next entry exceeds the best code are cut.
func (c *canonizer) step(cmp int) {
	k := len(c.cur)
	if k == len(c.b.E) {
		c.record()
		return
	}
	for eIdx := range c.b.E {
		if c.used[eIdx] {
			continue
		}
		e := &c.b.E[eIdx]
		pSrc := c.pos[e.Src]
		pTarg := c.pos[e.Targ]
		if pSrc == -1 && pTarg == -1 {
			continue
		}
		newV := -1
		if pSrc == -1 {
			newV = e.Src
			pSrc = c.placed
		} else if pTarg == -1 {
			newV = e.Targ
			pTarg = c.placed
		}
		entry := codeEntry{
			a:      pSrc,
			b:      pTarg,
			aColor: c.b.V[e.Src].Color,
			eColor: e.Color,
			bColor: c.b.V[e.Targ].Color,
		}
		if !c.b.Directed && entry.b < entry.a {
			entry.a, entry.b = entry.b, entry.a
			entry.aColor, entry.bColor = entry.bColor, entry.aColor
		}
		ncmp := cmp
		if cmp == 0 {
			if c.best[k].less(&entry) {
				continue
			}
			if entry.less(&c.best[k]) {
				ncmp = -1
			}
		}
		if newV != -1 {
			c.pos[newV] = c.placed
			c.placed++
		}
		c.used[eIdx] = true
		c.cur = append(c.cur, entry)
		c.curEmit = append(c.curEmit, eIdx)
		c.step(ncmp)
		c.curEmit = c.curEmit[:k]
		c.cur = c.cur[:k]
		c.used[eIdx] = false
		if newV != -1 {
			c.placed--
			c.pos[newV] = -1
		}
	}
}

// record keeps the current code only when it improves on the best
// one. The branch and bound flag alone cannot guarantee that: a
// branch marked strictly less keeps that mark while the best code is
// replaced underneath it, so the full comparison settles it.
func (c *canonizer) record() {
	if c.best != nil && !codeLess(c.cur, c.best) {
		return
	}
	c.best = make([]codeEntry, len(c.cur))
	copy(c.best, c.cur)
	c.bestVord = make([]int, len(c.pos))
	copy(c.bestVord, c.pos)
	c.bestEord = make([]int, len(c.curEmit))
	for emitted, eIdx := range c.curEmit {
		c.bestEord[eIdx] = emitted
	}
}

package digraph

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

type baseLoader struct {
	dt       *Digraph
	b        *digraph.Builder
	labels   *digraph.Labels
	vidxs    map[int32]*digraph.Vertex
	excluded map[int32]bool
}

func newBaseLoader(dt *Digraph, b *digraph.Builder, labels *digraph.Labels) *baseLoader {
	return &baseLoader{
		dt:       dt,
		b:        b,
		labels:   labels,
		vidxs:    make(map[int32]*digraph.Vertex),
		excluded: make(map[int32]bool),
	}
}

func (l *baseLoader) addVertex(id int32, label string) (err error) {
	if l.dt.Include != nil && !l.dt.Include.MatchString(label) {
		l.excluded[id] = true
		return nil
	}
	if l.dt.Exclude != nil && l.dt.Exclude.MatchString(label) {
		l.excluded[id] = true
		return nil
	}
	if _, has := l.vidxs[id]; has {
		return errors.Errorf("duplicate vertex id %v", id)
	}
	l.vidxs[id] = l.b.AddVertex(l.labels.Color(label))
	return nil
}

func (l *baseLoader) addEdge(sid, tid int32, label string) (err error) {
	if l.excluded[sid] || l.excluded[tid] {
		return nil
	}
	if l.dt.Include != nil && !l.dt.Include.MatchString(label) {
		return nil
	}
	if l.dt.Exclude != nil && l.dt.Exclude.MatchString(label) {
		return nil
	}
	if src, has := l.vidxs[sid]; !has {
		return errors.Errorf("unknown src id %v", sid)
	} else if targ, has := l.vidxs[tid]; !has {
		return errors.Errorf("unknown targ id %v", tid)
	} else {
		l.b.AddEdge(src, targ, l.labels.Color(label))
	}
	return nil
}

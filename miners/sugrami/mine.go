package sugrami

import (
	"bytes"
	"math"
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sugrami/config"
	"github.com/timtadh/sugrami/miners"
	"github.com/timtadh/sugrami/types/digraph"
)

type state int

const (
	initial state = iota
	seeding
	expanding
	done
)

func (s state) String() string {
	switch s {
	case initial:
		return "INIT"
	case seeding:
		return "SEEDING"
	case expanding:
		return "EXPANDING"
	case done:
		return "DONE"
	}
	return "UNKNOWN"
}

// Miner runs an exhaustive level-wise search for frequent subgraph
// patterns under minimum image support. Level k holds the patterns
// with k edges; each level's frontier is the set of frequent patterns
// found at that level and the next level's candidates are their one
// edge extensions. The search stops when a level yields no frequent
// pattern, which is safe since the support measure is anti-monotone.
//
// Every frequent pattern is reported exactly once, in canonical key
// order within each level.
type Miner struct {
	Config *config.Config
	Dt     *digraph.Digraph
	Rptr   miners.Reporter
	// PruneEdgeTypes enables the edge type frequency heuristic: seeds
	// are visited in descending frequency order and any candidate
	// containing an edge type too rare to reach the threshold is
	// discarded without an embedding search.
	PruneEdgeTypes bool
	state          state
	frontier       []*digraph.Node
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config: conf,
		state:  initial,
	}
}

func (m *Miner) Close() error {
	if m.Rptr != nil {
		return m.Rptr.Close()
	}
	return nil
}

func (m *Miner) State() string {
	return m.state.String()
}

func (m *Miner) Mine(dt *digraph.Digraph, rptr miners.Reporter) error {
	m.Dt = dt
	m.Rptr = rptr
	for m.state != done {
		var err error
		switch m.state {
		case initial:
			err = m.init()
		case seeding:
			err = m.seed()
		case expanding:
			err = m.expand()
		}
		if err != nil {
			m.state = done
			return err
		}
	}
	return nil
}

// init resolves and validates the support threshold and binds it to
// the data type.
func (m *Miner) init() error {
	support := m.Config.Support
	if m.Config.SupportFraction > 0 {
		support = int(math.Ceil(m.Config.SupportFraction * float64(len(m.Dt.G.V))))
	}
	if support <= 0 || support > len(m.Dt.G.V) {
		return &miners.InvalidThresholdError{Support: support, Vertices: len(m.Dt.G.V)}
	}
	m.Dt.Support = support
	errors.Logf("INFO", "mining %v with support %v (|V| %v, |E| %v, schema %v)",
		m.state, support, len(m.Dt.G.V), len(m.Dt.G.E), len(m.Dt.Indices.Schema))
	m.state = seeding
	return nil
}

// seed builds the level 1 frontier from the one edge patterns.
func (m *Miner) seed() error {
	var seeds []*digraph.Node
	var err error
	if m.PruneEdgeTypes {
		seeds, err = m.Dt.SeedsFrom(m.Dt.Indices.FrequentEdgeTypes(1))
	} else {
		seeds, err = m.Dt.Seeds()
	}
	if err != nil {
		return err
	}
	m.frontier, err = m.retain(seeds)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "level 1: %v seeds, %v frequent", len(seeds), len(m.frontier))
	m.state = expanding
	return nil
}

// expand generates, deduplicates, and evaluates the next level's
// candidates from the current frontier.
func (m *Miner) expand() error {
	if len(m.frontier) == 0 {
		m.state = done
		return nil
	}
	level := m.frontier[0].Level() + 1
	seen := make(map[string]bool, len(m.frontier)*4)
	cands := make([]*digraph.Node, 0, len(m.frontier)*2)
	for _, n := range m.frontier {
		kids, err := n.Extensions()
		if err != nil {
			return err
		}
		for _, kid := range kids {
			key := string(kid.Label())
			if !seen[key] {
				seen[key] = true
				cands = append(cands, kid)
			}
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		return bytes.Compare(cands[i].Label(), cands[j].Label()) < 0
	})
	frontier, err := m.retain(cands)
	if err != nil {
		return err
	}
	errors.Logf("INFO", "level %v: %v candidates, %v frequent", level, len(cands), len(frontier))
	m.frontier = frontier
	if len(m.frontier) == 0 {
		m.state = done
	}
	return nil
}

// retain evaluates each candidate's support, keeps and reports the
// frequent ones.
func (m *Miner) retain(cands []*digraph.Node) ([]*digraph.Node, error) {
	kept := make([]*digraph.Node, 0, len(cands))
	for _, n := range cands {
		if m.PruneEdgeTypes && n.MinEdgeTypeFrequency() < m.Dt.Support {
			continue
		}
		support, err := n.Support()
		if err != nil {
			return nil, err
		}
		if support >= m.Dt.Support {
			kept = append(kept, n)
			if err := m.Rptr.Report(n); err != nil {
				return nil, err
			}
		}
	}
	return kept, nil
}

package sopagrami

import (
	"github.com/timtadh/sugrami/config"
	"github.com/timtadh/sugrami/miners/sugrami"
)

// Miner is the heuristically pruned variant of the level-wise search.
// Seeds are visited in descending edge type frequency order and any
// candidate carrying an edge type too rare to reach the support
// threshold is discarded before its embedding search. The pruning is
// sound, an upper bound on support is compared against the threshold,
// so the reported patterns match the exhaustive miner's.
type Miner struct {
	*sugrami.Miner
}

func NewMiner(conf *config.Config) *Miner {
	m := sugrami.NewMiner(conf)
	m.PruneEdgeTypes = true
	return &Miner{m}
}

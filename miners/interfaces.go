package miners

import (
	"github.com/timtadh/sugrami/types/digraph"
)

// Note: the miner's Close function should close the reporter that was
// passed into it.
type Miner interface {
	Mine(*digraph.Digraph, Reporter) error
	Close() error
}

type Reporter interface {
	Report(*digraph.Node) error
	Close() error
}

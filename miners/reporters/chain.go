package reporters

import (
	"github.com/timtadh/sugrami/miners"
	"github.com/timtadh/sugrami/types/digraph"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(n *digraph.Node) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(n)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

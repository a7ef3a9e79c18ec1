package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sugrami/types/digraph"
)

type Log struct {
	level  string
	prefix string
	count  int
}

func NewLog(level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{level: level, prefix: prefix}
}

func (lr *Log) Report(n *digraph.Node) error {
	lr.count++
	support, err := n.Support()
	if err != nil {
		return err
	}
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v (support %v) %v", lr.prefix, lr.count, support, n)
	} else {
		errors.Logf(lr.level, "%v (support %v) %v", lr.count, support, n)
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}

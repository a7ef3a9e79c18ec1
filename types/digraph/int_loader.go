package digraph

import (
	"bytes"
	"strconv"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

// IntLoader reads the lg format: one record per line, either
//
//	v <id> <label>
//	e <src> <targ> <label>
//
// Lines containing # are skipped.
type IntLoader struct {
	dt *Digraph
}

func NewIntLoader(dc *Config) *IntLoader {
	return &IntLoader{
		dt: NewDigraph(dc),
	}
}

func (v *IntLoader) Load(input Input) (*Digraph, error) {
	return v.LoadWithLabels(input, digraph.NewLabels())
}

func (v *IntLoader) LoadWithLabels(input Input, labels *digraph.Labels) (*Digraph, error) {
	b, err := v.loadDigraph(input, labels)
	if err != nil {
		return nil, err
	}
	err = v.dt.Init(b, labels)
	if err != nil {
		return nil, err
	}
	return v.dt, nil
}

func (v *IntLoader) loadDigraph(input Input, labels *digraph.Labels) (*digraph.Builder, error) {
	var errs ErrorList
	V, E, err := intGraphSize(input)
	if err != nil {
		return nil, err
	}
	G := digraph.Build(V, E)
	b := newBaseLoader(v.dt, G, labels)

	in, closer := input()
	defer closer()
	err = processLines(in, func(line []byte) {
		if len(line) == 0 || bytes.Contains(line, []byte("#")) {
			return
		}
		line_type, data := intParseLine(line)
		switch line_type {
		case "v":
			if err := v.loadVertex(b, data); err != nil {
				errs = append(errs, err)
			}
		case "e":
			if err := v.loadEdge(b, data); err != nil {
				errs = append(errs, err)
			}
		default:
			errs = append(errs, errors.Errorf("Unknown line type %v", line_type))
		}
	})
	if err != nil {
		return nil, err
	}
	if len(errs) == 0 {
		return G, nil
	}
	return nil, errs
}

func (v *IntLoader) loadVertex(b *baseLoader, data []byte) (err error) {
	split := bytes.SplitN(data, []byte(" "), 2)
	if len(split) != 2 {
		return errors.Errorf("malformed vertex line %q", string(data))
	}
	id, err := strconv.Atoi(string(split[0]))
	if err != nil {
		return err
	}
	label := string(split[1])
	return b.addVertex(int32(id), label)
}

func (v *IntLoader) loadEdge(b *baseLoader, data []byte) (err error) {
	split := bytes.SplitN(data, []byte(" "), 3)
	if len(split) != 3 {
		return errors.Errorf("malformed edge line %q", string(data))
	}
	src, err := strconv.Atoi(string(split[0]))
	if err != nil {
		return err
	}
	targ, err := strconv.Atoi(string(split[1]))
	if err != nil {
		return err
	}
	label := string(split[2])
	return b.addEdge(int32(src), int32(targ), label)
}

func intParseLine(line []byte) (line_type string, data []byte) {
	split := bytes.SplitN(line, []byte(" "), 2)
	if len(split) < 2 {
		return strings.TrimSpace(string(split[0])), nil
	}
	return strings.TrimSpace(string(split[0])), bytes.TrimSpace(split[1])
}

func intGraphSize(input Input) (V, E int, err error) {
	in, closer := input()
	defer closer()
	err = processLines(in, func(line []byte) {
		if bytes.HasPrefix(line, []byte("v ")) {
			V++
		} else if bytes.HasPrefix(line, []byte("e ")) {
			E++
		}
	})
	if err != nil {
		return 0, 0, err
	}
	return V, E, nil
}

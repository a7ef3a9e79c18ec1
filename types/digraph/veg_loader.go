package digraph

import (
	"bytes"
	"encoding/json"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

// VegLoader reads the veg format: one record per line, either
//
//	vertex\t{"id": <int>, "label": <string>, ...}
//	edge\t{"src": <int>, "targ": <int>, "label": <string>, ...}
type VegLoader struct {
	dt *Digraph
}

func NewVegLoader(dc *Config) *VegLoader {
	return &VegLoader{
		dt: NewDigraph(dc),
	}
}

func (v *VegLoader) Load(input Input) (*Digraph, error) {
	return v.LoadWithLabels(input, digraph.NewLabels())
}

func (v *VegLoader) LoadWithLabels(input Input, labels *digraph.Labels) (*Digraph, error) {
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

func (v *VegLoader) loadDigraph(input Input, labels *digraph.Labels) (*digraph.Builder, error) {
	var errs ErrorList
	V, E, err := graphSize(input)
	if err != nil {
		return nil, err
	}
	G := digraph.Build(V, E)
	b := newBaseLoader(v.dt, G, labels)

	in, closer := input()
	defer closer()
	err = processLines(in, func(line []byte) {
		if len(line) == 0 || !bytes.Contains(line, []byte("\t")) {
			return
		}
		line_type, data := parseLine(line)
		switch line_type {
		case "vertex":
			if err := v.loadVertex(b, data); err != nil {
				errs = append(errs, err)
			}
		case "edge":
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

func (v *VegLoader) loadVertex(b *baseLoader, data []byte) (err error) {
	obj, err := parseJson(data)
	if err != nil {
		return err
	}
	_id, err := obj["id"].(json.Number).Int64()
	if err != nil {
		return err
	}
	label := strings.TrimSpace(obj["label"].(string))
	return b.addVertex(int32(_id), label)
}

func (v *VegLoader) loadEdge(b *baseLoader, data []byte) (err error) {
	obj, err := parseJson(data)
	if err != nil {
		return err
	}
	_src, err := obj["src"].(json.Number).Int64()
	if err != nil {
		return err
	}
	_targ, err := obj["targ"].(json.Number).Int64()
	if err != nil {
		return err
	}
	label := strings.TrimSpace(obj["label"].(string))
	return b.addEdge(int32(_src), int32(_targ), label)
}

func graphSize(input Input) (V, E int, err error) {
	in, closer := input()
	defer closer()
	err = processLines(in, func(line []byte) {
		if bytes.HasPrefix(line, []byte("vertex")) {
			V++
		} else if bytes.HasPrefix(line, []byte("edge")) {
			E++
		}
	})
	if err != nil {
		return 0, 0, err
	}
	return V, E, nil
}

package mine

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"bytes"
	"sort"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/exc"
)

import (
	"github.com/timtadh/sugrami/config"
	"github.com/timtadh/sugrami/miners"
	"github.com/timtadh/sugrami/miners/reporters"
	"github.com/timtadh/sugrami/miners/sopagrami"
	"github.com/timtadh/sugrami/miners/sugrami"
	"github.com/timtadh/sugrami/types/digraph"
)

// NewMiner constructs a miner from a configuration.
type NewMiner func(conf *config.Config) miners.Miner

// Variants names the available mining algorithms. Both produce the
// same set of frequent patterns; sopagrami additionally prunes
// candidates whose edge type frequencies already rule them out.
var Variants = map[string]NewMiner{
	"sugrami":   func(conf *config.Config) miners.Miner { return sugrami.NewMiner(conf) },
	"sopagrami": func(conf *config.Config) miners.Miner { return sopagrami.NewMiner(conf) },
}

// Mine runs the miner to completion on dt and returns every frequent
// pattern it reported, ordered by support (descending) and then by
// canonical label. Any extra reporters see each pattern as it is
// found. If the run fails partway the patterns found before the
// failure are returned along with the error.
func Mine(dt *digraph.Digraph, miner miners.Miner, extra ...miners.Reporter) (nodes []*digraph.Node, err error) {
	collector := &reporters.Collector{}
	var rptr miners.Reporter = collector
	if len(extra) > 0 {
		chain := append([]miners.Reporter{collector}, extra...)
		rptr = &reporters.Chain{Reporters: chain}
	}
	err = exc.Try(func() {
		exc.ThrowOnError(miner.Mine(dt, rptr))
		exc.ThrowOnError(miner.Close())
	}).Error()
	nodes = collector.Nodes
	sort.Slice(nodes, func(i, j int) bool {
		si, _ := nodes[i].Support()
		sj, _ := nodes[j].Support()
		if si != sj {
			return si > sj
		}
		return bytes.Compare(nodes[i].Label(), nodes[j].Label()) < 0
	})
	return nodes, err
}

// MineAll constructs the named variant, mines dt, and returns the
// sorted patterns. It is the entry point for callers which already
// hold a loaded graph.
func MineAll(dt *digraph.Digraph, conf *config.Config, variant string) ([]*digraph.Node, error) {
	newMiner, has := Variants[variant]
	if !has {
		return nil, errors.Errorf("unknown mining variant '%v'", variant)
	}
	return Mine(dt, newMiner(conf))
}

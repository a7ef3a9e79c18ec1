package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2016, Tim Henderson, Case Western Reserve University
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
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/dot"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/sugrami/cmd"
)

func init() {
	cmd.UsageMessage = "dot-to-veg --help"
	cmd.ExtendedMessage = `
dot-to-veg converts a graphviz dot file into the veg or lg line
formats read by the sugrami loaders.

dot-to-veg -i graph.dot -o graph.veg
cat graph.dot | dot-to-veg > out.veg
dot-to-veg --format=lg -i graph.dot -o graph.lg

Options
    -h, --help                view this message
    -i, --input=<path>        input dot file (default stdin)
    -o, --output=<path>       output path (default stdout)
                              a '.gz' suffix gzips the output
    -f, --format=<veg|lg>     output format (default veg)
`
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"hi:o:f:",
		[]string{
			"help",
			"input=",
			"output=",
			"format=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "trailing args: %v\n", args)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	inputPath := ""
	outputPath := ""
	format := "veg"
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-i", "--input":
			inputPath = cmd.AssertFileExists(oa.Arg())
		case "-o", "--output":
			outputPath = cmd.AssertFile(oa.Arg())
		case "-f", "--format":
			format = oa.Arg()
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	var emit emitter
	switch format {
	case "veg":
		emit = vegEmitter{}
	case "lg":
		emit = lgEmitter{}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format '%v'\n", format)
		fmt.Fprintln(os.Stderr, "formats: veg, lg")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	var input io.Reader
	if inputPath != "" {
		inputf, err := os.Open(inputPath)
		if err != nil {
			errors.Logf("ERROR", "could not open %v : %v", inputPath, err)
			return 1
		}
		defer inputf.Close()
		input = inputf
	} else {
		inputPath = "<stdin>"
		input = os.Stdin
	}

	var output io.Writer
	if outputPath != "" {
		outputf, err := os.Create(outputPath)
		if err != nil {
			errors.Logf("ERROR", "could not open %v : %v", outputPath, err)
			return 1
		}
		defer outputf.Close()
		if strings.HasSuffix(outputPath, ".gz") {
			z := gzip.NewWriter(outputf)
			defer z.Close()
			output = z
		} else {
			output = outputf
		}
	} else {
		outputPath = "<stdout>"
		output = os.Stdout
	}

	errors.Logf("INFO", "converting %v writing %v to %v", inputPath, format, outputPath)
	err = convert(input, output, emit)
	if err != nil {
		errors.Logf("ERROR", "error converting dot %v", err)
		return 1
	}
	return 0
}

func convert(input io.Reader, output io.Writer, emit emitter) (err error) {
	text, err := ioutil.ReadAll(input)
	if err != nil {
		return err
	}
	p := &dotParse{
		output:   output,
		emit:     emit,
		vertices: make(map[graphVertex]int),
	}
	return dot.StreamParse(text, p)
}

// emitter writes one vertex or edge line in some output format.
type emitter interface {
	vertex(w io.Writer, id int, label string) error
	edge(w io.Writer, src, targ int, label string) error
}

type vegEmitter struct{}

func (vegEmitter) vertex(w io.Writer, id int, label string) error {
	j, err := json.Marshal(map[string]interface{}{"id": id, "label": label})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "vertex\t%v\n", string(j))
	return err
}

func (vegEmitter) edge(w io.Writer, src, targ int, label string) error {
	j, err := json.Marshal(map[string]interface{}{"src": src, "targ": targ, "label": label})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "edge\t%v\n", string(j))
	return err
}

type lgEmitter struct{}

func (lgEmitter) vertex(w io.Writer, id int, label string) error {
	_, err := fmt.Fprintf(w, "v %d %s\n", id, label)
	return err
}

func (lgEmitter) edge(w io.Writer, src, targ int, label string) error {
	_, err := fmt.Fprintf(w, "e %d %d %s\n", src, targ, label)
	return err
}

type graphVertex struct {
	graph int
	sid   string
}

type dotParse struct {
	output          io.Writer
	emit            emitter
	graph, subgraph int
	vertices        map[graphVertex]int
	nextVertex      int
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if name == "Graph" {
		p.graph += 1
	} else if name == "SubGraph" {
		p.subgraph += 1
	}
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	if p.subgraph > 0 {
		return nil
	}
	switch n.Label {
	case "Node":
		return p.vertex(n)
	case "Edge":
		return p.edge(n)
	}
	return nil
}

func (p *dotParse) Exit(name string) error {
	if name == "SubGraph" {
		p.subgraph--
	}
	return nil
}

func (p *dotParse) vid(sid string) int {
	x := graphVertex{p.graph, sid}
	if vid, has := p.vertices[x]; has {
		return vid
	}
	vid := p.nextVertex
	p.nextVertex++
	p.vertices[x] = vid
	return vid
}

func attrMap(n *combos.Node) map[string]string {
	attrs := make(map[string]string)
	for _, attr := range n.Children {
		name := attr.Get(0).Value.(string)
		value := attr.Get(1).Value.(string)
		attrs[name] = value
	}
	return attrs
}

func (p *dotParse) vertex(n *combos.Node) (err error) {
	sid := n.Get(0).Value.(string)
	attrs := attrMap(n.Get(1))
	label := sid
	if l, has := attrs["label"]; has {
		label = l
	}
	return p.emit.vertex(p.output, p.vid(sid), label)
}

func (p *dotParse) edge(n *combos.Node) (err error) {
	srcSid := n.Get(0).Value.(string)
	targSid := n.Get(1).Value.(string)
	attrs := attrMap(n.Get(2))
	label := ""
	if l, has := attrs["label"]; has {
		label = l
	}
	return p.emit.edge(p.output, p.vid(srcSid), p.vid(targSid), label)
}

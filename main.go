package main

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
	"fmt"
	"log"
	"os"
	"regexp"
	"runtime/pprof"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/sugrami/cmd"
	"github.com/timtadh/sugrami/config"
	"github.com/timtadh/sugrami/miners"
	"github.com/timtadh/sugrami/miners/sopagrami"
	"github.com/timtadh/sugrami/miners/sugrami"
	"github.com/timtadh/sugrami/types/digraph"
)

func init() {
	cmd.UsageMessage = "sugrami --help"
	cmd.ExtendedMessage = `
sugrami - mine frequent subgraphs from a single large graph

$ sugrami --support=<int> [Global Options] \
    <input-path> \
    <mode> [Mode Options] \
    [<reporter> [Reporter Options]]

Note: You must supply [Global Options] then <input-path> then
      <mode> [Mode Options] and finally the optional reporter. Changes
      in ordering are not supported.

Note: You may either supply the <input-path> as a regular file or a
      gzipped file. If supplying a gzip file the file extension must
      be '.gz'.

Note: If you don't supply a reporter it defaults to 'log', or to
      'chain log file' when an output directory was given.

Global Options
    -h, --help                view this message
    --modes                   show the available modes
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (optional)
                              NB: will overwrite contents of dir
    -s, --support=<int>       minimum image support of mined patterns
    --fraction=<float>        support as a fraction of the vertex
                              count (alternative to --support)
    --max-vertices=<int>      maximum pattern size in vertices
                              (0, the default, means unbounded)
    --directed                treat the graph edges as directed
    -l, --loader=<name>       the loader to use (default veg)
    --include=<regex>         keep only vertices whose label matches
    --exclude=<regex>         drop vertices whose label matches
    --skip-log=<level>        don't output the given log level

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Loaders
    veg File Format
        The veg file format is a line delimited format with vertex
        lines and edge lines. For example:

        vertex	{"id":136,"label":""}
        edge	{"src":23,"targ":25,"label":"ddg"}

        Note: the spaces between vertex and {...} are tabs
        Note: the spaces between edge and {...} are tabs

    lg File Format
        A line delimited format with 'v' and 'e' lines:

        v 0 red
        v 1 blue
        e 0 1 knows

        Lines starting with '#' are skipped.

    dot File Format
        Graphviz dot files. Vertex and edge labels come from the
        'label' attribute; a vertex without one is labeled with its
        node name.

Modes
    sugrami                   exhaustive level-wise search
    sopagrami                 the same search with sound edge type
                              frequency pruning

Reporters
    chain                     chain several reporters together (end
                              the chain with endchain)
    log                       log the patterns
    file                      write the patterns to a file in the
                              output dir

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -e, embeddings=<name> the prefix of the name of the file in
                              the output directory to write the
                              embeddings
        -p, patterns=<name>   the prefix of the name of the file in
                              the output directory to write the
                              patterns

Examples

    $ sugrami --support=5 ./digraph.veg.gz sugrami

    $ sugrami -o /tmp/sugrami --support=5 --max-vertices=8 \
        ./digraph.veg.gz \
        sopagrami \
        chain log file

    $ sugrami --fraction=.05 --loader=lg --directed \
        ./graph.lg sugrami
`
}

func sugramiMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return sugrami.NewMiner(conf), args
}

func sopagramiMode(argv []string, conf *config.Config) (miners.Miner, []string) {
	args, optargs, err := getopt.GetOpt(
		argv,
		"h",
		[]string{
			"help",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}
	return sopagrami.NewMiner(conf), args
}

func parseRegex(str string) *regexp.Regexp {
	re, err := regexp.Compile(str)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Expected a regex got: '%v' err: %v\n", str, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	return re
}

func main() {
	os.Exit(run())
}

func run() int {
	modes := map[string]cmd.Mode{
		"sugrami":   sugramiMode,
		"sopagrami": sopagramiMode,
	}

	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:s:l:",
		[]string{
			"help",
			"output=",
			"modes", "reporters",
			"support=",
			"fraction=",
			"max-vertices=",
			"directed",
			"loader=",
			"include=",
			"exclude=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments (perhaps you forgot a mode?) try:")
		fmt.Fprintf(os.Stderr, "$ %v %v sugrami\n", os.Args[0], strings.Join(os.Args[1:], " "))
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	support := 0
	fraction := 0.0
	maxVertices := 0
	directed := false
	loaderType := "veg"
	var include, exclude *regexp.Regexp
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "-s", "--support":
			support = cmd.ParseInt(oa.Arg())
		case "--fraction":
			fraction = cmd.ParseFloat(oa.Arg())
		case "--max-vertices":
			maxVertices = cmd.ParseInt(oa.Arg())
		case "--directed":
			directed = true
		case "-l", "--loader":
			loaderType = oa.Arg()
		case "--include":
			include = parseRegex(oa.Arg())
		case "--exclude":
			exclude = parseRegex(oa.Arg())
		case "--modes":
			fmt.Fprintln(os.Stderr, "Modes:")
			for k := range modes {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 && fraction <= 0 {
		fmt.Fprintf(os.Stderr, "You must supply --support or --fraction\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	dc := &digraph.Config{
		MaxVertices: maxVertices,
		Directed:    directed,
		Include:     include,
		Exclude:     exclude,
	}

	var loader digraph.Loader
	switch loaderType {
	case "veg":
		loader = digraph.NewVegLoader(dc)
	case "lg":
		loader = digraph.NewIntLoader(dc)
	case "dot":
		loader = digraph.NewDotLoader(dc)
	default:
		fmt.Fprintf(os.Stderr, "Unknown graph loader '%v'\n", loaderType)
		fmt.Fprintln(os.Stderr, "loaders: veg, lg, dot")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Output:          output,
		Support:         support,
		SupportFraction: fraction,
	}
	return cmd.Main(args, conf, loader, modes)
}

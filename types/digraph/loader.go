package digraph

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// Input supplies a reader and a closer for it. Loaders may consume
// the input more than once (once to size the graph, once to load it).
type Input func() (io.Reader, func())

// Loader parses a host graph from an input.
type Loader interface {
	Load(input Input) (*Digraph, error)
}

func processLines(in io.Reader, process func([]byte)) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		unsafe := scanner.Bytes()
		line := make([]byte, len(unsafe))
		copy(line, unsafe)
		process(line)
	}
	return scanner.Err()
}

func parseJson(data []byte) (obj map[string]interface{}, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseLine(line []byte) (line_type string, data []byte) {
	split := bytes.Split(line, []byte("\t"))
	return strings.TrimSpace(string(split[0])), bytes.TrimSpace(split[1])
}

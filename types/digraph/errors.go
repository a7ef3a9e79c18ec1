package digraph

import (
	"fmt"
	"strings"
)

import (
	"github.com/timtadh/sugrami/types/digraph/digraph"
)

type ErrorList []error

func (self ErrorList) Error() string {
	var s []string
	for _, err := range self {
		s = append(s, err.Error())
	}
	return "Errors [" + strings.Join(s, ", ") + "]"
}

// UnknownLabelError reports an extension whose label triple never
// occurs in the graph.
type UnknownLabelError struct {
	Triple digraph.Colors
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("label triple (%v, %v, %v) does not occur in the graph",
		e.Triple.SrcColor, e.Triple.TargColor, e.Triple.EdgeColor)
}

package subgraph

import (
	"fmt"
)

// MalformedPatternError reports a pattern that cannot be
// canonicalized or matched: it is empty or disconnected.
type MalformedPatternError struct {
	Reason string
	Pat    string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern (%v): %v", e.Reason, e.Pat)
}

func malformed(reason, pat string) *MalformedPatternError {
	return &MalformedPatternError{Reason: reason, Pat: pat}
}

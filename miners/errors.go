package miners

import (
	"fmt"
)

// InvalidThresholdError reports a support threshold that resolved
// outside of (0, |V|].
type InvalidThresholdError struct {
	Support  int
	Vertices int
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("support threshold %v is outside of (0, %v]", e.Support, e.Vertices)
}

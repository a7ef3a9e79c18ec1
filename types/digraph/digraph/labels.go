package digraph

import (
	"fmt"
	"sync"
)

// Labels interns label strings as dense int colors so the rest of the
// engine can compare labels as ints. Vertex and edge labels share one
// color space. Safe for concurrent use.
type Labels struct {
	mu     sync.RWMutex
	colors map[string]int
	names  []string
}

func NewLabels() *Labels {
	return &Labels{
		colors: make(map[string]int, 1000),
		names:  make([]string, 0, 1000),
	}
}

// Color returns the color for label, interning it on first sight.
func (l *Labels) Color(label string) int {
	l.mu.RLock()
	color, has := l.colors[label]
	l.mu.RUnlock()
	if has {
		return color
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if color, has := l.colors[label]; has {
		return color
	}
	color = len(l.names)
	l.colors[label] = color
	l.names = append(l.names, label)
	return color
}

// Label returns the string a color was interned from.
func (l *Labels) Label(color int) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if color < 0 || color >= len(l.names) {
		return fmt.Sprintf("unknown-color-%d", color)
	}
	return l.names[color]
}

// Labels returns every interned label indexed by color.
func (l *Labels) Labels() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, len(l.names))
	copy(names, l.names)
	return names
}

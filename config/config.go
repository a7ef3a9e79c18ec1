package config

import (
	"path/filepath"
)

// Config carries the run wide settings. Exactly one of Support and
// SupportFraction selects the minimum image support threshold: a
// positive Support is an absolute count, a positive SupportFraction
// is resolved against the vertex count of the loaded graph.
type Config struct {
	Output          string
	Support         int
	SupportFraction float64
}

func (c *Config) Copy() *Config {
	return &Config{
		Output:          c.Output,
		Support:         c.Support,
		SupportFraction: c.SupportFraction,
	}
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

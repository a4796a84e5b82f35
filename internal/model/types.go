// Package model defines shared data structures.
package model

// Config defines resolved run settings after merging flags and the config file.
type Config struct {
	Color       string
	LettersOnly bool
	ASCIIOnly   bool
	Verbose     bool
	Workers     int
}

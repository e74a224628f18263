// Package model defines shared data structures.
package model

// Config defines practice settings resolved from flags and the config file.
type Config struct {
	Lang    string
	Shuffle bool

	Mute     bool
	Bell     bool
	Player   string
	AssetDir string

	// CellWidth and CellHeight convert terminal cells to pixels for the
	// movement threshold.
	CellWidth  float64
	CellHeight float64

	BridgeAddr     string
	AllowedOrigins []string
}

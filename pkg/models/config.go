package models

// Config holds the effective configuration for a todo invocation.
type Config struct {
	// TodoFile is the path of the backing file.
	TodoFile string `yaml:"file"`

	// Markers are the two-glyph done-column indicators used by list output.
	Markers MarkerConfig `yaml:"markers"`
}

// MarkerConfig holds the glyphs rendered in the done column.
type MarkerConfig struct {
	Done    string `yaml:"done"`
	Pending string `yaml:"pending"`
}

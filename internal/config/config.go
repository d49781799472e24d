package config

import (
	"github.com/dastanaron/arc-bookmarks/internal/sidebar"
)

const (
	DefaultInputPath    = "StorableSidebar.json"
	DefaultOutputPrefix = "arc_bookmarks"
)

// Config holds application configuration
type Config struct {
	InputPath    string
	OutputDir    string
	OutputPrefix string
	Policy       sidebar.Policy
	Escape       bool
	MaxDepth     int
	Verify       bool
	DBPath       string // empty disables the bookmark store
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		InputPath:    DefaultInputPath,
		OutputDir:    ".",
		OutputPrefix: DefaultOutputPrefix,
		Policy:       sidebar.PolicyLargest,
	}
}

// WithInputPath sets the sidebar export to read
func (c *Config) WithInputPath(path string) *Config {
	if path != "" {
		c.InputPath = path
	}
	return c
}

// WithOutputDir sets the directory the HTML file is written to
func (c *Config) WithOutputDir(dir string) *Config {
	if dir != "" {
		c.OutputDir = dir
	}
	return c
}

// WithOutputPrefix sets the output file name prefix
func (c *Config) WithOutputPrefix(prefix string) *Config {
	if prefix != "" {
		c.OutputPrefix = prefix
	}
	return c
}

// WithPolicy sets the container selection policy
func (c *Config) WithPolicy(p sidebar.Policy) *Config {
	c.Policy = p
	return c
}

// WithEscape turns HTML escaping of titles and URLs on or off
func (c *Config) WithEscape(escape bool) *Config {
	c.Escape = escape
	return c
}

// WithMaxDepth limits folder nesting; 0 means unlimited
func (c *Config) WithMaxDepth(depth int) *Config {
	c.MaxDepth = depth
	return c
}

// WithVerify enables re-reading the rendered document before writing it
func (c *Config) WithVerify(verify bool) *Config {
	c.Verify = verify
	return c
}

// WithDBPath sets a bookmark database to load the converted tree into
func (c *Config) WithDBPath(path string) *Config {
	c.DBPath = path
	return c
}

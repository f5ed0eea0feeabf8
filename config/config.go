// Package config handles perch.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFileChunkSize is the pull size for file- and reader-backed stream
// sources when perch.toml does not override it.
const DefaultFileChunkSize = 64 * 1024

// Config represents a perch.toml runtime configuration.
type Config struct {
	Dispatch DispatchConfig `toml:"dispatch"`
	Stream   StreamConfig   `toml:"stream"`

	// Dir is the directory containing the perch.toml file (set at load time).
	Dir string `toml:"-"`
}

// DispatchConfig configures the lazy native dispatcher.
type DispatchConfig struct {
	// Checked enables bounds checking of generated negative tokens. Off by
	// default: the table invariant is enforced at generation time, and the
	// unchecked path is the zero-overhead one.
	Checked bool `toml:"checked"`

	// DebugAsserts enables argument-shape assertions on dispatch, the
	// equivalent of an instrumented build.
	DebugAsserts bool `toml:"debug-asserts"`
}

// StreamConfig configures native stream sources.
type StreamConfig struct {
	FileChunkSize int `toml:"file-chunk-size"`
}

// Default returns the configuration used when no perch.toml exists.
func Default() *Config {
	return &Config{
		Stream: StreamConfig{FileChunkSize: DefaultFileChunkSize},
	}
}

// Load parses a perch.toml file from the given directory. A missing file is
// not an error; defaults are returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "perch.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c := Default()
			c.Dir = dir
			return c, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	c.Dir = dir

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return c, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Stream.FileChunkSize <= 0 {
		return fmt.Errorf("stream.file-chunk-size must be positive, got %d", c.Stream.FileChunkSize)
	}
	return nil
}

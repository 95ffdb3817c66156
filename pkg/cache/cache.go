// Package cache provides byte-level caching for rendered previews.
//
// # Overview
//
// Rendering a preview of a large drawing is cheap but not free, and the CLI
// may be asked for the same preview repeatedly. The cache stores rendered
// artifacts keyed by a content hash of the drawing file plus the render
// options, so an unchanged drawing never renders twice.
//
// Two implementations are provided:
//
//   - [FileCache]: entries on disk, for CLI usage across invocations
//   - [NullCache]: stores nothing, for tests and --no-cache runs
//
// Keys are built by a [Keyer] so that callers never concatenate key strings
// by hand. [ScopedKeyer] prefixes keys for shared cache directories.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// PreviewKeyOpts are the render parameters that distinguish one preview of
// the same drawing from another.
type PreviewKeyOpts struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
}

// Keyer builds cache keys.
type Keyer interface {
	// PreviewKey keys a rendered preview by the drawing's content hash and
	// the render options.
	PreviewKey(drawingHash string, opts PreviewKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PreviewKey generates a key for preview caching.
func (DefaultKeyer) PreviewKey(drawingHash string, opts PreviewKeyOpts) string {
	return hashKey("preview", drawingHash, opts)
}

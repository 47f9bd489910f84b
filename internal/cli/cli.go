// Package cli implements the adproof command-line interface.
//
// This package provides commands for rendering creative previews from
// record files or the creative store, inspecting the variant catalog,
// serving the HTTP preview API, and managing the artifact cache. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a creative preview to HTML, SVG, JSON, or DOT
//   - variants: List the placement variant catalog
//   - browse: Interactively browse variants and render samples
//   - serve: Start the HTTP preview service
//   - cache: Manage the local artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "adproof"

// newRunner creates a pipeline runner for CLI use. Stored-creative
// lookups need a store, which the CLI only wires for serve; render
// against the store goes through the configured backend instead.
func newRunner(noCache bool, logger *log.Logger) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), nil, nil, logger)
}

// newCache returns the local file cache, or a null cache when caching
// is disabled or the cache directory cannot be determined.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using XDG standard (~/.cache/adproof/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
// If empty, defaults to ["html"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatHTML}
	}
	return strings.Split(s, ",")
}

// parseData parses repeated key=value flags into an override map.
// Values without an '=' are treated as empty-string overrides, which
// the resolver ignores.
func parseData(pairs []string) map[string]any {
	if len(pairs) == 0 {
		return nil
	}
	data := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, _ := strings.Cut(p, "=")
		data[key] = value
	}
	return data
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// Package cache provides byte-oriented caching for the render pipeline.
//
// Three key families exist, one per pipeline stage: record keys for
// fetched creative records, render keys for composed trees, and
// artifact keys for encoded output documents. A [Keyer] derives them;
// [Cache] implementations store the bytes. Backends cover local files,
// Redis, and a no-op null cache for tests and one-shot runs.
package cache

import (
	"context"
	"time"
)

// Default TTLs per key family. Records change when campaigns are
// edited, so they expire fastest; artifacts are pure functions of
// their inputs and can live long.
const (
	TTLRecord   = 15 * time.Minute
	TTLRender   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry time-to-live. Implementations
// must treat a missing key as (nil, false, nil), not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RenderKeyOpts carries every input that changes a composed tree.
// Omitting a field here causes stale-cache bugs, so overrides are
// included wholesale.
type RenderKeyOpts struct {
	Variant   string
	Locked    bool
	ViewOnly  bool
	Origin    string
	VideoURL  string
	ImageURL  string
	Overrides map[string]any
}

// ArtifactKeyOpts identifies an encoded output document.
type ArtifactKeyOpts struct {
	Format   string
	Width    float64
	Fragment bool
}

// Keyer derives cache keys for the pipeline stages.
type Keyer interface {
	// RecordKey identifies a fetched creative record by source and id.
	RecordKey(source, id string) string

	// RenderKey identifies a composed tree by the record content hash
	// and the full render options.
	RenderKey(recordHash string, opts RenderKeyOpts) string

	// ArtifactKey identifies an encoded document by the tree content
	// hash and the output format options.
	ArtifactKey(renderHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256 so arbitrary
// variant keys, URLs, and override maps stay filesystem- and
// Redis-safe.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

func (k *DefaultKeyer) RecordKey(source, id string) string {
	return hashKey("record", source, id)
}

func (k *DefaultKeyer) RenderKey(recordHash string, opts RenderKeyOpts) string {
	return hashKey("render", recordHash, opts.Variant, opts.Locked, opts.ViewOnly,
		opts.Origin, opts.VideoURL, opts.ImageURL, opts.Overrides)
}

func (k *DefaultKeyer) ArtifactKey(renderHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", renderHash, opts.Format, opts.Width, opts.Fragment)
}

var _ Keyer = (*DefaultKeyer)(nil)

// Package pipeline provides the core preview pipeline for adproof.
//
// This package implements the complete fetch → render → encode pipeline
// that is shared by the CLI and the HTTP service. Centralizing it keeps
// caching and validation behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: Load the creative record, inline or from the store
//  2. Render: Resolve assets and compose the render tree
//  3. Encode: Generate output documents (HTML, SVG, JSON, DOT)
//
// Each stage can be run independently or as part of the complete
// pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, store, logger)
//	opts := pipeline.Options{
//	    CreativeID: id,
//	    Variant:    "card.white.logo-title-desc-cta",
//	    Formats:    []string{"html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
//
// Run individual stages:
//
//	// Fetch only
//	rec, err := runner.Fetch(ctx, opts)
//
//	// Render with an in-hand record
//	res, err := runner.Render(ctx, rec, opts)
//
//	// Encode an existing render
//	artifacts, err := runner.Encode(ctx, res, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels for the SVG
	// wireframe sink.
	DefaultWidth = 360.0
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the preview pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Fetch options. Exactly one of Record or CreativeID must be set;
	// an inline record wins when both are present.
	Record     *creative.Record `json:"record,omitempty"`
	CreativeID string           `json:"creative_id,omitempty"`
	Refresh    bool             `json:"refresh,omitempty"`

	// Render options
	Variant  string         `json:"variant"`
	Locked   bool           `json:"locked,omitempty"`
	ViewOnly bool           `json:"view_only,omitempty"`
	VideoURL string         `json:"video_url,omitempty"`
	ImageURL string         `json:"image_url,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	Origin   string         `json:"origin,omitempty"`

	// Encode options
	Formats    []string `json:"formats,omitempty"`
	Width      float64  `json:"width,omitempty"`
	Fragment   bool     `json:"fragment,omitempty"`    // HTML without the document shell
	SlotLabels bool     `json:"slot_labels,omitempty"` // annotate the SVG wireframe

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Record is the fetched creative record.
	Record *creative.Record

	// RecordHash is the content hash of the record.
	RecordHash string

	// Render is the composed tree with its diagnostic state.
	Render preview.Result

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	FetchTime  time.Duration
	RenderTime time.Duration
	EncodeTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	FetchHit  bool // Whether the record came from cache
	RenderHit bool // Whether the composed tree came from cache
	EncodeHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: html, svg, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForFetch(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.SetEncodeDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForFetch checks required fields for the fetch stage.
func (o *Options) ValidateForFetch() error {
	if o.Record == nil && o.CreativeID == "" {
		return fmt.Errorf("record or creative_id is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender checks required fields for the render stage.
func (o *Options) ValidateForRender() error {
	if o.Variant == "" {
		return fmt.Errorf("variant is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetEncodeDefaults sets default values for encoding.
func (o *Options) SetEncodeDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForEncode validates and sets defaults for encoding.
func (o *Options) ValidateForEncode() error {
	o.SetEncodeDefaults()
	return ValidateFormats(o.Formats)
}

// PreviewOptions converts pipeline options to engine render options.
func (o *Options) PreviewOptions() preview.Options {
	return preview.Options{
		VariantKey: o.Variant,
		Locked:     o.Locked,
		ViewOnly:   o.ViewOnly,
		VideoURL:   o.VideoURL,
		ImageURL:   o.ImageURL,
		Data:       o.Data,
		Origin:     o.Origin,
	}
}

// RenderKeyOpts returns cache key options for the render stage.
func (o *Options) RenderKeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Variant:   o.Variant,
		Locked:    o.Locked,
		ViewOnly:  o.ViewOnly,
		Origin:    o.Origin,
		VideoURL:  o.VideoURL,
		ImageURL:  o.ImageURL,
		Overrides: o.Data,
	}
}

// ArtifactKeyOpts returns cache key options for artifact encoding.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Width:    o.Width,
		Fragment: o.Fragment,
	}
}

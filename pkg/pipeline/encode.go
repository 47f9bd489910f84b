package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/observability"
	"github.com/adproof/adproof/pkg/preview"
	"github.com/adproof/adproof/pkg/preview/sink"
)

// Encode generates output artifacts in the requested formats.
func Encode(res preview.Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForEncode(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatHTML:
			data = sink.RenderHTML(res, buildHTMLOptions(opts)...)
		case FormatSVG:
			data = sink.RenderSVG(res, buildSVGOptions(opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(res, sink.WithJSONResolved())
		case FormatDOT:
			data = []byte(sink.ToDOT(res, sink.DOTOptions{}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// EncodeWithCacheInfo generates artifacts with caching and returns
// cache hit info.
func (r *Runner) EncodeWithCacheInfo(ctx context.Context, res preview.Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForEncode(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// The artifact key hashes the serialized tree, so any change in
	// record, variant, or overrides flows through automatically.
	treeData, err := json.Marshal(res.Tree)
	if err != nil {
		return nil, false, fmt.Errorf("serialize tree for cache key: %w", err)
	}
	treeHash := cache.Hash(treeData)

	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(treeHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	observability.Render().OnEncodeStart(ctx, opts.Formats)
	start := time.Now()
	encoded, err := Encode(res, opts)
	observability.Render().OnEncodeComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range encoded {
		cacheKey := r.Keyer.ArtifactKey(treeHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return encoded, false, nil
}

// Encode is a convenience wrapper that discards the cache hit info.
func (r *Runner) Encode(ctx context.Context, res preview.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.EncodeWithCacheInfo(ctx, res, opts)
	return artifacts, err
}

func buildHTMLOptions(opts Options) []sink.HTMLOption {
	var htmlOpts []sink.HTMLOption
	if opts.Fragment {
		htmlOpts = append(htmlOpts, sink.WithHTMLFragment())
	}
	return htmlOpts
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithSVGWidth(opts.Width)}
	if opts.SlotLabels {
		svgOpts = append(svgOpts, sink.WithSVGSlotLabels())
	}
	return svgOpts
}

package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/observability"
	"github.com/adproof/adproof/pkg/preview"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/variant"
	"github.com/adproof/adproof/pkg/store"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its collaborators; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  store.Store
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache, keyer, and store.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The store may be nil when every request carries an inline record.
func NewRunner(c cache.Cache, keyer cache.Keyer, st store.Store, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Store:  st,
		Logger: logger,
	}
}

// Execute runs the complete fetch → render → encode pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Fetch
	fetchStart := time.Now()
	rec, fetchHit, err := r.FetchWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	result.Record = rec
	result.Stats.FetchTime = time.Since(fetchStart)
	result.CacheInfo.FetchHit = fetchHit

	if data, err := json.Marshal(rec); err == nil {
		result.RecordHash = cache.Hash(data)
	}

	r.Logger.Info("fetched creative",
		"inline", opts.Record != nil,
		"duration", result.Stats.FetchTime)

	// Stage 2: Render
	renderStart := time.Now()
	res, renderHit, err := r.RenderWithCacheInfo(ctx, rec, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Render = res
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.NodeCount = node.Count(res.Tree)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("composed preview",
		"variant", opts.Variant,
		"state", res.State,
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.RenderTime)

	// Stage 3: Encode
	encodeStart := time.Now()
	artifacts, encodeHit, err := r.EncodeWithCacheInfo(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)
	result.CacheInfo.EncodeHit = encodeHit

	r.Logger.Info("encoded outputs",
		"formats", opts.Formats,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// FetchWithCacheInfo loads the creative record with caching and returns
// cache hit info. Inline records bypass both store and cache.
func (r *Runner) FetchWithCacheInfo(ctx context.Context, opts Options) (*creative.Record, bool, error) {
	if err := opts.ValidateForFetch(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if opts.Record != nil {
		return opts.Record, false, nil
	}
	if r.Store == nil {
		return nil, false, fmt.Errorf("creative_id given but no store configured")
	}

	cacheKey := r.Keyer.RecordKey("store", opts.CreativeID)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var rec creative.Record
			if err := json.Unmarshal(data, &rec); err == nil {
				observability.Cache().OnCacheHit(ctx, "record")
				return &rec, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "record")
	}

	c, err := r.Store.Get(ctx, opts.CreativeID)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(c.Record); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLRecord)
		observability.Cache().OnCacheSet(ctx, "record", len(data))
	}

	return c.Record, false, nil
}

// Fetch is a convenience wrapper that discards the cache hit info.
func (r *Runner) Fetch(ctx context.Context, opts Options) (*creative.Record, error) {
	rec, _, err := r.FetchWithCacheInfo(ctx, opts)
	return rec, err
}

// cachedRender is the serialized form of a composed preview. The
// descriptor pointer is re-resolved from the registry on load.
type cachedRender struct {
	State    preview.State     `json:"state"`
	Variant  string            `json:"variant"`
	Tree     *node.Node        `json:"tree"`
	Resolved creative.Resolved `json:"resolved"`
}

// RenderWithCacheInfo composes the preview tree with caching and
// returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, rec *creative.Record, opts Options) (preview.Result, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return preview.Result{}, false, err
	}
	r.applyLogger(&opts)

	recData, _ := json.Marshal(rec)
	recordHash := cache.Hash(recData)
	cacheKey := r.Keyer.RenderKey(recordHash, opts.RenderKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached cachedRender
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "render")
				d, _ := variant.Lookup(cached.Variant)
				return preview.Result{
					Tree:     cached.Tree,
					State:    cached.State,
					Variant:  d,
					Resolved: cached.Resolved,
				}, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "render")
	}

	observability.Render().OnComposeStart(ctx, opts.Variant)
	start := time.Now()
	res := preview.Render(rec, opts.PreviewOptions())
	observability.Render().OnComposeComplete(ctx, opts.Variant, string(res.State),
		node.Count(res.Tree), time.Since(start))

	cached := cachedRender{
		State:    res.State,
		Tree:     res.Tree,
		Resolved: res.Resolved,
	}
	if res.Variant != nil {
		cached.Variant = res.Variant.Key
	}
	if data, err := json.Marshal(cached); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLRender)
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}

	return res, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, rec *creative.Record, opts Options) (preview.Result, error) {
	res, _, err := r.RenderWithCacheInfo(ctx, rec, opts)
	return res, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/preview"
)

// renderOpts holds the command-line flags for the render command.
// These options control creative selection, per-render inputs, and
// output formats.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	creativeID string   // render a stored creative instead of a record file
	formats    []string // output formats: "html", "svg", "json", "dot"
	variant    string   // placement variant key
	locked     bool     // render the lock gate overlay
	viewOnly   bool     // static cover instead of playable media
	origin     string   // origin URL override for business-name derivation
	videoURL   string   // video URL override
	imageURL   string   // image URL override
	data       []string // key=value text overrides
	width      float64  // frame width in pixels (SVG wireframe)
	fragment   bool     // HTML without the document shell
	slotLabels bool     // annotate the SVG wireframe with slot names
	noCache    bool     // bypass the artifact cache
	refresh    bool     // refetch the stored record even if cached
	configPath string   // config file for store-backed renders
}

// newRenderCmd creates the render command for generating previews.
// It reads a creative record from a JSON file or the configured store
// and renders it for a placement variant in one or more formats.
//
// Default settings:
//   - format: html
//   - width: 360px (SVG wireframe)
//   - caching: local file cache under the XDG cache dir
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width: pipeline.DefaultWidth,
	}

	cmd := &cobra.Command{
		Use:   "render [record.json]",
		Short: "Render a creative preview for a placement variant",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			if input == "" && opts.creativeID == "" {
				return fmt.Errorf("either a record file or --creative is required")
			}
			return runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): html (default), svg, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "placement variant key (see 'adproof variants')")
	cmd.Flags().StringVar(&opts.creativeID, "creative", "", "stored creative ID to render")
	cmd.Flags().BoolVar(&opts.locked, "locked", false, "render the lock gate overlay")
	cmd.Flags().BoolVar(&opts.viewOnly, "view-only", false, "render media as a static cover")
	cmd.Flags().StringVar(&opts.origin, "origin", "", "origin URL for business-name derivation")
	cmd.Flags().StringVar(&opts.videoURL, "video-url", "", "video URL override")
	cmd.Flags().StringVar(&opts.imageURL, "image-url", "", "image URL override")
	cmd.Flags().StringArrayVar(&opts.data, "set", nil, "text override as key=value (repeatable)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width for the SVG wireframe")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "emit HTML without the document shell")
	cmd.Flags().BoolVar(&opts.slotLabels, "slot-labels", false, "annotate the SVG wireframe with slot names")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "refetch the stored record even if cached")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file for store-backed renders")

	return cmd
}

// runRender loads the record, executes the pipeline, and writes the
// requested artifacts. Stored-creative renders build the store from the
// serve config; file renders need no store.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	runner := newRunner(opts.noCache, logger)
	pipeOpts := pipeline.Options{
		CreativeID: opts.creativeID,
		Refresh:    opts.refresh,
		Variant:    opts.variant,
		Locked:     opts.locked,
		ViewOnly:   opts.viewOnly,
		VideoURL:   opts.videoURL,
		ImageURL:   opts.imageURL,
		Data:       parseData(opts.data),
		Origin:     opts.origin,
		Formats:    opts.formats,
		Width:      opts.width,
		Fragment:   opts.fragment,
		SlotLabels: opts.slotLabels,
		Logger:     logger,
	}

	if input != "" {
		logger.Infof("Rendering %s", input)
		rec, err := readRecord(input)
		if err != nil {
			return err
		}
		pipeOpts.Record = rec
		pipeOpts.CreativeID = ""
	} else {
		logger.Infof("Rendering stored creative %s", opts.creativeID)
		cfg, err := LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		st, err := openStore(ctx, cfg.Store, logger)
		if err != nil {
			return err
		}
		defer st.Close(ctx)
		runner.Store = st
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d formats", len(result.Artifacts)))

	if result.Render.State != preview.StateOK {
		printWarning("Preview state: %s", result.Render.State)
	}

	if err := writeArtifacts(result.Artifacts, input, opts); err != nil {
		return err
	}

	printStats(result.Stats.NodeCount, len(result.Artifacts), result.CacheInfo.RenderHit)
	return nil
}

// readRecord reads and decodes a creative record JSON file.
func readRecord(path string) (*creative.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	var rec creative.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", path, err)
	}
	return &rec, nil
}

// writeArtifacts writes each rendered artifact to its output path.
// A single format goes to opts.output (or stdout when empty and input
// is empty); multiple formats fan out to base.format files.
func writeArtifacts(artifacts map[string][]byte, input string, opts *renderOpts) error {
	if len(opts.formats) == 1 {
		format := opts.formats[0]
		path := opts.output
		if path == "" && input != "" {
			path = basePath("", input) + "." + format
		}
		return writeArtifact(artifacts[format], path)
	}

	base := basePath(opts.output, input)
	if base == "" {
		base = "preview"
	}
	for _, format := range opts.formats {
		path := fmt.Sprintf("%s.%s", base, format)
		if err := writeArtifact(artifacts[format], path); err != nil {
			return err
		}
	}
	return nil
}

// writeArtifact writes a single artifact to path, or stdout when path
// is empty.
func writeArtifact(data []byte, path string) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file
// paths. If output is empty, it strips the extension from input. If
// output has a format extension (.html, .svg, etc.), it strips that
// extension. This is used when generating multiple files (e.g.,
// ad.html, ad.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview"
	"github.com/adproof/adproof/pkg/store"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"html", false},
		{"svg", false},
		{"json", false},
		{"dot", false},
		{"invalid", true},
		{"HTML", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"html", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"html", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func testRecord() *creative.Record {
	return &creative.Record{
		FinalURLs: []string{"https://www.example.com/landing"},
		DisplayAd: &creative.DisplayAd{
			Headlines:    []creative.TextAsset{{Text: "Great Deal"}},
			Descriptions: []creative.TextAsset{{Text: "Save big today"}},
		},
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{
		Record:  testRecord(),
		Variant: "mobile.landscape.title-desc-biz-textcta",
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatHTML {
		t.Errorf("Formats = %v, want [html]", opts.Formats)
	}
	if opts.Width != DefaultWidth {
		t.Errorf("Width = %v, want %v", opts.Width, DefaultWidth)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing record and id", Options{Variant: "promo.inbox.row"}},
		{"missing variant", Options{Record: testRecord()}},
		{"bad format", Options{Record: testRecord(), Variant: "promo.inbox.row", Formats: []string{"pdf"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExecuteInlineRecord(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Record:  testRecord(),
		Variant: "mobile.landscape.title-desc-biz-textcta",
		Formats: []string{"html", "svg", "json", "dot"},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Render.State != preview.StateOK {
		t.Errorf("state = %q", result.Render.State)
	}
	if result.Stats.NodeCount == 0 {
		t.Error("NodeCount not recorded")
	}
	if result.RecordHash == "" {
		t.Error("RecordHash not computed")
	}
	for _, format := range []string{"html", "svg", "json", "dot"} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("artifact %q missing", format)
		}
	}
	if !strings.Contains(string(result.Artifacts["html"]), "Great Deal") {
		t.Error("HTML artifact missing headline")
	}
}

func TestExecuteFromStore(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	c := &store.Creative{Record: testRecord()}
	if err := st.Put(ctx, c); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	runner := NewRunner(fileCache, nil, st, nil)
	defer runner.Close()

	opts := Options{
		CreativeID: c.ID,
		Variant:    "card.white.logo-title-desc-cta",
		Formats:    []string{"json"},
	}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.FetchHit || first.CacheInfo.RenderHit || first.CacheInfo.EncodeHit {
		t.Error("first run should miss every cache stage")
	}

	second, err := runner.Execute(ctx, Options{
		CreativeID: c.ID,
		Variant:    opts.Variant,
		Formats:    opts.Formats,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheInfo.FetchHit {
		t.Error("second run should hit the record cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the render cache")
	}
	if !second.CacheInfo.EncodeHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(first.Artifacts["json"]) != string(second.Artifacts["json"]) {
		t.Error("cached artifact differs from computed artifact")
	}
}

func TestExecuteUnknownCreative(t *testing.T) {
	runner := NewRunner(nil, nil, store.NewMemoryStore(), nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		CreativeID: "missing",
		Variant:    "promo.inbox.row",
	})
	if err == nil {
		t.Fatal("expected error for missing creative")
	}
}

func TestExecuteUnknownVariantStillSucceeds(t *testing.T) {
	runner := NewRunner(nil, nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Record:  testRecord(),
		Variant: "does.not.exist",
		Formats: []string{"json"},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Render.State != preview.StateUnknownVariant {
		t.Errorf("state = %q, want unknown_variant", result.Render.State)
	}
	if len(result.Artifacts["json"]) == 0 {
		t.Error("diagnostic tree should still encode")
	}
}

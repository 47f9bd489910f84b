package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adproof/adproof/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to html", "", []string{"html"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "html,svg,json", []string{"html", "svg", "json"}},
		{"dot only", "dot", []string{"dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestParseData(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  map[string]any
	}{
		{"nil pairs", nil, nil},
		{"single pair", []string{"title=New Title"}, map[string]any{"title": "New Title"}},
		{"value with equals", []string{"description=a=b"}, map[string]any{"description": "a=b"}},
		{"missing value", []string{"title"}, map[string]any{"title": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseData(tt.pairs)
			if len(got) != len(tt.want) {
				t.Fatalf("parseData(%v) = %v, want %v", tt.pairs, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseData(%v)[%q] = %v, want %v", tt.pairs, k, got[k], v)
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid html", []string{"html"}, false},
		{"valid svg", []string{"svg"}, false},
		{"valid all", []string{"html", "svg", "json", "dot"}, false},
		{"invalid format", []string{"pdf"}, true},
		{"mixed valid invalid", []string{"html", "invalid"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "ad.json", "ad"},
		{"strip format extension", "out.html", "ad.json", "out"},
		{"keep unknown extension", "out.bin", "ad.json", "out.bin"},
		{"plain output", "previews/ad", "ad.json", "previews/ad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basePath(tt.output, tt.input)
			if got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestReadRecord(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ad.json")
	data := `{
		"name": "Test creative",
		"final_urls": ["https://example.com"],
		"responsive_display_ad": {
			"headlines": [{"text": "Hello"}],
			"business_name": "Example"
		}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	rec, err := readRecord(path)
	if err != nil {
		t.Fatalf("readRecord() error: %v", err)
	}
	if rec.Name != "Test creative" {
		t.Errorf("Name = %q, want %q", rec.Name, "Test creative")
	}
	if !rec.HasDisplay() {
		t.Error("record should have a display payload")
	}
	if rec.DisplayAd.Headlines[0].Text != "Hello" {
		t.Errorf("headline = %q, want %q", rec.DisplayAd.Headlines[0].Text, "Hello")
	}
}

func TestReadRecordMissing(t *testing.T) {
	if _, err := readRecord(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("readRecord() should fail for a missing file")
	}
}

func TestReadRecordInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readRecord(path); err == nil {
		t.Error("readRecord() should fail for invalid JSON")
	}
}

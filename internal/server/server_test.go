package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/adproof/adproof/pkg/cache"
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/store"
)

func testServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, st, logger)
	return New(Config{}, runner, st, logger), st
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

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := testServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestListVariants(t *testing.T) {
	s, _ := testServer(t)
	rec := do(t, s, http.MethodGet, "/v1/variants", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var out struct {
		Variants []struct {
			Key       string `json:"key"`
			Archetype string `json:"archetype"`
		} `json:"variants"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count < 40 {
		t.Errorf("count = %d, want at least 40", out.Count)
	}
	found := false
	for _, v := range out.Variants {
		if v.Key == "promo.inbox.row" {
			found = true
			if v.Archetype != "promotional-list-row" {
				t.Errorf("archetype = %q", v.Archetype)
			}
		}
	}
	if !found {
		t.Error("promo.inbox.row missing from catalog")
	}
}

func TestRenderInlineSingleFormat(t *testing.T) {
	s, _ := testServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render", pipeline.Options{
		Record:  testRecord(),
		Variant: "mobile.landscape.title-desc-biz-textcta",
		Formats: []string{"html"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Great Deal") {
		t.Error("document missing headline")
	}
}

func TestRenderMultiFormatEnvelope(t *testing.T) {
	s, _ := testServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render", pipeline.Options{
		Record:  testRecord(),
		Variant: "card.white.logo-title-desc-cta",
		Formats: []string{"html", "json"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var out renderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.State != "ok" {
		t.Errorf("state = %q", out.State)
	}
	if len(out.Artifacts["html"]) == 0 || len(out.Artifacts["json"]) == 0 {
		t.Error("artifacts missing")
	}
}

func TestRenderValidation(t *testing.T) {
	s, _ := testServer(t)

	rec := do(t, s, http.MethodPost, "/v1/render", pipeline.Options{Variant: "promo.inbox.row"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing record: status = %d, want 400", rec.Code)
	}

	rec = do(t, s, http.MethodPost, "/v1/render", pipeline.Options{
		Record:  testRecord(),
		Variant: "promo.inbox.row",
		Formats: []string{"pdf"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad format: status = %d, want 400", rec.Code)
	}
}

func TestRenderStoredCreativeNotFound(t *testing.T) {
	s, _ := testServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render", pipeline.Options{
		CreativeID: "missing",
		Variant:    "promo.inbox.row",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCreativeLifecycle(t *testing.T) {
	s, _ := testServer(t)

	// Create
	rec := do(t, s, http.MethodPost, "/v1/creatives/", createCreativeRequest{
		Name:   "launch banner",
		Record: testRecord(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created store.Creative
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created creative has no ID")
	}

	// Get
	rec = do(t, s, http.MethodGet, "/v1/creatives/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status = %d", rec.Code)
	}

	// List
	rec = do(t, s, http.MethodGet, "/v1/creatives/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), created.ID) {
		t.Error("list missing created ID")
	}

	// Preview
	rec = do(t, s, http.MethodGet,
		"/v1/creatives/"+created.ID+"/preview?variant=card.white.logo-title-desc-cta", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("preview: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Great Deal") {
		t.Error("preview missing headline")
	}

	// Delete
	rec = do(t, s, http.MethodDelete, "/v1/creatives/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d", rec.Code)
	}
	rec = do(t, s, http.MethodGet, "/v1/creatives/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", rec.Code)
	}
}

func TestCreateCreativeRequiresRecord(t *testing.T) {
	s, _ := testServer(t)
	rec := do(t, s, http.MethodPost, "/v1/creatives/", createCreativeRequest{Name: "hollow"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestNoStoreConfigured(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, nil, logger)
	s := New(Config{}, runner, nil, logger)

	rec := do(t, s, http.MethodGet, "/v1/creatives/", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}

	// Inline rendering still works.
	rec = do(t, s, http.MethodPost, "/v1/render", pipeline.Options{
		Record:  testRecord(),
		Variant: "promo.inbox.row",
		Formats: []string{"json"},
	})
	if rec.Code != http.StatusOK {
		t.Errorf("inline render: status = %d", rec.Code)
	}
}

func TestServerShutdown(t *testing.T) {
	s, _ := testServer(t)
	s.cfg.Addr = "127.0.0.1:0"
	s.http.Addr = s.cfg.Addr

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	cancel()
	if err := <-done; err != nil && err != http.ErrServerClosed {
		t.Errorf("ListenAndServe() error: %v", err)
	}
}

func TestErrorResponseCodes(t *testing.T) {
	s, _ := testServer(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing variant",
			method:   http.MethodPost,
			path:     "/v1/render",
			body:     pipeline.Options{Record: testRecord()},
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_INPUT",
		},
		{
			name:     "unknown creative",
			method:   http.MethodGet,
			path:     "/v1/creatives/nope",
			wantCode: http.StatusNotFound,
			wantErr:  "CREATIVE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			var resp struct {
				Error string `json:"error"`
				Code  string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Code != tt.wantErr {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantErr)
			}
			if resp.Error == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adproof/adproof/pkg/creative"
	apperrors "github.com/adproof/adproof/pkg/errors"
	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/preview"
	"github.com/adproof/adproof/pkg/preview/variant"
	"github.com/adproof/adproof/pkg/store"
)

var contentTypes = map[string]string{
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
}

type errorResponse struct {
	Error string         `json:"error"`
	Code  apperrors.Code `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code apperrors.Code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// -----------------------------------------------------------------------------
// Variants
// -----------------------------------------------------------------------------

type variantInfo struct {
	Key       string   `json:"key"`
	Family    string   `json:"family"`
	Archetype string   `json:"archetype"`
	Formats   []string `json:"formats,omitempty"` // empty means any
}

func (s *Server) handleListVariants(w http.ResponseWriter, r *http.Request) {
	keys := variant.Keys()
	out := make([]variantInfo, 0, len(keys))
	for _, key := range keys {
		d, ok := variant.Lookup(key)
		if !ok {
			continue
		}
		info := variantInfo{
			Key:       d.Key,
			Family:    d.Family,
			Archetype: string(d.Archetype()),
		}
		for _, f := range d.RequiredFormats {
			info.Formats = append(info.Formats, string(f))
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"variants": out,
		"count":    len(out),
	})
}

// -----------------------------------------------------------------------------
// Render
// -----------------------------------------------------------------------------

type renderResponse struct {
	Variant    string             `json:"variant"`
	State      preview.State      `json:"state"`
	RecordHash string             `json:"record_hash,omitempty"`
	Artifacts  map[string][]byte  `json:"artifacts"` // base64 in JSON
	CacheInfo  pipeline.CacheInfo `json:"cache_info"`
	NodeCount  int                `json:"node_count"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.ErrCodeInvalidInput, "invalid request body: "+err.Error())
		return
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.ErrCodeInvalidInput, err.Error())
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, apperrors.ErrCodeCreativeNotFound, "creative not found")
			return
		}
		s.logger.Error("render failed", "id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, apperrors.ErrCodeInternal, "render failed")
		return
	}

	// A single-format request gets the document itself; multi-format
	// requests get the JSON envelope.
	if len(opts.Formats) == 1 {
		format := opts.Formats[0]
		w.Header().Set("Content-Type", contentTypes[format])
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[format])
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		Variant:    opts.Variant,
		State:      result.Render.State,
		RecordHash: result.RecordHash,
		Artifacts:  result.Artifacts,
		CacheInfo:  result.CacheInfo,
		NodeCount:  result.Stats.NodeCount,
	})
}

// -----------------------------------------------------------------------------
// Creatives
// -----------------------------------------------------------------------------

type createCreativeRequest struct {
	Name   string           `json:"name,omitempty"`
	Record *creative.Record `json:"record"`
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, apperrors.ErrCodeUnsupported, "no creative store configured")
		return false
	}
	return true
}

func (s *Server) handleCreateCreative(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	var req createCreativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.ErrCodeInvalidInput, "invalid request body: "+err.Error())
		return
	}

	c := &store.Creative{Name: req.Name, Record: req.Record}
	if err := s.store.Put(r.Context(), c); err != nil {
		if errors.Is(err, store.ErrInvalidRecord) {
			writeError(w, http.StatusBadRequest, apperrors.ErrCodeInvalidRecord, "record is required")
			return
		}
		s.logger.Error("store put failed", "error", err)
		writeError(w, http.StatusInternalServerError, apperrors.ErrCodeStore, "store failed")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListCreatives(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	out, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("store list failed", "error", err)
		writeError(w, http.StatusInternalServerError, apperrors.ErrCodeStore, "store failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"creatives": out,
		"count":     len(out),
	})
}

func (s *Server) handleGetCreative(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	c, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, apperrors.ErrCodeCreativeNotFound, "creative not found")
		return
	}
	if err != nil {
		s.logger.Error("store get failed", "error", err)
		writeError(w, http.StatusInternalServerError, apperrors.ErrCodeStore, "store failed")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCreative(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.logger.Error("store delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, apperrors.ErrCodeStore, "store failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePreview renders a stored creative straight to a document, so a
// browser can load /v1/creatives/{id}/preview?variant=... directly.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatHTML
	}

	opts := pipeline.Options{
		CreativeID: chi.URLParam(r, "id"),
		Variant:    q.Get("variant"),
		Locked:     parseBool(q.Get("locked")),
		ViewOnly:   parseBool(q.Get("view_only")),
		Origin:     q.Get("origin"),
		Refresh:    parseBool(q.Get("refresh")),
		Formats:    []string{format},
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.ErrCodeInvalidInput, err.Error())
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, apperrors.ErrCodeCreativeNotFound, "creative not found")
			return
		}
		s.logger.Error("preview failed", "id", RequestID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, apperrors.ErrCodeInternal, "render failed")
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

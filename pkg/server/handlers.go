package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/linguist/pkg/buildinfo"
	errs "github.com/matzehuels/linguist/pkg/errors"
	"github.com/matzehuels/linguist/pkg/linguist"
	"github.com/matzehuels/linguist/pkg/observability"
)

type handlers struct {
	idx *linguist.Index
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Languages int    `json:"languages"`
}

type listResponse struct {
	Count     int                  `json:"count"`
	Languages []*linguist.Language `json:"languages"`
}

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version, Languages: h.idx.Len()})
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	langs := h.idx.All()
	if t := r.URL.Query().Get("type"); t != "" {
		langs = h.idx.ByType(t)
	}
	if langs == nil {
		langs = []*linguist.Language{}
	}
	writeJSON(w, http.StatusOK, listResponse{Count: len(langs), Languages: langs})
}

func (h *handlers) byName(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, "name", "name", h.idx.ByName)
}

func (h *handlers) byExtension(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, "extension", "ext", h.idx.ByExtension)
}

func (h *handlers) byMode(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, "mode", "mode", h.idx.ByCodemirrorMode)
}

func (h *handlers) lookup(w http.ResponseWriter, r *http.Request, kind, param string, find func(string) (*linguist.Language, bool)) {
	// chi routes on RawPath when the request carries one, and the
	// parameter is then still escaped. Otherwise it was decoded once
	// already and must not be decoded again.
	key := chi.URLParam(r, param)
	if r.URL.RawPath != "" {
		var err error
		if key, err = url.PathUnescape(key); err != nil {
			writeError(w, errs.ErrCodeInvalidInput, fmt.Sprintf("malformed %s: %v", kind, err))
			return
		}
	}

	lang, ok := find(key)
	observability.Lookup().OnLookup(r.Context(), kind, key, ok)
	if !ok {
		writeError(w, errs.ErrCodeNotFound, fmt.Sprintf("no language with %s %q", kind, key))
		return
	}
	writeJSON(w, http.StatusOK, lang)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error body carrying code, with the HTTP status
// that code maps to.
func writeError(w http.ResponseWriter, code errs.Code, msg string) {
	writeJSON(w, httpStatus(code), errorResponse{Code: code, Message: msg})
}

func httpStatus(code errs.Code) int {
	switch code {
	case errs.ErrCodeNotFound, errs.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidFormat, errs.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errs.ErrCodeUnsupported:
		return http.StatusMethodNotAllowed
	case errs.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errs.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errs.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amakane-hakari/kioku/internal/store"
)

type cacheHandler struct {
	st *store.Store[string, string]
}

func (h *cacheHandler) mount(r chi.Router) {
	r.Route("/cache", func(r chi.Router) {
		r.Method(http.MethodPut, "/{key}", HandlerFunc(h.put))
		r.Method(http.MethodGet, "/{key}", HandlerFunc(h.get))
		// DELETE は提供しない: スロットは解放されず上書きのみ
	})
}

type valueRequest struct {
	Value string `json:"value"`
}

type valueDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (h *cacheHandler) put(w http.ResponseWriter, r *http.Request) error {
	key := chi.URLParam(r, "key")
	if key == "" {
		return BadRequest("empty key")
	}
	var req valueRequest
	if err := DecodeJSON(r, &req); err != nil {
		return err
	}
	h.st.Set(key, req.Value)
	writeSuccess(w, http.StatusOK, valueDTO{Key: key, Value: req.Value})
	return nil
}

func (h *cacheHandler) get(w http.ResponseWriter, r *http.Request) error {
	key := chi.URLParam(r, "key")
	if key == "" {
		return BadRequest("empty key")
	}
	v, ok := h.st.Get(key)
	if !ok {
		return NotFound("key not found")
	}
	writeSuccess(w, http.StatusOK, valueDTO{Key: key, Value: v})
	return nil
}

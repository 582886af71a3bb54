package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ilog "github.com/amakane-hakari/kioku/internal/log"
	"github.com/amakane-hakari/kioku/internal/store"
)

// NewRouter はキャッシュ API のルーターを作成します。
func NewRouter(st *store.Store[string, string], l ilog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware())
	r.Use(RecoverMiddleware())
	r.Use(AccessLog(l))

	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	h := &cacheHandler{st: st}
	h.mount(r)

	return r
}

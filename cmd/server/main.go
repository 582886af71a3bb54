package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	apphttp "github.com/amakane-hakari/kioku/internal/api/http"
	ilog "github.com/amakane-hakari/kioku/internal/log"
	"github.com/amakane-hakari/kioku/internal/metrics"
	"github.com/amakane-hakari/kioku/internal/store"
)

func main() {
	addr := getEnv("KIOKU_HTTP_ADDR", ":8080")
	capacity := getEnvInt("KIOKU_CAPACITY", 1024)
	loadFactor := getEnvInt("KIOKU_LOAD_FACTOR", 4)

	logger := ilog.New()

	st, err := store.New[string, string](capacity,
		store.WithLoadFactor(loadFactor),
		store.WithLogger(logger),
		store.WithMetrics(metrics.NewProm("kioku")),
	)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	router := apphttp.NewRouter(st, logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("starting server on %s (capacity=%d loadFactor=%d)", addr, capacity, loadFactor)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("shutdown signal received")
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	apphttp.SetDraining(true)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Println("server stopped")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

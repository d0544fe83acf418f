package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/slidesplit/internal/render"
)

// newPreviewRouter serves the generated pages from dir. Without an index
// page the root redirects to the first slide.
func newPreviewRouter(dir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	files := http.FileServer(http.Dir(dir))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		// FileServer answers "/" with index.html when one was generated.
		if _, err := os.Stat(filepath.Join(dir, indexFilename)); err == nil {
			files.ServeHTTP(w, r)
			return
		}
		http.Redirect(w, r, "/"+render.FilenameFor(1), http.StatusFound)
	})
	r.Handle("/*", files)
	return r
}

// newPreviewServer returns an http.Server with conservative timeouts for
// local preview.
func newPreviewServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Serve serves dir on addr until ctx is cancelled, then shuts down with a
// bounded grace period.
func Serve(ctx context.Context, addr, dir string) error {
	srv := newPreviewServer(addr, newPreviewRouter(dir))

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("dir", dir).Msg("serving slides")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// requestLogger logs each request through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Str("request_id", middleware.GetReqID(r.Context())).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

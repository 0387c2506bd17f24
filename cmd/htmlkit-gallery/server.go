package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loseth/htmlkit/markup"
	"github.com/loseth/htmlkit/theme"
)

//go:embed static
var staticFiles embed.FS

//go:embed themes/ocean.yaml
var defaultTheme []byte

// Server is the HTTP server for the component gallery.
type Server struct {
	log     *slog.Logger
	router  chi.Router
	metrics *Metrics
	theme   theme.Theme
}

// NewServer loads the theme and wires routes and metrics.
func NewServer(cfg Config, log *slog.Logger) (*Server, error) {
	th, err := loadTheme(cfg.ThemePath)
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static files: %w", err)
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		log:     log,
		router:  chi.NewRouter(),
		metrics: NewMetrics(reg),
		theme:   th,
	}

	s.router.Use(s.requestLog)
	s.router.Get("/", s.handleGallery)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	return s, nil
}

// loadTheme reads the theme from path, or falls back to the embedded
// default when no path is configured.
func loadTheme(path string) (theme.Theme, error) {
	if path != "" {
		return theme.Load(path)
	}
	return theme.Parse(defaultTheme)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLog emits one structured log line per request.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// handleGallery renders the demo page.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	page := galleryPage(s.theme)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := markup.Write(w, page); err != nil {
		// Headers are gone; all that is left is to log.
		s.log.Error("write gallery page", slog.Any("error", err))
		return
	}
	s.metrics.ObserveRender(time.Since(start))
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

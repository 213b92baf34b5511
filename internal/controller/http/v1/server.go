package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/file_catalog/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewRouter(
	log *slog.Logger,
	catalogService CatalogService,
	verifier CredentialsVerifier,
	reports ReportGenerator,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := NewHandler(log, catalogService, reports)

	r.Get("/", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(BasicAuth(log, verifier))

		r.Post("/upload", h.Upload)
		r.Get("/dashboard", h.Dashboard)
		r.Delete("/files/{id}", h.DeleteFile)
		r.Get("/export", h.Export)
	})

	return r
}

func NewServer(cfg config.HTTP, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      handler,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/integrity-lab/talos/pkg/usecase"
	"github.com/integrity-lab/talos/pkg/utils/logging"
)

// Server serves the dashboard API: the asset register and the advisory
// panels. Presentation concerns (display text for failures, panel
// classification) live here, not in the use cases.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

// Options configures a Server
type Options func(*Server)

// New creates the HTTP server over the use cases
func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/overview", s.handleOverview)
		r.Get("/register", s.handleRegister)
		r.Get("/register/{id}", s.handleAsset)

		r.Route("/panels", func(r chi.Router) {
			r.Post("/lifespan", s.handlePanel(uc.Lifespan))
			r.Post("/corrosion", s.handlePanel(uc.Corrosion))
			r.Post("/failure-mode", s.handlePanel(uc.FailureMode))
			r.Post("/compliance", s.handlePanel(uc.Compliance))
			r.Post("/cost-forecast", s.handlePanel(uc.CostForecast))
			r.Post("/work-order", s.handlePanel(uc.WorkOrder))
			r.Post("/field-report", s.handleFieldReport)
			r.Post("/prefetch", s.handlePrefetch)
		})
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

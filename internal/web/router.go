// Package web exposes the user agent classifier over HTTP: a JSON API for
// other services and a small HTML page rendered with the caller's classes.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uaclass/pkg/environment"
	"github.com/dmitrymomot/uaclass/pkg/httpserver"
	"github.com/dmitrymomot/uaclass/pkg/logger"
	"github.com/dmitrymomot/uaclass/pkg/requestid"
	"github.com/dmitrymomot/uaclass/pkg/useragent"
)

// NewRouter wires the middleware chain and routes.
func NewRouter(log *slog.Logger, env environment.Environment) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(env))
	r.Use(useragent.Middleware)
	r.Use(accessLog(log))

	r.Get("/", indexHandler)
	r.Get("/classify", classifyHandler)
	r.Post("/classify", classifyBatchHandler(log))
	r.Get("/health", httpserver.HealthCheckHandler(log))

	return r
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	templ.Handler(IndexPage(useragent.FromRequest(r))).ServeHTTP(w, r)
}

// accessLog logs one line per request; request id, env and browser are added
// by the logger's context extractors.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request",
				logger.Component("web"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

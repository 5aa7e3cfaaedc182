package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "threadboard/internal/errors"
	"threadboard/internal/web/controller"
	"threadboard/internal/web/middleware"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", StaticFileServer()))
	mux.Handle("GET /metrics", promhttp.Handler())

	healthController := controller.Health{DB: s.threadRepo}
	healthController.Register(mux)

	errs := &controller.Errors{Templates: s.templates}

	pagesMux := http.NewServeMux()
	indexController := controller.Index{
		Identity:  s.identity,
		Threads:   s.threadRepo,
		Preparer:  s.preparer,
		Templates: s.templates,
		Errors:    errs,
	}
	indexController.Register(pagesMux)

	threadController := controller.Thread{
		Identity:  s.identity,
		Threads:   s.threadRepo,
		Comments:  s.commentRepo,
		Preparer:  s.preparer,
		Templates: s.templates,
		Errors:    errs,
	}
	threadController.Register(pagesMux)

	pagesMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		errs.Respond(w, r, apperrors.E(apperrors.NotFound, "route", nil))
	})

	var pages http.Handler = pagesMux
	if s.limiter != nil {
		pages = middleware.RateLimit(s.limiter)(pages)
	}
	mux.Handle("/", pages)

	secure := middleware.SecurityHeaders(s.cfg.Session.Secure, middleware.DefaultCSP)
	return middleware.Metrics(secure(mux))
}

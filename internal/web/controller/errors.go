package controller

import (
	"net/http"

	apperrors "threadboard/internal/errors"
	"threadboard/internal/logger"
	"threadboard/internal/web/viewmodels"
)

// PageRenderer renders a named page template.
type PageRenderer interface {
	Render(w http.ResponseWriter, name string, data any) error
	RenderStatus(w http.ResponseWriter, status int, name string, data any) error
}

// Errors writes the generic error page for failed requests.
type Errors struct {
	Templates PageRenderer
}

// Respond logs err and answers with the status its kind maps to. The
// client only ever sees the status text.
func (e *Errors) Respond(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperrors.KindOf(err)
	status := kind.StatusCode()

	log := logger.Log.With("op", apperrors.OpOf(err), "kind", kind.String(), "method", r.Method, "path", r.URL.Path)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Info("request failed", "error", err)
	}

	data := viewmodels.ErrorPage{StatusCode: status, StatusText: http.StatusText(status)}
	if e.Templates != nil {
		rerr := e.Templates.RenderStatus(w, status, "error.html", data)
		if rerr == nil {
			return
		}
		logger.Log.Error("error rendering error page", "error", rerr)
	}
	http.Error(w, data.StatusText, status)
}

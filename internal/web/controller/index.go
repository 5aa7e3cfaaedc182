package controller

import (
	"context"
	"net/http"

	apperrors "threadboard/internal/errors"
	"threadboard/internal/listing"
	"threadboard/internal/models"
)

// ThreadLister lists every thread with its comment count.
type ThreadLister interface {
	ListWithCommentCounts(ctx context.Context) ([]models.Thread, error)
}

// Identifier resolves the visitor's user ID, issuing a cookie when needed.
type Identifier interface {
	Identify(w http.ResponseWriter, r *http.Request) (string, error)
}

// Index serves the landing page.
type Index struct {
	Identity  Identifier
	Threads   ThreadLister
	Preparer  *listing.Preparer
	Templates PageRenderer
	Errors    *Errors
}

// Register registers the index route.
func (i *Index) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", i.index)
}

func (i *Index) index(w http.ResponseWriter, r *http.Request) {
	userID, err := i.Identity.Identify(w, r)
	if err != nil {
		i.Errors.Respond(w, r, apperrors.E(apperrors.Internal, "identity.Identify", err))
		return
	}

	rows, err := i.Threads.ListWithCommentCounts(r.Context())
	if err != nil {
		i.Errors.Respond(w, r, apperrors.FetchFailed("thread.ListWithCommentCounts", err))
		return
	}

	page := i.Preparer.Prepare(rows, userID)

	if err := i.Templates.Render(w, "index.html", page); err != nil {
		i.Errors.Respond(w, r, err)
	}
}

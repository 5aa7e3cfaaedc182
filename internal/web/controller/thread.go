package controller

import (
	"context"
	"database/sql"
	"errors"
	"html/template"
	"net/http"

	apperrors "threadboard/internal/errors"
	"threadboard/internal/listing"
	"threadboard/internal/models"
	"threadboard/internal/web/renderer"
	"threadboard/internal/web/viewmodels"
)

// ThreadFinder finds a single thread by ID.
type ThreadFinder interface {
	FindByID(ctx context.Context, id string) (models.Thread, error)
}

// CommentLister lists the comments of a thread.
type CommentLister interface {
	ListByThread(ctx context.Context, threadID string) ([]models.Comment, error)
}

// Thread serves the read-only page of a single thread.
type Thread struct {
	Identity  Identifier
	Threads   ThreadFinder
	Comments  CommentLister
	Preparer  *listing.Preparer
	Templates PageRenderer
	Errors    *Errors
}

// Register registers the thread routes.
func (t *Thread) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /threads/{id}", t.view)
}

func (t *Thread) view(w http.ResponseWriter, r *http.Request) {
	userID, err := t.Identity.Identify(w, r)
	if err != nil {
		t.Errors.Respond(w, r, apperrors.E(apperrors.Internal, "identity.Identify", err))
		return
	}

	id := r.PathValue("id")

	thread, err := t.Threads.FindByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		t.Errors.Respond(w, r, apperrors.E(apperrors.NotFound, "thread.FindByID", err))
		return
	}
	if err != nil {
		t.Errors.Respond(w, r, apperrors.FetchFailed("thread.FindByID", err))
		return
	}

	comments, err := t.Comments.ListByThread(r.Context(), id)
	if err != nil {
		t.Errors.Respond(w, r, apperrors.FetchFailed("comment.ListByThread", err))
		return
	}

	page, err := t.buildPage(thread, comments, userID)
	if err != nil {
		t.Errors.Respond(w, r, err)
		return
	}

	if err := t.Templates.Render(w, "thread.html", page); err != nil {
		t.Errors.Respond(w, r, err)
	}
}

func (t *Thread) buildPage(thread models.Thread, comments []models.Comment, userID string) (viewmodels.ThreadPage, error) {
	const op = "renderer.Content"
	layout := t.Preparer.Limits().DateFormat

	body, err := renderer.Content(thread.Content)
	if err != nil {
		return viewmodels.ThreadPage{}, apperrors.RenderFailed(op, err)
	}

	views := make([]viewmodels.CommentView, 0, len(comments))
	for _, c := range comments {
		html, err := renderer.Content(c.Content)
		if err != nil {
			return viewmodels.ThreadPage{}, apperrors.RenderFailed(op, err)
		}
		views = append(views, viewmodels.CommentView{
			CommentID: c.ID,
			UserID:    c.UserID,
			Created:   c.Created.Format(layout),
			Content:   template.HTML(html),
		})
	}

	return viewmodels.ThreadPage{
		ThreadID:         thread.ID,
		UserID:           thread.UserID,
		Created:          thread.Created.Format(layout),
		LastUpdated:      thread.LastUpdated.Format(layout),
		Title:            thread.Title,
		Content:          template.HTML(body),
		Comments:         views,
		NumComments:      len(views),
		MultipleComments: len(views) > 1,
		CurrentUserID:    userID,
	}, nil
}

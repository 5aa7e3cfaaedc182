package viewmodels

import "html/template"

// ThreadSummary is one entry of the thread list on the landing page.
type ThreadSummary struct {
	ThreadID         string
	UserID           string
	Created          string
	LastUpdated      string
	Title            string
	Content          string
	Overflow         bool // Content was truncated; the page links to the full thread.
	NumComments      int
	MultipleComments bool
}

// IndexPage is everything the index template needs for one request.
type IndexPage struct {
	NumThreads int
	Threads    []ThreadSummary
	UserID     string
}

// CommentView is a formatted comment on the thread page.
type CommentView struct {
	CommentID string
	UserID    string
	Created   string
	Content   template.HTML
}

// ThreadPage holds a single thread with its rendered body and comments.
type ThreadPage struct {
	ThreadID         string
	UserID           string
	Created          string
	LastUpdated      string
	Title            string
	Content          template.HTML
	Comments         []CommentView
	NumComments      int
	MultipleComments bool
	CurrentUserID    string
}

// ErrorPage is shown instead of a partial page when a request fails.
type ErrorPage struct {
	StatusCode int
	StatusText string
}

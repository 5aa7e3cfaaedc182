package models

import "time"

// Comment represents a reply to a thread.
type Comment struct {
	ID       string
	ThreadID string
	UserID   string
	Created  time.Time
	Content  string
}

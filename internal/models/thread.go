package models

import "time"

// Thread is a top-level forum post joined with the number of its comments.
type Thread struct {
	ID          string
	UserID      string
	Created     time.Time
	LastUpdated time.Time
	Title       string
	Content     string
	NumComments int
}

package comment

import (
	"context"
	"database/sql"
	"fmt"

	"threadboard/internal/database"
	"threadboard/internal/models"
)

// Repository provides access to the comment storage.
type Repository struct {
	DB      *sql.DB
	Dialect database.Dialect
}

// NewRepository creates a new comment repository.
func NewRepository(db *sql.DB, dialect database.Dialect) *Repository {
	return &Repository{DB: db, Dialect: dialect}
}

// ListByThread lists the comments of a thread, oldest first.
func (r *Repository) ListByThread(ctx context.Context, threadID string) ([]models.Comment, error) {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(
		"SELECT comment_id, thread_id, user_id, created, content FROM comments WHERE thread_id = ? ORDER BY created ASC, comment_id ASC"),
		threadID)
	if err != nil {
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ThreadID, &c.UserID, &c.Created, &c.Content); err != nil {
			return nil, fmt.Errorf("error scanning comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}

package thread

import (
	"context"
	"database/sql"
	"fmt"

	"threadboard/internal/database"
	"threadboard/internal/models"
)

// listQuery joins every thread with its comment count. Ordering is left to
// the caller.
const listQuery = `
SELECT
    threads.thread_id,
    threads.user_id,
    threads.created,
    threads.last_updated,
    threads.title,
    threads.content,
    COALESCE(comments.num_comments, 0) AS num_comments
FROM
    threads
LEFT JOIN
    (SELECT thread_id, COUNT(thread_id) AS num_comments
     FROM comments
     GROUP BY thread_id) comments
    ON threads.thread_id = comments.thread_id`

// Repository provides access to the thread storage.
type Repository struct {
	DB      *sql.DB
	Dialect database.Dialect
}

// NewRepository creates a new thread repository.
func NewRepository(db *sql.DB, dialect database.Dialect) *Repository {
	return &Repository{DB: db, Dialect: dialect}
}

// ListWithCommentCounts returns all threads, each with the number of its
// comments (0 when it has none), in no particular order.
func (r *Repository) ListWithCommentCounts(ctx context.Context) ([]models.Thread, error) {
	rows, err := r.DB.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("error querying threads: %w", err)
	}
	defer rows.Close()

	var threads []models.Thread
	for rows.Next() {
		var t models.Thread
		if err := rows.Scan(&t.ID, &t.UserID, &t.Created, &t.LastUpdated, &t.Title, &t.Content, &t.NumComments); err != nil {
			return nil, fmt.Errorf("error scanning thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating threads: %w", err)
	}
	return threads, nil
}

// FindByID finds a single thread with its comment count.
// It returns sql.ErrNoRows when no thread has that ID.
func (r *Repository) FindByID(ctx context.Context, id string) (models.Thread, error) {
	var t models.Thread
	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(listQuery+" WHERE threads.thread_id = ?"), id).
		Scan(&t.ID, &t.UserID, &t.Created, &t.LastUpdated, &t.Title, &t.Content, &t.NumComments)
	if err != nil {
		return models.Thread{}, err
	}
	return t, nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

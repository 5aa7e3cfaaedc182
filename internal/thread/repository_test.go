package thread

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadboard/internal/database"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.New("sqlite3", filepath.Join(t.TempDir(), "threads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, "sqlite3"))
	return NewRepository(db, database.SQLite)
}

func insertThread(t *testing.T, db *sql.DB, id string, updated time.Time) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO threads (thread_id, user_id, created, last_updated, title, content) VALUES (?, ?, ?, ?, ?, ?)",
		id, "author-"+id, updated.Add(-time.Hour), updated, "Title "+id, "Content "+id)
	require.NoError(t, err)
}

func insertComment(t *testing.T, db *sql.DB, id, threadID string, created time.Time) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO comments (comment_id, thread_id, user_id, created, content) VALUES (?, ?, ?, ?, ?)",
		id, threadID, "commenter", created, "reply "+id)
	require.NoError(t, err)
}

func TestListWithCommentCounts(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	insertThread(t, repo.DB, "t1", now)
	insertThread(t, repo.DB, "t2", now.Add(time.Hour))
	insertThread(t, repo.DB, "t3", now.Add(2*time.Hour))
	insertComment(t, repo.DB, "c1", "t1", now)
	insertComment(t, repo.DB, "c2", "t1", now)
	insertComment(t, repo.DB, "c3", "t2", now)

	threads, err := repo.ListWithCommentCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, threads, 3)

	counts := map[string]int{}
	for _, th := range threads {
		counts[th.ID] = th.NumComments
	}
	assert.Equal(t, map[string]int{"t1": 2, "t2": 1, "t3": 0}, counts)

	for _, th := range threads {
		if th.ID == "t2" {
			assert.Equal(t, "author-t2", th.UserID)
			assert.Equal(t, "Title t2", th.Title)
			assert.Equal(t, "Content t2", th.Content)
			assert.True(t, th.LastUpdated.Equal(now.Add(time.Hour)))
			assert.True(t, th.Created.Equal(now))
		}
	}
}

func TestListWithCommentCountsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	threads, err := repo.ListWithCommentCounts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, threads)
}

func TestListWithCommentCountsClosedDB(t *testing.T) {
	repo := newTestRepo(t)
	repo.DB.Close()

	_, err := repo.ListWithCommentCounts(context.Background())

	assert.Error(t, err)
}

func TestFindByID(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	insertThread(t, repo.DB, "t1", now)
	insertComment(t, repo.DB, "c1", "t1", now)

	t.Run("found", func(t *testing.T) {
		th, err := repo.FindByID(context.Background(), "t1")
		require.NoError(t, err)
		assert.Equal(t, "t1", th.ID)
		assert.Equal(t, 1, th.NumComments)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), "nope")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestPing(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
}

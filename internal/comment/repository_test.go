package comment

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadboard/internal/database"
)

func TestListByThread(t *testing.T) {
	db, err := database.New("sqlite3", filepath.Join(t.TempDir(), "comments.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, "sqlite3"))

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	_, err = db.Exec("INSERT INTO threads (thread_id, user_id, created, last_updated, title, content) VALUES (?, ?, ?, ?, ?, ?)",
		"t1", "op", now, now, "title", "content")
	require.NoError(t, err)
	for i, id := range []string{"late", "early", "middle"} {
		created := now.Add(time.Duration([]int{3, 1, 2}[i]) * time.Minute)
		_, err = db.Exec("INSERT INTO comments (comment_id, thread_id, user_id, created, content) VALUES (?, ?, ?, ?, ?)",
			id, "t1", "u-"+id, created, "text "+id)
		require.NoError(t, err)
	}

	repo := NewRepository(db, database.SQLite)

	comments, err := repo.ListByThread(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "early", comments[0].ID)
	assert.Equal(t, "middle", comments[1].ID)
	assert.Equal(t, "late", comments[2].ID)
	assert.Equal(t, "u-early", comments[0].UserID)
	assert.Equal(t, "text early", comments[0].Content)
	assert.Equal(t, "t1", comments[0].ThreadID)

	none, err := repo.ListByThread(context.Background(), "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

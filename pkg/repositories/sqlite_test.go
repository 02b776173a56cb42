package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/cbodonnell/shaft/pkg/repositories/migrations"
	"github.com/cbodonnell/shaft/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "scores.db"), migrations.SQLite())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(ctx) })
	return repo
}

func newScore(board, name string, score int, playedAt int64) *models.Score {
	return &models.Score{
		ID:            uuid.New(),
		Board:         board,
		Name:          name,
		Score:         score,
		Cubes:         score / 10,
		SecondsPlayed: 60,
		PlayedAt:      time.Unix(playedAt, 0),
	}
}

func TestSQLiteRepository_SaveAndGetScore(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	score := newScore("5x5x12:Shaaft", "me", 120, 1000)
	score.UserID = "uid-1"
	require.NoError(t, repo.SaveScore(ctx, score))

	got, err := repo.GetScore(ctx, score.ID)
	require.NoError(t, err)
	assert.Equal(t, score.ID, got.ID)
	assert.Equal(t, "uid-1", got.UserID)
	assert.Equal(t, 120, got.Score)
	assert.Equal(t, 12, got.Cubes)
	assert.Equal(t, int64(1000), got.PlayedAt.Unix())

	// saving twice keeps the first copy
	changed := *score
	changed.Score = 999
	require.NoError(t, repo.SaveScore(ctx, &changed))
	got, err = repo.GetScore(ctx, score.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.Score)

	_, err = repo.GetScore(ctx, uuid.New())
	assert.True(t, IsNotFound(err))
}

func TestSQLiteRepository_ListTopScores(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	for _, s := range []*models.Score{
		newScore("5x5x12:Shaaft", "a", 100, 3),
		newScore("5x5x12:Shaaft", "b", 300, 2),
		newScore("5x5x12:Shaaft", "c", 100, 1),
		newScore("3x3x10:Shaaft", "d", 900, 1),
	} {
		require.NoError(t, repo.SaveScore(ctx, s))
	}

	tests := []struct {
		name  string
		board string
		limit int
		want  []string
	}{
		{name: "all", board: "5x5x12:Shaaft", limit: 10, want: []string{"b", "c", "a"}},
		{name: "limited", board: "5x5x12:Shaaft", limit: 1, want: []string{"b"}},
		{name: "zero limit uses the maximum", board: "5x5x12:Shaaft", limit: 0, want: []string{"b", "c", "a"}},
		{name: "other board", board: "3x3x10:Shaaft", limit: 10, want: []string{"d"}},
		{name: "unknown board", board: "9x9x9:Shaaft", limit: 10, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := repo.ListTopScores(ctx, tt.board, tt.limit)
			require.NoError(t, err)
			names := []string{}
			for _, s := range scores {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSQLiteRepository_ListBoards(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	for _, s := range []*models.Score{
		newScore("5x5x12:Shaaft", "a", 100, 1),
		newScore("5x5x12:Shaaft", "b", 300, 2),
		newScore("3x3x10:Shaaft", "c", 50, 1),
	} {
		require.NoError(t, repo.SaveScore(ctx, s))
	}

	boards, err := repo.ListBoards(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*models.Board{
		{Name: "3x3x10:Shaaft", Games: 1, HighScore: 50},
		{Name: "5x5x12:Shaaft", Games: 2, HighScore: 300},
	}, boards)
}

func TestSQLiteRepository_BadMigration(t *testing.T) {
	_, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "bad.db"), fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREATE NONSENSE;")},
	})
	assert.Error(t, err)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&ErrNotFound{}))
	assert.False(t, IsNotFound(assert.AnError))
	assert.False(t, IsNotFound(nil))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		connStr string
		wantErr bool
	}{
		{name: "sqlite absolute path", connStr: "sqlite://" + filepath.Join(t.TempDir(), "open.db")},
		{name: "unknown scheme", connStr: "mysql://localhost/shaft", wantErr: true},
		{name: "missing sqlite path", connStr: "sqlite://", wantErr: true},
		{name: "bad url", connStr: "://nope", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := Open(ctx, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer repo.Close(ctx)
			boards, err := repo.ListBoards(ctx)
			require.NoError(t, err)
			assert.Empty(t, boards)
		})
	}
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/repositories/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var _ Repository = &SQLiteRepository{}

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and runs every migration
// in lexical order.
func NewSQLiteRepository(ctx context.Context, path string, migrations fs.FS) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, migrations, func(ctx context.Context, name, migration string) error {
		_, err := db.ExecContext(ctx, migration)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	log.Info("Opened sqlite database %s", path)
	return &SQLiteRepository{
		db: db,
	}, nil
}

func runMigrations(ctx context.Context, migrations fs.FS, exec func(ctx context.Context, name, migration string) error) error {
	entries, err := fs.ReadDir(migrations, ".")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migration, err := fs.ReadFile(migrations, entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", entry.Name(), err)
		}

		if err := exec(ctx, entry.Name(), string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", entry.Name(), err)
		}
		log.Debug("Applied migration %s", entry.Name())
	}
	return nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveScore(ctx context.Context, score *models.Score) error {
	q := `
	INSERT OR IGNORE INTO scores (id, board, user_id, name, score, cubes, seconds_played, played_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q,
		score.ID.String(), score.Board, score.UserID, score.Name,
		score.Score, score.Cubes, score.SecondsPlayed, score.PlayedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert score: %v", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteScore(row rowScanner) (*models.Score, error) {
	var id string
	var playedAt int64
	score := &models.Score{}
	if err := row.Scan(&id, &score.Board, &score.UserID, &score.Name, &score.Score, &score.Cubes, &score.SecondsPlayed, &playedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse score id %q: %v", id, err)
	}
	score.ID = parsed
	score.PlayedAt = time.Unix(playedAt, 0)
	return score, nil
}

func (r *SQLiteRepository) GetScore(ctx context.Context, id uuid.UUID) (*models.Score, error) {
	q := `
	SELECT id, board, user_id, name, score, cubes, seconds_played, played_at
	FROM scores WHERE id = ?;
	`
	score, err := scanSQLiteScore(r.db.QueryRowContext(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan score: %v", err)
	}

	return score, nil
}

func (r *SQLiteRepository) ListTopScores(ctx context.Context, board string, limit int) ([]*models.Score, error) {
	q := `
	SELECT id, board, user_id, name, score, cubes, seconds_played, played_at
	FROM scores WHERE board = ?
	ORDER BY score DESC, played_at ASC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, board, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %v", err)
	}
	defer rows.Close()

	scores := []*models.Score{}
	for rows.Next() {
		score, err := scanSQLiteScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score: %v", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %v", err)
	}

	return scores, nil
}

func (r *SQLiteRepository) ListBoards(ctx context.Context) ([]*models.Board, error) {
	q := `
	SELECT board, COUNT(*), MAX(score) FROM scores GROUP BY board;
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %v", err)
	}
	defer rows.Close()

	boards := []*models.Board{}
	for rows.Next() {
		board := &models.Board{}
		if err := rows.Scan(&board.Name, &board.Games, &board.HighScore); err != nil {
			return nil, fmt.Errorf("failed to scan board: %v", err)
		}
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boards: %v", err)
	}

	sortBoards(boards)
	return boards, nil
}

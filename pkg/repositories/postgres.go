package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ Repository = &PostgresRepository{}

// PostgresRepository stores scores in postgres over a single connection.
type PostgresRepository struct {
	// pgx.Conn is not safe for concurrent use
	lock sync.Mutex
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and runs the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations fs.FS) (*PostgresRepository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, migrations, func(ctx context.Context, name, migration string) error {
		_, err := conn.Exec(ctx, migration)
		return err
	}); err != nil {
		conn.Close(ctx)
		return nil, err
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveScore(ctx context.Context, score *models.Score) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	INSERT INTO scores (id, board, user_id, name, score, cubes, seconds_played, played_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.conn.Exec(ctx, q,
		score.ID, score.Board, score.UserID, score.Name,
		score.Score, score.Cubes, score.SecondsPlayed, score.PlayedAt)
	if err != nil {
		return fmt.Errorf("failed to insert score: %v", err)
	}

	return nil
}

func (r *PostgresRepository) GetScore(ctx context.Context, id uuid.UUID) (*models.Score, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT id, board, user_id, name, score, cubes, seconds_played, played_at
	FROM scores WHERE id = $1;
	`
	score := &models.Score{}
	err := r.conn.QueryRow(ctx, q, id).Scan(
		&score.ID, &score.Board, &score.UserID, &score.Name,
		&score.Score, &score.Cubes, &score.SecondsPlayed, &score.PlayedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan score: %v", err)
	}

	return score, nil
}

func (r *PostgresRepository) ListTopScores(ctx context.Context, board string, limit int) ([]*models.Score, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	q := `
	SELECT id, board, user_id, name, score, cubes, seconds_played, played_at
	FROM scores WHERE board = $1
	ORDER BY score DESC, played_at ASC
	LIMIT $2;
	`
	rows, err := r.conn.Query(ctx, q, board, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %v", err)
	}
	defer rows.Close()

	scores := []*models.Score{}
	for rows.Next() {
		score := &models.Score{}
		if err := rows.Scan(
			&score.ID, &score.Board, &score.UserID, &score.Name,
			&score.Score, &score.Cubes, &score.SecondsPlayed, &score.PlayedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score: %v", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %v", err)
	}

	return scores, nil
}

func (r *PostgresRepository) ListBoards(ctx context.Context) ([]*models.Board, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	rows, err := r.conn.Query(ctx, "SELECT board, COUNT(*), MAX(score) FROM scores GROUP BY board")
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %v", err)
	}
	defer rows.Close()

	boards := []*models.Board{}
	for rows.Next() {
		var games int64
		var highScore int32
		board := &models.Board{}
		if err := rows.Scan(&board.Name, &games, &highScore); err != nil {
			return nil, fmt.Errorf("failed to scan board: %v", err)
		}
		board.Games = int(games)
		board.HighScore = int(highScore)
		boards = append(boards, board)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boards: %v", err)
	}

	sortBoards(boards)
	return boards, nil
}

package repositories

import (
	"context"

	"github.com/cbodonnell/shaft/pkg/repositories/models"
	"github.com/google/uuid"
)

// MaxTopScores caps the limit of ListTopScores.
const MaxTopScores = 100

type Repository interface {
	Close(ctx context.Context) error
	// SaveScore stores a finished game. Saving the same ID twice keeps the
	// first copy.
	SaveScore(ctx context.Context, score *models.Score) error
	GetScore(ctx context.Context, id uuid.UUID) (*models.Score, error)
	// ListTopScores returns the best games of a board, highest score first.
	ListTopScores(ctx context.Context, board string, limit int) ([]*models.Score, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxTopScores {
		return MaxTopScores
	}
	return limit
}

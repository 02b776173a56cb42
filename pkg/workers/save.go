package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/repositories"
	"github.com/cbodonnell/shaft/pkg/repositories/models"
	"github.com/cbodonnell/shaft/pkg/scores"
)

const saveTimeout = 5 * time.Second

type SaveScoreWorker struct {
	repository    repositories.Repository
	saveScoreChan <-chan SaveScoreRequest
	done          chan struct{}
}

type NewSaveScoreWorkerOptions struct {
	Repository    repositories.Repository
	SaveScoreChan <-chan SaveScoreRequest
}

// SaveScoreRequest is sent by the game loop when a game ends.
type SaveScoreRequest struct {
	Board  string
	UserID string
	Entry  scores.Entry
}

// NewSaveScoreWorker creates a new SaveScoreWorker.
// The worker processes save requests from the game loop
// so that database writes never block a tick.
func NewSaveScoreWorker(opts NewSaveScoreWorkerOptions) *SaveScoreWorker {
	return &SaveScoreWorker{
		repository:    opts.Repository,
		saveScoreChan: opts.SaveScoreChan,
		done:          make(chan struct{}),
	}
}

// Start saves scores until SaveScoreChan is closed. Games abandoned on
// shutdown are queued after ctx is cancelled, so cancellation only stops
// the worker once the channel is closed and drained.
func (w *SaveScoreWorker) Start(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			log.Debug("Save score worker draining")
			for req := range w.saveScoreChan {
				w.saveScore(req)
			}
			return
		case req, ok := <-w.saveScoreChan:
			if !ok {
				return
			}
			w.saveScore(req)
		}
	}
}

// Done is closed when Start returns.
func (w *SaveScoreWorker) Done() <-chan struct{} {
	return w.done
}

func (w *SaveScoreWorker) saveScore(req SaveScoreRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	score := ScoreFromEntry(req.Board, req.UserID, req.Entry)
	if err := w.repository.SaveScore(ctx, score); err != nil {
		log.Error("Failed to save score %s on board %s: %v", score.ID, req.Board, err)
		return
	}
	log.Debug("Saved score %d for %s on board %s", score.Score, score.Name, req.Board)
}

// ScoreFromEntry converts a leaderboard entry into a stored score.
func ScoreFromEntry(board, userID string, e scores.Entry) *models.Score {
	return &models.Score{
		ID:            e.ID,
		Board:         board,
		UserID:        userID,
		Name:          e.Name,
		Score:         e.Score,
		Cubes:         e.Cubes,
		SecondsPlayed: e.SecondsPlayed,
		PlayedAt:      e.Time,
	}
}

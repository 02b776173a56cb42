package repositories

import (
	"github.com/cbodonnell/shaft/pkg/repositories/models"
	"github.com/cbodonnell/shaft/pkg/scores"
)

// sortBoards orders boards the way the game lists them, smallest shaft first.
func sortBoards(boards []*models.Board) {
	names := make([]string, len(boards))
	byName := make(map[string]*models.Board, len(boards))
	for i, b := range boards {
		names[i] = b.Name
		byName[b.Name] = b
	}
	scores.SortBoards(names)
	for i, name := range names {
		boards[i] = byName[name]
	}
}

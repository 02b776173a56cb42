package scenes

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/shaft/client/fonts"
	"github.com/cbodonnell/shaft/pkg/client/network"
	"github.com/cbodonnell/shaft/pkg/game/constants"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/cbodonnell/shaft/pkg/scores"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const fetchTimeout = 5 * time.Second

var highlight = color.RGBA{R: 0xff, G: 0xd7, B: 0x40, A: 0xff}

// GameOverScene lists the leaderboard the finished game landed on, merged
// with the scores of the score server once they arrive.
type GameOverScene struct {
	BaseScene

	gameOver    *messages.ServerGameOver
	scoreClient *network.ScoreClient
	online      chan []scores.Entry
	cancel      context.CancelFunc
}

var _ Scene = &GameOverScene{}

// NewGameOverScene shows gameOver. scoreClient is optional.
func NewGameOverScene(gameOver *messages.ServerGameOver, scoreClient *network.ScoreClient) *GameOverScene {
	return &GameOverScene{
		gameOver:    gameOver,
		scoreClient: scoreClient,
	}
}

func (s *GameOverScene) Init() error {
	if s.scoreClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	s.cancel = cancel
	s.online = make(chan []scores.Entry, 1)
	go func() {
		entries, err := s.scoreClient.FetchTopScores(ctx, s.gameOver.Board, constants.LeaderboardSize)
		if err != nil {
			log.Warn("Failed to fetch online scores: %v", err)
			return
		}
		s.online <- entries
	}()
	return nil
}

func (s *GameOverScene) Destroy() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

func (s *GameOverScene) Update() error {
	select {
	case entries := <-s.online:
		s.gameOver.Leaderboard = scores.Merge(s.gameOver.Leaderboard, entries)
		log.Debug("Merged %d online scores into %s", len(entries), s.gameOver.Board)
	default:
	}
	return nil
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	title := "GAME OVER"
	if s.gameOver.TopTen {
		title = fmt.Sprintf("GAME OVER - RANK %d", s.gameOver.Rank)
	}
	text.Draw(screen, title, fonts.MPlusNormalFont, 60, 60, color.White)
	text.Draw(screen, s.gameOver.Board, fonts.TTFSmallFont, 60, 85, color.Gray{Y: 0xa0})

	y := 130
	for i, e := range s.gameOver.Leaderboard {
		clr := color.Color(color.White)
		if e.ID == s.gameOver.Entry.ID {
			clr = highlight
		}
		online := ""
		if e.Online {
			online = "*"
		}
		line := fmt.Sprintf("%2d. %-16s %8d %6d %5ds %s", i+1, e.Name, e.Score, e.Cubes, e.SecondsPlayed, online)
		text.Draw(screen, line, fonts.MonoFont, 60, y, clr)
		y += 28
	}

	text.Draw(screen, "Press Enter for a new game", fonts.TTFSmallFont, 60, y+20, color.Gray{Y: 0xa0})
}

package game

import (
	"github.com/cbodonnell/shaft/pkg/clock"
	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/cbodonnell/shaft/pkg/scores"
	"github.com/cbodonnell/shaft/pkg/sim"
	"github.com/cbodonnell/shaft/pkg/workers"
)

// Session is the game state of one connected client. It is only touched by
// the game loop.
type Session struct {
	ClientID uint32
	UserID   string
	Name     string

	model     *sim.Model
	keeper    *scores.Keeper
	stopwatch *clock.Stopwatch

	paused       bool
	gameOverSent bool

	// events raised by the model during a tick, flushed on broadcast
	events []workers.ServerMessage
	// saves are final entries waiting to be stored
	saves []workers.SaveScoreRequest
}

func newSession(clientID uint32, userID string, c clock.Clock) *Session {
	return &Session{
		ClientID:  clientID,
		UserID:    userID,
		stopwatch: clock.NewStopwatch(c),
	}
}

// Playing reports whether the session has a game that is not over.
func (s *Session) Playing() bool {
	return s.model != nil && s.model.Alive()
}

func (s *Session) Paused() bool {
	return s.paused
}

func (s *Session) Model() *sim.Model {
	return s.model
}

func (s *Session) Keeper() *scores.Keeper {
	return s.keeper
}

// Seconds is the time played in the current game.
func (s *Session) Seconds() float64 {
	return s.stopwatch.Seconds()
}

func (s *Session) push(t messages.MessageType, payload interface{}) {
	s.events = append(s.events, workers.ServerMessage{
		ClientID: s.ClientID,
		Type:     t,
		Message:  payload,
	})
}

func (s *Session) PlaySample(name string) {
	s.push(messages.MessageTypeServerSound, &messages.ServerSound{Sample: name})
}

func (s *Session) NotifyNewBlock() {
	if s.model == nil {
		// first spawn happens while the model is built
		s.push(messages.MessageTypeServerNewBlock, &messages.ServerNewBlock{})
		return
	}
	s.push(messages.MessageTypeServerNewBlock, &messages.ServerNewBlock{Elements: s.model.ReferenceElements()})
}

func (s *Session) NotifyRotation(q types.Quaternion) {
	s.push(messages.MessageTypeServerRotation, &messages.ServerRotation{Rotation: q})
}

func (s *Session) onFinalize(board string, entry scores.Entry) {
	s.saves = append(s.saves, workers.SaveScoreRequest{
		Board:  board,
		UserID: s.UserID,
		Entry:  entry,
	})
}

// abandon ends a running game as if it was lost. Games without points are
// dropped.
func (s *Session) abandon() {
	if !s.Playing() || s.keeper == nil || s.keeper.CurrentScore() == 0 {
		return
	}
	s.keeper.AddToCurrentScore(0, 0, int(s.stopwatch.Seconds()))
	s.keeper.Finalize()
	s.stopwatch.Pause()
}

func (s *Session) drainEvents() []workers.ServerMessage {
	events := s.events
	s.events = nil
	return events
}

func (s *Session) drainSaves() []workers.SaveScoreRequest {
	saves := s.saves
	s.saves = nil
	return saves
}

// ShaftUpdate copies the state of the session's game for its client.
func (s *Session) ShaftUpdate(timestamp int64) *messages.ServerShaftUpdate {
	snap := s.model.Snapshot()
	return &messages.ServerShaftUpdate{
		Timestamp:        timestamp,
		Width:            snap.Width,
		Height:           snap.Height,
		Depth:            snap.Depth,
		Level:            snap.Level,
		ElementCount:     snap.ElementCount,
		Score:            s.keeper.CurrentScore(),
		HighScore:        s.keeper.HighScore(),
		Offset:           snap.Offset,
		Orientation:      snap.Orientation,
		Elements:         snap.Elements,
		Reference:        snap.Reference,
		Hint:             snap.Hint,
		Next:             snap.Next,
		Locked:           snap.Locked,
		PlaneCounts:      snap.PlaneCounts,
		BonusSecondsLeft: float32(snap.BonusSecondsLeft),
		BonusDuration:    float32(snap.BonusDuration),
		SecondsPlayed:    float32(s.stopwatch.Seconds()),
		FreeFall:         snap.FreeFall,
		Practice:         snap.Practice,
		Alive:            snap.Alive,
		Paused:           s.paused,
	}
}

// GameOver describes the finished game for its client.
func (s *Session) GameOver() *messages.ServerGameOver {
	return &messages.ServerGameOver{
		Board:       s.keeper.Board(),
		Entry:       s.keeper.Current(),
		Rank:        s.keeper.CurrentIndex() + 1,
		TopTen:      s.keeper.CurrentIsTopTen(),
		Leaderboard: s.keeper.Leaderboard(),
	}
}

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/cbodonnell/shaft/pkg/repositories/models"
	"github.com/cbodonnell/shaft/pkg/scores"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	repositorymocks "github.com/cbodonnell/shaft/mocks/github.com/cbodonnell/shaft/pkg/repositories"
	workermocks "github.com/cbodonnell/shaft/mocks/github.com/cbodonnell/shaft/pkg/workers"
)

func TestServerMessageWorker_SendsToClient(t *testing.T) {
	sender := workermocks.NewMessageSender(t)
	w := NewServerMessageWorker(NewServerMessageWorkerOptions{Sender: sender})

	sender.EXPECT().SendMessageToClient(mock.Anything, uint32(7), mock.MatchedBy(func(m *messages.Message) bool {
		sound := &messages.ServerSound{}
		return m.Type == messages.MessageTypeServerSound &&
			messages.DecodePayload(m, sound) == nil &&
			sound.Sample == "sounds/achoo"
	})).Return(nil).Once()

	err := w.handleServerMessage(context.Background(), ServerMessage{
		ClientID: 7,
		Type:     messages.MessageTypeServerSound,
		Message:  &messages.ServerSound{Sample: "sounds/achoo"},
	})
	assert.NoError(t, err)
}

func TestServerMessageWorker_BroadcastsShaftUpdate(t *testing.T) {
	sender := workermocks.NewMessageSender(t)
	w := NewServerMessageWorker(NewServerMessageWorkerOptions{Sender: sender})

	update := &messages.ServerShaftUpdate{
		Timestamp: 42,
		Width:     5,
		Height:    5,
		Depth:     12,
		Elements:  []types.Point3{{X: 2, Y: 2, Z: 11}},
		Alive:     true,
	}
	sender.EXPECT().SendMessageToAll(mock.Anything, mock.MatchedBy(func(m *messages.Message) bool {
		got, err := messages.DeserializeShaftUpdate(m.Payload)
		return err == nil && m.Type == messages.MessageTypeServerShaftUpdate && got.Timestamp == 42 && len(got.Elements) == 1
	})).Return().Once()

	err := w.handleServerMessage(context.Background(), ServerMessage{
		Type:    messages.MessageTypeServerShaftUpdate,
		Message: update,
	})
	assert.NoError(t, err)
}

func TestServerMessageWorker_Errors(t *testing.T) {
	tests := []struct {
		name string
		msg  ServerMessage
	}{
		{
			name: "wrong shaft update payload",
			msg:  ServerMessage{ClientID: 1, Type: messages.MessageTypeServerShaftUpdate, Message: &messages.ServerSound{}},
		},
		{
			name: "client message type",
			msg:  ServerMessage{ClientID: 1, Type: messages.MessageTypeClientMove, Message: &messages.ClientMove{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the sender must not be called
			sender := workermocks.NewMessageSender(t)
			w := NewServerMessageWorker(NewServerMessageWorkerOptions{Sender: sender})
			assert.Error(t, w.handleServerMessage(context.Background(), tt.msg))
		})
	}
}

func TestServerMessageWorker_Start(t *testing.T) {
	sender := workermocks.NewMessageSender(t)
	ch := make(chan ServerMessage)
	w := NewServerMessageWorker(NewServerMessageWorkerOptions{Sender: sender, ServerMessageChan: ch})

	done := make(chan struct{})
	sender.EXPECT().SendMessageToClient(mock.Anything, uint32(3), mock.Anything).
		Run(func(ctx context.Context, clientID uint32, msg *messages.Message) { close(done) }).
		Return(errors.New("gone")).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	ch <- ServerMessage{ClientID: 3, Type: messages.MessageTypeServerError, Message: &messages.ServerError{Message: "bad"}}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not sent")
	}
}

func TestSaveScoreWorker(t *testing.T) {
	repo := repositorymocks.NewRepository(t)
	w := NewSaveScoreWorker(NewSaveScoreWorkerOptions{Repository: repo})

	entry := scores.Entry{
		ID:            uuid.New(),
		Name:          "ada",
		Score:         1234,
		Cubes:         56,
		SecondsPlayed: 78,
		Time:          time.Unix(1700000000, 0),
	}
	repo.EXPECT().SaveScore(mock.Anything, &models.Score{
		ID:            entry.ID,
		Board:         "5x5x12:Shaaft",
		UserID:        "user-1",
		Name:          "ada",
		Score:         1234,
		Cubes:         56,
		SecondsPlayed: 78,
		PlayedAt:      entry.Time,
	}).Return(nil).Once()

	w.saveScore(SaveScoreRequest{Board: "5x5x12:Shaaft", UserID: "user-1", Entry: entry})
}

func TestSaveScoreWorker_Start(t *testing.T) {
	repo := repositorymocks.NewRepository(t)
	ch := make(chan SaveScoreRequest)
	w := NewSaveScoreWorker(NewSaveScoreWorkerOptions{Repository: repo, SaveScoreChan: ch})

	saved := make(chan *models.Score, 1)
	repo.EXPECT().SaveScore(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, score *models.Score) { saved <- score }).
		Return(errors.New("db down")).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer close(ch)
	defer cancel()
	go w.Start(ctx)

	ch <- SaveScoreRequest{Board: "3x3x3:Flat", Entry: scores.Entry{Name: "x", Score: 1}}
	select {
	case score := <-saved:
		require.NotNil(t, score)
		assert.Equal(t, "3x3x3:Flat", score.Board)
	case <-time.After(2 * time.Second):
		t.Fatal("score was not saved")
	}
}

func TestSaveScoreWorker_DrainsAfterCancel(t *testing.T) {
	repo := repositorymocks.NewRepository(t)
	ch := make(chan SaveScoreRequest, 4)
	w := NewSaveScoreWorker(NewSaveScoreWorkerOptions{Repository: repo, SaveScoreChan: ch})

	var saved []int
	repo.EXPECT().SaveScore(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, score *models.Score) {
			assert.NoError(t, ctx.Err(), "writes must not inherit the cancelled context")
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			saved = append(saved, score.Score)
		}).
		Return(nil).Twice()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	go w.Start(ctx)

	// games abandoned during shutdown are queued after cancellation
	ch <- SaveScoreRequest{Board: "5x5x12:Shaaft", Entry: scores.Entry{Name: "ada", Score: 500}}
	ch <- SaveScoreRequest{Board: "5x5x12:Shaaft", Entry: scores.Entry{Name: "bob", Score: 300}}
	close(ch)

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after the channel was closed")
	}
	assert.Equal(t, []int{500, 300}, saved)
}

func TestSaveScoreWorker_StopsWhenChannelClosed(t *testing.T) {
	repo := repositorymocks.NewRepository(t)
	ch := make(chan SaveScoreRequest)
	w := NewSaveScoreWorker(NewSaveScoreWorkerOptions{Repository: repo, SaveScoreChan: ch})

	go w.Start(context.Background())
	close(ch)

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

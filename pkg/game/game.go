package game

import (
	"context"
	"fmt"
	"io/fs"
	"math/rand"
	"time"

	"github.com/cbodonnell/shaft/pkg/blocks"
	"github.com/cbodonnell/shaft/pkg/clock"
	"github.com/cbodonnell/shaft/pkg/config"
	"github.com/cbodonnell/shaft/pkg/game/constants"
	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/cbodonnell/shaft/pkg/queue"
	"github.com/cbodonnell/shaft/pkg/repositories"
	"github.com/cbodonnell/shaft/pkg/scores"
	"github.com/cbodonnell/shaft/pkg/sim"
	"github.com/cbodonnell/shaft/pkg/workers"
	"github.com/kamstrup/intmap"
)

// RandFactory returns the random source of a new game.
type RandFactory func() sim.Rand

type GameManager struct {
	clientMessageQueue   queue.Queue
	connectionEventQueue queue.Queue
	repository           repositories.Repository
	serverMessageChan    chan<- workers.ServerMessage
	saveScoreChan        chan<- workers.SaveScoreRequest
	gameLoopInterval     time.Duration
	blocksets            fs.FS
	newRand              RandFactory
	clock                clock.Clock

	sessions *intmap.Map[uint32, *Session]
	// boards caches the top entries of every board seen
	boards    map[string][]scores.Entry
	catalogs  map[string]*blocks.Blockset
	timestamp int64
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	ClientMessageQueue   queue.Queue
	ConnectionEventQueue queue.Queue
	// Repository is optional and used to load the leaderboards on start.
	Repository        repositories.Repository
	ServerMessageChan chan<- workers.ServerMessage
	SaveScoreChan     chan<- workers.SaveScoreRequest
	GameLoopInterval  time.Duration
	// Blocksets is searched before the built-in block sets.
	Blocksets fs.FS
	NewRand   RandFactory
	Clock     clock.Clock
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	gm := &GameManager{
		clientMessageQueue:   opts.ClientMessageQueue,
		connectionEventQueue: opts.ConnectionEventQueue,
		repository:           opts.Repository,
		serverMessageChan:    opts.ServerMessageChan,
		saveScoreChan:        opts.SaveScoreChan,
		gameLoopInterval:     opts.GameLoopInterval,
		blocksets:            opts.Blocksets,
		newRand:              opts.NewRand,
		clock:                opts.Clock,
		sessions:             intmap.New[uint32, *Session](64),
		boards:               make(map[string][]scores.Entry),
		catalogs:             make(map[string]*blocks.Blockset),
	}
	if gm.gameLoopInterval <= 0 {
		gm.gameLoopInterval = constants.GameLoopInterval
	}
	if gm.newRand == nil {
		gm.newRand = func() sim.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if gm.clock == nil {
		gm.clock = clock.SystemClock{}
	}
	return gm
}

// Start starts the game loop.
func (gm *GameManager) Start(ctx context.Context) error {
	if err := gm.initializeLeaderboards(ctx); err != nil {
		return fmt.Errorf("failed to initialize leaderboards: %v", err)
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			gm.Stop()
			return nil
		case t := <-ticker.C:
			err := gm.gameTick(ctx, t)
			if err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// Stop ends every running game so that its score is saved.
func (gm *GameManager) Stop() {
	gm.sessions.ForEach(func(clientID uint32, s *Session) bool {
		s.abandon()
		gm.flushSaves(s)
		return true
	})
}

func (gm *GameManager) initializeLeaderboards(ctx context.Context) error {
	if gm.repository == nil {
		return nil
	}
	boards, err := gm.repository.ListBoards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list boards: %v", err)
	}
	for _, b := range boards {
		top, err := gm.repository.ListTopScores(ctx, b.Name, constants.LeaderboardSize-1)
		if err != nil {
			return fmt.Errorf("failed to list top scores of %s: %v", b.Name, err)
		}
		entries := make([]scores.Entry, 0, len(top))
		for _, s := range top {
			entries = append(entries, scores.Entry{
				ID:            s.ID,
				Name:          s.Name,
				Score:         s.Score,
				Cubes:         s.Cubes,
				SecondsPlayed: s.SecondsPlayed,
				Time:          s.PlayedAt,
				Online:        true,
			})
		}
		gm.boards[b.Name] = entries
	}
	log.Info("Loaded %d leaderboards", len(boards))
	return nil
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(_ context.Context, t time.Time) error {
	gm.timestamp = t.UnixMilli()
	gm.processConnectionEvents()
	gm.processClientMessages()
	gm.updateSessions()
	gm.broadcastGameState()

	return nil
}

// Session returns the session of a connected client.
func (gm *GameManager) Session(clientID uint32) (*Session, bool) {
	return gm.sessions.Get(clientID)
}

// processConnectionEvents processes all pending connection events in the queue.
func (gm *GameManager) processConnectionEvents() {
	pendingEvents, err := gm.connectionEventQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read connection events: %v", err)
		return
	}
	for _, item := range pendingEvents {
		switch event := item.(type) {
		case *types.ConnectClientEvent:
			gm.sessions.Put(event.ClientID, newSession(event.ClientID, event.UserID, gm.clock))
			log.Debug("Session created for client %d", event.ClientID)
		case *types.DisconnectClientEvent:
			s, ok := gm.sessions.Get(event.ClientID)
			if !ok {
				log.Warn("Client %d has no session", event.ClientID)
				continue
			}
			s.abandon()
			gm.flushSaves(s)
			gm.sessions.Del(event.ClientID)
			log.Debug("Session removed for client %d", event.ClientID)
		default:
			log.Error("Unhandled connection event type: %T", event)
		}
	}
}

// processClientMessages applies all pending client commands in arrival order.
func (gm *GameManager) processClientMessages() {
	pendingMessages, err := gm.clientMessageQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read client messages: %v", err)
		return
	}
	for _, item := range pendingMessages {
		message, ok := item.(*messages.Message)
		if !ok {
			log.Error("Failed to cast message to messages.Message")
			continue
		}

		s, ok := gm.sessions.Get(message.ClientID)
		if !ok {
			log.Warn("Client %d is not in the game state", message.ClientID)
			continue
		}

		if err := gm.handleClientMessage(s, message); err != nil {
			log.Warn("Failed to handle %s message from client %d: %v", message.Type, message.ClientID, err)
			s.push(messages.MessageTypeServerError, &messages.ServerError{Message: err.Error()})
		}
	}
}

func (gm *GameManager) handleClientMessage(s *Session, message *messages.Message) error {
	switch message.Type {
	case messages.MessageTypeClientStartGame:
		start := &messages.ClientStartGame{}
		if err := messages.DecodePayload(message, start); err != nil {
			return err
		}
		return gm.startGame(s, start)
	case messages.MessageTypeClientMove:
		move := &messages.ClientMove{}
		if err := messages.DecodePayload(message, move); err != nil {
			return err
		}
		dir, err := sim.ParseDirection(move.Direction)
		if err != nil {
			return err
		}
		if s.Playing() && !s.paused {
			s.model.AttemptMove(dir)
		}
	case messages.MessageTypeClientRotate:
		rotate := &messages.ClientRotate{}
		if err := messages.DecodePayload(message, rotate); err != nil {
			return err
		}
		rot, ok := sim.Rotations[rotate.Rotation]
		if !ok {
			return fmt.Errorf("unknown rotation: %s", rotate.Rotation)
		}
		if s.Playing() && !s.paused {
			s.model.AttemptRotate(rot)
		}
	case messages.MessageTypeClientSetPractice:
		practice := &messages.ClientSetPractice{}
		if err := messages.DecodePayload(message, practice); err != nil {
			return err
		}
		if s.Playing() {
			s.model.SetPracticeMode(practice.Practice)
			s.keeper.SetPracticeMode(practice.Practice)
		}
	case messages.MessageTypeClientPause:
		pause := &messages.ClientPause{}
		if err := messages.DecodePayload(message, pause); err != nil {
			return err
		}
		if !s.Playing() {
			return nil
		}
		s.paused = pause.Paused
		if s.paused {
			s.stopwatch.Pause()
		} else {
			s.stopwatch.Start()
		}
	case messages.MessageTypeClientSetName:
		name := &messages.ClientSetName{}
		if err := messages.DecodePayload(message, name); err != nil {
			return err
		}
		s.Name = name.Name
		if s.keeper != nil {
			s.keeper.SetName(name.Name)
		}
	default:
		return fmt.Errorf("unhandled message type: %s", message.Type)
	}
	return nil
}

func (gm *GameManager) loadBlockset(name string) (*blocks.Blockset, error) {
	if b, ok := gm.catalogs[name]; ok {
		return b, nil
	}
	var b *blocks.Blockset
	var err error
	if gm.blocksets != nil {
		b, err = blocks.Load(gm.blocksets, name)
	}
	if b == nil {
		b, err = blocks.LoadBuiltin(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load blockset %s: %v", name, err)
	}
	gm.catalogs[name] = b
	return b, nil
}

// startGame replaces the session's game with a new one. A running game is
// abandoned and its score kept.
func (gm *GameManager) startGame(s *Session, start *messages.ClientStartGame) error {
	width, height, depth := start.Width, start.Height, start.Depth
	if width == 0 && height == 0 && depth == 0 {
		width, height, depth = constants.DefaultShaftWidth, constants.DefaultShaftHeight, constants.DefaultShaftDepth
	}
	if err := config.ValidateShaft(width, height, depth); err != nil {
		return err
	}
	blocksetName := start.Blockset
	if blocksetName == "" {
		blocksetName = constants.DefaultBlockset
	}
	blockset, err := gm.loadBlockset(blocksetName)
	if err != nil {
		return err
	}
	catalog, err := blockset.Catalog(width, height, depth)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %v", err)
	}

	s.abandon()
	gm.flushSaves(s)

	if start.Name != "" {
		s.Name = start.Name
	}
	level := start.Level
	if level == 0 {
		level = constants.DefaultStartLevel
	}
	board := scores.BoardName(width, height, depth, blocksetName)
	rng := gm.newRand()
	s.keeper = scores.NewKeeper(scores.NewKeeperOptions{
		Board:           board,
		Name:            s.Name,
		Top:             gm.boards[board],
		Practice:        start.Practice,
		OnFinalize:      s.onFinalize,
		Clock:           gm.clock,
		PlaceholderSeed: rng.Intn(100),
	})
	s.model = nil
	model, err := sim.NewModel(sim.NewModelOptions{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Level:    level,
		Catalog:  catalog,
		Rand:     rng,
		Audio:    s,
		Scores:   s.keeper,
		Listener: s,
		Logger:   log.Default().With("client", s.ClientID),
		Practice: start.Practice,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %v", err)
	}
	s.model = model
	s.paused = false
	s.gameOverSent = false
	s.stopwatch.Reset()
	s.stopwatch.Start()

	log.Info("Client %d started a game on %s at level %d", s.ClientID, board, model.Level())
	return nil
}

// updateSessions advances every running game to its own play time.
func (gm *GameManager) updateSessions() {
	gm.sessions.ForEach(func(clientID uint32, s *Session) bool {
		if s.model == nil {
			return true
		}
		if s.Playing() && !s.paused {
			s.model.Update(s.stopwatch.Seconds())
		}
		if !s.model.Alive() && !s.gameOverSent {
			s.stopwatch.Pause()
			s.gameOverSent = true
			s.push(messages.MessageTypeServerGameOver, s.GameOver())
		}
		gm.flushSaves(s)
		return true
	})
}

func (gm *GameManager) flushSaves(s *Session) {
	for _, req := range s.drainSaves() {
		gm.boards[req.Board] = scores.Merge(gm.boards[req.Board], []scores.Entry{req.Entry})
		gm.publishScore(s.ClientID, req)
		if gm.saveScoreChan == nil {
			continue
		}
		select {
		case gm.saveScoreChan <- req:
		default:
			log.Error("Save queue full, dropping score %s of client %d", req.Entry.ID, s.ClientID)
		}
	}
}

// publishScore merges a finished game into the running games of the other
// players on the same board.
func (gm *GameManager) publishScore(from uint32, req workers.SaveScoreRequest) {
	gm.sessions.ForEach(func(clientID uint32, other *Session) bool {
		if clientID == from || !other.Playing() || other.keeper.Board() != req.Board {
			return true
		}
		other.keeper.MergeOnline([]scores.Entry{req.Entry})
		return true
	})
}

// broadcastGameState sends every client its events and the state of its game.
func (gm *GameManager) broadcastGameState() {
	gm.sessions.ForEach(func(clientID uint32, s *Session) bool {
		for _, event := range s.drainEvents() {
			gm.send(event)
		}
		if s.model == nil {
			return true
		}
		gm.send(workers.ServerMessage{
			ClientID: clientID,
			Type:     messages.MessageTypeServerShaftUpdate,
			Message:  s.ShaftUpdate(gm.timestamp),
		})
		return true
	})
}

func (gm *GameManager) send(msg workers.ServerMessage) {
	select {
	case gm.serverMessageChan <- msg:
	default:
		log.Warn("Server message queue full, dropping %s message for client %d", msg.Type, msg.ClientID)
	}
}

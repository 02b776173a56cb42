package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/shaft/client/flow"
	"github.com/cbodonnell/shaft/client/input"
	"github.com/cbodonnell/shaft/client/scenes"
	"github.com/cbodonnell/shaft/pkg/client/network"
	"github.com/cbodonnell/shaft/pkg/config"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/cbodonnell/shaft/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	connectTimeout = 5 * time.Second
	pingInterval   = 2 * time.Second

	ScreenWidth  = 860
	ScreenHeight = 600
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// settings holds the shaft and player defaults sent with every new game.
	settings config.Game
	// client is the connection to the game server.
	client *network.WSClient
	// scoreClient is optional and fetches online leaderboards.
	scoreClient *network.ScoreClient
	// messageQueue receives the messages read by client.
	messageQueue queue.Queue
	// errChan carries the error that ended the read loop.
	errChan chan error
	// cancel stops the read loop of the current connection.
	cancel context.CancelFunc
	// connected is set once a connection attempt succeeded.
	connected bool
	lastPing  time.Time
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
	// pendingGameOver is set by the game scene and handled on the next update.
	pendingGameOver *messages.ServerGameOver
}

type NewGameOptions struct {
	Debug        bool
	Settings     config.Game
	Client       *network.WSClient
	ScoreClient  *network.ScoreClient
	MessageQueue queue.Queue
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug:        opts.Debug,
		settings:     opts.Settings,
		client:       opts.Client,
		scoreClient:  opts.ScoreClient,
		messageQueue: opts.MessageQueue,
	}

	if err := g.SetScene(scenes.NewTextOverlayScene("CONNECTING")); err != nil {
		return nil, err
	}
	g.mode = flow.GameModeConnecting

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

// connect dials the server, starts reading and asks for a new game.
func (g *Game) connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := g.client.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect: %v", err)
	}
	// drop what is left from a previous connection
	g.messageQueue.ClearQueue()

	readCtx, readCancel := context.WithCancel(context.Background())
	g.cancel = readCancel
	errChan := make(chan error, 1)
	g.errChan = errChan
	go func() {
		if err := g.client.HandleMessages(readCtx); err != nil {
			errChan <- err
			return
		}
		errChan <- fmt.Errorf("connection closed")
	}()

	g.connected = true
	return g.startGame()
}

func (g *Game) disconnect() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	if g.connected {
		if err := g.client.Close(); err != nil {
			log.Debug("Failed to close connection: %v", err)
		}
		g.connected = false
	}
}

func (g *Game) startGame() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	err := g.client.StartGame(ctx, &messages.ClientStartGame{
		Width:    g.settings.Width,
		Height:   g.settings.Height,
		Depth:    g.settings.Depth,
		Level:    g.settings.StartLevel,
		Blockset: g.settings.Blockset,
		Practice: g.settings.PracticeMode,
		Name:     g.settings.PlayerName,
	})
	if err != nil {
		return fmt.Errorf("failed to start game: %v", err)
	}

	return g.loadGame()
}

func (g *Game) loadGame() error {
	gameScene := scenes.NewGameScene(scenes.NewGameSceneOptions{
		Client:       g.client,
		MessageQueue: g.messageQueue,
		OnGameOver: func(gameOver *messages.ServerGameOver) {
			g.pendingGameOver = gameOver
		},
	})
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = flow.GameModePlay
	return nil
}

func (g *Game) loadGameOver(gameOver *messages.ServerGameOver) error {
	if err := g.SetScene(scenes.NewGameOverScene(gameOver, g.scoreClient)); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.mode = flow.GameModeOver
	return nil
}

func (g *Game) loadNetworkError(cause error) error {
	log.Error("Network error: %v", cause)
	g.disconnect()
	if err := g.SetScene(scenes.NewErrorScene("Network Error")); err != nil {
		return fmt.Errorf("failed to set network error scene: %v", err)
	}
	g.mode = flow.GameModeNetworkError
	return nil
}

func (g *Game) Update() error {
	if g.mode == flow.GameModeConnecting {
		if err := g.connect(); err != nil {
			return g.loadNetworkError(err)
		}
	}

	if err := g.checkConnection(); err != nil {
		return g.loadNetworkError(err)
	}

	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	if err := g.scene.Update(); err != nil {
		if g.connected {
			return g.loadNetworkError(err)
		}
		return fmt.Errorf("failed to update scene: %v", err)
	}

	if g.pendingGameOver != nil {
		gameOver := g.pendingGameOver
		g.pendingGameOver = nil
		if err := g.loadGameOver(gameOver); err != nil {
			return err
		}
	}

	return nil
}

// checkConnection reports the error of the read loop and keeps the round
// trip time fresh.
func (g *Game) checkConnection() error {
	if !g.connected {
		return nil
	}

	select {
	case err := <-g.errChan:
		return err
	default:
	}

	if time.Since(g.lastPing) < pingInterval {
		return nil
	}
	g.lastPing = time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return g.client.Ping(ctx)
}

func (g *Game) handleInput() error {
	switch g.mode {
	case flow.GameModePlay, flow.GameModeOver:
		if input.IsNewGameJustPressed() {
			return g.startGame()
		}
	case flow.GameModeNetworkError:
		if input.IsPositiveJustPressed() {
			if err := g.SetScene(scenes.NewTextOverlayScene("CONNECTING")); err != nil {
				return err
			}
			g.mode = flow.GameModeConnecting
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	if !g.connected {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   RTT: %s", g.client.RTT()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}

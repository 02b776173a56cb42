package scenes

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/shaft/client/fonts"
	"github.com/cbodonnell/shaft/client/input"
	"github.com/cbodonnell/shaft/pkg/client/network"
	"github.com/cbodonnell/shaft/pkg/game/types"
	"github.com/cbodonnell/shaft/pkg/log"
	"github.com/cbodonnell/shaft/pkg/messages"
	"github.com/cbodonnell/shaft/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// shaftOrigin is the top left corner of the plane view
	shaftOriginX = 40
	shaftOriginY = 60
	// shaftViewSize is the largest side of the plane view in pixels
	shaftViewSize = 480
	panelX        = 620

	sendTimeout = time.Second
	cueDuration = 1500 * time.Millisecond
)

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	gridColor       = color.RGBA{R: 0x30, G: 0x30, B: 0x40, A: 0xff}
	pieceColor      = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xc0}
	hintColor       = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	bonusColor      = color.RGBA{R: 0xff, G: 0x60, B: 0x30, A: 0xff}

	// depthColors tint locked elements by plane, floor first
	depthColors = []color.RGBA{
		{R: 0x2a, G: 0x4d, B: 0xd0, A: 0xff},
		{R: 0x2a, G: 0xa0, B: 0xd0, A: 0xff},
		{R: 0x2a, G: 0xd0, B: 0x90, A: 0xff},
		{R: 0x60, G: 0xd0, B: 0x2a, A: 0xff},
		{R: 0xc0, G: 0xd0, B: 0x2a, A: 0xff},
		{R: 0xd0, G: 0x90, B: 0x2a, A: 0xff},
		{R: 0xd0, G: 0x4a, B: 0x2a, A: 0xff},
		{R: 0xd0, G: 0x2a, B: 0x90, A: 0xff},
	}
)

// GameScene draws the shaft from above and sends the player's commands.
type GameScene struct {
	BaseScene

	client       *network.WSClient
	messageQueue queue.Queue
	onGameOver   func(*messages.ServerGameOver)

	update *messages.ServerShaftUpdate
	cue    string
	cueEnd time.Time
	err    string
	errEnd time.Time
}

var _ Scene = &GameScene{}

type NewGameSceneOptions struct {
	Client       *network.WSClient
	MessageQueue queue.Queue
	OnGameOver   func(*messages.ServerGameOver)
}

func NewGameScene(opts NewGameSceneOptions) *GameScene {
	return &GameScene{
		client:       opts.Client,
		messageQueue: opts.MessageQueue,
		onGameOver:   opts.OnGameOver,
	}
}

func (g *GameScene) Update() error {
	if err := g.processPendingServerMessages(); err != nil {
		return fmt.Errorf("failed to process pending server messages: %v", err)
	}

	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	return nil
}

func (g *GameScene) processPendingServerMessages() error {
	serverMessages, err := g.messageQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read server messages: %v", err)
	}

	for _, item := range serverMessages {
		message, ok := item.(*messages.Message)
		if !ok {
			log.Error("Failed to cast message to messages.Message")
			continue
		}

		switch message.Type {
		case messages.MessageTypeServerShaftUpdate:
			update, err := messages.DeserializeShaftUpdate(message.Payload)
			if err != nil {
				log.Error("Failed to deserialize shaft update: %v", err)
				continue
			}
			if g.update != nil && update.Timestamp < g.update.Timestamp {
				log.Trace("Dropping outdated shaft update")
				continue
			}
			g.update = update
		case messages.MessageTypeServerSound:
			sound := &messages.ServerSound{}
			if err := messages.DecodePayload(message, sound); err != nil {
				log.Error("Failed to decode sound: %v", err)
				continue
			}
			g.cue = sound.Sample
			g.cueEnd = time.Now().Add(cueDuration)
		case messages.MessageTypeServerNewBlock, messages.MessageTypeServerRotation:
			log.Trace("Received %s", message.Type)
		case messages.MessageTypeServerGameOver:
			gameOver := &messages.ServerGameOver{}
			if err := messages.DecodePayload(message, gameOver); err != nil {
				log.Error("Failed to decode game over: %v", err)
				continue
			}
			if g.onGameOver != nil {
				g.onGameOver(gameOver)
			}
		case messages.MessageTypeServerError:
			serverError := &messages.ServerError{}
			if err := messages.DecodePayload(message, serverError); err != nil {
				log.Error("Failed to decode server error: %v", err)
				continue
			}
			log.Warn("Server error: %s", serverError.Message)
			g.err = serverError.Message
			g.errEnd = time.Now().Add(3 * cueDuration)
		default:
			log.Warn("Unhandled message type: %s", message.Type)
		}
	}

	return nil
}

func (g *GameScene) handleInput() error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	for _, dir := range input.JustPressedMoves() {
		if err := g.client.Move(ctx, dir); err != nil {
			return err
		}
	}
	for _, rot := range input.JustPressedRotations() {
		if err := g.client.Rotate(ctx, rot); err != nil {
			return err
		}
	}
	if g.update == nil {
		return nil
	}
	if input.IsPracticeJustPressed() {
		if err := g.client.SetPractice(ctx, !g.update.Practice); err != nil {
			return err
		}
	}
	if input.IsPauseJustPressed() {
		if err := g.client.Pause(ctx, !g.update.Paused); err != nil {
			return err
		}
	}
	return nil
}

func (g *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.update == nil {
		drawCenteredLines(screen, fonts.MPlusNormalFont, color.White, "WAITING FOR THE SERVER")
		return
	}

	u := g.update
	cell := float32(shaftViewSize / max(u.Width, u.Height))
	g.drawShaft(screen, u, cell)
	g.drawPlaneCounts(screen, u, cell)
	g.drawPanel(screen, u)
}

func cellRect(p types.Point3, cell float32) (float32, float32) {
	return shaftOriginX + float32(p.X)*cell, shaftOriginY + float32(p.Y)*cell
}

// topmost keeps the highest element of every column, which is what a view
// from above shows.
func topmost(points []types.Point3) map[[2]int]types.Point3 {
	top := make(map[[2]int]types.Point3, len(points))
	for _, p := range points {
		k := [2]int{p.X, p.Y}
		if cur, ok := top[k]; !ok || p.Z > cur.Z {
			top[k] = p
		}
	}
	return top
}

func (g *GameScene) drawShaft(screen *ebiten.Image, u *messages.ServerShaftUpdate, cell float32) {
	for y := 0; y < u.Height; y++ {
		for x := 0; x < u.Width; x++ {
			px, py := cellRect(types.Point3{X: x, Y: y}, cell)
			vector.StrokeRect(screen, px, py, cell, cell, 1, gridColor, false)
		}
	}

	for _, p := range topmost(u.Locked) {
		px, py := cellRect(p, cell)
		clr := depthColors[p.Z%len(depthColors)]
		vector.DrawFilledRect(screen, px+1, py+1, cell-2, cell-2, clr, false)
	}

	for _, p := range topmost(u.Hint) {
		px, py := cellRect(p, cell)
		vector.StrokeRect(screen, px+3, py+3, cell-6, cell-6, 2, hintColor, false)
	}

	for _, p := range topmost(u.Elements) {
		px, py := cellRect(p, cell)
		// the higher the element the larger it is drawn
		inset := cell / 4 * float32(u.Depth-1-p.Z) / float32(max(u.Depth-1, 1))
		vector.DrawFilledRect(screen, px+inset, py+inset, cell-2*inset, cell-2*inset, pieceColor, false)
	}
}

func (g *GameScene) drawPlaneCounts(screen *ebiten.Image, u *messages.ServerShaftUpdate, cell float32) {
	x := float32(shaftOriginX) + float32(u.Width)*cell + 16
	height := float32(u.Height) * cell
	planeHeight := height / float32(max(u.Depth, 1))
	planeSize := float32(u.Width * u.Height)
	for z, count := range u.PlaneCounts {
		y := shaftOriginY + height - float32(z+1)*planeHeight
		vector.StrokeRect(screen, x, y, 24, planeHeight, 1, gridColor, false)
		if count > 0 {
			fill := 24 * float32(count) / planeSize
			vector.DrawFilledRect(screen, x, y+1, fill, planeHeight-2, depthColors[z%len(depthColors)], false)
		}
	}
}

func (g *GameScene) drawPanel(screen *ebiten.Image, u *messages.ServerShaftUpdate) {
	lines := []string{
		fmt.Sprintf("Score  %d", u.Score),
		fmt.Sprintf("High   %d", u.HighScore),
		fmt.Sprintf("Level  %d", u.Level),
		fmt.Sprintf("Cubes  %d", u.ElementCount),
		fmt.Sprintf("Time   %s", time.Duration(u.SecondsPlayed*float32(time.Second)).Truncate(time.Second)),
	}
	y := shaftOriginY + 20
	for _, line := range lines {
		text.Draw(screen, line, fonts.TTFNormalFont, panelX, y, color.White)
		y += 28
	}

	if u.BonusSecondsLeft > 0 {
		text.Draw(screen, "BONUS x2", fonts.TTFNormalFont, panelX, y, bonusColor)
		y += 8
		w := 140 * u.BonusSecondsLeft / max(u.BonusDuration, 1)
		vector.DrawFilledRect(screen, panelX, float32(y), w, 6, bonusColor, false)
		y += 20
	}
	if u.Practice {
		text.Draw(screen, "PRACTICE", fonts.TTFNormalFont, panelX, y, highlight)
		y += 28
	}
	if u.Paused {
		text.Draw(screen, "PAUSED", fonts.TTFNormalFont, panelX, y, highlight)
		y += 28
	}
	if u.FreeFall {
		text.Draw(screen, "DROP", fonts.TTFSmallFont, panelX, y, color.Gray{Y: 0xa0})
		y += 20
	}

	// next piece, seen from above
	y += 20
	text.Draw(screen, "Next", fonts.TTFSmallFont, panelX, y, color.Gray{Y: 0xa0})
	const nextCell = 16
	for _, p := range topmost(u.Next) {
		px := float32(panelX + 40 + p.X*nextCell)
		py := float32(y + 20 + p.Y*nextCell)
		vector.DrawFilledRect(screen, px, py, nextCell-2, nextCell-2, pieceColor, false)
	}

	now := time.Now()
	if g.cue != "" && now.Before(g.cueEnd) {
		text.Draw(screen, g.cue, fonts.TTFSmallFont, panelX, shaftOriginY+shaftViewSize, color.Gray{Y: 0x80})
	}
	if g.err != "" && now.Before(g.errEnd) {
		text.Draw(screen, g.err, fonts.TTFSmallFont, shaftOriginX, shaftOriginY-20, bonusColor)
	}
	text.Draw(screen, "Arrows move  Space drop  QAWSED rotate  P practice  Esc pause", fonts.TTFSmallFont, shaftOriginX, shaftOriginY+shaftViewSize+30, color.Gray{Y: 0x80})
}

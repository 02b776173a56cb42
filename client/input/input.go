package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Moves maps keys to the directions sent to the server. Space releases the
// piece into free fall.
var Moves = map[ebiten.Key]string{
	ebiten.KeyLeft:  "left",
	ebiten.KeyRight: "right",
	ebiten.KeyUp:    "up",
	ebiten.KeyDown:  "down",
	ebiten.KeySpace: "in",
}

// Rotations maps keys to rotation names, two opposite turns per axis.
var Rotations = map[ebiten.Key]string{
	ebiten.KeyQ: "q",
	ebiten.KeyA: "a",
	ebiten.KeyW: "w",
	ebiten.KeyS: "s",
	ebiten.KeyE: "e",
	ebiten.KeyD: "d",
}

// JustPressedMoves returns the directions of the move keys pressed this frame.
func JustPressedMoves() []string {
	var out []string
	for key, dir := range Moves {
		if inpututil.IsKeyJustPressed(key) {
			out = append(out, dir)
		}
	}
	return out
}

// JustPressedRotations returns the rotations of the keys pressed this frame.
func JustPressedRotations() []string {
	var out []string
	for key, rot := range Rotations {
		if inpututil.IsKeyJustPressed(key) {
			out = append(out, rot)
		}
	}
	return out
}

func IsNewGameJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsPracticeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func IsPauseJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	return len(touchIDs) > 0
}

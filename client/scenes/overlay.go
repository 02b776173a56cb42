package scenes

import (
	"image/color"

	"github.com/cbodonnell/shaft/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextOverlayScene shows a message and nothing else.
type TextOverlayScene struct {
	BaseScene

	lines []string
}

var _ Scene = &TextOverlayScene{}

func NewTextOverlayScene(lines ...string) *TextOverlayScene {
	return &TextOverlayScene{lines: lines}
}

func NewErrorScene(msg string) *TextOverlayScene {
	return NewTextOverlayScene(upper(msg), "Press Enter to reconnect")
}

func (s *TextOverlayScene) Draw(screen *ebiten.Image) {
	drawCenteredLines(screen, fonts.MPlusNormalFont, color.White, s.lines...)
}

package scenes

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

type Scene interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// BaseScene does nothing. Scenes embed it for the methods they don't need.
type BaseScene struct{}

func (s *BaseScene) Init() error {
	return nil
}

func (s *BaseScene) Destroy() error {
	return nil
}

func (s *BaseScene) Update() error {
	return nil
}

// drawCenteredLines draws lines centered on the screen, one below the other.
func drawCenteredLines(screen *ebiten.Image, f font.Face, clr color.Color, lines ...string) {
	lineHeight := f.Metrics().Height.Ceil()
	top := screen.Bounds().Dy()/2 - lineHeight*len(lines)/2
	for i, line := range lines {
		bounds, _ := font.BoundString(f, line)
		x := screen.Bounds().Dx()/2 - (bounds.Max.X-bounds.Min.X).Ceil()/2
		text.Draw(screen, line, f, x, top+lineHeight*(i+1), clr)
	}
}

func upper(s string) string {
	return strings.ToUpper(s)
}

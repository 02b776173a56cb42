// Package fonts holds the faces the client draws text with.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

var (
	// MPlusNormalFont is used for titles and overlays.
	MPlusNormalFont font.Face
	// TTFSmallFont and TTFNormalFont are used for the score panel.
	TTFSmallFont  font.Face
	TTFNormalFont font.Face
	// MonoFont keeps the leaderboard columns aligned.
	MonoFont font.Face
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

func truetypeFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

func loadFonts() error {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	MPlusNormalFont, err = opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    24,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create font face: %v", err)
	}

	faces := []struct {
		dst  *font.Face
		ttf  []byte
		size float64
	}{
		{&TTFSmallFont, goregular.TTF, 14},
		{&TTFNormalFont, goregular.TTF, 20},
		{&MonoFont, gomono.TTF, 18},
	}
	for _, f := range faces {
		face, err := truetypeFace(f.ttf, f.size)
		if err != nil {
			return err
		}
		*f.dst = face
	}
	return nil
}

// pkg/render/engo/assets.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-pinball/pkg/entity"
)

// AssetManager hands out the drawables and colors of playfield shapes.
// Everything is drawn from engo primitives so no texture is uploaded.
type AssetManager struct {
	drawables map[string]common.Drawable
	colors    map[string]color.Color

	flipperColors map[entity.Phase]color.Color
	background    color.Color
}

// Asset names
const (
	BallAsset    = "ball"
	BumperAsset  = "bumper"
	FlipperAsset = "flipper"
)

// NewAssetManager creates a new, empty asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		drawables:     make(map[string]common.Drawable),
		colors:        make(map[string]color.Color),
		flipperColors: make(map[entity.Phase]color.Color),
	}
}

// LoadAssets registers the shape drawables and the palette
func (am *AssetManager) LoadAssets() error {
	am.drawables[BallAsset] = common.Circle{}
	am.drawables[BumperAsset] = common.Circle{
		BorderWidth: 3,
		BorderColor: color.RGBA{255, 255, 255, 255},
	}
	am.drawables[FlipperAsset] = common.Rectangle{}

	am.colors[BallAsset] = color.RGBA{230, 230, 240, 255}
	am.colors[BumperAsset] = color.RGBA{220, 40, 140, 255}
	am.colors[FlipperAsset] = color.RGBA{60, 200, 90, 255}

	am.flipperColors[entity.Idle] = am.colors[FlipperAsset]
	am.flipperColors[entity.Rising] = color.RGBA{250, 220, 60, 255}
	am.flipperColors[entity.Falling] = color.RGBA{240, 150, 40, 255}

	am.background = color.RGBA{12, 16, 40, 255}
	return nil
}

// Drawable returns the drawable registered under name, or nil
func (am *AssetManager) Drawable(name string) common.Drawable {
	return am.drawables[name]
}

// Color returns the color registered under name, white when unknown
func (am *AssetManager) Color(name string) color.Color {
	if c, ok := am.colors[name]; ok {
		return c
	}
	return color.White
}

// FlipperColor returns the flipper color for an animation phase
func (am *AssetManager) FlipperColor(phase entity.Phase) color.Color {
	if c, ok := am.flipperColors[phase]; ok {
		return c
	}
	return am.Color(FlipperAsset)
}

// Background returns the window clear color
func (am *AssetManager) Background() color.Color {
	if am.background == nil {
		return color.Black
	}
	return am.background
}

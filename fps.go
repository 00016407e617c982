package sparkle

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows FPS, TPS and the tracked entity count in the top-left
// corner. The text is redrawn about every half second.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64 // ms since the text was last redrawn
	dirty      bool
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 is enough for "FPS: 60.0\nTPS: 60.0\nObjs: 12345"
	return &fpsOverlay{img: ebiten.NewImage(120, 48), dirty: true}
}

// update advances the redraw timer by dt milliseconds.
func (o *fpsOverlay) update(dt float64) {
	o.lastUpdate += dt
	if o.lastUpdate >= 500 {
		o.lastUpdate = 0
		o.dirty = true
	}
}

func (o *fpsOverlay) draw(screen *ebiten.Image, sys *System) {
	if o.dirty {
		o.dirty = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nObjs: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), sys.Len()))
	}
	screen.DrawImage(o.img, nil)
}

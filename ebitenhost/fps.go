package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay shows the actual FPS/TPS and the button render count in the
// top-left corner. Its image is only redrawn every fpsRefresh seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x48 fits three lines of debug text.
	return &fpsOverlay{img: ebiten.NewImage(100, 48), elapsed: fpsRefresh}
}

func (o *fpsOverlay) update(dt float64, renders int) {
	o.elapsed += dt
	if o.elapsed < fpsRefresh {
		return
	}
	o.elapsed = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nRenders: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), renders))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

package ebitenhost

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/heartbutton"
)

// Host runs a Button inside an ebiten game loop. It implements ebiten.Game,
// so it can be passed to ebiten.RunGame directly or embedded in a larger
// game that forwards Update, Draw and Layout.
//
// The button is drawn into an offscreen frame that is only re-rendered when
// the button has requested a redraw; any number of requests between two
// Draw calls costs one render.
type Host struct {
	button *heartbutton.Button

	// ClearColor fills the screen behind the button.
	ClearColor heartbutton.Color
	// ButtonSize forces the button edge length in pixels. Zero uses the
	// button's preferred size.
	ButtonSize int
	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string
	// ShowFPS draws frame rate and render count in the top-left corner.
	ShowFPS bool

	screenW, screenH int
	frame            *ebiten.Image
	frameW, frameH   int
	renders          int
	fps              *fpsOverlay

	lastX, lastY float64

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	testRunner      *TestRunner
	updateFunc      func() error

	reload chan FileConfig
}

// NewHost wraps b. The button is centered in the screen.
func NewHost(b *heartbutton.Button) *Host {
	return &Host{
		button:        b,
		ClearColor:    heartbutton.Color{R: 1, G: 1, B: 1, A: 1},
		ScreenshotDir: "screenshots",
		reload:        make(chan FileConfig, 1),
	}
}

// Button returns the hosted button.
func (h *Host) Button() *heartbutton.Button {
	return h.button
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}

// Renders reports how many times the button frame was actually rendered.
func (h *Host) Renders() int {
	return h.renders
}

// Update processes input and advances the button animation by one tick.
func (h *Host) Update() error {
	h.applyPendingConfig()
	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInput()
	dt := tickDuration()
	h.button.Update(dt)
	if h.ShowFPS {
		if h.fps == nil {
			h.fps = newFPSOverlay()
		}
		h.fps.update(dt.Seconds(), h.renders)
	}
	if h.updateFunc != nil {
		return h.updateFunc()
	}
	return nil
}

func tickDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// Draw composites the button frame onto screen, re-rendering it first if
// the button asked for a redraw or its size changed.
func (h *Host) Draw(screen *ebiten.Image) {
	bounds := h.button.Bounds()
	w, hh := int(math.Round(bounds.Width)), int(math.Round(bounds.Height))

	redraw := h.button.TakeRedraw()
	if w > 0 && hh > 0 {
		if h.frame == nil || w != h.frameW || hh != h.frameH {
			if h.frame != nil {
				h.frame.Deallocate()
			}
			h.frame = ebiten.NewImage(w, hh)
			h.frameW, h.frameH = w, hh
			redraw = true
		}
		if redraw {
			h.frame.Clear()
			h.button.Draw(&Canvas{Dst: h.frame}, float64(w), float64(hh))
			h.renders++
		}
	}

	screen.Fill(h.ClearColor.RGBA())
	if h.frame != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(bounds.X, bounds.Y)
		screen.DrawImage(h.frame, op)
	}
	if h.ShowFPS && h.fps != nil {
		h.fps.draw(screen)
	}

	h.flushScreenshots(screen)
}

// Layout accepts the outside size and re-centers the button in it.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.screenW || outsideHeight != h.screenH {
		h.screenW, h.screenH = outsideWidth, outsideHeight
		h.place()
	}
	return outsideWidth, outsideHeight
}

// place measures the button against the screen and centers it.
func (h *Host) place() {
	wSpec := heartbutton.AtMost(h.screenW)
	hSpec := heartbutton.AtMost(h.screenH)
	if h.ButtonSize > 0 {
		wSpec = heartbutton.Exactly(h.ButtonSize)
		hSpec = heartbutton.Exactly(h.ButtonSize)
	}
	w, hh := h.button.Measure(wSpec, hSpec)
	h.button.SetBounds(heartbutton.Rect{
		X:      math.Floor(float64(h.screenW-w) / 2),
		Y:      math.Floor(float64(h.screenH-hh) / 2),
		Width:  float64(w),
		Height: float64(hh),
	})
	h.button.Invalidate()
}

// processInput feeds one pointer sample per frame to the button. Injected
// events take precedence over real input.
func (h *Host) processInput() {
	if h.processInjected() {
		return
	}

	x, y, pressed := h.lastX, h.lastY, false
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		tx, ty := ebiten.TouchPosition(touches[0])
		x, y, pressed = float64(tx), float64(ty), true
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y, pressed = float64(mx), float64(my), true
	} else if !h.button.PointerDown() {
		mx, my := ebiten.CursorPosition()
		x, y = float64(mx), float64(my)
	}
	h.lastX, h.lastY = x, y
	h.button.HandlePointer(x, y, pressed)
}

// Package heartbutton is an animated heart toggle drawn from vector paths.
//
// The package holds the control itself: its checked state, the two-phase
// toggle animation, the artwork and the per-frame render pipeline. It does
// not own a window. Hosts feed it time, pointer input and a [Canvas] to draw
// on; ready-made hosts live in sub-packages:
//
//   - ebitenhost runs the button in an [Ebitengine] window and draws with
//     the ebiten vector package.
//   - raster draws frames offscreen with the [gg] software rasterizer, for
//     PNG snapshots and pixel tests.
//
// # Quick start
//
//	b := heartbutton.New()
//	b.SetOnCheckedChangeListener(func(checked bool) {
//		log.Printf("isChecked = %v", checked)
//	})
//	b.SetChecked(true, false)
//
//	if err := ebitenhost.Run(b, ebitenhost.RunConfig{
//		Title: "Heart", Width: 200, Height: 200,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement a loop yourself: call [Button.HandlePointer]
// with pointer input, [Button.Update] once per tick, and [Button.Draw] when
// [Button.TakeRedraw] reports a pending redraw.
//
// # Artwork
//
// All shapes are defined in a 31×31 logical box ([LogicalSize]) and scaled to
// the surface on every draw. Four layers are composited back to front: the
// heart body, its outline, a decorative circle and the tick glyph (a check
// mark when checked, a plus sign when unchecked).
//
// # Animation
//
// An animated toggle pops the new glyph in over 250 ms, then crossfades the
// heart color over 70 ms. Interaction is disabled until both phases end.
// Tweens come from [gween]; colors are blended with [go-colorful].
//
// A toggle issued while an animation is still running replaces it. Nothing
// carries over from the interrupted animation.
//
// # Threading
//
// Button is not safe for concurrent use. Every method, including Draw and
// Update, must run on the host loop goroutine.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
// [gween]: https://github.com/tanema/gween
// [go-colorful]: https://github.com/lucasb-eyer/go-colorful
package heartbutton

package heartbutton

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Phase is the animation controller state.
type Phase uint8

const (
	PhaseIdle  Phase = iota // resting, interaction enabled
	PhaseTick               // tick glyph popping in
	PhaseColor              // heart color crossfading
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTick:
		return "tick"
	case PhaseColor:
		return "color"
	default:
		return "unknown"
	}
}

// transition is one animated toggle. Every animated SetChecked builds a new
// one; nothing is shared between toggles, so a replaced transition simply
// stops being updated.
type transition struct {
	checked bool
	phase   Phase

	tick          *gween.Tween
	color         *gween.Tween
	colorDuration float32

	from, to Color
}

// newTransition starts the crossfade from the color currently shown, so a
// toggle that interrupts a crossfade continues from the blended color.
func newTransition(checked bool, cfg Config, from Color) *transition {
	return &transition{
		checked:       checked,
		phase:         PhaseTick,
		tick:          gween.New(0, 1, seconds(cfg.TickDuration()), ease.Linear),
		colorDuration: seconds(cfg.ColorDuration()),
		from:          from,
		to:            RestingColor(checked),
	}
}

// startColor begins the crossfade phase.
func (t *transition) startColor() {
	t.phase = PhaseColor
	t.color = gween.New(0, 1, t.colorDuration, ease.Linear)
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// Update advances the running animation by dt. Hosts call it once per tick
// from the same loop that draws. Each advance requests a redraw.
func (b *Button) Update(dt time.Duration) {
	t := b.transition
	if t == nil {
		return
	}
	step := seconds(dt)

	switch t.phase {
	case PhaseTick:
		v, finished := t.tick.Update(step)
		b.state.TickProgress = float64(v)
		if finished {
			b.state.TickProgress = 1
			t.startColor()
			Logger().Debug("heartbutton: phase", "from", PhaseTick, "to", PhaseColor, "checked", t.checked)
		}
		b.Invalidate()

	case PhaseColor:
		v, finished := t.color.Update(step)
		b.state.HeartColor = blend(t.from, t.to, float64(v))
		if finished {
			b.state.HeartColor = t.to
			b.finishTransition()
		}
		b.Invalidate()
	}
}

// Phase returns the current animation controller state.
func (b *Button) Phase() Phase {
	if b.transition == nil {
		return PhaseIdle
	}
	return b.transition.phase
}

// startTransition disables interaction and begins the tick phase.
func (b *Button) startTransition(checked bool) {
	b.transition = newTransition(checked, b.cfg, b.state.HeartColor)
	b.state.TickProgress = 0
	b.state.Animating = true
	b.setInteractive(false)
	Logger().Debug("heartbutton: phase", "from", PhaseIdle, "to", PhaseTick, "checked", checked)
}

// finishTransition returns to idle and re-enables interaction.
func (b *Button) finishTransition() {
	Logger().Debug("heartbutton: phase", "from", PhaseColor, "to", PhaseIdle, "checked", b.transition.checked)
	b.transition = nil
	b.state.TickProgress = 1
	b.state.Animating = false
	b.setInteractive(true)
}

// cancelTransition drops an in-flight transition. The caller sets the state
// that replaces it.
func (b *Button) cancelTransition() {
	if b.transition == nil {
		return
	}
	Logger().Debug("heartbutton: transition cancelled",
		"phase", b.transition.phase, "checked", b.transition.checked)
	b.transition = nil
	b.state.Animating = false
	b.setInteractive(true)
}

// blend interpolates RGB through go-colorful and alpha linearly.
func blend(from, to Color, t float64) Color {
	a := colorful.Color{R: from.R, G: from.G, B: from.B}
	c := a.BlendRgb(colorful.Color{R: to.R, G: to.G, B: to.B}, t).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: from.A + (to.A-from.A)*t}
}

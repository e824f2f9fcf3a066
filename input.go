package heartbutton

// pointerState tracks one press/release cycle.
type pointerState struct {
	down     bool
	pressHit bool // press landed inside the bounds
}

// SetBounds places the button in host coordinates for hit testing.
func (b *Button) SetBounds(r Rect) {
	b.bounds = r
}

// Bounds returns the hit-test rectangle in host coordinates.
func (b *Button) Bounds() Rect {
	return b.bounds
}

// HandlePointer runs the pointer state machine for one frame of input at
// host coordinates (x, y). A press and release both inside the bounds is a
// click. Releasing outside cancels it. Reports whether a click toggled the
// button.
func (b *Button) HandlePointer(x, y float64, pressed bool) bool {
	ps := &b.pointer
	inside := b.bounds.Contains(x, y)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.pressHit = inside
	case !pressed && ps.down:
		ps.down = false
		hit := ps.pressHit && inside
		ps.pressHit = false
		if hit {
			return b.Click()
		}
	}
	return false
}

// PointerDown reports whether a press is in progress.
func (b *Button) PointerDown() bool {
	return b.pointer.down
}

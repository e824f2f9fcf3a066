package heartbutton

import "testing"

func TestPointerClickInside(t *testing.T) {
	b := New()
	b.SetBounds(Rect{X: 100, Y: 100, Width: 31, Height: 31})

	if b.HandlePointer(110, 110, true) {
		t.Error("press alone should not click")
	}
	if !b.PointerDown() {
		t.Error("pointer should be down")
	}
	if !b.HandlePointer(112, 115, false) {
		t.Error("release inside should click")
	}
	if !b.Checked() || b.Phase() != PhaseTick {
		t.Errorf("checked=%v phase=%v after click", b.Checked(), b.Phase())
	}
}

func TestPointerReleaseOutsideCancels(t *testing.T) {
	b := New()
	b.HandlePointer(10, 10, true)
	if b.HandlePointer(300, 300, false) {
		t.Error("release outside should not click")
	}
	if b.Checked() {
		t.Error("state changed on a cancelled click")
	}
}

func TestPointerPressOutsideReleaseInside(t *testing.T) {
	b := New()
	b.HandlePointer(-5, -5, true)
	if b.HandlePointer(10, 10, false) {
		t.Error("press outside should not click")
	}
}

func TestPointerHeldDoesNotRepeat(t *testing.T) {
	b := New()
	b.HandlePointer(10, 10, true)
	b.HandlePointer(11, 10, true)
	b.HandlePointer(12, 10, true)
	b.HandlePointer(12, 10, false)
	b.HandlePointer(12, 10, false)
	if !b.Checked() {
		t.Fatal("expected one click")
	}
	if b.Phase() != PhaseTick {
		t.Errorf("Phase = %v, want tick from a single click", b.Phase())
	}
}

func TestPointerClickIgnoredWhileAnimating(t *testing.T) {
	b := New()
	b.HandlePointer(10, 10, true)
	b.HandlePointer(10, 10, false)
	b.HandlePointer(10, 10, true)
	if b.HandlePointer(10, 10, false) {
		t.Error("click during animation should be dropped")
	}
	if !b.Checked() {
		t.Error("second click toggled while disabled")
	}
}

func TestDefaultBoundsMatchPreferredSize(t *testing.T) {
	b := New(WithDensity(2))
	if b.Bounds() != (Rect{Width: 62, Height: 62}) {
		t.Errorf("bounds = %+v, want 62x62 at origin", b.Bounds())
	}
}

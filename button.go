package heartbutton

// ButtonState is a snapshot of everything the render pipeline reads.
type ButtonState struct {
	Checked bool
	// Animate is the flag passed to the most recent SetChecked call. While
	// set, the tick glyph is scaled by TickProgress.
	Animate      bool
	Animating    bool
	TickProgress float64 // 0..1, 1 at rest
	HeartColor   Color
}

// Invalidator receives redraw requests. Requests are idempotent; hosts are
// expected to coalesce several requests within one frame into one redraw.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to Invalidator.
type InvalidatorFunc func()

// Invalidate calls f.
func (f InvalidatorFunc) Invalidate() { f() }

// Button is a toggleable heart control. All methods must be called from the
// single goroutine that runs the host loop.
type Button struct {
	cfg   Config
	state ButtonState

	enabled   bool
	clickable bool

	transition *transition

	// listener is a single slot; setting it drops the previous observer.
	listener    func(checked bool)
	invalidator Invalidator
	redraw      bool

	bounds  Rect
	pointer pointerState

	commands []RenderCommand
	debug    bool
}

// New creates an unchecked (or WithChecked) button at rest.
func New(opts ...Option) *Button {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg.Validate() != nil {
		o.cfg = DefaultConfig()
	}

	b := &Button{
		cfg:         o.cfg,
		enabled:     true,
		clickable:   true,
		listener:    o.listener,
		invalidator: o.invalidator,
		debug:       o.debug,
		commands:    make([]RenderCommand, 0, 4),
	}
	b.state = ButtonState{
		Checked:      o.checked,
		TickProgress: 1,
		HeartColor:   RestingColor(o.checked),
	}
	size := b.PreferredSize()
	b.bounds = Rect{Width: float64(size), Height: float64(size)}
	b.redraw = true
	return b
}

// SetChecked changes the checked state. The listener is notified first, and
// only when the value differs from the stored one, so it observes the
// intended value while Checked still reports the old one.
//
// With animate the tick pops in, then the heart color crossfades; interaction
// is disabled until both finish. Without animate the resting appearance is
// applied immediately. A call made while a transition is running replaces
// it: the newest call always wins.
func (b *Button) SetChecked(checked, animate bool) {
	changed := checked != b.state.Checked
	if changed && b.listener != nil {
		Logger().Debug("heartbutton: notify listener", "checked", checked)
		b.listener(checked)
	}

	b.state.Checked = checked
	b.state.Animate = animate

	switch {
	case !animate:
		b.cancelTransition()
		b.state.TickProgress = 1
		b.state.HeartColor = RestingColor(checked)
	case changed:
		b.cancelTransition()
		b.startTransition(checked)
	}
	b.Invalidate()
}

// Checked reports the stored checked state.
func (b *Button) Checked() bool {
	return b.state.Checked
}

// State returns a copy of the render state.
func (b *Button) State() ButtonState {
	return b.state
}

// Config returns the button's configuration.
func (b *Button) Config() Config {
	return b.cfg
}

// SetConfig swaps the configuration. Running transitions keep the durations
// they started with. Invalid configs are ignored and reported.
func (b *Button) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.cfg = cfg
	b.Invalidate()
	return nil
}

// SetOnCheckedChangeListener installs the checked-change observer. There is
// one slot: the previous listener is dropped. Nil removes it.
func (b *Button) SetOnCheckedChangeListener(fn func(checked bool)) {
	b.listener = fn
}

// Click toggles the state with animation, as a tap on the control does.
// Returns false when the click was dropped because interaction is disabled.
func (b *Button) Click() bool {
	if !b.enabled || !b.clickable {
		return false
	}
	b.SetChecked(!b.state.Checked, true)
	return true
}

// Enabled reports whether the control accepts input.
func (b *Button) Enabled() bool {
	return b.enabled
}

// Clickable reports whether clicks toggle the control.
func (b *Button) Clickable() bool {
	return b.clickable
}

func (b *Button) setInteractive(on bool) {
	b.enabled = on
	b.clickable = on
}

// SetInvalidator installs the host redraw hook.
func (b *Button) SetInvalidator(inv Invalidator) {
	b.invalidator = inv
}

// Invalidate requests a redraw. Requests made before the host next calls
// TakeRedraw collapse into one.
func (b *Button) Invalidate() {
	b.redraw = true
	if b.invalidator != nil {
		b.invalidator.Invalidate()
	}
}

// TakeRedraw reports whether a redraw was requested since the last call and
// clears the request.
func (b *Button) TakeRedraw() bool {
	r := b.redraw
	b.redraw = false
	return r
}

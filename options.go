package heartbutton

// Option configures a Button during creation.
//
//	b := heartbutton.New(
//		heartbutton.WithDensity(2),
//		heartbutton.WithChecked(true),
//	)
type Option func(*options)

type options struct {
	cfg         Config
	checked     bool
	invalidator Invalidator
	listener    func(bool)
	debug       bool
}

func defaultOptions() options {
	return options{cfg: DefaultConfig()}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithDensity sets the device density. Non-positive values are ignored.
func WithDensity(density float64) Option {
	return func(o *options) {
		if density > 0 {
			o.cfg.Density = density
		}
	}
}

// WithChecked sets the initial state. No listener is notified.
func WithChecked(checked bool) Option {
	return func(o *options) {
		o.checked = checked
	}
}

// WithInvalidator sets the host redraw hook.
func WithInvalidator(inv Invalidator) Option {
	return func(o *options) {
		o.invalidator = inv
	}
}

// WithListener sets the checked-change listener.
func WithListener(fn func(checked bool)) Option {
	return func(o *options) {
		o.listener = fn
	}
}

// WithDebug enables debug mode from the start.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

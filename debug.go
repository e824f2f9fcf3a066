package heartbutton

import "time"

// debugStats holds per-frame timing. Only populated in debug mode.
type debugStats struct {
	buildTime     time.Duration
	submitTime    time.Duration
	commandCount  int
	width, height float64
}

// debugLog reports frame stats at debug level.
func (b *Button) debugLog(stats debugStats) {
	if !b.debug {
		return
	}
	Logger().Debug("heartbutton: frame",
		"build", stats.buildTime,
		"submit", stats.submitTime,
		"total", stats.buildTime+stats.submitTime,
		"commands", stats.commandCount,
		"width", stats.width,
		"height", stats.height,
		"phase", b.Phase(),
	)
}

// SetDebugMode enables per-frame timing records.
func (b *Button) SetDebugMode(enabled bool) {
	b.debug = enabled
}

package ebitenhost

// syntheticPointerEvent is a queued pointer sample in screen coordinates.
// One event is consumed per frame, replacing real input for that frame.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given screen coordinates.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectButtonClick clicks the center of the hosted button.
func (h *Host) InjectButtonClick() {
	h.InjectClick(h.button.Bounds().Center())
}

// processInjected pops one queued event and feeds it to the button.
// Returns true if an event was consumed.
func (h *Host) processInjected() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.lastX, h.lastY = evt.x, evt.y
	h.button.HandlePointer(evt.x, evt.y, evt.pressed)
	return true
}

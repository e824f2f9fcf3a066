package heartbutton

// Paint describes how a path is filled or stroked.
type Paint struct {
	Color       Color
	StrokeWidth float64 // device pixels; ignored for fills
	Cap         LineCap
	AntiAlias   bool
}

// Canvas is a drawing surface supplied by the host. Paths arrive already in
// device coordinates. Implementations exist for ebiten (ebitenhost) and for
// the gg software rasterizer (raster).
type Canvas interface {
	FillPath(p Path, paint Paint)
	StrokePath(p Path, paint Paint)
}

// DrawCall is one call received by a Recorder. The canvas never sees which
// layer a path belongs to, so only the call kind, path and paint are kept.
type DrawCall struct {
	Type  CommandType
	Path  Path
	Paint Paint
}

// Recorder is a Canvas that keeps every call it receives. Useful for
// inspecting frames without a GPU.
type Recorder struct {
	Calls []DrawCall
}

// FillPath records a fill.
func (r *Recorder) FillPath(p Path, paint Paint) {
	r.Calls = append(r.Calls, DrawCall{Type: CommandFill, Path: p, Paint: paint})
}

// StrokePath records a stroke.
func (r *Recorder) StrokePath(p Path, paint Paint) {
	r.Calls = append(r.Calls, DrawCall{Type: CommandStroke, Path: p, Paint: paint})
}

// Reset drops recorded calls, keeping capacity.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

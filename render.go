package heartbutton

import "time"

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandFill   CommandType = iota // fill the path interior
	CommandStroke                    // stroke the path outline
)

// Layer names the four shapes composited per frame, back to front.
type Layer uint8

const (
	LayerHeart   Layer = iota // heart body, current heart color
	LayerOutline              // heart outline stroke
	LayerOval                 // decorative circle
	LayerTick                 // check mark or plus sign
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerHeart:
		return "heart"
	case LayerOutline:
		return "outline"
	case LayerOval:
		return "oval"
	case LayerTick:
		return "tick"
	default:
		return "unknown"
	}
}

// RenderCommand is a single draw instruction produced for a frame.
type RenderCommand struct {
	Type  CommandType
	Layer Layer
	Path  Path
	Paint Paint
}

// Stroke widths in density-independent units.
const (
	outlineWidth       = 0.9
	tickCheckedWidth   = 3.0
	tickUncheckedWidth = 1.0
)

// Draw renders the current state onto c for a surface of width × height
// pixels. The scale transform is recomputed on every call so resizes between
// frames take effect immediately. Nothing is drawn for an empty surface.
func (b *Button) Draw(c Canvas, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}

	var stats debugStats
	var t0 time.Time
	if b.debug {
		t0 = time.Now()
	}

	b.buildFrame(width, height)

	if b.debug {
		stats.buildTime = time.Since(t0)
		t0 = time.Now()
	}

	for i := range b.commands {
		cmd := &b.commands[i]
		switch cmd.Type {
		case CommandFill:
			c.FillPath(cmd.Path, cmd.Paint)
		case CommandStroke:
			c.StrokePath(cmd.Path, cmd.Paint)
		}
	}

	if b.debug {
		stats.submitTime = time.Since(t0)
		stats.commandCount = len(b.commands)
		stats.width, stats.height = width, height
		b.debugLog(stats)
	}
}

// buildFrame fills the button's command buffer for one frame. The buffer is
// owned by the button and reused between frames.
func (b *Button) buildFrame(width, height float64) {
	b.commands = b.commands[:0]
	m := ScaleTransform(width, height)
	density := b.cfg.Density

	b.commands = append(b.commands,
		RenderCommand{
			Type:  CommandFill,
			Layer: LayerHeart,
			Path:  HeartPath().Transform(m),
			Paint: Paint{Color: b.state.HeartColor, AntiAlias: true},
		},
		RenderCommand{
			Type:  CommandStroke,
			Layer: LayerOutline,
			Path:  HeartStrokePath().Transform(m),
			Paint: Paint{Color: ColorOutline, StrokeWidth: outlineWidth * density, AntiAlias: true},
		},
		RenderCommand{
			Type:  CommandFill,
			Layer: LayerOval,
			Path:  OvalPath().Transform(m),
			Paint: Paint{Color: ColorOval, AntiAlias: true},
		},
		b.tickCommand(m),
	)
}

// tickCommand builds the glyph layer. While the animate flag is set the glyph
// is scaled about its own bounding-box center by the tick progress.
func (b *Button) tickCommand(m Affine) RenderCommand {
	tick := TickPath(b.state.Checked).Transform(m)
	if b.state.Animate {
		cx, cy := tick.Bounds().Center()
		s := b.state.TickProgress
		tick = tick.Transform(ScaleAbout(s, s, cx, cy))
	}

	cmd := RenderCommand{
		Layer: LayerTick,
		Path:  tick,
		Paint: Paint{Color: ColorOutline, Cap: CapRound, AntiAlias: true},
	}
	if b.state.Checked {
		cmd.Type = CommandStroke
		cmd.Paint.StrokeWidth = tickCheckedWidth * b.cfg.Density
	} else {
		cmd.Type = CommandFill
		cmd.Paint.StrokeWidth = tickUncheckedWidth * b.cfg.Density
	}
	return cmd
}

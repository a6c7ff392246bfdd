package animated

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/palette"
	"github.com/iburimskiy/tokenlistooor-pattern/internal/pattern"
)

// State is the lifecycle stage of a Renderer.
type State int

const (
	Initializing State = iota
	Running
	Resizing
	Unsupported
	Unmounted
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Resizing:
		return "resizing"
	case Unsupported:
		return "unsupported"
	case Unmounted:
		return "unmounted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Glyph is a glyph positioned on the foreground canvas, (X, Y) being its
// top-left corner.
type Glyph struct {
	X, Y  float64
	Glyph pattern.Glyph
}

// Renderer owns one mounted background: its canvases, glyph layout and
// smoothed pointer. It is not safe for concurrent use; every method and every
// host callback must run on the host's event loop.
type Renderer struct {
	host Host
	opts Options
	rnd  pattern.Source

	state    State
	reason   error
	fallback func() *pattern.Static
	static   *pattern.Static

	bg, fg  Canvas
	sched   Scheduler
	frame   FrameID
	pending bool

	width, height, dpr float64
	cellW, cellH       float64
	glyphs             []Glyph

	follow   Follower
	throttle throttle

	stopResize  func()
	stopPointer func()
}

// Mount probes host and starts rendering into it. When the host cannot
// provide surfaces or frames the renderer settles in Unsupported and exposes
// the static pattern from fallback instead; Mount itself never fails.
func Mount(host Host, opts Options, fallback func() *pattern.Static) *Renderer {
	r := &Renderer{
		host:     host,
		opts:     opts,
		rnd:      pattern.NewSource(opts.Seed),
		state:    Initializing,
		fallback: fallback,
		follow:   Follower{Easing: opts.Easing},
		throttle: throttle{interval: time.Duration(opts.Throttle)},
	}

	caps := host.Probe()
	if !caps.Surface || !caps.Frames {
		r.degrade(ErrCapabilityUnavailable)
		return r
	}
	sched := host.Scheduler()
	if sched == nil {
		r.degrade(ErrCapabilityUnavailable)
		return r
	}
	bg, err := host.NewCanvas(Background)
	if err != nil {
		r.degrade(err)
		return r
	}
	fg, err := host.NewCanvas(Foreground)
	if err != nil {
		r.degrade(err)
		return r
	}
	r.bg, r.fg, r.sched = bg, fg, sched

	_, _, w, h := host.Bounds()
	r.follow.Reset(Point{X: w / 2, Y: h / 2})
	r.initialize()

	r.stopResize = host.ObserveResize(r.resize)
	r.stopPointer = host.ObservePointer(r.pointer)
	r.state = Running
	r.schedule()
	return r
}

func (r *Renderer) degrade(err error) {
	if !errors.Is(err, ErrCapabilityUnavailable) && !errors.Is(err, ErrContextUnavailable) {
		err = fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	}
	r.state = Unsupported
	r.reason = err
	if r.fallback != nil {
		r.static = r.fallback()
	}
}

// initialize sizes both canvases to the container, paints the background
// layer and lays the glyphs out again.
func (r *Renderer) initialize() {
	_, _, w, h := r.host.Bounds()
	dpr := r.host.DevicePixelRatio()
	if dpr <= 0 {
		dpr = 1
	}
	r.width, r.height, r.dpr = w, h, dpr
	pw, ph := int(w*dpr), int(h*dpr)

	r.bg.Resize(pw, ph)
	r.bg.Scale(dpr)
	r.bg.FillRect(0, 0, w, h, r.opts.Colors.Background)

	r.fg.Resize(pw, ph)
	r.fg.Scale(dpr)
	r.fg.SetFontSize(r.opts.FontSize)

	r.cellW = math.Ceil(r.fg.MeasureText(pattern.Primary.String()) * r.opts.CellScale)
	r.cellH = math.Ceil(r.opts.FontSize * r.opts.CellScale)
	grid := pattern.GridFor(w, h, r.cellW, r.cellH)

	cells := pattern.Place(grid, r.opts.Policy, r.rnd)
	r.glyphs = r.glyphs[:0]
	for _, c := range cells {
		r.glyphs = append(r.glyphs, Glyph{
			X:     float64(c.Col) * r.cellW,
			Y:     float64(c.Row)*r.cellH + r.opts.FontSize,
			Glyph: c.Glyph,
		})
	}
}

func (r *Renderer) resize() {
	if r.state != Running {
		return
	}
	r.state = Resizing
	r.initialize()
	r.state = Running
}

func (r *Renderer) pointer(x, y float64) {
	if r.state != Running {
		return
	}
	if !r.throttle.allow(r.host.Now()) {
		return
	}
	bx, by, _, _ := r.host.Bounds()
	r.follow.Target = Point{X: x - bx, Y: y - by}
}

func (r *Renderer) schedule() {
	r.frame = r.sched.RequestFrame(r.tick)
	r.pending = true
}

func (r *Renderer) tick() {
	r.pending = false
	if r.state != Running {
		return
	}
	r.draw(r.follow.Step())
	r.schedule()
}

func (r *Renderer) draw(at Point) {
	r.fg.Scale(r.dpr)
	r.fg.Clear()

	radius := r.opts.GlowRadius
	r.fg.FillRadialGlow(at.X, at.Y, radius, r.opts.Colors.Glow, r.opts.GlowStops)

	base, hot := r.opts.Colors.Base, r.opts.Colors.Highlight
	for _, g := range r.glyphs {
		c, alpha := base, r.opts.Ramp.Idle
		if d := math.Hypot(g.X-at.X, g.Y-at.Y); d < radius {
			e := Smoothstep(1 - d/radius)
			c = palette.Lerp(base, hot, e)
			alpha = r.opts.Ramp.Opacity(e)
		}
		r.fg.FillText(g.Glyph.String(), g.X, g.Y, c, alpha)
	}
}

// Unmount stops the frame loop and detaches from the host. It is safe to
// call more than once.
func (r *Renderer) Unmount() {
	if r.state == Unmounted {
		return
	}
	if r.pending {
		r.sched.CancelFrame(r.frame)
		r.pending = false
	}
	if r.stopResize != nil {
		r.stopResize()
		r.stopResize = nil
	}
	if r.stopPointer != nil {
		r.stopPointer()
		r.stopPointer = nil
	}
	r.state = Unmounted
}

func (r *Renderer) State() State { return r.state }

// Reason is why the renderer is Unsupported, or nil.
func (r *Renderer) Reason() error { return r.reason }

// Fallback is the static pattern shown in place of the animation. It is nil
// unless the renderer degraded.
func (r *Renderer) Fallback() *pattern.Static { return r.static }

// Glyphs returns a copy of the current layout.
func (r *Renderer) Glyphs() []Glyph {
	return append([]Glyph(nil), r.glyphs...)
}

// Cell is the size of one grid cell in logical units.
func (r *Renderer) Cell() (w, h float64) { return r.cellW, r.cellH }

// Position is the smoothed pointer position.
func (r *Renderer) Position() Point { return r.follow.Pos }

// Target is the last accepted pointer position.
func (r *Renderer) Target() Point { return r.follow.Target }

// Package animated renders the glyph background on a live surface, shading
// glyphs around a glow that follows the pointer.
//
// The renderer knows nothing about windows or GPUs. It runs against a Host,
// which supplies drawing surfaces, a frame scheduler and input notifications.
package animated

import (
	"errors"
	"time"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/palette"
)

var (
	// ErrCapabilityUnavailable means the host lacks drawing surfaces or a
	// frame scheduler.
	ErrCapabilityUnavailable = errors.New("animated: drawing capability unavailable")
	// ErrContextUnavailable means a surface exists but cannot be drawn on.
	ErrContextUnavailable = errors.New("animated: drawing context unavailable")
)

// Capabilities is what a host reports when probed.
type Capabilities struct {
	Surface bool
	Frames  bool
}

// Layer identifies one of the two stacked canvases.
type Layer int

const (
	// Background is painted once per (re)initialization.
	Background Layer = iota
	// Foreground is repainted every frame.
	Foreground
)

func (l Layer) String() string {
	if l == Background {
		return "background"
	}
	return "foreground"
}

// GlowStop is one stop of the radial glow: the glow color at opacity Alpha,
// Offset in [0,1] along the radius.
type GlowStop struct {
	Offset float64 `json:"offset"`
	Alpha  float64 `json:"alpha"`
}

// Canvas is a drawing surface. Coordinates passed to the fill methods are
// scaled by the factor last given to Scale.
type Canvas interface {
	// Resize sets the backing size in device pixels, clearing the canvas and
	// resetting its scale to 1.
	Resize(width, height int)
	// Scale resets the transform and scales all later drawing by factor.
	Scale(factor float64)
	Clear()
	FillRect(x, y, w, h float64, c palette.Color)
	FillRadialGlow(cx, cy, radius float64, c palette.Color, stops []GlowStop)
	SetFontSize(size float64)
	MeasureText(s string) float64
	// FillText draws s with its top-left corner at (x, y).
	FillText(s string, x, y float64, c palette.Color, alpha float64)
}

// FrameID identifies a requested frame.
type FrameID uint64

// Scheduler runs callbacks on the host's display refresh.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Host is the environment a Renderer mounts into.
type Host interface {
	Probe() Capabilities
	NewCanvas(layer Layer) (Canvas, error)
	Scheduler() Scheduler
	// Bounds is the container's position and size in logical units.
	Bounds() (x, y, width, height float64)
	DevicePixelRatio() float64
	// ObserveResize calls fn after the container changes size. The returned
	// func stops observing.
	ObserveResize(fn func()) (stop func())
	// ObservePointer calls fn with the pointer position in host coordinates.
	ObservePointer(fn func(x, y float64)) (stop func())
	Now() time.Time
}

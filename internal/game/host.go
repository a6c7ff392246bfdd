package game

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/animated"
)

// Host runs an animated.Renderer inside the ebiten window. The whole window
// is the container; ebiten calls Layout, Update and Draw on one goroutine, so
// Host needs no locking.
type Host struct {
	font    *text.GoTextFaceSource
	fontErr error
	animate bool

	frames   frameQueue
	canvases [2]*Canvas

	width, height float64
	dpr           float64
	resized       bool

	cursorX, cursorY int
	cursorSeen       bool

	resizeObs  observers[func()]
	pointerObs observers[func(x, y float64)]
}

// NewHost prepares the Go Mono face the canvases draw with. animate false
// makes the host report no frame scheduler, which forces the static fallback.
func NewHost(animate bool) *Host {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	return &Host{
		font:    src,
		fontErr: err,
		animate: animate,
		dpr:     1,
	}
}

func (h *Host) Probe() animated.Capabilities {
	return animated.Capabilities{
		Surface: h.fontErr == nil,
		Frames:  h.animate,
	}
}

func (h *Host) NewCanvas(layer animated.Layer) (animated.Canvas, error) {
	if h.fontErr != nil {
		return nil, fmt.Errorf("%w: %s canvas: %v", animated.ErrContextUnavailable, layer, h.fontErr)
	}
	c := newCanvas(h.font)
	h.canvases[layer] = c
	return c, nil
}

func (h *Host) Scheduler() animated.Scheduler { return &h.frames }

func (h *Host) Bounds() (x, y, width, height float64) { return 0, 0, h.width, h.height }

func (h *Host) DevicePixelRatio() float64 { return h.dpr }

func (h *Host) ObserveResize(fn func()) func() { return h.resizeObs.add(fn) }

func (h *Host) ObservePointer(fn func(x, y float64)) func() { return h.pointerObs.add(fn) }

func (h *Host) Now() time.Time { return time.Now() }

// layout records the window size and returns the screen size in device
// pixels so glyphs stay crisp on high-density displays.
func (h *Host) layout(outsideWidth, outsideHeight int) (int, int) {
	return h.resize(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
}

// resize stores the logical size and scale factor. A change latches a resize
// notification, except for the first size seen, which is the initial layout.
func (h *Host) resize(outsideWidth, outsideHeight int, dpr float64) (int, int) {
	if dpr <= 0 {
		dpr = 1
	}
	w, ht := float64(outsideWidth), float64(outsideHeight)
	if w != h.width || ht != h.height || dpr != h.dpr {
		h.resized = h.width > 0
		h.width, h.height, h.dpr = w, ht, dpr
	}
	return int(w * dpr), int(ht * dpr)
}

// poll delivers the resize and pointer notifications gathered since the last
// tick.
func (h *Host) poll() {
	h.dispatch(ebiten.CursorPosition())
}

// dispatch fires a latched resize, then reports the cursor in logical pixels
// if it moved. x and y are device pixels.
func (h *Host) dispatch(x, y int) {
	if h.resized {
		h.resized = false
		for _, fn := range h.resizeObs.list() {
			fn()
		}
	}

	if h.cursorSeen && x == h.cursorX && y == h.cursorY {
		return
	}
	h.cursorX, h.cursorY, h.cursorSeen = x, y, true
	lx, ly := float64(x)/h.dpr, float64(y)/h.dpr
	for _, fn := range h.pointerObs.list() {
		fn(lx, ly)
	}
}

// composite draws the background layer and then the foreground layer.
func (h *Host) composite(screen *ebiten.Image) {
	for _, c := range h.canvases {
		if c != nil && c.img != nil {
			screen.DrawImage(c.img, nil)
		}
	}
}

// frameQueue is the animated.Scheduler behind the ebiten game loop. Frames
// requested while the queue runs are held for the next Draw.
type frameQueue struct {
	next    animated.FrameID
	pending map[animated.FrameID]func()
}

func (q *frameQueue) RequestFrame(fn func()) animated.FrameID {
	if q.pending == nil {
		q.pending = make(map[animated.FrameID]func())
	}
	q.next++
	q.pending[q.next] = fn
	return q.next
}

func (q *frameQueue) CancelFrame(id animated.FrameID) {
	delete(q.pending, id)
}

// run executes the frames pending at call time in request order and returns
// how many ran.
func (q *frameQueue) run() int {
	if len(q.pending) == 0 {
		return 0
	}
	ids := make([]animated.FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	frames := make([]func(), 0, len(ids))
	for _, id := range ids {
		frames = append(frames, q.pending[id])
		delete(q.pending, id)
	}
	for _, fn := range frames {
		fn()
	}
	return len(frames)
}

// observers is a set of callbacks that can each be removed.
type observers[F any] struct {
	next int
	fns  map[int]F
}

func (o *observers[F]) add(fn F) (stop func()) {
	if o.fns == nil {
		o.fns = make(map[int]F)
	}
	o.next++
	id := o.next
	o.fns[id] = fn
	return func() { delete(o.fns, id) }
}

func (o *observers[F]) list() []F {
	ids := make([]int, 0, len(o.fns))
	for id := range o.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]F, 0, len(ids))
	for _, id := range ids {
		out = append(out, o.fns[id])
	}
	return out
}

func (o *observers[F]) count() int { return len(o.fns) }

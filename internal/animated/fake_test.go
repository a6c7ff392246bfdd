package animated

import (
	"errors"
	"sort"
	"time"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/palette"
)

type textCall struct {
	s     string
	x, y  float64
	c     palette.Color
	alpha float64
}

type fakeCanvas struct {
	width, height int
	scale         float64
	fontSize      float64
	advance       float64

	calls int
	rects int
	glows int
	texts []textCall
}

func (c *fakeCanvas) Resize(w, h int) {
	c.calls++
	c.width, c.height, c.scale = w, h, 1
}
func (c *fakeCanvas) Scale(f float64) { c.calls++; c.scale = f }
func (c *fakeCanvas) Clear()          { c.calls++; c.texts = c.texts[:0]; c.glows = 0 }
func (c *fakeCanvas) FillRect(x, y, w, h float64, col palette.Color) {
	c.calls++
	c.rects++
}
func (c *fakeCanvas) FillRadialGlow(cx, cy, r float64, col palette.Color, stops []GlowStop) {
	c.calls++
	c.glows++
}
func (c *fakeCanvas) SetFontSize(size float64)    { c.calls++; c.fontSize = size }
func (c *fakeCanvas) MeasureText(s string) float64 { return c.advance * float64(len(s)) }
func (c *fakeCanvas) FillText(s string, x, y float64, col palette.Color, alpha float64) {
	c.calls++
	c.texts = append(c.texts, textCall{s: s, x: x, y: y, c: col, alpha: alpha})
}

type fakeScheduler struct {
	next    FrameID
	pending map[FrameID]func()
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: map[FrameID]func(){}}
}

func (s *fakeScheduler) RequestFrame(fn func()) FrameID {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *fakeScheduler) CancelFrame(id FrameID) { delete(s.pending, id) }

// tick runs the frames pending at call time, in request order.
func (s *fakeScheduler) tick() int {
	ids := make([]FrameID, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	frames := make([]func(), 0, len(ids))
	for _, id := range ids {
		frames = append(frames, s.pending[id])
		delete(s.pending, id)
	}
	for _, fn := range frames {
		fn()
	}
	return len(frames)
}

type fakeHost struct {
	caps      Capabilities
	canvasErr error
	sched     *fakeScheduler
	canvases  map[Layer]*fakeCanvas

	x, y, w, h float64
	dpr        float64
	now        time.Time

	resizeFns  map[int]func()
	pointerFns map[int]func(x, y float64)
	nextID     int
}

func newFakeHost(w, h float64) *fakeHost {
	return &fakeHost{
		caps:       Capabilities{Surface: true, Frames: true},
		sched:      newFakeScheduler(),
		canvases:   map[Layer]*fakeCanvas{},
		w:          w,
		h:          h,
		dpr:        1,
		now:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		resizeFns:  map[int]func(){},
		pointerFns: map[int]func(x, y float64){},
	}
}

func (h *fakeHost) Probe() Capabilities { return h.caps }

func (h *fakeHost) NewCanvas(l Layer) (Canvas, error) {
	if h.canvasErr != nil {
		return nil, h.canvasErr
	}
	c := &fakeCanvas{advance: 10}
	h.canvases[l] = c
	return c, nil
}

func (h *fakeHost) Scheduler() Scheduler { return h.sched }

func (h *fakeHost) Bounds() (x, y, w, hh float64) { return h.x, h.y, h.w, h.h }

func (h *fakeHost) DevicePixelRatio() float64 { return h.dpr }

func (h *fakeHost) ObserveResize(fn func()) func() {
	h.nextID++
	id := h.nextID
	h.resizeFns[id] = fn
	return func() { delete(h.resizeFns, id) }
}

func (h *fakeHost) ObservePointer(fn func(x, y float64)) func() {
	h.nextID++
	id := h.nextID
	h.pointerFns[id] = fn
	return func() { delete(h.pointerFns, id) }
}

func (h *fakeHost) Now() time.Time { return h.now }

func (h *fakeHost) advance(d time.Duration) { h.now = h.now.Add(d) }

func (h *fakeHost) move(x, y float64) {
	for _, fn := range h.pointerFns {
		fn(x, y)
	}
}

func (h *fakeHost) resize(w, hh float64) {
	h.w, h.h = w, hh
	for _, fn := range h.resizeFns {
		fn()
	}
}

func (h *fakeHost) drawCalls() int {
	var n int
	for _, c := range h.canvases {
		n += c.calls
	}
	return n
}

var errNoContext = errors.New("no 2d context")

// Package game hosts the animated background in an ebiten window.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/tokenlistooor-pattern/internal/animated"
	"github.com/iburimskiy/tokenlistooor-pattern/internal/pattern"
)

const (
	statsRingSize = 120
	logEvery      = 1000
)

// Game is the ebiten.Game showing the background.
type Game struct {
	host     *Host
	opts     animated.Options
	static   func() *pattern.Static
	renderer *animated.Renderer

	backdrop    *ebiten.Image
	backdropErr error

	stats   *frameStats
	debug   bool
	lastErr error
}

// NewGame wires a host to the renderer settings. static supplies the shared
// pre-rendered pattern, used for the fallback and for exports.
func NewGame(host *Host, opts animated.Options, static func() *pattern.Static, debug bool) *Game {
	return &Game{
		host:   host,
		opts:   opts,
		static: static,
		stats:  newFrameStats(statsRingSize),
		debug:  debug,
	}
}

func (g *Game) Update() error {
	if g.renderer == nil {
		g.renderer = animated.Mount(g.host, g.opts, g.static)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.renderer.Unmount()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.lastErr = g.saveDialog()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.host.poll()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		return
	}
	if g.renderer.State() == animated.Unsupported {
		g.drawBackdrop(screen)
	} else {
		g.host.frames.run()
		g.host.composite(screen)
	}

	g.stats.record(time.Now())
	if g.debug && g.stats.total%logEvery == 0 {
		log.Printf("avg FPS for past %d frames: %.1f", statsRingSize, g.stats.fps())
	}
	if g.debug {
		g.drawStatus(screen)
	}
}

// drawBackdrop paints the static pattern over the whole window.
func (g *Game) drawBackdrop(screen *ebiten.Image) {
	st := g.renderer.Fallback()
	if st == nil {
		return
	}
	if g.backdrop == nil && g.backdropErr == nil {
		img, err := st.Image()
		if err != nil {
			g.backdropErr = err
			return
		}
		g.backdrop = ebiten.NewImageFromImage(img)
	}
	if g.backdrop == nil {
		return
	}
	b := g.backdrop.Bounds()
	sb := screen.Bounds()
	scale, x, y := coverFit(float64(b.Dx()), float64(b.Dy()), float64(sb.Dx()), float64(sb.Dy()))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.backdrop, op)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("%s | %.0f fps | %d glyphs", g.renderer.State(), g.stats.fps(), len(g.renderer.Glyphs()))
	if reason := g.renderer.Reason(); reason != nil {
		status += " | " + reason.Error()
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.host.layout(outsideWidth, outsideHeight)
}

//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"gridlock/internal/core"
	"gridlock/internal/overlay"
	"gridlock/internal/server"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type frameSource interface {
	Recorder() *core.Recorder
}

// Game adapts a scenario plus the overlay layers to the ebiten.Game
// interface. It owns the camera and the render-mode switching; the overlay
// layers themselves never change mode.
type Game struct {
	scn  core.Scenario
	cfg  *Config
	seed int64

	live *overlay.CongestionLayer
	road *overlay.RoadOverlay
	heat *overlay.ReplayHeatmap
	dst  *overlay.ScreenSurface

	mode     core.RenderMode
	frameIdx int
	autoplay bool
	pacer    *core.FixedStep

	camX, camY float64
	zoom       float64

	paused bool
	tick   int

	telemetry *server.Server
}

// New constructs a Game for the provided scenario.
func New(scn core.Scenario, cfg *Config) *Game {
	g := &Game{
		scn:   scn,
		cfg:   cfg,
		seed:  cfg.Seed,
		live:  &overlay.CongestionLayer{Enabled: true, Logf: log.Printf},
		road:  &overlay.RoadOverlay{},
		heat:  &overlay.ReplayHeatmap{},
		pacer: core.NewFixedStep(12),
		zoom:  1,
	}
	if cfg.Serve != "" {
		g.telemetry = server.New(cfg.Serve)
		g.telemetry.Start()
	}
	return g
}

// Update handles input, advances the scenario and publishes telemetry.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scn.Reset(g.seed)
		g.tick = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.scn.Reset(time.Now().UnixNano())
		g.tick = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.live.Enabled = !g.live.Enabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if g.mode == core.ModeLive {
			g.mode = core.ModeReplay
		} else {
			g.mode = core.ModeLive
		}
	}
	g.updateCamera()
	g.updateReplayScrub()

	if g.mode == core.ModeLive && !g.paused {
		g.scn.Step()
		g.tick++
	}
	if g.telemetry != nil {
		frames := 0
		if src, ok := g.scn.(frameSource); ok {
			frames = src.Recorder().Len()
		}
		g.telemetry.Publish(server.Summarize(g.tick, g.scn.Snapshot(), g.scn.Thresholds(), g.mode, frames))
	}
	return nil
}

func (g *Game) updateCamera() {
	pan := 6 / g.zoom
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camX -= pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camX += pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camY -= pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camY += pan
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && g.zoom < 16 {
		g.zoom *= 1.25
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.zoom > 0.125 {
		g.zoom /= 1.25
	}
}

func (g *Game) updateReplayScrub() {
	src, ok := g.scn.(frameSource)
	if !ok || g.mode != core.ModeReplay {
		return
	}
	last := src.Recorder().Len() - 1
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) && g.frameIdx < last {
		g.frameIdx++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) && g.frameIdx > 0 {
		g.frameIdx--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.autoplay = !g.autoplay
	}
	if g.autoplay && g.pacer.ShouldStep() {
		g.frameIdx++
		if g.frameIdx > last {
			g.frameIdx = 0
		}
	}
}

// Draw renders the base road map plus whichever overlay family the current
// mode selects.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 16, A: 255})
	if g.dst == nil {
		g.dst = overlay.NewScreenSurface(screen)
	} else {
		g.dst.Retarget(screen)
	}

	cam := core.NewCamera(g.zoom, g.camX, g.camY, g.cfg.Width, g.cfg.Height)
	grid := g.scn.Snapshot()
	roi := g.scn.ROI()

	g.drawBase(grid, roi, cam)
	switch g.mode {
	case core.ModeLive:
		g.live.Draw(grid, roi, cam, g.scn.Congestion(), g.dst)
		g.road.Draw(grid, roi, cam, g.scn.Thresholds(), g.mode, g.dst)
	case core.ModeReplay:
		if src, ok := g.scn.(frameSource); ok {
			g.heat.Draw(src.Recorder().Frame(g.frameIdx), cam, roi, g.dst)
		}
	}
}

// drawBase paints the road network in flat gray so the overlays have
// spatial context.
func (g *Game) drawBase(grid *core.Grid, roi core.ROI, cam core.Camera) {
	size := roi.CellSize * cam.Zoom
	if size < 1 {
		return
	}
	pad := 2 * roi.CellSize
	base := color.RGBA{R: 60, G: 60, B: 66, A: 255}
	for _, idx := range grid.RoadCells {
		x, y := grid.Coords(idx)
		wx, wy := roi.CellToWorld(x, y)
		if !overlay.Visible(wx, wy, cam.Viewport, pad) {
			continue
		}
		sx, sy := cam.Proj.WorldToScreen(wx, wy)
		g.dst.FillRect(sx, sy, size, base, 1)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

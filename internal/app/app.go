//go:build ebiten

package app

import (
	"image/color"
	"time"

	"railsnake/internal/core"
	"railsnake/internal/render"
	"railsnake/internal/sims/train"
	"railsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statusLiner interface {
	StatusLine() string
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	grid    *render.GridPainter
	scene   *render.ScenePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	pressed  bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:      sim,
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
	if _, ok := sim.(*train.Train); ok {
		g.scene = render.NewScenePainter()
	}
	if paced, ok := sim.(core.Paced); ok {
		g.pacer = core.NewFixedInterval(paced.Interval())
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	if g.pacer != nil {
		g.pacer.Reset()
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	steer, steerable := g.sim.(core.Steerable)
	if steerable {
		g.handleSteering(steer)
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.Reset(time.Now().UnixNano())
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if drag, ok := g.sim.(core.Draggable); ok {
		g.handlePointer(drag)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.viewWidth())
	}

	if g.tickOnce || (!g.paused && g.due()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) due() bool {
	if g.pacer == nil {
		return true
	}
	if paced, ok := g.sim.(core.Paced); ok && paced.Interval() != g.pacer.Interval() {
		g.pacer.SetInterval(paced.Interval())
	}
	return g.pacer.ShouldStep()
}

func (g *Game) handleSteering(s core.Steerable) {
	switch {
	case justPressed(ebiten.KeyArrowUp, ebiten.KeyW):
		s.Steer(0, -1)
	case justPressed(ebiten.KeyArrowDown, ebiten.KeyS):
		s.Steer(0, 1)
	case justPressed(ebiten.KeyArrowLeft, ebiten.KeyA):
		s.Steer(-1, 0)
	case justPressed(ebiten.KeyArrowRight, ebiten.KeyD):
		s.Steer(1, 0)
	}
}

func (g *Game) handlePointer(d core.Draggable) {
	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && my >= 0 && mx < g.viewWidth()
	x := float64(mx) / float64(g.scale)
	y := float64(my) / float64(g.scale)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && inView {
		d.Remove(x, y)
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inView {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			d.Insert(x, y)
			return
		}
		d.Press(x, y)
		g.pressed = true
		return
	}
	if !g.pressed {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		d.Drag(x, y)
		return
	}
	d.Release()
	g.pressed = false
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	switch sim := g.sim.(type) {
	case *train.Train:
		g.scene.Draw(screen, sim, float64(g.scale))
	case core.CellSource:
		size := g.sim.Size()
		if w, h := g.gridSize(); g.grid == nil || w != size.W || h != size.H {
			g.grid = render.NewGridPainter(size.W, size.H)
		}
		g.grid.Blit(screen, sim.Cells(), sim.Palette(), g.scale)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	g.drawStatus(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.viewWidth(), g.scale)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	line := ""
	if s, ok := g.sim.(statusLiner); ok {
		line = s.StatusLine()
	}
	if g.paused {
		if line != "" {
			line += "  "
		}
		line += "[paused]"
	}
	if line == "" {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, line, face, 9, 19, color.RGBA{A: 200})
	text.Draw(screen, line, face, 8, 18, color.RGBA{R: 240, G: 240, B: 240, A: 255})
}

func (g *Game) gridSize() (int, int) {
	if g.grid == nil {
		return 0, 0
	}
	return g.grid.Size()
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + max(g.hudWidth, 0), s.H * g.scale
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

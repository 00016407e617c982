package sparkle

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the screen before particles are drawn. Nil leaves the
	// screen as ebiten provides it.
	ClearColor *Color
	// Blend is the composite mode for particle fills.
	Blend BlendMode
	// ShowFPS draws an FPS/TPS/entity-count overlay.
	ShowFPS bool
	// ScreenshotDir enables F12 screenshots. Each press writes a timestamped
	// PNG of the next rendered frame into the directory, named after Title.
	ScreenshotDir string
	// OnUpdate, if set, runs every tick before the system update with the
	// frame's elapsed time in milliseconds. A non-nil error stops the game.
	OnUpdate func(dt float64) error
}

// Run opens a window and drives sys at ebiten's tick rate: each tick calls
// sys.Update, and each frame clears the screen and calls sys.Render.
// It blocks until the window is closed or OnUpdate returns an error.
func Run(sys *System, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(newGame(sys, cfg))
}

// game adapts a System to ebiten.Game.
type game struct {
	sys     *System
	cfg     RunConfig
	surface *EbitenSurface
	fps     *fpsOverlay
	shots   *screenshotter
}

func newGame(sys *System, cfg RunConfig) *game {
	g := &game{sys: sys, cfg: cfg, surface: NewEbitenSurface(nil)}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if cfg.ScreenshotDir != "" {
		g.shots = &screenshotter{dir: cfg.ScreenshotDir, logger: sys.logger}
	}
	return g
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	dt := 1000.0 / float64(ebiten.TPS())
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(dt); err != nil {
			return err
		}
	}
	g.sys.Update(Frame{DeltaTime: dt})
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.shots != nil && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.request(g.cfg.Title)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	if c := g.cfg.ClearColor; c != nil {
		r, gr, b, a := c.NRGBA()
		screen.Fill(color.NRGBA{R: r, G: gr, B: b, A: a})
	}
	g.surface.Reset(screen)
	g.surface.SetBlendMode(g.cfg.Blend)
	g.sys.Render(g.surface)
	if g.fps != nil {
		g.fps.draw(screen, g.sys)
	}
	if g.shots != nil {
		g.shots.flush(screen)
	}
}

// Layout implements ebiten.Game.
func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

package dragbox

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the Run helper's window and loop.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// ShowFPS overlays the current FPS and TPS in the top-left corner.
	ShowFPS bool

	// TPS overrides the tick rate when positive.
	TPS int

	// Update, when set, runs every tick after input processing. dt is the
	// fixed tick duration in seconds — the place to drive Indicator.Tick and
	// ScriptRunner.Step.
	Update func(dt float64)

	// Draw renders the frame.
	Draw func(screen *ebiten.Image)
}

type game struct {
	surface *Surface
	cfg     RunConfig
}

func (g *game) Update() error {
	g.surface.Update()
	if g.cfg.Update != nil {
		g.cfg.Update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(w, h int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the surface with a minimal game loop. For
// full control, implement ebiten.Game yourself and call Surface.Update from
// your own Update.
func Run(s *Surface, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(&game{surface: s, cfg: cfg})
}

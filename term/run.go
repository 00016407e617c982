package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sparkle"
)

const defaultFrameRate = 60

// Config configures Run.
type Config struct {
	// CellWidth and CellHeight are the pixels covered by one terminal cell.
	// Default 8x16.
	CellWidth, CellHeight float64
	// FrameRate is the number of update/draw ticks per second. Default 60.
	FrameRate int
	// Background is painted before each frame. Defaults to black.
	Background *sparkle.Color
	// OnResize, if set, is called with the screen size in pixels at start
	// and after every terminal resize.
	OnResize func(width, height float64)
	// OnUpdate, if set, runs every tick before the system update with the
	// elapsed milliseconds. A non-nil error stops Run and is returned.
	OnUpdate func(dt float64) error
}

// Run drives sys on screen until Escape, Ctrl-C or q is pressed, ctx is
// cancelled, or OnUpdate fails. Each tick it updates sys with the measured
// elapsed time and redraws the screen.
//
// The caller owns the screen: it must be initialized before Run and
// finalized after it returns.
func Run(ctx context.Context, sys *sparkle.System, screen tcell.Screen, cfg Config) error {
	rate := cfg.FrameRate
	if rate <= 0 {
		rate = defaultFrameRate
	}
	surface := NewSurface(screen, cfg.CellWidth, cfg.CellHeight)
	if cfg.Background != nil {
		surface.SetBackground(*cfg.Background)
	}
	resized := func() {
		if cfg.OnResize != nil {
			b := surface.Bounds()
			cfg.OnResize(b.Width, b.Height)
		}
	}
	resized()

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				resized()
			}

		case now := <-ticker.C:
			dt := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			if cfg.OnUpdate != nil {
				if err := cfg.OnUpdate(dt); err != nil {
					return err
				}
			}
			sys.Update(sparkle.Frame{DeltaTime: dt, Surface: surface})
			surface.Draw(sys)
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Package term renders a sparkle.System into a terminal through tcell.
//
// Particle coordinates are in pixels; each terminal cell stands for a
// CellWidth x CellHeight block of pixels. Filled paths paint cell
// backgrounds, alpha-blended over whatever background the cell already has.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/sparkle"
)

const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

type arc struct {
	x, y, r    float64
	start, end float64
	ccw        bool
}

// contains reports whether pixel (px, py) lies inside the filled sector.
func (a arc) contains(px, py float64) bool {
	dx, dy := px-a.x, py-a.y
	if dx*dx+dy*dy > a.r*a.r {
		return false
	}
	sweep := a.end - a.start
	if a.ccw {
		sweep = -sweep
	}
	if sweep >= 2*math.Pi || sweep <= -2*math.Pi {
		return true
	}
	sweep = math.Mod(sweep+2*math.Pi, 2*math.Pi)
	rel := math.Atan2(dy, dx) - a.start
	if a.ccw {
		rel = -rel
	}
	rel = math.Mod(rel+4*math.Pi, 2*math.Pi)
	return rel <= sweep
}

// Surface is a sparkle.Surface that draws onto a tcell.Screen.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	background   tcell.Color

	path  []arc
	fill  sparkle.Color
	stack []sparkle.Color
}

// NewSurface creates a surface over screen. Non-positive cell dimensions
// fall back to DefaultCellWidth and DefaultCellHeight.
func NewSurface(screen tcell.Screen, cellWidth, cellHeight float64) *Surface {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return &Surface{
		screen:     screen,
		cellW:      cellWidth,
		cellH:      cellHeight,
		background: tcell.ColorBlack,
		fill:       sparkle.NewColor(0, 0, 0, 1),
	}
}

// SetBackground sets the color Clear paints and the base that fills blend
// over on cells with the terminal's default background.
func (s *Surface) SetBackground(c sparkle.Color) {
	r, g, b, _ := c.NRGBA()
	s.background = tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Bounds returns the screen area in pixels.
func (s *Surface) Bounds() sparkle.Rect {
	w, h := s.screen.Size()
	return sparkle.Rect{Width: float64(w) * s.cellW, Height: float64(h) * s.cellH}
}

// Clear paints every cell with the background color.
func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.background))
}

// Draw clears the screen, renders sys and shows the result.
func (s *Surface) Draw(sys *sparkle.System) {
	s.Clear()
	sys.Render(s)
	s.screen.Show()
}

// Save pushes the current fill color.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.fill)
}

// Restore pops the fill color pushed by the matching Save. Unbalanced calls
// are ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.fill = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.path = s.path[:0]
}

// Arc appends a circular sector centered at (x, y) to the current path.
func (s *Surface) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	s.path = append(s.path, arc{x: x, y: y, r: radius, start: startAngle, end: endAngle, ccw: counterClockwise})
}

// SetFillStyle sets the fill color. Strings that do not parse leave it
// unchanged.
func (s *Surface) SetFillStyle(style string) {
	c, err := sparkle.ParseStyle(style)
	if err != nil {
		return
	}
	s.fill = c
}

// FillStyle returns the current fill color.
func (s *Surface) FillStyle() sparkle.Color {
	return s.fill
}

// Fill paints every cell whose center lies inside the current path. A shape
// smaller than a cell still paints the cell under its center.
func (s *Surface) Fill() {
	if s.fill.A() <= 0 {
		return
	}
	cols, rows := s.screen.Size()
	for _, a := range s.path {
		painted := false
		c0 := int(math.Floor((a.x - a.r) / s.cellW))
		c1 := int(math.Floor((a.x + a.r) / s.cellW))
		r0 := int(math.Floor((a.y - a.r) / s.cellH))
		r1 := int(math.Floor((a.y + a.r) / s.cellH))
		for row := max(r0, 0); row <= min(r1, rows-1); row++ {
			for col := max(c0, 0); col <= min(c1, cols-1); col++ {
				px := (float64(col) + 0.5) * s.cellW
				py := (float64(row) + 0.5) * s.cellH
				if a.contains(px, py) {
					s.blend(col, row)
					painted = true
				}
			}
		}
		if !painted {
			col := int(math.Floor(a.x / s.cellW))
			row := int(math.Floor(a.y / s.cellH))
			if col >= 0 && col < cols && row >= 0 && row < rows {
				s.blend(col, row)
			}
		}
	}
}

// blend composites the fill color over the cell's background.
func (s *Surface) blend(col, row int) {
	_, _, style, _ := s.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	if bg == tcell.ColorDefault {
		bg = s.background
	}
	br, bgg, bb := bg.RGB()
	if br < 0 {
		br, bgg, bb = 0, 0, 0
	}
	base := colorful.Color{R: float64(br) / 255, G: float64(bgg) / 255, B: float64(bb) / 255}
	src := colorful.Color{R: s.fill.R() / 255, G: s.fill.G() / 255, B: s.fill.B() / 255}
	out := base.BlendRgb(src, math.Min(s.fill.A(), 1)).Clamped()
	r, g, b := out.RGB255()
	s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b))))
}

package sparkle

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// fillSource returns a 1x1 white region used as the source for filled paths.
// The region sits inside a 3x3 image so linear filtering never samples past
// the white pixels.
func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// surfaceState is the drawing state saved and restored by Save and Restore.
type surfaceState struct {
	fill  Color
	blend BlendMode
}

// EbitenSurface is a Surface that draws onto an ebiten image using vector
// paths. Paths are filled with anti-aliasing.
type EbitenSurface struct {
	dst   *ebiten.Image
	path  vector.Path
	state surfaceState
	stack []surfaceState

	vs []ebiten.Vertex
	is []uint16
}

// NewEbitenSurface creates a surface drawing onto dst. The initial fill
// style is opaque black with normal blending.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		dst:   dst,
		state: surfaceState{fill: NewColor(0, 0, 0, 1)},
	}
}

// Reset points the surface at a new destination image and clears all
// drawing state, keeping internal buffers for reuse across frames.
func (s *EbitenSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.path = vector.Path{}
	s.state = surfaceState{fill: NewColor(0, 0, 0, 1)}
	s.stack = s.stack[:0]
}

// Save pushes the current fill style and blend mode.
func (s *EbitenSurface) Save() {
	s.stack = append(s.stack, s.state)
}

// Restore pops the state pushed by the matching Save. Unbalanced calls are
// ignored.
func (s *EbitenSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// BeginPath discards the current path.
func (s *EbitenSurface) BeginPath() {
	s.path = vector.Path{}
}

// Arc appends a circular arc centered at (x, y) to the current path. Angles
// are in radians.
func (s *EbitenSurface) Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool) {
	dir := vector.Clockwise
	if counterClockwise {
		dir = vector.CounterClockwise
	}
	s.path.Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), dir)
}

// SetFillStyle sets the fill color from an rgba() or hsla() string. Strings
// that do not parse leave the fill style unchanged.
func (s *EbitenSurface) SetFillStyle(style string) {
	c, err := ParseStyle(style)
	if err != nil {
		return
	}
	s.state.fill = c
}

// SetBlendMode sets how subsequent fills composite onto the destination.
func (s *EbitenSurface) SetBlendMode(b BlendMode) {
	s.state.blend = b
}

// FillStyle returns the current fill color.
func (s *EbitenSurface) FillStyle() Color {
	return s.state.fill
}

// Fill paints the current path with the fill color.
func (s *EbitenSurface) Fill() {
	s.vs, s.is = s.path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	if len(s.is) == 0 {
		return
	}
	r, g, b, a := s.state.fill.NRGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(r) / 255
		s.vs[i].ColorG = float32(g) / 255
		s.vs[i].ColorB = float32(b) / 255
		s.vs[i].ColorA = float32(a) / 255
	}
	s.dst.DrawTriangles(s.vs, s.is, fillSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		Blend:          s.state.blend.EbitenBlend(),
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	})
}

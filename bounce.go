package sparkle

import "math"

const (
	defaultParticleSize = 5.0
	defaultBoundsMax    = 400.0
	perSecond           = 0.001 // converts a per-second rate to per-millisecond
)

// Bounds is the box a BounceParticle is confined to, in world coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// BounceConfig describes a BounceParticle.
type BounceConfig struct {
	// X and Y are the starting position, relative to Parent if set.
	X, Y float64
	// Parent positions the particle relative to an anchor.
	Parent Anchor
	// DX and DY are the velocity in pixels per second.
	DX, DY float64
	// Size is the circle radius in pixels. Defaults to 5.
	Size float64
	// Color is copied into the particle. Defaults to opaque red.
	Color *Color
	// Bounds is the reflecting box. A zero MaxX or MaxY defaults to 400.
	Bounds Bounds
}

// BounceParticle is a circle that moves at constant speed and reflects off
// the edges of its bounds. Reflection is a hard sign flip with no correction
// for overshoot. It never finishes on its own.
type BounceParticle struct {
	Particle

	dx, dy float64 // pixels per millisecond
	size   float64
	color  Color
	bounds Bounds
}

// NewBounceParticle creates a bounce particle from cfg.
func NewBounceParticle(cfg BounceConfig) *BounceParticle {
	p := &BounceParticle{
		Particle: newParticle(cfg.X, cfg.Y, cfg.Parent),
		dx:       cfg.DX * perSecond,
		dy:       cfg.DY * perSecond,
		size:     cfg.Size,
		bounds:   cfg.Bounds,
	}
	if p.size == 0 {
		p.size = defaultParticleSize
	}
	if cfg.Color != nil {
		p.color = cfg.Color.Copy()
	} else {
		p.color = ColorRed()
	}
	if p.bounds.MaxX == 0 {
		p.bounds.MaxX = defaultBoundsMax
	}
	if p.bounds.MaxY == 0 {
		p.bounds.MaxY = defaultBoundsMax
	}
	return p
}

// Update moves the particle by its velocity, rounded to whole pixels with
// ties toward +Inf, then points the velocity back inside on any axis at or
// beyond a bound.
func (p *BounceParticle) Update(f Frame) {
	dt := f.DeltaTime
	p.x += roundHalfUp(p.dx * dt)
	p.y += roundHalfUp(p.dy * dt)

	x, y := p.X(), p.Y()
	if x <= p.bounds.MinX {
		p.dx = math.Abs(p.dx)
	}
	if y <= p.bounds.MinY {
		p.dy = math.Abs(p.dy)
	}
	if x >= p.bounds.MaxX {
		p.dx = -math.Abs(p.dx)
	}
	if y >= p.bounds.MaxY {
		p.dy = -math.Abs(p.dy)
	}
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf, so a
// -0.5px step stays put.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Render draws a filled circle at the particle's world position.
func (p *BounceParticle) Render(s Surface) {
	fillCircle(s, p.X(), p.Y(), p.size, p.color)
}

// Radius returns the radius of the drawn circle.
func (p *BounceParticle) Radius() float64 {
	return p.size
}

// Velocity returns the velocity in pixels per millisecond.
func (p *BounceParticle) Velocity() Vec2 {
	return Vec2{X: p.dx, Y: p.dy}
}

// Bounds returns the reflecting box.
func (p *BounceParticle) Bounds() Bounds {
	return p.bounds
}

// SetBounds replaces the reflecting box, for example after a window resize.
func (p *BounceParticle) SetBounds(b Bounds) {
	p.bounds = b
}

// Color returns the particle's color.
func (p *BounceParticle) Color() Color {
	return p.color
}

// fillCircle paints a full circle of radius r at (x, y).
func fillCircle(s Surface, x, y, r float64, c Color) {
	s.BeginPath()
	s.Arc(x, y, r, 0, 2*math.Pi, false)
	s.SetFillStyle(c.String())
	s.Fill()
}

package sparkle

import "github.com/tanema/gween/ease"

const defaultFadeTTL = 1000.0

// FadeConfig describes a FadeParticle.
type FadeConfig struct {
	// X and Y are the starting position, relative to Parent if set.
	X, Y float64
	// Parent positions the particle relative to an anchor.
	Parent Anchor
	// DX and DY are the velocity in pixels per second.
	DX, DY float64
	// Size is the circle radius in pixels. Defaults to 5.
	Size float64
	// Color is copied into the particle; its alpha is the starting fade.
	// Defaults to opaque red.
	Color *Color
	// EndColor, if set, shifts hue, saturation and lightness toward it over
	// the particle's lifetime.
	EndColor *Color
	// TTL is the lifetime in milliseconds. Defaults to 1000.
	TTL float64
	// Ease shapes the fade curve. Defaults to ease.Linear.
	Ease ease.TweenFunc
}

// FadeParticle is a drifting circle whose alpha falls from its starting value
// to zero over its lifetime, after which it is done. Once done it is frozen:
// position, fade and remaining lifetime no longer change.
type FadeParticle struct {
	Particle

	dx, dy float64 // pixels per millisecond
	size   float64
	color  Color
	ttl    float64
	fade   *ColorTween
	shift  *ColorTween
}

// NewFadeParticle creates a fade particle from cfg.
func NewFadeParticle(cfg FadeConfig) *FadeParticle {
	p := &FadeParticle{
		Particle: newParticle(cfg.X, cfg.Y, cfg.Parent),
		dx:       cfg.DX * perSecond,
		dy:       cfg.DY * perSecond,
		size:     cfg.Size,
		ttl:      cfg.TTL,
	}
	if p.size == 0 {
		p.size = defaultParticleSize
	}
	if p.ttl == 0 {
		p.ttl = defaultFadeTTL
	}
	if cfg.Color != nil {
		p.color = cfg.Color.Copy()
	} else {
		p.color = ColorRed()
	}
	p.fade = TweenAlpha(&p.color, 0, p.ttl, cfg.Ease)
	if cfg.EndColor != nil {
		p.shift = TweenHSL(&p.color, *cfg.EndColor, p.ttl, ease.Linear)
	}
	return p
}

// Update drifts the particle, advances the fade and counts down its lifetime.
func (p *FadeParticle) Update(f Frame) {
	if p.done {
		return
	}
	dt := f.DeltaTime
	p.x += p.dx * dt
	p.y += p.dy * dt

	if p.shift != nil {
		p.shift.Update(dt)
	}
	p.fade.Update(dt)

	p.ttl -= dt
	if p.ttl <= 0 {
		// The tween clock is float32; land exactly on the end values.
		p.fade.Finish()
		if p.shift != nil {
			p.shift.Finish()
		}
		p.done = true
	}
}

// Render draws a filled circle at the particle's world position using the
// current faded color.
func (p *FadeParticle) Render(s Surface) {
	fillCircle(s, p.X(), p.Y(), p.size, p.color)
}

// Fade returns the current fade value, which is also the color's alpha.
func (p *FadeParticle) Fade() float64 {
	return p.color.A()
}

// TTL returns the remaining lifetime in milliseconds.
func (p *FadeParticle) TTL() float64 {
	return p.ttl
}

// Radius returns the radius of the drawn circle.
func (p *FadeParticle) Radius() float64 {
	return p.size
}

// Velocity returns the velocity in pixels per millisecond.
func (p *FadeParticle) Velocity() Vec2 {
	return Vec2{X: p.dx, Y: p.dy}
}

// Color returns the particle's color.
func (p *FadeParticle) Color() Color {
	return p.color
}

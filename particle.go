package sparkle

// Entity is anything a System tracks. Update advances the entity by one
// frame; Done reports that its lifecycle is complete and it may be pruned;
// Active reports whether it takes part in update and render this frame.
type Entity interface {
	Update(f Frame)
	Done() bool
	Active() bool
}

// Renderer is implemented by entities with a visual representation.
type Renderer interface {
	Render(s Surface)
}

// Anchor is a parent a particle can be positioned relative to. The reference
// is non-owning: it is only queried for position and activity and never
// drives the child's lifecycle. Emitters and all particle variants are anchors.
type Anchor interface {
	X() float64
	Y() float64
	Active() bool
}

// Particle is the base state shared by every particle variant and by
// Emitter: a local offset, an optional parent, and the done and active flags.
// It has no update or render behavior of its own; embed it in a type that
// provides them.
type Particle struct {
	x, y   float64
	parent Anchor
	done   bool
	active bool
}

// newParticle returns an active particle at local offset (x, y) relative to
// parent. A nil parent places the particle in world coordinates.
func newParticle(x, y float64, parent Anchor) Particle {
	return Particle{x: x, y: y, parent: parent, active: true}
}

// X returns the world x position: the local offset plus the parent's world x.
func (p *Particle) X() float64 {
	if p.parent != nil {
		return p.x + p.parent.X()
	}
	return p.x
}

// Y returns the world y position: the local offset plus the parent's world y.
func (p *Particle) Y() float64 {
	if p.parent != nil {
		return p.y + p.parent.Y()
	}
	return p.y
}

// SetX moves the particle to world x, storing it relative to the parent.
func (p *Particle) SetX(x float64) {
	if p.parent != nil {
		x -= p.parent.X()
	}
	p.x = x
}

// SetY moves the particle to world y, storing it relative to the parent.
func (p *Particle) SetY(y float64) {
	if p.parent != nil {
		y -= p.parent.Y()
	}
	p.y = y
}

// Position returns the world position.
func (p *Particle) Position() Vec2 {
	return Vec2{X: p.X(), Y: p.Y()}
}

// Local returns the stored offset relative to the parent.
func (p *Particle) Local() Vec2 {
	return Vec2{X: p.x, Y: p.y}
}

// Parent returns the anchor the particle is positioned relative to, or nil.
func (p *Particle) Parent() Anchor {
	return p.parent
}

// Done reports whether the particle has completed its lifecycle.
func (p *Particle) Done() bool {
	return p.done
}

// SetDone marks the lifecycle complete (or not). A System prunes done
// entities during its next update.
func (p *Particle) SetDone(done bool) {
	p.done = done
}

// Active reports whether the particle participates in update and render.
// A particle whose parent is inactive is inactive regardless of its own flag.
func (p *Particle) Active() bool {
	if p.parent != nil && !p.parent.Active() {
		return false
	}
	return p.active
}

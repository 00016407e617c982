package sparkle

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// anchor is a fixed parent for positioning tests.
type anchor struct {
	x, y     float64
	inactive bool
}

func (a *anchor) X() float64   { return a.x }
func (a *anchor) Y() float64   { return a.y }
func (a *anchor) Active() bool { return !a.inactive }

func TestParticleWorldPosition(t *testing.T) {
	p := newParticle(5, 7, nil)
	assertNear(t, "X", p.X(), 5)
	assertNear(t, "Y", p.Y(), 7)
	if p.Local() != p.Position() {
		t.Errorf("without a parent Local() %v should equal Position() %v", p.Local(), p.Position())
	}
}

func TestParticleRelativeToParent(t *testing.T) {
	parent := &anchor{x: 10, y: 10}
	p := newParticle(5, 5, parent)
	assertNear(t, "X", p.X(), 15)
	assertNear(t, "Y", p.Y(), 15)

	parent.x, parent.y = 100, 50
	assertNear(t, "X after parent moved", p.X(), 105)
	assertNear(t, "Y after parent moved", p.Y(), 55)
	if got := p.Local(); got != (Vec2{5, 5}) {
		t.Errorf("Local() = %v, want {5 5}", got)
	}
}

func TestParticleSetWorldPosition(t *testing.T) {
	parent := &anchor{x: 10, y: 20}
	p := newParticle(0, 0, parent)
	p.SetX(30)
	p.SetY(25)
	assertNear(t, "X", p.X(), 30)
	assertNear(t, "Y", p.Y(), 25)
	if got := p.Local(); got != (Vec2{20, 5}) {
		t.Errorf("Local() = %v, want {20 5}", got)
	}

	free := newParticle(0, 0, nil)
	free.SetX(3)
	free.SetY(4)
	if got := free.Position(); got != (Vec2{3, 4}) {
		t.Errorf("Position() = %v, want {3 4}", got)
	}
}

func TestParticleChainedParents(t *testing.T) {
	root := &anchor{x: 100, y: 100}
	mid := newParticle(10, 0, root)
	leaf := newParticle(1, 2, &mid)
	assertNear(t, "leaf X", leaf.X(), 111)
	assertNear(t, "leaf Y", leaf.Y(), 102)
}

func TestParticleActiveInheritsFromParent(t *testing.T) {
	parent := &anchor{}
	p := newParticle(0, 0, parent)
	if !p.Active() {
		t.Fatal("new particle should be active")
	}

	parent.inactive = true
	if p.Active() {
		t.Error("particle with inactive parent should be inactive")
	}
	if !p.active {
		t.Error("own active flag should be unchanged")
	}

	parent.inactive = false
	p.active = false
	if p.Active() {
		t.Error("particle with own flag off should be inactive")
	}
}

func TestParticleDone(t *testing.T) {
	p := newParticle(0, 0, nil)
	if p.Done() {
		t.Fatal("new particle should not be done")
	}
	p.SetDone(true)
	if !p.Done() {
		t.Error("SetDone(true) should mark done")
	}
	p.SetDone(false)
	if p.Done() {
		t.Error("SetDone(false) should clear done")
	}
}

func TestParticleParentIsNonOwning(t *testing.T) {
	sys := newTestSystem()
	parent := NewBounceParticle(BounceConfig{X: 50, Y: 50})
	child := NewFadeParticle(FadeConfig{X: 1, Y: 1, Parent: parent, TTL: 100})
	sys.Add(parent)
	sys.Add(child)

	parent.SetDone(true)
	sys.Update(Frame{DeltaTime: 16})
	if sys.Len() != 1 || sys.Items()[0] != Entity(child) {
		t.Fatalf("child should outlive its parent, Items() = %v", sys.Items())
	}
	if child.Parent() != Anchor(parent) {
		t.Error("child should still reference the parent")
	}
	assertNear(t, "child X", child.X(), 51)
}

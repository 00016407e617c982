package sparkle

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ColorTween animates up to 4 channels of a Color simultaneously. Create one
// via TweenAlpha or TweenHSL and call Update(dt) each frame with dt in
// milliseconds. Values are written through the Color setters, so the RGB form
// follows HSL changes immediately.
//
// There is no global tween manager; the owner calls Update itself.
type ColorTween struct {
	tweens   [4]*gween.Tween
	setters  [4]func(c *Color, v float64)
	count    int
	duration float32
	target   *Color
	Done     bool
}

// Update advances all tweens by dt milliseconds and writes the values into the
// target color. Done is set once every channel has reached its end value.
func (g *ColorTween) Update(dt float64) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		g.setters[i](g.target, float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Finish jumps every channel to its end value.
func (g *ColorTween) Finish() {
	for i := 0; i < g.count; i++ {
		val, _ := g.tweens[i].Set(g.duration)
		g.setters[i](g.target, float64(val))
	}
	g.Done = true
}

// TweenAlpha creates a ColorTween that animates c's alpha to the target value
// over duration milliseconds using the easing function. A nil fn is linear.
func TweenAlpha(c *Color, to, duration float64, fn ease.TweenFunc) *ColorTween {
	if fn == nil {
		fn = ease.Linear
	}
	g := &ColorTween{count: 1, duration: float32(duration), target: c}
	g.tweens[0] = gween.New(float32(c.A()), float32(to), float32(duration), fn)
	g.setters[0] = (*Color).SetA
	return g
}

// TweenHSL creates a ColorTween that animates c's hue, saturation and
// lightness to those of to over duration milliseconds. Alpha is untouched.
// A nil fn is linear.
func TweenHSL(c *Color, to Color, duration float64, fn ease.TweenFunc) *ColorTween {
	if fn == nil {
		fn = ease.Linear
	}
	g := &ColorTween{count: 3, duration: float32(duration), target: c}
	g.tweens[0] = gween.New(float32(c.H()), float32(to.H()), float32(duration), fn)
	g.tweens[1] = gween.New(float32(c.S()), float32(to.S()), float32(duration), fn)
	g.tweens[2] = gween.New(float32(c.L()), float32(to.L()), float32(duration), fn)
	g.setters[0] = (*Color).SetH
	g.setters[1] = (*Color).SetS
	g.setters[2] = (*Color).SetL
	return g
}

package sparkle

import (
	"errors"
	"fmt"
	"os"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Preset is a set of emitters described in YAML:
//
//	emitters:
//	  - name: sparks
//	    x: 320
//	    y: 400
//	    interval: 40      # ms
//	    jitter: 0.25      # ±25% of interval
//	    ttl: 0            # ms, 0 = forever
//	    count: 3
//	    particle:
//	      kind: fade      # fade | bounce
//	      dx: [-80, 80]   # px/s, scalar or [min, max]
//	      dy: [-200, -120]
//	      size: [2, 4]
//	      ttl: [600, 1200]
//	      color: "hsla(40,100%,60%,1)"
//	      endColor: "hsla(0,100%,40%,1)"
//	      hue: [30, 50]   # optional per-particle hue
//	      ease: outQuad
//	      follow: false   # true positions particles relative to the emitter
//
// Bounce particles additionally accept bounds: {minx, miny, maxx, maxy}.
type Preset struct {
	Emitters []EmitterPreset `yaml:"emitters"`
}

// EmitterPreset describes one emitter and the particles it spawns.
type EmitterPreset struct {
	Name     string         `yaml:"name"`
	X        float64        `yaml:"x"`
	Y        float64        `yaml:"y"`
	Interval float64        `yaml:"interval"`
	Jitter   float64        `yaml:"jitter"`
	TTL      float64        `yaml:"ttl"`
	Count    int            `yaml:"count"`
	Particle ParticlePreset `yaml:"particle"`
}

// Particle kinds accepted by ParticlePreset.Kind.
const (
	KindFade   = "fade"
	KindBounce = "bounce"
)

// ParticlePreset is a randomized particle template. Every Range is sampled
// independently for each spawned particle.
type ParticlePreset struct {
	Kind     string  `yaml:"kind"`
	X        Range   `yaml:"x"`
	Y        Range   `yaml:"y"`
	DX       Range   `yaml:"dx"`
	DY       Range   `yaml:"dy"`
	Size     Range   `yaml:"size"`
	TTL      Range   `yaml:"ttl"`
	Color    string  `yaml:"color"`
	EndColor string  `yaml:"endColor"`
	Hue      *Range  `yaml:"hue"`
	Ease     string  `yaml:"ease"`
	Follow   bool    `yaml:"follow"`
	Bounds   *Bounds `yaml:"bounds"`

	color    *Color
	endColor *Color
	ease     ease.TweenFunc
}

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inSine":    ease.InSine,
	"outSine":   ease.OutSine,
	"inExpo":    ease.InExpo,
	"outExpo":   ease.OutExpo,
}

// LoadPreset parses and validates a YAML preset.
func LoadPreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if len(p.Emitters) == 0 {
		return nil, fmt.Errorf("parse preset: no emitters")
	}
	for i := range p.Emitters {
		if err := p.Emitters[i].compile(); err != nil {
			return nil, fmt.Errorf("parse preset: emitter %d (%s): %w", i, p.Emitters[i].Name, err)
		}
	}
	return &p, nil
}

// LoadPresetFile reads and parses a YAML preset from path.
func LoadPresetFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}
	return LoadPreset(data)
}

// Spawn creates one emitter per preset entry, registers each with sys and
// returns them in preset order.
func (p *Preset) Spawn(sys *System) []*Emitter {
	out := make([]*Emitter, 0, len(p.Emitters))
	for i := range p.Emitters {
		ep := &p.Emitters[i]
		e := NewEmitter(EmitterConfig{
			X:         ep.X,
			Y:         ep.Y,
			System:    sys,
			Generator: ep.Particle.generator(),
			Interval:  ep.Interval,
			Jitter:    ep.Jitter,
			TTL:       ep.TTL,
			Count:     ep.Count,
		})
		sys.Add(e)
		out = append(out, e)
	}
	return out
}

// compile validates the entry and resolves strings into colors and easings.
func (ep *EmitterPreset) compile() error {
	switch {
	case ep.Interval < 0:
		return fmt.Errorf("interval must not be negative, got %v", ep.Interval)
	case ep.Jitter < 0:
		return fmt.Errorf("jitter must not be negative, got %v", ep.Jitter)
	case ep.TTL < 0:
		return fmt.Errorf("ttl must not be negative, got %v", ep.TTL)
	case ep.Count < 0:
		return fmt.Errorf("count must not be negative, got %d", ep.Count)
	}
	return ep.Particle.compile()
}

func (pp *ParticlePreset) compile() error {
	switch pp.Kind {
	case "":
		pp.Kind = KindFade
	case KindFade, KindBounce:
	default:
		return fmt.Errorf("particle kind %q: want %q or %q", pp.Kind, KindFade, KindBounce)
	}
	if pp.Color != "" {
		c, err := ParseStyle(pp.Color)
		if err != nil {
			return fmt.Errorf("particle color: %w", err)
		}
		pp.color = &c
	}
	if pp.EndColor != "" {
		c, err := ParseStyle(pp.EndColor)
		if err != nil {
			return fmt.Errorf("particle endColor: %w", err)
		}
		pp.endColor = &c
	}
	if pp.Ease != "" {
		fn, ok := easings[pp.Ease]
		if !ok {
			return fmt.Errorf("particle ease %q: unknown easing", pp.Ease)
		}
		pp.ease = fn
	}
	return nil
}

// generator returns a GeneratorFunc that samples the template.
func (pp *ParticlePreset) generator() GeneratorFunc {
	return func(e *Emitter) Entity {
		x, y := pp.X.Random(), pp.Y.Random()
		var parent Anchor
		if pp.Follow {
			parent = e
		} else {
			x += e.X()
			y += e.Y()
		}

		var c *Color
		if pp.color != nil {
			cc := pp.color.Copy()
			if pp.Hue != nil {
				cc.SetH(pp.Hue.Random())
			}
			c = &cc
		}

		if pp.Kind == KindBounce {
			cfg := BounceConfig{
				X: x, Y: y, Parent: parent,
				DX: pp.DX.Random(), DY: pp.DY.Random(),
				Size:  pp.Size.Random(),
				Color: c,
			}
			if pp.Bounds != nil {
				cfg.Bounds = *pp.Bounds
			}
			return NewBounceParticle(cfg)
		}
		return NewFadeParticle(FadeConfig{
			X: x, Y: y, Parent: parent,
			DX: pp.DX.Random(), DY: pp.DY.Random(),
			Size:     pp.Size.Random(),
			Color:    c,
			EndColor: pp.endColor,
			TTL:      pp.TTL.Random(),
			Ease:     pp.ease,
		})
	}
}

// UnmarshalYAML accepts either a single number (Min == Max) or a two-element
// [min, max] sequence.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := value.Decode(&v); err != nil {
			return err
		}
		*r = Range{Min: v, Max: v}
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := value.Decode(&vs); err != nil {
			return err
		}
		if len(vs) != 2 {
			return fmt.Errorf("line %d: range needs [min, max], got %d values", value.Line, len(vs))
		}
		*r = Range{Min: vs[0], Max: vs[1]}
		return nil
	default:
		return errors.New("range must be a number or [min, max]")
	}
}

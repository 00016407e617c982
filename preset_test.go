package sparkle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fountainPreset = `
emitters:
  - name: sparks
    x: 320
    y: 400
    interval: 40
    jitter: 0.25
    count: 3
    particle:
      kind: fade
      dx: [-80, 80]
      dy: [-200, -120]
      size: [2, 4]
      ttl: [600, 1200]
      color: "hsla(40,100%,60%,1)"
      endColor: "hsla(0,100%,40%,1)"
      hue: [30, 50]
      ease: outQuad
  - name: balls
    x: 100
    y: 100
    interval: 1000
    ttl: 5000
    particle:
      kind: bounce
      dx: 120
      dy: -90
      color: "rgb(0,128,255)"
      follow: true
      bounds: {minx: 0, miny: 0, maxx: 640, maxy: 480}
`

func TestLoadPreset(t *testing.T) {
	p, err := LoadPreset([]byte(fountainPreset))
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if len(p.Emitters) != 2 {
		t.Fatalf("emitters = %d, want 2", len(p.Emitters))
	}

	sparks := p.Emitters[0]
	if sparks.Name != "sparks" || sparks.Count != 3 || sparks.Jitter != 0.25 {
		t.Errorf("sparks = %+v", sparks)
	}
	if sparks.Particle.DX != (Range{-80, 80}) {
		t.Errorf("dx = %v, want [-80, 80]", sparks.Particle.DX)
	}
	if sparks.Particle.Hue == nil || *sparks.Particle.Hue != (Range{30, 50}) {
		t.Errorf("hue = %v, want [30, 50]", sparks.Particle.Hue)
	}
	if sparks.Particle.color == nil || sparks.Particle.endColor == nil || sparks.Particle.ease == nil {
		t.Error("color, endColor and ease should be compiled")
	}

	balls := p.Emitters[1].Particle
	if balls.DX != (Range{120, 120}) {
		t.Errorf("scalar dx = %v, want {120 120}", balls.DX)
	}
	if balls.Bounds == nil || *balls.Bounds != (Bounds{0, 0, 640, 480}) {
		t.Errorf("bounds = %v", balls.Bounds)
	}
}

func TestLoadPresetDefaultsKind(t *testing.T) {
	p, err := LoadPreset([]byte("emitters:\n  - particle: {}\n"))
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if p.Emitters[0].Particle.Kind != KindFade {
		t.Errorf("kind = %q, want %q", p.Emitters[0].Particle.Kind, KindFade)
	}
}

func TestLoadPresetErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"not yaml", "emitters: [", "parse preset"},
		{"no emitters", "emitters: []", "no emitters"},
		{"bad kind", "emitters:\n  - particle: {kind: spiral}", `kind "spiral"`},
		{"bad color", "emitters:\n  - particle: {color: blue}", "particle color"},
		{"bad ease", "emitters:\n  - particle: {ease: wobble}", `ease "wobble"`},
		{"negative interval", "emitters:\n  - interval: -1", "interval"},
		{"negative count", "emitters:\n  - count: -2", "count"},
		{"range too long", "emitters:\n  - particle: {dx: [1, 2, 3]}", "range needs [min, max]"},
		{"range map", "emitters:\n  - particle: {dx: {a: 1}}", "range must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPreset([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadPresetInvalidColorWrapsErrInvalidStyle(t *testing.T) {
	_, err := LoadPreset([]byte("emitters:\n  - name: x\n    particle: {color: nope}"))
	if !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("error = %v, want ErrInvalidStyle in chain", err)
	}
	if !strings.Contains(err.Error(), "emitter 0 (x)") {
		t.Errorf("error = %q, want emitter index and name", err)
	}
}

func TestLoadPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fountain.yaml")
	if err := os.WriteFile(path, []byte(fountainPreset), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPresetFile(path)
	if err != nil {
		t.Fatalf("LoadPresetFile: %v", err)
	}
	if len(p.Emitters) != 2 {
		t.Errorf("emitters = %d, want 2", len(p.Emitters))
	}

	if _, err := LoadPresetFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestPresetSpawn(t *testing.T) {
	p, err := LoadPreset([]byte(fountainPreset))
	if err != nil {
		t.Fatal(err)
	}
	sys := newTestSystem()
	emitters := p.Spawn(sys)
	if len(emitters) != 2 || sys.Len() != 2 {
		t.Fatalf("spawned %d emitters, system tracks %d; want 2 and 2", len(emitters), sys.Len())
	}
	if emitters[0].System() != sys {
		t.Error("emitters should target the given system")
	}

	sys.Update(Frame{DeltaTime: 16})
	// Both emitters fire on their first update: 3 sparks + 1 ball.
	if sys.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", sys.Len())
	}

	var fades, bounces int
	for _, e := range sys.Items() {
		switch p := e.(type) {
		case *FadeParticle:
			fades++
			if h := p.Color().H(); h < 29 || h > 51 {
				t.Errorf("spark hue = %v, want about [30, 50]", h)
			}
			if ttl := p.TTL(); ttl < 600 || ttl > 1200 {
				t.Errorf("spark ttl = %v, want within [600, 1200]", ttl)
			}
			if p.Parent() != nil {
				t.Error("spark should not follow its emitter")
			}
			if !approxEqual(p.X(), 320, 1e-9) || !approxEqual(p.Y(), 400, 1e-9) {
				t.Errorf("spark at (%v,%v), want emitter position (320,400)", p.X(), p.Y())
			}
		case *BounceParticle:
			bounces++
			if p.Parent() != Anchor(emitters[1]) {
				t.Error("ball should follow its emitter")
			}
			if p.bounds.MaxX != 640 {
				t.Errorf("ball bounds = %+v", p.bounds)
			}
			if p.Color().B() != 255 {
				t.Errorf("ball color = %v", p.Color())
			}
		}
	}
	if fades != 3 || bounces != 1 {
		t.Errorf("fades=%d bounces=%d, want 3 and 1", fades, bounces)
	}
}

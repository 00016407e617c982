// Package sparkle is a small immediate-mode particle system for 2D drawing
// surfaces, with an [Ebitengine] backend.
//
// A [System] tracks entities, advances them once per frame and drops the
// ones that report done. [BounceParticle] is a circle that bounces inside a
// box and [FadeParticle] drifts while fading out; an [Emitter] spawns new
// entities on a jittered schedule. Any particle can be positioned relative
// to another, so an emitter can ride on a moving particle and its spawn can
// follow it.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	sys := sparkle.Instance()
//	sys.Add(sparkle.NewEmitter(sparkle.EmitterConfig{
//		X: 320, Y: 240,
//		Generator: func(e *sparkle.Emitter) sparkle.Entity {
//			return sparkle.NewFadeParticle(sparkle.FadeConfig{X: e.X(), Y: e.Y(), DY: -60})
//		},
//	}))
//	sparkle.Run(sys, sparkle.RunConfig{Title: "Sparks", Width: 640, Height: 480})
//
// For full control, drive the system from your own [ebiten.Game] and draw
// through an [EbitenSurface]:
//
//	func (g *Game) Update() error {
//		g.sys.Update(sparkle.Frame{DeltaTime: 1000 / float64(ebiten.TPS())})
//		return nil
//	}
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.surface.Reset(screen)
//		g.sys.Render(g.surface)
//	}
//
// # Surfaces
//
// Particles draw through the [Surface] interface, a canvas-style API of
// Save, Restore, BeginPath, Arc, SetFillStyle and Fill. Fill styles are the
// rgba()/hsla() strings produced by [Color]. [EbitenSurface] fills vector
// paths on an ebiten image; the term subpackage renders into a terminal with
// tcell.
//
// # Time
//
// All durations are milliseconds, including [Frame.DeltaTime] and every
// interval or lifetime. Particle velocities are configured in pixels
// per second.
//
// # Presets
//
// Emitters can be described in YAML and loaded with [LoadPreset] or
// [LoadPresetFile]; [Preset.Spawn] adds them to a system.
//
// # Default system
//
// [Instance] and [Establish] manage a process-wide default system. Emitters
// created without [EmitterConfig.System] emit into it. Code that wants
// isolation creates its own systems with [NewSystem].
//
// # Lifecycle events
//
// A [SystemConfig.Observer] is told about every add, remove and prune. The
// ecs subpackage forwards these into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package sparkle

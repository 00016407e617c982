package sparkle

const (
	defaultEmitInterval = 500.0
	minTimeToEmit       = 1.0
)

// GeneratorFunc produces a new entity for an emitter, or nil to skip. It
// receives the emitting emitter, typically to use it as the new particle's
// parent or to read its position.
type GeneratorFunc func(e *Emitter) Entity

// EmitterConfig controls when and how an Emitter spawns entities.
type EmitterConfig struct {
	// X and Y are the emitter's position, relative to Parent if set.
	X, Y float64
	// Parent positions the emitter relative to another anchor.
	Parent Anchor
	// System receives emitted entities. Defaults to Instance().
	System *System
	// Generator creates each emitted entity. Without one, emission is a no-op.
	Generator GeneratorFunc
	// Interval is the time between emissions in milliseconds. Defaults to 500.
	Interval float64
	// Jitter randomizes each interval by up to ±Jitter×Interval.
	// 0 disables jitter; 1 gives intervals between 0 and 2×Interval.
	Jitter float64
	// TTL is the emitter lifetime in milliseconds. 0 means no limit.
	TTL float64
	// Count is the number of generator calls per emission. Defaults to 1.
	Count int
}

// Emitter is a particle that spawns other entities on a jittered schedule.
// It emits once on its first update, then every Interval (± jitter) until its
// TTL, if any, expires. An expired emitter marks itself done and stops
// emitting; removal is left to the System.
type Emitter struct {
	Particle

	system    *System
	generator GeneratorFunc
	interval  float64
	jitter    float64
	ttl       float64
	count     int
	tte       float64 // time to next emission
	emitted   bool
}

// NewEmitter creates an emitter from cfg, applying defaults for zero fields.
func NewEmitter(cfg EmitterConfig) *Emitter {
	e := &Emitter{
		Particle:  newParticle(cfg.X, cfg.Y, cfg.Parent),
		system:    cfg.System,
		generator: cfg.Generator,
		interval:  cfg.Interval,
		jitter:    cfg.Jitter,
		ttl:       cfg.TTL,
		count:     cfg.Count,
	}
	if e.system == nil {
		e.system = Instance()
	}
	if e.interval <= 0 {
		e.interval = defaultEmitInterval
	}
	if e.count <= 0 {
		e.count = 1
	}
	e.nextTTE()
	return e
}

// nextTTE computes a new time to emit from the interval and jitter.
func (e *Emitter) nextTTE() {
	e.tte = e.interval
	if e.jitter != 0 {
		e.tte += Range{-1, 1}.Random() * e.jitter * e.interval
	}
	if e.tte < minTimeToEmit {
		e.tte = minTimeToEmit
	}
}

// Emit runs the generator Count times and adds every non-nil result to the
// emitter's system.
func (e *Emitter) Emit() {
	if e.generator == nil {
		return
	}
	for i := 0; i < e.count; i++ {
		if p := e.generator(e); p != nil {
			e.system.Add(p)
		}
	}
}

// Update advances the emission schedule by f.DeltaTime.
//
// The first call emits immediately, even if the emitter was already marked
// done; the countdown to the next emission starts with the following call.
// The lifetime, if set, counts from the first call, and the tick on which it
// runs out emits nothing.
func (e *Emitter) Update(f Frame) {
	dt := f.DeltaTime
	if !e.emitted {
		e.emitted = true
		e.Emit()
		if !e.done {
			e.expire(dt)
		}
		return
	}
	if e.done || e.expire(dt) {
		return
	}
	e.tte -= dt
	if e.tte <= 0 {
		e.Emit()
		e.nextTTE()
	}
}

// expire consumes dt from a finite lifetime and reports whether the emitter
// is now done.
func (e *Emitter) expire(dt float64) bool {
	if e.ttl == 0 {
		return false
	}
	e.ttl -= dt
	if e.ttl <= 0 {
		e.done = true
	}
	return e.done
}

// Start makes the emitter active again after Stop.
func (e *Emitter) Start() {
	e.active = true
}

// Stop deactivates the emitter. A System skips inactive entities, and
// particles parented to the emitter become inactive with it.
func (e *Emitter) Stop() {
	e.active = false
}

// TimeToEmit returns the milliseconds remaining until the next emission.
func (e *Emitter) TimeToEmit() float64 {
	return e.tte
}

// TTL returns the remaining lifetime in milliseconds, or 0 if unlimited.
func (e *Emitter) TTL() float64 {
	return e.ttl
}

// System returns the system that receives emitted entities.
func (e *Emitter) System() *System {
	return e.system
}

package sparkle

import "testing"

// countingGen returns a generator that adds counters and records how many
// times it ran.
func countingGen(n *int) GeneratorFunc {
	return func(*Emitter) Entity {
		*n++
		return &counter{}
	}
}

func TestEmitterDefaults(t *testing.T) {
	e := NewEmitter(EmitterConfig{System: newTestSystem()})
	assertNear(t, "TimeToEmit", e.TimeToEmit(), defaultEmitInterval)
	assertNear(t, "TTL", e.TTL(), 0)
	if e.count != 1 {
		t.Errorf("count = %d, want 1", e.count)
	}
	if !e.Active() || e.Done() {
		t.Error("new emitter should be active and not done")
	}
}

func TestEmitterFallsBackToInstance(t *testing.T) {
	resetInstance()
	t.Cleanup(resetInstance)

	e := NewEmitter(EmitterConfig{})
	if e.System() != Instance() {
		t.Error("emitter without a System should use Instance()")
	}
}

func TestEmitterFirstUpdateEmits(t *testing.T) {
	sys := newTestSystem()
	n := 0
	e := NewEmitter(EmitterConfig{System: sys, Generator: countingGen(&n), Count: 3})

	e.Update(Frame{DeltaTime: 16})
	if n != 3 {
		t.Fatalf("generator calls = %d, want 3", n)
	}
	if sys.Len() != 3 {
		t.Errorf("sys.Len() = %d, want 3", sys.Len())
	}
	assertNear(t, "TimeToEmit after first update", e.TimeToEmit(), 500)
}

func TestEmitterSchedule(t *testing.T) {
	sys := newTestSystem()
	n := 0
	e := NewEmitter(EmitterConfig{System: sys, Generator: countingGen(&n)})

	e.Update(Frame{DeltaTime: 100}) // first emission
	for range 4 {
		e.Update(Frame{DeltaTime: 100})
	}
	// 400ms of countdown.
	if n != 1 {
		t.Fatalf("emissions after 400ms = %d, want 1", n)
	}
	e.Update(Frame{DeltaTime: 100}) // 500ms
	if n != 2 {
		t.Fatalf("emissions after 500ms = %d, want 2", n)
	}
	assertNear(t, "TimeToEmit reset", e.TimeToEmit(), 500)

	for range 5 {
		e.Update(Frame{DeltaTime: 100})
	}
	if n != 3 {
		t.Errorf("emissions after 1000ms = %d, want 3", n)
	}
}

func TestEmitterLargeStepEmitsOnce(t *testing.T) {
	sys := newTestSystem()
	n := 0
	e := NewEmitter(EmitterConfig{System: sys, Generator: countingGen(&n)})
	e.Update(Frame{DeltaTime: 16})
	e.Update(Frame{DeltaTime: 5000})
	if n != 2 {
		t.Errorf("emissions = %d, want 2 (no catch-up)", n)
	}
}

func TestEmitterJitterBounds(t *testing.T) {
	e := NewEmitter(EmitterConfig{System: newTestSystem(), Interval: 500, Jitter: 0.2})
	for range 1000 {
		e.nextTTE()
		if tte := e.TimeToEmit(); tte < 400 || tte > 600 {
			t.Fatalf("TimeToEmit = %v, outside [400, 600]", tte)
		}
	}
}

func TestEmitterJitterFloor(t *testing.T) {
	e := NewEmitter(EmitterConfig{System: newTestSystem(), Interval: 10, Jitter: 5})
	for range 1000 {
		e.nextTTE()
		if e.TimeToEmit() < minTimeToEmit {
			t.Fatalf("TimeToEmit = %v, below %v", e.TimeToEmit(), minTimeToEmit)
		}
	}
}

func TestEmitterDoneStillEmitsOnFirstUpdate(t *testing.T) {
	sys := newTestSystem()
	n := 0
	e := NewEmitter(EmitterConfig{System: sys, Generator: countingGen(&n), Interval: 10})
	e.SetDone(true)

	e.Update(Frame{DeltaTime: 16})
	if n != 1 {
		t.Fatalf("emissions after first update = %d, want 1", n)
	}
	e.Update(Frame{DeltaTime: 16})
	e.Update(Frame{DeltaTime: 16})
	if n != 1 {
		t.Errorf("emissions after done = %d, want 1", n)
	}
	if !e.Done() {
		t.Error("emitter should stay done")
	}
}

func TestEmitterTTL(t *testing.T) {
	sys := newTestSystem()
	n := 0
	e := NewEmitter(EmitterConfig{System: sys, Generator: countingGen(&n), Interval: 100, TTL: 250})

	e.Update(Frame{DeltaTime: 50}) // emits, ttl 200
	if n != 1 || e.Done() {
		t.Fatalf("after first update: emissions=%d done=%v", n, e.Done())
	}
	e.Update(Frame{DeltaTime: 100}) // ttl 100, tte 0 -> emits
	if n != 2 {
		t.Fatalf("emissions = %d, want 2", n)
	}
	// ttl reaches 0 on this tick; tte would also reach 0 but nothing is emitted.
	e.Update(Frame{DeltaTime: 100})
	if !e.Done() {
		t.Fatal("emitter should be done once ttl runs out")
	}
	if n != 2 {
		t.Errorf("emissions = %d, want 2 (no emission on the expiring tick)", n)
	}
	e.Update(Frame{DeltaTime: 1000})
	if n != 2 {
		t.Errorf("done emitter emitted again, emissions = %d", n)
	}
}

func TestEmitterPrunedWhenDone(t *testing.T) {
	sys := newTestSystem()
	e := NewEmitter(EmitterConfig{System: sys, TTL: 100})
	sys.Add(e)
	sys.Update(Frame{DeltaTime: 60})
	if sys.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", sys.Len())
	}
	sys.Update(Frame{DeltaTime: 60})
	if sys.Len() != 0 {
		t.Errorf("expired emitter should be pruned, Len() = %d", sys.Len())
	}
}

func TestEmitterNilGenerator(t *testing.T) {
	sys := newTestSystem()
	e := NewEmitter(EmitterConfig{System: sys})
	e.Emit()
	e.Update(Frame{DeltaTime: 16})
	if sys.Len() != 0 {
		t.Errorf("sys.Len() = %d, want 0", sys.Len())
	}
}

func TestEmitterGeneratorMayReturnNil(t *testing.T) {
	sys := newTestSystem()
	calls := 0
	e := NewEmitter(EmitterConfig{
		System: sys,
		Count:  4,
		Generator: func(*Emitter) Entity {
			calls++
			if calls%2 == 0 {
				return nil
			}
			return &counter{}
		},
	})
	e.Emit()
	if sys.Len() != 2 {
		t.Errorf("sys.Len() = %d, want 2", sys.Len())
	}
}

func TestEmitterSpawnedUpdatedNextFrame(t *testing.T) {
	sys := newTestSystem()
	var spawned []*counter
	e := NewEmitter(EmitterConfig{
		System: sys,
		Generator: func(*Emitter) Entity {
			c := &counter{}
			spawned = append(spawned, c)
			return c
		},
	})
	sys.Add(e)

	sys.Update(Frame{DeltaTime: 16})
	if len(spawned) != 1 || spawned[0].updates != 0 {
		t.Fatalf("spawned particle should wait for the next frame")
	}
	sys.Update(Frame{DeltaTime: 16})
	if spawned[0].updates != 1 {
		t.Errorf("spawned[0].updates = %d, want 1", spawned[0].updates)
	}
}

func TestEmitterStopStart(t *testing.T) {
	sys := newTestSystem()
	n := 0
	e := NewEmitter(EmitterConfig{System: sys, Generator: countingGen(&n)})
	child := NewFadeParticle(FadeConfig{Parent: e})
	sys.Add(e)

	e.Stop()
	sys.Update(Frame{DeltaTime: 16})
	if n != 0 {
		t.Errorf("stopped emitter emitted %d times", n)
	}
	if child.Active() {
		t.Error("child of a stopped emitter should be inactive")
	}

	e.Start()
	sys.Update(Frame{DeltaTime: 16})
	if n != 1 {
		t.Errorf("restarted emitter emissions = %d, want 1", n)
	}
	if !child.Active() {
		t.Error("child should be active again")
	}
}

func TestEmitterAsParent(t *testing.T) {
	sys := newTestSystem()
	var last *FadeParticle
	e := NewEmitter(EmitterConfig{
		X: 100, Y: 200,
		System: sys,
		Generator: func(e *Emitter) Entity {
			last = NewFadeParticle(FadeConfig{X: 3, Y: 4, Parent: e})
			return last
		},
	})
	e.Update(Frame{DeltaTime: 16})
	assertNear(t, "X", last.X(), 103)
	assertNear(t, "Y", last.Y(), 204)

	e.SetX(0)
	assertNear(t, "X after emitter moved", last.X(), 3)
}

func BenchmarkEmitterUpdate(b *testing.B) {
	sys := newTestSystem()
	e := NewEmitter(EmitterConfig{
		System:    sys,
		Interval:  1,
		Generator: func(*Emitter) Entity { return nil },
	})
	f := Frame{DeltaTime: 16}
	b.ReportAllocs()
	for b.Loop() {
		e.Update(f)
	}
}

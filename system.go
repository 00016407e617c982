package sparkle

import (
	"slices"
	"sync"
)

// Observer is the interface for optional lifecycle integration.
// When set on a System, membership changes are forwarded to it.
type Observer interface {
	EmitEvent(event LifecycleEvent)
}

// EventType identifies a kind of lifecycle event.
type EventType uint8

const (
	EventAdded   EventType = iota // entity started being tracked via Add
	EventRemoved                  // entity was removed via Remove
	EventPruned                   // entity reported done during Update and was dropped
)

// LifecycleEvent carries a membership change for the Observer bridge.
type LifecycleEvent struct {
	Type   EventType
	Entity Entity
	// Tracked is the number of tracked entities after the change.
	Tracked int
}

// SystemConfig holds System options. The zero value is valid.
type SystemConfig struct {
	// Debug enables a once-per-second diagnostic line with the number of
	// tracked and inactive entities.
	Debug bool
	// Visible decides at render time whether an entity is drawn. It never
	// affects update or removal. Defaults to always visible.
	Visible func(Entity) bool
	// Logger receives debug output. Defaults to StderrLogger.
	Logger Logger
	// Observer, if set, is told about every Add, Remove and prune.
	Observer Observer
}

// Stats reports counts from the most recent Update.
type Stats struct {
	Tracked  int
	Inactive int
}

const (
	defaultEntityCap = 256
	debugInterval    = 1000.0 // ms between debug lines
)

// System is the top-level object that owns the tracked entities and drives
// their per-frame update and render.
//
// Any number of systems can be created with NewSystem and handed to emitters
// through EmitterConfig.System. Instance and Establish manage a process-wide
// default for code that does not pass one explicitly.
type System struct {
	items    []Entity
	debug    bool
	visible  func(Entity) bool
	logger   Logger
	observer Observer

	debugTimer float64
	stats      Stats
}

// NewSystem creates an empty system configured by cfg.
func NewSystem(cfg SystemConfig) *System {
	s := &System{
		items:    make([]Entity, 0, defaultEntityCap),
		debug:    cfg.Debug,
		visible:  cfg.Visible,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}
	if s.visible == nil {
		s.visible = func(Entity) bool { return true }
	}
	if s.logger == nil {
		s.logger = StderrLogger
	}
	return s
}

var (
	instanceMu sync.Mutex
	instance   *System
)

// Instance returns the process-wide system, creating it with default options
// on first use.
func Instance() *System {
	return Establish(SystemConfig{})
}

// Establish returns the process-wide system, creating it from cfg if it does
// not exist yet. An existing instance is returned unchanged: its entities and
// options are kept and cfg is ignored.
func Establish(cfg SystemConfig) *System {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		instance = NewSystem(cfg)
	}
	return instance
}

// Add starts tracking e.
func (s *System) Add(e Entity) {
	s.items = append(s.items, e)
	s.emit(EventAdded, e)
}

// Remove stops tracking the first entity identical to e. Removing an entity
// that is not tracked does nothing.
func (s *System) Remove(e Entity) {
	idx := slices.Index(s.items, e)
	if idx < 0 {
		return
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	s.emit(EventRemoved, e)
}

// Clear stops tracking every entity. No events are emitted.
func (s *System) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Len returns the number of tracked entities.
func (s *System) Len() int {
	return len(s.items)
}

// Items returns the tracked entities in insertion order. The returned slice
// MUST NOT be mutated and is only valid until the next Add, Remove or Update.
func (s *System) Items() []Entity {
	return s.items
}

// Stats returns the counts gathered by the most recent Update.
func (s *System) Stats() Stats {
	return s.stats
}

// Update advances every active entity by one frame and prunes the ones that
// report done.
//
// Entities are visited from last to first. Entities added during the pass,
// such as particles spawned by an emitter, land past the current index and
// are first updated on the next frame; removing at the current index never
// shifts an entity that has yet to be visited.
func (s *System) Update(f Frame) {
	inactive := 0
	for i := len(s.items) - 1; i >= 0; i-- {
		if i >= len(s.items) {
			continue
		}
		item := s.items[i]
		if !item.Active() {
			inactive++
			continue
		}
		item.Update(f)
		j := s.indexAfterUpdate(i, item)
		if j < 0 {
			continue
		}
		i = j
		if item.Done() {
			s.items = slices.Delete(s.items, i, i+1)
			s.emit(EventPruned, item)
		}
	}
	s.stats = Stats{Tracked: len(s.items), Inactive: inactive}

	if s.debug {
		s.debugTimer += f.DeltaTime
		if s.debugTimer > debugInterval {
			s.debugTimer = 0
			s.debugLog(s.stats)
		}
	}
}

// indexAfterUpdate returns where item sits now that its update has run, or
// -1 if the update removed it. Updates may remove entities, so i is only
// the first place to look.
func (s *System) indexAfterUpdate(i int, item Entity) int {
	if i < len(s.items) && s.items[i] == item {
		return i
	}
	return slices.Index(s.items, item)
}

// Render draws every tracked entity that implements Renderer, passes the
// visibility predicate and is active, in insertion order. The surface state
// is saved before the pass and restored after it, even if an entity's Render
// panics.
func (s *System) Render(surface Surface) {
	surface.Save()
	defer surface.Restore()

	for _, item := range s.items {
		r, ok := item.(Renderer)
		if !ok || !s.visible(item) || !item.Active() {
			continue
		}
		r.Render(surface)
	}
}

// SetDebugMode enables or disables the once-per-second diagnostic line.
func (s *System) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.debugTimer = 0
}

// SetObserver sets the optional lifecycle bridge.
func (s *System) SetObserver(o Observer) {
	s.observer = o
}

func (s *System) emit(t EventType, e Entity) {
	if s.observer == nil {
		return
	}
	s.observer.EmitEvent(LifecycleEvent{Type: t, Entity: e, Tracked: len(s.items)})
}

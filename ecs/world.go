package ecs

import "github.com/milk9111/bossarena/ecs/component"

// World owns entities, their component stores and a deferred event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Clear destroys every entity and drops pending events. Component handles stay
// valid.
func (w *World) Clear() {
	if w == nil {
		return
	}
	w.entities.reset()
	for _, s := range w.stores {
		s.Clear()
	}
	w.events.Drain()
}

func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and recycles its slot. It returns
// false when e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(int(e.id()))
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns a snapshot of every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.alive {
		if e, ok := w.entities.handle(i + 1); ok {
			out = append(out, e)
		}
	}
	return out
}

// Stats counts live components per component type name. Empty stores are
// omitted.
func Stats(w *World) map[string]int {
	out := make(map[string]int)
	if w == nil {
		return out
	}
	for id, s := range w.stores {
		if n := s.Len(); n > 0 {
			out[component.NameOf(id)] = n
		}
	}
	return out
}

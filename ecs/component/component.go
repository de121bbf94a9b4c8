package component

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var (
	nextComponentID atomic.Uint32
	componentNames  sync.Map // ComponentID -> string
)

// ComponentKind identifies the store for values of type T.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind allocates a fresh id and records T's name for debugging.
func NewComponentKind[T any]() ComponentKind[T] {
	id := ComponentID(nextComponentID.Add(1))
	componentNames.Store(id, reflect.TypeFor[T]().Name())
	return ComponentKind[T]{id: id}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

func (k ComponentKind[T]) String() string { return NameOf(k.id) }

// NameOf returns the type name registered for id, or "" if none.
func NameOf(id ComponentID) string {
	name, ok := componentNames.Load(id)
	if !ok {
		return ""
	}
	return name.(string)
}

// ComponentHandle is what component files export, one per type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }

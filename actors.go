package cloudfx

import (
	"iter"

	"codeberg.org/anaseto/gruid"
)

// ActorID represents an actor handle. Valid handles start from 0. Handles
// stay stable for the lifetime of the arena: dead actors keep theirs.
type ActorID int32

// NoActor is the handle of no actor at all (environmental effects).
const NoActor ActorID = -1

// Actor holds the information effects need about a creature.
type Actor struct {
	Name    string
	P       gruid.Point
	Player  bool // whether this is the player
	HD      int  // hit dice, scales monster spell power
	Dead    bool
	NoSmell bool // cannot smell (senses decay otherwise)
}

// IsAlive reports whether the actor is alive.
func (a *Actor) IsAlive() bool {
	return !a.Dead
}

// Actors is an arena of actors keyed by stable handles.
type Actors struct {
	list []*Actor
}

// Add adds an actor and returns its handle.
func (as *Actors) Add(a *Actor) ActorID {
	as.list = append(as.list, a)
	return ActorID(len(as.list) - 1)
}

// Get returns the actor with the given handle. It reports false for
// invalid handles, including NoActor.
func (as *Actors) Get(id ActorID) (*Actor, bool) {
	if id < 0 || int(id) >= len(as.list) || as.list[id] == nil {
		return nil, false
	}
	return as.list[id], true
}

// All returns an iterator over all actors.
func (as *Actors) All() iter.Seq2[ActorID, *Actor] {
	return func(yield func(ActorID, *Actor) bool) {
		for i, a := range as.list {
			if a != nil && !yield(ActorID(i), a) {
				return
			}
		}
	}
}

// Len returns the number of handles given out.
func (as *Actors) Len() int {
	return len(as.list)
}

// AddActor places a new actor in the world and returns its handle.
func (w *World) AddActor(a *Actor) ActorID {
	return w.Actors.Add(a)
}

// Actor returns the actor with the given handle.
func (w *World) Actor(id ActorID) (*Actor, bool) {
	return w.Actors.Get(id)
}

// ActorAt returns the living actor at a given position, if any, or NoActor
// and nil.
func (w *World) ActorAt(p gruid.Point) (ActorID, *Actor) {
	for i, a := range w.Actors.All() {
		if a.IsAlive() && a.P == p {
			return i, a
		}
	}
	return NoActor, nil
}

// Player returns the living player actor, if any.
func (w *World) Player() (ActorID, *Actor) {
	for i, a := range w.Actors.All() {
		if a.Player && a.IsAlive() {
			return i, a
		}
	}
	return NoActor, nil
}

// IsPlayer reports whether id is the player's handle.
func (w *World) IsPlayer(id ActorID) bool {
	a, ok := w.Actor(id)
	return ok && a.Player
}

package cloudfx

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// AreaCloud describes one area cloud invocation.
type AreaCloud struct {
	Kind       CloudKind
	Agent      ActorID // actor the clouds are attributed to, or NoActor
	Pow        int     // effect power, drives durations
	Size       int     // placement budget
	Radius     int     // maximum distance from the origin (flood: defaults to Size)
	SpreadRate int
	Exclusion  int // exclusion radius, -1 for none
}

// CloudFunc places clouds at a given position and returns how many were
// placed, normally 0 or 1.
type CloudFunc func(w *World, p gruid.Point, ac AreaCloud) int

// NormalCloud is the standard CloudFunc: it places a cloud of the invocation
// kind whose duration grows with power.
func NormalCloud(w *World, p gruid.Point, ac AreaCloud) int {
	dur := 3 + w.IntN(ac.Pow/4) + w.IntN(ac.Pow/4) + w.IntN(ac.Pow/4)
	cl := Cloud{
		Kind:       ac.Kind,
		P:          p,
		Duration:   dur,
		Source:     ac.Agent,
		SpreadRate: ac.SpreadRate,
		Exclusion:  ac.Exclusion,
	}
	if w.PlaceCloud(cl) {
		return 1
	}
	return 0
}

// placeable reports whether the engine may call a CloudFunc at p.
func (w *World) placeable(p gruid.Point) bool {
	return w.InBounds(p) && !w.Solid(p)
}

// floodPath implements paths.Pather for cloud floods: clouds spread through
// any non-solid cell.
type floodPath struct {
	w   *World
	nbs paths.Neighbors
}

func (fp *floodPath) Neighbors(p gruid.Point) []gruid.Point {
	return fp.nbs.All(p, fp.w.placeable)
}

// ApplyAreaCloud makes an area of clouds centered on where. The origin is
// tried first, and may be a place no cloud can be placed on. Then clouds
// flood outward through non-solid cells, nearest first, until ac.Size
// clouds have been placed or no cell within ac.Radius remains. With a
// non-positive size, only the origin is tried. It returns the number of
// clouds placed.
func (w *World) ApplyAreaCloud(fn CloudFunc, where gruid.Point, ac AreaCloud) int {
	if !w.InBounds(where) {
		return 0
	}
	budget := ac.Size
	placed := 0
	if w.placeable(where) {
		n := fn(w, where, ac)
		placed += n
		budget -= n
	}
	if ac.Size <= 0 || budget <= 0 {
		return placed
	}
	radius := ac.Radius
	if radius <= 0 {
		radius = ac.Size
	}
	fp := &floodPath{w: w}
	for _, n := range w.PR.BreadthFirstMap(fp, []gruid.Point{where}, radius) {
		if budget <= 0 {
			break
		}
		if n.P == where || !w.placeable(n.P) {
			continue
		}
		k := fn(w, n.P, ac)
		placed += k
		budget -= k
	}
	return placed
}

// ApplyAreaShells spends a budget of ac.Size placements around center: the
// adjacent cells first, then shells at increasing distance up to ac.Radius.
// With a non-positive radius, only the center is tried. It returns the
// number of clouds placed.
func (w *World) ApplyAreaShells(fn CloudFunc, center gruid.Point, ac AreaCloud) int {
	budget := ac.Size
	if budget <= 0 {
		return 0
	}
	if ac.Radius <= 0 {
		if w.placeable(center) {
			return fn(w, center, ac)
		}
		return 0
	}
	placed := 0
	try := func(p gruid.Point) bool {
		if !w.placeable(p) {
			return true
		}
		k := fn(w, p, ac)
		placed += k
		budget -= k
		return budget > 0
	}
	for p := range Adjacent(w, center) {
		if !try(p) {
			return placed
		}
	}
	for p := range Shells(w, center, ac.Radius, true) {
		if paths.DistanceChebyshev(p, center) <= 1 {
			// already visited
			continue
		}
		if !try(p) {
			return placed
		}
	}
	return placed
}

// BigCloud makes a large area of clouds centered on a given place, with
// size clouds at most. This never creates exclusions. The starting point
// may be a place no cloud can be placed on.
func (w *World) BigCloud(kind CloudKind, agent ActorID, where gruid.Point, pow, size, spreadRate int) int {
	return w.ApplyAreaCloud(NormalCloud, where, AreaCloud{
		Kind:       kind,
		Agent:      agent,
		Pow:        pow,
		Size:       size,
		SpreadRate: spreadRate,
		Exclusion:  -1,
	})
}

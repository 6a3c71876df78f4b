package cloudfx

import (
	"iter"
	"slices"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"
)

// Adjacent returns an iterator over the in-bounds 8-neighbors of p, in
// row-major order.
func Adjacent(w *World, p gruid.Point) iter.Seq[gruid.Point] {
	return func(yield func(gruid.Point) bool) {
		for y := -1; y <= 1; y++ {
			for x := -1; x <= 1; x++ {
				if x == 0 && y == 0 {
					continue
				}
				q := p.Shift(x, y)
				if w.InBounds(q) && !yield(q) {
					return
				}
			}
		}
	}
}

// Shells returns an iterator over in-bounds positions by increasing
// Chebyshev distance from center, up to radius. Positions within a shell
// come in row-major order.
func Shells(w *World, center gruid.Point, radius int, excludeCenter bool) iter.Seq[gruid.Point] {
	return func(yield func(gruid.Point) bool) {
		if !excludeCenter && w.InBounds(center) && !yield(center) {
			return
		}
		for d := 1; d <= radius; d++ {
			for y := -d; y <= d; y++ {
				for x := -d; x <= d; x++ {
					if x != -d && x != d && y != -d && y != d {
						// interior of the shell
						continue
					}
					q := center.Shift(x, y)
					if w.InBounds(q) && !yield(q) {
						return
					}
				}
			}
		}
	}
}

// LOS returns the positions in line of sight of center within radius.
// Translucent walls block sight. The center is always included when in
// bounds.
func (w *World) LOS(center gruid.Point, radius int) []gruid.Point {
	if !w.InBounds(center) {
		return nil
	}
	rg := gruid.NewRange(-radius, -radius, radius+1, radius+1)
	w.FOV.SetRange(rg.Add(center).Intersect(w.Map.Terrain.Range()))
	passable := func(p gruid.Point) bool {
		return !BlocksLOS(w.Map.Terrain.At(p))
	}
	// The returned slice is reused by the next FOV computation.
	ps := slices.Clone(w.FOV.SSCVisionMap(center, radius, passable, false))
	if !slices.Contains(ps, center) {
		ps = append([]gruid.Point{center}, ps...)
	}
	return ps
}

// RadiusLOS returns an iterator over the line of sight disk of center.
func RadiusLOS(w *World, center gruid.Point, radius int) iter.Seq[gruid.Point] {
	return func(yield func(gruid.Point) bool) {
		for _, p := range w.LOS(center, radius) {
			if !yield(p) {
				return
			}
		}
	}
}

// PlayerLOS returns the set of cells the player can see. It is empty when
// there is no living player.
func (w *World) PlayerLOS() mapset.Set[gruid.Point] {
	seen := mapset.New[gruid.Point]()
	_, pa := w.Player()
	if pa == nil {
		return seen
	}
	for _, p := range w.LOS(pa.P, w.Config.LOSRadius) {
		seen.Put(p)
	}
	return seen
}

// SeeCell reports whether the player can see p.
func (w *World) SeeCell(p gruid.Point) bool {
	return w.PlayerLOS().Has(p)
}

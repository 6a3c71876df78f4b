// This file contains map-related code.

package cloudfx

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"
)

// These constants represent the different kind of map tiles.
const (
	Wall            rl.Cell = iota // obstructing and blocks vision
	Floor                          // passable ground
	Foliage                        // passable but flammable
	Rubble                         // passable, but blocks vision like walls
	TranslucentWall                // obstructing, blocks vision of effects
)

// TerrainName returns the name of a terrain.
func TerrainName(t rl.Cell) string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Foliage:
		return "foliage"
	case Rubble:
		return "rubble"
	case TranslucentWall:
		return "translucent wall"
	default:
		return "unknown terrain"
	}
}

// Map represents the rectangular map of a level.
type Map struct {
	Terrain   rl.Grid                 // terrain
	Clouds    *CloudGrid              // cloud map
	Items     map[gruid.Point][]*Item // item stacks
	Sanctuary mapset.Set[gruid.Point] // cells where hostile effects are forbidden
}

// NewMap returns a new all-floor map object ready for use.
func NewMap(width, height int) *Map {
	m := &Map{
		Terrain:   rl.NewGrid(width, height),
		Clouds:    NewCloudGrid(width, height),
		Items:     map[gruid.Point][]*Item{},
		Sanctuary: mapset.New[gruid.Point](),
	}
	m.Terrain.Fill(Floor)
	return m
}

// InBounds reports whether a position is within map bounds.
func (m *Map) InBounds(p gruid.Point) bool {
	return p.In(m.Terrain.Range())
}

// Solid reports whether no cloud or creature can occupy the given position.
// Cells outside the map are considered as walls.
func (m *Map) Solid(p gruid.Point) bool {
	if !m.InBounds(p) {
		return true
	}
	return Solid(m.Terrain.At(p))
}

// Solid reports whether a given terrain type is an obstacle.
func Solid(t rl.Cell) bool {
	return t == Wall || t == TranslucentWall
}

// BlocksLOS reports whether a terrain blocks line of sight without
// transparency.
func BlocksLOS(t rl.Cell) bool {
	return t == Wall || t == Rubble || t == TranslucentWall
}

// Burnable reports whether at the given position there is a burnable tile
// (foliage).
func (m *Map) Burnable(p gruid.Point) bool {
	return m.InBounds(p) && m.Terrain.At(p) == Foliage
}

// IsSanctuary reports whether p is inside a sanctuary zone.
func (m *Map) IsSanctuary(p gruid.Point) bool {
	return m.Sanctuary.Has(p)
}

// InBounds reports whether a position is within the world's map.
func (w *World) InBounds(p gruid.Point) bool {
	return w.Map.InBounds(p)
}

// Solid reports whether the cell at p is solid (or out of bounds).
func (w *World) Solid(p gruid.Point) bool {
	return w.Map.Solid(p)
}

// SetTerrain changes the terrain at p. Clouds on cells becoming solid are
// removed.
func (w *World) SetTerrain(p gruid.Point, t rl.Cell) {
	if !w.InBounds(p) {
		return
	}
	w.Map.Terrain.Set(p, t)
	if Solid(t) {
		w.RemoveCloudAt(p)
	}
}

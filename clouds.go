package cloudfx

import (
	"iter"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

// Cloud represents a cloud, which can be of some specific kind (like fire),
// and has a duration.
type Cloud struct {
	Kind       CloudKind
	P          gruid.Point
	Duration   int     // remaining turns
	Source     ActorID // actor the cloud is attributed to, or NoActor
	SpreadRate int     // percent chance per turn to spread to a neighbor
	Exclusion  int     // exclusion radius for path planning, -1 for none
	Ignite     int     // fire duration once embers catch
}

// CloudKind represents the possible kinds of clouds.
type CloudKind int

// These constants represent the possible kind of clouds.
const (
	NoCloud     CloudKind = iota
	CloudSmoke            // obstructs vision (steam, dust, smoke)
	CloudFire             // burns
	CloudCold             // freezes
	CloudPoison           // poisons
	CloudHoly             // burns the unholy
	CloudMiasma           // rots flesh
	CloudEmbers           // smouldering, ignites into fire
)

func (ck CloudKind) String() string {
	switch ck {
	case CloudSmoke:
		return "smoke"
	case CloudFire:
		return "fire"
	case CloudCold:
		return "freezing vapour"
	case CloudPoison:
		return "poison gas"
	case CloudHoly:
		return "blessed fire"
	case CloudMiasma:
		return "foul pestilence"
	case CloudEmbers:
		return "smouldering embers"
	default:
		return "cloud"
	}
}

// Rune returns the character used for the cloud in map dumps.
func (ck CloudKind) Rune() rune {
	switch ck {
	case CloudSmoke:
		return '~'
	case CloudFire:
		return '^'
	case CloudCold:
		return '*'
	case CloudPoison:
		return '%'
	case CloudHoly:
		return '+'
	case CloudMiasma:
		return '&'
	case CloudEmbers:
		return ','
	default:
		return ' '
	}
}

// Color returns the color of the cloud.
func (ck CloudKind) Color() gruid.Color {
	switch ck {
	case CloudFire, CloudEmbers:
		return ColorRed
	case CloudCold:
		return ColorCyan
	case CloudPoison:
		return ColorGreen
	case CloudHoly:
		return ColorYellow
	case CloudMiasma:
		return ColorMagenta
	default:
		return ColorForeground
	}
}

// Harmful reports whether a creature standing in the cloud gets hurt.
func (ck CloudKind) Harmful() bool {
	return ck != NoCloud && ck != CloudSmoke && ck != CloudEmbers
}

// CloudGrid is a representation of the clouds in the map that allows both for
// linear processing of current clouds, as well as constant-time checks of a
// particular position in the map looking for any clouds.
type CloudGrid struct {
	Clouds []Cloud
	Grid   []int // index in Clouds for a map position, or -1
	width  int
	height int
}

// NewCloudGrid returns a new CloudGrid properly initialized.
func NewCloudGrid(width, height int) *CloudGrid {
	cg := &CloudGrid{width: width, height: height}
	cg.Grid = make([]int, width*height)
	cg.Clouds = []Cloud{}
	for i := range cg.Grid {
		cg.Grid[i] = -1 // no cloud
	}
	return cg
}

// idx returns the grid index of p, or -1 if p is out of range.
func (cg *CloudGrid) idx(p gruid.Point) int {
	if p.X < 0 || p.X >= cg.width || p.Y < 0 || p.Y >= cg.height {
		return -1
	}
	return p.Y*cg.width + p.X
}

// Reset removes all the clouds
func (cg *CloudGrid) Reset() {
	for _, cl := range cg.Clouds {
		i := cg.idx(cl.P)
		if i < 0 {
			// invalid cloud pos (should not happen)
			continue
		}
		cg.Grid[i] = -1 // no cloud
	}
	cg.Clouds = cg.Clouds[:0]
}

// At returns a cloud at a given position, if any. The Kind is NoCloud
// otherwise.
func (cg *CloudGrid) At(p gruid.Point) Cloud {
	if c, ok := cg.Lookup(p); ok {
		return *c
	}
	return Cloud{Source: NoActor, Exclusion: -1}
}

// Lookup returns a reference to the cloud at a given position, if any. The
// reference is valid until the next addition or removal.
func (cg *CloudGrid) Lookup(p gruid.Point) (*Cloud, bool) {
	i := cg.idx(p)
	if i < 0 {
		return nil, false
	}
	if j := cg.Grid[i]; j >= 0 {
		return &cg.Clouds[j], true
	}
	return nil, false
}

// Len returns the number of clouds.
func (cg *CloudGrid) Len() int {
	return len(cg.Clouds)
}

// All returns an iterator over the positions and kinds of all clouds.
func (cg *CloudGrid) All() iter.Seq2[gruid.Point, CloudKind] {
	return func(yield func(gruid.Point, CloudKind) bool) {
		for _, cl := range cg.Clouds {
			if !yield(cl.P, cl.Kind) {
				return
			}
		}
	}
}

// Reinforce extends the duration of the cloud at p by extra turns (negative
// values count as zero) and attributes it to source. The total duration is
// capped at limit when limit is positive. It reports whether there was a
// cloud.
func (cg *CloudGrid) Reinforce(p gruid.Point, extra, limit int, source ActorID) bool {
	c, ok := cg.Lookup(p)
	if !ok {
		return false
	}
	c.Duration += max(extra, 0)
	if limit > 0 && c.Duration > limit {
		c.Duration = limit
	}
	c.Source = source
	return true
}

func (cg *CloudGrid) add(cl Cloud) {
	j := len(cg.Clouds)
	cg.Clouds = append(cg.Clouds, cl)
	cg.Grid[cg.idx(cl.P)] = j
}

func (cg *CloudGrid) removeCloud(j int) {
	nl := len(cg.Clouds) - 1 // new length
	cj, cnj := cg.Clouds[j], cg.Clouds[nl]
	i, ni := cg.idx(cj.P), cg.idx(cnj.P)
	// We update values in Grid so that the last cloud in Clouds is now at
	// index j.
	cg.Grid[ni] = j
	cg.Grid[i] = -1
	cg.Clouds[j], cg.Clouds[nl] = cg.Clouds[nl], cg.Clouds[j]
	cg.Clouds = cg.Clouds[:nl]
}

// PlaceCloud adds a cloud at the cloud's position. A cloud of the same kind
// already there is reinforced instead: its duration grows by the new
// duration and it is attributed to the new source. A cloud of another kind
// is left untouched. It reports whether the store changed.
func (w *World) PlaceCloud(cl Cloud) bool {
	if w.Solid(cl.P) || cl.Kind == NoCloud || cl.Duration <= 0 {
		return false
	}
	cg := w.Map.Clouds
	if cj, ok := cg.Lookup(cl.P); ok {
		if cj.Kind != cl.Kind {
			return false
		}
		cg.Reinforce(cl.P, cl.Duration, w.Config.MaxCloudDuration, cl.Source)
		if cl.SpreadRate > cj.SpreadRate {
			cj.SpreadRate = cl.SpreadRate
		}
		return true
	}
	if limit := w.Config.MaxCloudDuration; limit > 0 && cl.Duration > limit {
		cl.Duration = limit
	}
	cg.add(cl)
	return true
}

// NewCloud returns a cloud of the given kind with default spread and
// exclusion.
func NewCloud(kind CloudKind, p gruid.Point, dur int, source ActorID) Cloud {
	return Cloud{Kind: kind, P: p, Duration: dur, Source: source, Exclusion: -1}
}

// CloudAt reports whether there's a cloud at the given position.
func (w *World) CloudAt(p gruid.Point) bool {
	return w.Map.Clouds.At(p).Kind != NoCloud
}

// EndCloud ends a cloud at a given index. Embers ignite into fire, and fire
// on foliage burns it and leaves smoke.
func (w *World) EndCloud(j int) {
	cg := w.Map.Clouds
	if j < 0 || j >= len(cg.Clouds) {
		// Should not happen.
		return
	}
	cj := cg.Clouds[j]
	switch {
	case cj.Kind == CloudEmbers && cj.Ignite > 0:
		cj.Kind = CloudFire
		cj.Duration = cj.Ignite
		cj.Ignite = 0
		cg.Clouds[j] = cj
		if w.SeeCell(cj.P) {
			w.Log("The fire ignites!")
		}
		return
	case cj.Kind == CloudFire && w.Map.Terrain.At(cj.P) == Foliage:
		// EndCloud is used for cloud expiration, so when we have a
		// cloud of fire on foliage, we replace it with smoke instead
		// and remove the foliage.
		w.Map.Terrain.Set(cj.P, Floor)
		cj.Kind = CloudSmoke
		cj.Duration = 4 + w.IntN(5)
		cg.Clouds[j] = cj
		return
	}
	cg.removeCloud(j)
}

// RemoveCloudAt removes any cloud at the given position.
func (w *World) RemoveCloudAt(p gruid.Point) {
	cg := w.Map.Clouds
	i := cg.idx(p)
	if i < 0 {
		return
	}
	if j := cg.Grid[i]; j >= 0 {
		cg.removeCloud(j)
	}
}

// UpdateClouds reduces the duration of all clouds by one, and ends any
// cloud whose new duration is zero or negative. Then fire spreads to
// burnable neighbors and spreading clouds diffuse.
func (w *World) UpdateClouds() {
	cg := w.Map.Clouds
	for i := 0; i < len(cg.Clouds); {
		cl := &cg.Clouds[i]
		cl.Duration--
		if cl.Duration <= 0 {
			n := len(cg.Clouds)
			w.EndCloud(i)
			if len(cg.Clouds) < n {
				// The last cloud has been moved to i.
				continue
			}
		}
		i++
	}
	// Spreading appends to Clouds: only the clouds present before
	// spreading are considered.
	n := len(cg.Clouds)
	for i := 0; i < n && i < len(cg.Clouds); i++ {
		cl := cg.Clouds[i]
		if cl.Kind == CloudFire {
			for p := range Adjacent(w, cl.P) {
				if !w.Map.Burnable(p) || w.CloudAt(p) || w.IntN(3) != 0 {
					continue
				}
				w.PlaceCloud(Cloud{Kind: CloudFire, P: p, Duration: w.fireCloudDuration(),
					Source: cl.Source, Exclusion: -1})
			}
		}
		if cl.SpreadRate > 0 && cl.Duration > 1 && w.XChanceInY(cl.SpreadRate, 100) {
			w.spreadCloud(cl)
		}
	}
}

// spreadCloud diffuses a cloud into a random free neighbor.
func (w *World) spreadCloud(cl Cloud) {
	free := []gruid.Point{}
	for p := range Adjacent(w, cl.P) {
		if !w.Solid(p) && !w.CloudAt(p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return
	}
	ncl := cl
	ncl.P = free[w.IntN(len(free))]
	ncl.Duration = cl.Duration / 2
	w.PlaceCloud(ncl)
}

// fireCloudDuration returns the typical duration of a spreading fire cloud.
func (w *World) fireCloudDuration() int {
	return 6 + w.IntN(7)
}

// Unsafe reports whether p lies within the exclusion radius of some cloud.
// Path planners should avoid such cells.
func (w *World) Unsafe(p gruid.Point) bool {
	for _, cl := range w.Map.Clouds.Clouds {
		if cl.Exclusion >= 0 && paths.DistanceChebyshev(p, cl.P) <= cl.Exclusion {
			return true
		}
	}
	return false
}

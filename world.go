// Package cloudfx implements area-effect cloud propagation for a turn-based
// grid game: a cloud store, spatial iterators, an area placement engine and
// the spell effects that drive it.
package cloudfx

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	"go.uber.org/zap"
)

// InvalidPos is a special variable containing an invalid position.
var InvalidPos = gruid.Point{-1, -1}

// Rand is the random source used by the world. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a seeded PCG random source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// World represents all the state area effects operate on. It is passed
// explicitly to every operation.
type World struct {
	Map    *Map             // terrain, clouds, items
	Actors *Actors          // actor arena
	PR     *paths.PathRange // path range for flood computations
	FOV    *rl.FOV          // field of view for line of sight queries
	Logs   *Logs            // message log
	Config Config           // configuration
	Turn   int              // current turn

	rand   Rand
	uiRand Rand // display only, never affects game outcomes
	debug  *zap.Logger
}

// NewWorld returns a world with an all-floor map of the configured size. A
// nil random source defaults to NewRand(0), and a nil logger disables debug
// logging.
func NewWorld(cfg Config, r Rand, lg *zap.Logger) *World {
	if r == nil {
		r = NewRand(0)
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	w := &World{
		Map:    NewMap(cfg.Width, cfg.Height),
		Actors: &Actors{},
		PR:     paths.NewPathRange(gruid.NewRange(0, 0, cfg.Width, cfg.Height)),
		FOV:    rl.NewFOV(gruid.NewRange(0, 0, cfg.Width, cfg.Height)),
		Logs:   &Logs{},
		Config: cfg,
		rand:   r,
		uiRand: NewRand(0),
		debug:  lg,
	}
	return w
}

// SetRand replaces the random source.
func (w *World) SetRand(r Rand) {
	w.rand = r
}

// SetUIRand replaces the random source used for display effects such as
// element colours.
func (w *World) SetUIRand(r Rand) {
	w.uiRand = r
}

// IntN is a wrapper around rand.IntN that allows for non-positive values.
func (w *World) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return w.rand.IntN(n)
}

// Random2Avg returns the average of rolls random draws in [0, n), biased
// toward the middle of the range.
func (w *World) Random2Avg(n, rolls int) int {
	if rolls <= 0 {
		rolls = 1
	}
	sum := w.IntN(n)
	for range rolls - 1 {
		sum += w.IntN(n + 1)
	}
	return sum / rolls
}

// XChanceInY reports true with probability x/y.
func (w *World) XChanceInY(x, y int) bool {
	if x <= 0 {
		return false
	}
	if x >= y {
		return true
	}
	return w.IntN(y) < x
}

// DivRandRound divides num by den, rounding up with probability equal to
// the fractional part.
func (w *World) DivRandRound(num, den int) int {
	if den <= 0 {
		return 0
	}
	q := num / den
	if w.IntN(den) < num%den {
		q++
	}
	return q
}

// EndTurn advances the turn counter and ticks the clouds.
func (w *World) EndTurn() {
	w.Turn++
	w.Logs.NextTick = w.Logs.Index
	w.UpdateClouds()
}

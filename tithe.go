package cloudfx

import (
	"math"

	"go.uber.org/zap"
)

// MaxPiety is the maximum piety.
const MaxPiety = 200

// Devotion holds the state of the player's relationship with the god of
// law, who takes a tithe on any gold picked up.
type Devotion struct {
	Piety     int
	Penance   int
	TitheBase int  // gold remainder carried to the next tithe
	Donations int  // total gold given
	AbsDepth  int  // absolute depth of the current level, from 0
	InOrc     bool // whether the current level is in the orc mines
}

// Tithe takes a tithe from quant gold of the given item and returns the
// amount taken. One tenth of the gold, together with the remainder from
// previous tithes, is due. Piety is gained unless the gold was seen before
// worship, and gold from acquirement gives much less of it.
func (w *World) Tithe(d *Devotion, it *Item, quant int, converting bool) int {
	if it.Tithe == TitheNone {
		return 0
	}
	taken := 0
	due := quant + d.TitheBase
	if due > 0 {
		tithe := due / 10
		due -= tithe * 10
		// The top of the hierarchy doesn't pay.
		tithe = min(tithe, (d.Penance+MaxPiety-d.Piety)*2/3)
		if tithe <= 0 {
			d.TitheBase = due
			return 0
		}
		taken = tithe
		d.Donations += tithe
		w.Logf("You pay a tithe of %d gold.", tithe)
		if it.Tithe == TitheNoPiety {
			tithe = 0
			w.LogStyled("Zin ignores your late donation.", LogGod)
		}
		denom := 2
		if it.Acquired {
			tithe = StepdownValue(tithe, 10, 10, 50, 50)
			w.debug.Debug("acquired gold, reducing gains", zap.Int("tithe", tithe))
		} else {
			if d.InOrc && !converting {
				denom *= 2
			}
			// Average gold pile value: 10 + depth/2.
			tithe *= 47
			denom *= 20 + d.AbsDepth
		}
		w.gainPiety(d, tithe*3, denom)
	}
	d.TitheBase = due
	return taken
}

// gainPiety increases piety by num/denom, rounded randomly, up to MaxPiety.
func (w *World) gainPiety(d *Devotion, num, denom int) {
	if num <= 0 {
		return
	}
	gain := w.DivRandRound(num, denom)
	if gain <= 0 {
		return
	}
	d.Piety = min(d.Piety+gain, MaxPiety)
	w.debug.Debug("piety gain", zap.Int("gain", gain), zap.Int("piety", d.Piety))
}

// StepdownValue returns base unchanged below firstStep, and past it a value
// growing logarithmically with the given stepping, never exceeding ceiling
// (if positive). The logarithmic part is rounded to the nearest integer.
// The lastStep parameter is unused.
func StepdownValue(base, stepping, firstStep, lastStep, ceiling int) int {
	if ceiling < 0 {
		ceiling = 0
	}
	if ceiling > 0 && ceiling < firstStep {
		return min(base, ceiling)
	}
	if base < firstStep {
		return base
	}
	diff := firstStep - stepping
	v := diff + int(float64(stepping)*math.Log2(1+float64(base-diff)/float64(stepping))+0.5)
	if ceiling > 0 {
		v = min(v, ceiling)
	}
	return v
}

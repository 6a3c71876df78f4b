package cloudfx

import (
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"go.uber.org/zap"
)

// Outcome is the result of a spell-like effect.
type Outcome int

const (
	OutcomeSuccess Outcome = iota // effect happened, resources consumed
	OutcomeAbort                  // nothing happened, turn and resources refunded
	OutcomeFail                   // miscast, resources consumed
	OutcomeNone                   // silent no-op for non-player casters
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAbort:
		return "abort"
	case OutcomeFail:
		return "fail"
	default:
		return "none"
	}
}

// Spell identifies the cloud spells.
type Spell int

const (
	SpellNone Spell = iota
	SpellConjureFlame
	SpellPoisonousCloud
	SpellHolyBreath
	SpellFreezingCloud
	SpellCorpseRot
)

// CloudKind returns the kind of cloud produced by a big cloud spell, or
// NoCloud.
func (sp Spell) CloudKind() CloudKind {
	switch sp {
	case SpellPoisonousCloud:
		return CloudPoison
	case SpellHolyBreath:
		return CloudHoly
	case SpellFreezingCloud:
		return CloudCold
	default:
		return NoCloud
	}
}

// Some caps on effect durations.
const (
	ConjureFlameMaxDuration  = 23 // fire duration from embers
	ConjureFlameMaxReinforce = 20 // random part of a fire reinforcement
)

// conjureFlameDuration returns the duration of a conjured fire.
func (w *World) conjureFlameDuration(pow int) int {
	return min(5+w.IntN(pow)/2+w.IntN(pow)/2, ConjureFlameMaxDuration)
}

// ConjureFlame makes a fire at the caster's position. An existing fire is
// reinforced and attributed to the caster, embers catch fire at once, and
// otherwise smouldering embers are placed, which ignite at the end of next
// turn.
func (w *World) ConjureFlame(caster ActorID, pow int, fail bool) Outcome {
	ca, ok := w.checkActor(caster, "conjure flame caster")
	if !ok {
		return OutcomeAbort
	}
	p := ca.P
	cl, cloudy := w.Map.Clouds.Lookup(p)
	if cloudy && cl.Kind != CloudFire && cl.Kind != CloudEmbers {
		w.Log("There's already a cloud here!")
		return OutcomeAbort
	}
	if fail {
		return OutcomeFail
	}
	switch {
	case cloudy && cl.Kind == CloudFire:
		// Reinforce the cloud, but not too much.
		extra := 2 + min(w.IntN(pow)/2, ConjureFlameMaxReinforce)
		w.Map.Clouds.Reinforce(p, extra, w.Config.MaxCloudDuration, caster)
		w.Log("The fire blazes with new energy!")
	case cloudy && cl.Kind == CloudEmbers:
		w.RemoveCloudAt(p)
		w.PlaceCloud(NewCloud(CloudFire, p, w.conjureFlameDuration(pow), caster))
		w.Log("The fire ignites!")
	default:
		cl := NewCloud(CloudEmbers, p, 1, caster)
		cl.Ignite = w.conjureFlameDuration(pow)
		w.PlaceCloud(cl)
		w.Log("The fire begins to smoulder!")
	}
	return OutcomeSuccess
}

// CastBigCloud casts one of the big cloud spells at target, which must be
// within rng of the caster.
func (w *World) CastBigCloud(caster ActorID, sp Spell, target gruid.Point, rng, pow int, fail bool) Outcome {
	ca, ok := w.checkActor(caster, "big cloud caster")
	if !ok {
		return OutcomeAbort
	}
	if paths.DistanceChebyshev(target, ca.P) > rng || !w.InBounds(target) {
		w.Log("That is beyond the maximum range.")
		return OutcomeAbort
	}
	if w.Solid(target) {
		w.Logf("You can't place clouds on %s.", One(TerrainName(w.Map.Terrain.At(target))))
		return OutcomeAbort
	}
	kind := sp.CloudKind()
	if kind == NoCloud {
		w.Log("That kind of cloud doesn't exist!")
		return OutcomeAbort
	}
	if fail {
		return OutcomeFail
	}
	w.BigCloud(kind, caster, target, pow, 8+w.IntN(3), -1)
	return OutcomeSuccess
}

// CorpseRotRadius is the maximum distance from the center of the miasma
// clouds made by corpse rot.
const CorpseRotRadius = 2

// miasmaCloud is the CloudFunc of corpse rot: it never touches cells with
// clouds.
func miasmaCloud(w *World, p gruid.Point, ac AreaCloud) int {
	if w.CloudAt(p) {
		return 0
	}
	if w.PlaceCloud(NewCloud(CloudMiasma, p, 2+w.Random2Avg(8, 2), ac.Agent)) {
		return 1
	}
	return 0
}

// CorpseRot rots the corpses in line of sight of the caster (or of the
// player, without caster) into miasma clouds around the center. With actual
// false, it only reports whether there's any corpse to rot (success) or not
// (abort).
//
// When no rot was seen by the player, the effect aborts if there's no
// caster or the caster is the player. A monster caster gets a silent no-op
// when nothing rotted.
func (w *World) CorpseRot(caster ActorID, pow int, actual bool) Outcome {
	center := InvalidPos
	if caster != NoActor {
		ca, ok := w.checkActor(caster, "corpse rot caster")
		if !ok {
			return OutcomeAbort
		}
		center = ca.P
	} else if _, pa := w.Player(); pa != nil {
		center = pa.P
	}
	if !w.InBounds(center) {
		return OutcomeAbort
	}
	seen := w.PlayerLOS()
	sawRot := false
	didRot := 0
	for _, p := range w.LOS(center, w.Config.LOSRadius) {
		for _, it := range slices.Clone(w.ItemsAt(p)) {
			if it.Kind != ItemCorpse {
				continue
			}
			if !actual {
				return OutcomeSuccess
			}
			// Found a corpse. Skeletonise it if possible.
			if HasSkeleton(it.Species) {
				it.Skeletonise()
			} else {
				w.DestroyItem(p, it)
			}
			if seen.Has(p) {
				sawRot = true
			}
			didRot++
			// Chance to get an extra cloud per corpse (50% at max power).
			if w.XChanceInY(pow, 100) {
				didRot++
			}
		}
	}
	if !actual {
		return OutcomeAbort
	}
	w.debug.Debug("corpse rot", zap.Int("budget", didRot), zap.String("center", w.CoordString(center)))
	w.ApplyAreaShells(miasmaCloud, center, AreaCloud{
		Kind:      CloudMiasma,
		Agent:     caster,
		Pow:       pow,
		Size:      didRot,
		Radius:    CorpseRotRadius,
		Exclusion: -1,
	})
	switch {
	case sawRot:
		_, pa := w.Player()
		if pa != nil && pa.NoSmell {
			w.Log("You sense decay.")
		} else {
			w.Log("You smell decay.")
		}
	case caster == NoActor || w.IsPlayer(caster):
		return OutcomeAbort
	case didRot == 0:
		return OutcomeNone
	}
	return OutcomeSuccess
}

// HolyFlames surrounds the defender with blessed fire: a holy cloud in each
// adjacent cell that is free of clouds, creatures and sanctuary. Duration
// grows with the caster's hit dice. It returns the number of clouds placed.
func (w *World) HolyFlames(caster, defender ActorID) int {
	ca, ok := w.checkActor(caster, "holy flames caster")
	if !ok {
		return 0
	}
	da, ok := w.checkActor(defender, "holy flames defender")
	if !ok {
		return 0
	}
	count := 0
	dur := 8 + w.Random2Avg(ca.HD*3, 2)
	for p := range Adjacent(w, da.P) {
		if w.CloudAt(p) || w.Solid(p) || w.Map.IsSanctuary(p) {
			continue
		}
		if i, _ := w.ActorAt(p); i != NoActor {
			continue
		}
		if w.PlaceCloud(NewCloud(CloudHoly, p, dur, caster)) {
			count++
		}
	}
	if count > 0 {
		if da.Player {
			w.Log("Blessed fire suddenly surrounds you!")
		} else {
			w.Logf("The %s is surrounded by blessed fire!", da.Name)
		}
	}
	return count
}

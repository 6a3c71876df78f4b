package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/rlkit/cloudfx"
)

// level is the demo level shown by the viewer.
type level struct {
	w        *cloudfx.World
	player   cloudfx.ActorID
	monsters []cloudfx.ActorID
	devotion cloudfx.Devotion
}

// newLevel builds a walled room with some foliage, rubble, corpses and a
// couple of monsters.
func newLevel(w *cloudfx.World) *level {
	size := w.Map.Terrain.Size()
	for p := range w.Map.Terrain.All() {
		if p.X == 0 || p.Y == 0 || p.X == size.X-1 || p.Y == size.Y-1 {
			w.SetTerrain(p, cloudfx.Wall)
		}
	}
	mid := gruid.Point{size.X / 2, size.Y / 2}
	for y := 2; y < size.Y-2; y++ {
		if y == mid.Y {
			continue
		}
		w.SetTerrain(gruid.Point{mid.X + 8, y}, cloudfx.Wall)
	}
	w.SetTerrain(gruid.Point{mid.X + 8, mid.Y - 3}, cloudfx.TranslucentWall)
	for y := 2; y < 6; y++ {
		for x := 3; x < 12; x++ {
			w.SetTerrain(gruid.Point{x, y}, cloudfx.Foliage)
		}
	}
	for x := mid.X - 6; x < mid.X-2; x++ {
		w.SetTerrain(gruid.Point{x, size.Y - 3}, cloudfx.Rubble)
	}
	lvl := &level{w: w}
	lvl.player = w.AddActor(&cloudfx.Actor{Name: "you", P: mid, Player: true, HD: 10})
	lvl.monsters = append(lvl.monsters,
		w.AddActor(&cloudfx.Actor{Name: "orc priest", P: mid.Shift(4, -2), HD: 6}),
		w.AddActor(&cloudfx.Actor{Name: "necromancer", P: mid.Shift(12, 1), HD: 8}))
	for i, sp := range []string{"goblin", "worm", "jackal", "ooze"} {
		w.AddItem(mid.Shift(-3+2*i, 3), cloudfx.Corpse(sp))
	}
	w.AddItem(mid.Shift(14, -2), cloudfx.Corpse("human"))
	w.AddItem(mid.Shift(-1, -1), cloudfx.Gold(57))
	w.Map.Sanctuary.Put(mid.Shift(5, -2))
	return lvl
}

// demo runs a few effects, for text dumps.
func (lvl *level) demo() {
	w := lvl.w
	pa, _ := w.Actor(lvl.player)
	w.CastBigCloud(lvl.player, cloudfx.SpellPoisonousCloud, pa.P.Shift(-8, 0), 10, 50, false)
	w.EndTurn()
	w.CorpseRot(lvl.player, 50, true)
	w.EndTurn()
	w.HolyFlames(lvl.monsters[0], lvl.player)
	w.EndTurn()
	w.CorpseRot(lvl.monsters[1], 60, true)
	w.ConjureFlame(lvl.player, 40, false)
	w.EndTurn()
	pa.P = pa.P.Shift(-1, -1)
	lvl.pickUpGold()
}

// pickUpGold picks up the gold under the player, paying the tithe.
func (lvl *level) pickUpGold() bool {
	w := lvl.w
	pa, _ := w.Actor(lvl.player)
	for _, it := range w.ItemsAt(pa.P) {
		if it.Kind != cloudfx.ItemGold {
			continue
		}
		taken := w.Tithe(&lvl.devotion, it, it.Quantity, false)
		w.Logf("You pick up %d gold pieces.", it.Quantity-taken)
		w.DestroyItem(pa.P, it)
		return true
	}
	return false
}

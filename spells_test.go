package cloudfx

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
)

func TestCorpseRotThreeCorpses(t *testing.T) {
	w := newTestWorld(fixedRand{max: true})
	center := gruid.Point{10, 5}
	pl := addPlayer(w, center)
	w.AddItem(gruid.Point{13, 5}, Corpse("goblin"))
	w.AddItem(gruid.Point{13, 5}, Corpse("worm"))
	w.AddItem(gruid.Point{10, 8}, Corpse("rat"))
	out := w.CorpseRot(pl, 50, true)
	if out != OutcomeSuccess {
		t.Errorf("outcome %s, want success", out)
	}
	if n := countClouds(w, CloudMiasma); n != 3 {
		t.Errorf("%d miasma clouds, want 3:\n%s", n, w.DumpMap())
	}
	for p := range w.Map.Clouds.All() {
		if d := paths.DistanceChebyshev(p, center); d != 1 {
			t.Errorf("miasma at distance %d", d)
		}
	}
	if cl := w.Map.Clouds.At(gruid.Point{9, 4}); cl.Duration != 9 || cl.Source != pl {
		t.Errorf("bad miasma: %+v", cl)
	}
	stack := w.ItemsAt(gruid.Point{13, 5})
	if len(stack) != 1 || stack[0].Kind != ItemSkeleton {
		t.Errorf("bad rotted stack: %v", stack)
	}
	if it := w.ItemsAt(gruid.Point{10, 8}); len(it) != 1 || it[0].Kind != ItemSkeleton {
		t.Error("rat corpse not skeletonised")
	}
	if got := w.LastMessage(); got != "You smell decay." {
		t.Errorf("bad message: %q", got)
	}
}

func TestCorpseRotExtraClouds(t *testing.T) {
	w := newTestWorld(fixedRand{})
	pl := addPlayer(w, gruid.Point{10, 5})
	w.AddItem(gruid.Point{12, 5}, Corpse("goblin"))
	w.CorpseRot(pl, 50, true)
	if n := countClouds(w, CloudMiasma); n != 2 {
		t.Errorf("%d miasma clouds, want 2", n)
	}
}

func TestCorpseRotNothing(t *testing.T) {
	w := newTestWorld(fixedRand{})
	addPlayer(w, gruid.Point{10, 5})
	if out := w.CorpseRot(NoActor, 50, true); out != OutcomeAbort {
		t.Errorf("outcome %s, want abort", out)
	}
	if w.Map.Clouds.Len() != 0 {
		t.Error("clouds placed without corpses")
	}
	w = newTestWorld(fixedRand{})
	if out := w.CorpseRot(NoActor, 50, true); out != OutcomeAbort {
		t.Errorf("outcome %s without player, want abort", out)
	}
}

func TestCorpseRotMonster(t *testing.T) {
	w := newTestWorld(fixedRand{})
	addPlayer(w, gruid.Point{1, 1})
	for y := range 10 {
		w.SetTerrain(gruid.Point{5, y}, Wall)
	}
	m := addMonster(w, "necromancer", gruid.Point{15, 5})
	if out := w.CorpseRot(m, 50, true); out != OutcomeNone {
		t.Errorf("outcome %s, want none", out)
	}
	w.AddItem(gruid.Point{17, 5}, Corpse("orc"))
	if out := w.CorpseRot(m, 50, true); out != OutcomeSuccess {
		t.Errorf("outcome %s, want success", out)
	}
	if len(w.Logs.Entries) != 0 {
		t.Errorf("unseen rot logged: %q", w.LastMessage())
	}
	if countClouds(w, CloudMiasma) == 0 {
		t.Error("no miasma from unseen rot")
	}
}

func TestCorpseRotProbe(t *testing.T) {
	w := newTestWorld(fixedRand{})
	pl := addPlayer(w, gruid.Point{10, 5})
	if out := w.CorpseRot(pl, 50, false); out != OutcomeAbort {
		t.Errorf("probe without corpse: %s", out)
	}
	w.AddItem(gruid.Point{11, 5}, Corpse("worm"))
	if out := w.CorpseRot(pl, 50, false); out != OutcomeSuccess {
		t.Errorf("probe with corpse: %s", out)
	}
	if it := w.ItemsAt(gruid.Point{11, 5}); len(it) != 1 || it[0].Kind != ItemCorpse {
		t.Error("probe rotted the corpse")
	}
	if w.Map.Clouds.Len() != 0 {
		t.Error("probe placed clouds")
	}
}

func TestCorpseRotBehindWall(t *testing.T) {
	w := newTestWorld(fixedRand{})
	pl := addPlayer(w, gruid.Point{2, 5})
	for y := range 10 {
		w.SetTerrain(gruid.Point{5, y}, Wall)
	}
	w.AddItem(gruid.Point{7, 5}, Corpse("goblin"))
	if out := w.CorpseRot(pl, 50, true); out != OutcomeAbort {
		t.Errorf("outcome %s, want abort", out)
	}
	if it := w.ItemsAt(gruid.Point{7, 5}); it[0].Kind != ItemCorpse {
		t.Error("corpse out of sight rotted")
	}
}

func TestHolyFlamesTwice(t *testing.T) {
	w := newTestWorld(fixedRand{})
	pl := addPlayer(w, gruid.Point{1, 1})
	m := addMonster(w, "orc", gruid.Point{10, 5})
	if n := w.HolyFlames(pl, m); n != 8 {
		t.Errorf("first call placed %d clouds, want 8", n)
	}
	if got := w.LastMessage(); got != "The orc is surrounded by blessed fire!" {
		t.Errorf("bad message: %q", got)
	}
	if cl := w.Map.Clouds.At(gruid.Point{9, 4}); cl.Kind != CloudHoly || cl.Duration != 8 {
		t.Errorf("bad cloud: %+v", cl)
	}
	entries := len(w.Logs.Entries)
	if n := w.HolyFlames(pl, m); n != 0 {
		t.Errorf("second call placed %d clouds", n)
	}
	if len(w.Logs.Entries) != entries || w.Logs.Entries[entries-1].Dups != 0 {
		t.Error("message logged without clouds")
	}
}

func TestHolyFlamesObstacles(t *testing.T) {
	w := newTestWorld(fixedRand{max: true})
	pl := addPlayer(w, gruid.Point{10, 5})
	m := addMonster(w, "orc", gruid.Point{11, 5})
	w.SetTerrain(gruid.Point{9, 4}, Wall)
	w.Map.Sanctuary.Put(gruid.Point{10, 4})
	w.PlaceCloud(NewCloud(CloudSmoke, gruid.Point{11, 4}, 5, NoActor))
	if n := w.HolyFlames(m, pl); n != 4 {
		t.Errorf("placed %d clouds, want 4:\n%s", n, w.DumpMap())
	}
	if got := w.LastMessage(); got != "Blessed fire suddenly surrounds you!" {
		t.Errorf("bad message: %q", got)
	}
	// 8 + (14 + 15) / 2
	if cl := w.Map.Clouds.At(gruid.Point{9, 5}); cl.Duration != 22 {
		t.Errorf("duration %d, want 22", cl.Duration)
	}
}

func TestConjureFlameReinforce(t *testing.T) {
	w := newTestWorld(fixedRand{max: true})
	p := gruid.Point{6, 6}
	a := addMonster(w, "efreet", p)
	b := addMonster(w, "fire giant", p)
	w.PlaceCloud(NewCloud(CloudFire, p, 10, a))
	if out := w.ConjureFlame(b, 50, false); out != OutcomeSuccess {
		t.Fatalf("outcome %s", out)
	}
	cl := w.Map.Clouds.At(p)
	if cl.Kind != CloudFire || cl.Duration != 32 || cl.Source != b {
		t.Errorf("bad reinforced fire: %+v", cl)
	}
}

func TestConjureFlameEmbers(t *testing.T) {
	w := newTestWorld(fixedRand{max: true})
	p := gruid.Point{6, 6}
	pl := addPlayer(w, p)
	if out := w.ConjureFlame(pl, 50, false); out != OutcomeSuccess {
		t.Fatalf("outcome %s", out)
	}
	cl := w.Map.Clouds.At(p)
	if cl.Kind != CloudEmbers || cl.Duration != 1 || cl.Ignite != ConjureFlameMaxDuration {
		t.Fatalf("bad embers: %+v", cl)
	}
	w.EndTurn()
	cl = w.Map.Clouds.At(p)
	if cl.Kind != CloudFire || cl.Duration != ConjureFlameMaxDuration || cl.Source != pl {
		t.Errorf("embers did not ignite: %+v", cl)
	}
	if got := w.LastMessage(); got != "The fire ignites!" {
		t.Errorf("bad message: %q", got)
	}
}

func TestConjureFlameOnEmbers(t *testing.T) {
	w := newTestWorld(fixedRand{})
	p := gruid.Point{6, 6}
	pl := addPlayer(w, p)
	w.ConjureFlame(pl, 50, false)
	w.ConjureFlame(pl, 50, false)
	if cl := w.Map.Clouds.At(p); cl.Kind != CloudFire || cl.Duration != 5 {
		t.Errorf("embers not replaced by fire: %+v", cl)
	}
}

func TestConjureFlameAbort(t *testing.T) {
	w := newTestWorld(fixedRand{})
	p := gruid.Point{6, 6}
	pl := addPlayer(w, p)
	w.PlaceCloud(NewCloud(CloudCold, p, 10, NoActor))
	if out := w.ConjureFlame(pl, 50, false); out != OutcomeAbort {
		t.Errorf("outcome %s, want abort", out)
	}
	if got := w.LastMessage(); got != "There's already a cloud here!" {
		t.Errorf("bad message: %q", got)
	}
	if out := w.ConjureFlame(ActorID(42), 50, false); out != OutcomeAbort {
		t.Errorf("invalid caster: %s", out)
	}
	w.RemoveCloudAt(p)
	if out := w.ConjureFlame(pl, 50, true); out != OutcomeFail {
		t.Errorf("outcome %s, want fail", out)
	}
	if w.Map.Clouds.Len() != 0 {
		t.Error("miscast placed a cloud")
	}
}

func TestCastBigCloud(t *testing.T) {
	w := newTestWorld(fixedRand{max: true})
	pl := addPlayer(w, gruid.Point{2, 5})
	if out := w.CastBigCloud(pl, SpellPoisonousCloud, gruid.Point{12, 5}, 5, 50, false); out != OutcomeAbort {
		t.Errorf("out of range: %s", out)
	}
	w.SetTerrain(gruid.Point{5, 5}, Wall)
	if out := w.CastBigCloud(pl, SpellPoisonousCloud, gruid.Point{5, 5}, 5, 50, false); out != OutcomeAbort {
		t.Errorf("solid target: %s", out)
	}
	if got := w.LastMessage(); got != "You can't place clouds on a wall." {
		t.Errorf("bad message: %q", got)
	}
	if out := w.CastBigCloud(pl, SpellCorpseRot, gruid.Point{6, 5}, 5, 50, false); out != OutcomeAbort {
		t.Errorf("no cloud spell: %s", out)
	}
	if out := w.CastBigCloud(pl, SpellFreezingCloud, gruid.Point{6, 5}, 5, 50, true); out != OutcomeFail {
		t.Errorf("miscast: %s", out)
	}
	if w.Map.Clouds.Len() != 0 {
		t.Fatal("aborted casts placed clouds")
	}
	if out := w.CastBigCloud(pl, SpellFreezingCloud, gruid.Point{7, 5}, 5, 50, false); out != OutcomeSuccess {
		t.Errorf("cast: %s", out)
	}
	if n := countClouds(w, CloudCold); n != 10 {
		t.Errorf("%d clouds, want 10:\n%s", n, w.DumpMap())
	}
}

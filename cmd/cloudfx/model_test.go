package main

import (
	"fmt"
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/rlkit/cloudfx"
)

func newTestModel() *model {
	w := cloudfx.NewWorld(cloudfx.DefaultConfig(), cloudfx.NewRand(1), nil)
	md := newModel(w, newLevel(w))
	md.Update(gruid.MsgInit{})
	return md
}

func TestModelKeys(t *testing.T) {
	md := newTestModel()
	pa, _ := md.w.Actor(md.lvl.player)
	if md.cursor != pa.P {
		t.Fatalf("cursor %v not on player %v", md.cursor, pa.P)
	}
	for _, k := range []gruid.Key{gruid.KeyArrowLeft, gruid.KeyArrowLeft, gruid.KeyArrowUp} {
		md.Update(gruid.MsgKeyDown{Key: k})
	}
	if want := pa.P.Shift(-2, -1); md.cursor != want {
		t.Errorf("cursor %v, want %v", md.cursor, want)
	}
	md.Update(gruid.MsgKeyDown{Key: "b"})
	if md.w.Turn != 1 {
		t.Errorf("turn %d after cast, want 1", md.w.Turn)
	}
	if md.w.Map.Clouds.Len() == 0 {
		t.Error("no cloud after cast")
	}
	md.Update(gruid.MsgKeyDown{Key: "."})
	if md.w.Turn != 2 {
		t.Errorf("turn %d after wait, want 2", md.w.Turn)
	}
	md.Update(gruid.MsgKeyDown{Key: "H"})
	if md.status != "No creature at cursor." {
		t.Errorf("bad status: %q", md.status)
	}
	if eff := md.Update(gruid.MsgKeyDown{Key: "q"}); eff == nil {
		t.Error("no quit effect")
	}
}

func TestModelDraw(t *testing.T) {
	md := newTestModel()
	md.Update(gruid.MsgKeyDown{Key: "r"})
	gd := md.Draw()
	pa, _ := md.w.Actor(md.lvl.player)
	if c := gd.At(pa.P); c.Rune != '@' {
		t.Errorf("player drawn as %q", c.Rune)
	}
	if c := gd.At(gruid.Point{0, 0}); c.Rune != '#' {
		t.Errorf("corner drawn as %q", c.Rune)
	}
}

func TestDemo(t *testing.T) {
	w := cloudfx.NewWorld(cloudfx.DefaultConfig(), cloudfx.NewRand(7), nil)
	lvl := newLevel(w)
	lvl.demo()
	if w.Turn != 4 {
		t.Errorf("turn %d, want 4", w.Turn)
	}
	if lvl.devotion.Donations != 5 {
		t.Errorf("donations %d, want 5", lvl.devotion.Donations)
	}
	if !strings.Contains(w.DumpMap(), "@") {
		t.Error("no player in dump")
	}
}

// cloudsAfterDraws draws the screen n times with a fire cloud in view, then
// casts a poisonous cloud and returns the resulting clouds.
func cloudsAfterDraws(n int) string {
	md := newTestModel()
	pa, _ := md.w.Actor(md.lvl.player)
	md.w.PlaceCloud(cloudfx.NewCloud(cloudfx.CloudFire, pa.P.Shift(1, 1), 10, cloudfx.NoActor))
	for range n {
		md.Draw()
	}
	md.w.CastBigCloud(md.lvl.player, cloudfx.SpellPoisonousCloud, pa.P.Shift(-8, 0), spellRange, spellPower, false)
	md.w.EndTurn()
	return fmt.Sprintf("%+v", md.w.Map.Clouds.Clouds)
}

func TestDrawKeepsOutcomes(t *testing.T) {
	want := cloudsAfterDraws(0)
	if got := cloudsAfterDraws(3); got != want {
		t.Errorf("drawing changed cloud outcomes:\n%s\nwant:\n%s", got, want)
	}
}

package cloudfx

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

// fixedRand always draws the lowest value, or the highest one with max.
type fixedRand struct {
	max bool
}

func (r fixedRand) IntN(n int) int {
	if r.max {
		return n - 1
	}
	return 0
}

func newTestWorld(r Rand) *World {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 10
	return NewWorld(cfg, r, nil)
}

func addPlayer(w *World, p gruid.Point) ActorID {
	return w.AddActor(&Actor{Name: "you", P: p, Player: true, HD: 10})
}

func addMonster(w *World, name string, p gruid.Point) ActorID {
	return w.AddActor(&Actor{Name: name, P: p, HD: 5})
}

func countClouds(w *World, kind CloudKind) int {
	n := 0
	for _, k := range w.Map.Clouds.All() {
		if k == kind {
			n++
		}
	}
	return n
}

func TestRandomHelpers(t *testing.T) {
	w := newTestWorld(fixedRand{max: true})
	if got := w.IntN(0); got != 0 {
		t.Errorf("IntN(0) = %d", got)
	}
	if got := w.Random2Avg(8, 2); got != 7 {
		t.Errorf("Random2Avg(8, 2) = %d, want 7", got)
	}
	if w.XChanceInY(50, 100) {
		t.Error("XChanceInY(50, 100) with high draw")
	}
	if !w.XChanceInY(100, 100) {
		t.Error("XChanceInY(100, 100) should always succeed")
	}
	if w.XChanceInY(0, 100) {
		t.Error("XChanceInY(0, 100) should never succeed")
	}
	w.SetRand(fixedRand{})
	if got := w.DivRandRound(7, 2); got != 4 {
		t.Errorf("DivRandRound(7, 2) = %d, want 4", got)
	}
	if got := w.DivRandRound(6, 2); got != 3 {
		t.Errorf("DivRandRound(6, 2) = %d, want 3", got)
	}
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(Config{}, NewRand(1), nil)
	size := w.Map.Terrain.Size()
	def := DefaultConfig()
	if size.X != def.Width || size.Y != def.Height {
		t.Errorf("bad default size: %v", size)
	}
	if w.Debugger() == nil {
		t.Error("nil debug logger")
	}
}

func TestNewWorldNilRand(t *testing.T) {
	w := NewWorld(Config{}, nil, nil)
	if got := w.IntN(10); got < 0 || got >= 10 {
		t.Errorf("IntN(10) = %d", got)
	}
	v := NewWorld(Config{}, NewRand(0), nil)
	for range 20 {
		if a, b := w.IntN(1000), v.IntN(1000); a != b {
			t.Fatalf("nil source differs from seed 0: %d != %d", a, b)
		}
	}
}

func TestLogDuplicates(t *testing.T) {
	w := newTestWorld(fixedRand{})
	w.Log("a message")
	w.Log("a message")
	if len(w.Logs.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(w.Logs.Entries))
	}
	if got := w.Logs.Entries[0].String(); got != "• A message (2×)" {
		t.Errorf("bad entry: %q", got)
	}
	w.EndTurn()
	w.Log("a message")
	if len(w.Logs.Entries) != 2 {
		t.Errorf("new turn entry should not collapse: %d entries", len(w.Logs.Entries))
	}
}

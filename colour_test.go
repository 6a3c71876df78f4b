package cloudfx

import (
	"strings"
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestStrToColour(t *testing.T) {
	tests := map[string]gruid.Color{
		"red":        ColorOrange,
		"Light Red":  ColorRed,
		"light_grey": ColorForegroundSecondary,
		"WHITE":      ColorForegroundEmph,
	}
	for s, want := range tests {
		if c, ok := StrToColour(s); !ok || c != want {
			t.Errorf("StrToColour(%q) = %v, %v", s, c, ok)
		}
	}
	if _, ok := StrToColour("plaid"); ok {
		t.Error("unknown colour accepted")
	}
}

func TestElementColours(t *testing.T) {
	w := newTestWorld(fixedRand{})
	w.SetUIRand(fixedRand{max: true})
	ec := NewElementColours()
	draws := []int{}
	err := ec.Register("Flicker", func(rand int, p gruid.Point) string {
		draws = append(draws, rand)
		if rand < ElementRandRange/2 {
			return "yellow"
		}
		return "light red"
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ec.Has("flicker") {
		t.Error("registered colour not found")
	}
	if c := w.ElementColour(ec, "flicker", gruid.Point{1, 1}, false); c != ColorRed {
		t.Errorf("random draw colour %v", c)
	}
	if c := w.ElementColour(ec, "flicker", gruid.Point{1, 1}, true); c != ColorYellow {
		t.Errorf("non random colour %v", c)
	}
	if draws[0] != ElementRandRange-1 || draws[1] != 0 {
		t.Errorf("bad draws: %v", draws)
	}
	if c := w.ElementColour(ec, "green", gruid.Point{}, false); c != ColorGreen {
		t.Errorf("basic colour %v", c)
	}
}

func TestElementColoursErrors(t *testing.T) {
	w := newTestWorld(fixedRand{})
	ec := NewElementColours()
	if err := ec.Register("red", func(int, gruid.Point) string { return "red" }); err == nil {
		t.Error("basic colour redefined")
	}
	if err := ec.Register("nothing", nil); err == nil {
		t.Error("nil function accepted")
	}
	if err := ec.Register("", func(int, gruid.Point) string { return "red" }); err == nil {
		t.Error("empty name accepted")
	}
	ec.Register("broken", func(int, gruid.Point) string { return "ultraviolet" })
	if c := w.ElementColour(ec, "broken", gruid.Point{}, false); c != ColorBackground {
		t.Errorf("bad output gave %v", c)
	}
	e := w.Logs.Entries[len(w.Logs.Entries)-1]
	if e.Style != LogWarn || !strings.Contains(e.Text, "ultraviolet") {
		t.Errorf("bad warning: %+v", e)
	}
	if c := w.ElementColour(ec, "missing", gruid.Point{}, false); c != ColorBackground {
		t.Errorf("unknown element gave %v", c)
	}
}

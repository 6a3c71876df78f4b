package main

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
	"codeberg.org/rlkit/cloudfx"
)

const (
	spellPower = 50
	spellRange = 10
	logLines   = 2
)

// model implements gruid.Model for the viewer.
type model struct {
	gd     gruid.Grid
	lvl    *level
	w      *cloudfx.World
	cursor gruid.Point
	ec     *cloudfx.ElementColours
	status string
}

func newModel(w *cloudfx.World, lvl *level) *model {
	size := w.Map.Terrain.Size()
	md := &model{
		gd:  gruid.NewGrid(size.X, size.Y+logLines+1),
		lvl: lvl,
		w:   w,
		ec:  cloudfx.NewElementColours(),
	}
	md.initElementColours()
	return md
}

func (md *model) initElementColours() {
	md.ec.Register("fire", func(rand int, _ gruid.Point) string {
		switch {
		case rand < 40:
			return "red"
		case rand < 80:
			return "light red"
		default:
			return "yellow"
		}
	})
	md.ec.Register("foliage", func(rand int, p gruid.Point) string {
		if (p.X+p.Y)%3 == 0 {
			return "brown"
		}
		return "green"
	})
}

// Update implements gruid.Model.Update.
func (md *model) Update(msg gruid.Msg) gruid.Effect {
	switch msg := msg.(type) {
	case gruid.MsgInit:
		if pa, ok := md.w.Actor(md.lvl.player); ok {
			md.cursor = pa.P
		}
		md.status = "b/f: poison/freezing cloud at cursor, c: conjure flame, r: corpse rot, H: holy flames, .: wait, q: quit"
	case gruid.MsgKeyDown:
		return md.updateKeyDown(msg)
	}
	return nil
}

func (md *model) updateKeyDown(msg gruid.MsgKeyDown) gruid.Effect {
	w := md.w
	pl := md.lvl.player
	var out cloudfx.Outcome
	switch msg.Key {
	case gruid.KeyArrowLeft, "4":
		md.moveCursor(gruid.Point{-1, 0})
		return nil
	case gruid.KeyArrowRight, "6":
		md.moveCursor(gruid.Point{1, 0})
		return nil
	case gruid.KeyArrowUp, "8":
		md.moveCursor(gruid.Point{0, -1})
		return nil
	case gruid.KeyArrowDown, "2":
		md.moveCursor(gruid.Point{0, 1})
		return nil
	case "b":
		out = w.CastBigCloud(pl, cloudfx.SpellPoisonousCloud, md.cursor, spellRange, spellPower, false)
	case "f":
		out = w.CastBigCloud(pl, cloudfx.SpellFreezingCloud, md.cursor, spellRange, spellPower, false)
	case "c":
		out = w.ConjureFlame(pl, spellPower, false)
	case "r":
		out = w.CorpseRot(pl, spellPower, true)
	case "H":
		id, _ := w.ActorAt(md.cursor)
		if id == cloudfx.NoActor {
			md.status = "No creature at cursor."
			return nil
		}
		if w.HolyFlames(pl, id) > 0 {
			out = cloudfx.OutcomeSuccess
		} else {
			out = cloudfx.OutcomeNone
		}
	case "g":
		if md.lvl.pickUpGold() {
			out = cloudfx.OutcomeSuccess
		} else {
			md.status = "There is no gold here."
			return nil
		}
	case ".", "5":
		out = cloudfx.OutcomeSuccess
	case "q", gruid.KeyEscape:
		return gruid.End()
	default:
		return nil
	}
	if out != cloudfx.OutcomeAbort {
		w.EndTurn()
	}
	md.status = fmt.Sprintf("Turn %d: %s.", w.Turn, out)
	return nil
}

func (md *model) moveCursor(delta gruid.Point) {
	if p := md.cursor.Add(delta); md.w.InBounds(p) {
		md.cursor = p
	}
}

// Draw implements gruid.Model.Draw.
func (md *model) Draw() gruid.Grid {
	md.gd.Fill(gruid.Cell{Rune: ' '})
	size := md.w.Map.Terrain.Size()
	mapgd := md.gd.Slice(gruid.NewRange(0, 0, size.X, size.Y))
	for p := range md.w.Map.Terrain.All() {
		c := md.cellAt(p)
		if p == md.cursor {
			c.Style.Attrs |= md.w.Config.CursorAttr
			if md.w.Config.CursorAttr&cloudfx.AttrHighlight != 0 {
				c.Style.Bg = md.w.Config.CursorColour
			}
		}
		mapgd.Set(p, c)
	}
	md.drawLog(md.gd.Slice(md.gd.Range().Lines(size.Y, size.Y+logLines)))
	st := gruid.Style{}.WithFg(cloudfx.ColorForegroundSecondary)
	ui.Text(md.status).WithStyle(st).Draw(md.gd.Slice(md.gd.Range().Lines(size.Y+logLines, size.Y+logLines+1)))
	return md.gd
}

func (md *model) drawLog(gd gruid.Grid) {
	entries := md.w.Logs.Entries
	start := max(len(entries)-logLines, 0)
	for i, e := range entries[start:] {
		st := gruid.Style{}.WithFg(e.Style.Color())
		ui.Text(e.String()).WithStyle(st).Draw(gd.Slice(gd.Range().Line(i)))
	}
}

// cellAt returns the map cell at p: actors first, then clouds, items and
// terrain.
func (md *model) cellAt(p gruid.Point) gruid.Cell {
	w := md.w
	if _, a := w.ActorAt(p); a != nil {
		if a.Player {
			return gruid.Cell{Rune: '@', Style: gruid.Style{Fg: cloudfx.ColorForegroundEmph}}
		}
		return gruid.Cell{Rune: 'm', Style: gruid.Style{Fg: cloudfx.ColorOrange}}
	}
	if cl := w.Map.Clouds.At(p); cl.Kind != cloudfx.NoCloud {
		fg := cl.Kind.Color()
		if cl.Kind == cloudfx.CloudFire {
			fg = w.ElementColour(md.ec, "fire", p, false)
		}
		fg = w.Config.CloudThresholds.Colour(cl.Duration, fg)
		return gruid.Cell{Rune: cl.Kind.Rune(), Style: gruid.Style{Fg: fg}}
	}
	if items := w.ItemsAt(p); len(items) > 0 {
		return gruid.Cell{Rune: itemRune(items[len(items)-1]), Style: gruid.Style{Fg: cloudfx.ColorYellow}}
	}
	t := w.Map.Terrain.At(p)
	st := gruid.Style{Fg: cloudfx.ColorForeground}
	switch t {
	case cloudfx.Wall, cloudfx.TranslucentWall:
		st.Fg = cloudfx.ColorForegroundSecondary
	case cloudfx.Foliage:
		st.Fg = w.ElementColour(md.ec, "foliage", p, true)
	}
	if w.Map.IsSanctuary(p) {
		st.Bg = cloudfx.ColorBackgroundSecondary
	}
	return gruid.Cell{Rune: cloudfx.TerrainRune(t), Style: st}
}

func itemRune(it *cloudfx.Item) rune {
	switch it.Kind {
	case cloudfx.ItemCorpse:
		return '†'
	case cloudfx.ItemSkeleton:
		return '÷'
	default:
		return '$'
	}
}

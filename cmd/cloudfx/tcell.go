package main

import (
	"codeberg.org/anaseto/gruid"
	tcell "codeberg.org/anaseto/gruid-tcell"
	"codeberg.org/rlkit/cloudfx"
	tc "github.com/gdamore/tcell/v2"
)

type colorMode int

const (
	colorMode16 colorMode = iota
	colorMode256
)

func newDriver(mode colorMode) gruid.Driver {
	st := styler{mode: mode}
	return tcell.NewDriver(tcell.Config{StyleManager: st})
}

// styler implements the tcell.StyleManager interface.
type styler struct {
	mode colorMode
}

func (sty styler) GetStyle(cst gruid.Style) tc.Style {
	st := tc.StyleDefault
	switch sty.mode {
	case colorMode256:
		cst.Fg = map16ColorTo256(cst.Fg, true)
		cst.Bg = map16ColorTo256(cst.Bg, false)
		st = st.Background(tc.ColorValid + tc.Color(cst.Bg)).Foreground(tc.ColorValid + tc.Color(cst.Fg))
	default:
		fg := tc.Color(cst.Fg)
		bg := tc.Color(cst.Bg)
		if cst.Bg == gruid.ColorDefault {
			st = st.Background(tc.ColorDefault)
		} else {
			st = st.Background(tc.ColorValid + bg - 1)
		}
		if cst.Fg == gruid.ColorDefault {
			st = st.Foreground(tc.ColorDefault)
		} else {
			st = st.Foreground(tc.ColorValid + fg - 1)
		}
	}
	if cst.Attrs&(cloudfx.AttrReverse|cloudfx.AttrStandout) != 0 {
		st = st.Reverse(true)
	}
	if cst.Attrs&(cloudfx.AttrBold|cloudfx.AttrStandout) != 0 {
		st = st.Bold(true)
	}
	if cst.Attrs&cloudfx.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if cst.Attrs&cloudfx.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if cst.Attrs&cloudfx.AttrDim != 0 {
		st = st.Dim(true)
	}
	return st
}

// xterm solarized colors: http://ethanschoonover.com/solarized
const (
	color256Base03  gruid.Color = 234
	color256Base02  gruid.Color = 235
	color256Base01  gruid.Color = 240
	color256Base0   gruid.Color = 244
	color256Base1   gruid.Color = 245
	color256Yellow  gruid.Color = 136
	color256Orange  gruid.Color = 166
	color256Red     gruid.Color = 160
	color256Magenta gruid.Color = 125
	color256Violet  gruid.Color = 61
	color256Blue    gruid.Color = 33
	color256Cyan    gruid.Color = 37
	color256Green   gruid.Color = 64
)

func map16ColorTo256(c gruid.Color, fg bool) gruid.Color {
	switch c {
	case cloudfx.ColorBackground:
		if fg {
			return color256Base0
		}
		return color256Base03
	case cloudfx.ColorBackgroundSecondary:
		return color256Base02
	case cloudfx.ColorForegroundEmph:
		return color256Base1
	case cloudfx.ColorForegroundSecondary:
		return color256Base01
	case cloudfx.ColorYellow:
		return color256Yellow
	case cloudfx.ColorOrange:
		return color256Orange
	case cloudfx.ColorRed:
		return color256Red
	case cloudfx.ColorMagenta:
		return color256Magenta
	case cloudfx.ColorViolet:
		return color256Violet
	case cloudfx.ColorBlue:
		return color256Blue
	case cloudfx.ColorCyan:
		return color256Cyan
	case cloudfx.ColorGreen:
		return color256Green
	default:
		return c
	}
}

package cloudfx

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
)

// Thoses are the colors of the main palette. They are given 16-palette color
// numbers compatible with terminals, though drivers may map them to more
// precise colors.
const (
	ColorBackground          gruid.Color = gruid.ColorDefault // background
	ColorBackgroundSecondary gruid.Color = 1 + 0              // black
	ColorForeground          gruid.Color = gruid.ColorDefault
	ColorForegroundSecondary gruid.Color = 1 + 7  // white
	ColorForegroundEmph      gruid.Color = 1 + 15 // bright white
	ColorRed                 gruid.Color = 1 + 9  // bright red
	ColorGreen               gruid.Color = 1 + 2
	ColorYellow              gruid.Color = 1 + 3
	ColorBlue                gruid.Color = 1 + 4
	ColorMagenta             gruid.Color = 1 + 5
	ColorCyan                gruid.Color = 1 + 6
	ColorOrange              gruid.Color = 1 + 1  // red
	ColorViolet              gruid.Color = 1 + 12 // bright blue
)

// Those constants represent available styling attributes.
const (
	AttrReverse gruid.AttrMask = 1 << iota
	AttrBold
	AttrUnderline
	AttrBlink
	AttrDim
	AttrStandout
	AttrHighlight // background highlight, color in Style.Bg
)

var colourNames = map[string]gruid.Color{
	"black":     ColorBackgroundSecondary,
	"red":       ColorOrange,
	"lightred":  ColorRed,
	"green":     ColorGreen,
	"brown":     ColorYellow,
	"yellow":    ColorYellow,
	"blue":      ColorBlue,
	"lightblue": ColorViolet,
	"magenta":   ColorMagenta,
	"cyan":      ColorCyan,
	"lightgrey": ColorForegroundSecondary,
	"lightgray": ColorForegroundSecondary,
	"white":     ColorForegroundEmph,
	"default":   ColorForeground,
}

// StrToColour returns the palette color with the given name. Names are case
// insensitive and ignore spaces and underscores.
func StrToColour(s string) (gruid.Color, bool) {
	s = strings.ToLower(s)
	s = strings.NewReplacer(" ", "", "_", "").Replace(s)
	c, ok := colourNames[s]
	return c, ok
}

// ElementRandRange is the exclusive upper bound of the random draw passed to
// element colour functions.
const ElementRandRange = 120

// ElementColourFunc computes the name of a basic colour for the given random
// draw and position.
type ElementColourFunc func(rand int, p gruid.Point) string

// ElementColours is a registry of named element colours, computed by plugin
// functions.
type ElementColours struct {
	fns map[string]ElementColourFunc
}

// NewElementColours returns an empty registry.
func NewElementColours() *ElementColours {
	return &ElementColours{fns: map[string]ElementColourFunc{}}
}

// Register adds or replaces the element colour with the given name. Basic
// colour names cannot be redefined.
func (ec *ElementColours) Register(name string, fn ElementColourFunc) error {
	if name == "" {
		return fmt.Errorf("empty element colour name")
	}
	if fn == nil {
		return fmt.Errorf("expected colour generation function for %s", name)
	}
	if _, ok := StrToColour(name); ok {
		return fmt.Errorf("cannot redefine basic colour: %s", name)
	}
	ec.fns[strings.ToLower(name)] = fn
	return nil
}

// Has reports whether an element colour with the given name exists.
func (ec *ElementColours) Has(name string) bool {
	_, ok := ec.fns[strings.ToLower(name)]
	return ok
}

// ElementColour returns the color of the named element at p. Basic colour names
// resolve directly. With nonRandom, the draw passed to the function is 0,
// otherwise it comes from the display random source.
// Unknown names and bad function output are logged and yield the background
// color.
func (w *World) ElementColour(ec *ElementColours, name string, p gruid.Point, nonRandom bool) gruid.Color {
	if c, ok := StrToColour(name); ok {
		return c
	}
	fn, ok := ec.fns[strings.ToLower(name)]
	if !ok {
		w.LogfStyled("Unknown colour: %s", LogWarn, name)
		return ColorBackground
	}
	r := 0
	if !nonRandom {
		r = w.uiRand.IntN(ElementRandRange)
	}
	out := fn(r, p)
	c, ok := StrToColour(out)
	if !ok {
		w.LogfStyled("Element colour %s: unknown colour %q", LogWarn, name, out)
		return ColorBackground
	}
	return c
}

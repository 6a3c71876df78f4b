package cloudfx

import (
	"slices"
	"strconv"
	"strings"

	"codeberg.org/anaseto/gruid"
	"github.com/pkg/errors"
)

// MaybeBool is a boolean option value that may be left undecided.
type MaybeBool int

const (
	Maybe MaybeBool = iota
	True
	False
)

// ReadMaybeBool parses true/1/yes and false/0/no, returning Maybe for
// anything else.
func ReadMaybeBool(field string) MaybeBool {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "true", "1", "yes":
		return True
	case "false", "0", "no":
		return False
	default:
		return Maybe
	}
}

// ReadBool parses a boolean option, reporting an error and returning def
// when field is not a boolean.
func ReadBool(field string, def bool) (bool, error) {
	switch ReadMaybeBool(field) {
	case True:
		return true, nil
	case False:
		return false, nil
	default:
		return def, errors.Errorf("Bad boolean: %s (should be true or false)", field)
	}
}

// ParseAttr parses a curses-like attribute name. A highlight attribute,
// written hi:colour (or hilite:, highlight:), also returns its colour.
func ParseAttr(field string) (gruid.AttrMask, gruid.Color, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	switch field {
	case "standout":
		return AttrStandout, 0, nil
	case "bold":
		return AttrBold, 0, nil
	case "blink":
		return AttrBlink, 0, nil
	case "underline":
		return AttrUnderline, 0, nil
	case "reverse":
		return AttrReverse, 0, nil
	case "dim":
		return AttrDim, 0, nil
	case "none", "":
		return 0, 0, nil
	}
	for _, prefix := range []string{"hi:", "hilite:", "highlight:"} {
		col, ok := strings.CutPrefix(field, prefix)
		if !ok {
			continue
		}
		c, ok := StrToColour(col)
		if !ok {
			return 0, 0, errors.Errorf("Bad highlight string -- %s", field)
		}
		return AttrHighlight, c, nil
	}
	return 0, 0, errors.Errorf("Bad colour -- %s", field)
}

// ParseIntOption parses the value of an integer option named name, which
// must be in [lo, hi].
func ParseIntOption(name, field string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, errors.Errorf("Bad %s: \"%s\"", name, field)
	}
	if n < lo {
		return 0, errors.Errorf("Bad %s: \"%s\", should be >= %d", name, field, lo)
	}
	if n > hi {
		return 0, errors.Errorf("Bad %s: \"%s\", should be <= %d", name, field, hi)
	}
	return n, nil
}

// LineType describes how an option line combines with the previous value.
type LineType int

const (
	LineSet     LineType = iota // =
	LineAppend                  // +=
	LinePrepend                 // ^=
	LineRemove                  // -=
)

func (lt LineType) String() string {
	switch lt {
	case LineAppend:
		return "+="
	case LinePrepend:
		return "^="
	case LineRemove:
		return "-="
	default:
		return "="
	}
}

// ColourThreshold associates a colour to values up to Value.
type ColourThreshold struct {
	Value  int         `json:"value"`
	Colour gruid.Color `json:"colour"`
}

// ColourThresholds is a list of thresholds sorted by value.
type ColourThresholds []ColourThreshold

// ParseColourThresholds parses a list of n:colour pairs separated by commas
// for the option named name. The result is stably sorted by value.
func ParseColourThresholds(name, field string) (ColourThresholds, error) {
	var cts ColourThresholds
	for _, pair := range strings.Split(field, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		sv, sc, ok := strings.Cut(pair, ":")
		if !ok || strings.Contains(sc, ":") {
			return nil, errors.Errorf("Bad %s pair: '%s'", name, pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(sv))
		if err != nil {
			return nil, errors.Errorf("Bad %s: '%s'", name, pair)
		}
		c, ok := StrToColour(strings.TrimSpace(sc))
		if !ok {
			return nil, errors.Errorf("Bad %s: '%s'", name, pair)
		}
		cts = append(cts, ColourThreshold{Value: n, Colour: c})
	}
	cts.sort()
	return cts, nil
}

func (cts ColourThresholds) sort() {
	slices.SortStableFunc(cts, func(a, b ColourThreshold) int {
		return a.Value - b.Value
	})
}

// Apply combines new thresholds into cts according to the line type and
// returns the result. Appended thresholds are stably sorted by value, and
// removal drops every threshold equal to one of the new ones.
func (cts ColourThresholds) Apply(lt LineType, nts ColourThresholds) ColourThresholds {
	switch lt {
	case LineAppend, LinePrepend:
		cts = append(slices.Clone(cts), nts...)
		cts.sort()
	case LineRemove:
		cts = slices.DeleteFunc(slices.Clone(cts), func(ct ColourThreshold) bool {
			return slices.Contains(nts, ct)
		})
	default:
		cts = slices.Clone(nts)
		cts.sort()
	}
	return cts
}

// Colour returns the colour of the first threshold not below v, or def if
// there is none.
func (cts ColourThresholds) Colour(v int, def gruid.Color) gruid.Color {
	for _, ct := range cts {
		if v <= ct.Value {
			return ct.Colour
		}
	}
	return def
}

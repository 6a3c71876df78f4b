package cloudfx

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDebugLogger returns a logger appending to the configured debug log
// file. In debug mode, the logger uses the development configuration, so
// that invariant violations reported with DPanic panic; otherwise they are
// only logged.
func NewDebugLogger(cfg Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Debug {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableStacktrace = true
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Encoding = "console"
		zapCfg.Sampling = nil
	}
	path := cfg.DebugLog
	if path == "" {
		path = "debuglog.txt"
	}
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

// Debugger returns the world's debug logger.
func (w *World) Debugger() *zap.Logger {
	return w.debug
}

// Debuglog writes a formatted line to the debug log.
func (w *World) Debuglog(format string, a ...any) {
	w.debug.Info(fmt.Sprintf(format, a...), zap.Int("turn", w.Turn))
}

// checkActor returns the actor for a handle that is expected to be valid.
// Invalid handles are reported as invariant violations.
func (w *World) checkActor(id ActorID, what string) (*Actor, bool) {
	a, ok := w.Actor(id)
	if !ok {
		w.debug.DPanic("invalid actor handle",
			zap.String("role", what), zap.String("actor", w.ActorString(id)))
	}
	return a, ok
}

// CoordString returns a debug representation of a position, marking
// positions outside the map.
func (w *World) CoordString(p gruid.Point) string {
	s := fmt.Sprintf("(%d, %d)", p.X, p.Y)
	if !w.InBounds(p) {
		s += " <OoB>"
	}
	return s
}

// ActorString returns a short debug description of an actor.
func (w *World) ActorString(id ActorID) string {
	if id == NoActor {
		return "none"
	}
	a, ok := w.Actor(id)
	if !ok {
		return fmt.Sprintf("Invalid actor index %d", id)
	}
	s := fmt.Sprintf("%s [%d] at %s", a.Name, id, w.CoordString(a.P))
	if a.Dead {
		s += " (dead)"
	}
	return s
}

// DumpActor returns a multi-line debug description of an actor, including
// the clouds attributed to it.
func (w *World) DumpActor(id ActorID) string {
	a, ok := w.Actor(id)
	if !ok {
		return fmt.Sprintf("Invalid actor index %d\n", id)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Actor: %s\n", w.ActorString(id))
	fmt.Fprintf(&sb, "  player: %v\n", a.Player)
	fmt.Fprintf(&sb, "  hit dice: %d\n", a.HD)
	fmt.Fprintf(&sb, "  can smell: %v\n", !a.NoSmell)
	if !w.InBounds(a.P) {
		fmt.Fprintf(&sb, "  position out of bounds!\n")
	}
	cl := w.Map.Clouds.At(a.P)
	if cl.Kind != NoCloud {
		fmt.Fprintf(&sb, "  standing in %s (%d turns)\n", cl.Kind, cl.Duration)
	}
	n := 0
	for _, c := range w.Map.Clouds.Clouds {
		if c.Source == id {
			n++
		}
	}
	fmt.Fprintf(&sb, "  attributed clouds: %d\n", n)
	return sb.String()
}

// DumpMap returns a text map of terrain, clouds and actors: actors as '@'
// (player) or 'm', clouds with their kind's rune, and terrain otherwise.
func (w *World) DumpMap() string {
	var sb strings.Builder
	size := w.Map.Terrain.Size()
	for p, t := range w.Map.Terrain.All() {
		if p.X == 0 && p.Y > 0 {
			sb.WriteRune('\n')
		}
		if _, a := w.ActorAt(p); a != nil {
			if a.Player {
				sb.WriteRune('@')
			} else {
				sb.WriteRune('m')
			}
			continue
		}
		if cl := w.Map.Clouds.At(p); cl.Kind != NoCloud {
			sb.WriteRune(cl.Kind.Rune())
			continue
		}
		sb.WriteRune(TerrainRune(t))
	}
	if size.Y > 0 {
		sb.WriteRune('\n')
	}
	return sb.String()
}

// TerrainRune returns the character rune representing a given terrain.
func TerrainRune(t rl.Cell) (r rune) {
	switch t {
	case Wall:
		r = '#'
	case Floor:
		r = '.'
	case Foliage:
		r = '"'
	case Rubble:
		r = ':'
	case TranslucentWall:
		r = '◊'
	default:
		r = '?'
	}
	return r
}

package cloudfx

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"codeberg.org/anaseto/gruid"
	"go.uber.org/zap"
)

// Logs contains the player-facing messages.
type Logs struct {
	Entries  []LogEntry // all the log entries
	Index    int        // index of next log entry
	NextTick int        // index of first log entry in a turn
}

// LogEntry describes a log entry.
type LogEntry struct {
	Text  string   // text for entry
	Index int      // index of entry in log
	Tick  bool     // whether first entry in a turn
	Style LogStyle // style
	Dups  int      // number of duplicates of current entry
}

func (e LogEntry) String() string {
	tick := ""
	if e.Tick {
		tick = "• "
	}
	s := e.Text
	if e.Dups > 0 {
		s += fmt.Sprintf(" (%d×)", e.Dups+1)
	}
	return tick + s
}

// LogStyle describes various logging styles.
type LogStyle int

const (
	LogNormal  LogStyle = iota
	LogError            // game error
	LogGod              // divine messages
	LogNotable          // when you notice something notable
	LogWarn             // warnings (bad plugin output and the like)
)

// Color returns the color used for each log style.
func (st LogStyle) Color() (c gruid.Color) {
	switch st {
	case LogError:
		c = ColorRed
	case LogGod:
		c = ColorYellow
	case LogNotable:
		c = ColorCyan
	case LogWarn:
		c = ColorOrange
	default:
		c = ColorForeground
	}
	return c
}

// UpperFirst returns a string with its first letter in upper case.
func UpperFirst(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[utf8.RuneLen(r):]
}

func (w *World) Log(s string) {
	w.LogEntry(LogEntry{Text: UpperFirst(s), Index: w.Logs.Index})
}

func (w *World) LogStyled(s string, style LogStyle) {
	w.LogEntry(LogEntry{Text: UpperFirst(s), Index: w.Logs.Index, Style: style})
}

func (w *World) Logf(format string, a ...any) {
	w.LogEntry(LogEntry{Text: UpperFirst(fmt.Sprintf(format, a...)), Index: w.Logs.Index})
}

func (w *World) LogfStyled(format string, style LogStyle, a ...any) {
	e := LogEntry{Text: UpperFirst(fmt.Sprintf(format, a...)), Index: w.Logs.Index, Style: style}
	w.LogEntry(e)
}

// LogEntry adds a new log entry to the message log.
func (w *World) LogEntry(e LogEntry) {
	if e.Index == w.Logs.NextTick {
		e.Tick = true
	}
	if !e.Tick && len(w.Logs.Entries) > 0 {
		le := &w.Logs.Entries[len(w.Logs.Entries)-1]
		if le.Text == e.Text {
			le.Dups++
			return
		}
	}
	w.debug.Debug("message", zap.Int("turn", w.Turn), zap.String("text", e.Text))
	w.Logs.Entries = append(w.Logs.Entries, e)
	w.Logs.Index++
	if len(w.Logs.Entries) > 10000 {
		w.Logs.Entries = w.Logs.Entries[1000:]
	}
}

// LastMessage returns the text of the last log entry, if any.
func (w *World) LastMessage() string {
	if len(w.Logs.Entries) == 0 {
		return ""
	}
	return w.Logs.Entries[len(w.Logs.Entries)-1].Text
}

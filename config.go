package cloudfx

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"codeberg.org/anaseto/gruid"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

// Config holds the tunables of a world. It is loaded from an rc file with
// lines of the form key = value.
type Config struct {
	Width            int              `json:"width" jsonschema:"title=Map width,description=Number of columns of the map,minimum=1"`
	Height           int              `json:"height" jsonschema:"title=Map height,description=Number of rows of the map,minimum=1"`
	LOSRadius        int              `json:"los_radius" jsonschema:"title=Line of sight radius,minimum=1"`
	MaxCloudDuration int              `json:"max_cloud_duration" jsonschema:"title=Maximum cloud duration,description=Cap on the duration of a reinforced cloud,minimum=1"`
	Debug            bool             `json:"debug" jsonschema:"description=Invariant violations panic instead of being logged"`
	DebugLog         string           `json:"debug_log" jsonschema:"description=File the diagnostics are appended to"`
	CloudThresholds  ColourThresholds `json:"cloud_thresholds,omitempty" jsonschema:"description=Colours of clouds by remaining duration"`
	CursorAttr       gruid.AttrMask   `json:"cursor_attr" jsonschema:"description=Styling attributes of the viewer cursor"`
	CursorColour     gruid.Color      `json:"cursor_colour" jsonschema:"description=Highlight colour of the viewer cursor"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:            80,
		Height:           21,
		LOSRadius:        7,
		MaxCloudDuration: 100,
		DebugLog:         "debuglog.txt",
		CloudThresholds:  ColourThresholds{{Value: 2, Colour: ColorForegroundSecondary}},
		CursorAttr:       AttrReverse,
	}
}

// Config option limits.
const (
	maxMapSize       = 255
	maxLOSRadius     = 30
	maxCloudDuration = 10000
)

// LoadConfig reads the rc file at path on top of the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading rc file")
	}
	defer f.Close()
	err = cfg.ReadRC(f, path)
	return cfg, err
}

// ReadRC applies the options read from r. The name is used in error
// messages.
func (cfg *Config) ReadRC(r io.Reader, name string) error {
	sc := bufio.NewScanner(r)
	lnum := 0
	for sc.Scan() {
		lnum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, lt, value, err := splitOptionLine(line)
		if err == nil {
			err = cfg.SetOption(key, lt, value)
		}
		if err != nil {
			return errors.Wrapf(err, "%s:%d", name, lnum)
		}
	}
	return errors.Wrapf(sc.Err(), "reading %s", name)
}

// splitOptionLine splits a line of the form key op value, where op is one of
// =, +=, ^= or -=.
func splitOptionLine(line string) (string, LineType, string, error) {
	i := strings.IndexByte(line, '=')
	if i <= 0 {
		return "", LineSet, "", errors.Errorf("Bad option line: %s", line)
	}
	lt := LineSet
	key := line[:i]
	switch line[i-1] {
	case '+':
		lt = LineAppend
	case '^':
		lt = LinePrepend
	case '-':
		lt = LineRemove
	}
	if lt != LineSet {
		key = line[:i-1]
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", LineSet, "", errors.Errorf("Bad option line: %s", line)
	}
	return key, lt, strings.TrimSpace(line[i+1:]), nil
}

// SetOption sets a single option. Only list options accept line types other
// than LineSet.
func (cfg *Config) SetOption(key string, lt LineType, value string) error {
	if key != "cloud_thresholds" && lt != LineSet {
		return errors.Errorf("Bad line type %s for option %s", lt, key)
	}
	var err error
	switch key {
	case "width":
		cfg.Width, err = ParseIntOption(key, value, 1, maxMapSize)
	case "height":
		cfg.Height, err = ParseIntOption(key, value, 1, maxMapSize)
	case "los_radius":
		cfg.LOSRadius, err = ParseIntOption(key, value, 1, maxLOSRadius)
	case "max_cloud_duration":
		cfg.MaxCloudDuration, err = ParseIntOption(key, value, 1, maxCloudDuration)
	case "debug":
		cfg.Debug, err = ReadBool(value, cfg.Debug)
	case "debug_log":
		if value == "" {
			return errors.New("Bad debug_log: empty path")
		}
		cfg.DebugLog = value
	case "cloud_thresholds":
		var cts ColourThresholds
		cts, err = ParseColourThresholds(key, value)
		if err == nil {
			cfg.CloudThresholds = cfg.CloudThresholds.Apply(lt, cts)
		}
	case "cursor_attr":
		var attr gruid.AttrMask
		var c gruid.Color
		attr, c, err = ParseAttr(value)
		if err == nil {
			cfg.CursorAttr, cfg.CursorColour = attr, c
		}
	default:
		return errors.Errorf("Unknown option: %s", key)
	}
	return err
}

// Schema returns the JSON schema describing Config.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Config))
	schema.Title = "cloudfx configuration"
	schema.Description = "Options accepted in cloudfx rc files"
	return schema
}

// SchemaJSON returns the indented JSON encoding of Schema.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal schema")
	}
	return data, nil
}

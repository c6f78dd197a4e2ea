package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette holds the colors of one theme
type palette struct {
	fg       string
	time     string
	name     string
	key      string
	yellow   string
	red      string
	redBg    string
	yellowBg string
}

var themes = map[string]palette{
	// Everforest Dark: natural forest greens
	"everforest": {
		fg:       "\x1b[38;5;223m",
		time:     "\x1b[38;5;107m",
		name:     "\x1b[38;5;108m",
		key:      "\x1b[38;5;65m",
		yellow:   "\x1b[38;5;179m",
		red:      "\x1b[38;5;167m",
		redBg:    "\x1b[48;5;52m",
		yellowBg: "\x1b[48;5;58m",
	},
	// Gruvbox Dark: warm, muted
	"gruvbox": {
		fg:       "\x1b[38;5;223m",
		time:     "\x1b[38;5;108m",
		name:     "\x1b[38;5;208m",
		key:      "\x1b[38;5;109m",
		yellow:   "\x1b[38;5;214m",
		red:      "\x1b[38;5;167m",
		redBg:    "\x1b[48;5;88m",
		yellowBg: "\x1b[48;5;58m",
	},
	// plain disables colors, for NO_COLOR terminals and tests
	"plain": {},
}

var currentTheme = "everforest"

// SetTheme configures the color scheme for console output. Unknown themes
// are ignored.
func SetTheme(theme string) {
	if _, ok := themes[theme]; ok {
		currentTheme = theme
	}
}

func colors() palette {
	return themes[currentTheme]
}

func paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + colorReset
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  pipeline  wrote file  input=sheet.yaml output=sheet_sculpt.go"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization

	// fields added through With, rendered before the entry's own fields
	context []zapcore.Field
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		context: append([]zapcore.Field(nil), enc.context...),
	}
}

// AddString and friends are how zap hands With fields to an encoder; keep
// them so they show up in every entry.
func (enc *minimalEncoder) AddString(key, value string) {
	enc.context = append(enc.context, zap.String(key, value))
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := buffer.NewPool().Get()

	final.AppendString(paint(c.time, ent.Time.Format("15:04:05")))

	// Level: only show for WARN/ERROR/DEBUG
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelString(c, ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(paint(c.name, ent.LoggerName))
	}

	final.AppendString("  ")
	final.AppendString(paint(c.fg, ent.Message))

	all := append(append([]zapcore.Field(nil), enc.context...), fields...)
	if len(all) > 0 {
		final.AppendString("  ")
		final.AppendString(formatFields(c, all))
	}

	final.AppendString("\n")
	return final, nil
}

func levelString(c palette, level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.WarnLevel:
		return paint(colorBold+c.yellowBg+c.yellow, "WARN")
	default:
		return paint(colorBold+c.redBg+c.red, level.CapitalString())
	}
}

// formatFields renders every field as key=value in the order given. No field
// is ever dropped.
func formatFields(c palette, fields []zapcore.Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, paint(c.key, f.Key)+"="+fieldValue(f))
	}
	return strings.Join(parts, " ")
}

// fieldValue extracts the value of a field of any type
func fieldValue(f zapcore.Field) string {
	m := zapcore.NewMapObjectEncoder()
	f.AddTo(m)
	v, ok := m.Fields[f.Key]
	if !ok {
		return ""
	}
	if err, isErr := v.(error); isErr {
		return err.Error()
	}
	return fmt.Sprintf("%v", v)
}

package logger

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

func encode(t *testing.T, enc zapcore.Encoder, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := enc.EncodeEntry(ent, fields)
	require.NoError(t, err)
	defer buf.Free()
	return stripANSI(buf.String())
}

// The minimal encoder must never silently discard a field
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "pipeline",
		Message:    "generated",
	}

	tests := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String("input", "sheet.yaml"), "input=sheet.yaml"},
		{zap.String("root", "Sheet"), "root=Sheet"},
		{zap.Int("sites", 6), "sites=6"},
		{zap.Int32("int32_field", 42), "int32_field=42"},
		{zap.Bool("format", true), "format=true"},
		{zap.Float64("ratio", 0.5), "ratio=0.5"},
		{zap.Duration("took", 1500 * time.Millisecond), "took=1.5s"},
		{zap.Error(errors.New("no root type declared")), "error=no root type declared"},
		{zap.String("field.with.dots", "x"), "field.with.dots=x"},
	}

	fields := make([]zapcore.Field, len(tests))
	for i, tt := range tests {
		fields[i] = tt.field
	}
	out := encode(t, newMinimalEncoder(), entry, fields...)

	assert.Contains(t, out, "13:04:35  pipeline  generated  ")
	for _, tt := range tests {
		assert.Contains(t, out, tt.mustFind)
	}
}

func TestMinimalEncoderLevels(t *testing.T) {
	base := zapcore.Entry{Time: time.Now(), Message: "msg"}

	tests := []struct {
		level zapcore.Level
		want  string
	}{
		{zapcore.InfoLevel, ""},
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.WarnLevel, "WARN"},
		{zapcore.ErrorLevel, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			ent := base
			ent.Level = tt.level
			out := encode(t, newMinimalEncoder(), ent)
			if tt.want == "" {
				assert.NotContains(t, out, "INFO")
				return
			}
			assert.Contains(t, out, "  "+tt.want+"  msg")
		})
	}
}

func TestMinimalEncoderContextFields(t *testing.T) {
	enc := newMinimalEncoder()
	enc.AddString("input", "sheet.yaml")
	clone := enc.Clone()

	out := encode(t, clone, zapcore.Entry{Time: time.Now(), Message: "wrote"}, zap.String("output", "sheet_sculpt.go"))
	assert.Contains(t, out, "input=sheet.yaml output=sheet_sculpt.go")
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("plain")
	buf, err := newMinimalEncoder().EncodeEntry(zapcore.Entry{Time: time.Now(), Message: "msg"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "\x1b[")

	SetTheme("solarized")
	assert.Equal(t, "plain", currentTheme, "unknown themes are ignored")
}

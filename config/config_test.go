package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/sculpt/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance, no config file
	cfg, err := LoadWithViper(NewViper())
	require.NoError(t, err)

	assert.Equal(t, Default().Generate, cfg.Generate)
	assert.Equal(t, DefaultTheme, cfg.Log.Theme)
	assert.False(t, cfg.Log.JSON)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, dedent.Dedent(`
		[generate]
		inputs = ["sheet.yaml", "party.toml"]
		output_dir = "gen"
		workers = 2
		format = false

		[log]
		json = true
	`))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, []string{"sheet.yaml", "party.toml"}, cfg.Generate.Inputs)
	assert.Equal(t, "gen", cfg.Generate.OutputDir)
	assert.Equal(t, 2, cfg.Generate.Workers)
	assert.False(t, cfg.Generate.Format)
	assert.Equal(t, DefaultSuffix, cfg.Generate.Suffix, "unset keys keep their default")
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, "[generate]\nworkers = 2\n")
	t.Setenv("SCULPT_GENERATE_WORKERS", "8")
	t.Setenv("SCULPT_GENERATE_PACKAGE", "wizards")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Generate.Workers)
	assert.Equal(t, "wizards", cfg.Generate.Package)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "broken.toml", "[generate\n"))
	require.Error(t, err)
	assert.NotEmpty(t, errors.Hints(err))

	_, err = Load(writeFile(t, dir, "bad.toml", "[generate]\nworkers = -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate.workers")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestFindConfigFrom(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, DefaultDirPermissions))

	assert.Empty(t, findConfigFrom(nested))

	path := writeFile(t, root, FileName, "")
	assert.Equal(t, path, findConfigFrom(nested))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero workers is valid", func(c *Config) { c.Generate.Workers = 0 }, ""},
		{"negative workers", func(c *Config) { c.Generate.Workers = -1 }, "generate.workers"},
		{"suffix without .go", func(c *Config) { c.Generate.Suffix = "_sculpt.txt" }, "must end in .go"},
		{"suffix with separator", func(c *Config) { c.Generate.Suffix = "gen/x.go" }, "path separator"},
		{"package override", func(c *Config) { c.Generate.Package = "wizards" }, ""},
		{"bad package", func(c *Config) { c.Generate.Package = "Wizards" }, "not a valid Go package name"},
		{"bad theme", func(c *Config) { c.Log.Theme = "solarized" }, "log.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, Write(Default(), path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Generate, cfg.Generate)

	err = Write(Default(), path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	changed := Default()
	changed.Generate.Workers = 1
	require.NoError(t, Write(changed, path, true))
	require.NoError(t, Write(changed, path, true))

	assert.FileExists(t, path+".back1")
	assert.FileExists(t, path+".back2")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Generate.Workers)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexic.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := defaultConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.parseInt.Radix())
	assert.Equal(t, 10, cfg.writeFloat.Radix())
	assert.Equal(t, byte('e'), cfg.parseFloat.ExponentChar())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
radix = 16
exponent_char = "p"
rounding = "toward-zero"
trim_floats = true
nan = "nan"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.parseInt.Radix())
	assert.Equal(t, 16, cfg.writeInt.Radix())
	assert.Equal(t, byte('p'), cfg.parseFloat.ExponentChar())
	assert.Equal(t, []byte("nan"), cfg.parseFloat.NaNString())
	assert.True(t, cfg.writeFloat.TrimFloats())
}

func TestLoadConfigFormatPreset(t *testing.T) {
	path := writeConfig(t, `format = "json"`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.parseFloat.Format().RequiredIntegerDigits())

	path = writeConfig(t, `format = "no-such-grammar"`)
	_, err = loadConfig(path)
	assert.ErrorContains(t, err, "unknown format")
}

func TestLoadConfigSeparator(t *testing.T) {
	path := writeConfig(t, `separator = "_"`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, byte('_'), cfg.parseInt.Format().DigitSeparator())

	path = writeConfig(t, `separator = "__"`)
	_, err = loadConfig(path)
	assert.ErrorContains(t, err, "single byte")
}

func TestLoadConfigRejectsBadRounding(t *testing.T) {
	path := writeConfig(t, `rounding = "sideways"`)
	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "unknown rounding")
}

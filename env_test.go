package icons

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvFrom_Defaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := ReadEnvFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(0, cfg.Limit)
	assert.Equal("icons", cfg.SrcDir)
	assert.Equal("rsvg-convert", cfg.Converter)
	assert.Equal(LoadOptions{}, cfg.LoadOptions())
}

func TestReadEnvFrom_ShouldReadLimit(t *testing.T) {
	cfg, err := ReadEnvFrom(map[string]string{
		"ICONS_LIMIT":   "25",
		"ICONS_SRC_DIR": "src/_icons",
		"RSVG_CONVERT":  "/opt/bin/rsvg-convert",
	})
	require.NoError(t, err)
	assert.Equal(t, Env{Limit: 25, SrcDir: "src/_icons", Converter: "/opt/bin/rsvg-convert"}, cfg)
	assert.Equal(t, LoadOptions{Limit: 25}, cfg.LoadOptions())
}

func TestReadEnvFrom_InvalidLimit(t *testing.T) {
	_, err := ReadEnvFrom(map[string]string{"ICONS_LIMIT": "many"})
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = ReadEnvFrom(map[string]string{"ICONS_LIMIT": "-1"})
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.ErrorContains(t, err, "ICONS_LIMIT")
}

func TestReadEnv(t *testing.T) {
	t.Setenv("ICONS_LIMIT", "3")
	t.Setenv("RSVG_CONVERT", "")

	cfg, err := ReadEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, "rsvg-convert", cfg.Converter)
}

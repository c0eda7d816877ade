package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "augmented", c.InputDir)
	assert.Equal(t, "augmented_256", c.OutputDir)
	assert.Equal(t, uint(256), c.Width)
	assert.Equal(t, uint(256), c.Height)
	assert.Equal(t, "bilinear", c.Interp)
	assert.Empty(t, c.Chart)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DIMSTAT_INPUT_DIR", "/data/in")
	t.Setenv("DIMSTAT_WIDTH", "128")
	t.Setenv("DIMSTAT_DEVELOP", "true")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/in", c.InputDir)
	assert.Equal(t, uint(128), c.Width)
	assert.Equal(t, uint(256), c.Height)
	assert.True(t, c.Develop)
}

func TestBadValue(t *testing.T) {
	t.Setenv("DIMSTAT_HEIGHT", "tall")
	_, err := Load()
	assert.Error(t, err)
}

func TestCurrentLoadedAtInit(t *testing.T) {
	assert.NotEmpty(t, Current.InputDir)
	assert.NotZero(t, Current.Width)
	assert.NotZero(t, Current.Height)
}

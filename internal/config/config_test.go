// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/topocoords/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.Points)
	assert.Equal(t, 5.0, cfg.OuterRadius)
	assert.Equal(t, 2.0, cfg.InnerRadius)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, 100, cfg.Landmarks)
	assert.Equal(t, 41, cfg.Prime)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TOPO_POINTS", "2000")
	t.Setenv("TOPO_LANDMARKS", "60")
	t.Setenv("TOPO_DEBUG", "true")
	t.Setenv("TOPO_CACHE_TTL", "5m")
	t.Setenv("TOPO_PRIME", "not a number")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Points)
	assert.Equal(t, 60, cfg.Landmarks)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 41, cfg.Prime, "unparsable values fall back")
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TOPO_SEED=7\nTOPO_INNER_RADIUS=1.5\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("TOPO_SEED")
		os.Unsetenv("TOPO_INNER_RADIUS")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 1.5, cfg.InnerRadius)
}

func TestValidate(t *testing.T) {
	base := config.Config{Points: 100, OuterRadius: 5, InnerRadius: 2, Landmarks: 10, Prime: 41}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *config.Config){
		"inner not below outer":   func(c *config.Config) { c.InnerRadius = 5 },
		"more landmarks than pts": func(c *config.Config) { c.Landmarks = 101 },
		"prime below two":         func(c *config.Config) { c.Prime = 1 },
		"too few points":          func(c *config.Config) { c.Points = 2 },
		"negative ttl":            func(c *config.Config) { c.CacheTTL = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			err := c.Validate()
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

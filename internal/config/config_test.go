package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sim.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadOverlaysDefaults(t *testing.T) {
	p := writeConfig(t, `
[sim]
tick_rate = "100ms"
seed = "black pearl"
pool_size = 8

[spawn]
monsters = 0

[journal]
enabled = true
flush_interval = "5s"
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.Sim.TickRate)
	assert.Equal(t, "black pearl", cfg.Sim.Seed)
	assert.Equal(t, 8, cfg.Sim.PoolSize)
	assert.Equal(t, 32.0, cfg.Sim.TileSize, "default kept")
	assert.Equal(t, 0, cfg.Spawn.Monsters)
	assert.Equal(t, 20, cfg.Spawn.Boulders)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Journal.FlushInterval)
	assert.Equal(t, "scripts", cfg.Paths.Scripts)
	assert.Equal(t, 128.0, cfg.Sim.CellSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(writeConfig(t, "[sim]\npool_size = 0\n"))
	assert.ErrorContains(t, err, "pool_size")

	_, err = Load(writeConfig(t, "[spawn]\nboulders = -1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[sim\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := Load("../../config/sim.toml")
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Sim.TickRate)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "map/world.txt", cfg.Paths.TileMap)
}

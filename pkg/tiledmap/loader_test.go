package tiledmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capture-the-fly/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `
name: sample
tile_size: 16
rows:
  - "#####"
  - "#.@x#"
  - "#####"
`

func TestLoadParsesRowsAndSpawn(t *testing.T) {
	m, err := Load(strings.NewReader(sampleMap))
	require.NoError(t, err)

	assert.Equal(t, "sample", m.Name)
	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 16.0, m.TileSize())
	assert.Equal(t, geom.Vector2i{X: 2, Y: 1}, m.InitialPlayerPosition())

	code, _ := m.TileAt(2, 1)
	assert.Equal(t, FloorBlock, code)
	code, _ = m.TileAt(3, 1)
	assert.Equal(t, DeathBlock, code)
}

func TestLoadUsesCustomLegendAndExplicitSpawn(t *testing.T) {
	src := `
name: custom
tile_size: 8
spawn: {x: 1, y: 0}
legend:
  "W": 1
  "_": 3
rows:
  - "W_W"
`
	m, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, geom.Vector2i{X: 1, Y: 0}, m.InitialPlayerPosition())
	assert.Equal(t, []int{1, 3, 1}, m.CollisionTilesIntersecting(m.Rect()))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown symbol", "tile_size: 16\nrows:\n  - \"@?\"\n", ErrUnknownTile},
		{"no spawn", "tile_size: 16\nrows:\n  - \"##\"\n", ErrNoSpawn},
		{"ragged", "tile_size: 16\nrows:\n  - \"@#\"\n  - \"#\"\n", ErrRaggedRows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("tile_size: 16\ngravity: 3\nrows:\n  - \"@\"\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleMap), 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", m.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

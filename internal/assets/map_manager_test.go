package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/tiledmap"
)

func TestEmbeddedMapsLoad(t *testing.T) {
	m := NewMapManager("")
	assert.ElementsMatch(t, []string{"home", "level"}, Names())

	level, err := m.Load("level")
	require.NoError(t, err)
	assert.Equal(t, 30, level.Width())
	assert.Equal(t, 20, level.Height())
	assert.Equal(t, geom.Vector2i{X: 15, Y: 10}, level.InitialPlayerPosition())

	home, err := m.Load("home")
	require.NoError(t, err)
	assert.True(t, home.AnyTile(home.Rect(), tiledmap.PortalBlock))

	again, err := m.Load("level")
	require.NoError(t, err)
	assert.Same(t, level, again)
}

func TestUnknownMap(t *testing.T) {
	_, err := NewMapManager("").Load("nowhere")
	assert.Error(t, err)
}

func TestDirectoryOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	data := "name: level\ntile_size: 8\nrows:\n  - \"###\"\n  - \"#@#\"\n  - \"###\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.yaml"), []byte(data), 0o644))

	m := NewMapManager(dir)
	level, err := m.Load("level")
	require.NoError(t, err)
	assert.Equal(t, 3, level.Width())
	assert.Equal(t, 8.0, level.TileSize())

	home, err := m.Load("home")
	require.NoError(t, err, "falls back to embedded maps")
	assert.Equal(t, "home", home.Name)
}

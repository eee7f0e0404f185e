package actor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"capture-the-fly/internal/component"
	"capture-the-fly/pkg/geom"
	"capture-the-fly/pkg/tiledmap"
)

// Поле 7x5 со стенами по краю и смертельной клеткой (3, 3).
func testMap(t *testing.T) *tiledmap.TiledMap {
	t.Helper()
	tm, err := tiledmap.New("test", [][]int{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 3, 3, 3, 3, 3, 1},
		{1, 3, 3, 3, 3, 3, 1},
		{1, 3, 3, 2, 3, 3, 1},
		{1, 1, 1, 1, 1, 1, 1},
	}, 16, geom.Vector2i{X: 1, Y: 3}, 4)
	require.NoError(t, err)
	return tm
}

type stick struct {
	h, v component.Movement
}

func (s *stick) Horizontal() component.Movement { return s.h }
func (s *stick) Vertical() component.Movement   { return s.v }

type point geom.Vector2f

func (p *point) Center() geom.Vector2f { return geom.Vector2f(*p) }

type flock struct {
	flies []*Fly
}

func (f *flock) Living() []*Fly { return f.flies }

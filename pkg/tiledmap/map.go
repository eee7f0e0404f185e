// pkg/tiledmap/map.go
package tiledmap

import (
	"errors"
	"fmt"
	"math"

	"capture-the-fly/pkg/geom"
)

// Зарезервированные коды тайлов. Остальные коды — декор, проходимы.
const (
	EmptyBlock     = 0
	CollisionBlock = 1 // непроходимый блок
	DeathBlock     = 2 // мгновенная смерть игрока
	FloorBlock     = 3
	PortalBlock    = 4 // вход в уровень на домашней карте
)

const DefaultChunkSize = 8

var (
	ErrEmptyMap    = errors.New("tiledmap: map has no tiles")
	ErrRaggedRows  = errors.New("tiledmap: rows have different lengths")
	ErrSpawnBounds = errors.New("tiledmap: spawn cell is outside the map")
)

// TiledMap — статическая сетка кодов тайлов. После загрузки не меняется.
type TiledMap struct {
	Name      string
	tiles     [][]int // tiles[y][x]
	width     int
	height    int
	tileSize  float64
	spawn     geom.Vector2i
	chunkSize int
	chunks    []Chunk
}

// New проверяет сетку и строит чанки для отрисовки.
func New(name string, tiles [][]int, tileSize float64, spawn geom.Vector2i, chunkSize int) (*TiledMap, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyMap
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tiledmap: invalid tile size %v", tileSize)
	}
	width := len(tiles[0])
	grid := make([][]int, len(tiles))
	for y, row := range tiles {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedRows, y, len(row), width)
		}
		grid[y] = append([]int(nil), row...)
	}
	if spawn.X < 0 || spawn.Y < 0 || spawn.X >= width || spawn.Y >= len(grid) {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrSpawnBounds, spawn.X, spawn.Y)
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	m := &TiledMap{
		Name:      name,
		tiles:     grid,
		width:     width,
		height:    len(grid),
		tileSize:  tileSize,
		spawn:     spawn,
		chunkSize: chunkSize,
	}
	m.chunks = m.buildChunks()
	return m, nil
}

func (m *TiledMap) Width() int        { return m.width }
func (m *TiledMap) Height() int       { return m.height }
func (m *TiledMap) TileSize() float64 { return m.tileSize }
func (m *TiledMap) Chunks() []Chunk   { return m.chunks }
func (m *TiledMap) ChunkSize() int    { return m.chunkSize }

// InitialPlayerPosition — клетка появления игрока.
func (m *TiledMap) InitialPlayerPosition() geom.Vector2i {
	return m.spawn
}

// Rect — границы карты в игровых координатах.
func (m *TiledMap) Rect() geom.Rect {
	return geom.NewRect(0, 0, float64(m.width)*m.tileSize, float64(m.height)*m.tileSize)
}

// CellRect — границы клетки (x, y).
func (m *TiledMap) CellRect(x, y int) geom.Rect {
	return geom.RectFromSize(float64(x)*m.tileSize, float64(y)*m.tileSize, m.tileSize, m.tileSize)
}

// TileAt возвращает код клетки; false — клетка вне карты.
func (m *TiledMap) TileAt(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0, false
	}
	return m.tiles[y][x], true
}

// CollisionTilesIntersecting возвращает коды всех клеток, которые пересекаются
// с прямоугольником, включая частичное перекрытие. Клетки за пределами карты
// пропускаются. Смысл кодов определяет вызывающая сторона.
func (m *TiledMap) CollisionTilesIntersecting(r geom.Rect) []int {
	x0, x1 := m.cellSpan(r.Left, r.Right, m.width)
	y0, y1 := m.cellSpan(r.Top, r.Bottom, m.height)
	if x0 > x1 || y0 > y1 {
		return nil
	}

	codes := make([]int, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			codes = append(codes, m.tiles[y][x])
		}
	}
	return codes
}

// AnyTile — есть ли среди пересекаемых клеток клетка с кодом code.
func (m *TiledMap) AnyTile(r geom.Rect, code int) bool {
	for _, c := range m.CollisionTilesIntersecting(r) {
		if c == code {
			return true
		}
	}
	return false
}

// cellSpan переводит отрезок [from, to) в диапазон индексов клеток.
// Клетка i занимает [i*ts, (i+1)*ts). Отрезок нулевой длины попадает
// в клетку, которой принадлежит его точка.
func (m *TiledMap) cellSpan(from, to float64, limit int) (int, int) {
	first := int(math.Floor(from / m.tileSize))
	last := int(math.Ceil(to/m.tileSize)) - 1
	if last < first {
		last = first
	}
	if first < 0 {
		first = 0
	}
	if last > limit-1 {
		last = limit - 1
	}
	return first, last
}

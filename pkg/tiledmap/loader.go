package tiledmap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"capture-the-fly/pkg/geom"

	"gopkg.in/yaml.v3"
)

// SpawnMarker в строках карты отмечает клетку появления игрока.
// Сама клетка становится полом.
const SpawnMarker = '@'

var (
	ErrUnknownTile = errors.New("tiledmap: unknown tile symbol")
	ErrNoSpawn     = errors.New("tiledmap: spawn is not defined")
)

// mapFile describes the on-disk YAML layout of a level.
type mapFile struct {
	Name      string         `yaml:"name"`
	TileSize  float64        `yaml:"tile_size"`
	ChunkSize int            `yaml:"chunk_size"`
	Spawn     *geom.Vector2i `yaml:"spawn"`
	Legend    map[string]int `yaml:"legend"`
	Rows      []string       `yaml:"rows"`
}

// DefaultLegend is used when a map file has no legend of its own.
var DefaultLegend = map[string]int{
	" ": EmptyBlock,
	"#": CollisionBlock,
	"x": DeathBlock,
	".": FloorBlock,
	"o": PortalBlock,
}

// Load reads a YAML map definition.
func Load(r io.Reader) (*TiledMap, error) {
	var f mapFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode tiled map: %w", err)
	}

	legend := f.Legend
	if len(legend) == 0 {
		legend = DefaultLegend
	}

	spawn := f.Spawn
	tiles := make([][]int, len(f.Rows))
	for y, row := range f.Rows {
		tiles[y] = make([]int, 0, len(row))
		for x, symbol := range row {
			if symbol == SpawnMarker {
				spawn = &geom.Vector2i{X: x, Y: y}
				tiles[y] = append(tiles[y], FloorBlock)
				continue
			}
			code, ok := legend[string(symbol)]
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d, %d)", ErrUnknownTile, symbol, x, y)
			}
			tiles[y] = append(tiles[y], code)
		}
	}
	if spawn == nil {
		return nil, ErrNoSpawn
	}

	m, err := New(f.Name, tiles, f.TileSize, *spawn, f.ChunkSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build tiled map %q: %w", f.Name, err)
	}
	return m, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*TiledMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tiled map file: %w", err)
	}
	defer file.Close()
	return Load(file)
}

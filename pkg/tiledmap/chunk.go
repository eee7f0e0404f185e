package tiledmap

import "capture-the-fly/pkg/geom"

// Tile — одна клетка внутри чанка.
type Tile struct {
	Bounds geom.Rect
	Code   int
}

// Chunk — квадратный блок клеток, который рисуется одним вызовом
// (список текстурированных квадов).
type Chunk struct {
	Bounds geom.Rect
	Tiles  []Tile
}

func (m *TiledMap) buildChunks() []Chunk {
	var chunks []Chunk
	for cy := 0; cy < m.height; cy += m.chunkSize {
		for cx := 0; cx < m.width; cx += m.chunkSize {
			maxX := min(cx+m.chunkSize, m.width)
			maxY := min(cy+m.chunkSize, m.height)

			chunk := Chunk{
				Bounds: geom.NewRect(
					float64(cx)*m.tileSize, float64(cy)*m.tileSize,
					float64(maxX)*m.tileSize, float64(maxY)*m.tileSize,
				),
			}
			for y := cy; y < maxY; y++ {
				for x := cx; x < maxX; x++ {
					if m.tiles[y][x] == EmptyBlock {
						continue
					}
					chunk.Tiles = append(chunk.Tiles, Tile{Bounds: m.CellRect(x, y), Code: m.tiles[y][x]})
				}
			}
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// internal/assets/map_manager.go
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"

	"capture-the-fly/pkg/tiledmap"
)

//go:embed maps/*.yaml
var embeddedMaps embed.FS

// MapManager загружает и кэширует тайловые карты по имени уровня.
// Если задан каталог, карты сначала ищутся в нём, затем во встроенных.
type MapManager struct {
	dir  fs.FS
	maps map[string]*tiledmap.TiledMap
}

// NewMapManager создаёт менеджер. dir может быть пустым.
func NewMapManager(dir string) *MapManager {
	m := &MapManager{maps: make(map[string]*tiledmap.TiledMap)}
	if dir != "" {
		m.dir = os.DirFS(dir)
	}
	return m
}

// Load возвращает карту уровня name. Карты неизменяемы, поэтому
// один экземпляр делится между перезапусками уровня.
func (m *MapManager) Load(name string) (*tiledmap.TiledMap, error) {
	if tm, ok := m.maps[name]; ok {
		return tm, nil
	}
	file := name + ".yaml"

	var src fs.FS = embeddedMaps
	file = path.Join("maps", file)
	if m.dir != nil {
		if _, err := fs.Stat(m.dir, name+".yaml"); err == nil {
			src, file = m.dir, name+".yaml"
		}
	}

	f, err := src.Open(file)
	if err != nil {
		return nil, fmt.Errorf("map %q not found: %w", name, err)
	}
	defer f.Close()

	tm, err := tiledmap.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %q: %w", name, err)
	}
	log.Printf("Загружена карта %s: %dx%d, тайл %.0f", name, tm.Width(), tm.Height(), tm.TileSize())
	m.maps[name] = tm
	return tm, nil
}

// Names — встроенные карты.
func Names() []string {
	entries, err := fs.ReadDir(embeddedMaps, "maps")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name()[:len(e.Name())-len(path.Ext(e.Name()))])
	}
	return names
}

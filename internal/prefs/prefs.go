// internal/prefs/prefs.go
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"capture-the-fly/internal/config"
	"capture-the-fly/internal/input"
	"capture-the-fly/pkg/geom"
)

// Preferences — эталонные показания датчиков и последний уровень.
// Ядро только читает их; пишет калибровка.
type Preferences struct {
	Luminosity   float64       `yaml:"ref_luminosity"`
	Acceleration geom.Vector3f `yaml:"ref_acceleration"`
	Orientation  geom.Vector3f `yaml:"ref_orientation"`
	Angle        int           `yaml:"ref_angle"`
	CurrentLevel string        `yaml:"current_level,omitempty"`

	path string
}

// Load читает файл настроек. Отсутствующий файл даёт пустые настройки.
func Load(path string) (*Preferences, error) {
	p := &Preferences{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to decode preferences %s: %w", path, err)
	}
	return p, nil
}

// Save пишет настройки во временный файл и переименовывает его.
func (p *Preferences) Save() error {
	if p.path == "" {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p.path), ".prefs-*")
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

func (p *Preferences) Path() string { return p.path }

// AccelerationReference — эталон для встряски. Без калибровки
// берётся полтора g по оси Z.
func (p *Preferences) AccelerationReference() geom.Vector3f {
	if p.Acceleration.Length() == 0 {
		return geom.Vector3f{Z: config.StandardGravity * config.DefaultShakeFactor}
	}
	return p.Acceleration
}

// Calibrate запоминает текущие показания как эталон. Порог встряски
// берётся с запасом относительно текущего ускорения.
func (p *Preferences) Calibrate(in *input.State) {
	p.Luminosity = in.Luminosity
	p.Acceleration = in.Acceleration.Scale(config.DefaultShakeFactor)
	p.Orientation = in.Orientation
	p.Angle = in.Angle
}

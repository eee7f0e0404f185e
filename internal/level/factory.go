// internal/level/factory.go
package level

import (
	"errors"
	"fmt"

	"capture-the-fly/internal/config"
)

var ErrUnknownLevel = errors.New("level: unknown level")

// New собирает уровень по имени.
func New(name string, deps Deps) (Level, error) {
	switch name {
	case config.HomeLevelName:
		l, err := NewHomeLevel(deps)
		if err != nil {
			return nil, err
		}
		return l, nil
	case config.MainLevelName:
		l, err := NewMainLevel(deps)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

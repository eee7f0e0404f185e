// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"capture-the-fly/pkg/geom"
)

// PRNGService — обёртка над генератором случайных чисел, чтобы спавн
// был воспроизводимым при заданном сиде.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в [lo, hi). При hi <= lo возвращает lo.
func (s *PRNGService) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// PointIn выбирает левый верхний угол прямоугольника size x size,
// который целиком помещается в bounds.
func (s *PRNGService) PointIn(bounds geom.Rect, size float64) geom.Vector2f {
	return geom.Vector2f{
		X: s.Range(bounds.Left, bounds.Right-size),
		Y: s.Range(bounds.Top, bounds.Bottom-size),
	}
}

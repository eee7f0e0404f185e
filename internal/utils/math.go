// internal/utils/math.go
package utils

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs для float64 без похода в math ради одного вызова.
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

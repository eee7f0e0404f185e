// pkg/geom/vector.go
package geom

import "math"

// Vector2f — точка или смещение в игровом пространстве
type Vector2f struct {
	X, Y float64
}

// Vector2i — целочисленная точка, например клетка тайловой карты
type Vector2i struct {
	X, Y int
}

// Vector3f — показания трёхосевых датчиков (ускорение, ориентация, вращение)
type Vector3f struct {
	X, Y, Z float64
}

// Add складывает два вектора.
func (v Vector2f) Add(o Vector2f) Vector2f {
	return Vector2f{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub вычитает o из v.
func (v Vector2f) Sub(o Vector2f) Vector2f {
	return Vector2f{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale умножает вектор на скаляр.
func (v Vector2f) Scale(k float64) Vector2f {
	return Vector2f{X: v.X * k, Y: v.Y * k}
}

// ToFloat переводит целочисленный вектор в вещественный.
func (v Vector2i) ToFloat() Vector2f {
	return Vector2f{X: float64(v.X), Y: float64(v.Y)}
}

// Scale умножает вектор на скаляр.
func (v Vector3f) Scale(k float64) Vector3f {
	return Vector3f{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Length возвращает евклидову длину вектора.
func (v Vector3f) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

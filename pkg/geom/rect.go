// pkg/geom/rect.go
package geom

// Rect — неизменяемый прямоугольник, выровненный по осям.
// Все методы возвращают новое значение, исходный прямоугольник не меняется,
// поэтому его можно безопасно читать во время отрисовки.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect создаёт прямоугольник. Перевёрнутые стороны меняются местами,
// так что Left <= Right и Top <= Bottom всегда выполняются.
func NewRect(left, top, right, bottom float64) Rect {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromSize создаёт прямоугольник по левому верхнему углу и размеру.
func RectFromSize(x, y, width, height float64) Rect {
	return NewRect(x, y, x+width, y+height)
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Center возвращает центр прямоугольника.
func (r Rect) Center() Vector2f {
	return Vector2f{X: r.CenterX(), Y: r.CenterY()}
}

// IsEmpty — true для прямоугольника нулевой площади.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Offset возвращает прямоугольник, сдвинутый на (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// MoveTo возвращает прямоугольник того же размера с левым верхним углом в (x, y).
func (r Rect) MoveTo(x, y float64) Rect {
	return r.Offset(x-r.Left, y-r.Top)
}

// Inset сужает прямоугольник на dx с каждой стороны по X и на dy по Y.
func (r Rect) Inset(dx, dy float64) Rect {
	return NewRect(r.Left+dx, r.Top+dy, r.Right-dx, r.Bottom-dy)
}

// Intersects проверяет строгое пересечение: касание сторонами не считается,
// пустой прямоугольник не пересекается ни с чем.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// Contains проверяет, лежит ли точка внутри прямоугольника (границы включены).
func (r Rect) Contains(p Vector2f) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

func (r Rect) LeftHalf() Rect   { return Rect{Left: r.Left, Top: r.Top, Right: r.CenterX(), Bottom: r.Bottom} }
func (r Rect) RightHalf() Rect  { return Rect{Left: r.CenterX(), Top: r.Top, Right: r.Right, Bottom: r.Bottom} }
func (r Rect) TopHalf() Rect    { return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.CenterY()} }
func (r Rect) BottomHalf() Rect { return Rect{Left: r.Left, Top: r.CenterY(), Right: r.Right, Bottom: r.Bottom} }

// component/movement.go
package component

// Movement — направление по одной оси, которое выдаёт джойстик
// или вычисляет ИИ мухи.
type Movement int

const (
	None Movement = iota
	Left
	Right
	Up
	Down
)

// Delta — знак смещения по оси: -1 для Left/Up, +1 для Right/Down.
func (m Movement) Delta() float64 {
	switch m {
	case Left, Up:
		return -1
	case Right, Down:
		return 1
	}
	return 0
}

func (m Movement) String() string {
	switch m {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}

// Velocity — скорость по двум осям
type Velocity struct {
	DX, DY float64
}

// internal/component/player.go
package component

// PlayerState — состояние игрока, выводится из флагов и анимации.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerAttacking
	PlayerHit
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerWalking:
		return "walking"
	case PlayerAttacking:
		return "attacking"
	case PlayerHit:
		return "hit"
	}
	return "unknown"
}

// Vitals хранит ресурсы игрока: здоровье в [0, 1] и накопленную силу.
type Vitals struct {
	Health        float64
	Power         float64
	Invincibility float64 // обратный отсчёт, проверяется только знак
	Deaths        int
}

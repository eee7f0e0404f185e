package component

// FlyState — состояние мухи.
type FlyState int

const (
	FlyPursuing FlyState = iota
	FlyAttacking
	FlyStunned
	FlyDying
	FlyDead
)

func (s FlyState) String() string {
	switch s {
	case FlyPursuing:
		return "pursuing"
	case FlyAttacking:
		return "attacking"
	case FlyStunned:
		return "stunned"
	case FlyDying:
		return "dying"
	case FlyDead:
		return "dead"
	}
	return "unknown"
}

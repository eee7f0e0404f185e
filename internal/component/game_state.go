package component

// LevelPhase — фаза уровня
type LevelPhase int

const (
	Playing   LevelPhase = iota
	Resetting            // игрок погиб, ждём конца анимации
	Won
)

func (p LevelPhase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Resetting:
		return "resetting"
	case Won:
		return "won"
	}
	return "unknown"
}

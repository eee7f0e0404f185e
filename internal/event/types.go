package event

const (
	WaveStarted     EventType = "WaveStarted"     // Началась новая волна, Data: WavePayload
	WaveCleared     EventType = "WaveCleared"     // Все мухи волны погибли, Data: WavePayload
	FlySpawned      EventType = "FlySpawned"      // Появилась муха, Data: types.EntityID
	FlyDied         EventType = "FlyDied"         // Муха доиграла анимацию смерти, Data: types.EntityID
	FliesStunned    EventType = "FliesStunned"    // Стало темно, мухи оглушены
	FliesRecovered  EventType = "FliesRecovered"  // Свет вернулся
	AreaBurst       EventType = "AreaBurst"       // Встряска убила мух в кадре, Data: int (сколько)
	PlayerHit       EventType = "PlayerHit"       // Игрок получил урон, Data: float64 (здоровье)
	PlayerDied      EventType = "PlayerDied"      // Игрок погиб
	PlayerRespawned EventType = "PlayerRespawned" // Игрок вернулся на точку появления
	PlayerStep      EventType = "PlayerStep"      // Сменился кадр ходьбы
	LevelReset      EventType = "LevelReset"      // Уровень начат заново
	LevelWon        EventType = "LevelWon"        // Пройдены все волны
)

// WavePayload — данные событий волны
type WavePayload struct {
	Number int
	Target int
}

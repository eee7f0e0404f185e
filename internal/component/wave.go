// internal/component/wave.go
package component

// Wave — состояние текущей волны мух
type Wave struct {
	Number        int     // Номер волны, с единицы
	Target        int     // Сколько мух в волне
	Spawned       int     // Сколько всего появилось, с заменами
	Remaining     int     // Сколько ещё живо или не появилось
	SpawnInterval float64 // Интервал между появлением мух (в секундах)
	SpawnTimer    float64 // Таймер спавна
}

// Cleared — все мухи волны погибли.
func (w *Wave) Cleared() bool {
	return w.Remaining <= 0
}

// CanSpawn — пора выпускать следующую муху: таймер дошёл до интервала,
// а живых мух меньше цели. Погибшая муха заменяется новой, пока
// Remaining не дойдёт до нуля.
func (w *Wave) CanSpawn(live int) bool {
	return live < w.Target && w.SpawnTimer >= w.SpawnInterval
}

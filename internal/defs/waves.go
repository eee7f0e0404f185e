package defs

import "capture-the-fly/internal/config"

// WaveDefinition описывает параметры одной волны мух.
type WaveDefinition struct {
	Number        int     // номер волны, с единицы
	Count         int     // сколько мух нужно выпустить
	SpawnInterval float64 // интервал между появлением мух, секунды
}

// WaveFor считает параметры волны n: 2n+5 мух, интервал 2-0.05n,
// но не меньше MinSpawnInterval.
func WaveFor(n int) WaveDefinition {
	if n < 1 {
		n = 1
	}
	interval := config.BaseSpawnInterval - config.SpawnIntervalDecrease*float64(n)
	return WaveDefinition{
		Number:        n,
		Count:         config.FliesPerWave*n + config.FliesBase,
		SpawnInterval: max(config.MinSpawnInterval, interval),
	}
}

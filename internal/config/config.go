// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06
	TicksPerSec  = 60

	// Масштаб мира: сколько тайлов помещается по ширине экрана
	TilesAcrossScreen     = 12.0
	HomeTilesAcrossScreen = 17.0

	// Игрок
	PlayerWidth             = 16.0
	PlayerHeight            = 16.0
	PlayerCollisionInset    = 5.0  // сужение хитбокса по X с каждой стороны
	PlayerSpeed             = 12.0 // множитель смещения: dx * dt * PlayerSpeed
	PlayerAcceleration      = 64.0
	PlayerMaxVelocity       = 16.0
	PlayerVelocityDecay     = 0.5
	PlayerVelocityThreshold = 0.5 // ниже этого скорость обнуляется
	PlayerMaxHealth         = 1.0
	PlayerDamage            = 0.2
	InvincibilityDuration   = 1.0
	PowerPerSecond          = 0.1
	HealthRegenPerSecond    = 0.05

	// Мухи
	FlySize = 24.0

	// Волны
	FliesBase             = 5
	FliesPerWave          = 2
	BaseSpawnInterval     = 2.0
	SpawnIntervalDecrease = 0.05
	MinSpawnInterval      = 0.2
	WavesToWin            = 10
	BannerFadeDuration    = 3.0
	BannerMaxOpacity      = 255.0

	// Датчики
	LowLuminosity      = 10.0 // люкс
	DefaultLuminosity  = 100.0
	TimeNeededToStun   = 1.0
	ShakeRatio         = 0.75 // доля от эталонного ускорения
	StandardGravity    = 9.81
	DefaultShakeFactor = 1.5

	// HUD
	HUDPadding       = 15.0
	HUDBorder        = 10.0
	HUDAlpha         = 130
	ButtonAlpha      = 200
	JoystickMargin   = 20.0
	FPSTextX         = 50
	FPSTextY         = 50
	BannerTextScale  = 6.0
	ControlButtonGap = 30.0
)

// Имена уровней
const (
	HomeLevelName = "home"
	MainLevelName = "level"
)

var (
	BackgroundColor = color.RGBA{0x34, 0x20, 0x2b, 255}
	MapClipColor    = color.RGBA{30, 60, 160, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PlayerColor     = color.RGBA{230, 200, 80, 255}
	PlayerHitColor  = color.RGBA{220, 60, 60, 255}
	AttackColor     = color.RGBA{255, 255, 255, 120}
	FlyColor        = color.RGBA{40, 40, 40, 255}
	FlyStunnedColor = color.RGBA{120, 120, 200, 255}
	FlyDyingColor   = color.RGBA{150, 30, 30, 255}
	HUDBorderColor  = color.RGBA{0, 0, 0, HUDAlpha}
	ChargeFillColor = color.RGBA{0, 255, 255, HUDAlpha}
	HealthFillColor = color.RGBA{220, 40, 40, HUDAlpha}
	ButtonColor     = color.RGBA{200, 200, 200, ButtonAlpha}
	PressedColor    = color.RGBA{255, 255, 255, ButtonAlpha}

	// Цвета тайлсета по коду тайла
	TileColors = map[int]color.RGBA{
		1: {90, 70, 60, 255},   // стена
		2: {160, 30, 30, 255},  // смертельный блок
		3: {70, 110, 70, 255},  // пол
		4: {200, 170, 60, 255}, // портал
	}
)

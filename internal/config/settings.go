package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings — параметры запуска, которые можно менять без пересборки:
// файл ctf.yaml, переменные окружения CTF_* или значения по умолчанию.
type Settings struct {
	ScreenWidth    int           `mapstructure:"screen_width"`
	ScreenHeight   int           `mapstructure:"screen_height"`
	TicksPerSecond int           `mapstructure:"ticks_per_second"`
	Seed           int64         `mapstructure:"seed"`
	StartLevel     string        `mapstructure:"start_level"`
	MapDir         string        `mapstructure:"map_dir"`
	PrefsPath      string        `mapstructure:"prefs_path"`
	AudioEnabled   bool          `mapstructure:"audio_enabled"`
	PprofAddr      string        `mapstructure:"pprof_addr"`
	SimulateFor    time.Duration `mapstructure:"simulate_for"`
	ShowFPS        bool          `mapstructure:"show_fps"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("screen_width", ScreenWidth)
	v.SetDefault("screen_height", ScreenHeight)
	v.SetDefault("ticks_per_second", TicksPerSec)
	v.SetDefault("seed", 0)
	v.SetDefault("start_level", MainLevelName)
	v.SetDefault("map_dir", "") // пусто — карты из встроенных ресурсов
	v.SetDefault("prefs_path", "preferences.yaml")
	v.SetDefault("audio_enabled", true)
	v.SetDefault("pprof_addr", "")
	v.SetDefault("simulate_for", 60*time.Second)
	v.SetDefault("show_fps", true)
}

// LoadSettings читает настройки. path может быть пустым — тогда ищется
// ctf.yaml в текущем каталоге; отсутствие файла не ошибка.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CTF")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ctf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return Settings{}, fmt.Errorf("invalid screen size %dx%d", s.ScreenWidth, s.ScreenHeight)
	}
	if s.TicksPerSecond <= 0 {
		s.TicksPerSecond = TicksPerSec
	}
	return s, nil
}

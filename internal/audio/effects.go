// internal/audio/effects.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator генерирует волну заданной частоты. duration 0 — бесконечно.
type oscillator struct {
	freq     float64
	sweep    float64 // изменение частоты, Гц в секунду
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — атака и затухание поверх потока фиксированной длины.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack), total: rate.N(duration)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if rest := e.total - e.attack; rest > 0 {
			vol = 1 - float64(e.position-e.attack)/float64(rest)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume переводит линейную громкость в логарифмическую шкалу beep.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	stepDuration = 60 * time.Millisecond
	swatDuration = 180 * time.Millisecond
	hitDuration  = 250 * time.Millisecond
)

// newAmbience — бесконечный низкий гул с лёгким шумом.
func newAmbience(rate beep.SampleRate) beep.Streamer {
	drone := newOscillator(55, 0, WaveSine, rate)
	shimmer := newOscillator(82.5, 0, WaveSine, rate)
	hiss := newOscillator(0, 0, WaveNoise, rate)
	return beep.Mix(
		newVolume(drone, 0.12),
		newVolume(shimmer, 0.06),
		newVolume(hiss, 0.01),
	)
}

// newStep — короткий глухой шорох шага.
func newStep(rate beep.SampleRate) beep.Streamer {
	noise := newOscillator(0, stepDuration, WaveNoise, rate)
	return newVolume(newEnvelope(noise, stepDuration, 5*time.Millisecond, rate), 0.2)
}

// newSwat — шлепок по мухе: нисходящий квадрат.
func newSwat(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(660, swatDuration, WaveSquare, rate)
	osc.sweep = -2400
	return newVolume(newEnvelope(osc, swatDuration, 3*time.Millisecond, rate), 0.15)
}

// newHit — низкий удар, когда муха кусает игрока.
func newHit(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(140, hitDuration, WaveSine, rate)
	osc.sweep = -300
	return newVolume(newEnvelope(osc, hitDuration, 10*time.Millisecond, rate), 0.3)
}

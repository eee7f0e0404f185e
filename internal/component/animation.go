package component

// AnimationDef описывает одно действие спрайта.
type AnimationDef struct {
	Frames        int
	FrameDuration float64 // секунды на кадр
	Loop          bool
}

var fallbackAnimation = AnimationDef{Frames: 1, FrameDuration: 0.1, Loop: true}

// Animation — состояние анимированного спрайта: текущее действие, кадр,
// зеркальность и флаг завершения для неповторяющихся действий.
// Состояния игрока и мух переключаются по этому флагу.
type Animation struct {
	defs     map[string]AnimationDef
	Action   string
	Frame    int
	Reversed bool
	Finished bool
	elapsed  float64
}

func NewAnimation(defs map[string]AnimationDef, initial string) *Animation {
	a := &Animation{defs: defs}
	a.Restart(initial, false)
	return a
}

// SetAction переключает действие. Если действие и зеркальность не
// изменились, анимация продолжается с текущего кадра.
func (a *Animation) SetAction(action string, reversed bool) {
	if a.Action == action {
		a.Reversed = reversed
		return
	}
	a.Restart(action, reversed)
}

// Restart запускает действие с первого кадра.
func (a *Animation) Restart(action string, reversed bool) {
	a.Action = action
	a.Reversed = reversed
	a.Frame = 0
	a.Finished = false
	a.elapsed = 0
}

func (a *Animation) def() AnimationDef {
	if d, ok := a.defs[a.Action]; ok && d.Frames > 0 && d.FrameDuration > 0 {
		return d
	}
	return fallbackAnimation
}

// Update продвигает анимацию на dt секунд.
func (a *Animation) Update(dt float64) {
	if a.Finished {
		return
	}
	d := a.def()
	a.elapsed += dt
	frame := int(a.elapsed / d.FrameDuration)
	if frame < d.Frames {
		a.Frame = frame
		return
	}
	if d.Loop {
		a.Frame = frame % d.Frames
		return
	}
	a.Frame = d.Frames - 1
	a.Finished = true
}

// Duration — полная длительность текущего действия.
func (a *Animation) Duration() float64 {
	d := a.def()
	return float64(d.Frames) * d.FrameDuration
}

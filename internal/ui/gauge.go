package ui

// Gauge — источник значения для полоски HUD.
type Gauge interface {
	Value() float64
}

// GaugeFunc позволяет передать метод или замыкание как Gauge.
type GaugeFunc func() float64

func (f GaugeFunc) Value() float64 { return f() }

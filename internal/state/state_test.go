package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capture-the-fly/internal/assets"
	"capture-the-fly/internal/config"
	"capture-the-fly/internal/input"
	"capture-the-fly/internal/level"
	"capture-the-fly/internal/prefs"
	"capture-the-fly/internal/utils"
	"capture-the-fly/pkg/canvas"
	"capture-the-fly/pkg/geom"
)

type traceState struct {
	name  string
	trace *[]string
}

func (s *traceState) Enter()               { *s.trace = append(*s.trace, "enter "+s.name) }
func (s *traceState) Exit()                { *s.trace = append(*s.trace, "exit "+s.name) }
func (s *traceState) Update(float64)       { *s.trace = append(*s.trace, "update "+s.name) }
func (s *traceState) Draw(c canvas.Canvas) { c.DrawText(s.name, 0, 0, 1, config.TextLightColor) }

func TestStateMachineSwitches(t *testing.T) {
	var trace []string
	sm := NewStateMachine()
	sm.Update(0.1)
	sm.Draw(canvas.NewRecorder(10, 10))

	a := &traceState{name: "a", trace: &trace}
	b := &traceState{name: "b", trace: &trace}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)
	sm.SetState(nil)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b", "exit b"}, trace)
	assert.Nil(t, sm.Current())
}

func newGame(t *testing.T) (*StateMachine, *GameState, *input.Buffer) {
	t.Helper()
	deps := level.Deps{
		Screen: geom.NewRect(0, 0, config.ScreenWidth, config.ScreenHeight),
		Maps:   assets.NewMapManager(""),
		Prefs:  &prefs.Preferences{},
		PRNG:   utils.NewPRNGService(1),
	}
	d, err := level.NewDirector(deps, config.MainLevelName)
	require.NoError(t, err)

	buf := input.NewBuffer()
	sm := NewStateMachine()
	g := NewGameState(sm, d, buf)
	sm.SetState(g)
	return sm, g, buf
}

func TestGameStateRunsFrames(t *testing.T) {
	sm, g, buf := newGame(t)
	buf.Update(func(s *input.State) { s.KeyA = true })

	sm.Update(0.05)
	ml := g.Director().Current().(*level.MainLevel)
	assert.True(t, ml.Player().Attacking())
}

func TestPauseFreezesGame(t *testing.T) {
	sm, g, buf := newGame(t)
	pause, resume := false, false
	g.PauseRequested = func() bool { return pause }
	g.ResumeRequested = func() bool { return resume }

	pause = true
	sm.Update(0.05)
	require.IsType(t, &PauseState{}, sm.Current())

	buf.Update(func(s *input.State) { s.KeyA = true })
	sm.Update(0.05)
	ml := g.Director().Current().(*level.MainLevel)
	assert.False(t, ml.Player().Attacking(), "paused game ignores input")

	rec := canvas.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm.Draw(rec)
	assert.Contains(t, rec.Texts, pauseText)
	assert.True(t, rec.Balanced())

	pause, resume = false, true
	sm.Update(0.05)
	assert.Same(t, g, sm.Current())

	sm.Update(0.05)
	assert.True(t, ml.Player().Attacking())
}

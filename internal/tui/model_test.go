package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/wheel/internal/logger"
	"github.com/rileyhilliard/wheel/internal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, names ...string) Model {
	t.Helper()
	w := wheel.New(wheel.Settings{
		Duration:      time.Second,
		MinRotations:  3,
		FreezeOptions: true,
	},
		wheel.WithSource(wheel.NewSeededSource(42)),
		wheel.WithClock(func() time.Time { return epoch }),
	)
	for _, n := range names {
		_, ok := w.Add(n, "")
		require.True(t, ok)
	}
	return NewModel(w, Options{Radius: 6})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = press(m, runes(string(r)))
	}
	return m
}

func frame(session uint64, d time.Duration) frameMsg {
	return frameMsg{session: session, time: epoch.Add(d)}
}

func TestFocus_Cycle(t *testing.T) {
	assert.Equal(t, FocusColor, FocusName.Next())
	assert.Equal(t, FocusList, FocusColor.Next())
	assert.Equal(t, FocusName, FocusList.Next())
	assert.Equal(t, FocusList, FocusName.Prev())
	assert.Equal(t, "list", FocusList.String())
	assert.Equal(t, "unknown", Focus(9).String())
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(wheel.New(wheel.DefaultSettings()), Options{})

	assert.Equal(t, "Quantum Selector", m.title)
	assert.Equal(t, wheel.DefaultFrameInterval, m.interval)
	assert.Equal(t, FocusName, m.Focus())
	assert.True(t, m.nameInput.Focused())
	assert.NotNil(t, m.Init())
}

func TestAddClearsInputs(t *testing.T) {
	m := newTestModel(t)

	m = typeText(m, "Pizza")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusColor, m.Focus())
	m = typeText(m, "#ff0000")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	opts := m.Wheel().Options()
	require.Len(t, opts, 1)
	assert.Equal(t, "Pizza", opts[0].Name)
	assert.Equal(t, "#ff0000", opts[0].Color)
	assert.Empty(t, m.nameInput.Value())
	assert.Empty(t, m.colorInput.Value())
}

func TestAddIgnoresBlankName(t *testing.T) {
	m := newTestModel(t)

	m = typeText(m, "   ")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, m.Wheel().Len())
	assert.Equal(t, "   ", m.nameInput.Value())
}

func TestLetterKeysTypeIntoInputs(t *testing.T) {
	m := newTestModel(t, "A")

	m, _ = press(m, runes("q"))
	assert.False(t, m.quitting)
	assert.Equal(t, "q", m.nameInput.Value())
}

func TestSpinAndFrames(t *testing.T) {
	m := newTestModel(t, "A", "B", "C", "D")

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.True(t, m.Wheel().Spinning())
	s := m.Wheel().Session()
	assert.Contains(t, m.View(), "Spinning...")

	// A frame for a session that doesn't exist is dropped.
	m, cmd = press(m, frame(s.ID+1, 500*time.Millisecond))
	assert.Nil(t, cmd)
	assert.Zero(t, m.Wheel().Rotation())

	m, cmd = press(m, frame(s.ID, 500*time.Millisecond))
	assert.NotNil(t, cmd)
	assert.NotZero(t, m.Wheel().Rotation())
	assert.True(t, m.Wheel().Spinning())

	m, cmd = press(m, frame(s.ID, 2*time.Second))
	assert.Nil(t, cmd)
	assert.False(t, m.Wheel().Spinning())

	winner, ok := m.Wheel().Selected()
	require.True(t, ok)
	assert.Equal(t, s.Options[s.Plan.WinningIndex], winner)
	assert.Contains(t, m.View(), "Selected: "+winner.Name)
}

func TestAddDuringSpinLandsOnWinner(t *testing.T) {
	m := newTestModel(t, "A", "B", "C", "D")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.Wheel().Spinning())
	s := m.Wheel().Session()

	m = typeText(m, "E")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 5, m.Wheel().Len())

	m, _ = press(m, frame(s.ID, 2*time.Second))
	require.False(t, m.Wheel().Spinning())

	winner, ok := m.Wheel().Selected()
	require.True(t, ok)
	assert.Equal(t, s.Options[s.Plan.WinningIndex].ID, winner.ID)

	slices := m.Wheel().Slices()
	under := wheel.SliceAt(0, m.Wheel().Rotation(), len(slices))
	assert.Equal(t, winner.ID, slices[under].ID)
}

func TestStaleSessionFrameIgnored(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	first := m.Wheel().Session().ID
	m, _ = press(m, frame(first, 2*time.Second))
	require.False(t, m.Wheel().Spinning())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	second := m.Wheel().Session().ID
	require.NotEqual(t, first, second)

	m, cmd := press(m, frame(first, 300*time.Millisecond))
	assert.Nil(t, cmd)
	assert.Zero(t, m.Wheel().Rotation())
	assert.True(t, m.Wheel().Spinning())
}

func TestSpinIgnoredWhileSpinning(t *testing.T) {
	m := newTestModel(t, "A", "B")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	id := m.Wheel().Session().ID

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Equal(t, id, m.Wheel().Session().ID)
}

func TestSpinDisabledWhileEditing(t *testing.T) {
	m := newTestModel(t, "A", "B")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, FocusList, m.Focus())
	m, _ = press(m, runes("e"))
	_, editing := m.Wheel().Editing()
	require.True(t, editing)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.False(t, m.Wheel().Spinning())
}

func TestListNavigation(t *testing.T) {
	m := newTestModel(t, "A", "B", "C")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})

	m, _ = press(m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 2, m.Cursor())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp}, runes("k"), runes("k"))
	assert.Equal(t, 0, m.Cursor())
}

func TestEditFlow(t *testing.T) {
	m := newTestModel(t, "Pizza")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("e"))

	assert.Equal(t, "Pizza", m.editInput.Value())
	m = typeText(m, "!")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	_, editing := m.Wheel().Editing()
	assert.False(t, editing)
	assert.Equal(t, "Pizza!", m.Wheel().Options()[0].Name)
	assert.Empty(t, m.editInput.Value())
}

func TestEditCancel(t *testing.T) {
	m := newTestModel(t, "Pizza")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("e"))
	m = typeText(m, "xyz")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	_, editing := m.Wheel().Editing()
	assert.False(t, editing)
	assert.Equal(t, "Pizza", m.Wheel().Options()[0].Name)
}

func TestRemove(t *testing.T) {
	m := newTestModel(t, "A", "B")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("j"), runes("d"))

	opts := m.Wheel().Options()
	require.Len(t, opts, 1)
	assert.Equal(t, "A", opts[0].Name)
	assert.Equal(t, 0, m.Cursor())
}

func TestEditAndRemoveDisabledWhileSpinning(t *testing.T) {
	m := newTestModel(t, "A", "B")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.Wheel().Spinning())

	m, _ = press(m, runes("d"), runes("x"), tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, 2, m.Wheel().Len())

	m, _ = press(m, runes("e"))
	_, editing := m.Wheel().Editing()
	assert.False(t, editing)

	assert.False(t, m.keys.Edit.Enabled())
	assert.False(t, m.keys.Remove.Enabled())
}

func TestCycleColor(t *testing.T) {
	m := newTestModel(t)
	_, ok := m.Wheel().Add("A", "#00ffff")
	require.True(t, ok)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("c"))
	assert.Equal(t, wheel.DefaultPalette.Next("#00ffff"), m.Wheel().Options()[0].Color)
}

func TestRecolor(t *testing.T) {
	m := newTestModel(t)
	_, ok := m.Wheel().Add("A", "#00ffff")
	require.True(t, ok)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("C"))
	assert.Equal(t, "#00ffff", m.recolorInput.Value())

	m.recolorInput.SetValue("nope")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.status, "Not a hex color")
	assert.NotZero(t, m.recoloringID)

	m.recolorInput.SetValue("#123456")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Zero(t, m.recoloringID)
	assert.Equal(t, "#123456", m.Wheel().Options()[0].Color)
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, "A")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("?"))

	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	// Keys other than close are swallowed while help is open.
	m, _ = press(m, runes("d"))
	assert.Equal(t, 1, m.Wheel().Len())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestQuitCancelsSpin(t *testing.T) {
	m := newTestModel(t, "A", "B")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	id := m.Wheel().Session().ID

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Wheel().Spinning())
	assert.Empty(t, m.View())

	// A frame that was already scheduled lands after teardown.
	m, cmd = press(m, frame(id, 2*time.Second))
	assert.Nil(t, cmd)
	_, ok := m.Wheel().Selected()
	assert.False(t, ok)
}

func TestQuitFromList(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestWindowSize(t *testing.T) {
	m := NewModel(wheel.New(wheel.DefaultSettings()), Options{Logger: logger.Noop()})
	m, _ = press(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, FitRadius(120-panelWidth-2, 34), m.wheelRadius())
	assert.Contains(t, m.View(), "Add some options to spin")
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/wheel/internal/logger"
	"github.com/rileyhilliard/wheel/internal/ui"
	"github.com/rileyhilliard/wheel/internal/wheel"
)

// Focus is the part of the screen receiving keys.
type Focus int

const (
	FocusName Focus = iota
	FocusColor
	FocusList
)

// String returns a human-readable focus name.
func (f Focus) String() string {
	switch f {
	case FocusName:
		return "name"
	case FocusColor:
		return "color"
	case FocusList:
		return "list"
	default:
		return "unknown"
	}
}

// Next cycles to the next focus.
func (f Focus) Next() Focus {
	return Focus((int(f) + 1) % 3)
}

// Prev cycles to the previous focus.
func (f Focus) Prev() Focus {
	return Focus((int(f) + 2) % 3)
}

// Options configures a Model.
type Options struct {
	Title string

	// Radius of the pie in rows. 0 fits the terminal.
	Radius int

	// FrameInterval is the delay between animation frames.
	FrameInterval time.Duration

	Logger logger.Logger
}

// Model is the Bubble Tea model for the wheel screen.
type Model struct {
	wheel *wheel.Wheel

	nameInput    textinput.Model
	colorInput   textinput.Model
	editInput    textinput.Model
	recolorInput textinput.Model
	recoloringID int64

	focus  Focus
	cursor int

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	showHelp bool

	width    int
	height   int
	radius   int
	title    string
	interval time.Duration
	status   string
	quitting bool

	log logger.Logger
}

// frameMsg advances the spin with the given session id.
type frameMsg struct {
	session uint64
	time    time.Time
}

// NewModel creates the screen for w.
func NewModel(w *wheel.Wheel, opts Options) Model {
	if opts.Title == "" {
		opts.Title = "Quantum Selector"
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = wheel.DefaultFrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}

	name := textinput.New()
	name.Placeholder = "Add an option"
	name.CharLimit = 64
	name.Width = 20
	name.Prompt = ""

	color := textinput.New()
	color.Placeholder = "#00ffff"
	color.CharLimit = 7
	color.Width = 8
	color.Prompt = ""

	edit := textinput.New()
	edit.CharLimit = 64
	edit.Width = nameWidth - 2
	edit.Prompt = ""

	recolor := textinput.New()
	recolor.CharLimit = 7
	recolor.Width = 8
	recolor.Prompt = ""

	m := Model{
		wheel:        w,
		nameInput:    name,
		colorInput:   color,
		editInput:    edit,
		recolorInput: recolor,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spinner:      ui.NewSpinner(),
		radius:       opts.Radius,
		title:        opts.Title,
		interval:     opts.FrameInterval,
		log:          opts.Logger,
	}
	m.setFocus(FocusName)
	return m
}

// Init starts the text cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.keys.setSpinning(m.wheel.Spinning())

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.HandleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		cmd = m.handleFrame(msg)

	case spinner.TickMsg:
		if m.wheel.Spinning() {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	default:
		cmd = m.updateFocusedInput(msg)
	}

	m.keys.setSpinning(m.wheel.Spinning())
	return m, cmd
}

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderScreen()
}

// Wheel returns the wheel the screen drives.
func (m Model) Wheel() *wheel.Wheel {
	return m.wheel
}

// Focus returns the focused area.
func (m Model) Focus() Focus {
	return m.focus
}

// Cursor returns the highlighted row in the option list.
func (m Model) Cursor() int {
	return m.cursor
}

// HandleKeyMsg routes a key press to the focused area.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Cancel) {
			m.showHelp = false
		}
		return nil
	}

	if key.Matches(msg, m.keys.SpinAny) {
		return m.spin()
	}

	if _, editing := m.wheel.Editing(); editing {
		return m.handleEditKey(msg)
	}
	if m.recoloringID != 0 {
		return m.handleRecolorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus(m.focus.Next())
		return nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus(m.focus.Prev())
		return nil
	}

	if m.focus != FocusList {
		if key.Matches(msg, m.keys.Submit) {
			m.addFromInputs()
			return nil
		}
		return m.updateFocusedInput(msg)
	}

	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	opts := m.wheel.Options()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(opts)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Spin):
		return m.spin()

	case key.Matches(msg, m.keys.Edit):
		opt, ok := m.cursorOption()
		if !ok || !m.wheel.StartEdit(opt.ID) {
			return nil
		}
		m.editInput.SetValue(opt.Name)
		m.editInput.CursorEnd()
		m.status = ""
		return m.editInput.Focus()

	case key.Matches(msg, m.keys.Remove):
		opt, ok := m.cursorOption()
		if ok && m.wheel.Remove(opt.ID) {
			m.status = "Removed " + opt.Name
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.Cycle):
		if opt, ok := m.cursorOption(); ok {
			m.wheel.CycleColor(opt.ID)
		}

	case key.Matches(msg, m.keys.Recolor):
		opt, ok := m.cursorOption()
		if !ok {
			return nil
		}
		m.recoloringID = opt.ID
		m.recolorInput.SetValue(opt.Color)
		m.recolorInput.CursorEnd()
		m.status = ""
		return m.recolorInput.Focus()
	}
	return nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if !m.wheel.SaveEdit(m.editInput.Value()) {
			m.status = "Name unchanged"
		}
		m.closeEdit()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.wheel.CancelEdit()
		m.closeEdit()
		return nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return cmd
}

func (m *Model) handleRecolorKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if !m.wheel.Recolor(m.recoloringID, m.recolorInput.Value()) {
			m.status = "Not a hex color: " + m.recolorInput.Value()
			return nil
		}
		m.closeRecolor()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.closeRecolor()
		return nil
	}

	var cmd tea.Cmd
	m.recolorInput, cmd = m.recolorInput.Update(msg)
	return cmd
}

func (m *Model) closeEdit() {
	m.editInput.Blur()
	m.editInput.SetValue("")
}

func (m *Model) closeRecolor() {
	m.recoloringID = 0
	m.recolorInput.Blur()
	m.recolorInput.SetValue("")
}

// addFromInputs adds an option from the name and color inputs and clears
// both on success.
func (m *Model) addFromInputs() {
	opt, ok := m.wheel.Add(m.nameInput.Value(), m.colorInput.Value())
	if !ok {
		return
	}
	m.nameInput.SetValue("")
	m.colorInput.SetValue("")
	m.status = ""
	m.cursor = m.wheel.Len() - 1
	m.log.Debug("tui: added %q", opt.Name)
}

func (m *Model) spin() tea.Cmd {
	s, ok := m.wheel.Spin()
	if !ok {
		return nil
	}
	m.status = ""
	return tea.Batch(m.frameCmd(s.ID), m.spinner.Tick)
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	s := m.wheel.Session()
	if s == nil || s.ID != msg.session {
		return nil
	}

	f, ok := m.wheel.Advance(msg.time)
	if !ok || f.Done {
		return nil
	}
	return m.frameCmd(msg.session)
}

// frameCmd schedules the next animation frame for session id.
func (m Model) frameCmd(id uint64) tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg{session: id, time: t}
	})
}

func (m *Model) quit() tea.Cmd {
	m.wheel.Cancel()
	m.quitting = true
	return tea.Quit
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.nameInput.Blur()
	m.colorInput.Blur()
	switch f {
	case FocusName:
		m.nameInput.Focus()
	case FocusColor:
		m.colorInput.Focus()
	}
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.editInput.Focused():
		m.editInput, cmd = m.editInput.Update(msg)
	case m.recolorInput.Focused():
		m.recolorInput, cmd = m.recolorInput.Update(msg)
	case m.focus == FocusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case m.focus == FocusColor:
		m.colorInput, cmd = m.colorInput.Update(msg)
	}
	return cmd
}

func (m Model) cursorOption() (wheel.Option, bool) {
	opts := m.wheel.Options()
	if m.cursor < 0 || m.cursor >= len(opts) {
		return wheel.Option{}, false
	}
	return opts[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := m.wheel.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

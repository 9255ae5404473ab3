package wheel

import (
	"time"

	"github.com/rileyhilliard/wheel/internal/logger"
)

// Settings controls spin behavior.
type Settings struct {
	Duration     time.Duration
	MinRotations int

	// FreezeOptions snapshots the option list at spin start and commits the
	// winner from the snapshot. When false the live list is indexed at
	// completion instead, and an out-of-range index leaves nothing selected.
	FreezeOptions bool

	Palette Palette
}

// DefaultSettings returns a 10s, three-turn spin over a frozen snapshot.
func DefaultSettings() Settings {
	return Settings{
		Duration:      DefaultDuration,
		MinRotations:  DefaultMinRotations,
		FreezeOptions: true,
		Palette:       DefaultPalette,
	}
}

// Opt configures a Wheel.
type Opt func(*Wheel)

// WithSource sets the random source used for draws and palette picks.
func WithSource(src Source) Opt {
	return func(w *Wheel) { w.src = src }
}

// WithClock sets the clock used to stamp spin start times.
func WithClock(now func() time.Time) Opt {
	return func(w *Wheel) { w.now = now }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Opt {
	return func(w *Wheel) { w.log = l }
}

// Wheel is the single owner of picker state: options, selection, edit mode,
// and the active spin.
type Wheel struct {
	store    *Store
	selector *Selector
	settings Settings
	src      Source
	now      func() time.Time
	log      logger.Logger

	session     *Session
	lastSession uint64
	rotation    float64
	selectedID  int64
	editingID   int64
}

// New creates an idle wheel with no options.
func New(settings Settings, opts ...Opt) *Wheel {
	if settings.Duration <= 0 {
		settings.Duration = DefaultDuration
	}
	if settings.MinRotations < 1 {
		settings.MinRotations = DefaultMinRotations
	}
	if len(settings.Palette) == 0 {
		settings.Palette = DefaultPalette
	}

	w := &Wheel{settings: settings}
	for _, opt := range opts {
		opt(w)
	}
	if w.src == nil {
		w.src = defaultSource{}
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.log == nil {
		w.log = logger.Noop()
	}

	w.store = NewStore(settings.Palette, w.src)
	w.selector = NewSelector(w.src, settings.MinRotations)
	return w
}

// Settings returns the effective settings.
func (w *Wheel) Settings() Settings {
	return w.settings
}

// Options returns a copy of the current option list.
func (w *Wheel) Options() []Option {
	return w.store.Options()
}

// Slices returns the options the wheel is drawn with. During a frozen spin
// that is the snapshot the rotation was planned for, with current colors;
// otherwise it is the live list.
func (w *Wheel) Slices() []Option {
	if w.session == nil || !w.settings.FreezeOptions {
		return w.store.Options()
	}
	slices := make([]Option, len(w.session.Options))
	for i, o := range w.session.Options {
		if live, ok := w.store.Get(o.ID); ok {
			o.Color = live.Color
		}
		slices[i] = o
	}
	return slices
}

// Len returns the number of options.
func (w *Wheel) Len() int {
	return w.store.Len()
}

// Palette returns the fallback palette.
func (w *Wheel) Palette() Palette {
	return w.store.Palette()
}

// Add appends an option. Allowed while spinning; a frozen spin ignores it.
func (w *Wheel) Add(name, color string) (Option, bool) {
	opt, ok := w.store.Add(name, color)
	if ok {
		w.log.Debug("added option id=%d name=%q color=%s", opt.ID, opt.Name, opt.Color)
		w.realign()
	}
	return opt, ok
}

// Rename changes an option's name. Rejected while spinning.
func (w *Wheel) Rename(id int64, name string) bool {
	if w.Spinning() {
		w.log.Debug("rename of id=%d rejected: spin in progress", id)
		return false
	}
	return w.store.Rename(id, name)
}

// Recolor changes an option's color. Allowed while spinning.
func (w *Wheel) Recolor(id int64, color string) bool {
	return w.store.Recolor(id, color)
}

// CycleColor moves an option to the next palette color.
func (w *Wheel) CycleColor(id int64) bool {
	opt, ok := w.store.Get(id)
	if !ok {
		return false
	}
	return w.store.Recolor(id, w.store.Palette().Next(opt.Color))
}

// Remove deletes an option and clears the selection if it pointed at it.
// Rejected while spinning.
func (w *Wheel) Remove(id int64) bool {
	if w.Spinning() {
		w.log.Debug("remove of id=%d rejected: spin in progress", id)
		return false
	}
	if !w.store.Remove(id) {
		return false
	}
	if w.selectedID == id {
		w.selectedID = 0
	}
	if w.editingID == id {
		w.editingID = 0
	}
	w.realign()
	w.log.Debug("removed option id=%d", id)
	return true
}

// StartEdit opens inline editing for id. Rejected while spinning.
func (w *Wheel) StartEdit(id int64) bool {
	if w.Spinning() {
		return false
	}
	if _, ok := w.store.Get(id); !ok {
		return false
	}
	w.editingID = id
	return true
}

// SaveEdit renames the option being edited and closes edit mode. It is a
// no-op when nothing is being edited. An empty name closes edit mode
// without renaming.
func (w *Wheel) SaveEdit(name string) bool {
	if w.editingID == 0 {
		return false
	}
	id := w.editingID
	w.editingID = 0
	return w.store.Rename(id, name)
}

// CancelEdit closes edit mode without renaming.
func (w *Wheel) CancelEdit() {
	w.editingID = 0
}

// Editing returns the id being edited.
func (w *Wheel) Editing() (int64, bool) {
	return w.editingID, w.editingID != 0
}

// Spinning reports whether a spin is in flight.
func (w *Wheel) Spinning() bool {
	return w.session != nil
}

// CanSpin reports whether Spin would start a new spin.
func (w *Wheel) CanSpin() bool {
	return w.session == nil && w.editingID == 0 && w.store.Len() > 0
}

// Spin draws the winner and starts the animation. Calls while spinning,
// while editing, or with no options are no-ops.
func (w *Wheel) Spin() (*Session, bool) {
	if !w.CanSpin() {
		return nil, false
	}

	plan, ok := w.selector.Plan(w.store.Len())
	if !ok {
		return nil, false
	}

	w.lastSession++
	w.session = &Session{
		ID:       w.lastSession,
		Plan:     plan,
		Start:    w.now(),
		Duration: w.settings.Duration,
		Options:  w.store.Options(),
	}
	w.rotation = 0
	w.selectedID = 0

	w.log.Info("spin %d started: %d options, winning index %d, total rotation %.2f",
		w.session.ID, plan.Count, plan.WinningIndex, plan.TotalRotation)
	return w.session, true
}

// Session returns the spin in flight, or nil.
func (w *Wheel) Session() *Session {
	return w.session
}

// Advance moves the active spin to now, updating the displayed rotation.
// On the final frame the pre-drawn winner is committed and the wheel goes
// idle. Returns false when no spin is active.
func (w *Wheel) Advance(now time.Time) (Frame, bool) {
	if w.session == nil {
		return Frame{}, false
	}

	f := w.session.Frame(now)
	w.rotation = f.Display
	if f.Done {
		w.commit()
	}
	return f, true
}

func (w *Wheel) commit() {
	s := w.session
	w.session = nil

	var winner Option
	var ok bool
	if w.settings.FreezeOptions {
		winner, ok = s.Winner()
	} else {
		live := w.store.Options()
		if i := s.Plan.WinningIndex; i < len(live) {
			winner, ok = live[i], true
		}
	}

	if !ok {
		w.log.Warn("spin %d finished but index %d is out of range", s.ID, s.Plan.WinningIndex)
		return
	}
	w.selectedID = winner.ID
	if w.store.Len() != s.Plan.Count {
		w.realign()
	}
	w.log.Info("spin %d finished: selected %q", s.ID, winner.Name)
}

// realign parks the selected slice's center under the indicator when the
// idle wheel's slice count changes. No-op while spinning or with nothing
// selected.
func (w *Wheel) realign() {
	if w.session != nil || w.selectedID == 0 {
		return
	}
	i := w.store.IndexOf(w.selectedID)
	if i < 0 {
		return
	}
	w.rotation = NormalizeAngle(PlanFor(w.store.Len(), i, 1).TotalRotation)
}

// Cancel discards the active spin without selecting anything. Used on
// teardown so no frame lands after disposal.
func (w *Wheel) Cancel() {
	if w.session != nil {
		w.log.Debug("spin %d cancelled", w.session.ID)
	}
	w.session = nil
}

// Rotation returns the displayed rotation in [0, 360).
func (w *Wheel) Rotation() float64 {
	return w.rotation
}

// Selected returns the committed winner, looked up in the live list so
// recolors made during the spin are reflected.
func (w *Wheel) Selected() (Option, bool) {
	if w.selectedID == 0 {
		return Option{}, false
	}
	return w.store.Get(w.selectedID)
}

// SelectedIndex returns the list position of the selection, or -1.
func (w *Wheel) SelectedIndex() int {
	if w.selectedID == 0 {
		return -1
	}
	return w.store.IndexOf(w.selectedID)
}

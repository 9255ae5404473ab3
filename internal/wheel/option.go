package wheel

import "strings"

// Option is a named, colored choice on the wheel.
type Option struct {
	ID    int64
	Name  string
	Color string // #rrggbb
}

// Store is the ordered, in-memory option list. Order is insertion order and
// decides slice positions on the wheel.
type Store struct {
	options []Option
	nextID  int64
	palette Palette
	src     Source
}

// NewStore creates an empty store. Options added without a color get one
// from palette, picked with src (nil means the package default source).
func NewStore(palette Palette, src Source) *Store {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if src == nil {
		src = defaultSource{}
	}
	return &Store{palette: palette, src: src}
}

// Add appends a new option. Empty or whitespace-only names are ignored.
// An empty or unparseable color falls back to a palette color.
func (s *Store) Add(name, color string) (Option, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Option{}, false
	}

	hex, ok := NormalizeColor(color)
	if !ok {
		hex = s.palette.Pick(s.src)
	}

	s.nextID++
	opt := Option{ID: s.nextID, Name: name, Color: hex}
	s.options = append(s.options, opt)
	return opt, true
}

// Rename trims and replaces the name of the option with the given id.
func (s *Store) Rename(id int64, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.options[i].Name = name
	return true
}

// Recolor replaces the color of the option with the given id.
func (s *Store) Recolor(id int64, color string) bool {
	hex, ok := NormalizeColor(color)
	if !ok {
		return false
	}
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.options[i].Color = hex
	return true
}

// Remove deletes the option with the given id.
func (s *Store) Remove(id int64) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.options = append(s.options[:i], s.options[i+1:]...)
	return true
}

// Get returns the option with the given id.
func (s *Store) Get(id int64) (Option, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return Option{}, false
	}
	return s.options[i], true
}

// IndexOf returns the list position of id, or -1.
func (s *Store) IndexOf(id int64) int {
	for i, o := range s.options {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Options returns a copy of the option list.
func (s *Store) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Len returns the number of options.
func (s *Store) Len() int {
	return len(s.options)
}

// Palette returns the fallback palette.
func (s *Store) Palette() Palette {
	return s.palette
}

package config

import "github.com/rileyhilliard/wheel/internal/wheel"

// WheelSettings converts the spin section into wheel.Settings. An empty
// palette falls back to wheel.DefaultPalette. Palette entries are normalized
// to lowercase #rrggbb; invalid ones are skipped.
func (c *Config) WheelSettings() wheel.Settings {
	s := wheel.DefaultSettings()
	s.Duration = c.Spin.Duration
	s.MinRotations = c.Spin.MinRotations
	s.FreezeOptions = c.Spin.FreezeOptions

	var palette wheel.Palette
	for _, p := range c.Palette {
		if hex, ok := wheel.NormalizeColor(p); ok {
			palette = append(palette, hex)
		}
	}
	if len(palette) > 0 {
		s.Palette = palette
	}
	return s
}

// Seed adds the configured options to w in file order.
func (c *Config) Seed(w *wheel.Wheel) int {
	added := 0
	for _, o := range c.Options {
		if _, ok := w.Add(o.Name, o.Color); ok {
			added++
		}
	}
	return added
}

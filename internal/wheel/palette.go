package wheel

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the list of fallback colors for options added without one.
type Palette []string

// DefaultPalette is a neon set that reads well on dark terminals.
var DefaultPalette = Palette{
	"#00ffff", // cyan
	"#ff2e97", // neon pink
	"#39ff14", // neon green
	"#ffaa00", // amber
	"#bf40ff", // purple
	"#1e90ff", // blue
	"#ff0055", // red-pink
	"#ffe600", // yellow
	"#00ff9f", // mint
	"#ff6b35", // orange
}

// Pick returns a pseudo-random palette entry.
func (p Palette) Pick(src Source) string {
	if len(p) == 0 {
		return DefaultPalette[0]
	}
	if src == nil {
		src = defaultSource{}
	}
	return p[src.IntN(len(p))]
}

// Next returns the entry after color, wrapping around. Colors not in the
// palette map to the first entry.
func (p Palette) Next(color string) string {
	if len(p) == 0 {
		return DefaultPalette[0]
	}
	hex, _ := NormalizeColor(color)
	for i, c := range p {
		if strings.EqualFold(c, hex) {
			return p[(i+1)%len(p)]
		}
	}
	return p[0]
}

// Valid reports whether every palette entry parses as a hex color.
func (p Palette) Valid() bool {
	for _, c := range p {
		if _, ok := NormalizeColor(c); !ok {
			return false
		}
	}
	return true
}

// NormalizeColor parses "#rgb", "#rrggbb" or the same without "#" and
// returns the canonical lowercase "#rrggbb" form.
func NormalizeColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return "", false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

// ContrastColor returns black or white, whichever reads better on hex.
func ContrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/wheel/internal/ui"
	"github.com/rileyhilliard/wheel/internal/wheel"
)

// Radius limits for the pie.
const (
	MinRadius     = 4
	MaxRadius     = 20
	DefaultRadius = 8

	// labelRadius is where labels sit, as a fraction of the radius.
	labelRadius = 0.6
)

// cell is one character position of the pie.
type cell struct {
	inside  bool
	slice   int
	outline bool
	label   rune
	owner   int // slice whose label occupies the cell, or -1
}

// grid is the pie laid out in terminal cells: 2r+1 rows by 4r+1 columns,
// since terminal cells are about twice as tall as they are wide.
type grid struct {
	radius int
	cells  [][]cell
}

func (g grid) rows() int { return 2*g.radius + 1 }
func (g grid) cols() int { return 4*g.radius + 1 }

func (g grid) at(row, col int) (cell, bool) {
	if row < 0 || row >= g.rows() || col < 0 || col >= g.cols() {
		return cell{}, false
	}
	return g.cells[row][col], true
}

// screenAngle returns the clockwise angle from the top of the wheel to the
// cell at (row, col), and its distance from the center in rows.
func screenAngle(radius, row, col int) (deg, dist float64) {
	dy := float64(row - radius)
	dx := float64(col-2*radius) / 2
	dist = math.Hypot(dx, dy)
	deg = wheel.NormalizeAngle(math.Atan2(dx, -dy) * 180 / math.Pi)
	return deg, dist
}

// layoutWheel maps every cell to the slice drawn there. selected is the
// index of the slice to outline, or -1.
func layoutWheel(opts []wheel.Option, rotation float64, selected, radius int) grid {
	g := grid{radius: radius, cells: make([][]cell, 2*radius+1)}
	n := len(opts)
	limit := float64(radius) + 0.5

	for row := range g.cells {
		g.cells[row] = make([]cell, 4*radius+1)
		for col := range g.cells[row] {
			deg, dist := screenAngle(radius, row, col)
			c := cell{slice: -1, owner: -1}
			if dist <= limit {
				c.inside = true
				if n > 0 {
					c.slice = wheel.SliceAt(deg, rotation, n)
				}
			}
			g.cells[row][col] = c
		}
	}

	if selected >= 0 && selected < n {
		markOutline(&g, selected)
	}
	// Labels give way to the outline once a winner is shown.
	if radius >= MinRadius && selected < 0 {
		placeLabels(&g, opts, rotation)
	}
	return g
}

// markOutline flags cells of the selected slice that touch another slice or
// the outside of the wheel.
func markOutline(g *grid, selected int) {
	for row := range g.cells {
		for col := range g.cells[row] {
			c := g.cells[row][col]
			if !c.inside || c.slice != selected {
				continue
			}
			for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nb, ok := g.at(row+d[0], col+d[1])
				if !ok || !nb.inside || nb.slice != selected {
					g.cells[row][col].outline = true
					break
				}
			}
		}
	}
}

// placeLabels writes each option's wrapped name centered on its slice at
// labelRadius from the center.
func placeLabels(g *grid, opts []wheel.Option, rotation float64) {
	n := len(opts)
	r := float64(g.radius) * labelRadius
	for i, opt := range opts {
		center := wheel.SliceCenter(i, rotation, n) * math.Pi / 180
		cy := float64(g.radius) - r*math.Cos(center)
		cx := float64(2*g.radius) + 2*r*math.Sin(center)

		lines := wheel.WrapLabel(opt.Name, wheel.LabelWidth)
		top := int(math.Round(cy - float64(len(lines)-1)/2))
		for li, line := range lines {
			runes := []rune(line)
			row := top + li
			start := int(math.Round(cx - float64(len(runes)-1)/2))
			for ci, ch := range runes {
				col := start + ci
				c, ok := g.at(row, col)
				if !ok || !c.inside {
					continue
				}
				g.cells[row][col].label = ch
				g.cells[row][col].owner = i
			}
		}
	}
}

// RenderWheel draws the pie with the indicator above it.
func RenderWheel(opts []wheel.Option, rotation float64, selected, radius int) string {
	if radius < 1 {
		radius = 1
	}
	g := layoutWheel(opts, rotation, selected, radius)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 2*radius))
	b.WriteString(IndicatorStyle.Render(ui.SymbolIndicator))
	b.WriteString(strings.Repeat(" ", 2*radius))
	b.WriteByte('\n')

	styles := map[[2]string]lipgloss.Style{}
	style := func(fg, bg string) lipgloss.Style {
		k := [2]string{fg, bg}
		if s, ok := styles[k]; ok {
			return s
		}
		s := lipgloss.NewStyle()
		if fg != "" {
			s = s.Foreground(lipgloss.Color(fg))
		}
		if bg != "" {
			s = s.Background(lipgloss.Color(bg))
		}
		styles[k] = s
		return s
	}

	for row := range g.cells {
		var run strings.Builder
		var runKey [2]string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(style(runKey[0], runKey[1]).Render(run.String()))
			run.Reset()
		}

		for _, c := range g.cells[row] {
			ch, key := cellGlyph(c, opts)
			if key != runKey {
				flush()
				runKey = key
			}
			run.WriteRune(ch)
		}
		flush()
		if row < len(g.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// cellGlyph picks the rune and (fg, bg) colors for a cell.
func cellGlyph(c cell, opts []wheel.Option) (rune, [2]string) {
	switch {
	case !c.inside:
		return ' ', [2]string{}
	case c.slice < 0:
		return runeEmpty, [2]string{string(ColorBorder), ""}
	case c.label != 0:
		bg := opts[c.owner].Color
		return c.label, [2]string{wheel.ContrastColor(bg), bg}
	case c.outline:
		return runeOutline, [2]string{string(ColorTextPrimary), opts[c.slice].Color}
	default:
		return runeFill, [2]string{opts[c.slice].Color, ""}
	}
}

// FitRadius picks the largest radius that fits in the given area.
func FitRadius(width, height int) int {
	if width <= 0 || height <= 0 {
		return DefaultRadius
	}
	// Indicator row plus 2r+1 rows.
	r := (height - 2) / 2
	if byWidth := (width - 1) / 4; byWidth < r {
		r = byWidth
	}
	if r < MinRadius {
		r = MinRadius
	}
	if r > MaxRadius {
		r = MaxRadius
	}
	return r
}

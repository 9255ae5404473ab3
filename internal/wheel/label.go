package wheel

import (
	"strings"
	"unicode/utf8"
)

// LabelWidth is the line width slice labels wrap at.
const LabelWidth = 10

// WrapLabel splits name into lines greedily: a word joins the current line
// while len(line)+len(word) <= width, otherwise it starts a new line. Words
// longer than width get a line of their own.
func WrapLabel(name string, width int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(name) {
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

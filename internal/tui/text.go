package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func padVisual(text string, width int) string {
	visible := visibleLen(text)
	if visible > width {
		return truncateVisual(text, width)
	}
	return text + strings.Repeat(" ", width-visible)
}

// truncateVisual cuts text to width cells. Escape sequences, including zone
// markers, are kept so a cut line stays styled and clickable.
func truncateVisual(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if visibleLen(text) <= width {
		return text
	}
	tail := ""
	if width > 3 {
		tail = "..."
	}
	return ansi.Truncate(text, width, tail)
}

func wrapText(text string, width int) []string {
	plain := strings.TrimSpace(stripANSI(text))
	if plain == "" {
		return []string{""}
	}
	if width <= 0 {
		return []string{plain}
	}
	words := strings.Fields(plain)
	lines := []string{}
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if lipgloss.Width(candidate) <= width {
			current = candidate
			continue
		}
		lines = append(lines, breakWord(current, width)...)
		current = word
	}
	lines = append(lines, breakWord(current, width)...)
	return lines
}

func breakWord(word string, width int) []string {
	if width <= 0 || lipgloss.Width(word) <= width {
		return []string{word}
	}
	out := []string{}
	var b strings.Builder
	for _, r := range word {
		if b.Len() > 0 && lipgloss.Width(b.String()+string(r)) > width {
			out = append(out, b.String())
			b.Reset()
		}
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}

func visibleLen(s string) int {
	return lipgloss.Width(s)
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}

// fitLines pads or cuts lines to exactly height rows of width columns.
func fitLines(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = padVisual(line, width)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clamp(minValue, value, maxValue int) int {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

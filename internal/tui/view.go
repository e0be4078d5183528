package tui

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"
	"github.com/owliabot/owliabot/carousel/internal/carousel"
)

const summaryTitle = "Your Selected Options:"

func (m *Model) View() string {
	if m.strip.cardHeight <= 0 {
		return "loading..."
	}
	cardHeight := m.strip.cardHeight
	cardWidth := maxInt(20, m.width-gutterWidth)

	content := make([]string, 0, m.mountedCards()*cardHeight)
	n := m.engine.Registry().Len()
	for i := 0; i < n; i++ {
		step, _ := m.engine.Registry().At(i)
		content = append(content, m.renderStepCard(i, step, cardWidth, cardHeight)...)
	}
	if m.engine.SummaryVisible() {
		content = append(content, m.renderSummaryCard(cardWidth, cardHeight)...)
	}

	top := clamp(0, m.strip.row(), maxInt(0, len(content)-cardHeight))
	window := fitLines(content[top:], cardWidth, cardHeight)
	dots := m.renderDots(cardHeight)

	rows := make([]string, 0, cardHeight+footerRows)
	for i := 0; i < cardHeight; i++ {
		rows = append(rows, dots[i]+window[i])
	}
	rows = append(rows, padVisual(m.toast.render(), m.width), m.renderHelp())
	return zone.Scan(strings.Join(rows, "\n"))
}

func (m *Model) renderStepCard(index int, step carousel.Step, width, height int) []string {
	body := []string{
		styles.Muted.Render(fmt.Sprintf(" Step %d of %d", index+1, m.engine.Registry().Len())),
		"",
	}
	for _, line := range wrapText(step.Title, width-2) {
		body = append(body, " "+styles.Title.Render(line))
	}
	body = append(body, "", styles.Section.Render(" Options"))

	chosen, hasChoice := m.engine.SelectedOption(index)
	for i, option := range step.Options {
		label := fmt.Sprintf("[%d] %s", i+1, option)
		line := "   " + styles.Primary.Render(label)
		if hasChoice && chosen == option {
			line = " ▶ " + styles.SelectedLine.Render(label)
		}
		body = append(body, zone.Mark(optionZoneID(index, i), line))
	}
	return frameCard(body, width, height)
}

func (m *Model) renderSummaryCard(width, height int) []string {
	body := []string{" " + styles.Title.Render(summaryTitle), ""}
	for _, answer := range m.engine.Answers() {
		for _, line := range wrapText(answer.Title, width-4) {
			body = append(body, "  "+styles.Section.Render(line))
		}
		body = append(body, "    "+styles.Primary.Render("→ "+answer.Option))
	}
	body = append(body,
		"",
		" "+zone.Mark(submitZoneID, styles.Button.Render("Submit"))+"  "+zone.Mark(cancelZoneID, styles.Button.Render("Cancel")),
	)
	return frameCard(body, width, height)
}

// frameCard centres body vertically and closes the card with a separator.
func frameCard(body []string, width, height int) []string {
	inner := height - 1
	if len(body) > inner {
		body = body[:inner]
	}
	topPad := (inner - len(body)) / 3
	lines := make([]string, 0, height)
	for i := 0; i < topPad; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, body...)
	lines = fitLines(lines, width, inner)
	return append(lines, styles.Separator.Render(strings.Repeat("─", width)))
}

func (m *Model) renderDots(height int) []string {
	n := m.engine.Registry().Len()
	dots := make([]string, height)
	start := maxInt(0, (height-(2*n-1))/2)
	for i := range dots {
		dots[i] = strings.Repeat(" ", gutterWidth)
	}
	for i := 0; i < n; i++ {
		row := start + 2*i
		if row >= height {
			break
		}
		dot := styles.Dot.Render("○")
		if i == m.engine.CurrentStep() {
			dot = styles.DotActive.Render("●")
		}
		dots[row] = " " + zone.Mark(dotZoneID(i), dot) + "  "
	}
	return dots
}

func (m *Model) renderHelp() string {
	bindings := m.keys.stepHelp()
	if m.onSummary() {
		bindings = m.keys.summaryHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return padVisual(styles.Muted.Render(" "+strings.Join(parts, " · ")), m.width)
}

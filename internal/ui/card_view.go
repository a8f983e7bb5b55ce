package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/internboard/internal/cards"
)

// renderCards rebuilds the viewport content and remembers where each card
// starts so the selection can be scrolled into view.
func (m *Model) renderCards() {
	m.offsets = nil
	if m.page.Status != cards.StatusResults || m.width == 0 {
		m.viewport.SetContent("")
		return
	}

	width := max(m.width-2, LayoutMinCardWidth)
	var b strings.Builder
	line := 0
	for i, c := range m.page.Cards {
		rendered := m.renderCard(c, i == m.selected, width)
		m.offsets = append(m.offsets, line)
		b.WriteString(rendered)
		b.WriteString("\n")
		line += lipgloss.Height(rendered)
	}
	m.viewport.SetContent(strings.TrimSuffix(b.String(), "\n"))
}

// renderCard draws one card box.
func (m Model) renderCard(c cards.Card, selected bool, width int) string {
	styles := m.theme.Styles()
	box := styles.Card
	if selected {
		box = styles.SelectedCard
	}
	inner := max(width-4, 10)

	title := styles.Text.Bold(true)
	if selected {
		title = styles.AccentText.Bold(true)
	}

	logo := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Faint)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(3).
		Align(lipgloss.Center).
		Render(c.Logo.Glyph)

	heading := lipgloss.JoinHorizontal(lipgloss.Top,
		logo, " ",
		lipgloss.JoinVertical(lipgloss.Left,
			title.Render(cards.Truncate(c.Title, inner-4)),
			styles.MutedText.Render(cards.Truncate(c.Company, inner-4)),
		),
	)

	lines := []string{heading, m.renderBadges(c)}

	if details := nonEmpty(c.Location, c.Duration, deadlineText(c.Deadline)); len(details) > 0 {
		lines = append(lines, styles.Text.Render(strings.Join(details, "  ·  ")))
	}
	if len(c.Skills) > 0 {
		tags := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			tags = append(tags, styles.BadgeStyle(BadgeSkill).Render(s))
		}
		lines = append(lines, lipgloss.NewStyle().MaxWidth(inner).Render(strings.Join(tags, " ")))
	}

	footer := []string{}
	if c.Views != "" {
		footer = append(footer, c.Views+" views")
	}
	if c.Registrations != "" {
		footer = append(footer, c.Registrations+" applied")
	}
	stats := styles.FaintText.Render(strings.Join(footer, "  "))
	apply := styles.AccentText.Render("[a] Apply")
	gap := max(inner-lipgloss.Width(stats)-lipgloss.Width(apply), 1)
	lines = append(lines, stats+strings.Repeat(" ", gap)+apply)

	return box.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderBadges(c cards.Card) string {
	styles := m.theme.Styles()
	badges := []string{styles.BadgeStyle(BadgeType).Render(c.TypeLabel)}
	if c.WorkFromHome {
		badges = append(badges, styles.BadgeStyle(BadgeWFH).Render("WFH"))
	}
	if c.Stipend != "" {
		badges = append(badges, styles.BadgeStyle(BadgeStipend).Render(c.Stipend))
	}
	return strings.Join(badges, " ")
}

func deadlineText(deadline string) string {
	if deadline == "" {
		return ""
	}
	return "Deadline: " + deadline
}

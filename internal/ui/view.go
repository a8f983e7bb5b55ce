package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/internboard/internal/cards"
)

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading internships..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	body := m.renderBody()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderFilterBar(),
		body,
		m.renderStatusBar(),
	)
}

// renderHeader shows the dataset metadata.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("internboard", styles.Logo)}

	switch m.page.Status {
	case cards.StatusLoading:
		parts = append(parts, bg.Render("Loading...", styles.WarningText.Bold(true)))
	case cards.StatusError:
		parts = append(parts, bg.Render("Load failed", styles.DangerText))
	default:
		total := humanize.Comma(int64(m.page.TotalCount))
		updated := m.page.LastUpdated
		if compact {
			parts = append(parts,
				bg.Render(total, styles.Text),
				bg.Render(updated, styles.MutedText))
		} else {
			parts = append(parts,
				bg.Label("Total:", total, styles.MutedText, styles.Text),
				bg.Label("Updated:", updated, styles.MutedText, styles.Text))
		}
		if m.page.ShowResultsInfo {
			parts = append(parts,
				bg.Label("Showing:", humanize.Comma(int64(m.page.ResultsCount)), styles.MutedText, styles.AccentText))
		}
	}

	if !compact && m.source != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.source, 40), styles.FaintText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
}

// renderFilterBar shows the search input and the active selectors.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	f := m.state.Filter

	searchLabel := styles.MutedText
	if m.focus == focusSearch {
		searchLabel = styles.AccentText.Bold(true)
	}
	search := bg.Render("/", searchLabel) + bg.Space() + m.search.View()
	if m.search.Value() != "" {
		search += bg.Space() + bg.Render("[x clear]", styles.WarningText)
	}

	typeLabel := f.Type
	if typeLabel == "" {
		typeLabel = "All types"
	}

	parts := []string{
		search,
		bg.Label("t", typeLabel, styles.FaintText, styles.Text),
		bg.Label("w", f.Location.Label(), styles.FaintText, styles.Text),
		bg.Label("s", f.Sort.Label(), styles.FaintText, styles.Text),
	}
	if !f.IsDefault() {
		parts = append(parts, bg.Render("[r reset]", styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Padding(0, 1).
		Width(m.width).
		MaxHeight(1).
		Render(bg.Join(parts, "  "))
}

// renderBody shows exactly one of the loading, error, empty or card states.
func (m Model) renderBody() string {
	height := max(m.height-chromeLines, 0)
	switch m.page.Status {
	case cards.StatusLoading:
		return m.renderStatePanel(height, "Loading internships...", "", m.theme.Warning)
	case cards.StatusError:
		detail := ""
		if m.page.Err != nil {
			detail = m.page.Err.Error()
		}
		return m.renderStatePanel(height, "Failed to load internships", detail, m.theme.Danger)
	case cards.StatusEmpty:
		return m.renderStatePanel(height, "No internships match your filters", "Press r to reset filters", m.theme.Muted)
	default:
		return m.viewport.View()
	}
}

func (m Model) renderStatePanel(height int, title, detail, color string) string {
	styles := m.theme.Styles()
	lines := []string{lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(title)}
	if detail != "" {
		lines = append(lines, "", styles.MutedText.Render(truncateMiddle(detail, max(m.width-8, 10))))
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderStatusBar shows a transient message or the key hints.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var content string
	switch {
	case m.flash != "" && m.flashErr:
		content = bg.Render(m.flash, styles.DangerText)
	case m.flash != "":
		content = bg.Render(m.flash, styles.SuccessText)
	case m.focus == focusSearch:
		content = bg.Join([]string{
			bg.Label("enter", "apply", styles.WarningText, styles.MutedText),
			bg.Label("esc", "done", styles.WarningText, styles.MutedText),
			bg.Label("ctrl+u", "clear", styles.WarningText, styles.MutedText),
		}, "  ")
	default:
		content = bg.Join([]string{
			bg.Label("/", "search", styles.WarningText, styles.MutedText),
			bg.Label("j/k", "move", styles.WarningText, styles.MutedText),
			bg.Label("enter", "open", styles.WarningText, styles.MutedText),
			bg.Label("a", "apply", styles.WarningText, styles.MutedText),
			bg.Label("y", "copy", styles.WarningText, styles.MutedText),
			bg.Label("?", "help", styles.WarningText, styles.MutedText),
			bg.Label("q", "quit", styles.WarningText, styles.MutedText),
		}, "  ")
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(content)
}

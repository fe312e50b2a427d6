package tui

import (
	"strings"

	"github.com/akyairhashvil/ringtimer/internal/config"
	"github.com/akyairhashvil/ringtimer/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	theme := CurrentTheme

	var content []string
	ring := renderRing(theme, m.shown, m.timer.Clock(), m.timer.Total.Label(), m.timer.InAlert())
	content = append(content, strings.Split(ring, "\n")...)
	content = append(content, theme.Dim.Render(m.statusLine()), "")
	content = append(content, strings.Split(m.renderButtons(theme), "\n")...)

	blank := theme.Panel.Render(strings.Repeat(" ", config.PanelWidth+2*config.PanelPaddingX))
	side := theme.Panel.Render(strings.Repeat(" ", config.PanelPaddingX))
	margin := strings.Repeat(" ", config.PanelMarginLeft)

	var b strings.Builder
	for i := 0; i < config.PanelMarginTop; i++ {
		b.WriteString("\n")
	}
	for i := 0; i < config.PanelPaddingY; i++ {
		b.WriteString(margin + blank + "\n")
	}
	for _, line := range content {
		b.WriteString(margin + side + panelLine(theme, line) + side + "\n")
	}
	for i := 0; i < config.PanelPaddingY; i++ {
		b.WriteString(margin + blank + "\n")
	}
	b.WriteString("\n")
	helpLines := strings.Split(m.help.View(m.keys), "\n")
	for i, line := range helpLines {
		helpLines[i] = margin + line
	}
	b.WriteString(strings.Join(helpLines, "\n"))
	return b.String()
}

// panelLine centres line in the panel width on the panel background.
func panelLine(theme Theme, line string) string {
	w := ansi.StringWidth(line)
	left := centerOffset(w)
	right := config.PanelWidth - w - left
	if right < 0 {
		right = 0
	}
	return theme.Panel.Render(strings.Repeat(" ", left)) + line + theme.Panel.Render(strings.Repeat(" ", right))
}

func (m Model) statusLine() string {
	switch m.timer.Status() {
	case models.StatusRunning:
		return "running"
	case models.StatusFinished:
		return "time's up · r to reset"
	default:
		if m.timer.Progress > 0 && m.timer.Progress < 1 {
			return "paused"
		}
		return "tap the time to change"
	}
}

func (m Model) renderButtons(theme Theme) string {
	label := "▶ Start"
	if m.timer.Running {
		label = "‖ Pause"
	}
	toggleStyle := theme.Button
	if !m.timer.Running && !m.timer.CanStart() {
		toggleStyle = theme.Disabled
	}
	toggle := toggleStyle.Width(config.ButtonWidth).Render(label)
	reset := theme.Button.Width(config.ButtonWidth).Render("↻ Reset")
	gapLine := theme.Panel.Render(strings.Repeat(" ", config.ButtonGap))
	gap := strings.Join([]string{gapLine, gapLine, gapLine}, "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, toggle, gap, reset)
}

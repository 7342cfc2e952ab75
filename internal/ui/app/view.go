package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	subdto "courtside/internal/modules/subscription/dto"
	"courtside/internal/ui/theme"
)

func (m Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch m.screen.kind {
	case screenHome:
		content = m.renderHome()
	case screenSessionList:
		content = m.renderSessionList()
	case screenSessionDetail:
		content = m.renderSessionDetail()
	case screenSessionDelete:
		content = m.renderConfirm("Delete this session?",
			"All of its training content will be removed as well.")
	case screenContentDelete:
		content = m.renderConfirm("Delete this training content item?", "")
	case screenHelp:
		content = m.renderHelp()
	default:
		if m.screen.isForm() {
			content = m.form.View(m.width)
		}
	}

	content = lipgloss.NewStyle().Width(m.width).Height(contentH).Padding(0, 1).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	bar := theme.Title.Render("Courtside") +
		theme.Muted.Render("  │  ") +
		theme.Ok.Render("User: "+m.user.DisplayName) +
		theme.Muted.Render("  │  ") +
		theme.Warn.Render("Role: "+m.user.Role)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Padding(0, 1).Render(bar) + "\n"
}

func (m Model) renderFooter() string {
	hints := footerHints(enabledActions(m.screen.kind, m.role()))
	left := m.status
	right := theme.Muted.Render(hints)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Padding(0, 1).Render(bar)
}

func (m Model) renderHome() string {
	var b strings.Builder
	if m.isCoach() {
		b.WriteString(theme.Ok.Render("Welcome, Coach!"))
		b.WriteString("\n\n")
		b.WriteString("Manage training sessions and monitor player progress.\n")
	} else {
		b.WriteString(theme.Ok.Render("Welcome, " + m.user.DisplayName + "!"))
		b.WriteString("\n\n")
		skill := m.user.SkillLevel
		if skill == "" {
			skill = "not set"
		}
		b.WriteString("Skill Level: " + skill + "\n")
	}
	b.WriteString("\nNavigation:\n")
	b.WriteString("  [1] Home\n")
	if m.isCoach() {
		b.WriteString("  [2] Manage Sessions\n")
	} else {
		b.WriteString("  [2] My Sessions\n")
	}
	b.WriteString("  [?] Help\n")
	return b.String()
}

func (m Model) renderSessionList() string {
	title := "Manage Sessions"
	if !m.isCoach() {
		title = "My Sessions (" + m.filter.Label() + ")"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View() + " loading...")
		return b.String()
	}
	if len(m.views) == 0 {
		b.WriteString(theme.Warn.Render("No sessions found"))
		b.WriteString("\n\n")
		if m.isCoach() {
			b.WriteString("Press [c] to create your first session")
		} else {
			b.WriteString("No sessions available under this filter")
		}
		return b.String()
	}

	for i, view := range m.views {
		b.WriteString(renderSessionLine(view, i == m.selected))
		b.WriteString("\n")
	}
	return b.String()
}

func renderSessionLine(view subdto.SessionView, selected bool) string {
	date := view.Session.ScheduledDate
	if date == "" {
		date = "no date"
	}
	line := fmt.Sprintf("%s - %s %s", view.Session.Title, date, view.Session.ScheduledTime)
	if view.Session.DurationMinutes > 0 {
		line += fmt.Sprintf(" (%dmin)", view.Session.DurationMinutes)
	}
	switch {
	case view.IsCompleted():
		line += "  " + theme.Ok.Render("✓ completed")
	case view.IsSubscribed():
		line += "  " + theme.Hot.Render("● subscribed")
	}
	if selected {
		return theme.Hot.Render("> ") + lipgloss.NewStyle().Bold(true).Render(line)
	}
	return "  " + line
}

func (m Model) renderSessionDetail() string {
	s := m.detail.Session
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.Title))
	b.WriteString("\n\n")

	date := s.ScheduledDate
	if date == "" {
		date = "not scheduled"
	}
	clock := s.ScheduledTime
	if clock == "" {
		clock = "not set"
	}
	skill := s.SkillLevel
	if skill == "" {
		skill = "any"
	}
	b.WriteString("Date: " + date + "\n")
	b.WriteString("Time: " + clock + "\n")
	b.WriteString(fmt.Sprintf("Duration: %d minutes\n", s.DurationMinutes))
	b.WriteString("Skill Level: " + skill + "\n")
	if !m.isCoach() {
		b.WriteString("Status: " + m.renderSubscriptionStatus(s.ID) + "\n")
	}
	b.WriteString("\n")

	desc := s.Description
	if desc == "" {
		desc = "No description"
	}
	b.WriteString(theme.Muted.Render("Description:") + "\n" + desc + "\n\n")

	b.WriteString(theme.Title.Render("Training Content"))
	b.WriteString("\n")
	if len(m.detail.Content) == 0 {
		b.WriteString(theme.Muted.Render("  (none)"))
		b.WriteString("\n")
		return b.String()
	}
	for i, item := range m.detail.Content {
		line := fmt.Sprintf("%d. [%s] %s", item.OrderIndex, item.Type, item.Title)
		if item.DurationMinutes > 0 {
			line += fmt.Sprintf(" (%dmin)", item.DurationMinutes)
		}
		if m.isCoach() && i == m.contentSel {
			b.WriteString(theme.Hot.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSubscriptionStatus(sessionID int64) string {
	view, ok := m.viewForSession(sessionID)
	switch {
	case ok && view.IsCompleted():
		return theme.Ok.Render("Completed")
	case ok && view.IsSubscribed():
		return theme.Hot.Render("Subscribed")
	default:
		return theme.Muted.Render("Not subscribed")
	}
}

func (m Model) renderConfirm(question, detail string) string {
	var b strings.Builder
	b.WriteString(theme.Err.Render(question))
	b.WriteString("\n\n")
	if detail != "" {
		b.WriteString(detail)
		b.WriteString("\n\n")
	}
	b.WriteString("[y] Yes   [n] No   [Esc] Cancel")
	return b.String()
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"1", "go home"},
		{"2", "open session list"},
		{"?", "this screen"},
		{"q / esc", "back to home, quit from home"},
		{"↑/k ↓/j", "move selection"},
		{"enter", "open selected session"},
	}
	if m.isCoach() {
		rows = append(rows,
			[2]string{"c", "create session"},
			[2]string{"e", "edit session or content"},
			[2]string{"d", "delete session or content"},
			[2]string{"t", "add training content"},
		)
	} else {
		rows = append(rows,
			[2]string{"s", "subscribe / unsubscribe"},
			[2]string{"f", "toggle My Subscriptions / All Available"},
			[2]string{"m", "mark session complete"},
		)
	}
	rows = append(rows,
		[2]string{"tab / shift+tab", "next / previous form field"},
		[2]string{"← →", "cycle enum form field"},
	)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString("  " + theme.Hot.Render(fmt.Sprintf("%-16s", row[0])) + row[1] + "\n")
	}
	b.WriteString("\n" + theme.Muted.Render("press any key to return home"))
	return b.String()
}

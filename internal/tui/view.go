package tui

import (
	"fmt"
	"strings"
)

// View renders the todo list, filter bar, and status line.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("My Todo List"))
	b.WriteString("\n")

	b.WriteString(m.draft.View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Help.Render("Loading..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")
	b.WriteString(m.renderItems())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderFilters() string {
	labels := []string{
		fmt.Sprintf("All (%d)", len(m.todos)),
		fmt.Sprintf("Active (%d)", m.ActiveCount()),
		fmt.Sprintf("Completed (%d)", m.CompletedCount()),
	}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if Filter(i) == m.filter {
			parts[i] = m.styles.FilterOn.Render(label)
		} else {
			parts[i] = m.styles.FilterOff.Render(label)
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderItems() string {
	visible := m.VisibleTodos()
	if len(visible) == 0 {
		return m.styles.Help.Render("No todos to show")
	}

	var b strings.Builder
	for i, t := range visible {
		cursor := "  "
		if m.focus == FocusList && i == m.cursor {
			cursor = "> "
		}

		if t.ID == m.editingID {
			b.WriteString(cursor + m.editInput.View())
			b.WriteString("\n")
			continue
		}

		check := "[ ]"
		style := m.styles.Item
		if t.Completed {
			check = "[x]"
			style = m.styles.ItemDone
		}

		line := fmt.Sprintf("%s%s %s", cursor, check, style.Render(t.Text))
		if m.focus == FocusList && i == m.cursor {
			line = m.styles.ItemSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	var lines []string

	if m.errMsg != "" {
		lines = append(lines, m.styles.Error.Render(m.errMsg))
	} else if m.status != "" {
		lines = append(lines, m.styles.Status.Render(m.status))
	}

	help := "tab focus · enter add/toggle · e edit · d delete · f filter · r refresh · q quit"
	if m.CompletedCount() > 0 {
		help += " · C clear completed"
	}
	if m.editingID != "" {
		help = "enter save · esc cancel"
	}
	lines = append(lines, m.styles.Help.Render(help))

	return strings.Join(lines, "\n")
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	header   lipgloss.Style
	row      lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
	errText  lipgloss.Style
	info     lipgloss.Style
	confirm  lipgloss.Style
	help     lipgloss.Style
}

func newStyles(useColor bool) styles {
	if !useColor {
		plain := lipgloss.NewStyle()
		return styles{
			title:    plain.Bold(true),
			label:    plain,
			header:   plain.Bold(true),
			row:      plain,
			selected: plain.Reverse(true),
			status:   plain,
			errText:  plain.Bold(true),
			info:     plain,
			confirm:  plain.Bold(true),
			help:     plain.Faint(true),
		}
	}

	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		row:      lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		errText:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		info:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		confirm:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		help:     lipgloss.NewStyle().Faint(true),
	}
}

const tableRowFormat = "%-4s %-22s %-28s %6s"

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.title.Render("Student Roster"))
	b.WriteString("\n\n")

	labels := []string{"Name ", "Email", "GPA  "}
	for i, in := range m.inputs {
		b.WriteString(m.styles.label.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.label.Render("Find "))
	b.WriteString(" ")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.header.Render(fmt.Sprintf(tableRowFormat, "ID", "NAME", "EMAIL", "GPA")))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(m.styles.help.Render("  (no students)"))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		line := fmt.Sprintf(tableRowFormat, fmt.Sprintf("%d", row.ID), row.Name, row.Email, row.GPA)
		style := m.styles.row
		if i == m.cursor && m.focus == focusTable {
			style = m.styles.selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch {
	case m.confirmPrompt != "":
		b.WriteString(m.styles.confirm.Render(m.confirmPrompt + " [y/n]"))
	case m.errText != "":
		b.WriteString(m.styles.errText.Render(m.errText))
	default:
		b.WriteString(m.styles.status.Render(m.status))
	}
	b.WriteString("\n")

	if m.info != "" {
		b.WriteString(m.styles.info.Render(m.info))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.help.Render(
		"tab focus · enter select/search · ctrl+a add · ctrl+u update · ctrl+d delete · esc clear · q quit",
	))
	b.WriteString("\n")

	return b.String()
}

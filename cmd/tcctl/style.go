package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"teamcity-notifier/internal/model"
)

const inlinePerRow = 3

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	fieldNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8EAED"))
	fieldStyle     = lipgloss.NewStyle().Width(28).MarginRight(2)
	footerStyle    = lipgloss.NewStyle().Faint(true)
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBC04"))
)

// renderCard draws a card like a Discord embed: a colored left bar, the
// title, fields with inline ones grouped in rows, then the footer.
func renderCard(card model.Card) string {
	var sections []string
	sections = append(sections, titleStyle.Render(card.Title))

	var row []string
	flush := func() {
		if len(row) > 0 {
			sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	for _, f := range card.Fields {
		block := fieldNameStyle.Render(f.Name) + "\n" + f.Value
		if !f.Inline {
			flush()
			sections = append(sections, block)
			continue
		}
		row = append(row, fieldStyle.Render(block))
		if len(row) == inlinePerRow {
			flush()
		}
	}
	flush()

	footer := card.Footer
	if !card.Timestamp.IsZero() {
		footer = strings.TrimSpace(footer + " • " + card.Timestamp.Format(time.RFC1123))
	}
	if footer != "" {
		sections = append(sections, footerStyle.Render(footer))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(hexColor(card.Color))).
		PaddingLeft(1)

	return box.Render(strings.Join(sections, "\n\n"))
}

func hexColor(c int) string {
	return fmt.Sprintf("#%06X", c&0xFFFFFF)
}

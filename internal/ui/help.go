package ui

import (
	"fmt"
	"strings"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Browsing",
			items: []helpItem{
				{"→/n", "Next Pokémon"},
				{"←/p", "Previous Pokémon"},
				{"g or /", "Jump to id"},
				{"r", "Retry current fetch"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"L", "Show application log"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, section := range sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				styles.InfoText.Render(fmt.Sprintf("%-10s", item.key)),
				styles.MutedText.Render(item.desc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.FaintText.Render("press any key to close"))
	return b.String()
}

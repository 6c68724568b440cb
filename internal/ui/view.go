package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pocketdex/pocketdex/internal/pokeapi"
	"github.com/pocketdex/pocketdex/internal/state"
)

// renderHeader renders the top bar: logo, position in the window, theme name.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	logo := styles.Logo.Render("POCKETDEX")
	position := styles.MutedText.Render(
		fmt.Sprintf("#%03d of %d–%d", m.currentID, m.bounds.Min, m.bounds.Max))
	themeLabel := styles.FaintText.Render("[" + m.theme.Name + "]")

	return styles.Header.Render(logo + "  " + position + "  " + themeLabel)
}

// renderContent renders the record card, the loading line or the failure line.
func (m Model) renderContent() string {
	styles := m.theme.Styles()

	var b strings.Builder

	switch {
	case m.snapshot.Loading():
		b.WriteString("  " + m.spin.View() +
			styles.MutedText.Render(fmt.Sprintf(" fetching #%d…", m.snapshot.RequestedID)))
		b.WriteString("\n")
		if m.snapshot.HasPokemon {
			b.WriteString(m.renderCard(m.snapshot.Pokemon))
		}

	case m.snapshot.Phase == state.PhaseFailed:
		b.WriteString("  " + styles.DangerText.Render(failureMessage(m.snapshot.Err)))
		b.WriteString("\n")
		b.WriteString("  " + styles.FaintText.Render("press r to retry"))
		if m.snapshot.HasPokemon {
			b.WriteString("\n")
			b.WriteString(m.renderCard(m.snapshot.Pokemon))
		}

	case m.snapshot.HasPokemon:
		b.WriteString(m.renderCard(m.snapshot.Pokemon))

	default:
		b.WriteString("  " + styles.MutedText.Render("nothing fetched yet"))
	}

	if m.jumping {
		b.WriteString("\n\n")
		b.WriteString("  " + styles.AccentText.Render("jump to id:") + " " + m.jumpInput.View())
		if m.jumpErr != "" {
			b.WriteString("\n  " + styles.WarningText.Render(m.jumpErr))
		}
	}

	return b.String()
}

// renderCard renders one Pokémon record.
func (m Model) renderCard(p pokeapi.Pokemon) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Render(displayName(p)))
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("  #%03d", p.ID)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("height  ") + styles.Text.Render(fmt.Sprintf("%d", p.Height)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("weight  ") + styles.Text.Render(fmt.Sprintf("%d", p.Weight)))
	b.WriteString("\n")
	if url, ok := p.SpriteURL.Get(); ok {
		b.WriteString(styles.MutedText.Render("sprite  ") + styles.InfoText.Render(url))
	} else {
		b.WriteString(styles.MutedText.Render("sprite  ") + styles.FaintText.Render("none"))
	}

	return styles.Card.Render(b.String())
}

// renderFooter renders the key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Render("←/→ browse · g jump · r retry · T theme · L logs · ? help · q quit")
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Logo.Render("Log"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(m.logPath))
	b.WriteString("\n\n")

	if len(m.logLines) == 0 {
		b.WriteString(styles.MutedText.Render("log is empty"))
	} else {
		lines := m.logLines
		if m.height > 4 && len(lines) > m.height-4 {
			lines = lines[len(lines)-(m.height-4):]
		}
		b.WriteString(styles.Text.Render(strings.Join(lines, "\n")))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("press any key to close"))
	return b.String()
}

// displayName returns the record's name, with a placeholder for malformed
// data that carries an empty one.
func displayName(p pokeapi.Pokemon) string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return "(unnamed)"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// failureMessage maps a fetch failure to its user-facing text.
func failureMessage(err error) string {
	var notFound *pokeapi.NotFoundError
	var unexpected *pokeapi.UnexpectedStatusError
	var transport *pokeapi.TransportError

	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("No Pokémon with id=%d", notFound.ID)
	case errors.Is(err, pokeapi.ErrRequestTimedOut):
		return "Fetch failed: the request timed out"
	case errors.Is(err, pokeapi.ErrMalformedPayload):
		return "Fetch failed: " + err.Error()
	case errors.As(err, &unexpected):
		return fmt.Sprintf("Fetch failed: the service answered with status %d", unexpected.Code)
	case errors.As(err, &transport):
		return "Fetch failed: " + transport.Err.Error()
	case err == nil:
		return ""
	default:
		return "Fetch failed: " + err.Error()
	}
}

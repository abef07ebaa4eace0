package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle         lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalFooterStyle         lipgloss.Style
	ModalStyle               lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonActiveStyle   lipgloss.Style
	ModalButtonDisabledStyle lipgloss.Style
	ModalBodyStyle           lipgloss.Style
	ModalKeyStyle            lipgloss.Style
}

// KeyHelp is one row of the key reference.
type KeyHelp struct {
	Keys string
	Desc string
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	header := styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))
	b.WriteString(header)
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ModalFooterStyle.Render(footer))
	}

	return styles.ModalStyle.Render(b.String())
}

// RenderKeyHelp lays out key bindings in two aligned columns.
func RenderKeyHelp(styles ModalStyles, rows []KeyHelp) string {
	keyW := 0
	for _, r := range rows {
		keyW = max(keyW, lipgloss.Width(r.Keys))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		key := styles.ModalKeyStyle.Width(keyW + 2).Render(r.Keys)
		lines = append(lines, key+styles.ModalBodyStyle.Render(r.Desc))
	}
	return strings.Join(lines, "\n")
}

// Button is a labelled action under the calendars.
type Button struct {
	Label    string
	Primary  bool
	Disabled bool
}

// RenderButtons renders a row of buttons separated by the body style.
func RenderButtons(styles ModalStyles, buttons ...Button) string {
	parts := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		style := styles.ModalButtonStyle
		switch {
		case btn.Disabled:
			style = styles.ModalButtonDisabledStyle
		case btn.Primary:
			style = styles.ModalButtonActiveStyle
		}
		parts = append(parts, style.Render(btn.Label))
	}
	sep := styles.ModalBodyStyle.Render(" ")
	return strings.Join(parts, sep)
}

package script

import "github.com/charmbracelet/lipgloss"

// Styler renders one text line for its style tag
type Styler func(style, text string) string

var lineStyles = map[string]lipgloss.Style{
	"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("#00fff0")),
	"success": lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff41")),
	"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0040")).Bold(true),
	"system":  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
}

// ColorStyler colours lines with the terminal palette
func ColorStyler(style, text string) string {
	if st, ok := lineStyles[style]; ok {
		return st.Render(text)
	}
	return text
}

// PlainStyler returns text unchanged
func PlainStyler(_, text string) string {
	return text
}

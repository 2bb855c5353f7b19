package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#2563EB")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorBg        = lipgloss.Color("#1F2937")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2)

	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	// List styles
	ListTitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			PaddingLeft(2)

	ListDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingLeft(2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				PaddingLeft(2)

	SelectedDescStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				PaddingLeft(2)

	// Detail styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(14)

	GradeStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorFg).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	// Help styles
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)
)

// ApplyAccent overrides the primary interface color. The value may be
// an ANSI color number ("205") or a hex value ("#2563EB").
func ApplyAccent(color string) {
	if color == "" {
		return
	}
	colorPrimary = lipgloss.Color(color)
	TitleStyle = TitleStyle.Foreground(colorPrimary)
	SelectedItemStyle = SelectedItemStyle.Foreground(colorPrimary)
	SpinnerStyle = SpinnerStyle.Foreground(colorPrimary)
	HelpKeyStyle = HelpKeyStyle.Foreground(colorPrimary)
	ActiveTabStyle = ActiveTabStyle.Foreground(colorPrimary)
	FocusedBoxStyle = FocusedBoxStyle.BorderForeground(colorPrimary)
}

// RenderTitle renders a title
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderError renders an error message
func RenderError(err error) string {
	return ErrorMessageStyle.Render("Fehler: " + err.Error())
}

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderHelp renders help text
func RenderHelp(text string) string {
	return HelpStyle.Render(text)
}

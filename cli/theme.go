package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/semcommit/conventional"
	"github.com/muesli/termenv"
)

// Kanagawa palette, dark and light variants.
var (
	colorGreen  = lipgloss.AdaptiveColor{Dark: "#98BB6C", Light: "#4E7C5A"}
	colorYellow = lipgloss.AdaptiveColor{Dark: "#FF9E3B", Light: "#A68A64"}
	colorRed    = lipgloss.AdaptiveColor{Dark: "#FF5D62", Light: "#C34043"}
	colorOrange = lipgloss.AdaptiveColor{Dark: "#FFA066", Light: "#CC6B4E"}
	colorCyan   = lipgloss.AdaptiveColor{Dark: "#7E9CD8", Light: "#5B8BBE"}
	colorBlue   = lipgloss.AdaptiveColor{Dark: "#7FB4CA", Light: "#4F7CAC"}
	colorViolet = lipgloss.AdaptiveColor{Dark: "#957FB8", Light: "#674D7A"}
	colorMuted  = lipgloss.AdaptiveColor{Dark: "#727169", Light: "#6C7086"}
	colorBorder = lipgloss.AdaptiveColor{Dark: "#363646", Light: "#B5BDC5"}
)

// Theme holds the styles shared by all commands.
type Theme struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Command lipgloss.Style
	Flag    lipgloss.Style
	Muted   lipgloss.Style
	Italic  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Border  lipgloss.Style
	Header  lipgloss.Style
}

// DefaultTheme is the theme used for help, tables and errors.
var DefaultTheme = &Theme{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorOrange),
	Section: lipgloss.NewStyle().Italic(true).Foreground(colorOrange),
	Command: lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
	Flag:    lipgloss.NewStyle().Foreground(colorViolet),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Italic:  lipgloss.NewStyle().Italic(true),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	Success: lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
	Border:  lipgloss.NewStyle().Foreground(colorBorder),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1),
}

// Category returns the style used to render a commit category.
func (t *Theme) Category(c conventional.Category) lipgloss.Style {
	switch c {
	case conventional.Chore:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case conventional.Docs:
		return lipgloss.NewStyle().Foreground(colorCyan)
	case conventional.Test:
		return lipgloss.NewStyle().Foreground(colorGreen)
	default:
		return t.Muted
	}
}

// InitColor sets the lipgloss color profile from the environment.
// CLICOLOR_FORCE=1 or COLORTERM=truecolor forces true color output, NO_COLOR
// disables color entirely.
func InitColor() {
	switch {
	case os.Getenv("NO_COLOR") != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/terraincognita07/cycleadvisor/internal/services"
)

var (
	normalColor       = lipgloss.Color("42")  // Green
	cautionColor      = lipgloss.Color("208") // Orange
	consultationColor = lipgloss.Color("196") // Red
	mutedColor        = lipgloss.Color("245")
	headingColor      = lipgloss.Color("63")
)

var headingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(headingColor)

var mutedStyle = lipgloss.NewStyle().
	Foreground(mutedColor)

func tierColor(tier services.Tier) lipgloss.Color {
	switch tier {
	case services.TierConsultation:
		return consultationColor
	case services.TierCaution:
		return cautionColor
	default:
		return normalColor
	}
}

func tierBoxStyle(tier services.Tier) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tierColor(tier)).
		Padding(0, 1)
}

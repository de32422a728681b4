package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gapdash/internal/dashboard"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).MarginBottom(1)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	inactiveTab  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("255")).Padding(0, 1).MarginLeft(1)
	activeSect   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1).MarginLeft(1)
)

// tabStyle colours the active tab blue for bagging and red for no bagging.
func tabStyle(v dashboard.View, active bool) lipgloss.Style {
	if !active {
		return inactiveTab
	}
	bg := lipgloss.Color("33")
	if v == dashboard.ViewNoBagging {
		bg = lipgloss.Color("160")
	}
	return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1)
}

// renderTierBadge returns a Lipgloss-styled badge for a 111-pattern percentage.
func renderTierBadge(text string, tier dashboard.Tier) string {
	var bg lipgloss.Color
	switch tier {
	case dashboard.TierHigh:
		bg = lipgloss.Color("34")
	case dashboard.TierGood:
		bg = lipgloss.Color("220")
	case dashboard.TierFair:
		bg = lipgloss.Color("208")
	default:
		bg = lipgloss.Color("196")
	}
	return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("0")).Padding(0, 1).Render(text)
}

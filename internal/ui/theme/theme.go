// Package theme holds the lipgloss palette and styles for terminal output.
package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dailylearn/internal/badges"
)

// Palette, bright but readable on dark and light terminals.
var (
	Primary   = lipgloss.Color("#8B5CF6") // purple
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#EAB308")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	Border    = lipgloss.Color("#334155")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary).
		MarginTop(1)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(22)

	Value = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warn = lipgloss.NewStyle().
		Foreground(Warning)
)

// Rarity returns the style for a badge rarity.
func Rarity(r badges.Rarity) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch r {
	case badges.RarityLegendary:
		return s.Foreground(Accent)
	case badges.RarityEpic:
		return s.Foreground(Primary)
	case badges.RarityRare:
		return s.Foreground(Secondary)
	default:
		return s.Foreground(Text)
	}
}

// Accuracy colors a percentage: green from 80, yellow from 50, red below.
func Accuracy(pct int) lipgloss.Style {
	switch {
	case pct >= 80:
		return lipgloss.NewStyle().Foreground(Success)
	case pct >= 50:
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return lipgloss.NewStyle().Foreground(Error)
	}
}

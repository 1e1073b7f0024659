package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"

	"github.com/piwi3910/tuxedo/internal/colors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(tokenColor(colors.Resolve(colors.BluePrimary, colors.Light).NRGBA()))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(22)

	mutedStyle = lipgloss.NewStyle().
			Foreground(tokenColor(colors.Grey4.Components().NRGBA()))

	passStyle = lipgloss.NewStyle().
			Foreground(tokenColor(colors.Green2.Components().NRGBA())).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(tokenColor(colors.Red2.Components().NRGBA())).
			Bold(true)
)

// tokenColor drops alpha; terminals have no translucency.
func tokenColor(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// swatch renders a block of c, blended over bg for translucent tokens.
func swatch(c, bg color.NRGBA) string {
	return lipgloss.NewStyle().
		Background(tokenColor(colors.Over(c, bg))).
		Render("      ")
}

// verdict labels a contrast ratio against the WCAG thresholds.
func verdict(ratio float64) string {
	switch {
	case ratio >= colors.ContrastAAA:
		return passStyle.Render("AAA")
	case ratio >= colors.ContrastAA:
		return passStyle.Render("AA")
	case ratio >= colors.ContrastAALarge:
		return passStyle.Render("AA large")
	default:
		return failStyle.Render("fail")
	}
}

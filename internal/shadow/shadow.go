// Package shadow defines the Tuxedo elevation presets.
//
// Presets are written in blur (diameter) terms, the unit design tools show.
// Renderers consume a radius, which is always exactly half the blur.
package shadow

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"

	"github.com/piwi3910/tuxedo/internal/colors"
)

// Preset names a shadow family.
type Preset int

const (
	PresetLow Preset = iota
	PresetMedium
	PresetHigh
	PresetExtraHigh
	PresetNeumorphicTop
	PresetNeumorphicBottom
)

var presetNames = map[Preset]string{
	PresetLow:              "low",
	PresetMedium:           "medium",
	PresetHigh:             "high",
	PresetExtraHigh:        "extraHigh",
	PresetNeumorphicTop:    "neumorphicTop",
	PresetNeumorphicBottom: "neumorphicBottom",
}

func (p Preset) String() string {
	if n, ok := presetNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}

// Style is a preset plus, for the neumorphic presets, whether the
// component is pressed.
type Style struct {
	Preset  Preset
	Pressed bool
}

var (
	Low       = Style{Preset: PresetLow}
	Medium    = Style{Preset: PresetMedium}
	High      = Style{Preset: PresetHigh}
	ExtraHigh = Style{Preset: PresetExtraHigh}
)

// NeumorphicTop is the light-edge half of a neumorphic pair.
func NeumorphicTop(pressed bool) Style {
	return Style{Preset: PresetNeumorphicTop, Pressed: pressed}
}

// NeumorphicBottom is the dark-edge half of a neumorphic pair.
func NeumorphicBottom(pressed bool) Style {
	return Style{Preset: PresetNeumorphicBottom, Pressed: pressed}
}

// Elevations are the four standard presets, lowest first.
func Elevations() []Style {
	return []Style{Low, Medium, High, ExtraHigh}
}

// All lists every style, including both states of the neumorphic presets.
func All() []Style {
	return append(Elevations(),
		NeumorphicTop(false), NeumorphicTop(true),
		NeumorphicBottom(false), NeumorphicBottom(true),
	)
}

func (s Style) String() string {
	switch s.Preset {
	case PresetNeumorphicTop, PresetNeumorphicBottom:
		if s.Pressed {
			return s.Preset.String() + "(pressed)"
		}
		return s.Preset.String()
	default:
		return s.Preset.String()
	}
}

// ColorRef is a semantic color, optionally with its alpha replaced.
type ColorRef struct {
	Semantic      colors.SemanticColor
	AlphaOverride colors.Alpha
	HasOverride   bool
}

// Semantic refers to s as-is.
func Semantic(s colors.SemanticColor) ColorRef {
	return ColorRef{Semantic: s}
}

// WithAlpha refers to s with its resolved alpha replaced by a.
func WithAlpha(s colors.SemanticColor, a float64) ColorRef {
	return ColorRef{Semantic: s, AlphaOverride: colors.NewAlpha(a), HasOverride: true}
}

// Components resolves the reference for an appearance.
func (r ColorRef) Components(a colors.Appearance) colors.Components {
	res := colors.Resolve(r.Semantic, a)
	if r.HasOverride {
		return res.Value.Components().Opacity(r.AlphaOverride)
	}
	return res.Components()
}

// Components are the values of a shadow in design-tool units.
type Components struct {
	XOffset float32
	YOffset float32
	Blur    float32
	Color   ColorRef
}

// Custom builds one-off shadow components. Prefer a preset.
func Custom(x, y, blur float32, c ColorRef) Components {
	return Components{XOffset: x, YOffset: y, Blur: blur, Color: c}
}

// Components is the preset table.
func (s Style) Components() Components {
	switch s.Preset {
	case PresetLow:
		return Components{XOffset: 0, YOffset: 1, Blur: 4, Color: Semantic(colors.Shadow)}
	case PresetMedium:
		return Components{XOffset: 0, YOffset: 2, Blur: 8, Color: Semantic(colors.Shadow)}
	case PresetHigh:
		return Components{XOffset: 0, YOffset: 4, Blur: 16, Color: Semantic(colors.Shadow)}
	case PresetExtraHigh:
		return Components{XOffset: 0, YOffset: 8, Blur: 32, Color: Semantic(colors.Shadow)}
	case PresetNeumorphicTop:
		if s.Pressed {
			return Components{XOffset: -4, YOffset: -4, Blur: 8, Color: WithAlpha(colors.Shadow, 0.35)}
		}
		return Components{XOffset: 8, YOffset: 8, Blur: 16, Color: WithAlpha(colors.Shadow, 0.75)}
	case PresetNeumorphicBottom:
		if s.Pressed {
			return Components{XOffset: 8, YOffset: 8, Blur: 8, Color: Semantic(colors.BackgroundPrimary)}
		}
		return Components{XOffset: -4, YOffset: -4, Blur: 16, Color: Semantic(colors.BackgroundPrimary)}
	default:
		return Components{}
	}
}

// Offset is the shadow displacement.
func (c Components) Offset() fyne.Position {
	return fyne.NewPos(c.XOffset, c.YOffset)
}

// Radius is the blur radius a renderer expects: half the blur diameter.
func (c Components) Radius() float32 { return c.Blur / 2 }

// Opacity is always 1. Transparency comes from the color's own alpha.
func (c Components) Opacity() float32 { return 1 }

// Resolved is a shadow ready for a renderer.
type Resolved struct {
	Offset  fyne.Position
	Radius  float32
	Blur    float32
	Color   color.NRGBA
	Opacity float32
}

// Resolve fixes the color for an appearance.
func (c Components) Resolve(a colors.Appearance) Resolved {
	return Resolved{
		Offset:  c.Offset(),
		Radius:  c.Radius(),
		Blur:    c.Blur,
		Color:   c.Color.Components(a).NRGBA(),
		Opacity: c.Opacity(),
	}
}

// Describe formats the components for a, e.g.
// "x: 0, y: 1, blur: 4, radius: 2, color: rgba(23, 27, 31, 0.16)".
func (c Components) Describe(a colors.Appearance) string {
	return fmt.Sprintf("x: %g, y: %g, blur: %g, radius: %g, color: %s",
		c.XOffset, c.YOffset, c.Blur, c.Radius(), c.Color.Components(a))
}

// Resolve is shorthand for s.Components().Resolve(a).
func (s Style) Resolve(a colors.Appearance) Resolved {
	return s.Components().Resolve(a)
}

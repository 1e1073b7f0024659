package colors

import (
	"fmt"
	"image/color"
)

// SemanticColor is a design role whose concrete color depends on the
// appearance it is rendered in.
type SemanticColor int

const (
	BackgroundPrimary SemanticColor = iota
	BackgroundRaised
	BackgroundRecessed

	ForegroundPrimary
	ForegroundSecondary
	ForegroundDisabled
	ForegroundTint

	BluePrimary
	BlueTint75
	BlueTint25
	BlueTint08

	GreenPrimary
	GreenTint75
	GreenTint25
	GreenTint08

	YellowPrimary
	YellowTint75
	YellowTint25
	YellowTint08

	OrangePrimary
	OrangeTint75
	OrangeTint25
	OrangeTint08

	RedPrimary
	RedTint75
	RedTint25
	RedTint08

	Shadow
	Shadow75
	Shadow35

	OverlayDark
	Overlay

	AlwaysWhite

	semanticColorCount
)

var semanticNames = map[SemanticColor]string{
	BackgroundPrimary:   "backgroundPrimary",
	BackgroundRaised:    "backgroundRaised",
	BackgroundRecessed:  "backgroundRecessed",
	ForegroundPrimary:   "foregroundPrimary",
	ForegroundSecondary: "foregroundSecondary",
	ForegroundDisabled:  "foregroundDisabled",
	ForegroundTint:      "foregroundTint",
	BluePrimary:         "bluePrimary",
	BlueTint75:          "blueTint75",
	BlueTint25:          "blueTint25",
	BlueTint08:          "blueTint08",
	GreenPrimary:        "greenPrimary",
	GreenTint75:         "greenTint75",
	GreenTint25:         "greenTint25",
	GreenTint08:         "greenTint08",
	YellowPrimary:       "yellowPrimary",
	YellowTint75:        "yellowTint75",
	YellowTint25:        "yellowTint25",
	YellowTint08:        "yellowTint08",
	OrangePrimary:       "orangePrimary",
	OrangeTint75:        "orangeTint75",
	OrangeTint25:        "orangeTint25",
	OrangeTint08:        "orangeTint08",
	RedPrimary:          "redPrimary",
	RedTint75:           "redTint75",
	RedTint25:           "redTint25",
	RedTint08:           "redTint08",
	Shadow:              "shadow",
	Shadow75:            "shadow75",
	Shadow35:            "shadow35",
	OverlayDark:         "overlayDark",
	Overlay:             "overlay",
	AlwaysWhite:         "alwaysWhite",
}

var semanticByName = func() map[string]SemanticColor {
	m := make(map[string]SemanticColor, len(semanticNames))
	for s, n := range semanticNames {
		m[n] = s
	}
	return m
}()

// Appearance is the display state a semantic color is resolved against.
type Appearance struct {
	Dark         bool
	HighContrast bool
}

// Light and Dark are the two normal-contrast appearances.
var (
	Light = Appearance{}
	Dark  = Appearance{Dark: true}
)

func (a Appearance) String() string {
	mode := "light"
	if a.Dark {
		mode = "dark"
	}
	if a.HighContrast {
		return mode + "/high-contrast"
	}
	return mode
}

// Entry is one row of a contrast table: the value color and alpha used in
// light mode and in dark mode.
type Entry struct {
	LightValue ValueColor
	LightAlpha Alpha
	DarkValue  ValueColor
	DarkAlpha  Alpha
}

func same(light, dark ValueColor) Entry {
	return Entry{LightValue: light, LightAlpha: Opaque, DarkValue: dark, DarkAlpha: Opaque}
}

func tint(light, dark ValueColor, a float64) Entry {
	return Entry{LightValue: light, LightAlpha: NewAlpha(a), DarkValue: dark, DarkAlpha: NewAlpha(a)}
}

func faded(light ValueColor, la float64, dark ValueColor, da float64) Entry {
	return Entry{LightValue: light, LightAlpha: NewAlpha(la), DarkValue: dark, DarkAlpha: NewAlpha(da)}
}

var normalContrast = map[SemanticColor]Entry{
	BackgroundPrimary:  same(White, Black3),
	BackgroundRaised:   same(White, Black4),
	BackgroundRecessed: same(Grey7, Black2),

	ForegroundPrimary:   same(Black4, Grey7),
	ForegroundSecondary: same(Grey1, Grey4),
	ForegroundDisabled:  same(Grey3, Black7),
	ForegroundTint:      same(Grey6, Black5),

	BluePrimary: same(Blue2, Blue3),
	BlueTint75:  tint(Blue2, Blue3, 0.75),
	BlueTint25:  tint(Blue2, Blue3, 0.25),
	BlueTint08:  tint(Blue2, Blue3, 0.08),

	GreenPrimary: same(Green1, Green3),
	GreenTint75:  tint(Green1, Green3, 0.75),
	GreenTint25:  tint(Green1, Green3, 0.25),
	GreenTint08:  tint(Green1, Green3, 0.08),

	YellowPrimary: same(Yellow1, Yellow3),
	YellowTint75:  tint(Yellow1, Yellow3, 0.75),
	YellowTint25:  tint(Yellow1, Yellow3, 0.25),
	YellowTint08:  tint(Yellow1, Yellow3, 0.08),

	OrangePrimary: same(Orange1, Orange1),
	OrangeTint75:  tint(Orange1, Orange1, 0.75),
	OrangeTint25:  tint(Orange1, Orange1, 0.25),
	OrangeTint08:  tint(Orange1, Orange1, 0.08),

	RedPrimary: same(Red1, Red3),
	RedTint75:  tint(Red1, Red3, 0.75),
	RedTint25:  tint(Red1, Red3, 0.25),
	RedTint08:  tint(Red1, Red3, 0.08),

	Shadow:   faded(Black1, 0.16, Black0, 0.95),
	Shadow75: faded(Black1, 0.12, Black0, 0.71),
	Shadow35: faded(Black1, 0.06, Black0, 0.33),

	OverlayDark: faded(Black4, 0.16, Black0, 0.75),
	Overlay:     faded(White, 0.9, Black3, 0.9),

	AlwaysWhite: same(White, White),
}

// Sparse: roles missing here resolve through normalContrast.
var highContrast = map[SemanticColor]Entry{
	BluePrimary: same(Blue1, Blue3),
	BlueTint75:  tint(Blue1, Blue3, 0.75),
	BlueTint25:  tint(Blue1, Blue3, 0.25),
	BlueTint08:  tint(Blue1, Blue3, 0.08),
}

// AllSemanticColors returns every role in declaration order.
func AllSemanticColors() []SemanticColor {
	all := make([]SemanticColor, 0, semanticColorCount)
	for s := SemanticColor(0); s < semanticColorCount; s++ {
		all = append(all, s)
	}
	return all
}

// ParseSemanticColor looks a role up by name, e.g. "backgroundPrimary".
func ParseSemanticColor(name string) (SemanticColor, error) {
	s, ok := semanticByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: semantic color %q", ErrUnknownColor, name)
	}
	return s, nil
}

// Name is the role identifier, e.g. "foregroundTint".
func (s SemanticColor) Name() string {
	if n, ok := semanticNames[s]; ok {
		return n
	}
	return fmt.Sprintf("SemanticColor(%d)", int(s))
}

func (s SemanticColor) String() string { return s.Name() }

// HasHighContrastOverride reports whether s has its own high-contrast entry.
func HasHighContrastOverride(s SemanticColor) bool {
	_, ok := highContrast[s]
	return ok
}

// EntryFor returns the table row used for s under the given contrast.
func EntryFor(s SemanticColor, highContrastEnabled bool) Entry {
	if highContrastEnabled {
		if e, ok := highContrast[s]; ok {
			return e
		}
	}
	return normalContrast[s]
}

// Resolution is the value color and alpha a semantic color resolves to.
type Resolution struct {
	Value ValueColor
	Alpha Alpha
}

// Resolve picks the contrast table for a, then the light or dark pair.
func Resolve(s SemanticColor, a Appearance) Resolution {
	e := EntryFor(s, a.HighContrast)
	if a.Dark {
		return Resolution{Value: e.DarkValue, Alpha: e.DarkAlpha}
	}
	return Resolution{Value: e.LightValue, Alpha: e.LightAlpha}
}

// Components returns the value color's channels with the alpha applied.
func (r Resolution) Components() Components {
	return r.Value.Components().Opacity(r.Alpha)
}

// NRGBA is the final color handed to the renderer.
func (r Resolution) NRGBA() color.NRGBA {
	return r.Components().NRGBA()
}

func (r Resolution) String() string {
	return fmt.Sprintf("%s: %s", r.Value.Name(), r.Components())
}

// Describe formats the resolved color of s, e.g. "blue2: rgb(0, 153, 229)".
func Describe(s SemanticColor, a Appearance) string {
	return Resolve(s, a).String()
}

// Color is shorthand for Resolve(s, a).NRGBA().
func Color(s SemanticColor, a Appearance) color.NRGBA {
	return Resolve(s, a).NRGBA()
}

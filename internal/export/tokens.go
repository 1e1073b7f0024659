// Package export writes the Tuxedo token tables to files designers and
// other platforms consume: a PDF swatch sheet, an Excel workbook and a
// JSON token file.
package export

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/fonts"
	"github.com/piwi3910/tuxedo/internal/shadow"
)

// Appearances are the four combinations every semantic color is exported in.
var Appearances = []colors.Appearance{
	{Dark: false, HighContrast: false},
	{Dark: true, HighContrast: false},
	{Dark: false, HighContrast: true},
	{Dark: true, HighContrast: true},
}

// ValueToken is one palette entry.
type ValueToken struct {
	Name        string `json:"name"`
	Hex         string `json:"hex"`
	Description string `json:"description"`
}

// SemanticResolution is a semantic color resolved for one appearance.
type SemanticResolution struct {
	Appearance  string  `json:"appearance"`
	Value       string  `json:"value"`
	Alpha       float64 `json:"alpha"`
	Hex         string  `json:"hex"`
	Description string  `json:"description"`
	// Swatch is the color composited over the appearance's
	// backgroundPrimary, as an opaque "#rrggbb".
	Swatch      string  `json:"swatch"`
}

// SemanticToken is one design role in every appearance.
type SemanticToken struct {
	Name         string               `json:"name"`
	HighContrast bool                 `json:"high_contrast_override"`
	Resolutions  []SemanticResolution `json:"resolutions"`
}

// FontToken is one typographic role in one family.
type FontToken struct {
	Style     string  `json:"style"`
	Family    string  `json:"family"`
	Font      string  `json:"font"`
	PointSize float32 `json:"point_size"`
	TextStyle string  `json:"text_style"`
}

// ShadowToken is one shadow style.
type ShadowToken struct {
	Name    string  `json:"name"`
	XOffset float32 `json:"x"`
	YOffset float32 `json:"y"`
	Blur    float32 `json:"blur"`
	Radius  float32 `json:"radius"`
	Color   string  `json:"color"`
	Opacity float32 `json:"opacity"`
}

// TokenSet is every token table flattened for export.
type TokenSet struct {
	Values   []ValueToken    `json:"values"`
	Semantic []SemanticToken `json:"semantic"`
	Fonts    []FontToken     `json:"fonts"`
	Shadows  []ShadowToken   `json:"shadows"`
}

// BuildTokenSet flattens the tables. Shadow colors are given for the light
// appearance; the semantic section carries the rest.
func BuildTokenSet() TokenSet {
	var set TokenSet

	for _, v := range colors.AllValueColors() {
		c := v.Components()
		set.Values = append(set.Values, ValueToken{Name: v.Name(), Hex: c.Hex(), Description: c.String()})
	}

	for _, s := range colors.AllSemanticColors() {
		tok := SemanticToken{Name: s.Name(), HighContrast: colors.HasHighContrastOverride(s)}
		for _, a := range Appearances {
			r := colors.Resolve(s, a)
			tok.Resolutions = append(tok.Resolutions, SemanticResolution{
				Appearance:  a.String(),
				Value:       r.Value.Name(),
				Alpha:       r.Alpha.Float(),
				Hex:         r.Components().Hex(),
				Description: r.Components().String(),
				Swatch:      hexOf(colors.Over(r.NRGBA(), colors.Color(colors.BackgroundPrimary, a))),
			})
		}
		set.Semantic = append(set.Semantic, tok)
	}

	for _, f := range fonts.Families() {
		for _, st := range fonts.Styles() {
			c := fonts.ComponentsFor(st, f)
			set.Fonts = append(set.Fonts, FontToken{
				Style:     st.String(),
				Family:    f.String(),
				Font:      c.Name.FileBase(),
				PointSize: c.PointSize,
				TextStyle: c.TextStyle.String(),
			})
		}
	}

	for _, sh := range shadow.All() {
		c := sh.Components()
		set.Shadows = append(set.Shadows, ShadowToken{
			Name:    sh.String(),
			XOffset: c.XOffset,
			YOffset: c.YOffset,
			Blur:    c.Blur,
			Radius:  c.Radius(),
			Color:   c.Color.Components(colors.Light).Hex(),
			Opacity: c.Opacity(),
		})
	}

	return set
}

// WriteTokensJSON writes the token set as indented JSON.
func WriteTokensJSON(w io.Writer, set TokenSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding tokens: %w", err)
	}
	return nil
}

// ExportTokensJSON writes the full token set to path.
func ExportTokensJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTokensJSON(f, BuildTokenSet()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func hexOf(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

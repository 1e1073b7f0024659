package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/shadow"
)

func TestShadowLayers_SpreadMatchesRadius(t *testing.T) {
	card := fyne.NewSize(100, 60)
	res := shadow.High.Resolve(colors.Dark)

	layers := ShadowLayers(res, card)
	require.Len(t, layers, blurSteps)

	outer := layers[0]
	assert.Equal(t, card.Width+2*res.Radius, outer.Size.Width)
	assert.Equal(t, res.Offset.X-res.Radius, outer.Pos.X)
	assert.Equal(t, res.Offset.Y-res.Radius, outer.Pos.Y)

	inner := layers[len(layers)-1]
	assert.Less(t, inner.Size.Width, outer.Size.Width)
}

func TestShadowLayers_AlphaSumsToShadowAlpha(t *testing.T) {
	res := shadow.ExtraHigh.Resolve(colors.Dark)
	total := 0
	for _, l := range ShadowLayers(res, fyne.NewSize(10, 10)) {
		total += int(l.Color.A)
	}
	assert.InDelta(t, int(res.Color.A), total, blurSteps)
}

func TestShadowLayers_NoBlur(t *testing.T) {
	res := shadow.Custom(2, 2, 0, shadow.Semantic(colors.Shadow)).Resolve(colors.Light)
	layers := ShadowLayers(res, fyne.NewSize(10, 10))
	require.Len(t, layers, 1)
	assert.Equal(t, res.Color, layers[0].Color)
}

func TestShadowCard_Renders(t *testing.T) {
	test.NewTempApp(t)

	card := NewShadowCard("medium", shadow.Medium.Components(), colors.Light)
	r := test.TempWidgetRenderer(t, card)
	r.Layout(fyne.NewSize(200, 120))

	// blur layers + surface + label
	assert.Len(t, r.Objects(), blurSteps+2)

	card.SetAppearance(colors.Dark)
	assert.Len(t, r.Objects(), blurSteps+2)
}

func TestNewSwatch(t *testing.T) {
	test.NewTempApp(t)

	obj := NewSwatch("blue2", "rgb(0, 153, 229)", color.NRGBA{B: 229, G: 153, A: 255})
	assert.GreaterOrEqual(t, obj.MinSize().Width, float32(120))
}

func TestShadowCard_LayersStayInsideBounds(t *testing.T) {
	test.NewTempApp(t)
	bounds := fyne.NewSize(200, 120)

	for _, s := range shadow.All() {
		card := NewShadowCard(s.String(), s.Components(), colors.Light)
		r := test.TempWidgetRenderer(t, card)
		r.Layout(bounds)

		for _, obj := range r.Objects() {
			pos, size := obj.Position(), obj.Size()
			assert.GreaterOrEqual(t, pos.X, float32(0), s.String())
			assert.GreaterOrEqual(t, pos.Y, float32(0), s.String())
			assert.LessOrEqual(t, pos.X+size.Width, bounds.Width, s.String())
			assert.LessOrEqual(t, pos.Y+size.Height, bounds.Height, s.String())
		}
	}
}

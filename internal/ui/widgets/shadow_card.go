package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/shadow"
)

// blurSteps is how many rectangles approximate one shadow blur.
const blurSteps = 6

// Layer is one rectangle of an approximated shadow, relative to the card's
// top-left corner.
type Layer struct {
	Pos   fyne.Position
	Size  fyne.Size
	Color color.NRGBA
}

// ShadowLayers approximates a blurred shadow under a card of the given
// size with blurSteps stacked rectangles. The outermost layer extends the
// blur radius past the offset card; the layers' alphas add up to the
// shadow color's alpha.
func ShadowLayers(s shadow.Resolved, card fyne.Size) []Layer {
	if s.Radius <= 0 {
		return []Layer{{Pos: s.Offset, Size: card, Color: s.Color}}
	}
	step := color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: uint8(float32(s.Color.A) * s.Opacity / blurSteps)}
	layers := make([]Layer, 0, blurSteps)
	for i := blurSteps; i >= 1; i-- {
		spread := s.Radius * float32(i) / blurSteps
		layers = append(layers, Layer{
			Pos:   fyne.NewPos(s.Offset.X-spread, s.Offset.Y-spread),
			Size:  fyne.NewSize(card.Width+2*spread, card.Height+2*spread),
			Color: step,
		})
	}
	return layers
}

// ShadowCard renders a surface lifted by a Tuxedo shadow.
type ShadowCard struct {
	widget.BaseWidget
	components shadow.Components
	appearance colors.Appearance
	label      string
}

// NewShadowCard creates a card showing components under appearance.
func NewShadowCard(label string, components shadow.Components, appearance colors.Appearance) *ShadowCard {
	c := &ShadowCard{components: components, appearance: appearance, label: label}
	c.ExtendBaseWidget(c)
	return c
}

// SetAppearance re-resolves the shadow and surface colors.
func (c *ShadowCard) SetAppearance(a colors.Appearance) {
	c.appearance = a
	c.Refresh()
}

func (c *ShadowCard) CreateRenderer() fyne.WidgetRenderer {
	return newShadowCardRenderer(c)
}

type shadowCardRenderer struct {
	card    *ShadowCard
	size    fyne.Size
	objects []fyne.CanvasObject
}

func newShadowCardRenderer(c *ShadowCard) *shadowCardRenderer {
	r := &shadowCardRenderer{card: c, size: fyne.NewSize(160, 96)}
	r.rebuild()
	return r
}

// margin keeps the blur inside the widget bounds whichever way the shadow
// is offset.
func (r *shadowCardRenderer) margin() float32 {
	comp := r.card.components
	return comp.Radius() + max(abs32(comp.XOffset), abs32(comp.YOffset))
}

func (r *shadowCardRenderer) rebuild() {
	r.objects = nil

	m := r.margin()
	card := fyne.NewSize(r.size.Width-2*m, r.size.Height-2*m)
	if card.Width <= 0 || card.Height <= 0 {
		return
	}
	origin := fyne.NewPos(m, m)

	for _, l := range ShadowLayers(r.card.components.Resolve(r.card.appearance), card) {
		rect := canvas.NewRectangle(l.Color)
		rect.CornerRadius = 8
		rect.Resize(l.Size)
		rect.Move(origin.Add(l.Pos))
		r.objects = append(r.objects, rect)
	}

	surface := canvas.NewRectangle(colors.Color(colors.BackgroundRaised, r.card.appearance))
	surface.CornerRadius = 8
	surface.Resize(card)
	surface.Move(origin)
	r.objects = append(r.objects, surface)

	text := canvas.NewText(r.card.label, colors.Color(colors.ForegroundPrimary, r.card.appearance))
	text.TextSize = 12
	text.Move(origin.Add(fyne.NewPos(8, 8)))
	r.objects = append(r.objects, text)
}

func (r *shadowCardRenderer) Layout(size fyne.Size) {
	if size == r.size {
		return
	}
	r.size = size
	r.rebuild()
}

func (r *shadowCardRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.card)
}

func (r *shadowCardRenderer) Destroy()                     {}
func (r *shadowCardRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *shadowCardRenderer) MinSize() fyne.Size {
	m := r.margin()
	return fyne.NewSize(120+2*m, 64+2*m)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

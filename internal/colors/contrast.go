package colors

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Minimum contrast ratios from WCAG 2.1.
const (
	ContrastAA      = 4.5
	ContrastAALarge = 3.0
	ContrastAAA     = 7.0
)

// ContrastRatio returns the WCAG contrast ratio of fg drawn over bg, in
// [1, 21]. A translucent fg is composited over bg first; bg is treated as
// opaque.
func ContrastRatio(fg, bg color.Color) float64 {
	b := opaque(bg)
	f := opaque(fg)
	if _, _, _, a := fg.RGBA(); a < 0xffff {
		f = b.BlendRgb(f, float64(a)/0xffff)
	}

	l1, l2 := luminance(f), luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// SemanticContrast measures fg over bg after resolving both for a.
func SemanticContrast(fg, bg SemanticColor, a Appearance) float64 {
	return ContrastRatio(Color(fg, a), Color(bg, a))
}

// Over composites fg onto bg and returns the opaque result; what a
// translucent token looks like on a given surface.
func Over(fg, bg color.Color) color.NRGBA {
	b := opaque(bg)
	f := opaque(fg)
	if _, _, _, a := fg.RGBA(); a < 0xffff {
		f = b.BlendRgb(f, float64(a)/0xffff)
	}
	r, g, bl := f.RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

func opaque(c color.Color) colorful.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}
	}
	return cf
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

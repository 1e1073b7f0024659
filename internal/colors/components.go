package colors

import (
	"fmt"
	"image/color"
)

// Kind is the shape of a Components value.
type Kind int

const (
	KindRGB Kind = iota
	KindRGBA
	KindW
	KindWA
)

func (k Kind) String() string {
	switch k {
	case KindRGB:
		return "rgb"
	case KindRGBA:
		return "rgba"
	case KindW:
		return "w"
	case KindWA:
		return "wa"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Components are the channel values of a color. Grayscale colors use W and
// leave R, G and B zero; opaque colors leave A zero.
//
// Two Components are equal with == exactly when they render identically:
// Opacity never produces an rgba or wa value for an alpha of 1.
type Components struct {
	Kind    Kind
	R, G, B Component
	W       Component
	A       Alpha
}

// RGB builds an opaque color from red, green and blue channels.
func RGB(r, g, b int) Components {
	return Components{Kind: KindRGB, R: NewComponent(r), G: NewComponent(g), B: NewComponent(b)}
}

// RGBA builds a color with an explicit alpha. An alpha of 1 yields RGB.
func RGBA(r, g, b int, a float64) Components {
	return RGB(r, g, b).Opacity(NewAlpha(a))
}

// W builds an opaque grayscale color.
func W(w int) Components {
	return Components{Kind: KindW, W: NewComponent(w)}
}

// WA builds a grayscale color with an explicit alpha. An alpha of 1 yields W.
func WA(w int, a float64) Components {
	return W(w).Opacity(NewAlpha(a))
}

// Opacity attaches or replaces the alpha channel. An alpha of exactly 1
// strips it instead, so c.Opacity(1) is always the opaque form.
func (c Components) Opacity(a Alpha) Components {
	switch c.Kind {
	case KindRGB, KindRGBA:
		if a == Opaque {
			return Components{Kind: KindRGB, R: c.R, G: c.G, B: c.B}
		}
		return Components{Kind: KindRGBA, R: c.R, G: c.G, B: c.B, A: a}
	case KindW, KindWA:
		if a == Opaque {
			return Components{Kind: KindW, W: c.W}
		}
		return Components{Kind: KindWA, W: c.W, A: a}
	default:
		return c
	}
}

// Alpha returns the effective alpha, Opaque for rgb and w colors.
func (c Components) Alpha() Alpha {
	switch c.Kind {
	case KindRGBA, KindWA:
		return c.A
	default:
		return Opaque
	}
}

// String formats the components the way the design tools show them,
// e.g. "rgb(14, 110, 180)" or "wa(0, 0.16)".
func (c Components) String() string {
	switch c.Kind {
	case KindRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case KindRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, c.A.Float())
	case KindW:
		return fmt.Sprintf("w(%d)", c.W)
	case KindWA:
		return fmt.Sprintf("wa(%d, %.2f)", c.W, c.A.Float())
	default:
		return c.Kind.String()
	}
}

// NRGBA converts to the non-premultiplied color Fyne and image/draw expect.
func (c Components) NRGBA() color.NRGBA {
	switch c.Kind {
	case KindRGB:
		return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
	case KindRGBA:
		return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: c.A.Uint8()}
	case KindW:
		return color.NRGBA{R: uint8(c.W), G: uint8(c.W), B: uint8(c.W), A: 0xff}
	case KindWA:
		return color.NRGBA{R: uint8(c.W), G: uint8(c.W), B: uint8(c.W), A: c.A.Uint8()}
	default:
		return color.NRGBA{}
	}
}

// Hex returns "#rrggbb", or "#rrggbbaa" when the color is translucent.
func (c Components) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

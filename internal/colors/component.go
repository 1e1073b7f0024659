// Package colors defines the Tuxedo palette: value colors with fixed
// channel values, and semantic colors that resolve to a value color and an
// alpha depending on the current appearance.
package colors

import "github.com/piwi3910/tuxedo/internal/numeric"

// Component is a single 0-255 color channel.
type Component uint8

// NewComponent clamps v into [0, 255].
func NewComponent(v int) Component {
	return Component(numeric.Limit(v, 0, 255))
}

// Int returns the channel as an integer in [0, 255].
func (c Component) Int() int { return int(c) }

// Float returns the channel normalized to [0, 1].
func (c Component) Float() float64 { return float64(c) / 255.0 }

// Alpha is an opacity in [0, 1].
type Alpha float64

// Opaque is the alpha every color carries unless a table entry says otherwise.
const Opaque Alpha = 1.0

// NewAlpha clamps v into [0, 1].
func NewAlpha(v float64) Alpha {
	return Alpha(numeric.Limit(v, 0.0, 1.0))
}

// Float returns the alpha as a float64.
func (a Alpha) Float() float64 { return float64(a) }

// Uint8 scales the alpha to a 0-255 channel, rounding to nearest.
func (a Alpha) Uint8() uint8 {
	return uint8(float64(a)*255.0 + 0.5)
}

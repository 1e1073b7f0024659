package fonts

import (
	"fmt"
	"strings"
)

// Metrics scales a design point size for a text style, the way the
// platform scales fonts for the user's preferred text size.
type Metrics interface {
	Scale(style TextStyle, size float32) float32
}

// FixedMetrics never scales.
type FixedMetrics struct{}

func (FixedMetrics) Scale(_ TextStyle, size float32) float32 { return size }

// ContentSize is the user's preferred text size category.
type ContentSize int

const (
	ExtraSmall ContentSize = iota
	Small
	Medium
	Large
	ExtraLarge
	ExtraExtraLarge
	ExtraExtraExtraLarge
	AccessibilityMedium
	AccessibilityLarge
	AccessibilityExtraLarge
	AccessibilityExtraExtraLarge
	AccessibilityExtraExtraExtraLarge
)

// DefaultContentSize renders every style at its design point size.
const DefaultContentSize = Large

type contentSizeEntry struct {
	name       string
	multiplier float32
}

// Multipliers follow the platform body sizes (14..53pt around a 17pt
// default) divided by the default.
var contentSizes = map[ContentSize]contentSizeEntry{
	ExtraSmall:                        {"xSmall", 14.0 / 17.0},
	Small:                             {"small", 15.0 / 17.0},
	Medium:                            {"medium", 16.0 / 17.0},
	Large:                             {"large", 1},
	ExtraLarge:                        {"xLarge", 19.0 / 17.0},
	ExtraExtraLarge:                   {"xxLarge", 21.0 / 17.0},
	ExtraExtraExtraLarge:              {"xxxLarge", 23.0 / 17.0},
	AccessibilityMedium:               {"accessibilityMedium", 28.0 / 17.0},
	AccessibilityLarge:                {"accessibilityLarge", 33.0 / 17.0},
	AccessibilityExtraLarge:           {"accessibilityXLarge", 40.0 / 17.0},
	AccessibilityExtraExtraLarge:      {"accessibilityXXLarge", 47.0 / 17.0},
	AccessibilityExtraExtraExtraLarge: {"accessibilityXXXLarge", 53.0 / 17.0},
}

func (c ContentSize) String() string {
	if e, ok := contentSizes[c]; ok {
		return e.name
	}
	return fmt.Sprintf("ContentSize(%d)", int(c))
}

// Accessibility reports whether c is one of the accessibility sizes.
func (c ContentSize) Accessibility() bool { return c >= AccessibilityMedium }

// ContentSizes lists every category from smallest to largest.
func ContentSizes() []ContentSize {
	all := make([]ContentSize, 0, len(contentSizes))
	for c := ExtraSmall; c <= AccessibilityExtraExtraExtraLarge; c++ {
		all = append(all, c)
	}
	return all
}

// ParseContentSize accepts the names String returns, case-insensitively.
func ParseContentSize(s string) (ContentSize, error) {
	for c, e := range contentSizes {
		if strings.EqualFold(e.name, strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown content size %q", s)
}

// DynamicType scales by a content size category. Title styles stop
// growing at xxxLarge so headings stay on screen at accessibility sizes.
type DynamicType struct {
	Size ContentSize
}

func (d DynamicType) Scale(style TextStyle, size float32) float32 {
	c := d.Size
	if _, ok := contentSizes[c]; !ok {
		c = DefaultContentSize
	}
	if (style == Title2 || style == Title3) && c.Accessibility() {
		c = ExtraExtraExtraLarge
	}
	return size * contentSizes[c].multiplier
}

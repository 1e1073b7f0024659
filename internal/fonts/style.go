package fonts

import "fmt"

// TextStyle is the Dynamic Type category a style scales with.
type TextStyle int

const (
	Title2 TextStyle = iota
	Title3
	Headline
	Subheadline
	Body
	Caption1
	Caption2
)

var textStyleNames = map[TextStyle]string{
	Title2:      "title2",
	Title3:      "title3",
	Headline:    "headline",
	Subheadline: "subheadline",
	Body:        "body",
	Caption1:    "caption1",
	Caption2:    "caption2",
}

func (t TextStyle) String() string {
	if n, ok := textStyleNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TextStyle(%d)", int(t))
}

// Style is a typographic role.
type Style int

const (
	H2 Style = iota
	H3
	H4
	H5
	H5Light
	H5Bold
	BodyStyle
	BodyBold
	Caption
	CaptionBold
	CaptionExtraBold
	Tiny

	styleCount
)

type styleEntry struct {
	name       string
	lexend     Name
	montserrat Name
	pointSize  float32
	textStyle  TextStyle
}

var styleTable = map[Style]styleEntry{
	H2:               {"h2", LexendBold, MontserratExtraBold, 36, Title2},
	H3:               {"h3", LexendBold, MontserratExtraBold, 26, Title3},
	H4:               {"h4", LexendBold, MontserratExtraBold, 20, Headline},
	H5:               {"h5", LexendMedium, MontserratSemiBold, 16, Subheadline},
	H5Light:          {"h5Light", LexendExtraLight, MontserratRegular, 16, Subheadline},
	H5Bold:           {"h5Bold", LexendBold, MontserratExtraBold, 16, Subheadline},
	BodyStyle:        {"body", LexendThin, MontserratRegular, 14, Body},
	BodyBold:         {"bodyBold", LexendMedium, MontserratSemiBold, 14, Body},
	Caption:          {"caption", LexendThin, MontserratRegular, 12, Caption1},
	CaptionBold:      {"captionBold", LexendMedium, MontserratSemiBold, 12, Caption1},
	CaptionExtraBold: {"captionExtraBold", LexendBold, MontserratExtraBold, 12, Caption1},
	Tiny:             {"tiny", LexendMedium, MontserratSemiBold, 10, Caption2},
}

// Styles lists every style in declaration order.
func Styles() []Style {
	all := make([]Style, 0, styleCount)
	for s := Style(0); s < styleCount; s++ {
		all = append(all, s)
	}
	return all
}

func (s Style) String() string {
	if e, ok := styleTable[s]; ok {
		return e.name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// Components is everything needed to build a font: the file, the design
// point size and the category used for scaling. Apps with one-off styles
// can build their own and pass them to Registry.FontFor.
type Components struct {
	Name      Name
	PointSize float32
	TextStyle TextStyle
}

// ComponentsFor looks up style in family. Total over Styles() x Families().
func ComponentsFor(style Style, family Family) Components {
	e := styleTable[style]
	name := e.montserrat
	if family == Lexend {
		name = e.lexend
	}
	return Components{Name: name, PointSize: e.pointSize, TextStyle: e.textStyle}
}

// Components is shorthand for ComponentsFor(s, family).
func (s Style) Components(family Family) Components {
	return ComponentsFor(s, family)
}

// Describe formats the style for family, e.g. "Montserrat-ExtraBold (36pt)".
func (s Style) Describe(family Family) string {
	c := ComponentsFor(s, family)
	return fmt.Sprintf("%s (%gpt)", c.Name.FileBase(), c.PointSize)
}

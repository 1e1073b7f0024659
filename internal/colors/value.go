package colors

import (
	"errors"
	"fmt"
)

// ErrUnknownColor is returned when a color name is not in the palette.
var ErrUnknownColor = errors.New("unknown color")

// ValueColor is a fixed, appearance-independent palette entry.
type ValueColor int

const (
	Blue1 ValueColor = iota
	Blue2
	Blue3
	Blue4
	Blue5
	Blue6
	Blue7
	Blue8

	Green1
	Green2
	Green3
	Green4
	Green5
	Green6
	Green7
	Green8

	Yellow1
	Yellow2
	Yellow3
	Yellow4
	Yellow5
	Yellow6
	Yellow7
	Yellow8

	Orange1
	Orange2
	Orange3
	Orange4
	Orange5
	Orange6
	Orange7
	Orange8

	Red1
	Red2
	Red3
	Red4
	Red5
	Red6
	Red7
	Red8

	Grey1
	Grey2
	Grey3
	Grey4
	Grey5
	Grey6
	Grey7
	Grey8

	Black0
	Black1
	Black2
	Black3
	Black4
	Black5
	Black6
	Black7
	Black8

	White
	Black

	valueColorCount
)

type valueEntry struct {
	name       string
	components Components
}

var valueTable = map[ValueColor]valueEntry{
	Blue1: {"blue1", RGB(14, 110, 180)},
	Blue2: {"blue2", RGB(0, 153, 229)},
	Blue3: {"blue3", RGB(73, 179, 230)},
	Blue4: {"blue4", RGB(130, 197, 236)},
	Blue5: {"blue5", RGB(175, 216, 242)},
	Blue6: {"blue6", RGB(215, 235, 248)},
	Blue7: {"blue7", RGB(234, 244, 251)},
	Blue8: {"blue8", RGB(239, 248, 255)},

	Green1: {"green1", RGB(72, 168, 42)},
	Green2: {"green2", RGB(106, 191, 79)},
	Green3: {"green3", RGB(145, 211, 123)},
	Green4: {"green4", RGB(178, 225, 161)},
	Green5: {"green5", RGB(201, 234, 188)},
	Green6: {"green6", RGB(215, 240, 204)},
	Green7: {"green7", RGB(222, 242, 212)},
	Green8: {"green8", RGB(227, 247, 217)},

	Yellow1: {"yellow1", RGB(255, 213, 0)},
	Yellow2: {"yellow2", RGB(254, 217, 33)},
	Yellow3: {"yellow3", RGB(254, 227, 96)},
	Yellow4: {"yellow4", RGB(253, 235, 146)},
	Yellow5: {"yellow5", RGB(253, 240, 177)},
	Yellow6: {"yellow6", RGB(253, 243, 196)},
	Yellow7: {"yellow7", RGB(252, 245, 205)},
	Yellow8: {"yellow8", RGB(254, 248, 217)},

	Orange1: {"orange1", RGB(245, 111, 16)},
	Orange2: {"orange2", RGB(248, 141, 61)},
	Orange3: {"orange3", RGB(251, 171, 109)},
	Orange4: {"orange4", RGB(253, 194, 147)},
	Orange5: {"orange5", RGB(254, 208, 172)},
	Orange6: {"orange6", RGB(255, 217, 186)},
	Orange7: {"orange7", RGB(255, 221, 194)},
	Orange8: {"orange8", RGB(255, 228, 206)},

	Red1: {"red1", RGB(214, 14, 0)},
	Red2: {"red2", RGB(227, 43, 30)},
	Red3: {"red3", RGB(238, 98, 88)},
	Red4: {"red4", RGB(246, 144, 136)},
	Red5: {"red5", RGB(251, 175, 169)},
	Red6: {"red6", RGB(254, 193, 189)},
	Red7: {"red7", RGB(255, 203, 199)},
	Red8: {"red8", RGB(255, 213, 209)},

	Grey1: {"grey1", RGB(91, 102, 112)},
	Grey2: {"grey2", RGB(151, 163, 174)},
	Grey3: {"grey3", RGB(171, 181, 189)},
	Grey4: {"grey4", RGB(191, 199, 205)},
	Grey5: {"grey5", RGB(212, 217, 221)},
	Grey6: {"grey6", RGB(233, 235, 237)},
	Grey7: {"grey7", RGB(243, 244, 245)},
	Grey8: {"grey8", RGB(245, 246, 250)},

	Black0: {"black0", RGB(11, 13, 15)},
	Black1: {"black1", RGB(23, 27, 31)},
	Black2: {"black2", RGB(25, 29, 34)},
	Black3: {"black3", RGB(30, 35, 40)},
	Black4: {"black4", RGB(38, 44, 51)},
	Black5: {"black5", RGB(50, 59, 68)},
	Black6: {"black6", RGB(66, 77, 89)},
	Black7: {"black7", RGB(81, 95, 110)},
	Black8: {"black8", RGB(93, 106, 121)},

	White: {"white", W(255)},
	Black: {"black", W(0)},
}

var valueByName = func() map[string]ValueColor {
	m := make(map[string]ValueColor, len(valueTable))
	for v, e := range valueTable {
		m[e.name] = v
	}
	return m
}()

// AllValueColors returns every palette entry in declaration order.
func AllValueColors() []ValueColor {
	all := make([]ValueColor, 0, valueColorCount)
	for v := ValueColor(0); v < valueColorCount; v++ {
		all = append(all, v)
	}
	return all
}

// ParseValueColor looks a palette entry up by name, e.g. "blue2".
func ParseValueColor(name string) (ValueColor, error) {
	v, ok := valueByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: value color %q", ErrUnknownColor, name)
	}
	return v, nil
}

// Name is the palette identifier, e.g. "grey7".
func (v ValueColor) Name() string {
	if e, ok := valueTable[v]; ok {
		return e.name
	}
	return fmt.Sprintf("ValueColor(%d)", int(v))
}

func (v ValueColor) String() string { return v.Name() }

// Components returns the opaque channel values of v.
func (v ValueColor) Components() Components {
	return valueTable[v].components
}

// Description formats the channel values, e.g. "rgb(0, 153, 229)".
func (v ValueColor) Description() string {
	return v.Components().String()
}

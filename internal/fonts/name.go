// Package fonts maps Tuxedo typographic roles to bundled font files, point
// sizes and Dynamic Type categories, and loads the bundled files once per
// process.
package fonts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFamily is returned by ParseFamily for an unrecognized name.
var ErrUnknownFamily = errors.New("unknown font family")

// Family is a typeface the design system ships.
type Family int

const (
	Lexend Family = iota
	Montserrat
)

// DefaultFamily is used when a caller or config does not choose one.
const DefaultFamily = Montserrat

func (f Family) String() string {
	switch f {
	case Lexend:
		return "lexend"
	case Montserrat:
		return "montserrat"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Families lists every family.
func Families() []Family { return []Family{Lexend, Montserrat} }

// ParseFamily accepts "lexend" or "montserrat", case-insensitively.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lexend":
		return Lexend, nil
	case "montserrat":
		return Montserrat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
	}
}

// Weight orders font names from thinnest to heaviest.
type Weight int

const (
	WeightThin Weight = iota
	WeightExtraLight
	WeightRegular
	WeightMedium
	WeightSemiBold
	WeightBold
	WeightExtraBold
)

// Name is a bundled font file.
type Name int

const (
	LexendThin Name = iota
	LexendExtraLight
	LexendMedium
	LexendBold

	MontserratRegular
	MontserratSemiBold
	MontserratExtraBold

	nameCount
)

type nameEntry struct {
	file     string
	family   Family
	weight   Weight
	register bool
}

var nameTable = map[Name]nameEntry{
	LexendThin:       {"Lexend-Thin", Lexend, WeightThin, true},
	LexendExtraLight: {"Lexend-ExtraLight", Lexend, WeightExtraLight, true},
	LexendMedium:     {"Lexend-Medium", Lexend, WeightMedium, true},
	LexendBold:       {"Lexend-Bold", Lexend, WeightBold, true},

	MontserratRegular:   {"Montserrat-Regular", Montserrat, WeightRegular, true},
	MontserratSemiBold:  {"Montserrat-SemiBold", Montserrat, WeightSemiBold, true},
	MontserratExtraBold: {"Montserrat-ExtraBold", Montserrat, WeightExtraBold, true},
}

// Names lists every bundled font in declaration order.
func Names() []Name {
	all := make([]Name, 0, nameCount)
	for n := Name(0); n < nameCount; n++ {
		all = append(all, n)
	}
	return all
}

// FileBase is the resource name without extension, e.g. "Lexend-Bold".
func (n Name) FileBase() string {
	if e, ok := nameTable[n]; ok {
		return e.file
	}
	return fmt.Sprintf("Name(%d)", int(n))
}

func (n Name) String() string { return n.FileBase() }

// Family is the typeface n belongs to.
func (n Name) Family() Family { return nameTable[n].family }

// Weight is the stroke weight of n.
func (n Name) Weight() Weight { return nameTable[n].weight }

// Bold reports whether n should stand in for a bold system font.
func (n Name) Bold() bool { return n.Weight() >= WeightSemiBold }

// RequiresRegistration is true for fonts the platform does not already
// provide. Every bundled face needs it.
func (n Name) RequiresRegistration() bool { return nameTable[n].register }

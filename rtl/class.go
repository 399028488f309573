package rtl

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Class is the directionality class of a code-point. There are only two of
// them; see the package documentation.
type Class int8

// Any code-point not listed in DirectionalRanges is Neutral.
const (
	Neutral     Class = iota // everything else, including U+FFFD for broken input
	Directional              // Hebrew script
)

func (c Class) String() string {
	switch c {
	case Neutral:
		return "Neutral"
	case Directional:
		return "Directional"
	}
	return "Unknown"
}

// Hebrew: U+0590–U+05FF
var hebrew = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0590, Hi: 0x05ff, Stride: 1},
	},
}

// Hebrew presentation forms: U+FB1D–U+FB4F
var hebrewPresentationForms = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xfb1d, Hi: 0xfb4f, Stride: 1},
	},
}

// DirectionalRanges is the fixed table of code-points classified as
// Directional.
var DirectionalRanges = rangetable.Merge(hebrew, hebrewPresentationForms)

// ClassOf returns the directionality class of r.
func ClassOf(r rune) Class {
	if IsDirectional(r) {
		return Directional
	}
	return Neutral
}

// IsDirectional is true for code-points of the Hebrew block and the Hebrew
// presentation forms.
func IsDirectional(r rune) bool {
	if r < 0x0590 { // fast path for Latin text
		return false
	}
	return unicode.Is(DirectionalRanges, r)
}

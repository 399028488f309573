package glyphing

import (
	"errors"
	"fmt"

	"github.com/npillmayer/textevents"
	"golang.org/x/image/font/sfnt"
)

// Resolver looks up glyph indices for code-points in a font.
type Resolver interface {
	// Resolve returns a pair for every code-point of text.
	Resolve(font *textevents.Font, text string) ([]textevents.CodePointGlyphIndexPair, error)
	// Reresolve sets the glyph index of every pair from its code-point.
	Reresolve(font *textevents.Font, pairs []textevents.CodePointGlyphIndexPair) error
}

// ErrUnknownFamily is returned by SFNTResolver for fonts of a family which
// has not been registered.
var ErrUnknownFamily = errors.New("glyphing: font family not registered")

// SFNTResolver is a Resolver for OpenType and TrueType fonts. Fonts are
// registered by family name; font size does not matter for glyph lookup.
//
// Code-points without a glyph in the font resolve to glyph index 0, the
// .notdef glyph.
type SFNTResolver struct {
	fonts map[string]*sfnt.Font
	buf   sfnt.Buffer
}

// NewSFNTResolver creates a resolver without any fonts.
func NewSFNTResolver() *SFNTResolver {
	return &SFNTResolver{fonts: make(map[string]*sfnt.Font)}
}

// Register parses font data (TTF or OTF) and registers it for a family.
// A font registered earlier for the same family is replaced.
func (res *SFNTResolver) Register(family string, data []byte) error {
	f, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("glyphing: cannot parse font for family %q: %w", family, err)
	}
	res.fonts[family] = f
	T().Debugf("glyphing: registered font family %q with %d glyphs", family, f.NumGlyphs())
	return nil
}

// Resolve is part of interface Resolver.
func (res *SFNTResolver) Resolve(font *textevents.Font, text string) ([]textevents.CodePointGlyphIndexPair, error) {
	pairs := make([]textevents.CodePointGlyphIndexPair, 0, len(text))
	for _, r := range text {
		pairs = append(pairs, textevents.CodePointGlyphIndexPair{CodePoint: uint32(r)})
	}
	if err := res.Reresolve(font, pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// Reresolve is part of interface Resolver.
func (res *SFNTResolver) Reresolve(font *textevents.Font, pairs []textevents.CodePointGlyphIndexPair) error {
	f, ok := res.fonts[font.Family()]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, font.Family())
	}
	for i := range pairs {
		gid, err := f.GlyphIndex(&res.buf, rune(pairs[i].CodePoint))
		if err != nil {
			return fmt.Errorf("glyphing: glyph lookup for %#U: %w", rune(pairs[i].CodePoint), err)
		}
		pairs[i].GlyphIndex = uint(gid)
	}
	return nil
}

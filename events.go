package textevents

import (
	"fmt"
	"strings"
)

// Font describes the font a text is rendered with. Fonts are immutable;
// event handlers cannot exchange the font of an event.
type Font struct {
	family string
	size   float64
}

// NewFont creates a font descriptor for a font family and a font size
// in points.
func NewFont(family string, size float64) *Font {
	return &Font{family: family, size: size}
}

// Family returns the name of the font family.
func (f *Font) Family() string {
	return f.family
}

// Size returns the font size in points.
func (f *Font) Size() float64 {
	return f.size
}

func (f *Font) String() string {
	return fmt.Sprintf("%s@%gpt", f.family, f.size)
}

// CodePointGlyphIndexPair connects a UTF-32 code-point to the index of its
// glyph in a font.
type CodePointGlyphIndexPair struct {
	CodePoint  uint32
	GlyphIndex uint
}

// EventArgs is the base of all event arguments. Source is the document
// object an event is fired for. It is opaque for this package and serves
// for identification only.
type EventArgs struct {
	source interface{}
}

// Source returns the document object the event is fired for.
func (e EventArgs) Source() interface{} {
	return e.source
}

// --- PrepareText -------------------------------------------------------

// PrepareTextEventArgs are the arguments of a PrepareText event.
// Handlers may set Text; every handler sees the text as left by the
// handlers before it.
type PrepareTextEventArgs struct {
	EventArgs
	font *Font
	Text string // the text to be measured or drawn
}

// NewPrepareTextEventArgs creates the arguments for a PrepareText event.
// font must not be nil.
func NewPrepareTextEventArgs(source interface{}, font *Font, text string) *PrepareTextEventArgs {
	if font == nil {
		panic("textevents: PrepareText event arguments need a font")
	}
	return &PrepareTextEventArgs{
		EventArgs: EventArgs{source: source},
		font:      font,
		Text:      text,
	}
}

// Font returns the font used to draw the text.
func (e *PrepareTextEventArgs) Font() *Font {
	return e.font
}

// PrepareTextHandler is a handler for PrepareText events. It gives a
// document the opportunity to inspect or modify a string before it is used
// for drawing or measuring text.
type PrepareTextHandler func(sender interface{}, e *PrepareTextEventArgs) error

// --- RenderText --------------------------------------------------------

// RenderTextEventArgs are the arguments of a RenderText event.
//
// Handlers may modify or replace Pairs. A handler which changed code-points
// without setting the appropriate glyph indices sets ReevaluateGlyphIndices
// to ask the caller for a new glyph lookup. The flag is never read or reset
// by RenderEvents.
type RenderTextEventArgs struct {
	EventArgs
	font                   *Font
	Pairs                  []CodePointGlyphIndexPair
	ReevaluateGlyphIndices bool
}

// NewRenderTextEventArgs creates the arguments for a RenderText event.
// font must not be nil.
func NewRenderTextEventArgs(source interface{}, font *Font, pairs []CodePointGlyphIndexPair) *RenderTextEventArgs {
	if font == nil {
		panic("textevents: RenderText event arguments need a font")
	}
	return &RenderTextEventArgs{
		EventArgs: EventArgs{source: source},
		font:      font,
		Pairs:     pairs,
	}
}

// Font returns the font used to draw the text.
func (e *RenderTextEventArgs) Font() *Font {
	return e.font
}

// CodePoints returns the code-points of Pairs as a string.
func (e *RenderTextEventArgs) CodePoints() string {
	var b strings.Builder
	for _, p := range e.Pairs {
		b.WriteRune(rune(p.CodePoint))
	}
	return b.String()
}

// RenderTextHandler is a handler for RenderText events. It gives a document
// the opportunity to inspect or modify the code-points with their
// corresponding glyph indices before they are used for drawing or measuring
// text.
type RenderTextHandler func(sender interface{}, e *RenderTextEventArgs) error

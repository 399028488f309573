package glyphing

import (
	"fmt"

	"github.com/npillmayer/textevents"
)

// Result is what remains of a text after preparation: the text as left by
// the PrepareText handlers, and the glyph pairs as left by the RenderText
// handlers.
type Result struct {
	Text       string
	Pairs      []textevents.CodePointGlyphIndexPair
	Reresolved bool // glyph indices have been looked up again on request of a handler
}

// Prepare runs text through the render events of a document:
//
//   1. fire PrepareText (which re-orders right-to-left runs first)
//   2. resolve the prepared text to glyph indices
//   3. fire RenderText
//   4. if a RenderText handler set ReevaluateGlyphIndices, resolve the
//      glyph indices of the final pairs once more
//
// source is the document object the text belongs to, sender is handed to
// the handlers. Errors of handlers are returned unchanged, errors of the
// resolver are wrapped.
func Prepare(events *textevents.RenderEvents, sender, source interface{}, font *textevents.Font,
	text string, resolver Resolver) (*Result, error) {
	//
	prep := textevents.NewPrepareTextEventArgs(source, font, text)
	if err := events.OnPrepareText(sender, prep); err != nil {
		return nil, err
	}
	pairs, err := resolver.Resolve(font, prep.Text)
	if err != nil {
		return nil, fmt.Errorf("glyphing: resolve: %w", err)
	}
	render := textevents.NewRenderTextEventArgs(source, font, pairs)
	if err := events.OnRenderText(sender, render); err != nil {
		return nil, err
	}
	result := &Result{Text: prep.Text, Pairs: render.Pairs}
	if render.ReevaluateGlyphIndices {
		T().Debugf("glyphing: re-evaluating %d glyph indices", len(render.Pairs))
		if err := resolver.Reresolve(font, render.Pairs); err != nil {
			return nil, fmt.Errorf("glyphing: re-resolve: %w", err)
		}
		result.Reresolved = true
	}
	return result, nil
}

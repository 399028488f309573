/*
Package textevents is about preparing text right before it is measured or
drawn by a document renderer.

Description

Rendering a string on a page is a pipeline: the text is prepared, code-points
are resolved to glyphs of a font, and the glyphs are measured or drawn.
Package textevents sits in front of measuring and drawing and offers two
checkpoints where clients may inspect or modify what is about to be rendered:

  PrepareText:  the text as a string, after right-to-left runs have been
                re-ordered for display
  RenderText:   the code-points of the text together with their glyph
                indices in the font

Both checkpoints are events of type RenderEvents. A RenderEvents belongs to
a single document (see type Document); it is never global.

Events

Handlers subscribe to an event and receive the event arguments by pointer.
All handlers are called synchronously within the caller's goroutine, in the
order of subscription. There is no copying between handlers: every handler
sees the modifications made by the handlers subscribed before it. A handler
cannot stop the chain, but if it returns an error, the error is handed back
to the caller unchanged and no further handlers are called.

    events := textevents.NewRenderEvents()
    events.SubscribePrepareText(func(sender interface{}, e *textevents.PrepareTextEventArgs) error {
        e.Text = strings.ToUpper(e.Text)
        return nil
    })

RenderEvents does not do any locking. Subscribing, unsubscribing and firing
events have to be serialized by the client.

Before the PrepareText handlers are called, the text is re-ordered by
package rtl. This is a minimal Hebrew-only run reversal and not the Unicode
Bidi Algorithm; please refer to package rtl.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package textevents

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

/*
Package rtl reorders embedded right-to-left text runs for visual display.

This is a deliberately minimal approximation and not an implementation of
the Unicode UAX#9 Bidirectional Algorithm. It knows exactly two classes of
code-points: directional (the Hebrew block U+0590–U+05FF and the Hebrew
presentation forms U+FB1D–U+FB4F) and neutral (everything else). There
are no embedding levels, no explicit direction marks, no mirroring of
brackets and no shaping. Scripts like Hebrew, Yiddish or Ladino written in
Hebrew script do not need complex shaping, which makes this good enough for
a single right-to-left span embedded in left-to-right text. For anything
else clients should use a real bidi implementation.

Reordering

Text is split into maximal runs of code-points of the same class:

    "123 אבג 456"  ⇒  [123 ]N [אבג]D [ 456]N

Directional runs are reversed in place, then the sequence of runs is
reversed as a whole:

    ⇒  [ 456]N [גבא]D [123 ]N  ⇒  " 456גבא123 "

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package rtl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

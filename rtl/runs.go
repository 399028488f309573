package rtl

import (
	"fmt"
	"unicode/utf8"
)

// A Run represents a directional run of text, i.e. a maximal sequence of
// code-points of a single Class.
// Type Run holds the positions of characters, not the characters themselves.
type Run struct {
	Class      Class // class of all code-points in the run
	Start, End int   // byte positions [Start…End) in the text
}

// Len returns the length of the run in bytes.
func (r Run) Len() int {
	return r.End - r.Start
}

func (r Run) String() string {
	return fmt.Sprintf("[%d-%s-%d]", r.Start, r.Class, r.End)
}

// Segmenter splits a text into runs. It provides an interface similar to
// bufio.Scanner:
//
//   seg := rtl.NewSegmenter()
//   seg.Init("abc אבג")
//   for seg.Next() {
//       // do something with seg.Run() or seg.Text()
//   }
//
// The text is scanned from left to right exactly once. The class of the
// first code-point seeds the class of the first run.
type Segmenter struct {
	text string
	pos  int // start of the next run
	run  Run // most recent run
}

// NewSegmenter creates a new Segmenter. Before using it, clients will have
// to call Init(...).
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Init initializes a Segmenter with a text to segment. s is either a newly
// created segmenter, or we may re-initialize a segmenter already in use.
func (s *Segmenter) Init(text string) {
	s.text = text
	s.pos = 0
	s.run = Run{}
}

// Next advances to the next run. It returns false at the end of the text.
func (s *Segmenter) Next() bool {
	if s.pos >= len(s.text) {
		return false
	}
	r, w := utf8.DecodeRuneInString(s.text[s.pos:])
	run := Run{Class: ClassOf(r), Start: s.pos}
	end := s.pos + w
	for end < len(s.text) {
		r, w = utf8.DecodeRuneInString(s.text[end:])
		if ClassOf(r) != run.Class {
			break
		}
		end += w
	}
	run.End = end
	s.run = run
	s.pos = end
	return true
}

// Run returns the most recent run found by a call to Next.
func (s *Segmenter) Run() Run {
	return s.run
}

// Text returns the text of the most recent run found by a call to Next.
func (s *Segmenter) Text() string {
	return s.text[s.run.Start:s.run.End]
}

// AppendRuns appends all runs of text to dst and returns the extended slice.
func AppendRuns(dst []Run, text string) []Run {
	seg := Segmenter{}
	seg.Init(text)
	for seg.Next() {
		dst = append(dst, seg.Run())
	}
	return dst
}

// Runs returns the runs of text in logical order. An empty text has no runs.
func Runs(text string) []Run {
	return AppendRuns(nil, text)
}

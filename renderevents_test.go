package textevents

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var testFont = NewFont("Arial", 10)

func TestPrepareTextReordersRuns(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	inputs := []struct{ input, expected string }{
		{"abcשלום", "םולשabc"},
		{"שלוםabc", "abcםולש"},
		{"123 אבג 456", " 456גבא123 "},
		{"", ""},
		{"no Hebrew here", "no Hebrew here"},
	}
	events := NewRenderEvents()
	doc := NewDocument("he-IL")
	for i, in := range inputs {
		args := NewPrepareTextEventArgs(doc, testFont, in.input)
		if err := events.OnPrepareText(t, args); err != nil {
			t.Fatal(err)
		}
		if args.Text != in.expected {
			t.Errorf("test #%d: expected text to be %q, is %q", i, in.expected, args.Text)
		}
	}
}

func TestPrepareTextHandlersSeeReorderedText(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	events := NewRenderEvents()
	var seen []string
	events.SubscribePrepareText(func(sender interface{}, e *PrepareTextEventArgs) error {
		seen = append(seen, e.Text)
		e.Text += "*"
		return nil
	})
	events.SubscribePrepareText(func(sender interface{}, e *PrepareTextEventArgs) error {
		seen = append(seen, e.Text)
		return nil
	})
	args := NewPrepareTextEventArgs(nil, testFont, "123 אבג 456")
	if err := events.OnPrepareText(nil, args); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 handlers to be called, have %d", len(seen))
	}
	if seen[0] != " 456גבא123 " {
		t.Errorf("first handler should see re-ordered text, saw %q", seen[0])
	}
	if seen[1] != " 456גבא123 *" {
		t.Errorf("second handler should see marker of first handler, saw %q", seen[1])
	}
	if args.Text != " 456גבא123 *" {
		t.Errorf("caller should see final text, sees %q", args.Text)
	}
}

func TestPrepareTextReordersOnlyOnce(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	calls := 0
	events := NewRenderEvents(PreprocessWith(func(s string) string {
		calls++
		return strings.ToUpper(s)
	}))
	for i := 0; i < 3; i++ {
		events.SubscribePrepareText(func(sender interface{}, e *PrepareTextEventArgs) error {
			return nil
		})
	}
	args := NewPrepareTextEventArgs(nil, testFont, "abc")
	_ = events.OnPrepareText(nil, args)
	if calls != 1 || args.Text != "ABC" {
		t.Errorf("expected preprocessing to happen once, happened %d times, text = %q", calls, args.Text)
	}
	args.Text = ""
	_ = events.OnPrepareText(nil, args)
	if calls != 1 {
		t.Errorf("empty text should not be preprocessed")
	}
}

func TestPrepareTextSkipPreprocessing(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	events := NewRenderEvents(SkipPreprocessing(true))
	args := NewPrepareTextEventArgs(nil, testFont, "abcאב")
	_ = events.OnPrepareText(nil, args)
	if args.Text != "abcאב" {
		t.Errorf("text should not have been re-ordered, is %q", args.Text)
	}
	SkipPreprocessing(false)(events)
	_ = events.OnPrepareText(nil, args)
	if args.Text != "באabc" {
		t.Errorf("text should have been re-ordered, is %q", args.Text)
	}
}

func TestPrepareTextHandlerOrderAndSender(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var events RenderEvents // zero value is usable
	var order []int
	sender := &struct{ name string }{"page 1"}
	for i := 0; i < 5; i++ {
		i := i
		events.SubscribePrepareText(func(s interface{}, e *PrepareTextEventArgs) error {
			if s != sender {
				t.Errorf("handler %d received wrong sender %v", i, s)
			}
			order = append(order, i)
			return nil
		})
	}
	args := NewPrepareTextEventArgs("doc", testFont, "x")
	_ = events.OnPrepareText(sender, args)
	for i, n := range order {
		if i != n {
			t.Fatalf("handlers called out of order: %v", order)
		}
	}
	if len(order) != 5 {
		t.Errorf("expected 5 handler calls, have %d", len(order))
	}
	if args.Source() != "doc" || args.Font() != testFont {
		t.Errorf("source and font should be unchanged, are %v, %v", args.Source(), args.Font())
	}
}

func TestPrepareTextHandlerError(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	errBroken := errors.New("broken handler")
	events := NewRenderEvents()
	called := []bool{false, false, false}
	events.SubscribePrepareText(func(sender interface{}, e *PrepareTextEventArgs) error {
		called[0] = true
		return nil
	})
	events.SubscribePrepareText(func(sender interface{}, e *PrepareTextEventArgs) error {
		called[1] = true
		return errBroken
	})
	events.SubscribePrepareText(func(sender interface{}, e *PrepareTextEventArgs) error {
		called[2] = true
		return nil
	})
	err := events.OnPrepareText(nil, NewPrepareTextEventArgs(nil, testFont, "abc"))
	if err != errBroken {
		t.Errorf("expected handler error to be returned unchanged, is %v", err)
	}
	if !called[0] || !called[1] || called[2] {
		t.Errorf("expected handlers after failing handler not to be called, called = %v", called)
	}
}

func TestUnsubscribe(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	events := NewRenderEvents()
	prepareCalls, renderCalls := 0, 0
	sp := events.SubscribePrepareText(func(sender interface{}, e *PrepareTextEventArgs) error {
		prepareCalls++
		return nil
	})
	sr := events.SubscribeRenderText(func(sender interface{}, e *RenderTextEventArgs) error {
		renderCalls++
		return nil
	})
	if events.PrepareTextHandlers() != 1 || events.RenderTextHandlers() != 1 {
		t.Fatalf("expected 1 handler per event")
	}
	if !events.UnsubscribePrepareText(sp) || !events.UnsubscribeRenderText(sr) {
		t.Fatalf("unsubscribing handlers should succeed")
	}
	for i := 0; i < 2; i++ {
		_ = events.OnPrepareText(nil, NewPrepareTextEventArgs(nil, testFont, "abc"))
		_ = events.OnRenderText(nil, NewRenderTextEventArgs(nil, testFont, nil))
	}
	if prepareCalls != 0 || renderCalls != 0 {
		t.Errorf("unsubscribed handlers should not be called, were called %d and %d times",
			prepareCalls, renderCalls)
	}
	if events.UnsubscribePrepareText(sp) {
		t.Errorf("handler should not be unsubscribed twice")
	}
}

func TestRenderTextWithoutHandlers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	events := NewRenderEvents()
	pairs := []CodePointGlyphIndexPair{{'a', 68}, {'b', 69}}
	args := NewRenderTextEventArgs(nil, testFont, pairs)
	args.ReevaluateGlyphIndices = true
	if err := events.OnRenderText(nil, args); err != nil {
		t.Fatal(err)
	}
	if !args.ReevaluateGlyphIndices {
		t.Errorf("reevaluate flag should be unchanged")
	}
	if len(args.Pairs) != 2 || args.Pairs[0] != pairs[0] || args.Pairs[1] != pairs[1] {
		t.Errorf("pairs should be unchanged, are %v", args.Pairs)
	}
	args = NewRenderTextEventArgs(nil, testFont, pairs)
	_ = events.OnRenderText(nil, args)
	if args.ReevaluateGlyphIndices {
		t.Errorf("reevaluate flag should default to false")
	}
}

func TestRenderTextHandlersModifyPairs(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	events := NewRenderEvents()
	events.SubscribeRenderText(func(sender interface{}, e *RenderTextEventArgs) error {
		e.Pairs = append(e.Pairs, CodePointGlyphIndexPair{CodePoint: '!'})
		e.ReevaluateGlyphIndices = true
		return nil
	})
	events.SubscribeRenderText(func(sender interface{}, e *RenderTextEventArgs) error {
		if len(e.Pairs) != 3 {
			t.Errorf("second handler should see 3 pairs, sees %d", len(e.Pairs))
		}
		e.Pairs = e.Pairs[1:]
		return nil
	})
	args := NewRenderTextEventArgs(nil, testFont, []CodePointGlyphIndexPair{{'a', 68}, {'b', 69}})
	if err := events.OnRenderText(nil, args); err != nil {
		t.Fatal(err)
	}
	if args.CodePoints() != "b!" {
		t.Errorf("expected code-points to be 'b!', are %q", args.CodePoints())
	}
	if !args.ReevaluateGlyphIndices {
		t.Errorf("reevaluate flag set by handler should be visible to caller")
	}
}

func TestRenderTextHandlerError(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	errBroken := errors.New("broken handler")
	events := NewRenderEvents()
	secondCalled := false
	events.SubscribeRenderText(func(sender interface{}, e *RenderTextEventArgs) error {
		return errBroken
	})
	events.SubscribeRenderText(func(sender interface{}, e *RenderTextEventArgs) error {
		secondCalled = true
		return nil
	})
	err := events.OnRenderText(nil, NewRenderTextEventArgs(nil, testFont, nil))
	if !errors.Is(err, errBroken) {
		t.Errorf("expected handler error, have %v", err)
	}
	if secondCalled {
		t.Errorf("handler after failing handler should not be called")
	}
}

func TestNilArgumentsPanic(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	events := NewRenderEvents()
	mustPanic(t, "OnPrepareText(nil)", func() { _ = events.OnPrepareText(nil, nil) })
	mustPanic(t, "OnRenderText(nil)", func() { _ = events.OnRenderText(nil, nil) })
	mustPanic(t, "SubscribePrepareText(nil)", func() { events.SubscribePrepareText(nil) })
	mustPanic(t, "SubscribeRenderText(nil)", func() { events.SubscribeRenderText(nil) })
	mustPanic(t, "NewPrepareTextEventArgs without font", func() { NewPrepareTextEventArgs(nil, nil, "x") })
	mustPanic(t, "NewRenderTextEventArgs without font", func() { NewRenderTextEventArgs(nil, nil, nil) })
}

func mustPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s should panic", what)
		}
	}()
	f()
}

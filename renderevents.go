package textevents

import (
	"github.com/npillmayer/textevents/rtl"
)

// RenderEvents encapsulates all render events of a document.
//
// A RenderEvents is not safe for concurrent use. Handlers are called within
// the goroutine firing the event.
type RenderEvents struct {
	prepareText handlerList
	renderText  handlerList
	preprocess  func(string) string
	mode        uint
}

const (
	optionSkipPreprocessing uint = 1 << 1 // do not re-order text before PrepareText handlers
)

// Option configures a RenderEvents instance.
type Option func(*RenderEvents)

// PreprocessWith sets the text transformation applied before the
// PrepareText handlers are called. nil restores the default, rtl.Reorder.
func PreprocessWith(fn func(string) string) Option {
	return func(re *RenderEvents) {
		re.preprocess = fn
	}
}

// SkipPreprocessing switches the text transformation off (b = true) or
// on again (b = false). Default is on.
func SkipPreprocessing(b bool) Option {
	return func(re *RenderEvents) {
		if b {
			re.mode |= optionSkipPreprocessing
		} else {
			re.mode &^= optionSkipPreprocessing
		}
	}
}

// NewRenderEvents creates a RenderEvents without any handlers.
// The zero value of RenderEvents is usable as well.
func NewRenderEvents(opts ...Option) *RenderEvents {
	re := &RenderEvents{}
	for _, opt := range opts {
		opt(re)
	}
	return re
}

func (re *RenderEvents) hasMode(m uint) bool {
	return re.mode&m > 0
}

// --- PrepareText -------------------------------------------------------

// SubscribePrepareText subscribes a handler to PrepareText events, raised
// whenever text is about to be drawn or measured.
func (re *RenderEvents) SubscribePrepareText(h PrepareTextHandler) Subscription {
	if h == nil {
		panic("textevents: cannot subscribe nil PrepareText handler")
	}
	s := re.prepareText.subscribe(h)
	CT().Debugf("PrepareText: subscribed handler #%d", s)
	return s
}

// UnsubscribePrepareText removes a handler from PrepareText events.
// It returns false if s has not been subscribed to PrepareText (anymore).
func (re *RenderEvents) UnsubscribePrepareText(s Subscription) bool {
	return re.prepareText.unsubscribe(s)
}

// PrepareTextHandlers returns the number of handlers subscribed to PrepareText.
func (re *RenderEvents) PrepareTextHandlers() int {
	return re.prepareText.Len()
}

// OnPrepareText raises a PrepareText event.
//
// If args.Text is not empty, it is re-ordered for right-to-left runs exactly
// once, before any handler is called (see package rtl). This happens even if
// no handler is subscribed. Then every handler is called in order of
// subscription, all of them sharing args.
//
// If a handler returns an error, OnPrepareText returns it without calling
// the remaining handlers. args must not be nil.
func (re *RenderEvents) OnPrepareText(sender interface{}, args *PrepareTextEventArgs) error {
	if args == nil {
		panic("textevents: PrepareText event raised without arguments")
	}
	if args.Text != "" && !re.hasMode(optionSkipPreprocessing) {
		args.Text = re.preprocessor()(args.Text)
	}
	for i, h := range re.prepareText.snapshot() {
		CT().Debugf("PrepareText: calling handler %d with %q", i, args.Text)
		if err := h.(PrepareTextHandler)(sender, args); err != nil {
			CT().Debugf("PrepareText: handler %d failed: %v", i, err)
			return err
		}
	}
	return nil
}

func (re *RenderEvents) preprocessor() func(string) string {
	if re.preprocess == nil {
		return rtl.Reorder
	}
	return re.preprocess
}

// --- RenderText --------------------------------------------------------

// SubscribeRenderText subscribes a handler to RenderText events, raised
// whenever text is drawn or measured.
func (re *RenderEvents) SubscribeRenderText(h RenderTextHandler) Subscription {
	if h == nil {
		panic("textevents: cannot subscribe nil RenderText handler")
	}
	s := re.renderText.subscribe(h)
	CT().Debugf("RenderText: subscribed handler #%d", s)
	return s
}

// UnsubscribeRenderText removes a handler from RenderText events.
// It returns false if s has not been subscribed to RenderText (anymore).
func (re *RenderEvents) UnsubscribeRenderText(s Subscription) bool {
	return re.renderText.unsubscribe(s)
}

// RenderTextHandlers returns the number of handlers subscribed to RenderText.
func (re *RenderEvents) RenderTextHandlers() int {
	return re.renderText.Len()
}

// OnRenderText raises a RenderText event. Every handler is called in order of
// subscription, all of them sharing args. Nothing else is done to args;
// in particular args.ReevaluateGlyphIndices is left for the caller to act on.
//
// If a handler returns an error, OnRenderText returns it without calling
// the remaining handlers. args must not be nil.
func (re *RenderEvents) OnRenderText(sender interface{}, args *RenderTextEventArgs) error {
	if args == nil {
		panic("textevents: RenderText event raised without arguments")
	}
	for i, h := range re.renderText.snapshot() {
		CT().Debugf("RenderText: calling handler %d with %d glyphs", i, len(args.Pairs))
		if err := h.(RenderTextHandler)(sender, args); err != nil {
			CT().Debugf("RenderText: handler %d failed: %v", i, err)
			return err
		}
	}
	return nil
}

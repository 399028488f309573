package textevents

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Subscription identifies a handler subscribed to an event. It is returned
// by the Subscribe… methods of RenderEvents and needed to unsubscribe the
// handler. The zero value is never handed out.
type Subscription uint64

// handlerList holds the handlers subscribed to a single event, in the order
// of subscription. Handlers are stored as interface{} and the event types
// will have to assert their handler type.
//
// handlerList may be used uninitialized.
type handlerList struct {
	handlers *linkedhashmap.Map // Subscription → handler, insertion-ordered
	last     Subscription       // most recently issued subscription
}

func (hl *handlerList) subscribe(handler interface{}) Subscription {
	if hl.handlers == nil {
		hl.handlers = linkedhashmap.New()
	}
	hl.last++
	hl.handlers.Put(hl.last, handler)
	return hl.last
}

// unsubscribe removes a handler. It returns false if s is not subscribed.
func (hl *handlerList) unsubscribe(s Subscription) bool {
	if hl.handlers == nil {
		return false
	}
	if _, found := hl.handlers.Get(s); !found {
		return false
	}
	hl.handlers.Remove(s)
	return true
}

// snapshot returns the handlers in the order of subscription. Changes to the
// list during a dispatch will not affect the snapshot.
func (hl *handlerList) snapshot() []interface{} {
	if hl.handlers == nil {
		return nil
	}
	return hl.handlers.Values()
}

// Len returns the number of subscribed handlers.
func (hl *handlerList) Len() int {
	if hl.handlers == nil {
		return 0
	}
	return hl.handlers.Size()
}

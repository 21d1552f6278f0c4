package vdom

import (
	"reflect"

	"github.com/loom-dev/loom/pkg/dom"
)

// Listener pairs an event name with its handler. Listeners are
// immutable once built.
type Listener struct {
	Event   string      // "click", "input", etc.
	Handler dom.Handler // Callback invoked with the dispatched event
}

// Listeners is the immutable listener set of a tag node. The set is
// compared structurally as a whole: there is no per-handler diffing,
// a changed set is unregistered and re-registered in full.
type Listeners []Listener

// Equal reports whether the two sets are structurally identical:
// same length, same event names in order, and the same handler
// functions by identity. Handlers rebuilt as fresh closures compare
// unequal even if behaviorally identical.
func (ls Listeners) Equal(other Listeners) bool {
	if len(ls) != len(other) {
		return false
	}
	for i := range ls {
		if ls[i].Event != other[i].Event {
			return false
		}
		if handlerPtr(ls[i].Handler) != handlerPtr(other[i].Handler) {
			return false
		}
	}
	return true
}

func handlerPtr(h dom.Handler) uintptr {
	if h == nil {
		return 0
	}
	return reflect.ValueOf(h).Pointer()
}

// On creates a listener for an arbitrary event name.
func On(event string, handler dom.Handler) Listener {
	return Listener{Event: event, Handler: handler}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler dom.Handler) Listener { return On("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler dom.Handler) Listener { return On("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler dom.Handler) Listener { return On("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler dom.Handler) Listener { return On("mouseup", handler) }

// OnMouseMove handles mousemove events.
func OnMouseMove(handler dom.Handler) Listener { return On("mousemove", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler dom.Handler) Listener { return On("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler dom.Handler) Listener { return On("mouseleave", handler) }

// OnContextMenu handles contextmenu (right-click) events.
func OnContextMenu(handler dom.Handler) Listener { return On("contextmenu", handler) }

// OnWheel handles wheel (scroll wheel) events.
func OnWheel(handler dom.Handler) Listener { return On("wheel", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler dom.Handler) Listener { return On("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler dom.Handler) Listener { return On("keyup", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler dom.Handler) Listener { return On("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler dom.Handler) Listener { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler dom.Handler) Listener { return On("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler dom.Handler) Listener { return On("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler dom.Handler) Listener { return On("blur", handler) }

// OnSelect handles select events (text selection).
func OnSelect(handler dom.Handler) Listener { return On("select", handler) }

// OnReset handles form reset events.
func OnReset(handler dom.Handler) Listener { return On("reset", handler) }

// Drag events

// OnDragStart handles dragstart events.
func OnDragStart(handler dom.Handler) Listener { return On("dragstart", handler) }

// OnDragEnd handles dragend events.
func OnDragEnd(handler dom.Handler) Listener { return On("dragend", handler) }

// OnDragOver handles dragover events.
func OnDragOver(handler dom.Handler) Listener { return On("dragover", handler) }

// OnDrop handles drop events.
func OnDrop(handler dom.Handler) Listener { return On("drop", handler) }

// Touch events

// OnTouchStart handles touchstart events.
func OnTouchStart(handler dom.Handler) Listener { return On("touchstart", handler) }

// OnTouchMove handles touchmove events.
func OnTouchMove(handler dom.Handler) Listener { return On("touchmove", handler) }

// OnTouchEnd handles touchend events.
func OnTouchEnd(handler dom.Handler) Listener { return On("touchend", handler) }

// Scroll events

// OnScroll handles scroll events.
func OnScroll(handler dom.Handler) Listener { return On("scroll", handler) }

// Load and error events

// OnLoad handles load events.
func OnLoad(handler dom.Handler) Listener { return On("load", handler) }

// OnError handles error events.
func OnError(handler dom.Handler) Listener { return On("error", handler) }

// Details events

// OnToggle handles toggle events (for details element).
func OnToggle(handler dom.Handler) Listener { return On("toggle", handler) }

// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"sync"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
)

// TheTipManager schedules hover and click tips for all registered
// widgets.
var TheTipManager = &TipManager{
	HoverDelay:     700 * time.Millisecond,
	ImmediateDelay: 500 * time.Millisecond,
	handlers:       map[*core.WidgetBase]*tipHandler{},
}

// TipManager shows the tips of registered widgets. Entering a
// registered widget schedules its hover tip after [TipManager.HoverDelay],
// leaving hides it, and clicking pops up its sticky tip. While any
// tip was recently visible, hover tips of other registered widgets
// show with no delay (immediate mode). At most one hover tip is
// visible at a time.
type TipManager struct {

	// HoverDelay is how long the pointer must rest over a registered
	// widget before its hover tip pops up.
	HoverDelay time.Duration

	// ImmediateDelay is how long immediate mode lasts after a hover
	// tip hides.
	ImmediateDelay time.Duration

	mu        sync.Mutex
	handlers  map[*core.WidgetBase]*tipHandler
	over      *tipHandler
	active    *core.Stage
	show      *time.Timer
	reset     *time.Timer
	immediate bool
}

// tipHandler binds one registered trigger widget to its tip source.
type tipHandler struct {
	trigger core.Widget
	src     TipSource
}

// Register sets up tip handling for the given widget. The widget
// gains the Hoverable and Activatable abilities so that it receives
// the pointer events, which most tip triggers (plain text, frames)
// do not otherwise handle. Registering a widget again just replaces
// its source. Widgets should be unregistered when torn down;
// a destroyed widget that was not is dropped when next seen.
func (tm *TipManager) Register(w core.Widget, src TipSource) {
	wb := w.AsWidget()
	tm.mu.Lock()
	tm.sweepLocked()
	_, seen := tm.handlers[wb]
	tm.handlers[wb] = &tipHandler{trigger: w, src: src}
	tm.mu.Unlock()
	if seen {
		return
	}
	wb.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Hoverable, abilities.Activatable)
	})
	wb.On(events.MouseEnter, func(e events.Event) {
		if h := tm.handlerOf(wb); h != nil {
			tm.entered(h)
		}
	})
	wb.On(events.MouseLeave, func(e events.Event) {
		if tm.handlerOf(wb) != nil {
			tm.exited()
		}
	})
	wb.On(events.Click, func(e events.Event) {
		if h := tm.handlerOf(wb); h != nil {
			tm.clicked(h)
		}
	})
}

// Unregister removes the tip handling for the given widget, hiding
// its tip if it is the one showing. The widget's event listeners
// remain attached but do nothing.
func (tm *TipManager) Unregister(w core.Widget) {
	wb := w.AsWidget()
	tm.mu.Lock()
	h, ok := tm.handlers[wb]
	delete(tm.handlers, wb)
	var st *core.Stage
	if ok && tm.over == h {
		tm.stopShowLocked()
		st = tm.hideLocked()
	}
	tm.mu.Unlock()
	if st != nil {
		st.ClosePopup()
	}
}

// HideAll hides the active hover tip and cancels any pending one.
// Sticky tips dismiss themselves and are unaffected.
func (tm *TipManager) HideAll() {
	tm.mu.Lock()
	tm.stopShowLocked()
	st := tm.hideLocked()
	tm.mu.Unlock()
	if st != nil {
		st.ClosePopup()
	}
}

// handlerOf returns the handler registered for the given widget.
// A destroyed widget is dropped and returns nil.
func (tm *TipManager) handlerOf(wb *core.WidgetBase) *tipHandler {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	h := tm.handlers[wb]
	if h != nil && wb.This == nil {
		delete(tm.handlers, wb)
		if tm.over == h {
			tm.over = nil
		}
		return nil
	}
	return h
}

// entered schedules the hover tip for the given handler. The delay is
// zero in immediate mode, which also stops decaying while over a
// trigger.
func (tm *TipManager) entered(h *tipHandler) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.over = h
	delay := tm.HoverDelay
	if tm.immediate {
		delay = 0
	}
	tm.stopResetLocked()
	tm.stopShowLocked()
	tm.show = time.AfterFunc(delay, tm.showNow)
}

// exited hides the current tip, cancels a pending one, and starts the
// immediate mode decay.
func (tm *TipManager) exited() {
	tm.mu.Lock()
	tm.stopShowLocked()
	st := tm.hideLocked()
	tm.stopResetLocked()
	tm.reset = time.AfterFunc(tm.ImmediateDelay, func() {
		tm.mu.Lock()
		tm.immediate = false
		tm.mu.Unlock()
	})
	tm.mu.Unlock()
	if st != nil {
		st.ClosePopup()
	}
}

// clicked hides the current tip and pops up the handler's sticky tip.
// Sticky tips are not tracked; their stage dismisses itself.
func (tm *TipManager) clicked(h *tipHandler) {
	tm.mu.Lock()
	tm.stopShowLocked()
	st := tm.hideLocked()
	tm.mu.Unlock()
	if st != nil {
		st.ClosePopup()
	}
	if sc := h.src.Tip(h.trigger, true); sc != nil {
		ShowTip(h.trigger, sc, true)
	}
}

// showNow pops up the hover tip of the handler the pointer is over.
// It runs on a timer goroutine, so all UI work happens between
// AsyncLock and AsyncUnlock, and the manager mutex is never held
// across them.
func (tm *TipManager) showNow() {
	tm.mu.Lock()
	h := tm.over
	tm.mu.Unlock()
	if h == nil {
		return
	}
	wb := h.trigger.AsWidget()
	if wb.This == nil || wb.Scene == nil {
		return
	}
	wb.AsyncLock()
	sc := h.src.Tip(h.trigger, false)
	var st *core.Stage
	if sc != nil {
		st = ShowTip(h.trigger, sc, false)
	}
	wb.AsyncUnlock()
	if st == nil {
		return
	}
	tm.mu.Lock()
	stale := tm.over != h
	if !stale {
		tm.active = st
		tm.immediate = true
	}
	tm.mu.Unlock()
	if stale {
		wb.AsyncLock()
		st.ClosePopup()
		wb.AsyncUnlock()
	}
}

// hideLocked clears the tracked tip state and returns the stage the
// caller must close outside of the mutex, if any.
func (tm *TipManager) hideLocked() *core.Stage {
	st := tm.active
	tm.active = nil
	tm.over = nil
	return st
}

func (tm *TipManager) stopShowLocked() {
	if tm.show != nil {
		tm.show.Stop()
		tm.show = nil
	}
}

func (tm *TipManager) stopResetLocked() {
	if tm.reset != nil {
		tm.reset.Stop()
		tm.reset = nil
	}
}

// sweepLocked drops registrations whose widgets were destroyed
// without an Unregister.
func (tm *TipManager) sweepLocked() {
	for wb, h := range tm.handlers {
		if wb.This == nil {
			delete(tm.handlers, wb)
			if tm.over == h {
				tm.over = nil
			}
		}
	}
}

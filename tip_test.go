// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"testing"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"github.com/stretchr/testify/assert"
)

func TestTipScene(t *testing.T) {
	b := core.NewBody()
	w := core.NewText(b).SetText("hover target")
	b.AssertRender(t, "tip/scene", func() {
		sc := NewTipScene(w)
		TipTitle(sc, "Title")
		TipText(sc, "some helpful words")
		assert.Equal(t, 2, sc.NumChildren())
		assert.Equal(t, "Title", sc.Child(0).(*core.Text).Text)
		assert.Equal(t, "some helpful words", sc.Child(1).(*core.Text).Text)
		assert.Equal(t, w.WinBBox().Size(), sc.SceneGeom.Size)
	})
}

func TestTextTip(t *testing.T) {
	b := core.NewBody()
	w := core.NewText(b).SetText("target")
	b.AssertRender(t, "tip/text-source", func() {
		for _, sticky := range []bool{false, true} {
			sc := TextTip("a tip").Tip(w, sticky)
			assert.Equal(t, 1, sc.NumChildren())
			assert.Equal(t, "a tip", sc.Child(0).(*core.Text).Text)
		}
	})
}

func TestTipHover(t *testing.T) {
	b := core.NewBody()
	b.Styler(func(s *styles.Style) {
		s.Min.Set(units.Em(20), units.Em(10))
	})
	w := core.NewText(b).SetText("hover me")
	b.AssertRenderScreen(t, "tip/hover", func() {
		ShowTip(w, TextTip("shown on hover").Tip(w, false), false)
	})
}

func TestTipSticky(t *testing.T) {
	b := core.NewBody()
	b.Styler(func(s *styles.Style) {
		s.Min.Set(units.Em(20), units.Em(10))
	})
	w := core.NewText(b).SetText("click me")
	SetTipText(w, "shown on click")
	t.Cleanup(func() { TheTipManager.Unregister(w) })
	b.AssertRenderScreen(t, "tip/sticky", func() {
		w.Send(events.Click)
	})
}

func TestSetTipGuard(t *testing.T) {
	b := core.NewBody()
	fld := NewIntField(b)
	SetTipText(fld, "never shown")
	TheTipManager.mu.Lock()
	_, registered := TheTipManager.handlers[fld.AsWidget()]
	TheTipManager.mu.Unlock()
	assert.False(t, registered)

	w := core.NewText(b).SetText("fine")
	SetTipText(w, "shown")
	TheTipManager.mu.Lock()
	_, registered = TheTipManager.handlers[w.AsWidget()]
	TheTipManager.mu.Unlock()
	assert.True(t, registered)

	TheTipManager.Unregister(w)
	TheTipManager.mu.Lock()
	_, registered = TheTipManager.handlers[w.AsWidget()]
	TheTipManager.mu.Unlock()
	assert.False(t, registered)
}

func TestTipManagerScheduling(t *testing.T) {
	b := core.NewBody()
	w := core.NewText(b).SetText("target")
	tm := &TipManager{
		HoverDelay:     time.Hour,
		ImmediateDelay: time.Hour,
		handlers:       map[*core.WidgetBase]*tipHandler{},
	}
	tm.Register(w, TextTip("tip"))
	h := tm.handlerOf(w.AsWidget())
	assert.NotNil(t, h)

	tm.entered(h)
	tm.mu.Lock()
	assert.Equal(t, h, tm.over)
	assert.NotNil(t, tm.show)
	tm.mu.Unlock()

	tm.exited()
	tm.mu.Lock()
	assert.Nil(t, tm.over)
	assert.Nil(t, tm.show)
	assert.NotNil(t, tm.reset)
	tm.mu.Unlock()

	tm.HideAll()
	tm.mu.Lock()
	tm.stopResetLocked()
	tm.mu.Unlock()
}

func TestTipManagerSweep(t *testing.T) {
	b := core.NewBody()
	w := core.NewText(b).SetText("doomed")
	tm := &TipManager{
		HoverDelay:     time.Hour,
		ImmediateDelay: time.Hour,
		handlers:       map[*core.WidgetBase]*tipHandler{},
	}
	tm.Register(w, TextTip("tip"))
	wb := w.AsWidget()
	w.Delete()
	assert.Nil(t, tm.handlerOf(wb))
	tm.mu.Lock()
	assert.Empty(t, tm.handlers)
	tm.mu.Unlock()
}

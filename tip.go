// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
)

// TipSource produces tooltip content for a widget registered with
// [TheTipManager].
type TipSource interface {

	// Tip returns the scene to pop up next to the given trigger
	// widget, or nil for no tip. sticky is true when the tip was
	// requested by a click; a sticky tip stays up, receives pointer
	// input, and may hold selectable options.
	Tip(w core.Widget, sticky bool) *core.Scene
}

// TextTip is a [TipSource] showing its text for both hover and sticky
// presentation.
type TextTip string

func (tt TextTip) Tip(w core.Widget, sticky bool) *core.Scene {
	sc := NewTipScene(w)
	TipText(sc, string(tt))
	return sc
}

// SetTip registers the given tip source for the given widget with
// [TheTipManager]: resting the pointer over the widget pops up the
// source's hover tip, and clicking it pops up the sticky tip. Text
// input widgets run their own pointer handling, so tips on them are
// skipped with an error.
func SetTip(w core.Widget, src TipSource) {
	if _, ok := w.(interface{ SetTypePassword() *core.TextField }); ok {
		slog.Error("swingn.SetTip: tips on text input widgets are not supported", "widget", w.AsWidget().Name)
		return
	}
	TheTipManager.Register(w, src)
}

// SetTipText registers a plain text tip for the given widget;
// see [SetTip].
func SetTipText(w core.Widget, text string) {
	SetTip(w, TextTip(text))
}

// NewTipScene returns a new, empty scene for tip content for the
// given widget, styled like the standard widget tooltip and
// positioned from the widget's window box. Fill it with [TipTitle],
// [TipText], or any other widgets.
func NewTipScene(w core.Widget) *core.Scene {
	wb := w.AsWidget()
	sc := core.NewScene(wb.Name + "-tip")
	sc.SceneGeom.Pos = wb.DefaultTooltipPos()
	sc.SceneGeom.Size = wb.WinBBox().Size()
	sc.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Border.Radius = styles.BorderRadiusExtraSmall
		s.Grow.Set(1, 1)
		s.Overflow.Set(styles.OverflowVisible)
		s.Padding.Set(units.Dp(8))
		s.Background = colors.C(colors.Scheme.InverseSurface)
		s.Color = colors.C(colors.Scheme.InverseOnSurface)
		s.BoxShadow = styles.BoxShadow1()
	})
	return sc
}

// TipTitle adds a title line to a tip scene.
func TipTitle(sc *core.Scene, title string) *core.Text {
	return core.NewText(sc).SetType(core.TextTitleSmall).SetText(title)
}

// TipText adds a line of wrapped body text to a tip scene.
func TipText(sc *core.Scene, text string) *core.Text {
	tx := core.NewText(sc).SetType(core.TextBodyMedium).SetText(text)
	tx.Styler(func(s *styles.Style) {
		s.SetTextWrap(true)
		s.Max.X.Em(20)
	})
	return tx
}

// ShowTip pops up the given tip scene next to the given context
// widget and returns the running stage. A sticky tip runs as a menu
// stage: it receives pointer input, and the first press outside of
// it only dismisses it. A non-sticky tip runs as a standard tooltip
// that pointer input passes through.
func ShowTip(ctx core.Widget, sc *core.Scene, sticky bool) *core.Stage {
	if sticky {
		return core.NewPopupStage(core.MenuStage, sc, ctx).Run()
	}
	return core.NewTooltipFromScene(sc, ctx).Run()
}

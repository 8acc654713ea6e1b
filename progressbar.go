// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"image"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
)

// ProgressBar is a widget that displays the completion of some operation
// as a horizontal bar filling from the left. [ProgressBar.Value] is the
// completed fraction, from 0 to 1. The filled portion is painted with
// [ProgressBar.BarColor], or with [ProgressBar.BarImage] stretched over
// it when that is set. The remainder shows the style background, so a
// styler that sets a transparent background leaves the track invisible.
// A progress bar is purely indicative and accepts no input.
type ProgressBar struct {
	core.WidgetBase

	// Value is the completed fraction of the bar.
	// It is always in the range [0,1].
	Value float32 `set:"-"`

	// BarColor is the background image used for the completed portion
	// of the bar. It should be set in a Styler, just like the main style
	// object is. It defaults to [colors.Scheme.Primary.Base].
	BarColor image.Image

	// BarImage is an optional image that is stretched over the completed
	// portion of the bar instead of [ProgressBar.BarColor].
	BarImage image.Image
}

func (pb *ProgressBar) WidgetValue() any { return &pb.Value }

func (pb *ProgressBar) Init() {
	pb.WidgetBase.Init()
	pb.Styler(func(s *styles.Style) {
		pb.BarColor = colors.C(colors.Scheme.Primary.Base)
		s.Background = colors.C(colors.Scheme.SurfaceVariant)
		s.Border.Style.Set(styles.BorderSolid)
		s.Border.Width.Set(units.Dp(1))
		s.Border.Color.Set(colors.C(colors.Scheme.Outline))
		s.Min.X.Em(20)
		s.Min.Y.Em(1)
	})
}

// SetValue sets the completed fraction of the bar, clamped to the
// range [0,1]. It does not send any events.
func (pb *ProgressBar) SetValue(value float32) *ProgressBar {
	pb.Value = math32.Clamp(value, 0, 1)
	pb.NeedsRender()
	return pb
}

// SetValueAction sets the completed fraction of the bar, clamped to
// the range [0,1], and sends an [events.Change] event if the value
// actually changed.
func (pb *ProgressBar) SetValueAction(value float32) {
	value = math32.Clamp(value, 0, 1)
	if pb.Value == value {
		return
	}
	pb.Value = value
	pb.NeedsRender()
	pb.SendChange()
}

func (pb *ProgressBar) Render() {
	pb.RenderStandardBox()
	sz := pb.Geom.Size.Actual.Content
	w := sz.X * math32.Clamp(pb.Value, 0, 1)
	if w <= 0 {
		return
	}
	pos := pb.Geom.Pos.Content
	if pb.BarImage != nil {
		pb.Scene.PaintContext.DrawImageScaled(pb.BarImage, pos.X, pos.Y, w, sz.Y)
		return
	}
	if pb.BarColor != nil {
		pb.Scene.PaintContext.FillBox(pos, math32.Vec2(w, sz.Y), pb.BarColor)
	}
}

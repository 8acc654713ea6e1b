// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/states"
)

// ClickFrame is a frame that handles pointer input as a unit, like a
// button, while laying out arbitrary child widgets. A click anywhere
// inside that no child consumes bubbles up and emits [events.Click]
// on the frame itself.
type ClickFrame struct {
	core.Frame
}

func (cf *ClickFrame) Init() {
	cf.Frame.Init()
	cf.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Activatable, abilities.Focusable, abilities.Hoverable)
		if !cf.IsDisabled() {
			s.Cursor = cursors.Pointer
		}
	})
	cf.HandleClickOnEnterSpace()
}

// ToggleFrame is a [ClickFrame] that toggles its checked state on
// each click and then sends [events.Change].
type ToggleFrame struct {
	ClickFrame
}

func (tf *ToggleFrame) Init() {
	tf.ClickFrame.Init()
	tf.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Checkable)
		if s.Is(states.Checked) {
			s.Background = colors.C(colors.Scheme.SurfaceVariant)
			s.Color = colors.C(colors.Scheme.OnSurfaceVariant)
		}
	})
	tf.OnFinal(events.Click, func(e events.Event) {
		if tf.IsReadOnly() {
			return
		}
		tf.NeedsRender()
		tf.SendChange(e)
	})
}

// IsChecked returns whether the frame is toggled on.
func (tf *ToggleFrame) IsChecked() bool {
	return tf.StateIs(states.Checked)
}

// SetChecked sets the toggled state directly, without
// sending any events.
func (tf *ToggleFrame) SetChecked(on bool) *ToggleFrame {
	tf.SetState(on, states.Checked)
	return tf
}

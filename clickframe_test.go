// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"testing"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"github.com/stretchr/testify/assert"
)

func TestClickFrame(t *testing.T) {
	b := core.NewBody()
	cf := NewClickFrame(b)
	core.NewText(cf).SetText("click me")
	clicks := 0
	cf.OnClick(func(e events.Event) { clicks++ })
	b.AssertRender(t, "clickframe/basic", func() {
		cf.Send(events.Click)
		cf.Send(events.Click)
		assert.Equal(t, 2, clicks)
	})
}

func TestToggleFrame(t *testing.T) {
	b := core.NewBody()
	tf := NewToggleFrame(b)
	core.NewText(tf).SetText("toggle me")
	changes := 0
	tf.OnChange(func(e events.Event) { changes++ })
	assert.False(t, tf.IsChecked())

	tf.SetChecked(true)
	assert.True(t, tf.IsChecked())
	assert.Equal(t, 0, changes)

	b.AssertRender(t, "clickframe/toggle", func() {
		tf.Send(events.Click)
		assert.False(t, tf.IsChecked())
		tf.Send(events.Click)
		assert.True(t, tf.IsChecked())
		assert.Equal(t, 2, changes)
	})
}

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

func TestIntField(t *testing.T) {
	b := core.NewBody()
	fld := NewIntField(b)
	assert.Equal(t, 0, fld.Value())
	assert.Equal(t, "0", fld.Text())
	assert.True(t, fld.TextState().IsGood())
	b.AssertRender(t, "intfield/basic")
}

func TestIntFieldValue(t *testing.T) {
	b := core.NewBody()
	fld := NewIntField(b).SetMin(-100).SetMax(1000000)
	fld.SetValue(987654)
	assert.Equal(t, "987,654", fld.Text())
	fld.SetValue(2000000)
	assert.Equal(t, 1000000, fld.Value())
	fld.SetValue(-500)
	assert.Equal(t, -100, fld.Value())
	b.AssertRender(t, "intfield/value")
}

func TestIntFieldRange(t *testing.T) {
	b := core.NewBody()
	fld := NewIntField(b).SetMax(10)
	fld.SetValue(7)
	fld.SetMin(8)
	assert.Equal(t, 8, fld.Value())
	fld.SetMax(20)
	fld.SetValue(15)
	fld.SetMax(12)
	assert.Equal(t, 12, fld.Value())

	fld.SetMin(30)
	assert.Equal(t, 8, fld.Min)
	fld.SetMax(5)
	assert.Equal(t, 12, fld.Max)
	b.AssertRender(t, "intfield/range")
}

func TestIntFieldChange(t *testing.T) {
	b := core.NewBody()
	fld := NewIntField(b).SetMax(5000)
	changes := 0
	fld.OnChange(func(e events.Event) { changes++ })
	b.AssertRender(t, "intfield/change", func() {
		fld.SetText("1234")
		fld.Send(events.Change)
		assert.Equal(t, 1234, fld.Value())
		assert.Equal(t, "1,234", fld.Text())
		assert.True(t, fld.TextState().IsGood())

		fld.SetText("9999")
		fld.Send(events.Change)
		assert.Equal(t, TextTooHigh, fld.TextState())
		assert.Equal(t, 1234, fld.Value())
		assert.Equal(t, "1,234", fld.Text())

		fld.SetText("-1")
		fld.Send(events.Change)
		assert.Equal(t, TextTooLow, fld.TextState())
		assert.Equal(t, 1234, fld.Value())

		fld.SetText("12totally")
		fld.Send(events.Change)
		assert.Equal(t, TextNotANumber, fld.TextState())
		assert.Equal(t, "1,234", fld.Text())

		assert.Equal(t, 4, changes)
	})
}

func TestIntFieldKeyFilter(t *testing.T) {
	b := core.NewBody()
	fld := NewIntField(b).SetMax(100)
	b.AssertRender(t, "intfield/key-filter", func() {
		fld.SetText("")
		fld.HandleEvent(events.NewKey(events.KeyChord, '4', 0, 0))
		fld.HandleEvent(events.NewKey(events.KeyChord, 'x', 0, 0))
		fld.HandleEvent(events.NewKey(events.KeyChord, '2', 0, 0))
		assert.Equal(t, "42", fld.Text())
		assert.Equal(t, 42, fld.Value())
	})
}

func TestIntFieldValidateText(t *testing.T) {
	b := core.NewBody()
	fld := NewIntField(b).SetMin(10).SetMax(2000)

	v, st := fld.ValidateText("1,234")
	assert.Equal(t, TextGood, st)
	assert.Equal(t, 1234, v)

	v, st = fld.ValidateText("+15")
	assert.Equal(t, TextGood, st)
	assert.Equal(t, 15, v)

	_, st = fld.ValidateText("3,000")
	assert.Equal(t, TextTooHigh, st)

	_, st = fld.ValidateText("5")
	assert.Equal(t, TextTooLow, st)

	_, st = fld.ValidateText("12.5")
	assert.Equal(t, TextNotANumber, st)

	_, st = fld.ValidateText("")
	assert.Equal(t, TextNotANumber, st)

	b.AssertRender(t, "intfield/validate-text")
}

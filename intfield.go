// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/styles"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TextStates classify the text of an [IntField]
// against its allowed range.
type TextStates int32 //enums:enum -trim-prefix Text

const (
	// TextGood indicates the text parses to a number within range.
	TextGood TextStates = iota

	// TextTooLow indicates the text parses to a number below the minimum.
	TextTooLow

	// TextTooHigh indicates the text parses to a number above the maximum.
	TextTooHigh

	// TextNotANumber indicates the text does not parse to a number at all.
	TextNotANumber
)

// IsGood returns whether the state is [TextGood].
func (ts TextStates) IsGood() bool {
	return ts == TextGood
}

// intGrouping formats integers with digit grouping for display.
var intGrouping = message.NewPrinter(language.English)

// IntField is a text field for editing a bounded integer value.
// Only characters that can appear in a number can be typed into it.
// When an edit is committed, the text is either normalized to the
// grouped rendering of the new value, or, if it does not parse to a
// number in range, reverted to the value the edit started from.
// [IntField.Value] always returns the last good value.
type IntField struct {
	core.TextField

	// Min is the smallest value the field accepts. Default is 0.
	// Set it with [IntField.SetMin], which clamps the current value.
	Min int `set:"-"`

	// Max is the largest value the field accepts.
	// Default is [math.MaxInt32].
	// Set it with [IntField.SetMax], which clamps the current value.
	Max int `set:"-"`

	// value is the last good value.
	value int

	// state is the validation result of the last committed edit.
	state TextStates
}

func (fld *IntField) Init() {
	fld.TextField.Init()
	fld.Max = math.MaxInt32
	fld.SetValue(0)
	fld.Styler(func(s *styles.Style) {
		s.VirtualKeyboard = styles.KeyboardNumber
		s.Text.Align = styles.End
		s.Min.X.Ch(5) // room for five digits
	})
	fld.OnFirst(events.KeyChord, func(e events.Event) {
		r := e.KeyRune()
		if !unicode.IsPrint(r) || e.HasAnyModifier(key.Control, key.Meta) {
			return
		}
		if !strings.ContainsRune("0123456789,.+-", r) {
			e.SetHandled()
		}
	})
	fld.OnFirst(events.Change, func(e events.Event) {
		v, st := fld.ValidateText(fld.Text())
		fld.state = st
		if st.IsGood() {
			fld.value = v
		}
		fld.SetText(fld.formatValue(fld.value))
	})
}

// Value returns the last good value. While the field is being edited,
// the text may not reflect it until the edit is committed.
func (fld *IntField) Value() int {
	return fld.value
}

// SetValue sets the current value, clamping it into the allowed range,
// and updates the text to its grouped rendering.
func (fld *IntField) SetValue(v int) *IntField {
	v = min(max(v, fld.Min), fld.Max)
	fld.value = v
	fld.state = TextGood
	fld.SetText(fld.formatValue(v))
	return fld
}

// SetMin sets the minimum value, clamping the current value up to it.
// A minimum above the current maximum is rejected.
func (fld *IntField) SetMin(minValue int) *IntField {
	if minValue > fld.Max {
		slog.Error("swingn.IntField.SetMin: min above max", "min", minValue, "max", fld.Max)
		return fld
	}
	fld.Min = minValue
	return fld.SetValue(max(fld.value, minValue))
}

// SetMax sets the maximum value, clamping the current value down to it.
// A maximum below the current minimum is rejected.
func (fld *IntField) SetMax(maxValue int) *IntField {
	if maxValue < fld.Min {
		slog.Error("swingn.IntField.SetMax: max below min", "max", maxValue, "min", fld.Min)
		return fld
	}
	fld.Max = maxValue
	return fld.SetValue(min(fld.value, maxValue))
}

// TextState returns the validation result of the last committed edit,
// [TextGood] if it committed a new value or no edit has happened yet.
func (fld *IntField) TextState() TextStates {
	return fld.state
}

// ValidateText classifies the given text against the current range.
// Digit grouping separators are ignored. The parsed value is returned
// with any state other than [TextNotANumber].
func (fld *IntField) ValidateText(text string) (int, TextStates) {
	v, err := strconv.Atoi(strings.ReplaceAll(text, ",", ""))
	switch {
	case err != nil:
		return 0, TextNotANumber
	case v < fld.Min:
		return v, TextTooLow
	case v > fld.Max:
		return v, TextTooHigh
	}
	return v, TextGood
}

func (fld *IntField) formatValue(v int) string {
	return intGrouping.Sprint(number.Decimal(v))
}

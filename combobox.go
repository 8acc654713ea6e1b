// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"log/slog"
	"slices"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
)

// ComboBox is a button that pops up a menu of text choices. Choosing
// from the menu selects that choice and sends an [events.Change]
// event. For fixed choices the button is stretched and its text
// reflects the current selection:
//
//	------------------------
//	| Button             v |
//	------------------------
//
// An editable combo box ([ComboBox.SetEditable]) puts a stretched
// text field before the button instead; menu selections update the
// field's text and leave the button alone:
//
//	---------------------------------------
//	|  Field                     | Button |
//	---------------------------------------
//
// [ItemBox] extends the combo box to associate a value with each
// choice.
type ComboBox struct {
	core.Frame

	// Button triggers the menu of choices.
	Button *core.Button `set:"-"`

	// Field is the text field of an editable combo box, or nil. Use
	// [ComboBox.SetEditable] to create it.
	Field *core.TextField `set:"-"`

	// IconInButton shows the icon of the selected choice in the
	// button, for choices added with icons.
	IconInButton bool

	// SelectedIndex is the index of the selected choice, or -1 if
	// there is no selection. It is updated by the menu and may be
	// set with [ComboBox.SelectIndex].
	SelectedIndex int `set:"-"`

	// choices are the menu choices, with their icons parallel.
	choices []string
	icons   []icons.Icon
}

func (cb *ComboBox) Init() {
	cb.Frame.Init()
	cb.SelectedIndex = -1
	cb.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
	})

	cb.Button = core.NewButton(cb).SetType(core.ButtonOutlined)
	cb.Button.SetMenu(cb.makeMenu)
	cb.Button.Styler(func(s *styles.Style) {
		if cb.Field == nil {
			s.Grow.Set(1, 0)
		} else {
			s.Grow.Set(0, 0)
		}
	})
}

// OnAdd sets the scene on widgets that were made before the combo
// box was added to a scene.
func (cb *ComboBox) OnAdd() {
	cb.Frame.OnAdd()
	cb.WidgetWalkDown(func(cw core.Widget, cwb *core.WidgetBase) bool {
		cwb.Scene = cb.Scene
		return tree.Continue
	})
}

// makeMenu fills the popup menu with the current choices, marking
// the selected one.
func (cb *ComboBox) makeMenu(m *core.Scene) {
	for i, choice := range cb.choices {
		bt := core.NewButton(m).SetText(choice)
		if ic := cb.icons[i]; ic.IsSet() {
			bt.SetIcon(ic)
		}
		if i == cb.SelectedIndex {
			bt.SetSelected(true)
		}
		bt.OnClick(func(e events.Event) {
			cb.selectAction(i)
		})
	}
}

// selectAction selects the given choice on behalf of the user and
// sends the change event.
func (cb *ComboBox) selectAction(idx int) {
	cb.SelectIndex(idx)
	cb.SendChange()
}

// SetEditable adds the edit field to the combo box, before the
// button. It does nothing if the combo box is already editable.
func (cb *ComboBox) SetEditable() *ComboBox {
	if cb.Field != nil {
		return cb
	}
	fld := core.NewTextField()
	fld.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 0)
	})
	cb.InsertChild(fld, 0)
	cb.Field = fld
	cb.Update()
	return cb
}

// IsEditable returns whether the combo box has an edit field.
func (cb *ComboBox) IsEditable() bool {
	return cb.Field != nil
}

// Text returns the text shown in the combo box: the field text when
// editable, the button text otherwise.
func (cb *ComboBox) Text() string {
	if cb.Field != nil {
		return cb.Field.Text()
	}
	return cb.Button.Text
}

// SelectedText returns the text of the selected choice, or "" if
// there is no selection.
func (cb *ComboBox) SelectedText() string {
	if cb.SelectedIndex < 0 {
		return ""
	}
	return cb.choices[cb.SelectedIndex]
}

// SelectIndex updates [ComboBox.SelectedIndex] to the given index
// and displays that choice in the field or button. An out of range
// index clears the selection and the displayed text.
func (cb *ComboBox) SelectIndex(idx int) {
	if idx < 0 || idx >= len(cb.choices) {
		idx = -1
	}
	cb.SelectedIndex = idx
	choice := cb.SelectedText()
	if cb.Field != nil {
		cb.Field.SetText(choice)
	} else {
		cb.Button.SetText(choice)
	}
	if cb.IconInButton {
		ic := icons.None
		if idx >= 0 {
			ic = cb.icons[idx]
		}
		cb.Button.SetIcon(ic)
	}
	cb.Button.Update()
}

// SelectText selects the choice with the given text. Selecting text
// that is not among the choices is an error; use [ComboBox.SelectIndex]
// with a negative index to clear the selection.
func (cb *ComboBox) SelectText(choice string) {
	idx := slices.Index(cb.choices, choice)
	if idx < 0 {
		slog.Error("swingn.ComboBox.SelectText: no such choice", "choice", choice)
		return
	}
	cb.SelectIndex(idx)
}

// AddChoice adds a new choice to the menu, optionally with an icon.
func (cb *ComboBox) AddChoice(choice string, icon ...icons.Icon) *ComboBox {
	ic := icons.None
	if len(icon) > 0 {
		ic = icon[0]
	}
	cb.choices = append(cb.choices, choice)
	cb.icons = append(cb.icons, ic)
	return cb
}

// AddChoices adds each of the given choices to the menu.
func (cb *ComboBox) AddChoices(choices ...string) *ComboBox {
	for _, choice := range choices {
		cb.AddChoice(choice)
	}
	return cb
}

// ChoiceCount returns the number of choices in the menu.
func (cb *ComboBox) ChoiceCount() int {
	return len(cb.choices)
}

// ChoiceAt returns the choice at the given index, or "" if the index
// is out of range.
func (cb *ComboBox) ChoiceAt(idx int) string {
	if idx < 0 || idx >= len(cb.choices) {
		return ""
	}
	return cb.choices[idx]
}

// Choices returns the choices in the menu. The returned slice must
// not be mutated.
func (cb *ComboBox) Choices() []string {
	return cb.choices
}

// RemoveChoice removes the choice at the given index from the menu.
// Removing the selected choice clears the selection.
func (cb *ComboBox) RemoveChoice(idx int) {
	if idx < 0 || idx >= len(cb.choices) {
		slog.Error("swingn.ComboBox.RemoveChoice: index out of range", "index", idx, "choices", len(cb.choices))
		return
	}
	cb.choices = slices.Delete(cb.choices, idx, idx+1)
	cb.icons = slices.Delete(cb.icons, idx, idx+1)
	if idx == cb.SelectedIndex {
		cb.SelectIndex(-1)
	} else if idx < cb.SelectedIndex {
		cb.SelectedIndex--
	}
}

// RemoveChoiceText removes the given choice from the menu. If the
// choice is not in the menu, it has no effect.
func (cb *ComboBox) RemoveChoiceText(choice string) {
	if idx := slices.Index(cb.choices, choice); idx >= 0 {
		cb.RemoveChoice(idx)
	}
}

// RemoveAllChoices removes all choices from the menu and clears the
// selection.
func (cb *ComboBox) RemoveAllChoices() {
	cb.choices = cb.choices[:0]
	cb.icons = cb.icons[:0]
	cb.SelectIndex(-1)
}

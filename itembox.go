// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"reflect"
	"slices"

	"cogentcore.org/core/base/labels"
	"cogentcore.org/core/icons"
)

// ItemBox is a [ComboBox] that associates a value with each choice,
// so that selections can be read back as the values themselves
// instead of their menu text.
type ItemBox struct {
	ComboBox

	// Labeller returns the choice text for an item. When nil, items
	// are stringified directly.
	Labeller func(item any) string

	// items holds the value per choice. Choices added without an
	// item hold nil.
	items []any
}

// label returns the choice text for the given item.
func (ib *ItemBox) label(item any) string {
	if ib.Labeller != nil {
		return ib.Labeller(item)
	}
	return labels.ToLabel(item)
}

// AddItem adds the given item as a choice, labelled by the labeller.
func (ib *ItemBox) AddItem(item any) *ItemBox {
	ib.items = append(ib.items, item)
	ib.ComboBox.AddChoice(ib.label(item))
	return ib
}

// AddItems adds each of the given items as choices.
func (ib *ItemBox) AddItems(items ...any) *ItemBox {
	for _, item := range items {
		ib.AddItem(item)
	}
	return ib
}

// AddChoice adds a plain text choice with no associated item,
// optionally with an icon.
func (ib *ItemBox) AddChoice(choice string, icon ...icons.Icon) *ItemBox {
	ib.items = append(ib.items, nil)
	ib.ComboBox.AddChoice(choice, icon...)
	return ib
}

// AddChoices adds each of the given texts as plain choices with no
// associated items.
func (ib *ItemBox) AddChoices(choices ...string) *ItemBox {
	for _, choice := range choices {
		ib.AddChoice(choice)
	}
	return ib
}

// ItemCount returns the number of items in the box.
func (ib *ItemBox) ItemCount() int {
	return len(ib.items)
}

// ItemAt returns the item at the given index, or nil if the index is
// out of range.
func (ib *ItemBox) ItemAt(idx int) any {
	if idx < 0 || idx >= len(ib.items) {
		return nil
	}
	return ib.items[idx]
}

// Items returns the items in the box. The returned slice must not be
// mutated.
func (ib *ItemBox) Items() []any {
	return ib.items
}

// IndexOf returns the index of the first item equal to the given
// item, or -1 if there is none.
func (ib *ItemBox) IndexOf(item any) int {
	return slices.IndexFunc(ib.items, func(x any) bool {
		return reflect.DeepEqual(x, item)
	})
}

// SelectedItem returns the item of the selected choice, or nil if
// there is no selection.
func (ib *ItemBox) SelectedItem() any {
	return ib.ItemAt(ib.SelectedIndex)
}

// SelectItem selects the choice associated with the given item. If
// the item was never added and the box is editable, its label is
// written into the edit field instead.
func (ib *ItemBox) SelectItem(item any) *ItemBox {
	idx := ib.IndexOf(item)
	if idx < 0 {
		if ib.Field != nil {
			ib.Field.SetText(ib.label(item))
		}
		return ib
	}
	ib.SelectIndex(idx)
	return ib
}

// RemoveItem removes the choice associated with the given item. If
// the item is not in the box, it has no effect.
func (ib *ItemBox) RemoveItem(item any) {
	if idx := ib.IndexOf(item); idx >= 0 {
		ib.RemoveChoice(idx)
	}
}

// RemoveChoice removes the choice and item at the given index; see
// [ComboBox.RemoveChoice].
func (ib *ItemBox) RemoveChoice(idx int) {
	if idx < 0 || idx >= len(ib.items) {
		ib.ComboBox.RemoveChoice(idx) // for the error log
		return
	}
	ib.items = slices.Delete(ib.items, idx, idx+1)
	ib.ComboBox.RemoveChoice(idx)
}

// RemoveChoiceText removes the given choice and its item from the
// menu; see [ComboBox.RemoveChoiceText].
func (ib *ItemBox) RemoveChoiceText(choice string) {
	if idx := slices.Index(ib.choices, choice); idx >= 0 {
		ib.RemoveChoice(idx)
	}
}

// RemoveAllChoices removes all choices and items from the box and
// clears the selection.
func (ib *ItemBox) RemoveAllChoices() {
	ib.items = ib.items[:0]
	ib.ComboBox.RemoveAllChoices()
}

// RemoveAllItems removes all choices and items from the box; it is
// the same as [ItemBox.RemoveAllChoices].
func (ib *ItemBox) RemoveAllItems() {
	ib.RemoveAllChoices()
}

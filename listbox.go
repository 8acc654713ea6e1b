// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"log/slog"
	"reflect"
	"slices"

	"cogentcore.org/core/base/labels"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
)

// ListRenderer renders [ListBox] items into child widgets.
type ListRenderer interface {

	// Render updates the widget showing the given item, reusing old
	// if it is non-nil. New widgets must be created under the list
	// box. It returns the widget for the item, usually old when that
	// was reusable.
	Render(lb *ListBox, old core.Widget, item any, idx int) core.Widget
}

// DefaultItems is the [ListRenderer] used where no other is set.
var DefaultItems ListRenderer = LabelItems{}

// LabelItems is the default [ListRenderer]. It renders each item as
// a [ToggleFrame] holding a text label, so that the selected item
// shows as checked.
type LabelItems struct {

	// Label returns the label text for an item. When nil, items are
	// stringified directly.
	Label func(item any) string
}

func (li LabelItems) Render(lb *ListBox, old core.Widget, item any, idx int) core.Widget {
	label := labels.ToLabel(item)
	if li.Label != nil {
		label = li.Label(item)
	}
	if tf, ok := old.(*ToggleFrame); ok {
		tf.Child(0).(*core.Text).SetText(label)
		return tf
	}
	tf := NewToggleFrame(lb)
	core.NewText(tf).SetText(label)
	return tf
}

// ListBox is a vertical list of widgets, one per item, with single
// selection. Items are rendered into child widgets by a
// [ListRenderer]; the default renders toggle frames with the item
// label. Contents are set directly with the item methods, or mirrored
// from a [ListModel] with [ListBox.ConnectModel].
//
// Scrolling is not handled here; set a list box as the content of a
// scrolling frame when the list can grow.
type ListBox struct {
	core.Frame

	// SelectedIndex is the index of the currently selected item, or
	// -1 if there is no selection. It is updated by clicks on the
	// item widgets and may be set with [ListBox.SelectIndex].
	SelectedIndex int `set:"-"`

	// renderer renders the items. Use [ListBox.SetRenderer].
	renderer ListRenderer

	// minWidth, when set, provides the minimum width style.
	minWidth units.Value

	// items holds the item per child widget, parallel to Children.
	items []any

	// model is the connected list model, or nil.
	model ListModel

	// disconnect unbinds applyChange from the model.
	disconnect func()
}

func (lb *ListBox) Init() {
	lb.Frame.Init()
	lb.SelectedIndex = -1
	lb.renderer = DefaultItems
	lb.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Gap.Zero()
		if lb.minWidth.Value > 0 {
			s.Min.X = lb.minWidth
		}
	})
}

// OnAdd sets the scene on item widgets that were rendered before the
// list box was added to a scene.
func (lb *ListBox) OnAdd() {
	lb.Frame.OnAdd()
	lb.WidgetWalkDown(func(cw core.Widget, cwb *core.WidgetBase) bool {
		cwb.Scene = lb.Scene
		return tree.Continue
	})
}

func (lb *ListBox) Destroy() {
	lb.DisconnectModel()
	lb.Frame.Destroy()
}

// SetRenderer sets the renderer producing the item widgets and
// re-renders all items with it. A nil renderer restores the default.
func (lb *ListBox) SetRenderer(r ListRenderer) *ListBox {
	if r == nil {
		r = DefaultItems
	}
	lb.renderer = r
	for idx, item := range lb.items {
		lb.renderItem(idx, item)
	}
	lb.Update()
	return lb
}

// SetMinWidth provides a minimum width to be used when laying out
// the list box.
func (lb *ListBox) SetMinWidth(w units.Value) *ListBox {
	lb.minWidth = w
	lb.Update()
	return lb
}

// ItemCount returns the number of items in the list.
func (lb *ListBox) ItemCount() int {
	return len(lb.items)
}

// ItemAt returns the item at the given index, or nil if the index is
// out of range.
func (lb *ListBox) ItemAt(idx int) any {
	if idx < 0 || idx >= len(lb.items) {
		return nil
	}
	return lb.items[idx]
}

// IndexOf returns the index of the first item equal to the given
// item, or -1 if there is none.
func (lb *ListBox) IndexOf(item any) int {
	return slices.IndexFunc(lb.items, func(x any) bool {
		return reflect.DeepEqual(x, item)
	})
}

// Items returns the items in the list. The returned slice must not
// be mutated.
func (lb *ListBox) Items() []any {
	return lb.items
}

// SelectedItem returns the currently selected item, or nil if there
// is no selection.
func (lb *ListBox) SelectedItem() any {
	return lb.ItemAt(lb.SelectedIndex)
}

// SetItems replaces the contents of the list with the given items.
func (lb *ListBox) SetItems(items ...any) *ListBox {
	if !lb.mutable("SetItems") {
		return lb
	}
	lb.setAll(items...)
	lb.Update()
	return lb
}

// AddItem adds an item to the end of the list.
func (lb *ListBox) AddItem(item any) *ListBox {
	return lb.InsertItem(len(lb.items), item)
}

// InsertItem inserts an item at the given index.
func (lb *ListBox) InsertItem(idx int, item any) *ListBox {
	if !lb.mutable("InsertItem") {
		return lb
	}
	if idx < 0 || idx > len(lb.items) {
		slog.Error("swingn.ListBox.InsertItem: index out of range", "index", idx, "items", len(lb.items))
		return lb
	}
	lb.insertAt(idx, item)
	lb.Update()
	return lb
}

// RemoveItemAt removes the item at the given index. Removing the
// selected item clears the selection.
func (lb *ListBox) RemoveItemAt(idx int) {
	if !lb.mutable("RemoveItemAt") {
		return
	}
	if idx < 0 || idx >= len(lb.items) {
		slog.Error("swingn.ListBox.RemoveItemAt: index out of range", "index", idx, "items", len(lb.items))
		return
	}
	lb.removeAt(idx)
	lb.Update()
}

// RemoveItem removes the first item equal to the given item,
// returning whether one was present.
func (lb *ListBox) RemoveItem(item any) bool {
	if !lb.mutable("RemoveItem") {
		return false
	}
	idx := lb.IndexOf(item)
	if idx < 0 {
		return false
	}
	lb.removeAt(idx)
	lb.Update()
	return true
}

// Clear removes all items from the list.
func (lb *ListBox) Clear() {
	if !lb.mutable("Clear") {
		return
	}
	lb.setAll()
	lb.Update()
}

// SelectIndex updates [ListBox.SelectedIndex] to the given index,
// updating the check or selection state of the affected item widgets
// and sending an [events.Select] event. An out of range index clears
// the selection.
func (lb *ListBox) SelectIndex(idx int) {
	if idx < 0 || idx >= len(lb.items) {
		idx = -1
	}
	if idx == lb.SelectedIndex {
		return
	}
	if old := lb.itemWidget(lb.SelectedIndex); old != nil {
		lb.markSelected(old, false)
	}
	lb.SelectedIndex = idx
	if w := lb.itemWidget(idx); w != nil {
		lb.markSelected(w, true)
	}
	lb.Send(events.Select)
	lb.NeedsRender()
}

// SelectItem selects the first item equal to the given item, or
// clears the selection if there is none.
func (lb *ListBox) SelectItem(item any) {
	lb.SelectIndex(lb.IndexOf(item))
}

// ClearSelection clears the selection; see [ListBox.SelectIndex].
func (lb *ListBox) ClearSelection() {
	lb.SelectIndex(-1)
}

// BindSelect binds the list box's selected index to the given value.
// It will send an [events.Change] event when the user changes the
// selection.
func (lb *ListBox) BindSelect(val *int) *ListBox {
	lb.OnSelect(func(e events.Event) {
		*val = lb.SelectedIndex
		lb.SendChange(e)
	})
	return lb
}

// ConnectModel sets up the list box to mirror the contents of the
// given model, applying its change events incrementally. While a
// model is connected the direct item mutators are disabled; mutate
// the model instead. A nil model only disconnects, leaving the
// current items in place.
func (lb *ListBox) ConnectModel(m ListModel) *ListBox {
	lb.DisconnectModel()
	if m == nil {
		return lb
	}
	items := make([]any, m.Len())
	for idx := range items {
		items[idx] = m.At(idx)
	}
	lb.setAll(items...)
	lb.model = m
	lb.disconnect = m.OnChange(lb.applyChange)
	lb.Update()
	return lb
}

// DisconnectModel stops mirroring the connected model, if any.
func (lb *ListBox) DisconnectModel() {
	if lb.disconnect != nil {
		lb.disconnect()
		lb.disconnect = nil
	}
	lb.model = nil
}

// applyChange applies one model change event to the list.
func (lb *ListBox) applyChange(e ListModelEvent) {
	if lb.This == nil {
		if lb.disconnect != nil {
			lb.disconnect()
			lb.disconnect = nil
		}
		return
	}
	switch e.Type {
	case ContentsChanged:
		for idx := e.First; idx <= e.Last; idx++ {
			lb.renderItem(idx, lb.model.At(idx))
		}
	case IntervalAdded:
		for idx := e.First; idx <= e.Last; idx++ {
			lb.insertAt(idx, lb.model.At(idx))
		}
	case IntervalRemoved:
		for idx := e.Last; idx >= e.First; idx-- {
			lb.removeAt(idx)
		}
	}
	lb.Update()
}

// mutable returns whether direct item mutation is allowed, logging
// an error when a model is connected.
func (lb *ListBox) mutable(op string) bool {
	if lb.model != nil {
		slog.Error("swingn.ListBox." + op + ": items are managed by the connected model; mutate the model instead")
		return false
	}
	return true
}

// setAll replaces all item widgets, clearing any selection.
func (lb *ListBox) setAll(items ...any) {
	lb.SelectIndex(-1)
	lb.DeleteChildren()
	lb.items = lb.items[:0]
	for _, item := range items {
		lb.insertAt(len(lb.items), item)
	}
}

// insertAt renders the given item and inserts its widget at the
// given index, shifting the selection as needed.
func (lb *ListBox) insertAt(idx int, item any) {
	w := lb.renderer.Render(lb, nil, item, idx)
	lb.hookItem(w)
	lb.items = slices.Insert(lb.items, idx, item)
	// the new widget was appended; move it into its slot
	if last := lb.NumChildren() - 1; last > idx {
		kid := lb.Children[last]
		lb.Children = slices.Delete(lb.Children, last, last+1)
		lb.Children = slices.Insert(lb.Children, idx, kid)
	}
	if lb.SelectedIndex >= idx {
		lb.SelectedIndex++
	}
}

// removeAt removes the item and widget at the given index. Removing
// the selected item clears the selection; removing an earlier item
// shifts it.
func (lb *ListBox) removeAt(idx int) {
	if idx == lb.SelectedIndex {
		lb.SelectIndex(-1)
	} else if lb.SelectedIndex > idx {
		lb.SelectedIndex--
	}
	lb.DeleteChildAt(idx)
	lb.items = slices.Delete(lb.items, idx, idx+1)
}

// renderItem re-renders the item at the given index in place,
// replacing the widget if the renderer makes a new one.
func (lb *ListBox) renderItem(idx int, item any) {
	old := lb.Child(idx).(core.Widget)
	lb.items[idx] = item
	w := lb.renderer.Render(lb, old, item, idx)
	if w == old {
		return
	}
	lb.hookItem(w)
	lb.DeleteChildAt(idx)
	if last := lb.NumChildren() - 1; last > idx {
		kid := lb.Children[last]
		lb.Children = slices.Delete(lb.Children, last, last+1)
		lb.Children = slices.Insert(lb.Children, idx, kid)
	}
	if lb.SelectedIndex == idx {
		lb.markSelected(w, true)
	}
}

// hookItem connects clicks on an item widget to the selection. The
// handler runs after the event system has toggled any checkable
// state, so a checkable item that toggled off deselects.
func (lb *ListBox) hookItem(w core.Widget) {
	wb := w.AsWidget()
	wb.OnFinal(events.Click, func(e events.Event) {
		idx := wb.IndexInParent()
		if wb.Styles.AbilityIs(abilities.Checkable) && !wb.StateIs(states.Checked) {
			if idx == lb.SelectedIndex {
				lb.SelectIndex(-1)
			}
			return
		}
		lb.SelectIndex(idx)
	})
}

// markSelected shows an item widget as selected. Checkable widgets
// use their checked state, everything else the selected state.
func (lb *ListBox) markSelected(w core.Widget, on bool) {
	wb := w.AsWidget()
	if wb.Styles.AbilityIs(abilities.Checkable) {
		wb.SetState(on, states.Checked)
	} else {
		wb.SetState(on, states.Selected)
	}
	wb.Restyle()
}

// itemWidget returns the item widget at the given index, or nil if
// the index is out of range.
func (lb *ListBox) itemWidget(idx int) core.Widget {
	if idx < 0 || idx >= lb.NumChildren() {
		return nil
	}
	return lb.Child(idx).(core.Widget)
}

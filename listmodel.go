// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swingn provides swing-like interactive widgets (combo box,
// table, list box, progress bar, rich tooltips, numeric text field)
// composed on top of the Cogent Core scene graph. All layout, styling,
// hit testing, and popup layering is delegated to the host toolkit;
// this package only adds the widget semantics.
package swingn

//go:generate core generate

import "slices"

// ListModel is an abstraction over the items shown in a [ListBox]
// and the propagation of changes to those items. Implementations
// typically embed [BaseListModel], which provides the listener
// bookkeeping and the event firing helpers.
type ListModel interface {

	// Len returns the current number of items in the model.
	Len() int

	// At returns the item at the given index.
	At(index int) any

	// OnChange registers the given function to be called whenever
	// the model contents change. The returned function removes the
	// listener again.
	OnChange(fun func(e ListModelEvent)) func()
}

// ListModelChanges are the ways in which the contents
// of a [ListModel] can change.
type ListModelChanges int32 //enums:enum

const (
	// ContentsChanged indicates that items within the event interval
	// were replaced or updated in place.
	ContentsChanged ListModelChanges = iota

	// IntervalAdded indicates that new items were inserted at the
	// event interval. Indices reflect the state after the insertion.
	IntervalAdded

	// IntervalRemoved indicates that the items in the event interval
	// were removed. Indices reflect the state before the removal.
	IntervalRemoved
)

// ListModelEvent describes one change to a [ListModel].
// The interval [First, Last] is inclusive.
type ListModelEvent struct {

	// Type is the kind of change that occurred.
	Type ListModelChanges

	// First is the first index affected by the change.
	First int

	// Last is the last index affected by the change (inclusive).
	Last int
}

// BaseListModel partially implements [ListModel], providing the change
// listeners and helper methods for firing events on them. The data
// access methods are left to the embedding type.
type BaseListModel struct {
	// change listeners, called in registration order.
	listeners []func(e ListModelEvent)
}

func (bm *BaseListModel) OnChange(fun func(e ListModelEvent)) func() {
	bm.listeners = append(bm.listeners, fun)
	idx := len(bm.listeners) - 1
	return func() {
		bm.listeners[idx] = nil
	}
}

// Changed fires a [ContentsChanged] event for the inclusive interval.
func (bm *BaseListModel) Changed(first, last int) {
	bm.send(ListModelEvent{ContentsChanged, first, last})
}

// Added fires an [IntervalAdded] event for the inclusive interval.
func (bm *BaseListModel) Added(first, last int) {
	bm.send(ListModelEvent{IntervalAdded, first, last})
}

// Removed fires an [IntervalRemoved] event for the inclusive interval.
func (bm *BaseListModel) Removed(first, last int) {
	bm.send(ListModelEvent{IntervalRemoved, first, last})
}

func (bm *BaseListModel) send(e ListModelEvent) {
	for _, fun := range bm.listeners {
		if fun != nil {
			fun(e)
		}
	}
}

// SliceListModel is a [ListModel] backed by a slice. All mutations
// fire the corresponding change events.
type SliceListModel[T comparable] struct {
	BaseListModel

	list []T
}

// NewSliceListModel returns a new [SliceListModel]
// containing the given items.
func NewSliceListModel[T comparable](items ...T) *SliceListModel[T] {
	return &SliceListModel[T]{list: slices.Clone(items)}
}

func (sm *SliceListModel[T]) Len() int {
	return len(sm.list)
}

func (sm *SliceListModel[T]) At(index int) any {
	return sm.list[index]
}

// Item returns the item at the given index with its concrete type.
func (sm *SliceListModel[T]) Item(index int) T {
	return sm.list[index]
}

// Items returns the backing slice. It must not be mutated directly;
// use the model methods so that change events fire.
func (sm *SliceListModel[T]) Items() []T {
	return sm.list
}

// IndexOf returns the index of the first occurrence of the given
// item, or -1 if it is not in the model.
func (sm *SliceListModel[T]) IndexOf(item T) int {
	return slices.Index(sm.list, item)
}

// Append adds the given items to the end of the model.
func (sm *SliceListModel[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	sz := len(sm.list)
	sm.list = append(sm.list, items...)
	sm.Added(sz, len(sm.list)-1)
}

// Insert inserts the given item at the given index.
func (sm *SliceListModel[T]) Insert(index int, item T) {
	sm.list = slices.Insert(sm.list, index, item)
	sm.Added(index, index)
}

// Set replaces the item at the given index.
func (sm *SliceListModel[T]) Set(index int, item T) {
	sm.list[index] = item
	sm.Changed(index, index)
}

// DeleteAt removes the item at the given index.
func (sm *SliceListModel[T]) DeleteAt(index int) {
	sm.list = slices.Delete(sm.list, index, index+1)
	sm.Removed(index, index)
}

// Delete removes the first occurrence of the given item,
// returning whether it was present.
func (sm *SliceListModel[T]) Delete(item T) bool {
	idx := sm.IndexOf(item)
	if idx < 0 {
		return false
	}
	sm.DeleteAt(idx)
	return true
}

// Clear removes all items from the model.
func (sm *SliceListModel[T]) Clear() {
	sz := len(sm.list)
	if sz == 0 {
		return
	}
	sm.list = sm.list[:0]
	sm.Removed(0, sz-1)
}

// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceListModel(t *testing.T) {
	sm := NewSliceListModel("a", "b", "c")
	assert.Equal(t, 3, sm.Len())
	assert.Equal(t, "b", sm.Item(1))
	assert.Equal(t, any("c"), sm.At(2))
	assert.Equal(t, 2, sm.IndexOf("c"))
	assert.Equal(t, -1, sm.IndexOf("d"))
}

func TestSliceListModelEvents(t *testing.T) {
	sm := NewSliceListModel[string]()
	var events []ListModelEvent
	sm.OnChange(func(e ListModelEvent) {
		events = append(events, e)
	})

	sm.Append("a", "b")
	assert.Equal(t, []ListModelEvent{{IntervalAdded, 0, 1}}, events)

	events = nil
	sm.Insert(1, "c")
	assert.Equal(t, []string{"a", "c", "b"}, sm.Items())
	assert.Equal(t, []ListModelEvent{{IntervalAdded, 1, 1}}, events)

	events = nil
	sm.Set(0, "z")
	assert.Equal(t, []ListModelEvent{{ContentsChanged, 0, 0}}, events)

	events = nil
	sm.DeleteAt(1)
	assert.Equal(t, []string{"z", "b"}, sm.Items())
	assert.Equal(t, []ListModelEvent{{IntervalRemoved, 1, 1}}, events)

	events = nil
	assert.True(t, sm.Delete("z"))
	assert.False(t, sm.Delete("missing"))
	assert.Equal(t, []ListModelEvent{{IntervalRemoved, 0, 0}}, events)

	events = nil
	sm.Clear()
	assert.Equal(t, 0, sm.Len())
	assert.Equal(t, []ListModelEvent{{IntervalRemoved, 0, 0}}, events)

	events = nil
	sm.Clear()
	sm.Append()
	assert.Empty(t, events)
}

func TestListModelListeners(t *testing.T) {
	sm := NewSliceListModel(1, 2, 3)
	first := 0
	second := 0
	off := sm.OnChange(func(e ListModelEvent) { first++ })
	sm.OnChange(func(e ListModelEvent) { second++ })
	sm.Append(4)
	sm.DeleteAt(0)
	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)

	off()
	sm.Append(5)
	assert.Equal(t, 2, first)
	assert.Equal(t, 3, second)
}

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

// viewModel returns an editable three column model for view tests.
func viewModel() *rowsModel {
	return newRowsModel([]string{"name", "count", "cost"},
		[]any{"apples", 4, 12},
		[]any{"pears", 2, 30},
		[]any{"plums", 11, 5},
	)
}

func cellText(t *testing.T, tv *TableView, row, col int) string {
	txt, ok := tv.Row(row).Child(col).(*core.Text)
	if !assert.True(t, ok, "cell %d,%d is not a text", row, col) {
		return ""
	}
	return txt.Text
}

func headerText(t *testing.T, tv *TableView, col int) string {
	cf, ok := tv.Header.Child(col).(*ClickFrame)
	if !assert.True(t, ok, "header %d is not a click frame", col) {
		return ""
	}
	return cf.Child(0).(*core.Text).Text
}

func TestTableView(t *testing.T) {
	b := core.NewBody()
	m := viewModel()
	tv := NewTableView(b).SetModel(m)

	assert.Equal(t, 3, tv.ViewColumnCount())
	assert.Equal(t, 3, tv.ColumnCount())
	assert.Equal(t, 3, tv.RowCount())
	assert.Equal(t, "name", headerText(t, tv, 0))
	assert.Equal(t, "cost", headerText(t, tv, 2))
	assert.Equal(t, "apples", cellText(t, tv, 0, 0))
	assert.Equal(t, "11", cellText(t, tv, 2, 1))
	b.AssertRender(t, "tableview/basic")
}

func TestTableViewModelChanges(t *testing.T) {
	b := core.NewBody()
	m := viewModel()
	tv := NewTableView(b).SetModel(m)
	b.AssertRender(t, "tableview/model-changes", func() {
		m.addRow("grapes", 40, 3)
		assert.Equal(t, 4, tv.RowCount())
		assert.Equal(t, "grapes", cellText(t, tv, 3, 0))

		m.deleteRow(0)
		assert.Equal(t, 3, tv.RowCount())
		assert.Equal(t, "pears", cellText(t, tv, 0, 0))

		m.SetValue(25, 0, 1)
		assert.Equal(t, "25", cellText(t, tv, 0, 1))

		m.rows[1][0] = "prunes"
		m.AllChanged()
		assert.Equal(t, "prunes", cellText(t, tv, 1, 0))

		m.names = append(m.names, "origin")
		for i := range m.rows {
			m.rows[i] = append(m.rows[i], "here")
		}
		m.StructureChanged()
		assert.Equal(t, 4, tv.ViewColumnCount())
		assert.Equal(t, "origin", headerText(t, tv, 3))
		assert.Equal(t, "here", cellText(t, tv, 2, 3))
	})
}

func TestTableViewEditors(t *testing.T) {
	b := core.NewBody()
	m := viewModel()
	tv := NewTableView(b).SetModel(m)
	tv.SetColumnRenderer(1, EditorCell{Max: 1000})

	fld, ok := tv.Row(0).Child(1).(*IntField)
	assert.True(t, ok)
	assert.Equal(t, 4, fld.Value())
	assert.False(t, fld.IsReadOnly())

	b.AssertRender(t, "tableview/editors", func() {
		fld.SetText("250")
		fld.Send(events.Change)
		assert.Equal(t, 250, m.Value(0, 1))
		assert.Equal(t, 250, fld.Value())
	})
}

func TestTableViewHideColumn(t *testing.T) {
	b := core.NewBody()
	m := viewModel()
	tv := NewTableView(b).SetModel(m)

	tv.HideColumn(1)
	assert.Equal(t, 2, tv.ViewColumnCount())
	assert.Equal(t, 2, tv.ColumnCount())
	assert.Equal(t, "cost", headerText(t, tv, 1))
	assert.Equal(t, "12", cellText(t, tv, 0, 1))

	// updates to the hidden model column change nothing visible
	m.SetValue(9000, 0, 1)
	assert.Equal(t, "apples", cellText(t, tv, 0, 0))
	assert.Equal(t, "12", cellText(t, tv, 0, 1))

	// later model columns still map onto their shifted view columns
	m.SetValue(13, 0, 2)
	assert.Equal(t, "13", cellText(t, tv, 0, 1))

	// editors commit through the mapping as well
	tv.SetColumnRenderer(1, EditorCell{Max: 1000})
	fld := tv.Row(1).Child(1).(*IntField)
	assert.Equal(t, 30, fld.Value())
	b.AssertRender(t, "tableview/hide-column", func() {
		fld.SetText("600")
		fld.Send(events.Change)
		assert.Equal(t, 600, m.Value(1, 2))
		assert.Equal(t, 2, m.Value(1, 1))
	})
}

func TestTableViewRenderers(t *testing.T) {
	b := core.NewBody()
	m := viewModel()
	tv := NewTableView(b).SetModel(m)

	assert.Equal(t, DefaultCell, tv.ColumnRenderer(0))
	tv.SetDefaultRenderer(EditorCell{Max: 99})
	_, ok := tv.Row(0).Child(0).(*IntField)
	assert.True(t, ok, "default renderer change re-renders all columns")

	tv.SetColumnRenderer(0, TextCell{})
	assert.Equal(t, "apples", cellText(t, tv, 0, 0))
	tv.SetColumnRenderer(0, nil)
	_, ok = tv.Row(0).Child(0).(*IntField)
	assert.True(t, ok, "nil renderer reverts to the default")
	b.AssertRender(t, "tableview/renderers")
}

func TestTableViewRowUpdater(t *testing.T) {
	b := core.NewBody()
	m := viewModel()
	var updated []int
	tv := NewTableView(b)
	tv.RowUpdater = func(tv *TableView, row *TableRow, idx int) {
		updated = append(updated, idx)
	}
	tv.SetModel(m)
	assert.Equal(t, []int{0, 1, 2}, updated)

	updated = nil
	m.addRow("grapes", 40, 3)
	assert.Equal(t, []int{3}, updated)
	b.AssertRender(t, "tableview/row-updater")
}

func TestTableViewSelectRowLater(t *testing.T) {
	b := core.NewBody()
	m := viewModel()
	tv := NewTableView(b)
	tv.SelectRowLater(2)
	assert.Equal(t, -1, tv.SelectedRow)
	tv.SetModel(m)
	assert.Equal(t, 2, tv.SelectedRow)

	tv.SelectRowLater(0)
	assert.Equal(t, 0, tv.SelectedRow)

	tv.SelectRowLater(5)
	assert.Equal(t, 0, tv.SelectedRow)
	m.addRow("f", 1, 1)
	m.addRow("g", 2, 2)
	m.addRow("h", 3, 3)
	assert.Equal(t, 5, tv.SelectedRow)
	b.AssertRender(t, "tableview/select-later")
}

func TestTableViewDisconnect(t *testing.T) {
	b := core.NewBody()
	m := viewModel()
	tv := NewTableView(b).SetModel(m)
	live := func() int {
		n := 0
		for _, f := range m.listeners {
			if f != nil {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, live())

	b.AssertRender(t, "tableview/disconnect", func() {
		tv.Delete()
		assert.Equal(t, 0, live())
		m.addRow("still", 1, 2)
	})
}

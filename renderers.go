// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"math"

	"cogentcore.org/core/base/labels"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
)

// CellRenderer renders the values of one or more [TableView] columns
// into cell widgets, and optionally pops up tips for them. All row
// and column indexes a renderer sees are view coordinates; hidden
// columns are already mapped away.
type CellRenderer interface {

	// Render updates the cell widget showing the given value at the
	// given cell, reusing old if it is non-nil. New widgets must be
	// created under parent. It returns the widget for the cell,
	// usually old when that was reusable.
	Render(tv *TableView, parent, old core.Widget, value any, row, col int) core.Widget

	// Tip returns the tip text to pop up when the given cell is
	// clicked, or "" for none.
	Tip(tv *TableView, value any, row, col int) string
}

// HeaderRenderer renders the header widgets of [TableView] columns.
type HeaderRenderer interface {

	// RenderHeader returns a new widget under parent displaying the
	// header of the given view column.
	RenderHeader(tv *TableView, parent core.Widget, name string, col int) core.Widget
}

// RowUpdater adjusts a whole row after its cells have been rendered,
// for example to restyle it from row-level data.
type RowUpdater func(tv *TableView, row *TableRow, idx int)

// DefaultCell is the [CellRenderer] used where no other is set.
var DefaultCell CellRenderer = TextCell{}

// DefaultHeader is the [HeaderRenderer] used where no other is set.
var DefaultHeader HeaderRenderer = TextHeader{}

// ShortEditor is an [EditorCell] for small quantities, up to 32767.
var ShortEditor = EditorCell{Max: math.MaxInt16}

// TextCell is the default [CellRenderer]. It renders every value as
// a text label and pops no tips.
type TextCell struct{}

func (tc TextCell) Render(tv *TableView, parent, old core.Widget, value any, row, col int) core.Widget {
	txt, ok := old.(*core.Text)
	if !ok {
		txt = core.NewText(parent)
	}
	txt.SetText(labels.ToLabel(value))
	return txt
}

func (tc TextCell) Tip(tv *TableView, value any, row, col int) string {
	return ""
}

// TextHeader is the default [HeaderRenderer], showing the column
// name as plain body text.
type TextHeader struct{}

func (th TextHeader) RenderHeader(tv *TableView, parent core.Widget, name string, col int) core.Widget {
	return core.NewText(parent).SetType(core.TextBodyMedium).SetText(name)
}

// EditorCell is a [CellRenderer] that renders cells as [IntField]s
// for editing bounded integer values. Every change a field commits
// is written back to the model through [TableView.CommitCell]. Cells
// the model reports uneditable render read-only. Max must be set;
// the zero value accepts only zero.
type EditorCell struct {

	// Min and Max bound the editable values.
	Min, Max int
}

func (ec EditorCell) Render(tv *TableView, parent, old core.Widget, value any, row, col int) core.Widget {
	fld, ok := old.(*IntField)
	if !ok {
		fld = NewIntField(parent).SetMin(ec.Min).SetMax(ec.Max)
		fld.OnChange(func(e events.Event) {
			tv.CommitCell(fld, fld.Value())
		})
	}
	iv, _ := reflectx.ToInt(value)
	fld.SetValue(int(iv))
	fld.SetReadOnly(!tv.IsCellEditable(row, col))
	return fld
}

func (ec EditorCell) Tip(tv *TableView, value any, row, col int) string {
	return ""
}

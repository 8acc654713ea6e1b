// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
)

// Table is a widget for displaying other widgets in a columnar layout.
// It has a header row of widgets at the top and a vertically scrolling
// group of rows below it. Each column is configured with a [Column],
// which determines how the width of the column is computed and how the
// cells in it are aligned.
//
// Table does not adapt directly to a [TableModel]; it is fairly simple
// and may be used without any reference to models, like a [core.Frame].
// If a model connection is desired, one can be hooked up using a
// [TableView].
type Table struct {
	core.Frame

	// Header is the row of widgets across the top of the table.
	// Its cells are managed by [Table.AddColumn] and friends.
	Header *TableRow `set:"-"`

	// SelectedRow is the index of the currently selected row, or -1 if
	// no row is selected. It is updated by click events within the row
	// area and may be set directly with [Table.SelectRow].
	SelectedRow int `set:"-"`

	// RowAlign is the vertical alignment of cells within their row.
	RowAlign styles.Aligns

	// GridColor is the color used to draw grid lines between the rows
	// and columns of the table. If it is nil, no grid lines are drawn.
	GridColor image.Image

	// RowGap is the vertical gap between rows, and between the header
	// and the first row. The table background shows through the gaps.
	// Call [core.WidgetBase.Update] after changing this on a live table.
	RowGap units.Value

	// ColumnGap is the horizontal gap between columns.
	// Call [core.WidgetBase.Update] after changing this on a live table.
	ColumnGap units.Value

	// columns is the layout configuration for each column.
	columns []Column

	// widths is the column widths solved during the last layout pass.
	widths []float32

	// rows contains the table rows and draws the grid lines.
	rows *tableRows

	// allowSelect is whether clicks update SelectedRow.
	allowSelect bool
}

func (tb *Table) Init() {
	tb.Frame.Init()
	tb.SelectedRow = -1
	tb.RowAlign = styles.Center
	tb.allowSelect = true

	tb.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Clickable)
		s.Direction = styles.Column
		s.Gap.Y = tb.RowGap
		s.Grow.Set(1, 1)
	})
	tb.OnClick(func(e events.Event) {
		if !tb.allowSelect {
			return
		}
		if !e.Pos().In(tb.rows.Geom.TotalBBox) {
			return
		}
		tb.SelectRow(tb.RowForPos(e.Pos()))
	})

	tb.Header = NewTableRow(tb)
	tb.Header.SetName("header")
	tb.Header.table = tb
	tb.Header.header = true

	tb.rows = tree.New[*tableRows](tb)
	tb.rows.SetName("rows")
	tb.rows.table = tb
}

// OnAdd sets the scene on the header and row widgets, which are
// constructed before the table has a scene.
func (tb *Table) OnAdd() {
	tb.Frame.OnAdd()
	tb.WidgetWalkDown(func(cw core.Widget, cwb *core.WidgetBase) bool {
		cwb.Scene = tb.Scene
		return tree.Continue
	})
}

// AddColumn adds a new column with the given configuration and header
// widget. The caller must ensure that all table rows are updated such
// that each has the correct number of cells; [Table.AddColumnCells]
// does this in one step.
func (tb *Table) AddColumn(col Column, header core.Widget) *Table {
	return tb.InsertColumn(col, len(tb.columns), header)
}

// InsertColumn inserts a new column with the given configuration and
// header widget at the given index. The caller must ensure that all
// table rows are updated such that each has the correct number of
// cells; [Table.InsertColumnCells] does this in one step.
func (tb *Table) InsertColumn(col Column, idx int, header core.Widget) *Table {
	tb.columns = slices.Insert(tb.columns, idx, col)
	tb.Header.InsertChild(header, idx)
	tb.NeedsLayout()
	return tb
}

// AddColumnCells adds a new column with the given configuration,
// setting up the header and rows with the given cells. The first cell
// is the header widget, followed by one cell per row.
func (tb *Table) AddColumnCells(col Column, cells ...core.Widget) {
	tb.InsertColumnCells(col, len(tb.columns), cells...)
}

// InsertColumnCells inserts a new column with the given configuration
// at the given index, setting up the header and rows with the given
// cells. The first cell is the header widget, followed by one cell per
// row. If the number of cells does not match, an error is logged and
// nothing is changed.
func (tb *Table) InsertColumnCells(col Column, idx int, cells ...core.Widget) {
	nr := tb.RowCount()
	if len(cells)-1 != nr {
		slog.Error("swingn.Table.InsertColumnCells: cell count does not match rows", "cells", len(cells), "need", nr+1)
		return
	}
	tb.InsertColumn(col, idx, cells[0])
	for r := 0; r < nr; r++ {
		tb.Row(r).InsertChild(cells[r+1], idx)
	}
}

// DeleteColumn removes the column at the given index from the table,
// destroying the associated widgets in the header and rows.
func (tb *Table) DeleteColumn(idx int) {
	if idx < 0 || idx >= len(tb.columns) {
		return
	}
	tb.Header.DeleteChildAt(idx)
	for r := 0; r < tb.RowCount(); r++ {
		tb.Row(r).DeleteChildAt(idx)
	}
	tb.columns = slices.Delete(tb.columns, idx, idx+1)
	tb.NeedsLayout()
}

// SetColumn replaces the configuration of the column at the given index.
func (tb *Table) SetColumn(idx int, col Column) {
	if idx < 0 || idx >= len(tb.columns) {
		return
	}
	tb.columns[idx] = col
	tb.NeedsLayout()
}

// Columns returns a copy of the column configurations.
func (tb *Table) Columns() []Column {
	return slices.Clone(tb.columns)
}

// ColumnCount returns the number of columns.
func (tb *Table) ColumnCount() int {
	return len(tb.columns)
}

// AddRow adds a new empty row to the end of the table and returns it.
// Cells are added to the row by constructing widgets with it as their
// parent, one per column.
func (tb *Table) AddRow() *TableRow {
	rw := NewTableRow(tb.rows)
	rw.table = tb
	tb.NeedsLayout()
	return rw
}

// InsertRow adds a new empty row at the given index and returns it.
func (tb *Table) InsertRow(idx int) *TableRow {
	rw := NewTableRow()
	rw.table = tb
	tb.rows.InsertChild(rw, idx)
	tb.NeedsLayout()
	return rw
}

// DeleteRow removes the given row from the table, destroying it and
// its cells. Any selection is cleared first.
func (tb *Table) DeleteRow(rw *TableRow) {
	tb.SelectRow(-1)
	tb.rows.DeleteChild(rw)
	tb.NeedsLayout()
}

// Row returns the row at the given index, or nil if it is out of range.
func (tb *Table) Row(idx int) *TableRow {
	if idx < 0 || idx >= len(tb.rows.Children) {
		return nil
	}
	rw, _ := tb.rows.Children[idx].(*TableRow)
	return rw
}

// RowCount returns the number of rows in the table,
// not including the header.
func (tb *Table) RowCount() int {
	if tb.rows == nil {
		return 0
	}
	return len(tb.rows.Children)
}

// SelectRow updates [Table.SelectedRow] to the given row index,
// updating the selection state of the affected rows and sending an
// [events.Select] event. An out of range index clears the selection.
func (tb *Table) SelectRow(idx int) {
	if idx < 0 || idx >= tb.RowCount() {
		idx = -1
	}
	if idx == tb.SelectedRow {
		return
	}
	if old := tb.Row(tb.SelectedRow); old != nil {
		old.SetSelected(false)
		old.Restyle()
	}
	tb.SelectedRow = idx
	if rw := tb.Row(idx); rw != nil {
		rw.SetSelected(true)
		rw.Restyle()
	}
	tb.Send(events.Select)
	tb.NeedsRender()
}

// DisallowRowSelection stops click events from updating
// [Table.SelectedRow] and clears any existing selection.
func (tb *Table) DisallowRowSelection() {
	tb.allowSelect = false
	tb.SelectRow(-1)
}

// BindSelect binds the table's selected row to the given value.
// It will send an [events.Change] event when the user changes the
// selected row.
func (tb *Table) BindSelect(val *int) *Table {
	tb.OnSelect(func(e events.Event) {
		*val = tb.SelectedRow
		tb.SendChange(e)
	})
	return tb
}

// SetGaps sets the gap between rows and between columns.
func (tb *Table) SetGaps(row, col units.Value) *Table {
	tb.RowGap = row
	tb.ColumnGap = col
	tb.Update()
	return tb
}

// RowForPos returns the index of the row containing the given position
// in scene coordinates, or -1 if there is none. Only the vertical
// coordinate is considered, so positions in the row gaps resolve to the
// row above.
func (tb *Table) RowForPos(pos image.Point) int {
	n := tb.RowCount()
	y := float32(pos.Y)
	low, high := 0, n-1
	for low <= high {
		mid := (low + high) / 2
		cmp := y - tb.Row(mid).Geom.Pos.Total.Y
		if cmp > 0 {
			low = mid + 1
		} else if cmp < 0 {
			high = mid - 1
		} else {
			low = mid + 1
			break
		}
	}
	row := low - 1
	if row >= 0 && row == n-1 {
		last := tb.Row(row)
		if y >= last.Geom.Pos.Total.Y+last.Geom.Size.Actual.Total.Y {
			row = -1
		}
	}
	return row
}

// ColumnForPos returns the index of the column containing the given
// position in scene coordinates, or -1 if there is none. Positions in
// the column gaps resolve to the column after the gap.
func (tb *Table) ColumnForPos(pos image.Point) int {
	if len(tb.widths) != len(tb.columns) {
		return -1
	}
	gap := tb.Header.Styles.Gap.X.Dots
	x := float32(pos.X) - tb.rows.Geom.Pos.Content.X
	if x < 0 {
		return -1
	}
	for c, w := range tb.widths {
		if x < w {
			return c
		}
		x -= w + gap
	}
	return -1
}

// CellForPos returns the row and column indexes of the cell containing
// the given position in scene coordinates. It returns -1, -1 if the
// position is not within a cell.
func (tb *Table) CellForPos(pos image.Point) (row, col int) {
	row = tb.RowForPos(pos)
	if row == -1 {
		return -1, -1
	}
	col = tb.ColumnForPos(pos)
	if col == -1 {
		return -1, -1
	}
	return row, col
}

func (tb *Table) SizeFinal() {
	tb.Frame.SizeFinal()
	tb.layoutColumns()
}

// layoutColumns solves the column widths from the measured cell sizes
// and applies them to the cells of the header and every row.
func (tb *Table) layoutColumns() {
	nc := len(tb.columns)
	if nc == 0 {
		return
	}
	gap := tb.Header.Styles.Gap.X.Dots
	measured := make([]float32, nc)
	tb.forRows(func(rw *TableRow, header bool) {
		for c := 0; c < nc && c < rw.NumChildren(); c++ {
			_, cwb := core.AsWidget(rw.Child(c))
			measured[c] = math32.Max(measured[c], cwb.Geom.Size.Actual.Total.X)
		}
	})
	tb.widths = solveColumnWidths(tb.columns, measured, gap, tb.Geom.Size.Alloc.Content.X)

	total := gap * float32(nc-1)
	for _, w := range tb.widths {
		total += w
	}
	tb.forRows(func(rw *TableRow, header bool) {
		for c := 0; c < nc && c < rw.NumChildren(); c++ {
			_, cwb := core.AsWidget(rw.Child(c))
			col := &tb.columns[c]
			colW := tb.widths[c]
			elemW := colW
			if !header && !col.stretch {
				elemW = math32.Min(cwb.Geom.Size.Actual.Total.X, colW)
			}
			csz := &cwb.Geom.Size
			spaceX := csz.Actual.Total.X - csz.Actual.Content.X
			csz.Actual.Total.X = elemW
			csz.Actual.Content.X = elemW - spaceX
			csz.Alloc.Total.X = colW
			csz.Alloc.Content.X = colW - spaceX
			if header {
				spaceY := csz.Actual.Total.Y - csz.Actual.Content.Y
				h := rw.Geom.Size.Actual.Content.Y
				csz.Actual.Total.Y = h
				csz.Actual.Content.Y = h - spaceY
				csz.Alloc.Total.Y = h
				csz.Alloc.Content.Y = h - spaceY
			}
		}
		rsz := &rw.Geom.Size
		rowSpace := rsz.Actual.Total.X - rsz.Actual.Content.X
		rsz.Actual.Content.X = total
		rsz.Actual.Total.X = total + rowSpace
	})
}

func (tb *Table) Position() {
	tb.Frame.Position()
	tb.positionCells()
}

// positionCells places each cell at the start of its solved column,
// offset by the column alignment within the column width.
func (tb *Table) positionCells() {
	nc := len(tb.columns)
	if nc == 0 || len(tb.widths) != nc {
		return
	}
	gap := tb.Header.Styles.Gap.X.Dots
	tb.forRows(func(rw *TableRow, header bool) {
		if rw.NumChildren() == 0 {
			return
		}
		_, cwb0 := core.AsWidget(rw.Child(0))
		x := cwb0.Geom.RelPos.X
		for c := 0; c < nc && c < rw.NumChildren(); c++ {
			_, cwb := core.AsWidget(rw.Child(c))
			colW := tb.widths[c]
			elemW := cwb.Geom.Size.Actual.Total.X
			cwb.Geom.RelPos.X = x + alignOffset(tb.columns[c].align, elemW, colW)
			x += colW + gap
		}
	})
}

// forRows calls the given function for the header and for each row.
func (tb *Table) forRows(fun func(rw *TableRow, header bool)) {
	fun(tb.Header, true)
	for i := 0; i < tb.RowCount(); i++ {
		if rw := tb.Row(i); rw != nil {
			fun(rw, false)
		}
	}
}

// TableRow is a single row of cells in a [Table]. Cells are added by
// constructing widgets with the row as their parent, one per column.
type TableRow struct {
	core.Frame

	// table is the table this row belongs to.
	table *Table

	// header marks the header row, whose cells are
	// stretched to the full column width and row height.
	header bool
}

func (rw *TableRow) Init() {
	rw.Frame.Init()
	rw.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Grow.Set(1, 0)
		if rw.table != nil {
			s.Gap.X = rw.table.ColumnGap
			s.Align.Items = rw.table.RowAlign
		}
	})
}

// RowIndex returns the index of this row in its table,
// or -1 if it is not in a table.
func (rw *TableRow) RowIndex() int {
	if rw.table == nil {
		return -1
	}
	for i := 0; i < rw.table.RowCount(); i++ {
		if rw.table.Row(i) == rw {
			return i
		}
	}
	return -1
}

// Select is a shortcut for selecting this row in its table;
// see [Table.SelectRow].
func (rw *TableRow) Select() {
	if rw.table != nil {
		rw.table.SelectRow(rw.RowIndex())
	}
}

// tableRows is the scrolling container for the rows of a [Table].
// It draws the grid lines over its children.
type tableRows struct {
	core.Frame

	// table is the table this row container belongs to.
	table *Table
}

func (tr *tableRows) Init() {
	tr.Frame.Init()
	tr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
		s.Overflow.Y = styles.OverflowAuto
		if tr.table != nil {
			s.Gap.Y = tr.table.RowGap
		}
	})
}

func (tr *tableRows) RenderWidget() {
	if tr.PushBounds() {
		tr.This.(core.Widget).Render()
		tr.RenderChildren()
		tr.renderGridLines()
		tr.RenderScrolls()
		tr.PopBounds()
	}
}

// renderGridLines draws a line at the start of each column and each
// row, plus closing lines after the last column and row, using
// [Table.GridColor]. Lines are drawn over the row content.
func (tr *tableRows) renderGridLines() {
	tb := tr.table
	if tb == nil || tb.GridColor == nil {
		return
	}
	nc := len(tb.widths)
	nr := tb.RowCount()
	if nc == 0 || nr == 0 {
		return
	}
	pc := &tr.Scene.PaintContext
	gap := tb.Header.Styles.Gap.X.Dots

	first := tb.Row(0)
	last := tb.Row(nr - 1)
	top := first.Geom.Pos.Total.Y
	bottom := last.Geom.Pos.Total.Y + last.Geom.Size.Actual.Total.Y
	left := first.Geom.Pos.Content.X

	x := left
	for c := 0; c < nc; c++ {
		pc.FillBox(math32.Vec2(x, top), math32.Vec2(1, bottom-top), tb.GridColor)
		x += tb.widths[c] + gap
	}
	x -= gap
	pc.FillBox(math32.Vec2(x, top), math32.Vec2(1, bottom-top), tb.GridColor)

	for r := 0; r < nr; r++ {
		y := tb.Row(r).Geom.Pos.Total.Y
		pc.FillBox(math32.Vec2(left, y), math32.Vec2(x-left, 1), tb.GridColor)
	}
	pc.FillBox(math32.Vec2(left, bottom), math32.Vec2(x-left, 1), tb.GridColor)
}

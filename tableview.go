// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"log/slog"
	"slices"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
)

// TableView is a [Table] that populates and updates itself from a
// [TableModel], functionally similar to Swing's JTable. Column
// headers are [ClickFrame]s filled by a [HeaderRenderer]; cells are
// rendered and updated in place by [CellRenderer]s. Model changes set
// up with [TableView.SetModel] are applied incrementally. Clicking a
// cell pops up the tip its renderer provides, if any.
type TableView struct {
	Table

	// Model provides the data shown in the table.
	// Set it with [TableView.SetModel].
	Model TableModel `set:"-"`

	// RowUpdater, if set, is called for each row after its cells have
	// been rendered, for example to restyle the row from its data.
	RowUpdater RowUpdater

	// renderers has the explicitly set renderer per view column.
	// Nil slots fall back to the default renderer.
	renderers []CellRenderer

	// defaultRenderer renders all columns without explicit renderers.
	defaultRenderer CellRenderer

	// headerRenderer renders the column headers.
	headerRenderer HeaderRenderer

	// rendering is whether a cell renderer is currently running.
	// [TableView.CommitCell] is suppressed then.
	rendering bool

	// pendingSelect is a row index waiting to be created, or -1.
	pendingSelect int

	// disconnect unbinds handleChange from the model.
	disconnect func()

	// removedColumns has the model indices of hidden columns, sorted.
	removedColumns []int
}

func (tv *TableView) Init() {
	tv.Table.Init()
	tv.defaultRenderer = DefaultCell
	tv.headerRenderer = DefaultHeader
	tv.pendingSelect = -1
	tv.OnClick(func(e events.Event) {
		if row, col := tv.CellForPos(e.Pos()); row >= 0 && col >= 0 {
			tv.showCellTip(row, col)
		}
	})
}

func (tv *TableView) Destroy() {
	if tv.disconnect != nil {
		tv.disconnect()
		tv.disconnect = nil
	}
	tv.Table.Destroy()
}

// SetModel sets the model providing the data, rebuilds the columns
// and rows from it, and applies subsequent model change events
// incrementally. Any previous model is disconnected. A nil model only
// disconnects, leaving the current contents in place.
func (tv *TableView) SetModel(model TableModel) *TableView {
	if tv.disconnect != nil {
		tv.disconnect()
		tv.disconnect = nil
	}
	tv.Model = model
	if model == nil {
		return tv
	}
	tv.refreshStructure()
	tv.disconnect = model.OnChange(tv.handleChange)
	tv.Update()
	return tv
}

// SetHeaderRenderer sets the renderer used for column headers. It
// takes effect at the next structure refresh, so it should be set
// before the model.
func (tv *TableView) SetHeaderRenderer(r HeaderRenderer) *TableView {
	tv.headerRenderer = r
	return tv
}

// ColumnRenderer returns the cell renderer used for the given
// view column.
func (tv *TableView) ColumnRenderer(col int) CellRenderer {
	if r := tv.renderers[col]; r != nil {
		return r
	}
	return tv.defaultRenderer
}

// SetColumnRenderer sets the cell renderer for the given view column
// and re-renders the column: any existing cells in it are destroyed
// and created anew. A nil renderer reverts the column to the default.
func (tv *TableView) SetColumnRenderer(col int, r CellRenderer) {
	if col < 0 || col >= len(tv.renderers) {
		slog.Error("swingn.TableView.SetColumnRenderer: column out of range", "col", col, "columns", len(tv.renderers))
		return
	}
	tv.renderers[col] = r
	tv.recreateColumn(col)
}

// SetDefaultRenderer sets the cell renderer used by all columns that
// have not had one set with [TableView.SetColumnRenderer], and
// re-renders those columns.
func (tv *TableView) SetDefaultRenderer(r CellRenderer) {
	if r == nil {
		slog.Error("swingn.TableView.SetDefaultRenderer: nil renderer")
		return
	}
	tv.defaultRenderer = r
	for col, cr := range tv.renderers {
		if cr == nil {
			tv.recreateColumn(col)
		}
	}
}

// HideColumn removes the given view column from the table while
// continuing to address the model with stable indices. Hiding view
// column i shifts the later view columns down by one; the mapping to
// model columns is maintained internally.
func (tv *TableView) HideColumn(col int) {
	if col < 0 || col >= len(tv.renderers) {
		slog.Error("swingn.TableView.HideColumn: column out of range", "col", col, "columns", len(tv.renderers))
		return
	}
	mc := tv.modelColumn(col)
	tv.DeleteColumn(col)
	tv.renderers = slices.Delete(tv.renderers, col, col+1)
	at, _ := slices.BinarySearch(tv.removedColumns, mc)
	tv.removedColumns = slices.Insert(tv.removedColumns, at, mc)
	tv.Update()
}

// ViewColumnCount returns the number of columns shown,
// which is the model's column count minus any hidden columns.
func (tv *TableView) ViewColumnCount() int {
	if tv.Model == nil {
		return 0
	}
	return tv.Model.NumColumns() - len(tv.removedColumns)
}

// IsCellEditable reports whether the model can be edited at the given
// view cell.
func (tv *TableView) IsCellEditable(row, col int) bool {
	em, ok := tv.Model.(EditableTableModel)
	return ok && em.Editable(row, tv.modelColumn(col))
}

// CommitCell writes the given value to the model at the cell widget's
// current position. Cell renderers call this from their editors'
// change handlers; writes are suppressed while the cell itself is
// being rendered. The cell must be a direct child of a table row.
func (tv *TableView) CommitCell(cell core.Widget, value any) {
	if tv.rendering {
		return
	}
	em, ok := tv.Model.(EditableTableModel)
	if !ok {
		return
	}
	rw, ok := cell.AsWidget().Parent.(*TableRow)
	if !ok || rw.header {
		return
	}
	em.SetValue(value, rw.RowIndex(), tv.modelColumn(cell.AsWidget().IndexInParent()))
}

// SelectRowLater selects the given row now if it already exists, or
// as soon as it is rendered from the model. The row must not be
// negative. To select an existing row normally, use
// [Table.SelectRow].
func (tv *TableView) SelectRowLater(row int) {
	if row < 0 {
		slog.Error("swingn.TableView.SelectRowLater: negative row", "row", row)
		return
	}
	if tv.Model != nil && row < tv.RowCount() {
		tv.SelectRow(row)
	} else {
		tv.pendingSelect = row
	}
}

// handleChange applies one model change event to the table.
func (tv *TableView) handleChange(e TableModelEvent) {
	if tv.This == nil {
		if tv.disconnect != nil {
			tv.disconnect()
			tv.disconnect = nil
		}
		return
	}
	first, last := e.StartRow(), e.EndRow(tv.Model)
	switch e.Type {
	case StructureChanged:
		tv.refreshStructure()
	case RowsDeleted:
		for rowIdx := last; rowIdx >= first; rowIdx-- {
			tv.DeleteRow(tv.Row(rowIdx))
		}
	case RowsAdded:
		for rowIdx := first; rowIdx <= last; rowIdx++ {
			tv.InsertRow(rowIdx)
			tv.refreshRow(rowIdx)
		}
	case AllDataChanged:
		tv.refreshData()
	case CellsUpdated:
		if e.Column == AllColumns {
			for rowIdx := first; rowIdx <= last; rowIdx++ {
				tv.refreshRow(rowIdx)
			}
		} else if !slices.Contains(tv.removedColumns, e.Column) {
			colIdx := tv.viewColumn(e.Column)
			for rowIdx := first; rowIdx <= last; rowIdx++ {
				rw := tv.Row(rowIdx)
				if rw == nil {
					continue
				}
				if colIdx >= rw.NumChildren() {
					tv.refreshRow(rowIdx)
					continue
				}
				tv.render(rw, rw.Child(colIdx).(core.Widget), rowIdx, colIdx)
			}
		}
	}
	tv.Update()
}

// refreshStructure rebuilds the columns and then the rows.
func (tv *TableView) refreshStructure() {
	tv.refreshColumns()
	tv.refreshData()
}

// refreshColumns synchronizes the table columns with the model,
// destroying extras, adding missing ones with [ClickFrame] header
// containers, and re-rendering every header.
func (tv *TableView) refreshColumns() {
	ncols := tv.ViewColumnCount()
	if len(tv.renderers) > ncols {
		tv.renderers = tv.renderers[:ncols]
	}
	for len(tv.renderers) < ncols {
		tv.renderers = append(tv.renderers, nil)
	}
	for tv.ColumnCount() > ncols {
		tv.DeleteColumn(tv.ColumnCount() - 1)
	}
	for colIdx := 0; colIdx < ncols; colIdx++ {
		var header *ClickFrame
		if colIdx >= tv.ColumnCount() {
			header = NewClickFrame()
			tv.AddColumn(NewColumn().Stretch(), header)
		} else {
			header = tv.Header.Child(colIdx).(*ClickFrame)
			header.DeleteChildren()
		}
		name := tv.Model.ColumnName(tv.modelColumn(colIdx))
		tv.headerRenderer.RenderHeader(tv, header, name, colIdx)
	}
}

// refreshData synchronizes the table rows with the model, destroying
// extra rows from the end, and rendering every remaining cell.
func (tv *TableView) refreshData() {
	nrows := tv.Model.NumRows()
	for tv.RowCount() > nrows {
		tv.DeleteRow(tv.Row(tv.RowCount() - 1))
	}
	for rowIdx := 0; rowIdx < nrows; rowIdx++ {
		if rowIdx == tv.RowCount() {
			tv.AddRow()
		}
		tv.refreshRow(rowIdx)
	}
}

// refreshRow re-renders every cell of the given row, appending any
// cells the row does not have yet.
func (tv *TableView) refreshRow(rowIdx int) {
	rw := tv.Row(rowIdx)
	for colIdx, ncols := 0, tv.ViewColumnCount(); colIdx < ncols; colIdx++ {
		var old core.Widget
		if colIdx < rw.NumChildren() {
			old = rw.Child(colIdx).(core.Widget)
		}
		tv.render(rw, old, rowIdx, colIdx)
	}
	if tv.RowUpdater != nil {
		tv.RowUpdater(tv, rw, rowIdx)
	}
	if tv.pendingSelect == rowIdx {
		tv.SelectRow(rowIdx)
		tv.pendingSelect = -1
	}
}

// recreateColumn destroys the cell widgets of the given view column
// in every row and renders them anew with the column's renderer.
func (tv *TableView) recreateColumn(colIdx int) {
	for rr, nr := 0, tv.RowCount(); rr < nr; rr++ {
		rw := tv.Row(rr)
		if colIdx < rw.NumChildren() {
			rw.DeleteChildAt(colIdx)
		}
		tv.render(rw, nil, rr, colIdx)
		// the new cell was appended; move it into its column slot
		if last := rw.NumChildren() - 1; last > colIdx {
			kid := rw.Children[last]
			rw.Children = slices.Delete(rw.Children, last, last+1)
			rw.Children = slices.Insert(rw.Children, colIdx, kid)
		}
	}
	tv.Update()
}

// render runs the column's renderer on one cell with the rendering
// flag set, giving it the mapped model value.
func (tv *TableView) render(rw *TableRow, old core.Widget, rowIdx, colIdx int) core.Widget {
	tv.rendering = true
	defer func() { tv.rendering = false }()
	value := tv.Model.Value(rowIdx, tv.modelColumn(colIdx))
	return tv.ColumnRenderer(colIdx).Render(tv, rw, old, value, rowIdx, colIdx)
}

// showCellTip pops up the renderer tip for the given cell, if any.
func (tv *TableView) showCellTip(rowIdx, colIdx int) {
	rw := tv.Row(rowIdx)
	if rw == nil || colIdx >= rw.NumChildren() || colIdx >= len(tv.renderers) || tv.Model == nil {
		return
	}
	value := tv.Model.Value(rowIdx, tv.modelColumn(colIdx))
	tip := tv.ColumnRenderer(colIdx).Tip(tv, value, rowIdx, colIdx)
	if tip == "" {
		return
	}
	cell := rw.Child(colIdx).(core.Widget)
	core.NewTooltip(cell, tip, cell.AsWidget().DefaultTooltipPos()).Run()
}

// viewColumn returns the view column showing the given model column,
// counting down for hidden columns before it.
func (tv *TableView) viewColumn(modelCol int) int {
	vc := modelCol
	for _, rc := range tv.removedColumns {
		if rc > modelCol {
			break
		}
		vc--
	}
	return vc
}

// modelColumn returns the model column shown at the given view
// column, counting up over hidden columns.
func (tv *TableView) modelColumn(viewCol int) int {
	mc := viewCol
	for _, rc := range tv.removedColumns {
		if rc > mc {
			break
		}
		mc++
	}
	return mc
}

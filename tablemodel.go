// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

// TableModel describes data with a tabular structure and provides a
// means of communicating changes to a [TableView]. Implementations
// typically embed [BaseTableModel] for the listener bookkeeping.
type TableModel interface {

	// NumRows returns the number of rows in the data.
	NumRows() int

	// NumColumns returns the number of columns in the data.
	NumColumns() int

	// Value returns the value of the data at the given cell.
	Value(row, col int) any

	// ColumnName returns the name of the given column,
	// used for the default header.
	ColumnName(col int) string

	// OnChange registers the given function to be called whenever
	// the backing data changes, for example in response to network
	// events or editing via [EditableTableModel.SetValue].
	// The returned function removes the listener again.
	OnChange(fun func(e TableModelEvent)) func()
}

// EditableTableModel is an extension to [TableModel]
// that allows editing.
type EditableTableModel interface {
	TableModel

	// Editable reports whether the backing data
	// may be edited at the given cell.
	Editable(row, col int) bool

	// SetValue sets the backing data at the given cell
	// to the given value.
	SetValue(value any, row, col int)
}

// TableChanges are the ways in which the backing data
// of a [TableModel] may change.
type TableChanges int32 //enums:enum

const (
	// StructureChanged indicates that the columns
	// or their ordering have been updated.
	StructureChanged TableChanges = iota

	// AllDataChanged indicates that the table data has changed
	// completely, or at least so much that there is no point in
	// performing an incremental update.
	AllDataChanged

	// RowsAdded indicates that a contiguous span
	// of one or more rows has been added.
	RowsAdded

	// RowsDeleted indicates that a contiguous span
	// of one or more rows has been deleted.
	RowsDeleted

	// CellsUpdated indicates that a contiguous span of one or more
	// rows has changed, either in one column or all columns. Multiple
	// changed columns are indicated by multiple events.
	CellsUpdated
)

const (
	// AllRows is the sentinel for [TableModelEvent] row fields
	// indicating that all rows are affected.
	AllRows = -1

	// AllColumns is the sentinel for the [TableModelEvent] column
	// field indicating that all columns are affected.
	AllColumns = -1
)

// TableModelEvent encapsulates a single change
// to the backing data of a [TableModel].
type TableModelEvent struct {

	// Type is the kind of change that occurred.
	Type TableChanges

	// FirstRow and LastRow are the inclusive row span that changed.
	// If both are [AllRows], all rows have changed. If LastRow is
	// less than FirstRow, no rows have changed.
	FirstRow, LastRow int

	// Column is the column that changed,
	// or [AllColumns] for all columns.
	Column int
}

// IsAllRows reports whether the event applies to all rows.
func (e *TableModelEvent) IsAllRows() bool {
	return e.FirstRow == AllRows && e.LastRow == AllRows
}

// StartRow returns the first affected row.
func (e *TableModelEvent) StartRow() int {
	if e.IsAllRows() {
		return 0
	}
	return e.FirstRow
}

// EndRow returns the last affected row,
// resolving [AllRows] against the given model.
func (e *TableModelEvent) EndRow(m TableModel) int {
	if e.IsAllRows() {
		return m.NumRows() - 1
	}
	return e.LastRow
}

// BaseTableModel partially implements [TableModel], providing the
// change listeners and convenience methods for firing events on them.
// The data access methods are left to the embedding type.
type BaseTableModel struct {
	// change listeners, called in registration order.
	listeners []func(e TableModelEvent)
}

func (bm *BaseTableModel) OnChange(fun func(e TableModelEvent)) func() {
	bm.listeners = append(bm.listeners, fun)
	idx := len(bm.listeners) - 1
	return func() {
		bm.listeners[idx] = nil
	}
}

// StructureChanged fires a [StructureChanged] event.
func (bm *BaseTableModel) StructureChanged() {
	bm.send(TableModelEvent{StructureChanged, AllRows, AllRows, AllColumns})
}

// AllChanged fires an [AllDataChanged] event.
func (bm *BaseTableModel) AllChanged() {
	bm.send(TableModelEvent{AllDataChanged, AllRows, AllRows, AllColumns})
}

// RowsAdded fires a [RowsAdded] event for the inclusive row span.
func (bm *BaseTableModel) RowsAdded(first, last int) {
	bm.send(TableModelEvent{RowsAdded, first, last, AllColumns})
}

// RowsDeleted fires a [RowsDeleted] event for the inclusive row span.
func (bm *BaseTableModel) RowsDeleted(first, last int) {
	bm.send(TableModelEvent{RowsDeleted, first, last, AllColumns})
}

// RowsUpdated fires a [CellsUpdated] event covering
// all columns of the inclusive row span.
func (bm *BaseTableModel) RowsUpdated(first, last int) {
	bm.CellsUpdated(first, last, AllColumns)
}

// CellsUpdated fires a [CellsUpdated] event for the given column
// (or [AllColumns]) of the inclusive row span.
func (bm *BaseTableModel) CellsUpdated(first, last, col int) {
	bm.send(TableModelEvent{CellsUpdated, first, last, col})
}

// CellUpdated fires a [CellsUpdated] event for a single cell.
func (bm *BaseTableModel) CellUpdated(row, col int) {
	bm.CellsUpdated(row, row, col)
}

func (bm *BaseTableModel) send(e TableModelEvent) {
	for _, fun := range bm.listeners {
		if fun != nil {
			fun(e)
		}
	}
}

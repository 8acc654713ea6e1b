// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"image"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/styles/units"
	"github.com/stretchr/testify/assert"
)

// makeTestTable makes a table with a start-aligned column, a fixed
// width column, and a stretch column, with the given number of rows.
func makeTestTable(b *core.Body, rows int) *Table {
	tb := NewTable(b)
	tb.AddColumn(NewColumn().Align(styles.Start), core.NewText().SetText("Name"))
	tb.AddColumn(NewColumn().Fixed(60), core.NewText().SetText("Count"))
	tb.AddColumn(NewColumn().Stretch(), core.NewText().SetText("Notes"))
	for r := 0; r < rows; r++ {
		rw := tb.AddRow()
		core.NewText(rw).SetText("item")
		core.NewText(rw).SetText("7")
		core.NewText(rw).SetText("some notes")
	}
	return tb
}

func TestTable(t *testing.T) {
	b := core.NewBody()
	tb := makeTestTable(b, 3)
	tb.SetGridColor(colors.Uniform(colors.ToUniform(colors.Scheme.Outline)))
	tb.SetGaps(units.Dp(2), units.Dp(4))
	b.AssertRender(t, "table/basic")
}

func TestTableColumnWidths(t *testing.T) {
	b := core.NewBody()
	b.Styler(func(s *styles.Style) {
		s.Min.X.Dp(400)
		s.Min.Y.Dp(300)
	})
	tb := NewTable(b)
	tb.AddColumn(NewColumn().Fixed(80), core.NewText().SetText("a"))
	tb.AddColumn(NewColumn().Fixed(60), core.NewText().SetText("b"))
	tb.AddColumn(NewColumn().Stretch(), core.NewText().SetText("c"))
	rw := tb.AddRow()
	core.NewText(rw).SetText("a0")
	core.NewText(rw).SetText("b0")
	core.NewText(rw).SetText("c0")

	b.AssertRender(t, "table/column-widths", func() {
		assert.Equal(t, 3, len(tb.widths))
		assert.InDelta(t, 80, tb.widths[0], 0.001)
		assert.InDelta(t, 60, tb.widths[1], 0.001)

		gap := tb.Header.Styles.Gap.X.Dots
		avail := tb.Geom.Size.Alloc.Content.X
		assert.InDelta(t, avail-80-60-2*gap, tb.widths[2], 0.5)

		total := tb.widths[0] + tb.widths[1] + tb.widths[2] + 2*gap
		assert.InDelta(t, total, tb.Row(0).Geom.Size.Actual.Content.X, 0.5)

		// the stretch cell fills its column
		stretch := core.AsWidget(tb.Row(0).Child(2))
		assert.InDelta(t, tb.widths[2], stretch.Geom.Size.Actual.Total.X, 0.5)

		// the fixed cell keeps its preferred width
		fixed := core.AsWidget(tb.Row(0).Child(1))
		assert.LessOrEqual(t, fixed.Geom.Size.Actual.Total.X, tb.widths[1])
	})
}

func TestTableSelect(t *testing.T) {
	b := core.NewBody()
	tb := makeTestTable(b, 3)
	selects := 0
	tb.OnSelect(func(e events.Event) {
		selects++
	})

	b.AssertRender(t, "table/select", func() {
		tb.SelectRow(1)
		assert.Equal(t, 1, tb.SelectedRow)
		assert.Equal(t, 1, selects)
		assert.True(t, tb.Row(1).StateIs(states.Selected))

		tb.SelectRow(1) // same row again is a no-op
		assert.Equal(t, 1, selects)

		tb.SelectRow(2)
		assert.False(t, tb.Row(1).StateIs(states.Selected))
		assert.True(t, tb.Row(2).StateIs(states.Selected))
		assert.Equal(t, 2, selects)

		tb.SelectRow(-1)
		assert.Equal(t, -1, tb.SelectedRow)
		assert.False(t, tb.Row(2).StateIs(states.Selected))
		assert.Equal(t, 3, selects)

		tb.DisallowRowSelection()
		tb.Row(0).Select()
		assert.Equal(t, 0, tb.SelectedRow) // direct selection still works
	})
}

func TestTableHitTests(t *testing.T) {
	b := core.NewBody()
	tb := makeTestTable(b, 3)
	tb.SetGaps(units.Dp(2), units.Dp(4))

	b.AssertRender(t, "table/hit-tests", func() {
		r0 := tb.Row(0)
		r2 := tb.Row(2)

		in0 := image.Pt(int(r0.Geom.Pos.Total.X)+2, int(r0.Geom.Pos.Total.Y)+2)
		assert.Equal(t, 0, tb.RowForPos(in0))

		above := image.Pt(in0.X, int(r0.Geom.Pos.Total.Y)-1)
		assert.Equal(t, -1, tb.RowForPos(above))

		below := image.Pt(in0.X, int(r2.Geom.Pos.Total.Y+r2.Geom.Size.Actual.Total.Y)+1)
		assert.Equal(t, -1, tb.RowForPos(below))

		// a position in the row gap resolves to the row above it
		inGap := image.Pt(in0.X, int(r0.Geom.Pos.Total.Y+r0.Geom.Size.Actual.Total.Y)+1)
		assert.Equal(t, 0, tb.RowForPos(inGap))

		left := tb.rows.Geom.Pos.Content.X
		gap := tb.Header.Styles.Gap.X.Dots
		assert.Equal(t, -1, tb.ColumnForPos(image.Pt(int(left)-2, in0.Y)))
		assert.Equal(t, 0, tb.ColumnForPos(image.Pt(int(left)+1, in0.Y)))
		assert.Equal(t, 1, tb.ColumnForPos(image.Pt(int(left+tb.widths[0]+gap)+1, in0.Y)))

		row, col := tb.CellForPos(in0)
		assert.Equal(t, 0, row)
		assert.Equal(t, 0, col)

		row, col = tb.CellForPos(above)
		assert.Equal(t, -1, row)
		assert.Equal(t, -1, col)
	})
}

func TestTableColumnOps(t *testing.T) {
	b := core.NewBody()
	tb := makeTestTable(b, 2)

	// mismatched cell count is rejected
	tb.AddColumnCells(NewColumn(), core.NewText().SetText("x"))
	assert.Equal(t, 3, tb.ColumnCount())

	tb.AddColumnCells(NewColumn(),
		core.NewText().SetText("Extra"),
		core.NewText().SetText("e0"),
		core.NewText().SetText("e1"))
	assert.Equal(t, 4, tb.ColumnCount())
	assert.Equal(t, 4, tb.Header.NumChildren())
	assert.Equal(t, 4, tb.Row(0).NumChildren())
	assert.Equal(t, 4, tb.Row(1).NumChildren())

	tb.DeleteColumn(3)
	assert.Equal(t, 3, tb.ColumnCount())
	assert.Equal(t, 3, tb.Header.NumChildren())
	assert.Equal(t, 3, tb.Row(1).NumChildren())

	tb.SetColumn(0, NewColumn().Fixed(100))
	assert.InDelta(t, 100, tb.Columns()[0].min, 0.001)

	b.AssertRender(t, "table/column-ops", func() {
		assert.InDelta(t, 100, tb.widths[0], 0.001)
	})
}

func TestTableRows(t *testing.T) {
	b := core.NewBody()
	tb := makeTestTable(b, 2)

	rw := tb.InsertRow(1)
	core.NewText(rw).SetText("mid")
	core.NewText(rw).SetText("1")
	core.NewText(rw).SetText("inserted")
	assert.Equal(t, 3, tb.RowCount())
	assert.Equal(t, 1, rw.RowIndex())
	assert.Same(t, rw, tb.Row(1))

	b.AssertRender(t, "table/rows", func() {
		tb.SelectRow(1)
		tb.DeleteRow(rw)
		assert.Equal(t, 2, tb.RowCount())
		assert.Equal(t, -1, tb.SelectedRow)
		assert.Nil(t, tb.Row(2))
	})
}

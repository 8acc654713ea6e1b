// Copyright (c) 2026, Cupric. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swingn

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
)

// Column is the immutable layout configuration for one [Table] column.
// The zero value is not usable; start from [NewColumn] and derive
// variants with the copier methods, each of which returns a modified
// copy:
//
//	name := swingn.NewColumn().Align(styles.Start).Stretch()
//	count := swingn.NewColumn().Fixed(60)
type Column struct {

	// align is the horizontal alignment of cells within the column.
	align styles.Aligns

	// stretch widens cells to the full column width instead of
	// leaving them at their preferred width.
	stretch bool

	// min and max bound the column width. When they are equal the
	// column is fixed and takes no part in extra space distribution.
	min, max float32

	// pref is the preferred width, used when it exceeds the widest
	// cell measurement.
	pref float32

	// weight is the column's share when distributing extra space.
	weight float32
}

// NewColumn returns a column with the default configuration:
// centered, preferred width 150, bounded to [10, 1e4], weight 1.
func NewColumn() Column {
	return Column{align: styles.Center, min: 10, max: 1e4, pref: 150, weight: 1}
}

// Align returns a copy of this column with cells aligned as given
// ([styles.Start], [styles.Center], or [styles.End]).
func (c Column) Align(align styles.Aligns) Column {
	c.align = align
	return c
}

// Stretch returns a copy of this column that stretches cells to the
// full column width. By default, cells keep their preferred width.
func (c Column) Stretch() Column {
	c.stretch = true
	return c
}

// Fixed returns a copy of this column using the given fixed width.
// Fixed columns do not participate in extra space distribution.
func (c Column) Fixed(width float32) Column {
	c.min, c.max, c.pref = width, width, width
	return c
}

// Range returns a copy of this column with variable width. The column
// will not shrink below min nor grow beyond max.
func (c Column) Range(min, max float32) Column {
	c.min, c.max = min, max
	return c
}

// Pref returns a copy of this column with the given preferred width.
func (c Column) Pref(pref float32) Column {
	c.pref = pref
	return c
}

// Weight returns a copy of this column with the given weight for the
// distribution of extra space.
func (c Column) Weight(weight float32) Column {
	c.weight = weight
	return c
}

// fixed columns have no width latitude and are excluded from
// extra space distribution.
func (c Column) fixed() bool {
	return c.min == c.max
}

// natural is the column's width before extra space distribution:
// the larger of the measured and preferred widths, clamped to the
// column bounds.
func (c Column) natural(measured float32) float32 {
	return math32.Clamp(math32.Max(measured, c.pref), c.min, c.max)
}

// freeWeight is the total weight of the columns
// participating in extra space distribution.
func freeWeight(cols []Column) float32 {
	var w float32
	for _, c := range cols {
		if !c.fixed() {
			w += c.weight
		}
	}
	return w
}

// solveColumnWidths computes the final column widths for the given
// measured cell widths (the widest cell per column) and the available
// width. It is a single pass: natural widths are computed first, then
// the difference from avail is distributed across the non-fixed
// columns in proportion to their weights, and each result is clamped
// to its column's bounds. Clamping losses are not redistributed. The
// difference may be negative, shrinking non-fixed columns toward
// their minimums.
func solveColumnWidths(cols []Column, measured []float32, gap, avail float32) []float32 {
	n := len(cols)
	widths := make([]float32, n)
	if n == 0 {
		return widths
	}

	natural := gap * float32(n-1)
	for i, c := range cols {
		var m float32
		if i < len(measured) {
			m = measured[i]
		}
		widths[i] = c.natural(m)
		natural += widths[i]
	}

	free := freeWeight(cols)
	if free == 0 {
		return widths
	}
	extraUnit := (avail - natural) / free

	for i, c := range cols {
		if c.fixed() {
			continue
		}
		widths[i] = math32.Clamp(widths[i]+extraUnit*c.weight, c.min, c.max)
	}
	return widths
}

// alignOffset returns the position offset of a box of the given size
// aligned within the given space.
func alignOffset(align styles.Aligns, size, space float32) float32 {
	switch align {
	case styles.Center:
		return (space - size) / 2
	case styles.End:
		return space - size
	default:
		return 0
	}
}

// SPDX-License-Identifier: MIT

// Package render formats score matrices and alignments as plain text.
//
// Nothing here feeds back into the alignment engines; the package only reads
// the matrix and result values it is given.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqalign/align"
)

// minCellWidth is the narrowest right-aligned cell; wider scores widen every column.
const minCellWidth = 3

// errWriter remembers the first write error so callers check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Matrix writes m as a grid labelled with seq2 across the top and seq1 down
// the side; the first row and column are labelled with align.GapSymbol.
//
//	           -    A    G
//	      +---------------
//	   -  |    0   -1   -2
//	   A  |   -1    1    0
//	   T  |   -2    0    1
func Matrix(w io.Writer, seq1, seq2 string, m *align.Matrix) error {
	if m == nil {
		return align.ErrNilMatrix
	}
	r1, r2 := []rune(seq1), []rune(seq2)
	if m.Rows() != len(r1)+1 || m.Cols() != len(r2)+1 {
		return fmt.Errorf("render.Matrix %dx%d for lengths %d,%d: %w",
			m.Rows(), m.Cols(), len(r1), len(r2), align.ErrShapeMismatch)
	}

	rows := make([][]int, m.Rows())
	width := minCellWidth
	for i := range rows {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		rows[i] = row
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	ew := &errWriter{w: w}
	ew.printf("       ")
	ew.printf("  %*c", width, align.GapSymbol)
	for _, c := range r2 {
		ew.printf("  %*c", width, c)
	}
	ew.printf("\n      +%s\n", strings.Repeat("-", (width+2)*m.Cols()))

	for i, row := range rows {
		label := rune(align.GapSymbol)
		if i > 0 {
			label = r1[i-1]
		}
		ew.printf("   %c  |", label)
		for _, v := range row {
			ew.printf("  %*d", width, v)
		}
		ew.printf("\n")
	}

	return ew.err
}

// Alignment writes both rows with the match midline between them.
func Alignment(w io.Writer, a align.Alignment) error {
	ew := &errWriter{w: w}
	ew.printf("Seq1: %s\n", a.Seq1)
	ew.printf("      %s\n", a.Midline())
	ew.printf("Seq2: %s\n", a.Seq2)

	return ew.err
}

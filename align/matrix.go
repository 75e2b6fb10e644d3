// SPDX-License-Identifier: MIT

package align

import (
	"strconv"
	"strings"
)

// Matrix is a row-major grid of integer alignment scores.
// r is rows, c is columns, and data holds r*c elements in row-major order.
//
// The engines return a Matrix with n+1 rows and m+1 columns, where n and m
// count the symbols (runes) of seq1 and seq2; cell (i, j) scores the first i
// symbols of seq1 against the first j symbols of seq2.
type Matrix struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c
}

// NewMatrix creates an r×c Matrix initialized to zeros.
// Returns ErrInvalidDimensions if rows or cols is not positive.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newMatrix(rows, cols), nil
}

// newMatrix allocates without validation; callers guarantee rows, cols >= 1.
func newMatrix(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]int, rows*cols)}
}

// Rows returns the number of rows in the matrix.
func (m *Matrix) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Matrix) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, cellErrorf("Matrix."+method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the score at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Matrix) Set(row, col, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]int, error) {
	if _, err := m.indexOf("Row", i, 0); err != nil {
		return nil, err
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Max returns the largest score and its first cell in row-major order.
// An empty (zero-value) Matrix yields (0,0) and 0.
// Complexity: O(r*c).
func (m *Matrix) Max() (Cell, int) {
	if len(m.data) == 0 {
		return Cell{}, 0
	}
	best, at := m.data[0], 0
	for k, v := range m.data {
		if v > best {
			best, at = v, k
		}
	}

	return Cell{I: at / m.c, J: at % m.c}, best
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	data := make([]int, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and scores.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			sb.WriteString(strconv.Itoa(m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// at and set skip bounds checks; the engines and backtrackers validate the
// shape once before entering their loops.
func (m *Matrix) at(i, j int) int {
	return m.data[i*m.c+j]
}

func (m *Matrix) set(i, j, v int) {
	m.data[i*m.c+j] = v
}

// checkShape ensures m is (n+1)×(k+1) for sequence lengths n and k.
func checkShape(op string, m *Matrix, n, k int) error {
	if m == nil {
		return cellErrorf(op, n, k, ErrNilMatrix)
	}
	if m.r != n+1 || m.c != k+1 {
		return cellErrorf(op, m.r, m.c, ErrShapeMismatch)
	}

	return nil
}

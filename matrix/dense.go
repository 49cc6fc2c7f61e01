// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Row/Col return fresh vectors; nothing aliases the matrix storage.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) on literal ingestion.
//
// Complexity quicksheet:
//   - Zeros/Ones: O(r*c); At/Set: O(1); Row: O(c); Col: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"  // method tag used in error wrappers
	ctxSet   = "Set" // method tag used in error wrappers
	ctxRow   = "Row"
	ctxCol   = "Col"
	ctxNew   = "NewMatrix"
	ctxZeros = "Zeros"
	ctxCols  = "FromColumns"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a concrete row-major dense matrix of complex128.
//   - r,c hold dimensions (rows, cols); zero is allowed, negative is not.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Matrix struct {
	r, c int          // row and column counts (>=0)
	data []complex128 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// Zeros creates an r×c zero matrix.
//
// Errors: ErrBadShape when rows<0 or cols<0.
// Complexity: Time O(r*c), Space O(r*c).
func Zeros(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxZeros, rows, cols, ErrBadShape)
	}

	return &Matrix{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Ones creates an r×c matrix filled with 1.
// Errors: ErrBadShape when rows<0 or cols<0.
func Ones(rows, cols int) (*Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = 1
	}

	return m, nil
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewMatrix copies a literal given as rows into a new Matrix.
//
// Implementation:
//   - Stage 1: resolve options; every row must have len(rows[0]) columns.
//   - Stage 2: copy values row by row, validating finiteness under policy.
//
// Errors:
//   - ErrDimensionMismatch (ragged literal).
//   - ErrNaNInf (policy violation).
//
// Complexity: Time O(r*c), Space O(r*c).
func NewMatrix(rows [][]complex128, opts ...Option) (*Matrix, error) {
	cfg := gatherOptions(opts...)
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := &Matrix{r: r, c: c, data: make([]complex128, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxNew, i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if cfg.validateNaNInf {
				if err := validateFinite(rows[i][j]); err != nil {
					return nil, denseErrorf(ctxNew, i, j, err)
				}
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// FromReal copies a real-valued row literal into a new Matrix.
func FromReal(rows [][]float64, opts ...Option) (*Matrix, error) {
	lit := make([][]complex128, len(rows))
	for i, row := range rows {
		lit[i] = Complexify(row)
	}

	return NewMatrix(lit, opts...)
}

// FromColumns assembles a matrix whose j-th column is cols[j].
// Orientation of the inputs is ignored; only their values are read.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (columns of unequal length).
func FromColumns(cols ...*Vector) (*Matrix, error) {
	n := len(cols)
	m := 0
	if n > 0 {
		if cols[0] == nil {
			return nil, denseErrorf(ctxCols, 0, 0, ErrNilMatrix)
		}
		m = len(cols[0].val)
	}
	out := &Matrix{r: m, c: n, data: make([]complex128, m*n)}
	var i, j int
	for j = 0; j < n; j++ {
		if cols[j] == nil {
			return nil, denseErrorf(ctxCols, 0, j, ErrNilMatrix)
		}
		if len(cols[j].val) != m {
			return nil, denseErrorf(ctxCols, len(cols[j].val), j, ErrDimensionMismatch)
		}
		for i = 0; i < m; i++ {
			out.data[i*n+j] = cols[j].val[i]
		}
	}

	return out, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns z at (row, col).
// Errors: ErrIndexOutOfBounds.
func (m *Matrix) Set(row, col int, z complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = z

	return nil
}

// Row returns a fresh Row-oriented copy of row i.
// Errors: ErrIndexOutOfBounds.
func (m *Matrix) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrIndexOutOfBounds)
	}
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return &Vector{val: out, orient: Row}, nil
}

// Col returns a fresh Column-oriented copy of column j.
// Errors: ErrIndexOutOfBounds.
func (m *Matrix) Col(j int) (*Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrIndexOutOfBounds)
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return &Vector{val: out, orient: Column}, nil
}

// Columns returns fresh copies of every column, left to right.
func (m *Matrix) Columns() []*Vector {
	out := make([]*Vector, m.c)
	for j := range out {
		out[j], _ = m.Col(j) // j is always in range
	}

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix) Clone() *Matrix {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// String renders rows as lines with comma-separated values.
// Not for hot paths; intended for logs and debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(formatScalar(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

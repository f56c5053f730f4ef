package fenwick

import "fmt"

// Tree2D extends the Fenwick scheme to a fixed-size grid, supporting
// point updates and rectangle aggregates in O(log rows · log cols).
//
// Each dimension is traversed exactly like the 1-D tree: an update
// walks the row index upward and, at every row step, walks the column
// index upward; a query walks both downward. Rows and columns are
// 0-based.
type Tree2D[T any] struct {
	tree [][]T
	op   Operation[T]
	rows int
	cols int
}

// New2D creates a rows×cols grid, each cell starting at op's identity.
// A negative dimension is treated as zero.
func New2D[T any](op Operation[T], rows, cols int) *Tree2D[T] {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	tree := make([][]T, rows+1)
	for i := range tree {
		row := make([]T, cols+1)
		for j := range row {
			row[j] = op.Identity()
		}
		tree[i] = row
	}
	return &Tree2D[T]{tree: tree, op: op, rows: rows, cols: cols}
}

// Dims returns the grid dimensions.
func (t *Tree2D[T]) Dims() (rows, cols int) {
	return t.rows, t.cols
}

func (t *Tree2D[T]) String() string {
	return fmt.Sprintf("Tree2D<rows=%d, cols=%d>", t.rows, t.cols)
}

// Update combines delta into the cell at (row, col).
func (t *Tree2D[T]) Update(row, col int, delta T) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return fmt.Errorf(
			"%w: cell (%d, %d), dims %d×%d", ErrIndexOutOfRange, row, col, t.rows, t.cols)
	}
	for i := row + 1; i <= t.rows; i += lowbit(i) {
		for j := col + 1; j <= t.cols; j += lowbit(j) {
			t.tree[i][j] = t.op.Combine(t.tree[i][j], delta)
		}
	}
	return nil
}

// prefix aggregates the sub-rectangle [0, rows) × [0, cols).
func (t *Tree2D[T]) prefix(rows, cols int) T {
	acc := t.op.Identity()
	for i := rows; i > 0; i -= lowbit(i) {
		for j := cols; j > 0; j -= lowbit(j) {
			acc = t.op.Combine(acc, t.tree[i][j])
		}
	}
	return acc
}

// RectQuery returns the aggregate of the rectangle with inclusive
// corners (r1, c1) and (r2, c2), computed by inclusion–exclusion over
// four corner prefixes. An empty rectangle yields the identity.
func (t *Tree2D[T]) RectQuery(r1, c1, r2, c2 int) (T, error) {
	if r1 > r2 || c1 > c2 {
		return t.op.Identity(), nil
	}
	if r1 < 0 || c1 < 0 || r2 >= t.rows || c2 >= t.cols {
		return t.op.Identity(), fmt.Errorf(
			"%w: rectangle (%d, %d)-(%d, %d), dims %d×%d",
			ErrIndexOutOfRange, r1, c1, r2, c2, t.rows, t.cols)
	}
	whole := t.prefix(r2+1, c2+1)
	above := t.prefix(r1, c2+1)
	left := t.prefix(r2+1, c1)
	corner := t.prefix(r1, c1)
	acc := t.op.Combine(whole, t.op.Inverse(above))
	acc = t.op.Combine(acc, t.op.Inverse(left))
	return t.op.Combine(acc, corner), nil
}

// Get returns the cell at (row, col). O(log rows · log cols).
func (t *Tree2D[T]) Get(row, col int) (T, error) {
	return t.RectQuery(row, col, row, col)
}

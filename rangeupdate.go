package fenwick

import "fmt"

// RangeTree supports updating a whole contiguous range in O(log n),
// trading away cheap arbitrary range queries: only single elements can
// be read back. Use RangeSumTree when both are needed.
//
// Internally the tree stores a difference encoding of the sequence
// rather than the sequence itself, so that the difference tree's
// prefix aggregate at a position equals the logical element there. A
// range update then touches just the two edges of the range.
type RangeTree[T any] struct {
	diff *Tree[T]
	op   Operation[T]
}

// NewRange creates a range-updatable tree of n elements, each starting
// at op's identity.
func NewRange[T any](op Operation[T], n int) *RangeTree[T] {
	return &RangeTree[T]{diff: New(op, n), op: op}
}

// NewRangeFromSlice creates a range-updatable tree holding the given
// elements. O(n).
func NewRangeFromSlice[T any](op Operation[T], values []T) *RangeTree[T] {
	diff := make([]T, len(values))
	prev := op.Identity()
	for i, v := range values {
		diff[i] = op.Combine(v, op.Inverse(prev))
		prev = v
	}
	return &RangeTree[T]{diff: NewFromSlice(op, diff), op: op}
}

// Len returns the number of elements in the tree.
func (r *RangeTree[T]) Len() int {
	return r.diff.Len()
}

func (r *RangeTree[T]) String() string {
	return fmt.Sprintf("RangeTree<n=%d>", r.Len())
}

// RangeUpdate combines delta into every element in [left, right], both
// bounds inclusive, in O(log n) regardless of the range length. An
// empty range (left > right) is a no-op.
func (r *RangeTree[T]) RangeUpdate(left, right int, delta T) error {
	if left > right {
		return nil
	}
	n := r.Len()
	if left < 0 || right >= n {
		return fmt.Errorf(
			"%w: range [%d, %d], size %d", ErrIndexOutOfRange, left, right, n)
	}
	if err := r.diff.Update(left, delta); err != nil {
		return err
	}
	if right+1 < n {
		return r.diff.Update(right+1, r.op.Inverse(delta))
	}
	return nil
}

// Update combines delta into the single element at pos.
func (r *RangeTree[T]) Update(pos int, delta T) error {
	if pos < 0 || pos >= r.Len() {
		return fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, pos, r.Len())
	}
	return r.RangeUpdate(pos, pos, delta)
}

// Get returns the element at pos, reconstructed as the prefix
// aggregate of the difference encoding. O(log n).
func (r *RangeTree[T]) Get(pos int) (T, error) {
	if pos < 0 || pos >= r.Len() {
		return r.op.Identity(), fmt.Errorf(
			"%w: position %d, size %d", ErrIndexOutOfRange, pos, r.Len())
	}
	return r.diff.PrefixQuery(pos + 1)
}

package fenwick

import "fmt"

// RangeSumTree supports both range updates and range sums in O(log n).
//
// It keeps two auxiliary sum trees instead of one: the first carries
// the per-element deltas of every range update, the second carries
// index-weighted correction terms, and a prefix sum of k elements
// falls out as firstPrefix*k - secondPrefix. The index multiplication
// is meaningful for addition only, so unlike Tree this structure is
// not parameterized over an Operation.
type RangeSumTree[T Number] struct {
	deltas  *Tree[T]
	weights *Tree[T]
}

// NewRangeSum creates a zero-initialized tree of n elements.
func NewRangeSum[T Number](n int) *RangeSumTree[T] {
	return &RangeSumTree[T]{
		deltas:  New[T](Sum[T]{}, n),
		weights: New[T](Sum[T]{}, n),
	}
}

// NewRangeSumFromSlice creates a tree holding the given elements.
// O(n): both auxiliary trees are built with the single-parent
// propagation used by NewFromSlice.
func NewRangeSumFromSlice[T Number](values []T) *RangeSumTree[T] {
	n := len(values)
	deltas := make([]T, n)
	weights := make([]T, n)
	var prev T
	for i, v := range values {
		d := v - prev
		prev = v
		deltas[i] = d
		weights[i] = d * T(i)
	}
	return &RangeSumTree[T]{
		deltas:  NewFromSlice[T](Sum[T]{}, deltas),
		weights: NewFromSlice[T](Sum[T]{}, weights),
	}
}

// Len returns the number of elements in the tree.
func (t *RangeSumTree[T]) Len() int {
	return t.deltas.Len()
}

func (t *RangeSumTree[T]) String() string {
	return fmt.Sprintf("RangeSumTree<n=%d>", t.Len())
}

// RangeUpdate adds delta to every element in [left, right], both
// bounds inclusive. An empty range (left > right) is a no-op.
func (t *RangeSumTree[T]) RangeUpdate(left, right int, delta T) error {
	if left > right {
		return nil
	}
	n := t.Len()
	if left < 0 || right >= n {
		return fmt.Errorf(
			"%w: range [%d, %d], size %d", ErrIndexOutOfRange, left, right, n)
	}
	t.deltas.Update(left, delta)
	t.weights.Update(left, delta*T(left))
	if right+1 < n {
		t.deltas.Update(right+1, -delta)
		t.weights.Update(right+1, -delta*T(right+1))
	}
	return nil
}

// Update adds delta to the single element at pos.
func (t *RangeSumTree[T]) Update(pos int, delta T) error {
	if pos < 0 || pos >= t.Len() {
		return fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, pos, t.Len())
	}
	return t.RangeUpdate(pos, pos, delta)
}

// PrefixQuery returns the sum of the first count elements.
func (t *RangeSumTree[T]) PrefixQuery(count int) (T, error) {
	sum, err := t.deltas.PrefixQuery(count)
	if err != nil {
		return 0, err
	}
	correction, err := t.weights.PrefixQuery(count)
	if err != nil {
		return 0, err
	}
	return sum*T(count) - correction, nil
}

// RangeQuery returns the sum of the elements in [left, right], both
// bounds inclusive. An empty range yields zero rather than an error.
func (t *RangeSumTree[T]) RangeQuery(left, right int) (T, error) {
	if left > right {
		return 0, nil
	}
	if left < 0 || right >= t.Len() {
		return 0, fmt.Errorf(
			"%w: range [%d, %d], size %d", ErrIndexOutOfRange, left, right, t.Len())
	}
	hi, err := t.PrefixQuery(right + 1)
	if err != nil {
		return 0, err
	}
	lo, err := t.PrefixQuery(left)
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

// Get returns the element at pos.
func (t *RangeSumTree[T]) Get(pos int) (T, error) {
	return t.RangeQuery(pos, pos)
}

// Package fenwick provides list data structures supporting efficient
// prefix and range aggregates.
//
// A Fenwick tree, or binary indexed tree, represents a fixed-length
// sequence of numbers as an implicit tree stored in a flat array,
// where each slot holds the combined aggregate of a deterministic
// sub-range of the sequence. Compared to a plain array it achieves a
// better balance between element update and prefix aggregation - both
// run in O(log n) time - while using the same amount of memory.
//
// The aggregate itself is pluggable: any associative operation with an
// identity and a per-element inverse works (see Operation), with
// addition and XOR provided out of the box. RangeTree adds O(log n)
// updates over contiguous ranges, RangeSumTree combines range updates
// with range sums, and Tree2D extends the scheme to rectangle
// aggregates over a grid.
//
// None of the structures lock internally. Queries may run concurrently
// with each other, but callers must serialize updates against all
// other operations on the same instance.
package fenwick

import "fmt"

// lowbit returns the lowest set bit of i, always a power of two.
//
// In two's complement, negation flips every bit above the lowest set
// bit and leaves that bit and everything below unchanged, so the AND
// isolates exactly that bit. i must be positive.
func lowbit(i int) int {
	return i & -i
}

// Tree is a Fenwick tree over the aggregate described by an Operation.
// Positions are 0-based and the length is fixed at construction.
type Tree[T any] struct {
	// Slot i (1-based, slot 0 unused) holds the combined aggregate of
	// the logical positions in [i-lowbit(i)+1, i]. To aggregate a
	// prefix of k elements, combine the slots that correspond to each
	// 1 bit in the binary expansion of k: for k = 13 = 1101₂ these are
	// slots 1101₂, 1100₂ and 1000₂, holding the last element, the
	// four before it, and the eight before those.
	tree []T
	op   Operation[T]
}

// New creates a tree of n elements, each starting at op's identity.
// A negative n yields an empty tree.
func New[T any](op Operation[T], n int) *Tree[T] {
	if n < 0 {
		n = 0
	}
	tree := make([]T, n+1)
	for i := range tree {
		tree[i] = op.Identity()
	}
	return &Tree[T]{tree: tree, op: op}
}

// NewFromSlice creates a tree holding the given elements.
//
// The build runs in O(n): each slot already aggregates its own
// sub-range by the time it is folded into its one immediate parent,
// so no slot retraces a full O(log n) update chain.
func NewFromSlice[T any](op Operation[T], values []T) *Tree[T] {
	n := len(values)
	tree := make([]T, n+1)
	tree[0] = op.Identity()
	copy(tree[1:], values)
	for i := 1; i <= n; i++ {
		if parent := i + lowbit(i); parent <= n {
			tree[parent] = op.Combine(tree[parent], tree[i])
		}
	}
	return &Tree[T]{tree: tree, op: op}
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return len(t.tree) - 1
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("Tree<n=%d>", t.Len())
}

// Update combines delta into the element at pos.
func (t *Tree[T]) Update(pos int, delta T) error {
	n := t.Len()
	if pos < 0 || pos >= n {
		return fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, pos, n)
	}
	for i := pos + 1; i <= n; i += lowbit(i) {
		t.tree[i] = t.op.Combine(t.tree[i], delta)
	}
	return nil
}

// PrefixQuery returns the aggregate of the first count elements.
// PrefixQuery(0) is the identity.
func (t *Tree[T]) PrefixQuery(count int) (T, error) {
	if count < 0 || count > t.Len() {
		return t.op.Identity(), fmt.Errorf(
			"%w: count %d, size %d", ErrIndexOutOfRange, count, t.Len())
	}
	acc := t.op.Identity()
	for i := count; i > 0; i -= lowbit(i) {
		acc = t.op.Combine(acc, t.tree[i])
	}
	return acc, nil
}

// RangeQuery returns the aggregate of the elements in [left, right],
// both bounds inclusive. An empty range (left > right) yields the
// identity rather than an error.
func (t *Tree[T]) RangeQuery(left, right int) (T, error) {
	if left > right {
		return t.op.Identity(), nil
	}
	if left < 0 || right >= t.Len() {
		return t.op.Identity(), fmt.Errorf(
			"%w: range [%d, %d], size %d", ErrIndexOutOfRange, left, right, t.Len())
	}
	acc, err := t.PrefixQuery(right + 1)
	if err != nil || left == 0 {
		return acc, err
	}
	head, err := t.PrefixQuery(left)
	if err != nil {
		return t.op.Identity(), err
	}
	return t.op.Combine(acc, t.op.Inverse(head)), nil
}

// Get returns the element at pos. The element is not stored anywhere
// directly, so this recomputes it from two prefix aggregates in
// O(log n) instead of keeping a duplicate O(n) copy of the sequence.
func (t *Tree[T]) Get(pos int) (T, error) {
	return t.RangeQuery(pos, pos)
}

// Set replaces the element at pos with value, using the operation's
// inverse to cancel the element's previous contribution.
func (t *Tree[T]) Set(pos int, value T) error {
	current, err := t.Get(pos)
	if err != nil {
		return err
	}
	return t.Update(pos, t.op.Combine(value, t.op.Inverse(current)))
}

package fenwick

import (
	"errors"
	"testing"

	rng "github.com/leesper/go_rng"
)

func TestRangeUpdatePointGet(t *testing.T) {
	t.Parallel()

	gen := rng.NewUniformGenerator(0xBEEF)
	const n = 400

	values := make([]int64, n)
	for i := range values {
		values[i] = gen.Int64Range(-100, 100)
	}
	tree := NewRangeFromSlice(Sum[int64]{}, values)

	for round := 0; round < 500; round++ {
		left := int(gen.Int64n(n))
		right := int(gen.Int64n(n))
		if left > right {
			left, right = right, left
		}
		delta := gen.Int64Range(-20, 20)

		if err := tree.RangeUpdate(left, right, delta); err != nil {
			t.Fatalf("RangeUpdate(%d, %d, %d) failed: %v", left, right, delta, err)
		}
		for i := left; i <= right; i++ {
			values[i] += delta
		}

		// Spot-check inside, outside and at the edges of the range.
		for _, pos := range []int{0, left, (left + right) / 2, right, n - 1} {
			got, err := tree.Get(pos)
			if err != nil {
				t.Fatalf("Get(%d) failed: %v", pos, err)
			}
			if got != values[pos] {
				t.Fatalf("After RangeUpdate(%d, %d, %d): Get(%d) = %d, want %d",
					left, right, delta, pos, got, values[pos])
			}
		}
	}

	for pos := 0; pos < n; pos++ {
		got, _ := tree.Get(pos)
		if got != values[pos] {
			t.Fatalf("Final state differs at %d: got %d, want %d", pos, got, values[pos])
		}
	}
}

func TestRangeUpdateEdges(t *testing.T) {
	t.Parallel()

	tree := NewRange[int64](Sum[int64]{}, 5)

	// Whole sequence, so no cancelling update exists past the end.
	if err := tree.RangeUpdate(0, 4, 3); err != nil {
		t.Fatalf("RangeUpdate(0, 4, 3) failed: %v", err)
	}
	for pos := 0; pos < 5; pos++ {
		got, _ := tree.Get(pos)
		if got != 3 {
			t.Errorf("Get(%d) after a whole-range update should give 3. Got %d", pos, got)
		}
	}

	if err := tree.Update(2, 7); err != nil {
		t.Fatalf("Update(2, 7) failed: %v", err)
	}
	got, _ := tree.Get(2)
	if got != 10 {
		t.Errorf("Get(2) after a single-element update should give 10. Got %d", got)
	}
	got, _ = tree.Get(3)
	if got != 3 {
		t.Errorf("A single-element update leaked to position 3: got %d", got)
	}

	// Empty range is a no-op, not an error.
	if err := tree.RangeUpdate(4, 2, 100); err != nil {
		t.Errorf("An empty range update is not an error. Got: %v", err)
	}
	got, _ = tree.Get(3)
	if got != 3 {
		t.Errorf("An empty range update modified the tree: got %d", got)
	}
}

func TestRangeUpdateOutOfRange(t *testing.T) {
	t.Parallel()

	tree := NewRange[int64](Sum[int64]{}, 5)

	if err := tree.RangeUpdate(0, 5, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RangeUpdate(0, n, 1) should fail with ErrIndexOutOfRange. Got: %v", err)
	}
	if err := tree.RangeUpdate(-1, 2, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RangeUpdate(-1, 2, 1) should fail with ErrIndexOutOfRange. Got: %v", err)
	}
	if err := tree.Update(5, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Update(n, 1) should fail with ErrIndexOutOfRange. Got: %v", err)
	}
	if _, err := tree.Get(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Get(n) should fail with ErrIndexOutOfRange. Got: %v", err)
	}

	for pos := 0; pos < 5; pos++ {
		got, _ := tree.Get(pos)
		if got != 0 {
			t.Errorf("Rejected updates modified the tree at %d: got %d", pos, got)
		}
	}
}

func TestRangeUpdateXor(t *testing.T) {
	t.Parallel()

	// The difference encoding only relies on combine/inverse, so range
	// updates work for XOR too: every element in the range gets the
	// mask folded in.
	values := []uint32{0x1, 0x2, 0x4, 0x8, 0x10}
	tree := NewRangeFromSlice(Xor[uint32]{}, values)

	if err := tree.RangeUpdate(1, 3, 0xF0); err != nil {
		t.Fatalf("RangeUpdate failed: %v", err)
	}

	want := []uint32{0x1, 0xF2, 0xF4, 0xF8, 0x10}
	for pos, w := range want {
		got, err := tree.Get(pos)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", pos, err)
		}
		if got != w {
			t.Errorf("Get(%d) = %x, want %x", pos, got, w)
		}
	}
}

func benchmarkRangeUpdate(size int, b *testing.B) {
	tree := NewRange[int64](Sum[int64]{}, size)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		err := tree.RangeUpdate(n%(size/2), size/2+n%(size/2), 1)
		if err != nil {
			b.Error(err)
		}
	}
	b.StopTimer()
}

func BenchmarkRangeUpdate10000(b *testing.B) {
	benchmarkRangeUpdate(10000, b)
}

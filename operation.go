package fenwick

// Number is the set of built-in numeric types that support addition
// and negation, i.e. everything Sum can aggregate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the subset of Number with a defined bitwise XOR.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Operation describes the aggregate a tree computes over its elements.
//
// Combine must be associative and Identity must be its neutral element;
// Inverse must satisfy Combine(v, Inverse(v)) == Identity() for every v,
// which is what lets a range aggregate be derived from two prefix
// aggregates. None of these laws are checked at runtime - verifying
// them per call would cost more than the queries they enable - so a
// descriptor that violates them silently corrupts query results.
// Non-invertible aggregates such as min and max cannot be expressed.
type Operation[T any] interface {
	Identity() T
	Combine(a, b T) T
	Inverse(v T) T
}

// Sum aggregates by addition. For unsigned types the arithmetic wraps,
// so aggregates are exact modulo 2^bits.
type Sum[T Number] struct{}

func (Sum[T]) Identity() T {
	var zero T
	return zero
}

func (Sum[T]) Combine(a, b T) T {
	return a + b
}

func (Sum[T]) Inverse(v T) T {
	return -v
}

// Xor aggregates by bitwise XOR. XOR is its own inverse, so Inverse is
// the identity function.
type Xor[T Integer] struct{}

func (Xor[T]) Identity() T {
	var zero T
	return zero
}

func (Xor[T]) Combine(a, b T) T {
	return a ^ b
}

func (Xor[T]) Inverse(v T) T {
	return v
}

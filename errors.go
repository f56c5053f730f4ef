package fenwick

import "errors"

// ErrIndexOutOfRange is returned when a position, count or range bound
// falls outside the tree. It is the only error this package produces;
// an operation that returns it has not modified the tree.
var ErrIndexOutOfRange = errors.New("fenwick: index out of range")

package util

// Ptr lifts a value into a pointer for the nullable model fields.
func Ptr[T any](v T) *T {
	return &v
}

// FromPtr unwraps p, producing T's zero value for nil.
func FromPtr[T any](p *T) T {
	var v T
	if p != nil {
		v = *p
	}
	return v
}

// Clamp pins n to the inclusive range [lo, hi].
func Clamp(n, lo, hi int) int {
	switch {
	case n < lo:
		return lo
	case n > hi:
		return hi
	}
	return n
}

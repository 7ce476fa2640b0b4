// Package ptr provides a shorthand for taking the address of a value
package ptr

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

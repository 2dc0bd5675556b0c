// Package option provides helpers for optional values modelled as pointers.
package option

// Flatten collapses a pointer to an optional value into the optional value
// itself. The result is nil when either layer is nil.
func Flatten[T any](v **T) *T {
	if v == nil {
		return nil
	}
	return *v
}

// Of returns a pointer to a copy of v.
func Of[T any](v T) *T {
	return &v
}

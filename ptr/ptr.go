// Package ptr has helpers for making pointers to values.
package ptr

func Int(i int) *int {
	return &i
}

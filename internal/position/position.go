// Package position defines how an ordered list maps to integer
// positions: a stable array-move for reordering, and renumbering by
// index as the single source of canonical position values.
package position

// Reorder moves the element at from to index to, preserving the
// relative order of all other elements. It is a stable array-move,
// not a swap: Reorder([A B C D], 0, 2) yields [B C A D].
//
// from == to returns the input slice unchanged. An out-of-range from
// is a no-op. to is clamped into [0, len-1], so moving to one past
// the end inserts at the tail.
func Reorder[T any](list []T, from, to int) []T {
	if from == to {
		return list
	}
	if from < 0 || from >= len(list) {
		return list
	}
	if to < 0 {
		to = 0
	}
	if to >= len(list) {
		to = len(list) - 1
	}
	if from == to {
		return list
	}

	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)

	// Insert the moved element at the target index.
	out = append(out, *new(T))
	copy(out[to+1:], out[to:])
	out[to] = list[from]
	return out
}

// Remove returns list without the element at index i, or the input
// unchanged when i is out of range.
func Remove[T any](list []T, i int) []T {
	if i < 0 || i >= len(list) {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return out
}

// Insert returns list with v inserted at index i. i is clamped into
// [0, len], so any index past the end appends.
func Insert[T any](list []T, v T, i int) []T {
	if i < 0 {
		i = 0
	}
	if i > len(list) {
		i = len(list)
	}
	out := make([]T, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, v)
	out = append(out, list[i:]...)
	return out
}

// Package listutil provides the slice transformations used when
// spreading work across download workers.
package listutil

// Divide returns pieces slices with the items of src evenly
// distributed: earlier pieces receive one extra item each until the
// remainder is used up.
func Divide[T any](src []T, pieces int) [][]T {
	sliceSize := len(src) / pieces
	remainder := len(src) % pieces

	result := make([][]T, 0, pieces)
	start := 0
	for i := 0; i < pieces; i++ {
		size := sliceSize
		if remainder > 0 {
			size++
			remainder--
		}
		result = append(result, src[start:start+size])
		start += size
	}
	return result
}

// Chunk breaks src into slices no longer than length.
func Chunk[T any](src []T, length int) [][]T {
	result := make([][]T, 0, (len(src)+length-1)/length)
	for i := 0; i < len(src); i += length {
		result = append(result, src[i:min(i+length, len(src))])
	}
	return result
}

// Run is a run of adjacent values in pre-sorted data, identified by
// its first and last member.
type Run struct {
	First int
	Last  int
}

// Runs identifies runs of adjacent values in pre-sorted data, e.g.
// [0 1 2 5 6 10] yields {0 2} {5 6} {10 10}.
func Runs(sorted []int) []Run {
	if len(sorted) == 0 {
		return nil
	}

	var runs []Run
	current := Run{First: sorted[0], Last: sorted[0]}
	for _, v := range sorted[1:] {
		if v-current.Last <= 1 {
			current.Last = v
			continue
		}
		runs = append(runs, current)
		current = Run{First: v, Last: v}
	}
	return append(runs, current)
}

// TrimLastChar removes the last character from a list of strings,
// such that the last item is never left empty.
func TrimLastChar(items []string) []string {
	if len(items) == 0 {
		return items
	}
	last := len(items) - 1
	if items[last] == "" {
		return items[:last]
	}
	items[last] = items[last][:len(items[last])-1]
	if items[last] == "" {
		return items[:last]
	}
	return items
}

package listutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intRange(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name     string
		src      []int
		pieces   int
		expected [][]int
	}{
		{
			name:     "even split",
			src:      intRange(12),
			pieces:   4,
			expected: [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11}},
		},
		{
			name:     "remainder spread over early pieces",
			src:      intRange(11),
			pieces:   4,
			expected: [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10}},
		},
		{
			name:     "one piece",
			src:      intRange(3),
			pieces:   1,
			expected: [][]int{{0, 1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Divide(tt.src, tt.pieces))
		})
	}
}

func TestChunk(t *testing.T) {
	assert.Equal(t,
		[][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10}},
		Chunk(intRange(11), 3))
	assert.Equal(t,
		[][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11}},
		Chunk(intRange(12), 3))
	assert.Empty(t, Chunk([]int{}, 3))
}

func TestRuns(t *testing.T) {
	tests := []struct {
		name     string
		sorted   []int
		expected []Run
	}{
		{
			name:   "mixed runs",
			sorted: []int{0, 1, 2, 3, 5, 6, 7, 10, 11, 13, 16},
			expected: []Run{
				{First: 0, Last: 3}, {First: 5, Last: 7},
				{First: 10, Last: 11}, {First: 13, Last: 13}, {First: 16, Last: 16},
			},
		},
		{
			name:     "single value",
			sorted:   []int{0},
			expected: []Run{{First: 0, Last: 0}},
		},
		{
			name:     "distant values",
			sorted:   []int{0, 1, 10, 100, 101},
			expected: []Run{{First: 0, Last: 1}, {First: 10, Last: 10}, {First: 100, Last: 101}},
		},
		{
			name:     "empty",
			sorted:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Runs(tt.sorted))
		})
	}
}

func TestTrimLastChar(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected []string
	}{
		{name: "trims final character", items: []string{" abc", "def", "ghi"}, expected: []string{" abc", "def", "gh"}},
		{name: "down to one character", items: []string{" abc", "def", "gh"}, expected: []string{" abc", "def", "g"}},
		{name: "drops emptied item", items: []string{" abc", "def", "g"}, expected: []string{" abc", "def"}},
		{name: "space survives", items: []string{" a"}, expected: []string{" "}},
		{name: "single space emptied and dropped", items: []string{" "}, expected: []string{}},
		{name: "empty list", items: []string{}, expected: []string{}},
		{name: "empty last item dropped", items: []string{"ab", ""}, expected: []string{"ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrimLastChar(tt.items))
		})
	}
}

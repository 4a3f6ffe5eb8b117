// Package format renders numbers, byte sizes and lists of items the
// way they are shown to users in the interface.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// File size suffixes. Decimal units in the Microsoft style: 1000
// bytes is 1 KB, not 1 KiB.
var suffixes = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Size humanizes a byte count with two decimal places, trimming
// trailing zeros. A size of zero renders as the empty string.
func Size(sizeInBytes int64) string {
	return SizeOpts(sizeInBytes, "", 2)
}

// SizeOpts humanizes a byte count.
//
//	SizeOpts(0, "", 2)       -> ""
//	SizeOpts(1000, "", 2)    -> "1 KB"
//	SizeOpts(1024, "", 2)    -> "1.02 KB"
//	SizeOpts(1024, "", 0)    -> "1 KB"
func SizeOpts(sizeInBytes int64, zeroString string, decimals int) string {
	if sizeInBytes == 0 {
		return zeroString
	}

	size := float64(sizeInBytes)
	i := 0
	for size >= 1000 && i < len(suffixes)-1 {
		size /= 1000
		i++
	}

	var s string
	if decimals > 0 {
		s = strconv.FormatFloat(size, 'f', decimals, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	} else {
		s = strconv.FormatFloat(size, 'f', 0, 64)
	}
	return s + " " + suffixes[i]
}

// Thousands adds a thousands separator to an integer,
// e.g. 1000 becomes "1,000".
func Thousands(i int64) string {
	return humanize.Comma(i)
}

// List makes a single string out of a list of items, e.g.
// "one, two and three". An empty list renders as the empty string.
func List(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s and %s", items[0], items[1])
	}

	s := items[0]
	for _, item := range items[1 : len(items)-1] {
		s = fmt.Sprintf("%s, %s", s, item)
	}
	return fmt.Sprintf("%s and %s", s, items[len(items)-1])
}

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// Letters returns the letter representation of a non-negative number:
// 0 is "a", 25 is "z", 26 is "aa".
func Letters(x int) string {
	v := ""
	for x > 25 {
		r := x % 26
		x = x/26 - 1
		v = string(lowercase[r]) + v
	}
	return string(lowercase[x]) + v
}

package fsutil

import (
	"math/rand/v2"
	"strings"
)

// the characters used to generate temporary file names
const fileNameCharacters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const randomNameLength = 5

// RandomFileName returns a 5 character random file name. When ext is
// non-empty it is appended after a dot.
func RandomFileName(ext string) string {
	var b strings.Builder
	for range randomNameLength {
		b.WriteByte(fileNameCharacters[rand.IntN(len(fileNameCharacters))])
	}
	if ext != "" {
		return b.String() + "." + ext
	}
	return b.String()
}

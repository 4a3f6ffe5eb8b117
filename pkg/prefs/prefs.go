// Package prefs converts raw preference values in the format emitted
// by gconftool-2 into Go values, for importing settings from very old
// program versions.
package prefs

import (
	"fmt"
	"strings"
)

// ListFromGConfString takes a raw list preference value as returned
// by gconftool-2, e.g. "[Text,IMG_,,Sequences]", and converts it to a
// list of strings. Commas escaped with a backslash do not split.
func ListFromGConfString(value string) ([]string, error) {
	if len(value) < 2 || value[0] != '[' || value[len(value)-1] != ']' {
		return nil, fmt.Errorf("malformed gconftool-2 list %q", value)
	}
	value = value[1 : len(value)-1]

	var items []string
	var current strings.Builder
	escaped := false
	for _, r := range value {
		switch {
		case escaped:
			// Only the comma needs unescaping; any other escaped
			// character keeps its backslash.
			if r != ',' {
				current.WriteByte('\\')
			}
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ',':
			items = append(items, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteByte('\\')
	}
	return append(items, current.String()), nil
}

// BoolFromGConfString converts a raw boolean preference value as
// returned by gconftool-2.
func BoolFromGConfString(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("malformed gconftool-2 boolean %q", value)
}

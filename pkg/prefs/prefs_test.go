package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFromGConfString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:  "rename preference list",
			input: "[Text,IMG_,,Sequences,Stored number,Four digits,Filename,Extension,UPPERCASE]",
			expected: []string{
				"Text", "IMG_", "", "Sequences", "Stored number",
				"Four digits", "Filename", "Extension", "UPPERCASE",
			},
		},
		{
			name:     "escaped commas and trailing empties",
			input:    `[Text,IMG_\,\;+=|!@\,#^&*()$%/",,]`,
			expected: []string{"Text", `IMG_,\;+=|!@,#^&*()$%/"`, "", ""},
		},
		{
			name:     "simple values",
			input:    "[Manila,Dubai,London]",
			expected: []string{"Manila", "Dubai", "London"},
		},
		{
			name:     "single value",
			input:    "[Text]",
			expected: []string{"Text"},
		},
		{
			name:     "empty list",
			input:    "[]",
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ListFromGConfString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, items)
		})
	}
}

func TestListFromGConfStringMalformed(t *testing.T) {
	for _, input := range []string{"", "[", "]", "Manila,Dubai"} {
		_, err := ListFromGConfString(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestBoolFromGConfString(t *testing.T) {
	b, err := BoolFromGConfString("true")
	require.NoError(t, err)
	assert.True(t, b)

	b, err = BoolFromGConfString("false")
	require.NoError(t, err)
	assert.False(t, b)

	for _, input := range []string{"", "True", "FALSE", "1", "yes"} {
		_, err := BoolFromGConfString(input)
		assert.Error(t, err, "input %q", input)
	}
}

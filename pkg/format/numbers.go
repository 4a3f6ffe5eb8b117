package format

import "fmt"

// NumberWord is the written form of a small integer and whether it
// takes a plural noun.
type NumberWord struct {
	Word   string
	Plural bool
}

var longNumbers = map[int]string{
	1:  "one",
	2:  "two",
	3:  "three",
	4:  "four",
	5:  "five",
	6:  "six",
	7:  "seven",
	8:  "eight",
	9:  "nine",
	10: "ten",
	11: "eleven",
	12: "twelve",
	13: "thirteen",
	14: "fourteen",
	15: "fifteen",
	16: "sixteen",
	17: "seventeen",
	18: "eighteen",
	19: "nineteen",
	20: "twenty",
}

// Number converts an integer between 1 and 20 to its written form.
func Number(value int) (NumberWord, error) {
	word, ok := longNumbers[value]
	if !ok {
		return NumberWord{}, fmt.Errorf("no written form for %d", value)
	}
	return NumberWord{Word: word, Plural: value > 1}, nil
}

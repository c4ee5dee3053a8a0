package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Split(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []Phrase
	}{
		{
			name:   "blank string",
			input:  "",
			expect: nil,
		},
		{
			name:   "whitespace only",
			input:  "   \t  ",
			expect: nil,
		},
		{
			name:   "single verb",
			input:  "look",
			expect: []Phrase{{Verb: "look"}},
		},
		{
			name:   "verb with argument",
			input:  "take lantern",
			expect: []Phrase{{Verb: "take", Arg: "lantern"}},
		},
		{
			name:   "argument keeps internal spaces",
			input:  "use rusty key on door",
			expect: []Phrase{{Verb: "use", Arg: "rusty key on door"}},
		},
		{
			name:  "two phrases chained",
			input: "take coin and drop lantern",
			expect: []Phrase{
				{Verb: "take", Arg: "coin"},
				{Verb: "drop", Arg: "lantern"},
			},
		},
		{
			name:  "three phrases chained",
			input: "look and take coin and go north",
			expect: []Phrase{
				{Verb: "look"},
				{Verb: "take", Arg: "coin"},
				{Verb: "go", Arg: "north"},
			},
		},
		{
			name:   "input is lowercased",
			input:  "TAKE Lantern",
			expect: []Phrase{{Verb: "take", Arg: "lantern"}},
		},
		{
			name:   "empty segments are dropped",
			input:  "look and and go north and ",
			expect: []Phrase{{Verb: "look"}, {Verb: "go", Arg: "north"}},
		},
		{
			name:   "leading separator is dropped",
			input:  "and look",
			expect: []Phrase{{Verb: "look"}},
		},
		{
			name:   "only separators",
			input:  "and and and",
			expect: nil,
		},
		{
			name:   "chain word requires surrounding spaces",
			input:  "take sandwich",
			expect: []Phrase{{Verb: "take", Arg: "sandwich"}},
		},
		{
			name:   "word containing and is not a separator",
			input:  "take wand",
			expect: []Phrase{{Verb: "take", Arg: "wand"}},
		},
		{
			name:   "extra spaces between words",
			input:  "  go   north  ",
			expect: []Phrase{{Verb: "go", Arg: "north"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Split(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Join_roundTripsWithSplit(t *testing.T) {
	inputs := []string{
		"look",
		"take coin and drop lantern",
		"use rusty key on door and go north",
		"  TAKE   Coin  and  LOOK ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert := assert.New(t)

			once := Split(input)
			again := Split(Join(once))

			assert.Equal(once, again)
		})
	}
}

func Test_Phrase_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("look", Phrase{Verb: "look"}.String())
	assert.Equal("take coin", Phrase{Verb: "take", Arg: "coin"}.String())
}

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Suggest(t *testing.T) {
	known := []string{"look", "take", "drop", "go", "attack", "inventory"}

	testCases := []struct {
		name   string
		verb   string
		expect string
	}{
		{
			name:   "one letter off",
			verb:   "tkae",
			expect: "take",
		},
		{
			name:   "transposed",
			verb:   "lokk",
			expect: "look",
		},
		{
			name:   "exact match still suggests itself",
			verb:   "drop",
			expect: "drop",
		},
		{
			name:   "nothing close",
			verb:   "xylophone",
			expect: "",
		},
		{
			name:   "too short to guess about",
			verb:   "g",
			expect: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, Suggest(tc.verb, known))
		})
	}
}

func Test_Suggest_tiesBreakLexicographically(t *testing.T) {
	assert := assert.New(t)

	// both candidates are one edit from "bat"
	assert.Equal("bad", Suggest("bat", []string{"bag", "bad"}))
}

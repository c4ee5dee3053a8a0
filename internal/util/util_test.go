package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	testCases := []struct {
		name     string
		items    []string
		articles bool
		expect   string
	}{
		{
			name:   "empty",
			items:  nil,
			expect: "",
		},
		{
			name:   "one item",
			items:  []string{"sword"},
			expect: "sword",
		},
		{
			name:   "two items",
			items:  []string{"sword", "shield"},
			expect: "sword and shield",
		},
		{
			name:   "three items get an oxford comma",
			items:  []string{"sword", "shield", "torch"},
			expect: "sword, shield, and torch",
		},
		{
			name:     "articles",
			items:    []string{"sword", "apple"},
			articles: true,
			expect:   "a sword and an apple",
		},
		{
			name:     "articles lower leading capitals",
			items:    []string{"Sword"},
			articles: true,
			expect:   "A sword",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, MakeTextList(tc.items, tc.articles))
		})
	}
}

func Test_ArticleFor(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("a", ArticleFor("sword", false))
	assert.Equal("an", ArticleFor("apple", false))
	assert.Equal("the", ArticleFor("sword", true))
	assert.Equal("A", ArticleFor("Sword", false))
	assert.Equal("An", ArticleFor("Apple", false))
	assert.Equal("The", ArticleFor("Sword", true))
	assert.Equal("", ArticleFor("", false))
}

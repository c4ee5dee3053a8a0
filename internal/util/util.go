// Package util has small text helpers shared by output-producing code.
package util

import (
	"strings"
	"unicode"
)

// MakeTextList renders a human list of the given names with an oxford comma
// where needed. If articles is true, each name is preceded by "a"/"an" and
// leading capitals of non-acronym names are lowered.
func MakeTextList(items []string, articles bool) string {
	if len(items) < 1 {
		return ""
	}

	withArts := make([]string, len(items))
	for i := range items {
		item := items[i]
		art := ""
		if articles {
			art = ArticleFor(item, false)

			iRunes := []rune(item)
			leadingUpper := unicode.IsUpper(iRunes[0])
			allCaps := leadingUpper
			if leadingUpper && len(iRunes) > 1 {
				allCaps = unicode.IsUpper(iRunes[1])
			}
			if leadingUpper && !allCaps {
				iRunes[0] = unicode.ToLower(iRunes[0])
				item = string(iRunes)
			}

			art += " "
		}
		withArts[i] = art + item
	}

	if len(withArts) == 1 {
		return withArts[0]
	}
	if len(withArts) == 2 {
		return withArts[0] + " and " + withArts[1]
	}
	withArts[len(withArts)-1] = "and " + withArts[len(withArts)-1]
	return strings.Join(withArts, ", ")
}

// ArticleFor returns the indefinite or definite article for s, capitalized if
// s starts with a capital.
func ArticleFor(s string, definite bool) string {
	if s == "" {
		return ""
	}

	sRunes := []rune(s)
	leadingUpper := unicode.IsUpper(sRunes[0])

	var art string
	if definite {
		art = "the"
		if leadingUpper {
			art = "The"
		}
	} else {
		art = "a"
		if leadingUpper {
			art = "A"
		}
		switch unicode.ToLower(sRunes[0]) {
		case 'a', 'e', 'i', 'o', 'u':
			art += "n"
		}
	}

	return art
}

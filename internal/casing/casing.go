// Package casing projects identifiers into the forms used by serialized
// documents: lowerCamelCase list values and human readable labels.
package casing

import (
	"regexp"
	"strings"
	"unicode"
)

var separatorPattern = regexp.MustCompile(`[_\-\s]+`)

// LowerCamel converts an identifier into lowerCamelCase. The identifier is
// split on separators (underscore, dash, whitespace), lower-to-upper
// transitions and the end of an upper-case run followed by a lower-case
// letter. The first word is lowercased; every following word keeps an upper
// first letter and lowercases the rest.
//
//	ValueOne   -> valueOne
//	HTTPServer -> httpServer
//	user_id    -> userId
func LowerCamel(name string) string {
	words := Words(name, false)
	if len(words) == 0 {
		return ""
	}

	var out strings.Builder
	out.Grow(len(name))
	out.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		out.WriteString(capitalize(word))
	}
	return out.String()
}

// Humanize converts a field or member name into a human friendly label. It
// behaves like LowerCamel's splitter but additionally separates letters from
// digits, then title-cases each word.
func Humanize(name string) string {
	words := Words(name, true)
	if len(words) == 0 {
		return ""
	}
	segments := make([]string, 0, len(words))
	for _, word := range words {
		segments = append(segments, capitalize(word))
	}
	return strings.Join(segments, " ")
}

// Words splits an identifier into its word segments. When splitDigits is true
// letter/digit transitions also start a new word.
func Words(name string, splitDigits bool) []string {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	var words []string
	for _, chunk := range separatorPattern.Split(name, -1) {
		if chunk == "" {
			continue
		}
		words = append(words, splitCamel(chunk, splitDigits)...)
	}
	return words
}

func splitCamel(input string, splitDigits bool) []string {
	runes := []rune(input)
	var (
		words []string
		start int
	)
	for i := 1; i < len(runes); i++ {
		if isBoundary(runes, i, splitDigits) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func isBoundary(runes []rune, index int, splitDigits bool) bool {
	prev, cur := runes[index-1], runes[index]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur):
		return index+1 < len(runes) && unicode.IsLower(runes[index+1])
	case splitDigits && unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case splitDigits && unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	}
	return false
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

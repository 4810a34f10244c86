// Package content estimates whether an article body carries real prose.
package content

import (
	"regexp"
	"strings"
)

// MinWords is the number of prose words a body needs to count as substantial.
const MinWords = 10

var (
	fencedCode  = regexp.MustCompile("(?s)```.*?```")
	inlineCode  = regexp.MustCompile("`[^`\n]*`")
	image       = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	link        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	htmlTag     = regexp.MustCompile(`<[^>]+>`)
	punctuation = regexp.MustCompile(`[#*_~>\-]`)
)

// WordCount counts the words left after code, images and link targets are
// removed. HTML tags and markdown punctuation are deleted in place, so
// "one-two" and "<b>a</b><b>b</b>" each count as a single word.
func WordCount(markdown string) int {
	if strings.TrimSpace(markdown) == "" {
		return 0
	}

	text := fencedCode.ReplaceAllString(markdown, " ")
	text = inlineCode.ReplaceAllString(text, " ")
	text = image.ReplaceAllString(text, " ")
	text = link.ReplaceAllString(text, "$1")
	text = htmlTag.ReplaceAllString(text, "")
	text = punctuation.ReplaceAllString(text, "")

	return len(strings.Fields(text))
}

// IsSubstantial reports whether markdown has at least MinWords words of prose.
func IsSubstantial(markdown string) bool {
	return WordCount(markdown) >= MinWords
}

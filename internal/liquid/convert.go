package liquid

import (
	"strings"

	"github.com/taigrr/devto-mcp/internal/types"
)

// Convert renders a detected tag as portable text. content is the inner
// content of a block tag and is ignored for inline tags. Unknown tags
// collapse to their argument.
func Convert(match types.LiquidTagMatch, content string) string {
	return convert(strings.ToLower(match.Tag), match.Argument, content)
}

func convert(name, argument, content string) string {
	argument = strings.TrimSpace(argument)
	def, ok := Known(name)
	if !ok {
		return argument
	}
	return def.Convert(argument, strings.TrimSpace(content))
}

// Strip replaces every liquid tag outside ``` fences with its portable
// equivalent. Block tags are replaced first, then inline tags. Stray closing
// markers are left as they are.
func Strip(markdown string) string {
	if markdown == "" {
		return ""
	}
	return stripInline(stripBlocks(markdown))
}

func stripBlocks(s string) string {
	ms := scanMarkers(s)
	if len(ms.list) == 0 {
		return s
	}

	var (
		out     strings.Builder
		tracker fenceTracker
		cursor  int
	)
	out.Grow(len(s))

	for i := 0; i < len(ms.list); i++ {
		m := ms.list[i]
		tracker.feed(s[cursor:m.start])
		out.WriteString(s[cursor:m.start])
		cursor = m.start

		if tracker.inside() || m.closing() {
			continue
		}

		j := ms.closerFor(i)
		if j < 0 {
			continue
		}

		closer := ms.list[j]
		replacement := convert(m.name, m.argument, s[m.end:closer.start])
		tracker.feed(replacement)
		out.WriteString(replacement)
		cursor = closer.end
		i = j
	}
	out.WriteString(s[cursor:])

	return out.String()
}

func stripInline(s string) string {
	ms := scanMarkers(s)
	if len(ms.list) == 0 {
		return s
	}

	var (
		out     strings.Builder
		tracker fenceTracker
		cursor  int
	)
	out.Grow(len(s))

	for _, m := range ms.list {
		tracker.feed(s[cursor:m.start])
		out.WriteString(s[cursor:m.start])
		cursor = m.start

		if tracker.inside() || m.closing() {
			continue
		}

		replacement := convert(m.name, m.argument, "")
		tracker.feed(replacement)
		out.WriteString(replacement)
		cursor = m.end
	}
	out.WriteString(s[cursor:])

	return out.String()
}

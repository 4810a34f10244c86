package liquid

import (
	"regexp"
	"sort"
	"strings"
)

// markerPattern matches a single {% name argument %} marker. The argument
// ends at the first "%}".
var markerPattern = regexp.MustCompile(`\{%\s*(\w+)\s*(.*?)\s*%\}`)

const closingPrefix = "end"

// marker is one {% ... %} occurrence in a document.
type marker struct {
	start, end int
	name       string
	argument   string
}

func (m marker) closing() bool {
	return strings.HasPrefix(m.name, closingPrefix)
}

// markers lists every tag marker in s in document order, together with an
// index of closing markers keyed by the tag they close.
type markers struct {
	list    []marker
	closers map[string][]int
}

func scanMarkers(s string) markers {
	locs := markerPattern.FindAllStringSubmatchIndex(s, -1)
	ms := markers{
		list:    make([]marker, 0, len(locs)),
		closers: make(map[string][]int),
	}
	for _, loc := range locs {
		m := marker{
			start:    loc[0],
			end:      loc[1],
			name:     strings.ToLower(s[loc[2]:loc[3]]),
			argument: strings.TrimSpace(s[loc[4]:loc[5]]),
		}
		if m.closing() {
			opens := strings.TrimPrefix(m.name, closingPrefix)
			ms.closers[opens] = append(ms.closers[opens], len(ms.list))
		}
		ms.list = append(ms.list, m)
	}
	return ms
}

// closerFor returns the index of the first closing marker after position i
// that closes the tag opened at i, or -1. The first closer is authoritative
// even when blocks of the same name are nested.
func (ms markers) closerFor(i int) int {
	open := ms.list[i]
	if open.closing() {
		return -1
	}
	idx := ms.closers[open.name]
	j := sort.SearchInts(idx, i+1)
	if j == len(idx) {
		return -1
	}
	return idx[j]
}

// fenceTracker follows ``` fences over text fed to it in document order.
// Text is fed as it appears in the document being produced, so fences
// introduced by earlier replacements are taken into account.
type fenceTracker struct {
	inFence bool
	head    []byte // first non-blank bytes of the current line, at most 3
}

const fence = "```"

func (f *fenceTracker) feed(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\n' {
			if f.onFenceLine() {
				f.inFence = !f.inFence
			}
			f.head = f.head[:0]
			continue
		}
		if len(f.head) == 0 && isBlank(c) {
			continue
		}
		if len(f.head) < len(fence) {
			f.head = append(f.head, c)
		}
	}
}

// inside reports whether the current position is within a fenced region.
// Fence lines themselves belong to the region. A fence that is never closed
// extends to the end of the document.
func (f *fenceTracker) inside() bool {
	return f.inFence || f.onFenceLine()
}

func (f *fenceTracker) onFenceLine() bool {
	return string(f.head) == fence
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

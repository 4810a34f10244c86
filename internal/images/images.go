// Package images finds image references in article markdown.
package images

import (
	"regexp"
	"sort"
	"strings"

	"github.com/taigrr/devto-mcp/internal/types"
	"github.com/taigrr/devto-mcp/internal/uri"
)

var (
	// ![alt](url "title")
	markdownImage = regexp.MustCompile(`!\[[^\]]*\]\(\s*<?([^)\s>]*)>?[^)]*\)`)

	// <img ... src="url" ...>
	htmlImage = regexp.MustCompile(`(?i)<img\b[^>]*?\ssrc\s*=\s*["']([^"']*)["']`)
)

// Extract returns every markdown and HTML image reference in document order.
func Extract(markdown string) []types.ImageReference {
	refs := []types.ImageReference{}
	if markdown == "" {
		return refs
	}

	for i, line := range strings.Split(markdown, "\n") {
		refs = append(refs, extractLine(line, i+1)...)
	}
	return refs
}

func extractLine(line string, lineNumber int) []types.ImageReference {
	type hit struct {
		offset int
		url    string
	}

	var hits []hit
	for _, pattern := range []*regexp.Regexp{markdownImage, htmlImage} {
		for _, loc := range pattern.FindAllStringSubmatchIndex(line, -1) {
			hits = append(hits, hit{offset: loc[0], url: line[loc[2]:loc[3]]})
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].offset < hits[j].offset
	})

	refs := make([]types.ImageReference, 0, len(hits))
	for _, h := range hits {
		refs = append(refs, types.ImageReference{
			URL:        h.url,
			LineNumber: lineNumber,
			IsAbsolute: uri.IsAbsoluteHTTP(h.url),
		})
	}
	return refs
}

// Relative returns the references that are not absolute http(s) URLs.
func Relative(refs []types.ImageReference) []types.ImageReference {
	out := []types.ImageReference{}
	for _, ref := range refs {
		if !ref.IsAbsolute {
			out = append(out, ref)
		}
	}
	return out
}

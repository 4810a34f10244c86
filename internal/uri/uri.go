// Package uri builds the public URLs that replace embedded media tags.
package uri

import (
	"net/url"
	"regexp"
	"strings"
)

var absoluteHTTP = regexp.MustCompile(`(?i)^https?://`)

// IsAbsoluteHTTP reports whether raw starts with an http:// or https:// scheme.
func IsAbsoluteHTTP(raw string) bool {
	return absoluteHTTP.MatchString(raw)
}

// YouTubeWatch returns the watch page for a YouTube video id.
func YouTubeWatch(id string) string {
	id = firstField(id)
	if IsAbsoluteHTTP(id) {
		return id
	}
	return "https://www.youtube.com/watch?v=" + id
}

// VimeoVideo returns the page for a Vimeo video id.
func VimeoVideo(id string) string {
	id = firstField(id)
	if IsAbsoluteHTTP(id) {
		return id
	}
	return "https://vimeo.com/" + url.PathEscape(id)
}

// TwitterStatus returns the canonical URL of a tweet id.
func TwitterStatus(id string) string {
	id = firstField(id)
	if IsAbsoluteHTTP(id) {
		return id
	}
	return "https://twitter.com/i/status/" + url.PathEscape(id)
}

// GitHub returns a github.com URL for an "owner/repo[/path]" reference.
// Options after the reference (e.g. "no-readme") are ignored.
func GitHub(ref string) string {
	ref = firstField(ref)
	if IsAbsoluteHTTP(ref) {
		return ref
	}

	cleanPath := strings.Trim(ref, "/")

	// Escape each segment but keep the slashes
	parts := strings.Split(cleanPath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return "https://github.com/" + strings.Join(parts, "/")
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Package pathfilter decides which paths under the drafts directory may be
// read, listed or written.
package pathfilter

import (
	"path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnored are the glob patterns excluded from every filter.
var DefaultIgnored = []string{
	".git/**",
	"node_modules/**",
	".obsidian/**",
	"**/.DS_Store",
}

// DefaultExtensions are the file extensions treated as drafts.
var DefaultExtensions = []string{
	".md",
	".markdown",
}

var extensionPattern = regexp.MustCompile(`^[a-zA-Z0-9]{1,10}$`)

// PathFilter filters draft paths by ignore pattern and file extension.
type PathFilter struct {
	ignoredPatterns   []string
	allowedExtensions []string
}

// New creates a PathFilter with the default rules plus extra ignore
// patterns. Patterns use doublestar syntax with forward slashes; a
// malformed pattern never matches.
func New(extra []string) *PathFilter {
	pf := &PathFilter{
		ignoredPatterns:   append([]string(nil), DefaultIgnored...),
		allowedExtensions: append([]string(nil), DefaultExtensions...),
	}

	for _, pattern := range extra {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		pf.ignoredPatterns = append(pf.ignoredPatterns, pattern)
	}

	return pf
}

// IsIgnored reports whether path matches an ignore pattern. Directories
// should be checked with IsIgnored so a walk can skip them early.
func (pf *PathFilter) IsIgnored(p string) bool {
	p = normalize(p)
	for _, pattern := range pf.ignoredPatterns {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}

// IsAllowed checks if a path is allowed based on the filter rules. Paths
// that look like files must carry an allowed extension.
func (pf *PathFilter) IsAllowed(p string) bool {
	p = normalize(p)

	if pf.IsIgnored(p) {
		return false
	}

	if !isFile(p) {
		return true
	}

	lower := strings.ToLower(p)
	for _, ext := range pf.allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func normalize(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// isFile reports whether the last path component has a file extension.
// Dotfiles such as .gitignore count as directories here.
func isFile(p string) bool {
	if strings.HasSuffix(p, "/") {
		return false
	}

	base := path.Base(p)
	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		return false
	}

	return extensionPattern.MatchString(base[dot+1:])
}

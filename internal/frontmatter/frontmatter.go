// Package frontmatter splits YAML front matter off article bodies and
// reconciles it with explicitly supplied article parameters.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/devto-mcp/internal/types"
)

const delimiter = "---"

// Parse extracts a leading front matter block from body. Anything that does
// not look like a well-formed block is reported as having no front matter
// and the body is returned untouched.
func Parse(body string) types.FrontMatterResult {
	result := types.FrontMatterResult{
		CleanBody:       body,
		ExtractedValues: make(map[string]any),
	}

	if strings.TrimSpace(body) == "" {
		return result
	}

	block, rest, ok := split(body)
	if !ok {
		return result
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		// Unquoted titles such as "Go: A Primer" are not valid YAML but are
		// still plain key/value lines.
		raw, ok = parseLines(block)
		if !ok {
			return result
		}
	}

	result.CleanBody = rest
	result.ExtractedValues = normalizeValues(raw)
	result.HasFrontMatter = len(result.ExtractedValues) > 0

	return result
}

// Stringify renders values as a front matter block followed by body.
func Stringify(values map[string]any, body string) (string, error) {
	if len(values) == 0 {
		return body, nil
	}

	yamlBytes, err := yaml.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to stringify front matter: %w", err)
	}

	return delimiter + "\n" + string(yamlBytes) + delimiter + "\n" + body, nil
}

// split returns the raw block between the opening and closing delimiter
// lines and everything after the closing line.
func split(doc string) (block, rest string, ok bool) {
	first, after, found := strings.Cut(doc, "\n")
	if !found || !isDelimiter(first) {
		return "", "", false
	}

	pos := 0
	for {
		line, _, more := strings.Cut(after[pos:], "\n")
		if isDelimiter(line) {
			block = after[:pos]
			if more {
				rest = after[pos+len(line)+1:]
			}
			return block, rest, true
		}
		if !more {
			return "", "", false
		}
		pos += len(line) + 1
	}
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == delimiter
}

// normalizeValues keeps scalars and flat lists of scalars. Nested mappings
// and null values are dropped.
func normalizeValues(raw map[string]any) map[string]any {
	values := make(map[string]any, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil, map[string]any:
			continue
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				if item == nil || !isScalar(item) {
					continue
				}
				items = append(items, stringValue(item))
			}
			values[key] = items
		default:
			values[key] = v
		}
	}
	return values
}

func isScalar(v any) bool {
	switch v.(type) {
	case []any, []string, map[string]any:
		return false
	}
	return true
}

package frontmatter

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var lineKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// parseLines reads a block of "key: value" lines and "- item" lists under
// a key with no value. The value is everything after the first ": ". It
// reports false when a line fits neither form.
func parseLines(block string) (map[string]any, bool) {
	values := make(map[string]any)
	listKey := ""

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if item, isItem := strings.CutPrefix(trimmed, "- "); isItem || trimmed == "-" {
			if listKey == "" {
				return nil, false
			}
			items, _ := values[listKey].([]any)
			values[listKey] = append(items, lineValue(strings.TrimSpace(item)))
			continue
		}

		if line != trimmed {
			return nil, false
		}

		key, value, found := strings.Cut(line, ": ")
		if !found {
			key, found = strings.CutSuffix(line, ":")
			if !found {
				return nil, false
			}
		}
		key = strings.TrimSpace(key)
		if !lineKey.MatchString(key) {
			return nil, false
		}

		value = strings.TrimSpace(value)
		if value == "" {
			values[key] = nil
			listKey = key
			continue
		}
		values[key] = lineValue(value)
		listKey = ""
	}

	return values, true
}

// lineValue decodes a single value with YAML when it is a scalar or flow
// list and falls back to the literal text otherwise.
func lineValue(raw string) any {
	if len(raw) >= 2 {
		if q := raw[0]; (q == '"' || q == '\'') && raw[len(raw)-1] == q {
			return raw[1 : len(raw)-1]
		}
	}

	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	if _, nested := v.(map[string]any); nested {
		return raw
	}
	return v
}

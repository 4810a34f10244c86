package frontmatter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/taigrr/devto-mcp/internal/types"
)

// CoverImageKey is the front matter spelling of the main_image parameter.
const CoverImageKey = "cover_image"

// seedKeys maps recognised front matter keys to parameter fields.
var seedKeys = []struct {
	key   string
	field string
}{
	{types.FieldTitle, types.FieldTitle},
	{types.FieldPublished, types.FieldPublished},
	{types.FieldDescription, types.FieldDescription},
	{types.FieldTags, types.FieldTags},
	{types.FieldSeries, types.FieldSeries},
	{types.FieldCanonicalURL, types.FieldCanonicalURL},
	{CoverImageKey, types.FieldMainImage},
}

// Merge strips front matter from body and merges its values with params.
//
// Explicit params always win over front matter. Every explicit field that
// disagrees with a front matter value is reported as a conflict so the
// caller can tell the user which embedded value was overridden.
func Merge(body *string, params types.Params) types.MergeResult {
	if params == nil {
		params = types.Params{}
	}
	if body == nil {
		return types.MergeResult{Params: params, Conflicts: []types.Conflict{}}
	}

	parsed := Parse(*body)
	if !parsed.HasFrontMatter {
		return types.MergeResult{
			Body:      parsed.CleanBody,
			Params:    params,
			Conflicts: []types.Conflict{},
		}
	}

	merged := make(types.Params, len(params)+len(seedKeys))
	for _, seed := range seedKeys {
		value, ok := parsed.ExtractedValues[seed.key]
		if !ok || !usable(seed.field, value) {
			continue
		}
		if seed.field == types.FieldTags {
			value = NormalizeTags(value)
		}
		merged[seed.field] = value
	}

	conflicts := []types.Conflict{}
	for _, field := range types.ParamFields {
		value, ok := params[field]
		if !ok {
			continue
		}
		if conflict, differs := Compare(parsed.ExtractedValues, field, value); differs {
			conflicts = append(conflicts, conflict)
		}
		merged[field] = value
	}

	for key, value := range params {
		if !slices.Contains(types.ParamFields, key) {
			merged[key] = value
		}
	}

	return types.MergeResult{
		Body:      parsed.CleanBody,
		Params:    merged,
		Conflicts: conflicts,
	}
}

// Compare checks an explicit parameter value against the front matter value
// for the same field. It reports a conflict when both exist and their string
// forms differ.
func Compare(values map[string]any, field string, explicit any) (types.Conflict, bool) {
	fmValue, ok := values[Key(field)]
	if !ok || !usable(field, fmValue) {
		return types.Conflict{}, false
	}

	if field == types.FieldTags {
		fmValue = NormalizeTags(fmValue)
		explicit = NormalizeTags(explicit)
	}

	if stringValue(fmValue) == stringValue(explicit) {
		return types.Conflict{}, false
	}

	return types.Conflict{
		Field:            field,
		FrontMatterValue: fmValue,
		JSONValue:        explicit,
	}, true
}

// Key returns the front matter key that carries a parameter field.
func Key(field string) string {
	if field == types.FieldMainImage {
		return CoverImageKey
	}
	return field
}

// NormalizeTags joins a tag list into a single comma separated string.
// Strings and other values are returned unchanged.
func NormalizeTags(v any) any {
	switch t := v.(type) {
	case []string:
		return strings.Join(t, ", ")
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, stringValue(item))
		}
		return strings.Join(items, ", ")
	default:
		return v
	}
}

// usable reports whether a front matter value can stand in for field. Only
// tags may hold a list.
func usable(field string, v any) bool {
	if field == types.FieldTags {
		return true
	}
	return isScalar(v)
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []string:
		return strings.Join(t, ",")
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, stringValue(item))
		}
		return strings.Join(items, ",")
	default:
		return fmt.Sprint(t)
	}
}

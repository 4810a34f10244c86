package frontmatter

import (
	"strings"
	"testing"

	"github.com/taigrr/devto-mcp/internal/types"
)

func strPtr(s string) *string { return &s }

func TestMerge_ExplicitTitleWins(t *testing.T) {
	result := Merge(strPtr("---\ntitle: FM Title\n---\n# Content"), types.Params{"title": "JSON Title"})

	if result.Params["title"] != "JSON Title" {
		t.Errorf("Params[title] = %v, want %q", result.Params["title"], "JSON Title")
	}
	if len(result.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(result.Conflicts))
	}
	c := result.Conflicts[0]
	if c.Field != "title" || c.FrontMatterValue != "FM Title" || c.JSONValue != "JSON Title" {
		t.Errorf("Conflicts[0] = %+v", c)
	}
	if strings.TrimSpace(result.Body) != "# Content" {
		t.Errorf("Body = %q, want %q", strings.TrimSpace(result.Body), "# Content")
	}
}

func TestMerge_UnquotedTitleFrontMatter(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"colon title", "Go Generics: A Primer"},
		{"bracket title", "[Draft] My post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := "---\ntitle: " + tt.title + "\ntags: go\n---\nBody"
			result := Merge(&body, types.Params{"tags": "rust"})

			if result.Body != "Body" {
				t.Errorf("Body = %q, want %q", result.Body, "Body")
			}
			if result.Params["title"] != tt.title {
				t.Errorf("Params[title] = %v, want %q", result.Params["title"], tt.title)
			}
			if result.Params["tags"] != "rust" {
				t.Errorf("Params[tags] = %v, want %q", result.Params["tags"], "rust")
			}
			if len(result.Conflicts) != 1 || result.Conflicts[0].Field != "tags" || result.Conflicts[0].FrontMatterValue != "go" {
				t.Errorf("Conflicts = %+v, want one tags conflict", result.Conflicts)
			}
		})
	}
}

func TestMerge_TagListJoined(t *testing.T) {
	result := Merge(strPtr("---\ntags:\n  - javascript\n  - typescript\n---\nContent"), types.Params{})

	if result.Params["tags"] != "javascript, typescript" {
		t.Errorf("Params[tags] = %v, want %q", result.Params["tags"], "javascript, typescript")
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("Conflicts = %v, want none", result.Conflicts)
	}
}

func TestMerge_CoverImageAlias(t *testing.T) {
	result := Merge(
		strPtr("---\ncover_image: https://x/old.jpg\n---\nC"),
		types.Params{"main_image": "https://x/new.jpg"},
	)

	if result.Params["main_image"] != "https://x/new.jpg" {
		t.Errorf("Params[main_image] = %v, want %q", result.Params["main_image"], "https://x/new.jpg")
	}
	if _, ok := result.Params["cover_image"]; ok {
		t.Error("cover_image should not leak into params")
	}
	if len(result.Conflicts) != 1 || result.Conflicts[0].Field != "main_image" {
		t.Errorf("Conflicts = %+v, want one main_image conflict", result.Conflicts)
	}
}

func TestMerge_CoverImageSeedsMainImage(t *testing.T) {
	result := Merge(strPtr("---\ncover_image: https://x/c.png\n---\nC"), nil)

	if result.Params["main_image"] != "https://x/c.png" {
		t.Errorf("Params[main_image] = %v, want %q", result.Params["main_image"], "https://x/c.png")
	}
}

func TestMerge_EquivalentTagsDoNotConflict(t *testing.T) {
	tests := []struct {
		name string
		tags any
	}{
		{"string", "go, mcp"},
		{"string slice", []string{"go", "mcp"}},
		{"any slice", []any{"go", "mcp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Merge(strPtr("---\ntags: [go, mcp]\n---\nbody"), types.Params{"tags": tt.tags})
			if len(result.Conflicts) != 0 {
				t.Errorf("Conflicts = %+v, want none", result.Conflicts)
			}
		})
	}
}

func TestMerge_DifferentTagsConflict(t *testing.T) {
	result := Merge(strPtr("---\ntags: [go]\n---\nbody"), types.Params{"tags": "rust"})

	if len(result.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(result.Conflicts))
	}
	if result.Params["tags"] != "rust" {
		t.Errorf("Params[tags] = %v, want %q", result.Params["tags"], "rust")
	}
}

func TestMerge_ExplicitNullOverrides(t *testing.T) {
	result := Merge(strPtr("---\nseries: Old Series\n---\nbody"), types.Params{"series": nil})

	value, ok := result.Params["series"]
	if !ok {
		t.Fatal("Params[series] missing, want explicit null")
	}
	if value != nil {
		t.Errorf("Params[series] = %v, want nil", value)
	}
	if len(result.Conflicts) != 1 {
		t.Errorf("len(Conflicts) = %d, want 1", len(result.Conflicts))
	}
}

func TestMerge_ScalarStringForms(t *testing.T) {
	result := Merge(strPtr("---\npublished: true\n---\nbody"), types.Params{"published": true})
	if len(result.Conflicts) != 0 {
		t.Errorf("Conflicts = %+v, want none", result.Conflicts)
	}

	result = Merge(strPtr("---\npublished: false\n---\nbody"), types.Params{"published": true})
	if len(result.Conflicts) != 1 {
		t.Errorf("len(Conflicts) = %d, want 1", len(result.Conflicts))
	}
}

func TestMerge_UnrecognisedKeysIgnored(t *testing.T) {
	result := Merge(strPtr("---\ntitle: T\nlayout: post\n---\nbody"), nil)

	if _, ok := result.Params["layout"]; ok {
		t.Error("unrecognised front matter key should be ignored")
	}
	if result.Params["title"] != "T" {
		t.Errorf("Params[title] = %v, want %q", result.Params["title"], "T")
	}
}

func TestMerge_ConflictOrderFollowsVocabulary(t *testing.T) {
	body := "---\ntitle: A\ndescription: B\ncover_image: https://x/c.png\n---\nbody"
	result := Merge(strPtr(body), types.Params{
		"main_image":  "https://x/d.png",
		"description": "other",
		"title":       "other",
	})

	want := []string{"title", "description", "main_image"}
	if len(result.Conflicts) != len(want) {
		t.Fatalf("len(Conflicts) = %d, want %d", len(result.Conflicts), len(want))
	}
	for i, field := range want {
		if result.Conflicts[i].Field != field {
			t.Errorf("Conflicts[%d].Field = %q, want %q", i, result.Conflicts[i].Field, field)
		}
	}
}

func TestMerge_NilBody(t *testing.T) {
	params := types.Params{"title": "T"}
	result := Merge(nil, params)

	if result.Body != "" {
		t.Errorf("Body = %q, want empty", result.Body)
	}
	if result.Params["title"] != "T" {
		t.Errorf("Params = %v, want input params", result.Params)
	}
	if result.Conflicts == nil || len(result.Conflicts) != 0 {
		t.Errorf("Conflicts = %#v, want empty slice", result.Conflicts)
	}
}

func TestMerge_NoFrontMatterKeepsParams(t *testing.T) {
	params := types.Params{"title": "T", "extra": 1}
	result := Merge(strPtr("# Just content"), params)

	if result.Body != "# Just content" {
		t.Errorf("Body = %q", result.Body)
	}
	if len(result.Params) != 2 || result.Params["extra"] != 1 {
		t.Errorf("Params = %v, want input params unchanged", result.Params)
	}
}

func TestMerge_ExtraParamsPassThrough(t *testing.T) {
	result := Merge(strPtr("---\ntitle: T\n---\nbody"), types.Params{"custom": "x"})

	if result.Params["custom"] != "x" {
		t.Errorf("Params[custom] = %v, want %q", result.Params["custom"], "x")
	}
}

func TestCompare_ListIgnoredForScalarField(t *testing.T) {
	values := map[string]any{"title": []string{"a", "b"}}
	if _, differs := Compare(values, "title", "a"); differs {
		t.Error("list value for title should be ignored")
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"string", "a, b", "a, b"},
		{"string slice", []string{"a", "b"}, "a, b"},
		{"any slice", []any{"a", "b"}, "a, b"},
		{"empty slice", []string{}, ""},
		{"other", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTags(tt.in); got != tt.want {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

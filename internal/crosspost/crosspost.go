// Package crosspost prepares a dev.to article for publishing elsewhere.
//
// Preparation merges front matter with explicit parameters, converts liquid
// tags to portable markdown and collects the image references of the result.
package crosspost

import (
	"fmt"
	"strings"

	"github.com/taigrr/devto-mcp/internal/frontmatter"
	"github.com/taigrr/devto-mcp/internal/images"
	"github.com/taigrr/devto-mcp/internal/liquid"
	"github.com/taigrr/devto-mcp/internal/render"
	"github.com/taigrr/devto-mcp/internal/types"
	"github.com/taigrr/devto-mcp/internal/validate"
)

type (
	// Input is the article to prepare.
	Input struct {
		Body   *string
		Params types.Params

		// HTML requests an HTML preview of the converted body.
		HTML bool
		// IncludeFrontMatter prepends the merged parameters as a front
		// matter block.
		IncludeFrontMatter bool
	}

	// Result is a prepared article.
	Result struct {
		Body      string                 `json:"body"`
		Params    types.Params           `json:"params"`
		Conflicts []types.Conflict       `json:"conflicts"`
		Liquid    types.LiquidTagReport  `json:"liquid"`
		Images    []types.ImageReference `json:"images"`
		HTML      string                 `json:"html,omitempty"`
	}
)

// Prepare runs the cross-post pipeline over in.
func Prepare(in Input) (Result, error) {
	merged := frontmatter.Merge(in.Body, in.Params)

	result := Result{
		Params:    merged.Params,
		Conflicts: merged.Conflicts,
		Liquid:    liquid.Detect(merged.Body),
	}

	result.Body = trimLeadingBlankLines(liquid.Strip(merged.Body))
	result.Images = images.Extract(result.Body)

	if in.HTML {
		html, err := render.HTML(result.Body)
		if err != nil {
			return Result{}, fmt.Errorf("failed to render preview: %w", err)
		}
		result.HTML = html
	}

	if in.IncludeFrontMatter {
		doc, err := frontmatter.Stringify(FrontMatter(merged.Params), result.Body)
		if err != nil {
			return Result{}, err
		}
		result.Body = doc
	}

	return result, nil
}

// FrontMatter converts merged parameters to front matter values. main_image
// is written as cover_image, tags become a list and nil values are dropped.
func FrontMatter(params types.Params) map[string]any {
	values := make(map[string]any, len(params))
	for field, value := range params {
		if value == nil {
			continue
		}
		switch field {
		case types.FieldTags:
			tags := validate.NormalizeTags(value)
			if len(tags) == 0 {
				continue
			}
			values[field] = tags
		default:
			values[frontmatter.Key(field)] = value
		}
	}
	return values
}

func trimLeadingBlankLines(s string) string {
	for {
		line, rest, found := strings.Cut(s, "\n")
		if !found || strings.TrimSpace(line) != "" {
			return s
		}
		s = rest
	}
}

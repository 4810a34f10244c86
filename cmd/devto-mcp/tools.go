package main

import (
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/devto-mcp/internal/crosspost"
	"github.com/taigrr/devto-mcp/internal/liquid"
	"github.com/taigrr/devto-mcp/internal/types"
)

type (
	// ArticleFields are the dev.to article parameters accepted by the
	// article tools.
	ArticleFields struct {
		Title          *string `json:"title,omitempty" jsonschema:"Article title"`
		BodyMarkdown   *string `json:"body_markdown,omitempty" jsonschema:"Article body in markdown, optionally starting with YAML front matter"`
		Tags           any     `json:"tags,omitempty" jsonschema:"Tags as a comma separated string or a list (max 4)"`
		MainImage      *string `json:"main_image,omitempty" jsonschema:"Cover image URL (absolute http or https)"`
		CanonicalURL   *string `json:"canonical_url,omitempty" jsonschema:"Canonical URL of the original post"`
		Description    *string `json:"description,omitempty" jsonschema:"Short description"`
		Published      *bool   `json:"published,omitempty" jsonschema:"Whether the article is published"`
		Series         *string `json:"series,omitempty" jsonschema:"Series name"`
		OrganizationID *int    `json:"organization_id,omitempty" jsonschema:"Organization id to publish under"`
	}

	// ValidateInput contains parameters for validating an article.
	ValidateInput struct {
		ArticleFields
		Path string `json:"path,omitempty" jsonschema:"Draft path relative to the drafts directory; its content is used as body_markdown"`
	}

	// PrepareInput contains parameters for preparing a cross-post.
	PrepareInput struct {
		ArticleFields
		Path               string `json:"path,omitempty" jsonschema:"Draft path relative to the drafts directory; its content is used as body_markdown"`
		HTML               bool   `json:"html,omitempty" jsonschema:"Include an HTML preview of the converted body (default: false)"`
		IncludeFrontMatter bool   `json:"includeFrontMatter,omitempty" jsonschema:"Prepend the merged parameters as front matter (default: false)"`
		OutputPath         string `json:"outputPath,omitempty" jsonschema:"Write the prepared document to this draft path"`
	}

	// PrepareOutput contains the prepared article.
	PrepareOutput struct {
		crosspost.Result
		Written string `json:"written,omitempty"`
	}

	// DocumentInput names a markdown document by content or draft path.
	DocumentInput struct {
		BodyMarkdown string `json:"body_markdown,omitempty" jsonschema:"Markdown content"`
		Path         string `json:"path,omitempty" jsonschema:"Draft path relative to the drafts directory (used when body_markdown is empty)"`
	}

	// ImagesInput contains parameters for extracting images.
	ImagesInput struct {
		DocumentInput
		RelativeOnly bool `json:"relativeOnly,omitempty" jsonschema:"Only return images that are not absolute http(s) URLs (default: false)"`
	}

	// ImagesOutput contains the extracted image references.
	ImagesOutput struct {
		Images   []types.ImageReference `json:"images"`
		Total    int                    `json:"total"`
		Relative int                    `json:"relative"`
	}

	// ListDraftsInput contains parameters for listing drafts.
	ListDraftsInput struct{}

	// ListDraftsOutput contains the drafts in the drafts directory.
	ListDraftsOutput struct {
		Drafts []types.DraftInfo `json:"drafts"`
		Total  int               `json:"total"`
	}

	// LintDraftsInput contains parameters for linting every draft.
	LintDraftsInput struct {
		InvalidOnly bool `json:"invalidOnly,omitempty" jsonschema:"Only return drafts that failed validation (default: false)"`
	}

	// LintDraftsOutput contains a validation report per draft.
	LintDraftsOutput struct {
		Reports []types.DraftReport `json:"reports"`
		Total   int                 `json:"total"`
		Invalid int                 `json:"invalid"`
	}
)

// article converts the fields to an article record with the given body.
func (f ArticleFields) article(body *string) types.ArticleInput {
	return types.ArticleInput{
		Title:          f.Title,
		BodyMarkdown:   body,
		Tags:           f.Tags,
		MainImage:      f.MainImage,
		CanonicalURL:   f.CanonicalURL,
		Description:    f.Description,
		Published:      f.Published,
		Series:         f.Series,
		OrganizationID: f.OrganizationID,
	}
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_article",
		Description: "Check a dev.to article before submission. Reports every problem at once: missing title/body, tag count and format, non-absolute images, front matter that disagrees with explicit parameters, liquid tags and thin content. Accepts the article fields or a draft path.",
	}, handleValidateArticle)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "prepare_crosspost",
		Description: "Prepare an article for another platform: merge front matter with explicit parameters (explicit values win), convert liquid tags to portable markdown, list images and optionally render HTML or write the result to a draft.",
	}, handlePrepareCrosspost)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_front_matter",
		Description: "Split YAML front matter off a markdown document. Returns the clean body and the extracted values.",
	}, handleParseFrontMatter)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect_liquid_tags",
		Description: liquidToolDescription(),
	}, handleDetectLiquidTags)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_images",
		Description: "List markdown and HTML image references in a document with line numbers and whether each URL is absolute.",
	}, handleExtractImages)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_drafts",
		Description: "List the markdown drafts in the drafts directory with their titles.",
	}, handleListDrafts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint_drafts",
		Description: "Validate every draft in the drafts directory. Each draft's front matter supplies its article parameters.",
	}, handleLintDrafts)
}

// liquidToolDescription lists the known tag names so clients can see which
// tags get a conversion rule.
func liquidToolDescription() string {
	return fmt.Sprintf("List the dev.to liquid tags in a markdown document with line numbers and "+
		"whether each survives cross-posting. Tags inside code fences are ignored. Known tags: %s.",
		strings.Join(liquid.Names(), ", "))
}

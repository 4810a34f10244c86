package main

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/taigrr/devto-mcp/internal/crosspost"
	"github.com/taigrr/devto-mcp/internal/drafts"
	"github.com/taigrr/devto-mcp/internal/frontmatter"
	"github.com/taigrr/devto-mcp/internal/images"
	"github.com/taigrr/devto-mcp/internal/liquid"
	"github.com/taigrr/devto-mcp/internal/types"
	"github.com/taigrr/devto-mcp/internal/validate"
)

var errNoBody = errors.New("body_markdown or path is required")

// readBody returns the draft at path, or body when path is empty.
func readBody(path string, body *string) (string, error) {
	if path = strings.TrimSpace(path); path != "" {
		return draftsService.ReadDraft(path)
	}
	if body == nil || *body == "" {
		return "", errNoBody
	}
	return *body, nil
}

func handleValidateArticle(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, types.ValidationResult, error) {
	article := input.article(input.BodyMarkdown)

	if path := strings.TrimSpace(input.Path); path != "" {
		content, err := draftsService.ReadDraft(path)
		if err != nil {
			return &mcp.CallToolResult{IsError: true}, types.ValidationResult{}, err
		}
		article = overlay(drafts.InputFromDocument(content), input.ArticleFields)
	}

	result := validate.Article(article)
	logger.Debug("validated article",
		zap.String("path", input.Path),
		zap.Bool("valid", result.Valid),
		zap.Int("errors", len(result.Errors())),
		zap.Int("warnings", len(result.Warnings())),
	)

	return nil, result, nil
}

// overlay replaces the fields of base with the explicitly supplied fields.
func overlay(base types.ArticleInput, f ArticleFields) types.ArticleInput {
	if f.Title != nil {
		base.Title = f.Title
	}
	if f.Tags != nil {
		base.Tags = f.Tags
	}
	if f.MainImage != nil {
		base.MainImage = f.MainImage
	}
	if f.CanonicalURL != nil {
		base.CanonicalURL = f.CanonicalURL
	}
	if f.Description != nil {
		base.Description = f.Description
	}
	if f.Published != nil {
		base.Published = f.Published
	}
	if f.Series != nil {
		base.Series = f.Series
	}
	if f.OrganizationID != nil {
		base.OrganizationID = f.OrganizationID
	}
	return base
}

func handlePrepareCrosspost(ctx context.Context, req *mcp.CallToolRequest, input PrepareInput) (*mcp.CallToolResult, PrepareOutput, error) {
	body, err := readBody(input.Path, input.BodyMarkdown)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, PrepareOutput{}, err
	}

	result, err := crosspost.Prepare(crosspost.Input{
		Body:               &body,
		Params:             input.article(nil).Params(),
		HTML:               input.HTML,
		IncludeFrontMatter: input.IncludeFrontMatter,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, PrepareOutput{}, err
	}

	output := PrepareOutput{Result: result}

	if outPath := strings.TrimSpace(input.OutputPath); outPath != "" {
		if err := draftsService.WriteDraft(outPath, result.Body); err != nil {
			return &mcp.CallToolResult{IsError: true}, PrepareOutput{}, err
		}
		output.Written = outPath
		logger.Info("wrote cross-post draft", zap.String("path", outPath))
	}

	return nil, output, nil
}

func handleParseFrontMatter(ctx context.Context, req *mcp.CallToolRequest, input DocumentInput) (*mcp.CallToolResult, types.FrontMatterResult, error) {
	body, err := readBody(input.Path, &input.BodyMarkdown)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.FrontMatterResult{}, err
	}
	return nil, frontmatter.Parse(body), nil
}

func handleDetectLiquidTags(ctx context.Context, req *mcp.CallToolRequest, input DocumentInput) (*mcp.CallToolResult, types.LiquidTagReport, error) {
	body, err := readBody(input.Path, &input.BodyMarkdown)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, types.LiquidTagReport{}, err
	}
	return nil, liquid.Detect(body), nil
}

func handleExtractImages(ctx context.Context, req *mcp.CallToolRequest, input ImagesInput) (*mcp.CallToolResult, ImagesOutput, error) {
	body, err := readBody(input.Path, &input.BodyMarkdown)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ImagesOutput{}, err
	}

	refs := images.Extract(body)
	relative := images.Relative(refs)

	output := ImagesOutput{
		Images:   refs,
		Total:    len(refs),
		Relative: len(relative),
	}
	if input.RelativeOnly {
		output.Images = relative
	}

	return nil, output, nil
}

func handleListDrafts(ctx context.Context, req *mcp.CallToolRequest, input ListDraftsInput) (*mcp.CallToolResult, ListDraftsOutput, error) {
	list, err := draftsService.ListDrafts()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListDraftsOutput{}, err
	}
	return nil, ListDraftsOutput{Drafts: list, Total: len(list)}, nil
}

func handleLintDrafts(ctx context.Context, req *mcp.CallToolRequest, input LintDraftsInput) (*mcp.CallToolResult, LintDraftsOutput, error) {
	reports, err := draftsService.LintAll(ctx)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, LintDraftsOutput{}, err
	}

	output := LintDraftsOutput{Reports: []types.DraftReport{}, Total: len(reports)}
	for _, r := range reports {
		if !r.Result.Valid {
			output.Invalid++
		} else if input.InvalidOnly {
			continue
		}
		output.Reports = append(output.Reports, r)
	}

	return nil, output, nil
}

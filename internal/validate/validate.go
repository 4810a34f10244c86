// Package validate runs the pre-submission checks for an article and
// collects every finding into a single report.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/taigrr/devto-mcp/internal/content"
	"github.com/taigrr/devto-mcp/internal/frontmatter"
	"github.com/taigrr/devto-mcp/internal/images"
	"github.com/taigrr/devto-mcp/internal/liquid"
	"github.com/taigrr/devto-mcp/internal/types"
	"github.com/taigrr/devto-mcp/internal/uri"
)

// MaxTags is the most tags an article may carry.
const MaxTags = 4

var validTag = regexp.MustCompile(`^[a-z0-9_]+$`)

// conflictFields are the explicit fields compared against front matter.
var conflictFields = []string{
	types.FieldTitle,
	types.FieldTags,
	types.FieldDescription,
	types.FieldMainImage,
}

// Article checks an article parameter record. All checks run; the result is
// valid when no check reported an error.
func Article(in types.ArticleInput) types.ValidationResult {
	var issues []types.ValidationIssue

	_, hasTitle := present(in.Title)
	// A body counts once it is non-empty; whitespace is left to the
	// thin content check.
	hasBody := in.BodyMarkdown != nil && *in.BodyMarkdown != ""

	if !hasTitle && !hasBody {
		issues = append(issues, issue(types.SeverityError, types.CodeValidationFailed,
			"Article must have a title or body_markdown.", 0))
	}

	if in.Tags != nil {
		issues = append(issues, checkTags(NormalizeTags(in.Tags))...)
	}

	if mainImage, ok := present(in.MainImage); ok && !uri.IsAbsoluteHTTP(mainImage) {
		issues = append(issues, issue(types.SeverityError, types.CodeImageNotAbsolute,
			fmt.Sprintf("main_image %q must be an absolute http(s) URL.", mainImage), 0))
	}

	if hasBody {
		body := *in.BodyMarkdown
		issues = append(issues, checkBodyImages(body)...)
		issues = append(issues, checkFrontMatter(body, in.Params())...)
		issues = append(issues, checkLiquidTags(body)...)

		if !content.IsSubstantial(body) {
			issues = append(issues, issue(types.SeverityWarning, types.CodeValidationFailed,
				fmt.Sprintf("Article body has fewer than %d words of prose outside code and markup.", content.MinWords), 0))
		}
	}

	return Result(issues)
}

// Result wraps issues in a report, deriving Valid from their severities.
func Result(issues []types.ValidationIssue) types.ValidationResult {
	if issues == nil {
		issues = []types.ValidationIssue{}
	}
	valid := true
	for _, is := range issues {
		if is.Severity == types.SeverityError {
			valid = false
			break
		}
	}
	return types.ValidationResult{Valid: valid, Issues: issues}
}

// NormalizeTags turns a comma separated string or a list into trimmed,
// lowercased tags. Empty entries are dropped.
func NormalizeTags(v any) []string {
	var raw []string
	switch t := v.(type) {
	case string:
		raw = strings.Split(t, ",")
	case []string:
		raw = t
	case []any:
		for _, item := range t {
			raw = append(raw, fmt.Sprint(item))
		}
	default:
		raw = []string{fmt.Sprint(t)}
	}

	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func checkTags(tags []string) []types.ValidationIssue {
	var issues []types.ValidationIssue
	if len(tags) > MaxTags {
		issues = append(issues, issue(types.SeverityError, types.CodeValidationFailed,
			fmt.Sprintf("Too many tags (%d). Maximum is %d.", len(tags), MaxTags), 0))
	}
	for _, tag := range tags {
		if !validTag.MatchString(tag) {
			issues = append(issues, issue(types.SeverityError, types.CodeValidationFailed,
				fmt.Sprintf("Invalid tag %q. Tags may only contain lowercase letters, numbers and underscores.", tag), 0))
		}
	}
	return issues
}

func checkBodyImages(body string) []types.ValidationIssue {
	var issues []types.ValidationIssue
	for _, ref := range images.Relative(images.Extract(body)) {
		issues = append(issues, issue(types.SeverityError, types.CodeImageNotAbsolute,
			fmt.Sprintf("Image %q is not an absolute http(s) URL and will not render once published.", ref.URL), ref.LineNumber))
	}
	return issues
}

func checkFrontMatter(body string, params types.Params) []types.ValidationIssue {
	parsed := frontmatter.Parse(body)
	if !parsed.HasFrontMatter {
		return nil
	}

	var issues []types.ValidationIssue
	for _, field := range conflictFields {
		value, ok := params[field]
		if !ok {
			continue
		}
		conflict, differs := frontmatter.Compare(parsed.ExtractedValues, field, value)
		if !differs {
			continue
		}
		issues = append(issues, issue(types.SeverityWarning, types.CodeFrontMatterConflict,
			fmt.Sprintf("Front matter %s %q conflicts with the %s parameter %q; the parameter value will be used.",
				frontmatter.Key(field), fmt.Sprint(conflict.FrontMatterValue), field, fmt.Sprint(conflict.JSONValue)), 0))
	}
	return issues
}

func checkLiquidTags(body string) []types.ValidationIssue {
	report := liquid.Detect(body)
	issues := make([]types.ValidationIssue, 0, len(report.Tags))
	for _, tag := range report.Tags {
		msg := fmt.Sprintf("Liquid tag {%% %s %%} found.", tag.Tag)
		if !tag.CrossPostSafe {
			msg += " It is not cross-post safe and will be lost or degraded on other platforms."
		}
		issues = append(issues, issue(types.SeverityInfo, types.CodeLiquidTagDetected, msg, tag.LineNumber))
	}
	return issues
}

func issue(severity types.Severity, code types.IssueCode, message string, line int) types.ValidationIssue {
	return types.ValidationIssue{
		Severity: severity,
		Code:     code,
		Message:  message,
		Line:     line,
	}
}

// present reports whether an optional string was supplied with content.
func present(s *string) (string, bool) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", false
	}
	return *s, true
}

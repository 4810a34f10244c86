package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/devto-mcp/internal/drafts"
	"github.com/taigrr/devto-mcp/internal/types"
)

func strPtr(s string) *string { return &s }

func setupDrafts(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	draftsService = drafts.New(dir, nil, drafts.WithWorkers(2))
	return dir
}

func TestHandleValidateArticle(t *testing.T) {
	setupDrafts(t, nil)

	res, out, err := handleValidateArticle(context.Background(), nil, ValidateInput{})
	if err != nil {
		t.Fatalf("handleValidateArticle() error = %v", err)
	}
	if res != nil && res.IsError {
		t.Error("an invalid article must not be a tool error")
	}
	if out.Valid || len(out.Errors()) == 0 || out.Errors()[0].Code != types.CodeValidationFailed {
		t.Errorf("out = %+v, want validation_failed", out)
	}

	_, out, _ = handleValidateArticle(context.Background(), nil, ValidateInput{
		ArticleFields: ArticleFields{Title: strPtr("T"), Tags: "JavaScript, Type-Script"},
	})
	found := false
	for _, is := range out.Errors() {
		if strings.Contains(is.Message, "Invalid tag") {
			found = true
		}
	}
	if !found {
		t.Errorf("out = %+v, want Invalid tag", out)
	}
}

func TestHandleValidateArticle_Path(t *testing.T) {
	setupDrafts(t, map[string]string{
		"post.md": "---\ntitle: From File\ntags: [go]\n---\nA draft with enough words in it to pass the prose check easily.",
	})

	_, out, err := handleValidateArticle(context.Background(), nil, ValidateInput{Path: "post.md"})
	if err != nil {
		t.Fatalf("handleValidateArticle() error = %v", err)
	}
	if !out.Valid || len(out.Issues) != 0 {
		t.Errorf("out = %+v, want valid without issues", out)
	}

	_, out, _ = handleValidateArticle(context.Background(), nil, ValidateInput{
		Path:          "post.md",
		ArticleFields: ArticleFields{Title: strPtr("Override")},
	})
	if len(out.Warnings()) != 1 || out.Warnings()[0].Code != types.CodeFrontMatterConflict {
		t.Errorf("warnings = %+v, want one title conflict", out.Warnings())
	}

	res, _, err := handleValidateArticle(context.Background(), nil, ValidateInput{Path: "missing.md"})
	if !errors.Is(err, drafts.ErrNotFound) || res == nil || !res.IsError {
		t.Errorf("missing draft: res = %+v err = %v", res, err)
	}
}

func TestHandlePrepareCrosspost(t *testing.T) {
	dir := setupDrafts(t, nil)

	body := "---\ntitle: FM\n---\n{% youtube abc %}\n"
	_, out, err := handlePrepareCrosspost(context.Background(), nil, PrepareInput{
		ArticleFields:      ArticleFields{BodyMarkdown: strPtr(body), Title: strPtr("T")},
		IncludeFrontMatter: true,
		OutputPath:         "out/post.md",
	})
	if err != nil {
		t.Fatalf("handlePrepareCrosspost() error = %v", err)
	}
	if len(out.Conflicts) != 1 {
		t.Errorf("Conflicts = %+v, want 1", out.Conflicts)
	}
	if !strings.Contains(out.Body, "https://www.youtube.com/watch?v=abc") || !strings.HasPrefix(out.Body, "---\n") {
		t.Errorf("Body = %q", out.Body)
	}
	if out.Written != "out/post.md" {
		t.Errorf("Written = %q", out.Written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "post.md"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != out.Body {
		t.Errorf("written file = %q, want %q", data, out.Body)
	}
}

func TestHandlePrepareCrosspost_NoBody(t *testing.T) {
	setupDrafts(t, nil)

	res, _, err := handlePrepareCrosspost(context.Background(), nil, PrepareInput{})
	if !errors.Is(err, errNoBody) || res == nil || !res.IsError {
		t.Errorf("res = %+v err = %v, want errNoBody tool error", res, err)
	}
}

func TestHandleDocumentTools(t *testing.T) {
	setupDrafts(t, map[string]string{
		"doc.md": "---\ntitle: Doc\n---\n![a](./a.png)\n![b](https://x/b.png)\n{% user ben %}\n",
	})
	ctx := context.Background()

	_, fm, err := handleParseFrontMatter(ctx, nil, DocumentInput{Path: "doc.md"})
	if err != nil || !fm.HasFrontMatter || fm.ExtractedValues["title"] != "Doc" {
		t.Errorf("parse_front_matter = %+v, %v", fm, err)
	}

	_, tags, err := handleDetectLiquidTags(ctx, nil, DocumentInput{Path: "doc.md"})
	if err != nil || len(tags.Tags) != 1 || !tags.HasCrossPostUnsafe {
		t.Errorf("detect_liquid_tags = %+v, %v", tags, err)
	}

	_, imgs, err := handleExtractImages(ctx, nil, ImagesInput{DocumentInput: DocumentInput{Path: "doc.md"}, RelativeOnly: true})
	if err != nil || imgs.Total != 2 || imgs.Relative != 1 || len(imgs.Images) != 1 || imgs.Images[0].URL != "./a.png" {
		t.Errorf("extract_images = %+v, %v", imgs, err)
	}

	_, _, err = handleDetectLiquidTags(ctx, nil, DocumentInput{})
	if !errors.Is(err, errNoBody) {
		t.Errorf("empty input error = %v, want errNoBody", err)
	}

	_, direct, err := handleDetectLiquidTags(ctx, nil, DocumentInput{BodyMarkdown: "{% youtube x %}"})
	if err != nil || len(direct.Tags) != 1 || direct.HasCrossPostUnsafe {
		t.Errorf("detect_liquid_tags(body) = %+v, %v", direct, err)
	}
}

func TestHandleDraftTools(t *testing.T) {
	setupDrafts(t, map[string]string{
		"a.md": "---\ntitle: A\n---\nEnough words here to make this draft count as real prose content.",
		"b.md": "![x](./x.png)",
	})
	ctx := context.Background()

	_, list, err := handleListDrafts(ctx, nil, ListDraftsInput{})
	if err != nil || list.Total != 2 || list.Drafts[0].Title != "A" {
		t.Errorf("list_drafts = %+v, %v", list, err)
	}

	_, lint, err := handleLintDrafts(ctx, nil, LintDraftsInput{InvalidOnly: true})
	if err != nil {
		t.Fatalf("lint_drafts error = %v", err)
	}
	if lint.Total != 2 || lint.Invalid != 1 || len(lint.Reports) != 1 || lint.Reports[0].Path != "b.md" {
		t.Errorf("lint_drafts = %+v", lint)
	}
}

func TestLiquidToolDescription(t *testing.T) {
	desc := liquidToolDescription()

	for _, name := range []string{"youtube", "details", "katex", "user"} {
		if !strings.Contains(desc, name) {
			t.Errorf("liquidToolDescription() = %q, want it to name %q", desc, name)
		}
	}
	if !strings.Contains(desc, "codepen, codesandbox, collapsible, details") {
		t.Errorf("liquidToolDescription() = %q, want sorted comma separated names", desc)
	}
}

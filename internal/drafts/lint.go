package drafts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/taigrr/devto-mcp/internal/frontmatter"
	"github.com/taigrr/devto-mcp/internal/types"
	"github.com/taigrr/devto-mcp/internal/validate"
)

// LintAll validates every draft in the drafts directory. Reports are
// returned in path order. Cancelling ctx stops workers between files and
// returns the context error.
func (s *Service) LintAll(ctx context.Context) ([]types.DraftReport, error) {
	paths, err := s.findDrafts()
	if err != nil {
		return nil, err
	}

	numWorkers := max(min(s.workers, len(paths)), 1)

	type indexedReport struct {
		idx    int
		report types.DraftReport
	}

	reportCh := make(chan indexedReport, len(paths))
	fileCh := make(chan int, len(paths))
	for i := range paths {
		fileCh <- i
	}
	close(fileCh)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for idx := range fileCh {
				if ctx.Err() != nil {
					return
				}

				rel := paths[idx]
				content, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
				if err != nil {
					s.logger.Warn("skipping unreadable draft", zap.String("path", rel), zap.Error(err))
					continue
				}

				reportCh <- indexedReport{
					idx:    idx,
					report: types.DraftReport{Path: rel, Result: LintContent(string(content))},
				}
			}
		})
	}

	wg.Wait()
	close(reportCh)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("lint cancelled: %w", err)
	}

	ordered := make([]*types.DraftReport, len(paths))
	for r := range reportCh {
		ordered[r.idx] = &r.report
	}

	reports := make([]types.DraftReport, 0, len(paths))
	invalid := 0
	for _, r := range ordered {
		if r == nil {
			continue
		}
		if !r.Result.Valid {
			invalid++
		}
		reports = append(reports, *r)
	}

	s.logger.Info("linted drafts",
		zap.Int("drafts", len(reports)),
		zap.Int("invalid", invalid),
		zap.Int("workers", numWorkers),
	)

	return reports, nil
}

// LintContent validates a draft file. Its article parameters come from its
// own front matter, so only the body checks can report conflicts.
func LintContent(content string) types.ValidationResult {
	return validate.Article(InputFromDocument(content))
}

// InputFromDocument builds an article record from a markdown document with
// optional front matter. The whole document becomes the body.
func InputFromDocument(content string) types.ArticleInput {
	in := types.ArticleInput{BodyMarkdown: &content}

	values := frontmatter.Parse(content).ExtractedValues
	in.Title = stringField(values, types.FieldTitle)
	in.Description = stringField(values, types.FieldDescription)
	in.CanonicalURL = stringField(values, types.FieldCanonicalURL)
	in.Series = stringField(values, types.FieldSeries)
	in.MainImage = stringField(values, frontmatter.CoverImageKey)
	if tags, ok := values[types.FieldTags]; ok {
		in.Tags = tags
	}
	if published, ok := values[types.FieldPublished].(bool); ok {
		in.Published = &published
	}

	return in
}

func stringField(values map[string]any, key string) *string {
	v, ok := values[key]
	if !ok {
		return nil
	}
	if _, list := v.([]string); list {
		return nil
	}
	s := fmt.Sprint(v)
	return &s
}

// Package drafts provides file access to the local drafts directory.
package drafts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/taigrr/devto-mcp/internal/frontmatter"
	"github.com/taigrr/devto-mcp/internal/pathfilter"
	"github.com/taigrr/devto-mcp/internal/types"
)

var (
	// ErrNotFound is returned when a draft does not exist.
	ErrNotFound = errors.New("draft not found")
	// ErrAccessDenied is returned for paths rejected by the path filter or
	// the operating system.
	ErrAccessDenied = errors.New("access denied")
	// ErrPathTraversal is returned for paths that escape the drafts directory.
	ErrPathTraversal = errors.New("path traversal not allowed")
	// ErrIsDirectory is returned when a directory is read as a draft.
	ErrIsDirectory = errors.New("path is a directory")
)

// Service provides file system operations for the drafts directory.
type Service struct {
	root       string
	pathFilter *pathfilter.PathFilter
	workers    int
	logger     *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithWorkers sets the number of workers used by LintAll.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger sets the logger used for batch operations.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Service rooted at root.
func New(root string, pf *pathfilter.PathFilter, opts ...Option) *Service {
	absPath, _ := filepath.Abs(root)
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	s := &Service{
		root:       absPath,
		pathFilter: pf,
		workers:    1,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the absolute drafts directory.
func (s *Service) Root() string {
	return s.root
}

// ResolvePath resolves a relative path within the drafts directory.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	absPath, err := filepath.Abs(filepath.Join(s.root, relativePath))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, relativePath)
	}

	return absPath, nil
}

// ReadDraft returns the content of a draft.
func (s *Service) ReadDraft(path string) (string, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return "", err
	}

	if !s.pathFilter.IsAllowed(path) {
		return "", fmt.Errorf("%w: %s", ErrAccessDenied, path)
	}

	info, err := os.Stat(fullPath)
	if err == nil && info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return "", wrapFSError(err, "read", path)
	}

	return string(content), nil
}

// WriteDraft writes content to a draft, creating parent directories.
func (s *Service) WriteDraft(path, content string) error {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return err
	}

	if !s.pathFilter.IsAllowed(path) {
		return fmt.Errorf("%w: %s", ErrAccessDenied, path)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		return wrapFSError(err, "write", path)
	}

	return nil
}

// ListDrafts lists every allowed draft under the drafts directory, sorted
// by path.
func (s *Service) ListDrafts() ([]types.DraftInfo, error) {
	paths, err := s.findDrafts()
	if err != nil {
		return nil, err
	}

	drafts := make([]types.DraftInfo, 0, len(paths))
	for _, rel := range paths {
		fullPath := filepath.Join(s.root, filepath.FromSlash(rel))

		info, err := os.Stat(fullPath)
		if err != nil {
			continue
		}
		content, err := os.ReadFile(fullPath)
		if err != nil {
			continue
		}

		parsed := frontmatter.Parse(string(content))
		draft := types.DraftInfo{
			Path:           rel,
			Size:           info.Size(),
			Modified:       info.ModTime().UnixMilli(),
			HasFrontMatter: parsed.HasFrontMatter,
		}
		if title, ok := parsed.ExtractedValues[types.FieldTitle].(string); ok {
			draft.Title = title
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// findDrafts walks the drafts directory and returns the slash separated
// relative paths of all allowed drafts in sorted order.
func (s *Service) findDrafts() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(s.root, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			if fullPath == s.root {
				return err
			}
			return nil
		}
		if fullPath == s.root {
			return nil
		}

		rel, err := filepath.Rel(s.root, fullPath)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if s.pathFilter.IsIgnored(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && s.pathFilter.IsAllowed(rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, wrapFSError(err, "list", ".")
	}

	sort.Strings(paths)
	return paths, nil
}

func wrapFSError(err error, op, path string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrAccessDenied, path)
	default:
		return fmt.Errorf("failed to %s %s: %w", op, path, err)
	}
}

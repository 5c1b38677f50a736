package propcheck

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eykd/dslint-go/internal/domain"
)

// DefaultConcurrency bounds how many files are checked at once.
const DefaultConcurrency = 4

// ErrNoTargets is returned when neither arguments nor include patterns name
// any file.
var ErrNoTargets = errors.New("no files to check")

// ContentReader abstracts reading a document's full text.
type ContentReader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// DocumentParser splits a document into its markup body and the prop bag
// declared in its frontmatter.
type DocumentParser interface {
	ParseDocument(content string) (string, domain.PropBag, error)
}

// PathExpander turns file arguments and glob patterns into concrete paths.
type PathExpander interface {
	Expand(ctx context.Context, patterns []string) ([]string, error)
}

// FileReport is the validation summary of one document.
type FileReport struct {
	Path    string
	Summary domain.ValidationSummary
}

// CheckResult holds one report per checked document, in input order.
type CheckResult struct {
	Reports []FileReport
}

// ScanReport holds the accessibility findings of one document.
type ScanReport struct {
	Path   string
	Issues []domain.AccessibilityIssue
}

// ScanResult holds one scan report per document, in input order.
type ScanResult struct {
	Reports []ScanReport
}

// Option configures a Service.
type Option func(*Service)

// WithConcurrency bounds the number of documents processed at once.
// Values below one fall back to DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n < 1 {
			n = DefaultConcurrency
		}
		s.concurrency = n
	}
}

// WithInclude sets the patterns used when no explicit targets are given.
func WithInclude(patterns []string) Option {
	return func(s *Service) { s.include = slices.Clone(patterns) }
}

// WithExpander sets the expander used to resolve targets.
func WithExpander(e PathExpander) Option {
	return func(s *Service) { s.expander = e }
}

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// Service applies the prop validator to documents on disk.
type Service struct {
	reader      ContentReader
	parser      DocumentParser
	expander    PathExpander
	include     []string
	concurrency int
	logger      *zap.Logger
}

// NewService creates a Service reading documents with reader and splitting
// them with parser.
func NewService(reader ContentReader, parser DocumentParser, opts ...Option) *Service {
	s := &Service{
		reader:      reader,
		parser:      parser,
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveTargets expands args, or the configured include patterns when args
// is empty, into a sorted list of unique paths.
func (s *Service) ResolveTargets(ctx context.Context, args []string) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = s.include
	}
	if len(patterns) == 0 {
		return nil, ErrNoTargets
	}

	paths := slices.Clone(patterns)
	if s.expander != nil {
		var err error
		paths, err = s.expander.Expand(ctx, patterns)
		if err != nil {
			return nil, fmt.Errorf("resolving targets: %w", err)
		}
	}

	slices.Sort(paths)
	paths = slices.Compact(paths)
	if len(paths) == 0 {
		return nil, ErrNoTargets
	}
	s.logger.Debug("resolved targets", zap.Strings("patterns", patterns), zap.Int("files", len(paths)))
	return paths, nil
}

// Check validates every document in paths.
func (s *Service) Check(ctx context.Context, paths []string) (*CheckResult, error) {
	reports := make([]FileReport, len(paths))
	err := s.forEach(ctx, paths, func(i int, markup string, props domain.PropBag) {
		summary := ValidateComponent(markup, props)
		reports[i] = FileReport{Path: paths[i], Summary: summary}
		s.logger.Debug("checked document",
			zap.String("path", paths[i]),
			zap.Int("errors", summary.ErrorCount()),
			zap.Int("warnings", summary.WarningCount()),
			zap.Int("score", summary.Score))
	})
	if err != nil {
		return nil, err
	}
	return &CheckResult{Reports: reports}, nil
}

// Scan runs only the accessibility scan over every document in paths.
func (s *Service) Scan(ctx context.Context, paths []string) (*ScanResult, error) {
	reports := make([]ScanReport, len(paths))
	err := s.forEach(ctx, paths, func(i int, markup string, _ domain.PropBag) {
		reports[i] = ScanReport{Path: paths[i], Issues: ScanAccessibility(markup)}
		s.logger.Debug("scanned document", zap.String("path", paths[i]), zap.Int("issues", len(reports[i].Issues)))
	})
	if err != nil {
		return nil, err
	}
	return &ScanResult{Reports: reports}, nil
}

// forEach loads and parses each document concurrently and hands it to fn.
// fn must only write to its own index.
func (s *Service) forEach(ctx context.Context, paths []string, fn func(i int, markup string, props domain.PropBag)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := s.reader.ReadFile(gctx, path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			markup, props, err := s.parser.ParseDocument(content)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			fn(i, markup, props)
			return nil
		})
	}
	return g.Wait()
}

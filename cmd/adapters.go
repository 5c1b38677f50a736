package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eykd/dslint-go/internal/config"
	"github.com/eykd/dslint-go/internal/domain"
	"github.com/eykd/dslint-go/internal/fs"
	"github.com/eykd/dslint-go/internal/propcheck"
	"github.com/eykd/dslint-go/internal/propfile"
	"github.com/eykd/dslint-go/internal/ruleid"
)

// lintServicer abstracts the propcheck.Service methods used by adapters.
type lintServicer interface {
	ResolveTargets(ctx context.Context, args []string) ([]string, error)
	Check(ctx context.Context, paths []string) (*propcheck.CheckResult, error)
	Scan(ctx context.Context, paths []string) (*propcheck.ScanResult, error)
}

// configStore abstracts the config.Store methods used by adapters.
type configStore interface {
	Path() string
	Exists() bool
	Load() (*config.Config, error)
	Save(ctx context.Context, cfg *config.Config) error
}

// workspace locates the project around the working directory and wires a
// lint service for it.
type workspace struct {
	getwd       func() (string, error)
	newStore    func(root string) configStore
	wireService func(base string, cfg *config.Config) lintServicer
}

func newWorkspace(getwd func() (string, error)) *workspace {
	return &workspace{
		getwd:       getwd,
		newStore:    func(root string) configStore { return config.NewStore(root) },
		wireService: wireLintService,
	}
}

// wireLintService builds a propcheck.Service reading files relative to base.
func wireLintService(base string, cfg *config.Config) lintServicer {
	return propcheck.NewService(
		&fs.OSContentReader{Root: base},
		propfile.Parser{},
		propcheck.WithExpander(&fs.GlobExpander{Root: base}),
		propcheck.WithInclude(cfg.Include),
		propcheck.WithConcurrency(cfg.Concurrency),
		propcheck.WithLogger(Logger()),
	)
}

// open loads the project configuration and wires a service. Explicit
// targets resolve against the working directory; include patterns resolve
// against the project root.
func (ws *workspace) open(targets []string) (lintServicer, *config.Config, error) {
	cwd, err := ws.getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("getting working directory: %w", err)
	}

	root, found := fs.FindProjectRoot(cwd)
	cfg, err := ws.newStore(root).Load()
	if err != nil {
		return nil, nil, err
	}

	base := root
	if len(targets) > 0 {
		base = cwd
	}
	Logger().Debug("opened workspace",
		zap.String("root", root),
		zap.Bool("configFound", found),
		zap.String("base", base))
	return ws.wireService(base, cfg), cfg, nil
}

func policyFromConfig(cfg *config.Config) CheckPolicy {
	return CheckPolicy{
		FailOnWarnings: cfg.FailOnWarnings,
		MinScore:       cfg.MinScore,
		JSON:           cfg.Format == config.FormatJSON,
	}
}

// issueFinding converts an accessibility issue into a report finding.
func issueFinding(path string, issue domain.AccessibilityIssue) Finding {
	return Finding{
		Rule:     ruleid.FromElement(issue.Element),
		Severity: issueSeverity(issue.Level),
		Message:  issue.Issue,
		Path:     path,
		Fix:      issue.Fix,
	}
}

// fileResult converts a validation summary into a file result. Error-level
// accessibility issues are reported with the prop errors.
func fileResult(path string, s domain.ValidationSummary) FileResult {
	fr := FileResult{
		Path:   path,
		Valid:  s.Valid,
		Score:  s.Score,
		Errors: validationFindings(path, s.Errors),
	}
	for _, issue := range s.Warnings {
		f := issueFinding(path, issue)
		if f.Severity == SeverityError {
			fr.Errors = append(fr.Errors, f)
		} else {
			fr.Warnings = append(fr.Warnings, f)
		}
	}
	return fr
}

// --- checkAdapter ---

type checkAdapter struct {
	ws *workspace
}

func (a *checkAdapter) Check(ctx context.Context, targets []string) (*CheckResult, error) {
	svc, cfg, err := a.ws.open(targets)
	if err != nil {
		return nil, err
	}
	paths, err := svc.ResolveTargets(ctx, targets)
	if err != nil {
		return nil, err
	}
	res, err := svc.Check(ctx, paths)
	if err != nil {
		return nil, err
	}

	out := &CheckResult{Policy: policyFromConfig(cfg)}
	for _, r := range res.Reports {
		out.Files = append(out.Files, fileResult(r.Path, r.Summary))
	}
	return out, nil
}

// --- scanAdapter ---

type scanAdapter struct {
	ws *workspace
}

func (a *scanAdapter) Scan(ctx context.Context, targets []string) (*ScanResult, error) {
	svc, cfg, err := a.ws.open(targets)
	if err != nil {
		return nil, err
	}
	paths, err := svc.ResolveTargets(ctx, targets)
	if err != nil {
		return nil, err
	}
	res, err := svc.Scan(ctx, paths)
	if err != nil {
		return nil, err
	}

	out := &ScanResult{Policy: policyFromConfig(cfg)}
	for _, r := range res.Reports {
		sf := ScanFile{Path: r.Path}
		for _, issue := range r.Issues {
			sf.Issues = append(sf.Issues, issueFinding(r.Path, issue))
		}
		out.Files = append(out.Files, sf)
	}
	return out, nil
}

// --- initAdapter ---

type initAdapter struct {
	ws *workspace
}

func (a *initAdapter) Init(ctx context.Context, force bool) (*InitResult, error) {
	cwd, err := a.ws.getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	store := a.ws.newStore(cwd)
	if store.Exists() && !force {
		return &InitResult{Path: store.Path()}, nil
	}
	if err := store.Save(ctx, config.Default()); err != nil {
		return nil, &ContextError{Op: "write config", Path: store.Path(), Err: err}
	}
	Logger().Debug("wrote default config", zap.String("path", store.Path()))
	return &InitResult{Path: store.Path(), Created: true}, nil
}

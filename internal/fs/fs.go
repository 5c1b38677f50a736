// Package fs provides filesystem adapters that implement propcheck service
// interfaces.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/eykd/dslint-go/internal/config"
)

// MarkupExtensions are the file types collected when a directory is given
// as a target.
var MarkupExtensions = []string{".tsx", ".jsx", ".html", ".mdx", ".vue", ".svelte"}

// OSContentReader implements propcheck.ContentReader using os.ReadFile.
// Relative paths are resolved against Root.
type OSContentReader struct {
	Root string
}

// ReadFile reads the full content of a document.
func (r *OSContentReader) ReadFile(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(r.resolve(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *OSContentReader) resolve(name string) string {
	if filepath.IsAbs(name) || r.Root == "" {
		return name
	}
	return filepath.Join(r.Root, name)
}

// GlobExpander implements propcheck.PathExpander. Patterns are slash
// separated, relative to Root unless absolute, and may use ** to match any
// number of directories. Directories named node_modules and hidden
// directories are never descended into.
type GlobExpander struct {
	Root string
}

// Expand resolves every pattern. Literal paths must exist; a literal
// directory expands to the markup files beneath it.
func (e *GlobExpander) Expand(ctx context.Context, patterns []string) ([]string, error) {
	var out []string
	for _, p := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches, err := e.expandOne(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", p, err)
		}
		out = append(out, matches...)
	}
	return out, nil
}

func (e *GlobExpander) expandOne(ctx context.Context, pattern string) ([]string, error) {
	root, rel, prefix := e.Root, path.Clean(filepath.ToSlash(pattern)), ""
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(pattern) {
		root, prefix = "/", "/"
		rel = strings.TrimPrefix(rel, "/")
	}
	// Leading parent segments move the walk root up; matches keep them as a
	// prefix so they stay relative to Root.
	for rel == ".." || strings.HasPrefix(rel, "../") {
		root = filepath.Join(root, "..")
		prefix += "../"
		rel = strings.TrimPrefix(strings.TrimPrefix(rel, ".."), "/")
	}
	if rel == "" {
		rel = "."
	}
	fsys := os.DirFS(root)

	if !hasMeta(rel) {
		info, err := iofs.Stat(fsys, rel)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return []string{prefix + rel}, nil
		}
		return walk(ctx, fsys, rel, prefix, func(p string) bool {
			return slices.Contains(MarkupExtensions, path.Ext(p))
		})
	}

	segs := strings.Split(rel, "/")
	for _, s := range segs {
		if s == "**" {
			continue
		}
		if _, err := path.Match(s, ""); err != nil {
			return nil, err
		}
	}

	base := staticBase(segs)
	if _, err := iofs.Stat(fsys, base); errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	}
	return walk(ctx, fsys, base, prefix, func(p string) bool {
		return matchSegments(segs, strings.Split(p, "/"))
	})
}

// walk collects regular files under base accepted by keep.
func walk(ctx context.Context, fsys iofs.FS, base, prefix string, keep func(string) bool) ([]string, error) {
	var out []string
	err := iofs.WalkDir(fsys, base, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != base && skipDir(d.Name()) {
				return iofs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && keep(p) {
			out = append(out, prefix+p)
		}
		return nil
	})
	return out, err
}

func skipDir(name string) bool {
	return name == "node_modules" || strings.HasPrefix(name, ".")
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, `*?[\`)
}

// staticBase returns the directory prefix of segs that contains no pattern
// syntax.
func staticBase(segs []string) string {
	var fixed []string
	for _, s := range segs[:len(segs)-1] {
		if hasMeta(s) {
			break
		}
		fixed = append(fixed, s)
	}
	if len(fixed) == 0 {
		return "."
	}
	return path.Join(fixed...)
}

// matchSegments matches a path against a pattern segment by segment, letting
// ** stand for zero or more segments.
func matchSegments(pat, name []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			for i := 0; i <= len(name); i++ {
				if matchSegments(pat[1:], name[i:]) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 {
			return false
		}
		if ok, err := path.Match(pat[0], name[0]); err != nil || !ok {
			return false
		}
		pat, name = pat[1:], name[1:]
	}
	return len(name) == 0
}

// FindProjectRoot walks up from start looking for the configuration file.
// It returns start and false when no enclosing project is found.
func FindProjectRoot(start string) (string, bool) {
	dir := start
	for {
		info, err := os.Stat(filepath.Join(dir, config.FileName))
		if err == nil && !info.IsDir() {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, false
		}
		dir = parent
	}
}

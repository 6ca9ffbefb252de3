// Package adapter contains the filesystem and process adapters used by the
// migration workflow.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	m "github.com/mouse-blink/wle-js-upgrade/internal/model"
)

// globMeta are the characters that turn a pattern into a glob.
const globMeta = "*?[{"

// skippedDirs are never descended into while resolving patterns.
var skippedDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
}

// scriptExts are the extensions collected when a pattern names a directory.
var scriptExts = map[string]struct{}{
	".js":  {},
	".mjs": {},
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when migrating user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get resolves glob patterns to the files they match, in order of first
	// appearance and without duplicates. Paths matching any exclude pattern are
	// dropped. A pattern without glob characters is returned as is, even when
	// the file does not exist, so the caller can report it.
	Get(patterns []string, exclude []string) ([]m.Path, error)

	// Walk traverses the tree rooted at root. Returning filepath.SkipDir from
	// fn for a directory skips its contents.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get resolves patterns to files.
func (a *LocalSourceFSAdapter) Get(patterns []string, exclude []string) ([]m.Path, error) {
	excluded, err := compilePatterns(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var paths []m.Path

	add := func(p string) {
		p = filepath.ToSlash(filepath.Clean(p))
		if matchesAny(excluded, p) {
			return
		}

		if _, ok := seen[m.Path(p)]; ok {
			return
		}

		seen[m.Path(p)] = struct{}{}
		paths = append(paths, m.Path(p))
	}

	for _, pattern := range patterns {
		matches, err := a.resolve(pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			add(match)
		}
	}

	return paths, nil
}

func (a *LocalSourceFSAdapter) resolve(pattern string) ([]string, error) {
	pattern = path.Clean(filepath.ToSlash(pattern))

	if !strings.ContainsAny(pattern, globMeta) {
		info, err := a.FileInfo(m.Path(pattern))
		if err == nil && info.IsDir() {
			return a.collectScripts(pattern)
		}

		return []string{pattern}, nil
	}

	matchers, err := compileGlob(pattern)
	if err != nil {
		return nil, err
	}

	base := staticPrefix(pattern)
	if _, err := a.FileInfo(m.Path(base)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("root path error: %w", err)
	}

	var matches []string

	err = a.Walk(m.Path(base), func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && p != base {
				return filepath.SkipDir
			}

			return nil
		}

		if matchesAny(matchers, filepath.ToSlash(p)) {
			matches = append(matches, p)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// collectScripts lists the script files below dir.
func (a *LocalSourceFSAdapter) collectScripts(dir string) ([]string, error) {
	var scripts []string

	err := a.Walk(m.Path(dir), func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && p != dir {
				return filepath.SkipDir
			}

			return nil
		}

		if _, ok := scriptExts[filepath.Ext(p)]; ok {
			scripts = append(scripts, p)
		}

		return nil
	})

	return scripts, err
}

// Walk iterates over every file and directory under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// compileGlob compiles pattern with '/' as separator. A "**" directory
// segment also matches zero directories, as in shell globstar.
func compileGlob(pattern string) ([]glob.Glob, error) {
	variants := []string{pattern}

	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		variants = append(variants, rest)
	}

	if strings.Contains(pattern, "/**/") {
		variants = append(variants, strings.ReplaceAll(pattern, "/**/", "/"))
	}

	matchers := make([]glob.Glob, 0, len(variants))

	for _, variant := range variants {
		g, err := glob.Compile(variant, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		matchers = append(matchers, g)
	}

	return matchers, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	var out []glob.Glob

	for _, pattern := range patterns {
		matchers, err := compileGlob(path.Clean(filepath.ToSlash(pattern)))
		if err != nil {
			return nil, err
		}

		out = append(out, matchers...)
	}

	return out, nil
}

func matchesAny(matchers []glob.Glob, p string) bool {
	for _, g := range matchers {
		if g.Match(p) {
			return true
		}
	}

	return false
}

// staticPrefix returns the directory part of pattern that holds no glob
// characters.
func staticPrefix(pattern string) string {
	segments := strings.Split(pattern, "/")

	i := 0
	for i < len(segments)-1 && !strings.ContainsAny(segments[i], globMeta) {
		i++
	}

	prefix := strings.Join(segments[:i], "/")

	switch {
	case prefix != "":
		return prefix
	case strings.HasPrefix(pattern, "/"):
		return "/"
	default:
		return "."
	}
}

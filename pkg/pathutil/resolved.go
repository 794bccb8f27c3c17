// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
// Licensed under the Apache License, Version 2.0

package pathutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MacroPower/appversion/pkg/verrors"
)

const (
	// RootMarker replaces the application directory in symbolic paths.
	RootMarker = "%root%"
	// ParentMarker replaces the project root directory in symbolic paths.
	ParentMarker = RootMarker + "/.."
)

// Resolved holds both representations of a version file path.
type Resolved struct {
	// Symbolic is the marker-rewritten form stored in the version file.
	Symbolic string
	// Canonical is the cleaned absolute path on disk.
	Canonical string
}

// Resolve maps rawPath to its symbolic and canonical forms.
//
// The rules are applied in order:
//  1. A path inside appDir has that prefix replaced by [RootMarker].
//  2. A path inside rootDir has that prefix replaced by [ParentMarker].
//  3. A relative path is prefixed with rootDir and resolved again, so
//     "../shared/version.yml" becomes "%root%/../../shared/version.yml".
//  4. Any other absolute path is kept verbatim.
//
// A rawPath that is already symbolic is expanded first, so resolving a
// stored path yields it again. Only the matched prefix is rewritten; the
// remainder of rawPath is kept as given. An empty appDir disables the first
// rule. Relative roots are made absolute against the working directory
// (rootDir) or rootDir (appDir).
func Resolve(rawPath, rootDir, appDir string) (Resolved, error) {
	if strings.TrimSpace(rawPath) == "" {
		return Resolved{}, fmt.Errorf("%w: empty path", verrors.ErrResolvePath)
	}

	root, app, err := absRoots(rootDir, appDir)
	if err != nil {
		return Resolved{}, err
	}

	if expanded, ok := substitute(rawPath, root, app); ok {
		rawPath = expanded
	}

	return resolve(rawPath, root, app), nil
}

func resolve(path, root, app string) Resolved {
	if app != "" {
		if rest, ok := trimDir(path, app); ok {
			return Resolved{Symbolic: RootMarker + rest, Canonical: canonical(path)}
		}
	}

	if rest, ok := trimDir(path, root); ok {
		return Resolved{Symbolic: ParentMarker + rest, Canonical: canonical(path)}
	}

	if !filepath.IsAbs(path) {
		// Prefixed without cleaning, so a path climbing out of root still
		// matches the root rule. The result is absolute, so the second pass
		// always terminates.
		rel := filepath.Clean(path)
		if rel == "." {
			return resolve(root, root, app)
		}

		return resolve(strings.TrimSuffix(root, string(os.PathSeparator))+string(os.PathSeparator)+rel, root, app)
	}

	return Resolved{Symbolic: path, Canonical: canonical(path)}
}

// Expand reverses [Resolve]: markers in symbolic are replaced by the given
// roots and the result is returned in canonical form. Paths without a
// marker are cleaned, and joined with rootDir when relative. When appDir is
// empty, [RootMarker] expands to rootDir.
func Expand(symbolic, rootDir, appDir string) (string, error) {
	root, app, err := absRoots(rootDir, appDir)
	if err != nil {
		return "", err
	}

	if expanded, ok := substitute(symbolic, root, app); ok {
		return canonical(expanded), nil
	}

	if !filepath.IsAbs(symbolic) {
		return canonical(filepath.Join(root, symbolic)), nil
	}

	return canonical(symbolic), nil
}

// DefaultRoots returns the roots used when no project context is available:
// cwd itself, and its "app" subdirectory if one exists.
func DefaultRoots(cwd string) (rootDir, appDir string) {
	app := filepath.Join(cwd, "app")
	if fi, err := os.Stat(app); err == nil && fi.IsDir() {
		return cwd, app
	}

	return cwd, ""
}

// RootsFromAppDir returns the roots for a project whose application
// directory is appDir. The project root is its parent.
func RootsFromAppDir(appDir string) (string, string, error) {
	abs, err := filepath.Abs(appDir)
	if err != nil {
		return "", "", resolveFailure(appDir, err)
	}

	return filepath.Dir(abs), abs, nil
}

// substitute replaces a leading marker with its root, leaving the remainder
// uncleaned.
func substitute(symbolic, root, app string) (string, bool) {
	if app == "" {
		app = root
	}

	if rest, ok := trimMarker(symbolic, ParentMarker); ok {
		return root + rest, true
	}

	if rest, ok := trimMarker(symbolic, RootMarker); ok {
		return app + rest, true
	}

	return "", false
}

func absRoots(rootDir, appDir string) (string, string, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return "", "", resolveFailure(rootDir, err)
	}

	if appDir == "" {
		return root, "", nil
	}

	if !filepath.IsAbs(appDir) {
		appDir = filepath.Join(root, appDir)
	}

	return root, filepath.Clean(appDir), nil
}

// canonical joins the directory and base name of path.
func canonical(path string) string {
	return filepath.Join(filepath.Dir(path), filepath.Base(path))
}

// trimDir reports whether path is dir or lies below it, and returns the
// remainder after dir (including the leading separator).
func trimDir(path, dir string) (string, bool) {
	if path == dir {
		return "", true
	}

	// Ensure dir has a trailing separator, otherwise /foo would match /foo2.
	prefix := dir
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}

	if !strings.HasPrefix(path, prefix) {
		return "", false
	}

	return path[len(prefix)-1:], true
}

func trimMarker(s, marker string) (string, bool) {
	rest, ok := strings.CutPrefix(s, marker)
	if !ok {
		return "", false
	}

	if rest == "" || rest[0] == '/' || rest[0] == os.PathSeparator {
		return rest, true
	}

	return "", false
}

func resolveFailure(path string, err error) error {
	slog.Error("failed to resolve path", "path", path, "err", err)

	return fmt.Errorf("%w: %w", verrors.ErrResolvePath, err)
}

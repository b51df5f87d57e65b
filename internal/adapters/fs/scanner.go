// Package fs provides filesystem adapters: module discovery and artifact
// digests.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildFileName is the build description file whose presence makes a
// directory a buildable module.
const BuildFileName = "meson.build"

var _ ports.Scanner = (*Scanner)(nil)

// Scanner implements ports.Scanner with a fixed traversal policy: the
// project's candidate directories are checked in declared order, never in OS
// directory-iteration order, so discovery is stable across runs.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Discover returns a descriptor for every candidate directory containing a
// build description file. Candidates without one are skipped silently: a
// package with zero native modules is legal. Duplicate candidates keep their
// first position.
func (s *Scanner) Discover(project *domain.Project) ([]domain.Module, error) {
	root, err := filepath.Abs(project.Root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve package root"), "root", project.Root)
	}

	seen := make(map[string]bool, len(project.Candidates))
	var modules []domain.Module
	for _, candidate := range project.Candidates {
		dir := filepath.Clean(filepath.Join(root, candidate))
		if seen[dir] {
			continue
		}
		seen[dir] = true

		buildFile := filepath.Join(dir, BuildFileName)
		info, err := os.Stat(buildFile)
		if err != nil || info.IsDir() {
			continue
		}

		modules = append(modules, domain.Module{
			Name:      moduleName(root, dir),
			SourceDir: dir,
			BuildFile: buildFile,
		})
	}
	return modules, nil
}

// moduleName derives the log-facing identifier: the candidate's base name,
// which for "." is the package root's own name.
func moduleName(root, dir string) string {
	if dir == root {
		return filepath.Base(root)
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.ToSlash(rel)
}

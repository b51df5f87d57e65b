// Package config provides the configuration loader for mason.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the masonfile searched for upward from the working directory.
const FileName = "mason.yaml"

// Defaults applied when the masonfile leaves a field empty.
const (
	defaultStaging      = "build"
	defaultDestination  = "build/lib"
	defaultConfigurator = "meson"
	defaultExecutor     = "ninja"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML masonfile.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load walks upward from cwd until it finds a masonfile, then parses and
// validates it. The directory holding the masonfile becomes the project root.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	root, path, err := discover(cwd)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from user cwd
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Masonfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	project, err := toProject(root, &file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return project, nil
}

// discover returns the directory containing the masonfile and the file path,
// walking from cwd toward the filesystem root.
func discover(cwd string) (string, string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return dir, path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "no mason.yaml found"), "cwd", cwd)
		}
		dir = parent
	}
}

func toProject(root string, file *Masonfile) (*domain.Project, error) {
	if file.Version != "" && file.Version != "1" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unsupported config version"), "version", file.Version)
	}

	candidates, err := normalizeCandidates(file.Modules)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Name:        file.Package,
		Root:        root,
		Candidates:  candidates,
		Destination: file.Destination,
		Staging:     file.Staging,
		Tools: domain.Tools{
			Configurator: file.Tools.Configurator,
			Executor:     file.Tools.Executor,
		},
		Compilers: file.Compilers,
		Hooks: domain.Hooks{
			Build:   file.Hooks.Build,
			Develop: file.Hooks.Develop,
			Install: file.Hooks.Install,
		},
	}

	if project.Name == "" {
		project.Name = filepath.Base(root)
	}
	if project.Destination == "" {
		project.Destination = filepath.FromSlash(defaultDestination)
	}
	if project.Staging == "" {
		project.Staging = defaultStaging
	}
	if project.Tools.Configurator == "" {
		project.Tools.Configurator = defaultConfigurator
	}
	if project.Tools.Executor == "" {
		project.Tools.Executor = defaultExecutor
	}
	if project.Compilers == nil {
		project.Compilers = map[string]string{
			"FC":  "gfortran",
			"F77": "gfortran",
			"F90": "gfortran",
			"CC":  "gcc",
		}
	}

	return project, nil
}

// normalizeCandidates validates the module list: entries must be relative
// paths inside the package, duplicates keep their first position, and an
// empty list means the package root itself.
func normalizeCandidates(modules []string) ([]string, error) {
	if len(modules) == 0 {
		return []string{"."}, nil
	}

	seen := make(map[string]bool, len(modules))
	candidates := make([]string, 0, len(modules))
	for _, entry := range modules {
		if entry == "" {
			return nil, zerr.Wrap(domain.ErrInvalidConfig, "empty module entry")
		}
		if filepath.IsAbs(entry) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "module entry must be relative"), "module", entry)
		}
		clean := filepath.ToSlash(filepath.Clean(entry))
		if clean == ".." || len(clean) > 2 && clean[:3] == "../" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "module entry escapes the package root"), "module", entry)
		}
		if seen[clean] {
			continue
		}
		seen[clean] = true
		candidates = append(candidates, clean)
	}
	return candidates, nil
}

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/config"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func writeMasonfile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o600))
}

func TestLoad_FullConfig(t *testing.T) {
	content := `
version: "1"
package: pyfishpack
modules:
  - .
  - solvers
destination: out/lib
staging: stage
tools:
  configurator: meson-alt
  executor: samu
compilers:
  FC: flang
hooks:
  build: ["python", "-m", "build"]
  develop: ["pip", "install", "-e", "."]
`
	tmpDir := t.TempDir()
	writeMasonfile(t, tmpDir, content)

	project, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "pyfishpack", project.Name)
	assert.Equal(t, tmpDir, project.Root)
	assert.Equal(t, []string{".", "solvers"}, project.Candidates)
	assert.Equal(t, "out/lib", project.Destination)
	assert.Equal(t, "stage", project.Staging)
	assert.Equal(t, "meson-alt", project.Tools.Configurator)
	assert.Equal(t, "samu", project.Tools.Executor)
	assert.Equal(t, map[string]string{"FC": "flang"}, project.Compilers)
	assert.Equal(t, []string{"python", "-m", "build"}, project.Hooks.Build)
	assert.Equal(t, []string{"pip", "install", "-e", "."}, project.Hooks.Develop)
	assert.Empty(t, project.Hooks.Install)
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeMasonfile(t, tmpDir, `version: "1"`)

	project, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(tmpDir), project.Name)
	assert.Equal(t, []string{"."}, project.Candidates)
	assert.Equal(t, filepath.FromSlash("build/lib"), project.Destination)
	assert.Equal(t, "build", project.Staging)
	assert.Equal(t, "meson", project.Tools.Configurator)
	assert.Equal(t, "ninja", project.Tools.Executor)
	assert.Equal(t, map[string]string{
		"FC":  "gfortran",
		"F77": "gfortran",
		"F90": "gfortran",
		"CC":  "gcc",
	}, project.Compilers)
}

func TestLoad_UpwardDiscovery(t *testing.T) {
	tmpDir := t.TempDir()
	writeMasonfile(t, tmpDir, `version: "1"`)

	srcDir := filepath.Join(tmpDir, "src", "deep")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))

	project, err := newLoader(t).Load(srcDir)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, project.Root)
}

func TestLoad_NoConfigFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	tmpDir := t.TempDir()
	writeMasonfile(t, tmpDir, `version: "2"`)

	_, err := newLoader(t).Load(tmpDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}

func TestLoad_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeMasonfile(t, tmpDir, "version: [unclosed")

	_, err := newLoader(t).Load(tmpDir)
	require.Error(t, err)
}

func TestLoad_ModuleValidation(t *testing.T) {
	tests := []struct {
		name    string
		modules string
	}{
		{name: "absolute path", modules: `["/etc"]`},
		{name: "escapes root", modules: `["../sibling"]`},
		{name: "empty entry", modules: `[""]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeMasonfile(t, tmpDir, "version: \"1\"\nmodules: "+tc.modules+"\n")

			_, err := newLoader(t).Load(tmpDir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
		})
	}
}

func TestLoad_ModuleDeduplicationKeepsFirst(t *testing.T) {
	tmpDir := t.TempDir()
	writeMasonfile(t, tmpDir, `
version: "1"
modules: ["solvers", "core", "solvers", "./core"]
`)

	project, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"solvers", "core"}, project.Candidates)
}

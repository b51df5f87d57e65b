package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/meson"
	"go.trai.ch/mason/internal/adapters/telemetry"
	"go.trai.ch/mason/internal/app"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports/mocks"
	"go.trai.ch/mason/internal/engine/builder"
	"go.trai.ch/mason/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader *mocks.MockConfigLoader
	runner *mocks.MockRunner
	app    *app.App

	// argv of every command the runner saw, in order.
	commands [][]string
}

func newHarness(t *testing.T, project *domain.Project, modules []domain.Module) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	h := &harness{
		loader: mocks.NewMockConfigLoader(ctrl),
		runner: mocks.NewMockRunner(ctrl),
	}
	h.loader.EXPECT().Load(".").Return(project, nil).AnyTimes()

	toolchain := mocks.NewMockToolchain(ctrl)
	toolchain.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(base domain.Environment, _ map[string]string) domain.Environment {
			return base
		}).
		AnyTimes()
	toolchain.EXPECT().
		CheckFortran(gomock.Any(), gomock.Any()).
		Return("GNU Fortran 13.2.0", nil).
		AnyTimes()

	probe := mocks.NewMockProbe(ctrl)
	probe.EXPECT().
		Probe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ToolVersions{Configurator: "1.4.0", Executor: "1.11.1"}, nil).
		AnyTimes()

	scanner := mocks.NewMockScanner(ctrl)
	scanner.EXPECT().Discover(gomock.Any()).Return(modules, nil).AnyTimes()

	digester := mocks.NewMockDigester(ctrl)
	digester.EXPECT().DigestTree(gomock.Any()).Return("49f68a5c8493ec2c", nil).AnyTimes()

	orch := orchestrator.NewOrchestrator(
		toolchain,
		probe,
		scanner,
		digester,
		builder.NewBuilder(h.runner, meson.NewBuildSystem()),
		telemetry.NewNoopRecorder(),
		log,
	)
	h.app = app.New(h.loader, orch, h.runner, log).WithEnviron([]string{"PATH=/usr/bin"})
	return h
}

func (h *harness) expectCommands(times int) {
	h.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) (domain.ExecResult, error) {
			h.commands = append(h.commands, cmd.Argv)
			return domain.ExecResult{ExitCode: 0}, nil
		}).
		Times(times)
}

func fixtureProject(t *testing.T, hooks domain.Hooks) (*domain.Project, []domain.Module) {
	t.Helper()
	root := t.TempDir()
	project := &domain.Project{
		Name:        "pyfishpack",
		Root:        root,
		Candidates:  []string{"."},
		Destination: filepath.FromSlash("build/lib"),
		Staging:     "build",
		Tools:       domain.Tools{Configurator: "meson", Executor: "ninja"},
		Hooks:       hooks,
	}
	modules := []domain.Module{{
		Name:      "pyfishpack",
		SourceDir: root,
		BuildFile: filepath.Join(root, "meson.build"),
	}}
	return project, modules
}

func TestDevelop_BuildsInPlaceThenRunsHook(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{Develop: []string{"pip", "install", "-e", "."}})
	h := newHarness(t, project, modules)

	// setup + compile + hook; no install in editable mode
	h.expectCommands(3)

	require.NoError(t, h.app.Develop(context.Background(), app.HookOptions{}))

	require.Len(t, h.commands, 3)
	assert.Equal(t, "setup", h.commands[0][1])
	assert.Equal(t, "ninja", h.commands[1][0])
	assert.Equal(t, []string{"pip", "install", "-e", "."}, h.commands[2])
}

func TestBuild_StagesIntoDestination(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{})
	h := newHarness(t, project, modules)

	// setup + compile + install
	h.expectCommands(3)

	require.NoError(t, h.app.Build(context.Background(), app.HookOptions{}))

	require.Len(t, h.commands, 3)
	wantDest := filepath.Join(project.Root, "build", "lib")
	assert.Contains(t, h.commands[0], "--python.purelibdir="+wantDest)
	assert.Contains(t, h.commands[0], "--python.platlibdir="+wantDest)
	assert.Equal(t, "install", h.commands[2][1])
}

func TestBuild_DestFlagOverridesConfig(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{})
	h := newHarness(t, project, modules)

	h.expectCommands(3)

	dest := t.TempDir()
	require.NoError(t, h.app.Build(context.Background(), app.HookOptions{Dest: dest}))
	assert.Contains(t, h.commands[0], "--python.purelibdir="+dest)
}

func TestBuild_SkipNativeStillRunsHook(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{Build: []string{"python", "-m", "build"}})
	h := newHarness(t, project, modules)

	// only the hook
	h.expectCommands(1)

	require.NoError(t, h.app.Build(context.Background(), app.HookOptions{SkipNative: true}))
	require.Len(t, h.commands, 1)
	assert.Equal(t, []string{"python", "-m", "build"}, h.commands[0])
}

func TestBuild_SkipNativeEnvVar(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{})
	h := newHarness(t, project, modules)
	h.app.WithEnviron([]string{"PATH=/usr/bin", app.SkipNativeEnv + "=1"})

	// no native build, no hook configured: nothing runs
	require.NoError(t, h.app.Build(context.Background(), app.HookOptions{}))
	assert.Empty(t, h.commands)
}

func TestInstall_RunsInstallHookAfterPackagedBuild(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{Install: []string{"touch", "installed"}})
	h := newHarness(t, project, modules)

	// setup + compile + install + hook
	h.expectCommands(4)

	require.NoError(t, h.app.Install(context.Background(), app.HookOptions{}))
	require.Len(t, h.commands, 4)
	assert.Equal(t, []string{"touch", "installed"}, h.commands[3])
}

func TestDevelop_NativeFailureSkipsHook(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{Develop: []string{"pip", "install", "-e", "."}})
	h := newHarness(t, project, modules)

	h.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(domain.ExecResult{Output: "meson: not found", ExitCode: 127},
			zerr.With(zerr.New("command failed"), "exit_code", 127)).
		Times(1)

	err := h.app.Develop(context.Background(), app.HookOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestHookFailurePropagates(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{Develop: []string{"pip", "install", "-e", "."}})
	h := newHarness(t, project, modules)

	calls := 0
	h.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) (domain.ExecResult, error) {
			calls++
			if cmd.Argv[0] == "pip" {
				return domain.ExecResult{Output: "no such option", ExitCode: 2},
					zerr.With(zerr.New("command failed"), "exit_code", 2)
			}
			return domain.ExecResult{ExitCode: 0}, nil
		}).
		Times(3)

	err := h.app.Develop(context.Background(), app.HookOptions{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "hook command failed"))

	var zerrErr *zerr.Error
	require.True(t, errors.As(err, &zerrErr))
	assert.Equal(t, "pip", zerrErr.Metadata()["hook"])
	assert.Equal(t, "no such option", zerrErr.Metadata()["output"])
}

func TestProbe_ReturnsToolVersions(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{})
	h := newHarness(t, project, modules)

	versions, err := h.app.Probe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", versions.Configurator)
	assert.Equal(t, "1.11.1", versions.Executor)
}

func TestClean_RemovesStagingDirs(t *testing.T) {
	project, modules := fixtureProject(t, domain.Hooks{})
	staging := filepath.Join(modules[0].SourceDir, project.Staging)
	require.NoError(t, os.MkdirAll(staging, 0o750))

	h := newHarness(t, project, modules)
	require.NoError(t, h.app.Clean(context.Background()))

	_, err := os.Stat(staging)
	assert.True(t, os.IsNotExist(err))
}

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/cmd/mason/commands"
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
	runner *mocks.MockRunner
	cli    *commands.CLI
	out    *bytes.Buffer

	commands [][]string
}

func newHarness(t *testing.T, hooks domain.Hooks) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

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

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(project, nil).AnyTimes()

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

	h := &harness{
		runner: mocks.NewMockRunner(ctrl),
		out:    &bytes.Buffer{},
	}

	orch := orchestrator.NewOrchestrator(
		toolchain,
		probe,
		scanner,
		digester,
		builder.NewBuilder(h.runner, meson.NewBuildSystem()),
		telemetry.NewNoopRecorder(),
		log,
	)
	a := app.New(loader, orch, h.runner, log).WithEnviron([]string{"PATH=/usr/bin"})

	h.cli = commands.New(a)
	h.cli.SetOut(h.out)
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

func TestDevelop_BuildsInPlace(t *testing.T) {
	h := newHarness(t, domain.Hooks{})
	h.expectCommands(2)

	h.cli.SetArgs([]string{"develop"})
	require.NoError(t, h.cli.Execute(context.Background()))

	require.Len(t, h.commands, 2)
	assert.Equal(t, "setup", h.commands[0][1])
	assert.NotContains(t, h.commands[0], "--python.purelibdir=build/lib")
	assert.Equal(t, "ninja", h.commands[1][0])
}

func TestBuild_DestFlag(t *testing.T) {
	h := newHarness(t, domain.Hooks{})
	h.expectCommands(3)

	dest := t.TempDir()
	h.cli.SetArgs([]string{"build", "--dest", dest})
	require.NoError(t, h.cli.Execute(context.Background()))

	require.Len(t, h.commands, 3)
	assert.Contains(t, h.commands[0], "--python.purelibdir="+dest)
	assert.Equal(t, "install", h.commands[2][1])
}

func TestBuild_SkipNativeFlag(t *testing.T) {
	h := newHarness(t, domain.Hooks{Build: []string{"python", "-m", "build"}})
	h.expectCommands(1)

	h.cli.SetArgs([]string{"build", "--skip-native"})
	require.NoError(t, h.cli.Execute(context.Background()))

	require.Len(t, h.commands, 1)
	assert.Equal(t, []string{"python", "-m", "build"}, h.commands[0])
}

func TestBuild_FailurePropagates(t *testing.T) {
	h := newHarness(t, domain.Hooks{})
	h.runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(domain.ExecResult{Output: "meson.build:1: error", ExitCode: 1},
			zerr.With(zerr.New("command failed"), "exit_code", 1)).
		Times(1)

	h.cli.SetArgs([]string{"build"})
	err := h.cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

func TestProbe_PrintsInstallHintsWhenToolsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(&domain.Project{
		Root:       t.TempDir(),
		Candidates: []string{"."},
		Staging:    "build",
		Tools:      domain.Tools{Configurator: "meson", Executor: "ninja"},
	}, nil)

	toolchain := mocks.NewMockToolchain(ctrl)
	toolchain.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(domain.NewEnvironment(nil))

	probe := mocks.NewMockProbe(ctrl)
	probe.EXPECT().
		Probe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ToolVersions{}, zerr.Wrap(domain.ErrToolsMissing, "configurator not found or not working"))

	runner := mocks.NewMockRunner(ctrl)
	orch := orchestrator.NewOrchestrator(
		toolchain,
		probe,
		mocks.NewMockScanner(ctrl),
		mocks.NewMockDigester(ctrl),
		builder.NewBuilder(runner, meson.NewBuildSystem()),
		telemetry.NewNoopRecorder(),
		log,
	)
	a := app.New(loader, orch, runner, log).WithEnviron([]string{"PATH=/usr/bin"})

	out := &bytes.Buffer{}
	cli := commands.New(a)
	cli.SetOut(out)
	cli.SetArgs([]string{"probe"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrToolsMissing))
	assert.Contains(t, out.String(), "pip install meson ninja")
	assert.Contains(t, out.String(), "conda install meson ninja")
}

func TestProbe_PrintsVersions(t *testing.T) {
	h := newHarness(t, domain.Hooks{})

	h.cli.SetArgs([]string{"probe"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Contains(t, h.out.String(), "configurator: 1.4.0")
	assert.Contains(t, h.out.String(), "executor: 1.11.1")
}

func TestVersion_PrintsVersion(t *testing.T) {
	h := newHarness(t, domain.Hooks{})

	h.cli.SetArgs([]string{"version"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Contains(t, h.out.String(), "mason version")
}

func TestClean_Succeeds(t *testing.T) {
	h := newHarness(t, domain.Hooks{})

	h.cli.SetArgs([]string{"clean"})
	require.NoError(t, h.cli.Execute(context.Background()))
}

func TestUnknownCommandFails(t *testing.T) {
	h := newHarness(t, domain.Hooks{})

	h.cli.SetArgs([]string{"frobnicate"})
	require.Error(t, h.cli.Execute(context.Background()))
}

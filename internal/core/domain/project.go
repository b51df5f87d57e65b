package domain

// Tools names the two external build tools the orchestrator drives.
type Tools struct {
	// Configurator interprets build description files and drives installs
	// (meson).
	Configurator string
	// Executor compiles a configured build tree (ninja).
	Executor string
}

// ToolVersions reports the probed versions of both build tools.
type ToolVersions struct {
	Configurator string
	Executor     string
}

// Hooks holds the optional wrapped commands each lifecycle entry point
// delegates to after the native module build succeeds.
type Hooks struct {
	// Build runs after a packaged build (e.g. the wheel builder).
	Build []string
	// Develop runs after an editable in-place build.
	Develop []string
	// Install runs after a direct install.
	Install []string
}

// Project is the loaded masonfile: everything one orchestrator run needs to
// know about the package being built.
type Project struct {
	// Name is the package name, used in log output only.
	Name string
	// Root is the absolute path of the package root scanned for modules.
	Root string
	// Candidates are the sub-directories of Root checked for a build
	// description, in declared order. "." means the root itself.
	Candidates []string
	// Destination is the default packaged-mode install target, relative to
	// the working directory unless absolute.
	Destination string
	// Staging is the name of the per-module build-staging directory.
	Staging string
	Tools   Tools
	// Compilers maps compiler-selection variables (FC, F77, F90, CC) to the
	// defaults applied when the ambient environment leaves them unset.
	Compilers map[string]string
	Hooks     Hooks
}

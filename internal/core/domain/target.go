package domain

// BuildMode selects where compiled artifacts end up.
type BuildMode string

const (
	// ModeInPlace places artifacts directly into the source tree for
	// immediate local use (editable installs).
	ModeInPlace BuildMode = "in-place"
	// ModePackaged stages artifacts into a separate destination tree
	// intended for distribution.
	ModePackaged BuildMode = "packaged"
)

// Target captures the destination of one orchestrator run. It is derived once
// from the invocation context and stays immutable for the run's duration.
type Target struct {
	Mode    BuildMode
	DestDir string
}

// Installs reports whether a separate install step must run after compilation.
// In-place builds never install: the build system's in-tree step already
// places artifacts under the source tree.
func (t Target) Installs() bool {
	return t.Mode == ModePackaged && t.DestDir != ""
}

package domain

// BuildStatus is the terminal state of one module build attempt.
type BuildStatus string

const (
	// StatusSuccess indicates every phase completed with a zero exit status.
	StatusSuccess BuildStatus = "success"
	// StatusToolsMissing indicates the build tool probe failed before any
	// phase ran.
	StatusToolsMissing BuildStatus = "tools-missing"
	// StatusConfigureFailed indicates the configurator exited non-zero.
	StatusConfigureFailed BuildStatus = "configure-failed"
	// StatusCompileFailed indicates the executor exited non-zero.
	StatusCompileFailed BuildStatus = "compile-failed"
	// StatusInstallFailed indicates the install step exited non-zero.
	StatusInstallFailed BuildStatus = "install-failed"
)

// Phase names the pipeline phase a status belongs to, for failure reporting.
func (s BuildStatus) Phase() string {
	switch s {
	case StatusToolsMissing:
		return "tool-probe"
	case StatusConfigureFailed:
		return "configure"
	case StatusCompileFailed:
		return "compile"
	case StatusInstallFailed:
		return "install"
	default:
		return "build"
	}
}

// Outcome records the result of one module build attempt. Exactly one Outcome
// exists per discovered module after a completed run; it is read-only after
// creation.
type Outcome struct {
	Module Module
	Status BuildStatus
	// Diagnostic holds the captured stdout/stderr of the failing (or, on
	// success, final) external invocation, verbatim.
	Diagnostic string
	// ExitCode is the exit status of the failing invocation; 0 on success,
	// -1 when the process could not be started or the code is unknown.
	ExitCode int
	// ArtifactDigest is a deterministic digest of the built artifacts,
	// populated only on success.
	ArtifactDigest string
}

// Failed reports whether the outcome is anything other than a full success.
func (o Outcome) Failed() bool {
	return o.Status != StatusSuccess
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrToolsMissing is returned when the configurator or executor tool is
	// absent, broken, or failed its version query within the probe timeout.
	ErrToolsMissing = zerr.New("build tools missing")

	// ErrBuildFailed is returned when a module build phase exited non-zero.
	// The failing module and phase travel as error metadata; the CLI logs
	// them before terminating the run.
	ErrBuildFailed = zerr.New("module build failed")

	// ErrInvalidConfig is returned when the masonfile fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

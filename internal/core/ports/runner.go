// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mason/internal/core/domain"
)

// Runner executes external build-tool commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes cmd synchronously with the command's explicit environment
	// and working directory, capturing combined stdout/stderr.
	//
	// The result always carries whatever output was captured. A non-zero
	// exit status is reported as a non-nil error with the exit code attached
	// as metadata, alongside a result whose ExitCode is set.
	Run(ctx context.Context, cmd domain.Command) (domain.ExecResult, error)
}

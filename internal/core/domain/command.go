package domain

// Command is one external process invocation, fully assembled: the build
// system adapter is the only place argument strings are put together.
type Command struct {
	// Argv is the command line; Argv[0] is the tool name, resolved against
	// the environment's PATH at execution time.
	Argv []string
	// Dir is the working directory for the invocation. For module builds
	// this is always the module's source directory.
	Dir string
	// Env is the explicit environment the process runs with. The runner
	// never falls back to the ambient process environment.
	Env Environment
}

// ExecResult carries the captured output and exit status of a finished
// invocation, whether it succeeded or not.
type ExecResult struct {
	// Output is the combined stdout and stderr, verbatim.
	Output string
	// ExitCode is the process exit status; -1 when the process never started.
	ExitCode int
}

package n2t

// Exit codes following GNU/POSIX conventions
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitError indicates a general runtime error, including a report
	// requested before the simulator was configured
	ExitError = 1

	// ExitUsage indicates incorrect command usage
	ExitUsage = 2
)

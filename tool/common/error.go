package common

import (
	"os"

	"github.com/gravitational/trace"
)

// ProcessRunError looks at the error that happened during a CLI command
// execution and converts it to a user-friendly format
func ProcessRunError(runErr error) error {
	if runErr == nil {
		return nil
	}
	switch err := trace.Unwrap(runErr).(type) {
	case *os.PathError:
		return trace.BadParameter("could not open file %q: %v", err.Path, err.Err)
	}
	return runErr
}

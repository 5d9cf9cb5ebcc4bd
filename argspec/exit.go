package argspec

import "errors"

// ExitCode maps a Submit result to a conventional process exit code: 0 for
// success and for the built-in help/version switches, 2 for bad user input,
// 1 for anything else.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelpShown) || errors.Is(err, ErrVersionShown) {
		return 0
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return 2
	}
	return 1
}

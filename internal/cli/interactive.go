package cli

import (
	"os"

	"golang.org/x/term"
)

// nonInteractiveEnv forces non-interactive mode when set to any value.
const nonInteractiveEnv = "FOLIO_NON_INTERACTIVE"

// isNonInteractive reports whether the UI must not be started.
func (o *options) isNonInteractive() bool {
	if o.nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv(nonInteractiveEnv); ok {
		return true
	}
	return !hasTTY()
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

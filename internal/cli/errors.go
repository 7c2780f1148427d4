package cli

import "strings"

// PreflightError reports a condition that stops a command before it does
// anything, with a hint on how to fix it.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\nhint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\ntry: ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}

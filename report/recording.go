package report

import "fmt"

// Recording is a Reporter that captures every warning for inspection,
// used by tests that assert a warning was (or was not) emitted.
type Recording struct {
	Messages []string
}

// Warnf implements Reporter.
func (r *Recording) Warnf(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies why the program is exiting.
type Kind int

const (
	// KindError is an operational failure.
	KindError Kind = iota
	// KindVersionInfo is an early exit that printed version information.
	KindVersionInfo
	// KindHelpInfo is an early exit that printed usage.
	KindHelpInfo
	// KindAuthorInfo is an early exit that printed author information.
	KindAuthorInfo
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindError:
		return "Error"
	case KindVersionInfo:
		return "VersionInfo"
	case KindHelpInfo:
		return "HelpInfo"
	case KindAuthorInfo:
		return "AuthorInfo"
	default:
		return "Unknown"
	}
}

// Process exit statuses. Combined failures carry the sum of the statuses of
// every failing source, so a combined status can collide with one of these.
const (
	ExitSuccess     = 0
	ExitGeneric     = 2
	ExitBodyParsing = 3
	ExitHTTPClient  = 4
)

// ProgramExit describes how the program terminates: with an operational
// failure or with an informational early exit (version, help, author).
type ProgramExit struct {
	Message       string
	StyledMessage *string
	ExitStatus    int
	Kind          Kind
	Wrapped       error
}

// Error implements the error interface
func (e *ProgramExit) Error() string {
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *ProgramExit) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface. Two program exits match when they share
// kind and exit status.
func (e *ProgramExit) Is(target error) bool {
	var targetErr *ProgramExit
	if errors.As(target, &targetErr) {
		return e.Kind == targetErr.Kind && e.ExitStatus == targetErr.ExitStatus
	}
	return false
}

// IsInfo reports whether the exit is informational rather than a failure.
func (e *ProgramExit) IsInfo() bool {
	return e.Kind != KindError
}

// WithStyled returns e with a decorated variant of its message attached.
func (e *ProgramExit) WithStyled(styled string) *ProgramExit {
	e.StyledMessage = &styled
	return e
}

// New creates a failure with the given exit status and message
func New(exitStatus int, message string) *ProgramExit {
	return &ProgramExit{
		Message:    message,
		ExitStatus: exitStatus,
		Kind:       KindError,
	}
}

// Newf creates a failure with a formatted message
func Newf(exitStatus int, format string, args ...interface{}) *ProgramExit {
	return New(exitStatus, fmt.Sprintf(format, args...))
}

// Wrap creates a failure whose message is prefix followed by the description
// of err. It returns nil when err is nil.
func Wrap(err error, exitStatus int, prefix string) *ProgramExit {
	if err == nil {
		return nil
	}
	return &ProgramExit{
		Message:    prefix + err.Error(),
		ExitStatus: exitStatus,
		Kind:       KindError,
		Wrapped:    err,
	}
}

// Info creates an informational early exit with status 0.
func Info(kind Kind, message string) *ProgramExit {
	return &ProgramExit{
		Message:    message,
		ExitStatus: ExitSuccess,
		Kind:       kind,
	}
}

// AsProgramExit returns err as a ProgramExit. Errors of any other type are
// wrapped as generic failures carrying the original message.
func AsProgramExit(err error) *ProgramExit {
	if err == nil {
		return nil
	}
	var exit *ProgramExit
	if errors.As(err, &exit) {
		return exit
	}
	return &ProgramExit{
		Message:    err.Error(),
		ExitStatus: ExitGeneric,
		Kind:       KindError,
		Wrapped:    err,
	}
}

// ExitStatusOf returns the exit status the process should use for err.
func ExitStatusOf(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return AsProgramExit(err).ExitStatus
}

// Combine merges independent failures into one. A single failure is returned
// unmodified. Two or more are joined: messages separated by newlines in the
// given order, exit statuses summed, no styled message.
func Combine(failures ...*ProgramExit) *ProgramExit {
	switch len(failures) {
	case 0:
		return nil
	case 1:
		return failures[0]
	}

	messages := make([]string, 0, len(failures))
	status := 0
	for _, f := range failures {
		messages = append(messages, f.Message)
		status += f.ExitStatus
	}

	return &ProgramExit{
		Message:    strings.Join(messages, "\n"),
		ExitStatus: status,
		Kind:       KindError,
	}
}

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/gig/pkg/errors"
	"github.com/arthur-debert/gig/pkg/types"
)

// Printer writes results to Out and failures to Err
type Printer struct {
	Out io.Writer
	Err io.Writer
	// ErrFormat decides whether failures use their styled message
	ErrFormat Format
}

// NewPrinter creates a printer on the process stdout and stderr
func NewPrinter(format Format) *Printer {
	return NewPrinterWithWriters(format, os.Stdout, os.Stderr)
}

// NewPrinterWithWriters creates a printer on the given writers
func NewPrinterWithWriters(format Format, out, errOut io.Writer) *Printer {
	return &Printer{
		Out:       out,
		Err:       errOut,
		ErrFormat: Resolve(format, errOut),
	}
}

// Print writes the outcome of a command and returns its exit status
func (p *Printer) Print(result types.QualifiedString, err error) int {
	if err != nil {
		return p.Exit(err)
	}
	return p.Result(result)
}

// Result writes a successful value to Out and returns ExitSuccess
func (p *Printer) Result(result types.QualifiedString) int {
	writeLine(p.Out, result.Value)
	return errors.ExitSuccess
}

// Exit writes a program exit and returns its exit status.
// Informational exits go to Out, failures go to Err.
func (p *Printer) Exit(err error) int {
	exit := errors.AsProgramExit(err)
	if exit == nil {
		return errors.ExitSuccess
	}

	if exit.IsInfo() {
		writeLine(p.Out, exit.Message)
		return exit.ExitStatus
	}

	message := exit.Message
	if p.ErrFormat == FormatTerminal && exit.StyledMessage != nil {
		message = *exit.StyledMessage
	}
	writeLine(p.Err, message)
	return exit.ExitStatus
}

func writeLine(w io.Writer, text string) {
	if text == "" {
		return
	}
	if strings.HasSuffix(text, "\n") {
		_, _ = fmt.Fprint(w, text)
		return
	}
	_, _ = fmt.Fprintln(w, text)
}

// errRenderer styles text for stderr, which stays a terminal when stdout
// is redirected into a file.
var errRenderer = lipgloss.NewRenderer(os.Stderr)

// StyleError builds the styled variant of an error message.
// The first line is the headline, the remaining lines are hints.
func StyleError(message string) string {
	return styleErrorWith(errRenderer, message)
}

func styleErrorWith(r *lipgloss.Renderer, message string) string {
	headline, rest, hasRest := strings.Cut(message, "\n")
	styled := GetStyle("Error").Renderer(r).Render(headline)
	if hasRest {
		styled += "\n" + GetStyle("Hint").Renderer(r).Render(rest)
	}
	return styled
}

// ForceColor makes StyleError emit ANSI colors even when stderr is not a
// terminal. It is used when the output format is set to term explicitly.
func ForceColor() {
	errRenderer.SetColorProfile(termenv.ANSI256)
}

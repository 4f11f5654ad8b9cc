package types

import "context"

// Backend is a single origin of template data.
//
// Implementations return *errors.ProgramExit values as errors so exit status
// and message survive aggregation unchanged.
type Backend interface {
	// Generate returns the bodies of the named templates, concatenated in
	// request order. An empty name list yields an empty result without I/O.
	Generate(ctx context.Context, names []string) (QualifiedString, error)

	// GenerateWithCheck validates names against the backend's own listing
	// before generating, failing without fetching content when any name is
	// unsupported.
	GenerateWithCheck(ctx context.Context, names []string) (QualifiedString, error)

	// List returns the available template names, one per line.
	List(ctx context.Context) (QualifiedString, error)
}

// Source names a kind of backend the command line can build.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Request is what the command line asks the aggregation engine to do.
type Request struct {
	Names []string
	List  bool
	Check bool
}

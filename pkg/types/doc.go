// Package types defines the core types and interfaces used throughout gig.
// This includes the Backend interface implemented by every template source,
// the QualifiedString result with its Origin tag, and the Request built by
// the command line.
package types

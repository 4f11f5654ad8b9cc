// Package backend provides the template sources gig can read from.
//
// Local reads templates from a directory resolved on every call, Remote asks
// a gitignore.io-compatible service over HTTP. Both implement types.Backend
// and share the unsupported-name policy of package validation.
package backend

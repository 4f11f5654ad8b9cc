// Package filesystem provides read access to directories of templates.
//
// All access goes through afero so the local backend can run against the
// real OS filesystem in production and an in-memory filesystem in tests.
package filesystem

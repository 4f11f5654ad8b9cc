// Package testutil provides fixtures for testing gig components.
//
// Key components:
//   - TestEnvironment: isolates XDG directories and GIG_ variables, and holds
//     the filesystem local templates are read from
//   - TemplateServer: an httptest server speaking the template service
//     protocol, recording every request path
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only when code under test reads
//     templates through the OS filesystem
//   - Define templates inline in the test
package testutil

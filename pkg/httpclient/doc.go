// Package httpclient is the GET-only HTTP client used by the remote backend.
//
// Every failure is returned as an *errors.ProgramExit whose wrapped cause is
// an *Error classifying it: call failures (transport errors, timeouts,
// non-2xx statuses) exit with status 4, body decoding failures (unreadable
// or non UTF-8 bodies) with status 3.
package httpclient

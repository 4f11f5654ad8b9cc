// Package ui writes command results and program exits to the console.
//
// Successful output goes to stdout untouched so it can be redirected into a
// .gitignore file. Errors go to stderr and use their styled variant when
// stderr is a color capable terminal.
package ui

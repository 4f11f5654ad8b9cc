package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gig/cmd/gig/commands"
	"github.com/arthur-debert/gig/internal/version"
)

// gig-manpage [file] writes gig.1 to file, or to stdout without argument
func main() {
	var out io.Writer = os.Stdout
	if len(os.Args) > 1 {
		f, err := os.Create(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	header := &doc.GenManHeader{
		Title:   "GIG",
		Section: "1",
		Source:  "gig " + version.Version,
		Manual:  "gig manual",
	}

	if err := doc.GenMan(commands.NewRootCmd(), header, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

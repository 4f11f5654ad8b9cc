package main

import (
	"os"

	"github.com/arthur-debert/gig/cmd/gig/commands"
)

func main() {
	os.Exit(commands.Execute())
}

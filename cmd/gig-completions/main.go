package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/gig/cmd/gig/commands"
)

type generator struct {
	file string
	gen  func(*cobra.Command, io.Writer) error
}

var generators = map[string]generator{
	"bash": {"gig.bash", func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) }},
	"zsh":  {"_gig", func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) }},
	"fish": {"gig.fish", func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) }},
	"powershell": {"gig.ps1", func(c *cobra.Command, w io.Writer) error {
		return c.GenPowerShellCompletionWithDesc(w)
	}},
}

// gig-completions <shell>        writes one script to stdout
// gig-completions all <dir>      writes every script into dir
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell> | all <dir>\n", os.Args[0])
		os.Exit(1)
	}

	rootCmd := commands.NewRootCmd()
	shell := os.Args[1]

	if shell == "all" {
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: %s all <dir>\n", os.Args[0])
			os.Exit(1)
		}
		if err := writeAll(rootCmd, os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating completions: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g, ok := generators[shell]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\n", shell)
		fmt.Fprintf(os.Stderr, "Supported shells: bash, zsh, fish, powershell\n")
		os.Exit(1)
	}
	if err := g.gen(rootCmd, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}

func writeAll(rootCmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for shell, g := range generators {
		f, err := os.Create(filepath.Join(dir, g.file))
		if err != nil {
			return err
		}
		if err := g.gen(rootCmd, f); err != nil {
			_ = f.Close()
			return fmt.Errorf("%s: %w", shell, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

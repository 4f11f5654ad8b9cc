package commands

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gig/pkg/aggregator"
	"github.com/arthur-debert/gig/pkg/backend"
	"github.com/arthur-debert/gig/pkg/config"
)

// templateNamesCompletion completes template names from the configured
// sources, skipping names already on the command line
func templateNamesCompletion(cmd *cobra.Command, opts *options, fsys afero.Fs, args []string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.LoadWithOverrides(overridesFrom(cmd.Flags(), opts))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	backends, err := backend.FromConfigWithFS(cfg, fsys)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	listing, err := aggregator.New(backends...).List(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	given := make(map[string]bool, len(args))
	for _, arg := range args {
		given[arg] = true
	}

	var names []string
	for _, line := range strings.Split(listing.Value, "\n") {
		name := strings.TrimPrefix(strings.TrimSpace(line), aggregator.UniqueMarker)
		if name == "" || given[name] {
			continue
		}
		names = append(names, name)
	}

	return names, cobra.ShellCompDirectiveNoFileComp
}

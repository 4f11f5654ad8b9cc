package commands

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/gig/internal/version"
	"github.com/arthur-debert/gig/pkg/aggregator"
	"github.com/arthur-debert/gig/pkg/backend"
	"github.com/arthur-debert/gig/pkg/cobrax/topics"
	"github.com/arthur-debert/gig/pkg/config"
	"github.com/arthur-debert/gig/pkg/errors"
	"github.com/arthur-debert/gig/pkg/filesystem"
	"github.com/arthur-debert/gig/pkg/httpclient"
	"github.com/arthur-debert/gig/pkg/logging"
	"github.com/arthur-debert/gig/pkg/types"
	"github.com/arthur-debert/gig/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

type options struct {
	verbosity     int
	list          bool
	check         bool
	serverURL     string
	generatorPath string
	listerPath    string
	timeout       uint64
	timeoutUnit   string
	sources       []string
	author        bool
	version       bool
	outputFormat  string
	printConfig   string
}

// invocation holds the outcome of the root command until it is printed
type invocation struct {
	ran    bool
	format ui.Format
	result types.QualifiedString
	err    error
}

// Execute runs gig on the process arguments and returns the exit status
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes gig with args and returns the exit status. Results go to out,
// failures and logs go to errOut.
func Run(args []string, out, errOut io.Writer) int {
	return run(args, out, errOut, filesystem.NewOS())
}

func run(args []string, out, errOut io.Writer, fsys afero.Fs) int {
	rootCmd, inv := newRootCmd(fsys)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	printer := ui.NewPrinterWithWriters(inv.format, out, errOut)
	if err != nil {
		return printer.Exit(argumentError(err))
	}
	if !inv.ran {
		// help subcommand or --help
		return errors.ExitSuccess
	}
	return printer.Print(inv.result, inv.err)
}

// NewRootCmd creates the root command, used for man pages and completions
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd(filesystem.NewOS())
	return rootCmd
}

func newRootCmd(fsys afero.Fs) (*cobra.Command, *invocation) {
	initTemplateFormatting()

	opts := &options{}
	inv := &invocation{}

	rootCmd := &cobra.Command{
		Use:     "gig [flags] [template names...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithWriter(opts.verbosity, cmd.ErrOrStderr())
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv.ran = true
			inv.result, inv.err = runRoot(cmd, args, opts, inv, fsys)
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return templateNamesCompletion(cmd, opts, fsys, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVarP(&opts.list, "list", "l", false, MsgFlagList)
	flags.BoolVarP(&opts.check, "check", "c", false, MsgFlagCheck)
	flags.StringVar(&opts.serverURL, "server-url", backend.DefaultServerURL, MsgFlagServerURL)
	flags.StringVar(&opts.generatorPath, "generator-path", backend.DefaultGeneratorPath, MsgFlagGeneratorPath)
	flags.StringVar(&opts.listerPath, "lister-path", backend.DefaultListerPath, MsgFlagListerPath)
	flags.Uint64VarP(&opts.timeout, "timeout", "t", 0, fmt.Sprintf(MsgFlagTimeoutFormat,
		httpclient.UnitSecond.DefaultValue(), httpclient.UnitMillisecond.DefaultValue()))
	flags.StringVarP(&opts.timeoutUnit, "timeout-unit", "u", "second", MsgFlagTimeoutUnit)
	flags.StringSliceVarP(&opts.sources, "source", "s", []string{string(types.SourceRemote)}, MsgFlagSource)
	flags.BoolVarP(&opts.author, "author", "a", false, MsgFlagAuthor)
	flags.BoolVarP(&opts.version, "version", "V", false, MsgFlagVersion)
	flags.StringVar(&opts.outputFormat, "output-format", "auto", MsgFlagOutputFormat)
	flags.StringVar(&opts.printConfig, "print-config", "", MsgFlagPrintConfig)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		styled := ui.Resolve(ui.FormatAuto, os.Stdout) == ui.FormatTerminal
		topicOpts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(styled),
		}
		if _, err := topics.InitializeWithOptions(rootCmd, sub, topicOpts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}

	return rootCmd, inv
}

func runRoot(cmd *cobra.Command, names []string, opts *options, inv *invocation, fsys afero.Fs) (types.QualifiedString, error) {
	logger := logging.GetLogger("cmd.root")

	if opts.version {
		return types.QualifiedString{}, errors.Info(errors.KindVersionInfo,
			fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
	}
	if opts.author {
		return types.QualifiedString{}, errors.Info(errors.KindAuthorInfo,
			fmt.Sprintf(MsgAuthorFormat, version.Author))
	}

	cfg, err := config.LoadWithOverrides(overridesFrom(cmd.Flags(), opts))
	if err != nil {
		return types.QualifiedString{}, styledFailure(MsgErrConfig + err.Error())
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return types.QualifiedString{}, styledFailure(MsgErrOutputFormat + err.Error())
	}
	inv.format = format
	if format == ui.FormatTerminal {
		ui.ForceColor()
	}

	if opts.printConfig != "" {
		rendered, err := config.Render(cfg, opts.printConfig)
		if err != nil {
			return types.QualifiedString{}, styledFailure(MsgErrPrintConfig + err.Error())
		}
		return types.NewQualifiedString(rendered, types.OriginMixed), nil
	}

	if len(names) == 0 && !opts.list {
		return types.QualifiedString{}, errors.Info(errors.KindHelpInfo,
			MsgRootLong+"\n\n"+strings.TrimRight(cmd.UsageString(), "\n"))
	}

	if !opts.list {
		if err := validateNames(names); err != nil {
			return types.QualifiedString{}, err
		}
	}

	backends, err := backend.FromConfigWithFS(cfg, fsys)
	if err != nil {
		return types.QualifiedString{}, styledFailure(MsgErrBackends + err.Error())
	}

	agg := aggregator.New(backends...)
	req := types.Request{Names: names, List: opts.list, Check: opts.check}
	logger.Info().
		Strs("names", req.Names).
		Bool("list", req.List).
		Bool("check", req.Check).
		Strs("sources", cfg.Sources).
		Int("backends", agg.Len()).
		Msg("Running request")

	return agg.Execute(cmd.Context(), req)
}

// overridesFrom maps the flags given on the command line to configuration keys
func overridesFrom(flags *pflag.FlagSet, opts *options) map[string]interface{} {
	overrides := make(map[string]interface{})
	set := func(flag, key string, value interface{}) {
		if flags.Changed(flag) {
			overrides[key] = value
		}
	}

	set("server-url", "remote.server_url", opts.serverURL)
	set("generator-path", "remote.generator_path", opts.generatorPath)
	set("lister-path", "remote.lister_path", opts.listerPath)
	set("timeout", "http.timeout", opts.timeout)
	set("timeout-unit", "http.timeout_unit", opts.timeoutUnit)
	set("source", "sources", opts.sources)
	set("output-format", "output.format", opts.outputFormat)
	return overrides
}

// validateNames rejects names that cannot be sent as one comma separated
// path segment
func validateNames(names []string) error {
	for _, name := range names {
		if name == "" || strings.ContainsRune(name, ',') || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			return styledFailure(fmt.Sprintf(MsgErrInvalidName, name))
		}
	}
	return nil
}

func styledFailure(msg string) *errors.ProgramExit {
	return errors.New(errors.ExitGeneric, msg).WithStyled(ui.StyleError(msg))
}

// argumentError turns a command line parsing error into a generic failure
func argumentError(err error) *errors.ProgramExit {
	return styledFailure(err.Error() + "\n" + MsgErrArgumentsHint)
}

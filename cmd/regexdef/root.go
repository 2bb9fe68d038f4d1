package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"regexdef/internal/compiler"
	"regexdef/internal/config"
)

// errFailed is returned after a failure status line has been printed.
var errFailed = errors.New("compilation failed")

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "regexdef [file]",
		Short: "Check regex definition programs",
		Long: `regexdef parses a program of named regex constants and root patterns,
resolves every ${NAME} substitution against the declared constants and
validates %x<hex>; unicode escapes in literals and character ranges.

Invoked with a single file it behaves like "regexdef check".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runCheck(cmd, opts, args[0])
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newCheckCmd(opts), newPrintCmd(opts), newDotCmd(opts))
	return root
}

func (o *rootOptions) load() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

func newLogger(w io.Writer, cfg config.Log, verbose bool) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}
	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

// compile runs the parse and check phases for one of the subcommands and
// prints the failure status line if either phase fails.
func compile(cmd *cobra.Command, opts *rootOptions, path string) (*compiler.Session, error) {
	cfg, err := opts.load()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cmd.ErrOrStderr(), cfg.Log, opts.verbose)
	if err != nil {
		return nil, err
	}
	s, err := compiler.CompileFile(path, cfg.Check, log)
	if errors.Is(err, compiler.ErrParse) {
		log.Error(err.Error())
		cmd.PrintErrln(failStyle.Render("Parsing failed"))
		return nil, errFailed
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func semanticFailure(cmd *cobra.Command) error {
	cmd.PrintErrln(failStyle.Render("Semantic errors found"))
	return errFailed
}

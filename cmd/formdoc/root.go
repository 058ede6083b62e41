package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootParams struct {
	verbose bool
	restore func()
}

// execute runs the command line in args and restores the global logger
// afterwards.
func execute(args []string, stdout, stderr io.Writer) error {
	params := &rootParams{}
	cmd := newRootCmd(params)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	defer params.uninstallLogger()
	return cmd.Execute()
}

func newRootCmd(params *rootParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formdoc",
		Short:         "Build canonical form documents from definitions, OpenAPI operations or prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			params.installLogger(cmd.ErrOrStderr())
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().BoolVarP(&params.verbose, "verbose", "v", false, "log debug details to stderr")

	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newAuthorCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// installLogger builds the process logger and exposes it through zap.S.
func (p *rootParams) installLogger(errOut io.Writer) {
	level := zapcore.WarnLevel
	encoder := zap.NewProductionEncoderConfig()
	if p.verbose {
		level = zapcore.DebugLevel
		encoder = zap.NewDevelopmentEncoderConfig()
	}

	sink := zapcore.Lock(zapcore.AddSync(errOut))
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), sink, level)
	logger := zap.New(core, zap.ErrorOutput(sink))

	undo := zap.ReplaceGlobals(logger)
	p.restore = func() {
		_ = logger.Sync()
		undo()
	}
}

func (p *rootParams) uninstallLogger() {
	if p.restore != nil {
		p.restore()
		p.restore = nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the formdoc utility",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "formdoc version", version)
			return err
		},
	}
}

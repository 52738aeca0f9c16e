package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/platinummonkey/dotnetscan/pkg/config"
	"github.com/platinummonkey/dotnetscan/pkg/observability"
)

// Version is set at build time
var Version = "dev"

// CommandBuilder creates a subcommand writing to the given streams
type CommandBuilder = func(stdout, stderr io.Writer) *cli.Command

// DefaultCommands are the subcommands of the dotnetscan binary
var DefaultCommands = []CommandBuilder{
	newScanCommand,
	newValidateCommand,
	newLanguagesCommand,
}

// NewRootCommand creates the root command
func NewRootCommand(stdout, stderr io.Writer, commands []CommandBuilder) *cli.Command {
	cmds := make([]*cli.Command, 0, len(commands))
	for _, build := range commands {
		cmds = append(cmds, build(stdout, stderr))
	}

	root := &cli.Command{
		Name:      "dotnetscan",
		Usage:     "collects .NET compiler reports and filters generated sources of a multi-module project",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands:  cmds,
		Suggest:   true,
	}
	// errors are reported by Run, not by the cli package
	root.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}
	return root
}

// Run executes the CLI and returns the process exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr, DefaultCommands)
	if err := root.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds the command logger from the environment and the --log-level flag
func newLogger(cmd *cli.Command, env *config.Config, stderr io.Writer) *logrus.Logger {
	level := env.LogLevel
	if cmd.IsSet("log-level") {
		level = observability.ParseLogLevel(cmd.String("log-level"))
	}
	if env.LogFormat == "json" {
		return observability.NewJSONLogger(level, stderr)
	}
	return observability.NewLogger(level, stderr)
}

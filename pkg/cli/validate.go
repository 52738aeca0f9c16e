package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/platinummonkey/dotnetscan/pkg/config"
	"github.com/platinummonkey/dotnetscan/pkg/plugins"
)

// newValidateCommand creates the validate command
func newValidateCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "checks a project file and prints the report locations of each module",
		ArgsUsage: "[project file or directory]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "plugin-dir",
				Usage: "additional directories holding language plugins",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runValidate(ctx, cmd, stdout, stderr)
		},
	}
}

func runValidate(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	logger := newLogger(cmd, config.LoadConfig(), stderr)

	project, err := loadProject(cmd.Args().First())
	if err != nil {
		return err
	}

	loader := plugins.NewLoader(append(project.PluginDirs, cmd.StringSlice("plugin-dir")...), plugins.NewRegistry(), logger)
	if _, err := loader.Discover(ctx); err != nil {
		return fmt.Errorf("failed to discover plugins: %w", err)
	}
	if err := project.Validate(loader.Registry()); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}

	modules := project.EffectiveModules()
	fmt.Fprintf(stdout, "Project '%s' (%s) is valid: %d module(s)\n", project.Key, project.Language, len(modules))
	for _, m := range modules {
		moduleConfig := config.NewModuleConfiguration(m.Key, m.BaseDir, project.Language, project.ModuleSettings(m), logger)
		fmt.Fprintf(stdout, "  %s\n", m.Key)
		printPaths(stdout, "protobuf", moduleConfig.ProtobufReportPaths())
		printPaths(stdout, "roslyn", moduleConfig.RoslynReportPaths())
	}
	return nil
}

func printPaths(w io.Writer, kind string, paths []string) {
	if len(paths) == 0 {
		fmt.Fprintf(w, "    %-9s (none)\n", kind+":")
		return
	}
	for _, p := range paths {
		fmt.Fprintf(w, "    %-9s %s\n", kind+":", p)
	}
}

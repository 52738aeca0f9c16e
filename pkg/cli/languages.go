package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/platinummonkey/dotnetscan/pkg/config"
	"github.com/platinummonkey/dotnetscan/pkg/plugins"
)

// newLanguagesCommand creates the languages command
func newLanguagesCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "lists the languages that can be scanned",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "plugin-dir",
				Usage: "additional directories holding language plugins",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := newLogger(cmd, config.LoadConfig(), stderr)
			dirs := append(plugins.GetDefaultPluginDirectories(), cmd.StringSlice("plugin-dir")...)

			loader := plugins.NewLoader(dirs, plugins.NewRegistry(), logger)
			if _, err := loader.Discover(ctx); err != nil {
				return err
			}

			fmt.Fprintf(stdout, "%-8s %-10s %s\n", "KEY", "NAME", "SUFFIXES")
			for _, m := range loader.Registry().List() {
				fmt.Fprintf(stdout, "%-8s %-10s %s\n", m.LanguageKey, m.LanguageName, strings.Join(m.FileSuffixes, ","))
			}
			return nil
		},
	}
}

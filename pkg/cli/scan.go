package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/platinummonkey/dotnetscan/pkg/config"
	"github.com/platinummonkey/dotnetscan/pkg/observability"
	"github.com/platinummonkey/dotnetscan/pkg/plugins"
	"github.com/platinummonkey/dotnetscan/pkg/scan"
)

// newScanCommand creates the scan command
func newScanCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "scans a project described by a dotnetscan.yaml file",
		ArgsUsage: "[project file or directory]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: yaml, json",
				Value: "yaml",
				Action: func(_ context.Context, _ *cli.Command, s string) error {
					if s != "yaml" && s != "json" {
						return fmt.Errorf("unsupported format %q - must be one of: yaml, json", s)
					}
					return nil
				},
			},
			&cli.StringFlag{
				Name:      "generated-list",
				Usage:     "file listing generated sources, one path per line (overrides the project file)",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:  "analyze-generated-code",
				Usage: "analyze generated sources instead of skipping them",
			},
			&cli.StringSliceFlag{
				Name:  "plugin-dir",
				Usage: "additional directories holding language plugins",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:      "metrics-out",
				Usage:     "write Prometheus metrics in text format to this file",
				TakesFile: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runScan(ctx, cmd, stdout, stderr)
		},
	}
}

func runScan(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	env := config.LoadConfig()
	logger := newLogger(cmd, env, stderr)
	ctx = observability.WithLogger(ctx, logger)

	project, err := loadProject(cmd.Args().First())
	if err != nil {
		return err
	}

	env.Apply(project)
	if cmd.IsSet("analyze-generated-code") {
		value := cmd.Bool("analyze-generated-code")
		(&config.Config{AnalyzeGeneratedCode: &value}).Apply(project)
	}
	if list := cmd.String("generated-list"); list != "" {
		abs, err := filepath.Abs(list)
		if err != nil {
			return fmt.Errorf("failed to resolve generated list: %w", err)
		}
		project.GeneratedList = abs
	}

	registry := plugins.NewRegistry()
	loader := plugins.NewLoader(append(project.PluginDirs, cmd.StringSlice("plugin-dir")...), registry, logger)
	if _, err := loader.Discover(ctx); err != nil {
		return fmt.Errorf("failed to discover plugins: %w", err)
	}

	if err := project.Validate(registry); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}
	metadata, err := registry.Get(project.Language)
	if err != nil {
		return err
	}

	opts := []scan.Option{scan.WithLogger(logger)}
	var gatherer *prometheus.Registry
	if env.MetricsEnabled || cmd.String("metrics-out") != "" {
		gatherer = prometheus.NewRegistry()
		opts = append(opts, scan.WithMetrics(observability.NewMetrics(gatherer)))
	}

	scanner, err := scan.New(project, metadata, opts...)
	if err != nil {
		return err
	}

	result, err := scanner.Run(ctx)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if path := cmd.String("metrics-out"); path != "" {
		if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return writeResult(stdout, cmd.String("format"), result)
}

// loadProject accepts a project file, a directory holding one, or nothing (current directory)
func loadProject(arg string) (*config.Project, error) {
	if arg == "" {
		arg = "."
	}

	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}
	if info.IsDir() {
		return config.LoadProjectFromDir(arg)
	}
	return config.LoadProject(arg)
}

func writeResult(w io.Writer, format string, result *scan.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/AlexandreNap/hierarchical-config-merging/internal/conf"
	"github.com/AlexandreNap/hierarchical-config-merging/internal/l10n"
)

func main() {
	app := &cli.App{
		Name:            "hcm",
		Usage:           l10n.T("merge hierarchical YAML configuration"),
		ArgsUsage:       "BASE_DIR TARGET_PATH",
		HideHelpCommand: true,
		Description: l10n.T("Merges every YAML file found on the directory path from " +
			"BASE_DIR to TARGET_PATH, deeper directories overriding shallower ones. " +
			"Diagnostics go to stderr, the merged configuration to stdout."),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "implementation",
				Usage: l10n.T("core implementation to use (only \"go\" is available)"),
				Value: "go",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: l10n.T("output format: json or yaml"),
				Value: "json",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf(l10n.T("expected BASE_DIR and TARGET_PATH arguments, got %d"), c.NArg())
	}
	if implementation := c.String("implementation"); implementation != "go" {
		return fmt.Errorf(l10n.T("unknown implementation: %s"), implementation)
	}
	format := c.String("output")
	if format != "json" && format != "yaml" {
		return fmt.Errorf(l10n.T("unknown output format: %s"), format)
	}

	base := c.Args().Get(0)
	target := c.Args().Get(1)

	progress := startProgress(l10n.T("Merging configuration hierarchy..."))
	merged, diagnostics, err := conf.MergeHierarchy(base, target)
	progress.stop()
	if err != nil {
		return err
	}

	// Diagnostics are advisory: they are printed, but the exit code
	// stays zero.
	for _, diagnostic := range diagnostics {
		fmt.Fprintf(os.Stderr, "⚠️  %s\n", diagnostic)
	}

	return writeMerged(os.Stdout, merged, format)
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/serializer"
)

// Environment variables bound to flags.
const (
	envConfig  = "COOKBOOK_CONFIG"
	envRecipes = "COOKBOOK_RECIPES"
	envCatalog = "COOKBOOK_CATALOG"
	envOmit    = "COOKBOOK_OMIT"
	envMetrics = "COOKBOOK_METRICS_FILE"
)

// Flags are built per command so parsed state never leaks between runs.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Usage:   "YAML or JSON file with default recipes, catalog and omit settings",
		Sources: cli.EnvVars(envConfig),
	}
}

func metricsFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "metrics-file",
		Usage:   "write Prometheus metrics in text format to this file on exit",
		Sources: cli.EnvVars(envMetrics),
	}
}

func recipesFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "recipes",
		Aliases: []string{"r"},
		Usage:   "recipe root directory laid out as <category>/<id>.md",
		Sources: cli.EnvVars(envRecipes),
	}
}

func recipeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "recipe",
		Aliases:  []string{"id"},
		Usage:    "recipe id (slug) to resolve",
		Required: true,
	}
}

func catalogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "nutrition catalog YAML file",
		Sources: cli.EnvVars(envCatalog),
	}
}

func omitFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "omit",
		Usage:   "ingredient names to leave out of nutrition totals",
		Sources: cli.EnvVars(envOmit),
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// writeOutput serializes doc to --output (or stdout) in --format.
// writeMetrics dumps the default registry for the node exporter textfile
// collector. An empty path is a no-op.
func writeMetrics(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %q: %w", path, err)
	}
	slog.Debug("metrics written", "path", path)
	return nil
}

func writeOutput(ctx context.Context, cmd *cli.Command, doc any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := w.Serialize(ctx, doc); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	return nil
}

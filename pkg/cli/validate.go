package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/nutrition"
	"github.com/mchmarny/cookbook/pkg/store"
	"github.com/mchmarny/cookbook/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate every recipe in a recipe directory",
		Description: `Load every recipe under the recipe directory and check it.

Each recipe is checked for parse errors, unknown cross-references, a title that
does not slugify to its id and circular cross-references. When a catalog is
given, recipes whose nutrition cannot be fully resolved are reported as
warnings.

# Examples

  cookbook validate --recipes ./recipes
  cookbook validate -r ./recipes -c catalog.yaml -t table
  cookbook validate -r ./recipes --fail-on-error`,
		Flags: []cli.Flag{
			recipesFlag(),
			catalogFlag(),
			omitFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit with non-zero status if any check fails",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			if err := requireRecipes(cfg); err != nil {
				return err
			}
			lib, err := store.Load(ctx, cfg.Recipes)
			if err != nil {
				return fmt.Errorf("failed to load recipes from %q: %w", cfg.Recipes, err)
			}

			opts := []validator.Option{validator.WithVersion(version)}
			if cfg.Catalog != "" {
				catalog, _, cerr := nutrition.LoadCatalogFile(cfg.Catalog)
				if cerr != nil {
					return fmt.Errorf("failed to load catalog from %q: %w", cfg.Catalog, cerr)
				}
				opts = append(opts, validator.WithNutrition(catalog, cfg.Omit...))
			}

			result, err := validator.New(opts...).Validate(ctx, lib)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			result.Source = cfg.Recipes

			if err := writeOutput(ctx, cmd, result); err != nil {
				return err
			}

			slog.Info("validation completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"warnings", result.Summary.Warnings,
				"duration", result.Summary.Duration)

			if cmd.Bool("fail-on-error") && result.Summary.Status == validator.ValidationStatusFail {
				return fmt.Errorf("validation failed: %d check(s) did not pass", result.Summary.Failed)
			}
			return nil
		},
	}
}

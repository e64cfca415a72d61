package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/header"
	"github.com/mchmarny/cookbook/pkg/nutrition"
)

func nutritionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "nutrition",
		EnableShellCompletion: true,
		Usage:                 "Compute the nutrition of a recipe",
		Description: `Resolve a recipe's ingredients against a nutrition catalog and report the
nutrient totals and, when the recipe declares Serves, per-serving values.

Ingredients missing from the catalog, or with amounts that cannot be converted
to grams, are listed so the totals can be read as a lower bound.

# Examples

  cookbook nutrition --recipes ./recipes --recipe focaccia --catalog catalog.yaml
  cookbook nutrition -r ./recipes --recipe focaccia -c catalog.yaml --omit water,salt -t table`,
		Flags: []cli.Flag{
			recipesFlag(),
			recipeFlag(),
			catalogFlag(),
			omitFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Catalog == "" {
				return cberrors.New(cberrors.ErrCodeInvalidRequest,
					fmt.Sprintf("nutrition catalog is required (--catalog or %s)", envCatalog))
			}

			catalog, _, err := nutrition.LoadCatalogFile(cfg.Catalog)
			if err != nil {
				return fmt.Errorf("failed to load catalog from %q: %w", cfg.Catalog, err)
			}

			lib, err := loadLibrary(ctx, cfg)
			if err != nil {
				return err
			}
			r, err := resolveRecipe(lib, cmd.String("recipe"))
			if err != nil {
				return err
			}

			res := nutrition.NewCalculator(catalog, nutrition.WithOmit(cfg.Omit...)).Calculate(r, lib.Recipes)
			if !res.Complete() {
				slog.Warn("nutrition is incomplete",
					"recipe", r.ID,
					"missing", res.MissingIngredients,
					"partial", res.PartialIngredients)
			}

			doc := &NutritionDocument{
				Header: header.New(header.KindNutritionResult,
					header.WithVersion(version),
					header.WithMetadata("recipes", cfg.Recipes),
					header.WithMetadata("catalog", cfg.Catalog)),
				Recipe:    r.ID,
				Complete:  res.Complete(),
				Nutrition: res,
			}
			return writeOutput(ctx, cmd, doc)
		},
	}
}

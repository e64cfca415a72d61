package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/crossref"
	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/header"
	"github.com/mchmarny/cookbook/pkg/recipe"
)

func ingredientsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "ingredients",
		EnableShellCompletion: true,
		Usage:                 "List the aggregated ingredients of a recipe",
		Description: `Resolve a recipe's cross-references and list every ingredient with its
quantities summed per unit. Quantities in incompatible units are listed side
by side rather than converted.

# Examples

  cookbook ingredients --recipes ./recipes --recipe focaccia
  cookbook ingredients -r ./recipes --recipe focaccia --scale 2 -t table`,
		Flags: []cli.Flag{
			recipesFlag(),
			recipeFlag(),
			&cli.FloatFlag{
				Name:  "scale",
				Value: 1,
				Usage: "multiply every quantity by this factor",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			scale := cmd.Float("scale")
			if scale <= 0 {
				return cberrors.New(cberrors.ErrCodeInvalidRequest,
					fmt.Sprintf("scale must be positive, got %g", scale))
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			lib, err := loadLibrary(ctx, cfg)
			if err != nil {
				return err
			}
			r, err := resolveRecipe(lib, cmd.String("recipe"))
			if err != nil {
				return err
			}

			list := crossref.AllIngredientsWithQuantities(r, lib.Recipes)
			if scale != 1 {
				for i := range list {
					list[i].Amounts = recipe.ScaleAmounts(list[i].Amounts, scale)
				}
			}

			doc := &IngredientListDocument{
				Header: header.New(header.KindIngredientList,
					header.WithVersion(version),
					header.WithMetadata("recipes", cfg.Recipes),
					header.WithMetadata("scale", strconv.FormatFloat(scale, 'g', -1, 64))),
				Recipe:      r.ID,
				Ingredients: list,
			}
			return writeOutput(ctx, cmd, doc)
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/header"
	"github.com/mchmarny/cookbook/pkg/recipe"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a single recipe file",
		ArgsUsage:             "FILE",
		Description: `Parse one markdown recipe and emit the structured document.

The recipe id defaults to the file name without its extension. When --category
is set the front matter must declare a matching Category.

# Examples

  cookbook parse recipes/bread/focaccia.md
  cookbook parse --category bread -t json recipes/bread/focaccia.md`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "category the recipe is filed under",
			},
			&cli.StringFlag{
				Name:  "id",
				Usage: "recipe id (default: file name without extension)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return cberrors.New(cberrors.ErrCodeInvalidRequest, "recipe file argument is required")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return cberrors.WrapWithContext(cberrors.ErrCodeNotFound, "failed to read recipe", err,
					map[string]any{"path": path})
			}

			id := cmd.String("id")
			if id == "" {
				id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			opts := []recipe.Option{recipe.WithID(id)}
			if c := cmd.String("category"); c != "" {
				opts = append(opts, recipe.WithCategory(c))
			}

			r, err := recipe.Parse(string(data), opts...)
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", path, err)
			}
			slog.Debug("recipe parsed", "path", path, "id", r.ID, "steps", len(r.Steps))

			doc := &RecipeDocument{
				Header: header.New(header.KindRecipe, header.WithVersion(version)),
				Source: path,
				Recipe: r,
			}
			return writeOutput(ctx, cmd, doc)
		},
	}
}

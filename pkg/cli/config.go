package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/cookbook/pkg/crossref"
	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/recipe"
	"github.com/mchmarny/cookbook/pkg/serializer"
	"github.com/mchmarny/cookbook/pkg/store"
)

// Config is the optional --config file. Relative paths are resolved against
// the directory of the config file. Flags and environment variables win over
// config values.
type Config struct {
	Recipes string   `json:"recipes,omitempty" yaml:"recipes,omitempty"`
	Catalog string   `json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Omit    []string `json:"omit,omitempty" yaml:"omit,omitempty"`
}

func loadConfig(cmd *cli.Command) (*Config, error) {
	path := cmd.String("config")
	if path == "" {
		return &Config{}, nil
	}

	cfg, err := serializer.FromFile[Config](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %q: %w", path, err)
	}

	base := filepath.Dir(path)
	cfg.Recipes = relativeTo(base, cfg.Recipes)
	cfg.Catalog = relativeTo(base, cfg.Catalog)
	slog.Debug("config loaded", "path", path, "recipes", cfg.Recipes, "catalog", cfg.Catalog)
	return cfg, nil
}

func relativeTo(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// resolveConfig merges the config file with flags and environment.
func resolveConfig(cmd *cli.Command) (*Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if v := cmd.String("recipes"); v != "" {
		cfg.Recipes = v
	}
	if v := cmd.String("catalog"); v != "" {
		cfg.Catalog = v
	}
	if v := cmd.StringSlice("omit"); len(v) > 0 {
		cfg.Omit = v
	}
	return cfg, nil
}

// loadLibrary loads every recipe under cfg.Recipes. Files that fail to parse
// are logged and left out.
func loadLibrary(ctx context.Context, cfg *Config) (*store.Library, error) {
	if err := requireRecipes(cfg); err != nil {
		return nil, err
	}

	lib, err := store.Load(ctx, cfg.Recipes)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes from %q: %w", cfg.Recipes, err)
	}
	for _, fe := range lib.Errors {
		slog.Warn("skipping recipe that failed to parse", "path", fe.Path, "error", fe.Err)
	}
	return lib, nil
}

func requireRecipes(cfg *Config) error {
	if cfg.Recipes == "" {
		return cberrors.New(cberrors.ErrCodeInvalidRequest,
			fmt.Sprintf("recipe directory is required (--recipes or %s)", envRecipes))
	}
	return nil
}

// resolveRecipe finds id in lib and checks its cross-reference graph, which
// must hold before the recipe is expanded.
func resolveRecipe(lib *store.Library, id string) (*recipe.Recipe, error) {
	r, ok := lib.Recipes.Resolve(id)
	if !ok {
		return nil, cberrors.NewWithContext(cberrors.ErrCodeNotFound,
			fmt.Sprintf("recipe %q not found", id), map[string]any{"recipe": id})
	}

	if err := stderrors.Join(
		crossref.ValidateReferences(r, lib.Recipes),
		crossref.DetectCycles(r, lib.Recipes),
	); err != nil {
		return nil, err
	}
	return r, nil
}

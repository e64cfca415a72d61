// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mchmarny/cookbook/pkg/crossref"
	"github.com/mchmarny/cookbook/pkg/defaults"
	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/recipe"
	"golang.org/x/sync/errgroup"
)

// Store loads recipe source files laid out as <root>/<category>/<id>.md.
// Parsed recipes are cached by content hash, so reloading unchanged files
// does not parse them again. A Store is safe for concurrent use.
type Store struct {
	root        string
	concurrency int
	cacheSize   int
	cache       *lru.Cache[string, *recipe.Recipe]
}

// Option is a functional option for New.
type Option func(*Store)

// WithConcurrency bounds the number of files parsed at once.
func WithConcurrency(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithCacheSize sets the number of parsed recipes kept in the cache.
func WithCacheSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// New returns a Store reading from root.
func New(root string, opts ...Option) (*Store, error) {
	s := &Store{
		root:        root,
		concurrency: defaults.ParseConcurrency,
		cacheSize:   defaults.ParseCacheSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	cache, err := lru.New[string, *recipe.Recipe](s.cacheSize)
	if err != nil {
		return nil, cberrors.Wrap(cberrors.ErrCodeInternal, "failed to create parse cache", err)
	}
	s.cache = cache
	return s, nil
}

// Root returns the directory the store reads from.
func (s *Store) Root() string {
	return s.root
}

// Load reads every recipe under root with a new Store.
func Load(ctx context.Context, root string) (*Library, error) {
	s, err := New(root)
	if err != nil {
		return nil, err
	}
	return s.Load(ctx)
}

// FileError is a recipe file that could not be parsed or indexed.
type FileError struct {
	Path     string `json:"path" yaml:"path"`
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Err      error  `json:"-" yaml:"-"`
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Library is the result of loading a recipe tree.
type Library struct {
	// Recipes holds every successfully parsed recipe by id.
	Recipes crossref.Map
	// Errors lists files that failed, in path order.
	Errors []*FileError
}

// Err joins every file error, or returns nil.
func (l *Library) Err() error {
	errs := make([]error, 0, len(l.Errors))
	for _, e := range l.Errors {
		errs = append(errs, e)
	}
	return stderrors.Join(errs...)
}

type source struct {
	path     string
	id       string
	category string
}

// Load parses every recipe file in parallel. Bad files are reported in
// Library.Errors; the returned error is only for an unreadable root or a
// cancelled context.
func (s *Store) Load(ctx context.Context) (*Library, error) {
	sources, err := s.discover()
	if err != nil {
		return nil, err
	}

	type outcome struct {
		recipe *recipe.Recipe
		err    error
	}
	outcomes := make([]outcome, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.ParseFile(src.path, src.id, src.category)
			outcomes[i] = outcome{recipe: r, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, cberrors.Wrap(cberrors.ErrCodeInternal, "recipe load cancelled", err)
	}

	lib := &Library{Recipes: make(crossref.Map, len(sources))}
	owners := make(map[string]string, len(sources))
	for i, src := range sources {
		o := outcomes[i]
		if o.err != nil {
			lib.Errors = append(lib.Errors, &FileError{Path: src.path, ID: src.id, Category: src.category, Err: o.err})
			continue
		}
		if prev, dup := owners[o.recipe.ID]; dup {
			lib.Errors = append(lib.Errors, &FileError{Path: src.path, ID: src.id, Category: src.category,
				Err: cberrors.NewWithContext(cberrors.ErrCodeSemantic,
					fmt.Sprintf("Recipe id %q is already used by %s", o.recipe.ID, prev),
					map[string]any{"id": o.recipe.ID})})
			continue
		}
		owners[o.recipe.ID] = src.path
		lib.Recipes[o.recipe.ID] = o.recipe
	}

	recipesLoaded.Set(float64(len(lib.Recipes)))
	slog.Info("recipes loaded",
		"root", s.root,
		"recipes", len(lib.Recipes),
		"errors", len(lib.Errors),
	)
	return lib, nil
}

// discover lists recipe files one directory below root, sorted by path.
func (s *Store) discover() ([]source, error) {
	categories, err := os.ReadDir(s.root)
	if err != nil {
		return nil, cberrors.WrapWithContext(cberrors.ErrCodeNotFound, "failed to read recipe root", err,
			map[string]any{"root": s.root})
	}

	var sources []source
	for _, c := range categories {
		if !c.IsDir() || strings.HasPrefix(c.Name(), ".") {
			continue
		}
		dir := filepath.Join(s.root, c.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			return nil, cberrors.WrapWithContext(cberrors.ErrCodeInternal, "failed to read category", err,
				map[string]any{"dir": dir})
		}
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != defaults.RecipeExtension {
				continue
			}
			sources = append(sources, source{
				path:     filepath.Join(dir, name),
				id:       strings.TrimSuffix(name, defaults.RecipeExtension),
				category: c.Name(),
			})
		}
	}

	slices.SortFunc(sources, func(a, b source) int {
		return strings.Compare(a.path, b.path)
	})
	slog.Debug("recipe files discovered", "root", s.root, "files", len(sources))
	return sources, nil
}

// ParseFile reads and parses one recipe file.
func (s *Store) ParseFile(path, id, category string) (*recipe.Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, cberrors.WrapWithContext(cberrors.ErrCodeNotFound, "failed to read recipe", err,
			map[string]any{"path": path})
	}
	return s.Parse(string(b), id, category)
}

// Parse parses source, returning the cached recipe when the same source was
// already parsed for the same id and category.
func (s *Store) Parse(source, id, category string) (*recipe.Recipe, error) {
	key := cacheKey(recipe.VersionHash(source), id, category)
	if r, ok := s.cache.Get(key); ok {
		recordCacheLookup(true)
		return r, nil
	}
	recordCacheLookup(false)

	start := time.Now()
	r, err := recipe.Parse(source, recipe.WithID(id), recipe.WithCategory(category))
	parseDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		parseErrors.WithLabelValues(string(cberrors.CodeOf(err))).Inc()
		slog.Debug("recipe parse failed", "id", id, "category", category, "error", err)
		return nil, err
	}

	s.cache.Add(key, r)
	return r, nil
}

func cacheKey(hash, id, category string) string {
	return hash + "|" + id + "|" + category
}

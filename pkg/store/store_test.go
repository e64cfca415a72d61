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

// store_test.go tests loading recipe trees from disk.
//
// Area of Concern: recipe storage
// - Store.Load() - discovery, category and id assignment, per-file errors
// - Store.Parse() - cache reuse keyed by content hash
// - Load() - unreadable root and cancelled context

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func testTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "bread/pizza-dough.md", "# Pizza Dough\n\nCategory: bread\n\n## Mix\n\n- Flour, 500 g\n")
	writeFile(t, root, "bread/focaccia.md", "# Focaccia\n\nCategory: Bread\n\n## Dough\n\n- @[Pizza Dough], 2\n")
	writeFile(t, root, "sauces/pesto.md", "# Pesto\n\nCategory: Bread\n\n## Blend\n\n- Basil, 1 cup\n")
	writeFile(t, root, "sauces/notes.txt", "not a recipe")
	writeFile(t, root, "sauces/.draft.md", "# Draft\n")
	writeFile(t, root, ".git/config.md", "# Ignored\n")
	writeFile(t, root, "README.md", "# Root files are ignored\n")
	return root
}

func TestStore_Load(t *testing.T) {
	root := testTree(t)

	lib, err := Load(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"focaccia", "pizza-dough"}, lib.Recipes.Slugs())
	assert.InDelta(t, 2, testutil.ToFloat64(recipesLoaded), 0)
	assert.Equal(t, "bread", lib.Recipes["pizza-dough"].Category)

	require.Len(t, lib.Errors, 1)
	fe := lib.Errors[0]
	assert.Equal(t, "pesto", fe.ID)
	assert.Equal(t, "sauces", fe.Category)
	assert.Equal(t, filepath.Join(root, "sauces", "pesto.md"), fe.Path)
	assert.Equal(t, cberrors.ErrCodeSemantic, cberrors.CodeOf(fe))

	err = lib.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pesto.md")
}

func TestStore_LoadDuplicateID(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/toast.md", "# Toast\n\nCategory: a\n\n## Toast\n\n- Bread\n")
	writeFile(t, root, "b/toast.md", "# Toast\n\nCategory: b\n\n## Toast\n\n- Bread\n")

	s, err := New(root, WithConcurrency(1))
	require.NoError(t, err)
	lib, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, lib.Recipes, 1)
	assert.Equal(t, "a", lib.Recipes["toast"].Category)
	require.Len(t, lib.Errors, 1)
	assert.Contains(t, lib.Errors[0].Error(), "already used")
}

func TestStore_ParseCache(t *testing.T) {
	s, err := New(t.TempDir(), WithCacheSize(4))
	require.NoError(t, err)

	hits := testutil.ToFloat64(cacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(cacheLookups.WithLabelValues("miss"))
	semantic := testutil.ToFloat64(parseErrors.WithLabelValues(string(cberrors.ErrCodeSemantic)))

	src := "# Toast\n\nCategory: snacks\n\n## Toast\n\n- Bread\n"
	a, err := s.Parse(src, "toast", "snacks")
	require.NoError(t, err)
	b, err := s.Parse(src, "toast", "snacks")
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := s.Parse(src+"\nMore.", "toast", "snacks")
	require.NoError(t, err)
	assert.NotSame(t, a, c)
	assert.NotEqual(t, a.VersionHash, c.VersionHash)

	_, err = s.Parse(src, "toast", "breakfast")
	assert.Error(t, err, "cache must not hide a category mismatch")

	assert.InDelta(t, 1, testutil.ToFloat64(cacheLookups.WithLabelValues("hit"))-hits, 0)
	assert.InDelta(t, 3, testutil.ToFloat64(cacheLookups.WithLabelValues("miss"))-misses, 0)
	assert.InDelta(t, 1, testutil.ToFloat64(parseErrors.WithLabelValues(string(cberrors.ErrCodeSemantic)))-semantic, 0)
}

func TestStore_Reload(t *testing.T) {
	root := testTree(t)
	s, err := New(root)
	require.NoError(t, err)

	first, err := s.Load(context.Background())
	require.NoError(t, err)
	second, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Same(t, first.Recipes["focaccia"], second.Recipes["focaccia"])
}

func TestStore_LoadErrors(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeNotFound, cberrors.CodeOf(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, testTree(t))
	assert.Error(t, err)
}

func TestLibrary_ErrEmpty(t *testing.T) {
	lib := &Library{}
	assert.NoError(t, lib.Err())
}

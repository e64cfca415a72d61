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

// parser_test.go tests building a Recipe from source text.
//
// Area of Concern: recursive-descent recipe builder
// - Parse() - title, description, front matter, steps, footer
// - Option handling - WithID, WithCategory
// - Error reporting - codes and line numbers for malformed input
// - Determinism - same source yields an equal recipe and hash
//
// Related test files:
// - item_test.go: ingredient and cross-reference line parsing
// - amounts_test.go: quantity aggregation and merging

package recipe

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pizzaDough = "# Pizza Dough\n\n## Mix (make dough)\n\n- Flour, 500 g\n- Water, 325 g\n- Salt\n\nKnead."

const focaccia = `# Focaccia

Airy, oily sheet-pan bread.

Category: Bread
Makes: 1 tray
Serves: 6-8

## Make the dough

- @[Pizza Dough], 2x: rested overnight
- Olive oil, 3 tbsp

Stretch the dough into the pan.
Dimple with oiled fingers.

## Bake

Bake at 230C for 20 minutes.

---

Best eaten the same day.
Keeps one day wrapped.


Freezes well.
`

func TestParse_PizzaDough(t *testing.T) {
	r, err := Parse(pizzaDough)
	require.NoError(t, err)

	assert.Equal(t, "Pizza Dough", r.Title)
	assert.Equal(t, "pizza-dough", r.ID)
	assert.Empty(t, r.Category)
	require.Len(t, r.Steps, 1)

	step := r.Steps[0]
	assert.Equal(t, "Mix (make dough)", step.TLDR)
	assert.Equal(t, "Knead.", step.Instructions)

	ings := step.Ingredients()
	require.Len(t, ings, 3)
	assert.Equal(t, Ingredient{Name: "Flour", RawQuantity: "500 g"}, ings[0])
	assert.Equal(t, Ingredient{Name: "Water", RawQuantity: "325 g"}, ings[1])
	assert.Equal(t, "Salt", ings[2].Name)
	assert.Nil(t, ings[2].Quantity())

	own := r.OwnIngredients()
	require.Len(t, own, 3)
	assert.Equal(t, []*Quantity{nil}, own[2].Amounts)
}

func TestParse_FullDocument(t *testing.T) {
	r, err := Parse(focaccia, WithID("focaccia"), WithCategory("bread"))
	require.NoError(t, err)

	assert.Equal(t, "focaccia", r.ID)
	assert.Equal(t, "Airy, oily sheet-pan bread.", r.Description)
	assert.Equal(t, "bread", r.Category)
	require.NotNil(t, r.Makes)
	assert.Equal(t, Makes{Quantity: 1, UnitNoun: "tray"}, *r.Makes)
	require.NotNil(t, r.Serves)
	assert.Equal(t, 8, *r.Serves)

	require.Len(t, r.Steps, 2)
	first := r.Steps[0]
	require.Len(t, first.Items, 2)
	xrefs := first.CrossReferences()
	require.Len(t, xrefs, 1)
	assert.Equal(t, CrossReference{
		TargetTitle: "Pizza Dough",
		TargetSlug:  "pizza-dough",
		Multiplier:  2,
		PrepNote:    "rested overnight",
	}, xrefs[0])
	assert.Equal(t, "Stretch the dough into the pan.\n\nDimple with oiled fingers.", first.Instructions)

	assert.Empty(t, r.Steps[1].Items)
	assert.Equal(t, "Bake at 230C for 20 minutes.", r.Steps[1].Instructions)

	assert.Equal(t, "Best eaten the same day.\nKeeps one day wrapped.\n\nFreezes well.", r.Footer)

	n, ok := r.ServingCount()
	assert.True(t, ok)
	assert.Equal(t, 8, n)
}

func TestParse_Deterministic(t *testing.T) {
	a, err := Parse(focaccia)
	require.NoError(t, err)
	b, err := Parse(focaccia)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Parse() not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, a.VersionHash, b.VersionHash)
	assert.Len(t, a.VersionHash, 64)

	c, err := Parse(focaccia + "\nOne more line.")
	require.NoError(t, err)
	assert.NotEqual(t, a.VersionHash, c.VersionHash)
}

func TestParse_Tolerance(t *testing.T) {
	tests := []struct {
		name   string
		source string
		check  func(t *testing.T, r *Recipe)
	}{
		{
			name:   "leading blank lines before title",
			source: "\n\n# Toast\n\n## Toast it\n\n- Bread, 2 slices\n",
			check: func(t *testing.T, r *Recipe) {
				assert.Equal(t, "Toast", r.Title)
			},
		},
		{
			name:   "crlf line endings",
			source: "# Toast\r\n\r\n## Toast it\r\n- Bread, 2 slices\r\n",
			check: func(t *testing.T, r *Recipe) {
				require.Len(t, r.Steps, 1)
				assert.Equal(t, "2 slices", r.Steps[0].Ingredients()[0].RawQuantity)
			},
		},
		{
			name:   "stray prose between front matter and steps is skipped",
			source: "# Toast\n\nCategory: Snacks\n\nstray note\n\n## Toast it\n\n- Bread\n",
			check: func(t *testing.T, r *Recipe) {
				assert.Empty(t, r.Description)
				require.Len(t, r.Steps, 1)
			},
		},
		{
			name:   "step with instructions only",
			source: "# Tea\n\n## Steep\n\nPour water over leaves.\n",
			check: func(t *testing.T, r *Recipe) {
				assert.Empty(t, r.Steps[0].Items)
			},
		},
		{
			name:   "footer leading and trailing blanks dropped",
			source: "# Tea\n\n## Steep\n\nSteep.\n\n---\n\n\nNote.\n\n\n",
			check: func(t *testing.T, r *Recipe) {
				assert.Equal(t, "Note.", r.Footer)
			},
		},
		{
			name:   "front matter keys separated by blanks",
			source: "# Tea\n\nCategory: Drinks\n\nServes: 2\n\n## Steep\n\nSteep.\n",
			check: func(t *testing.T, r *Recipe) {
				assert.Equal(t, "Drinks", r.Category)
				require.NotNil(t, r.Serves)
				assert.Equal(t, 2, *r.Serves)
			},
		},
		{
			name:   "fractional makes",
			source: "# Tea\n\nMakes: 1/2 pot\n\n## Steep\n\nSteep.\n",
			check: func(t *testing.T, r *Recipe) {
				require.NotNil(t, r.Makes)
				assert.InDelta(t, 0.5, r.Makes.Quantity, 1e-9)
				_, ok := r.ServingCount()
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.source)
			require.NoError(t, err)
			tt.check(t, r)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		opts     []Option
		code     cberrors.ErrorCode
		contains string
	}{
		{
			name:     "empty input",
			source:   "",
			code:     cberrors.ErrCodeSyntax,
			contains: "level-one header",
		},
		{
			name:     "missing title",
			source:   "Just prose\n\n## Step\n\n- Flour\n",
			code:     cberrors.ErrCodeSyntax,
			contains: "Line 1: First line must be a level-one header",
		},
		{
			name:     "step header first",
			source:   "\n## Step\n",
			code:     cberrors.ErrCodeSyntax,
			contains: "Line 2:",
		},
		{
			name:     "no steps",
			source:   "# Toast\n\nCategory: Snacks\n",
			code:     cberrors.ErrCodeSyntax,
			contains: "at least one step",
		},
		{
			name:     "empty step",
			source:   "# Toast\n\n## Nothing here\n\n## Toast it\n\n- Bread\n",
			code:     cberrors.ErrCodeSyntax,
			contains: `Step "Nothing here" has no ingredients or instructions`,
		},
		{
			name:     "deprecated cross-reference reports line",
			source:   "# Toast\n\n## Toast it\n\n- 2 @[Bread]\n",
			code:     cberrors.ErrCodeSyntax,
			contains: "Line 5:",
		},
		{
			name:     "duplicate front matter",
			source:   "# Toast\n\nServes: 2\nServes: 3\n\n## Toast it\n\n- Bread\n",
			code:     cberrors.ErrCodeSyntax,
			contains: "Duplicate front matter",
		},
		{
			name:     "missing category when assigned",
			source:   "# Toast\n\n## Toast it\n\n- Bread\n",
			opts:     []Option{WithCategory("snacks")},
			code:     cberrors.ErrCodeSemantic,
			contains: "missing required front matter: Category",
		},
		{
			name:     "category mismatch",
			source:   "# Toast\n\nCategory: Breakfast\n\n## Toast it\n\n- Bread\n",
			opts:     []Option{WithCategory("snacks")},
			code:     cberrors.ErrCodeSemantic,
			contains: `"Breakfast" but is filed under "snacks"`,
		},
		{
			name:     "makes without unit noun",
			source:   "# Toast\n\nMakes: 12\n\n## Toast it\n\n- Bread\n",
			code:     cberrors.ErrCodeSemantic,
			contains: "Makes: 12 pancakes",
		},
		{
			name:     "makes with numeric unit noun",
			source:   "# Toast\n\nMakes: 12 4\n\n## Toast it\n\n- Bread\n",
			code:     cberrors.ErrCodeSemantic,
			contains: "unit noun",
		},
		{
			name:     "makes non-numeric",
			source:   "# Toast\n\nMakes: some toast\n\n## Toast it\n\n- Bread\n",
			code:     cberrors.ErrCodeNumeric,
			contains: "Makes must start with a number",
		},
		{
			name:     "serves non-numeric",
			source:   "# Toast\n\nServes: many\n\n## Toast it\n\n- Bread\n",
			code:     cberrors.ErrCodeNumeric,
			contains: "Serves must be a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.source, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Equal(t, tt.code, cberrors.CodeOf(err))
			assert.True(t, strings.Contains(err.Error(), tt.contains), "error %q should contain %q", err.Error(), tt.contains)
		})
	}
}

func TestParse_CategoryIgnoresCase(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		assigned string
	}{
		{name: "upper declared", declared: "BREAD", assigned: "bread"},
		{name: "title declared", declared: "Bread", assigned: "bread"},
		{name: "upper assigned", declared: "bread", assigned: "BREAD"},
		{name: "mixed", declared: "bReAd", assigned: "BrEaD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "# Toast\n\nCategory: " + tt.declared + "\n\n## Toast it\n\n- Bread\n"
			r, err := Parse(src, WithCategory(tt.assigned))
			require.NoError(t, err)
			assert.Equal(t, tt.assigned, r.Category)
		})
	}

	_, err := Parse("# Toast\n\nCategory: BREADS\n\n## Toast it\n\n- Bread\n", WithCategory("bread"))
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeSemantic, cberrors.CodeOf(err))
}

func TestParse_ItemErrorKeepsCause(t *testing.T) {
	_, err := Parse("# Toast\n\n## Toast it\n\n- @[Bread], 1/0\n")
	require.Error(t, err)
	assert.Equal(t, cberrors.ErrCodeSyntax, cberrors.CodeOf(err))
	assert.True(t, cberrors.IsCode(err, cberrors.ErrCodeNumeric))

	var se *cberrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 5, se.Context["line"])
}

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

package crossref

import (
	"slices"

	"github.com/mchmarny/cookbook/pkg/recipe"
)

// Expand returns the complete ingredient list of the reference target, nested
// references included, with every measured amount scaled by the multiplier.
// An unresolved target yields an empty list.
func Expand(x recipe.CrossReference, lookup Lookup) []recipe.IngredientAmounts {
	return expand(x, lookup, nil)
}

// AllIngredientsWithQuantities returns the recipe's own ingredients with every
// cross-reference expansion merged in, one entry per ingredient name in order
// of first appearance.
func AllIngredientsWithQuantities(r *recipe.Recipe, lookup Lookup) []recipe.IngredientAmounts {
	return collect(r, lookup, nil)
}

func expand(x recipe.CrossReference, lookup Lookup, path []string) []recipe.IngredientAmounts {
	target, ok := lookup.Resolve(x.TargetSlug)
	if !ok || slices.Contains(path, target.ID) {
		return nil
	}

	list := collect(target, lookup, path)
	out := make([]recipe.IngredientAmounts, 0, len(list))
	for _, ia := range list {
		out = append(out, recipe.IngredientAmounts{
			Name:    ia.Name,
			Amounts: recipe.ScaleAmounts(ia.Amounts, x.Multiplier),
		})
	}
	return out
}

func collect(r *recipe.Recipe, lookup Lookup, path []string) []recipe.IngredientAmounts {
	path = append(slices.Clone(path), r.ID)

	acc := &accumulator{amounts: make(map[string][]*recipe.Quantity)}
	for _, ia := range r.OwnIngredients() {
		acc.merge(ia)
	}
	for _, x := range r.CrossReferences() {
		for _, ia := range expand(x, lookup, path) {
			acc.merge(ia)
		}
	}
	return acc.list()
}

// accumulator folds amounts by ingredient name, keeping first-seen order.
type accumulator struct {
	order   []string
	amounts map[string][]*recipe.Quantity
}

func (a *accumulator) merge(ia recipe.IngredientAmounts) {
	existing, seen := a.amounts[ia.Name]
	if !seen {
		a.order = append(a.order, ia.Name)
		a.amounts[ia.Name] = ia.Amounts
		return
	}
	a.amounts[ia.Name] = recipe.MergeAmounts(existing, ia.Amounts)
}

func (a *accumulator) list() []recipe.IngredientAmounts {
	out := make([]recipe.IngredientAmounts, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, recipe.IngredientAmounts{Name: name, Amounts: a.amounts[name]})
	}
	return out
}

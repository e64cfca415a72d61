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

package nutrition

import (
	"github.com/mchmarny/cookbook/pkg/crossref"
	"github.com/mchmarny/cookbook/pkg/recipe"
)

// Result is the nutrition of one recipe. Totals and PerServing always carry
// every key in NutrientKeys.
type Result struct {
	Totals             map[string]float64 `json:"totals" yaml:"totals"`
	ServingCount       *int               `json:"servingCount,omitempty" yaml:"servingCount,omitempty"`
	PerServing         map[string]float64 `json:"perServing,omitempty" yaml:"perServing,omitempty"`
	MissingIngredients []string           `json:"missingIngredients" yaml:"missingIngredients"`
	PartialIngredients []string           `json:"partialIngredients" yaml:"partialIngredients"`
}

// Complete reports whether every ingredient contributed in full.
func (r *Result) Complete() bool {
	return len(r.MissingIngredients) == 0 && len(r.PartialIngredients) == 0
}

// Calculator computes recipe nutrition against a catalog.
type Calculator struct {
	catalog *Catalog
	omit    map[string]bool
}

// Option is a functional option for NewCalculator.
type Option func(*Calculator)

// WithOmit skips the named ingredients (case-insensitive), typically water
// or ingredients with negligible nutrition.
func WithOmit(names ...string) Option {
	return func(c *Calculator) {
		for _, n := range names {
			c.omit[fold(n)] = true
		}
	}
}

// NewCalculator returns a Calculator reading from catalog.
func NewCalculator(catalog *Catalog, opts ...Option) *Calculator {
	c := &Calculator{
		catalog: catalog,
		omit:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate totals the nutrition of r with cross-references expanded through
// lookup. Callers should validate the recipe graph first.
func (c *Calculator) Calculate(r *recipe.Recipe, lookup crossref.Lookup) *Result {
	res := c.Totals(crossref.AllIngredientsWithQuantities(r, lookup))
	if n, ok := r.ServingCount(); ok {
		res.ServingCount = &n
		res.PerServing = make(map[string]float64, len(NutrientKeys))
		for _, k := range NutrientKeys {
			res.PerServing[k] = res.Totals[k] / float64(n)
		}
	}
	return res
}

// Totals accumulates nutrition for an already expanded ingredient list.
// Unknown ingredients are listed as missing. Text amounts and amounts that
// cannot be converted to grams mark the ingredient as partial.
func (c *Calculator) Totals(ingredients []recipe.IngredientAmounts) *Result {
	res := &Result{
		Totals:             make(map[string]float64, len(NutrientKeys)),
		MissingIngredients: []string{},
		PartialIngredients: []string{},
	}
	for _, k := range NutrientKeys {
		res.Totals[k] = 0
	}

	for _, ia := range ingredients {
		if c.omit[fold(ia.Name)] {
			continue
		}
		entry, ok := c.catalog.Lookup(ia.Name)
		if !ok {
			res.MissingIngredients = append(res.MissingIngredients, ia.Name)
			unresolvedIngredients.WithLabelValues(reasonMissing).Inc()
			continue
		}

		partial := false
		for _, q := range ia.Amounts {
			if q == nil {
				continue
			}
			if !q.Numeric() {
				partial = true
				continue
			}
			grams, ok := ToGrams(q.Value, q.Unit, entry)
			if !ok {
				partial = true
				continue
			}
			for _, k := range NutrientKeys {
				res.Totals[k] += entry.PerGram(k) * grams
			}
		}
		if partial {
			res.PartialIngredients = append(res.PartialIngredients, ia.Name)
			unresolvedIngredients.WithLabelValues(reasonPartial).Inc()
		}
	}

	return res
}

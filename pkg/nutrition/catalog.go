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
	"fmt"
	"slices"

	"github.com/mchmarny/cookbook/pkg/defaults"
	"github.com/mchmarny/cookbook/pkg/inflector"
	"golang.org/x/text/cases"
)

// NutrientKeys are the nutrients tracked in every result, in display order.
var NutrientKeys = []string{
	"calories",
	"fat",
	"saturated_fat",
	"trans_fat",
	"cholesterol",
	"sodium",
	"carbs",
	"fiber",
	"total_sugars",
	"added_sugars",
	"protein",
}

// Density records one known volume to weight correspondence, e.g. 1 tbsp = 14 g.
type Density struct {
	Volume float64 `json:"volume" yaml:"volume"`
	Unit   string  `json:"unit" yaml:"unit"`
	Grams  float64 `json:"grams" yaml:"grams"`
}

// RawEntry is a catalog entry as authored. Nutrients holds basis_grams plus
// the nutrient values for that many grams.
type RawEntry struct {
	Nutrients map[string]float64 `json:"nutrients" yaml:"nutrients"`
	Portions  map[string]float64 `json:"portions,omitempty" yaml:"portions,omitempty"`
	Density   *Density           `json:"density,omitempty" yaml:"density,omitempty"`
}

// Entry is a validated catalog entry. Portion keys are canonical units.
type Entry struct {
	Name       string
	BasisGrams float64
	Nutrients  map[string]float64
	Portions   map[string]float64
	Density    *Density
}

// PerGram returns the amount of nutrient in one gram of the ingredient.
func (e *Entry) PerGram(nutrient string) float64 {
	if e.BasisGrams <= 0 {
		return 0
	}
	return e.Nutrients[nutrient] / e.BasisGrams
}

// Warning describes a catalog problem that did not stop loading.
type Warning struct {
	Ingredient string `json:"ingredient" yaml:"ingredient"`
	Message    string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Ingredient, w.Message)
}

// Catalog is a read-only set of entries looked up by ingredient name.
type Catalog struct {
	entries map[string]*Entry
	folded  map[string]*Entry
}

// NewCatalog validates raw entries. Entries without a nutrients block or a
// positive basis_grams are dropped with a warning. Entries are processed in
// name order so the result and its warnings are deterministic.
func NewCatalog(raw map[string]RawEntry) (*Catalog, []Warning) {
	c := &Catalog{
		entries: make(map[string]*Entry, len(raw)),
		folded:  make(map[string]*Entry, len(raw)),
	}
	var warnings []Warning

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		re := raw[name]
		if re.Nutrients == nil {
			warnings = append(warnings, Warning{Ingredient: name, Message: "missing nutrients block"})
			continue
		}
		basis := re.Nutrients[defaults.CatalogBasisKey]
		if basis <= 0 {
			warnings = append(warnings, Warning{Ingredient: name,
				Message: fmt.Sprintf("%s must be positive, got %g", defaults.CatalogBasisKey, basis)})
			continue
		}

		portions, pw := canonicalPortions(name, re.Portions)
		warnings = append(warnings, pw...)

		e := &Entry{
			Name:       name,
			BasisGrams: basis,
			Nutrients:  re.Nutrients,
			Portions:   portions,
			Density:    re.Density,
		}
		c.entries[name] = e

		key := fold(name)
		if _, taken := c.folded[key]; taken {
			warnings = append(warnings, Warning{Ingredient: name,
				Message: "differs only in case from an earlier entry; case-insensitive lookups use the earlier one"})
			continue
		}
		c.folded[key] = e
	}

	return c, warnings
}

// canonicalPortions normalizes portion keys once so lookups need a single
// map access. On collision the first key in sorted order wins.
func canonicalPortions(name string, portions map[string]float64) (map[string]float64, []Warning) {
	keys := make([]string, 0, len(portions))
	for k := range portions {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var warnings []Warning
	out := make(map[string]float64, len(portions))
	for _, k := range keys {
		ck := k
		if k != defaults.CatalogUnitless {
			ck = inflector.NormalizeUnit(k)
		}
		if _, dup := out[ck]; dup {
			warnings = append(warnings, Warning{Ingredient: name,
				Message: fmt.Sprintf("portion %q duplicates %q; ignored", k, ck)})
			continue
		}
		out[ck] = portions[k]
	}
	return out, warnings
}

// Lookup finds an entry by exact name, then case-insensitively, then by the
// alternate singular or plural form of the name.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	if e, ok := c.lookup(name); ok {
		return e, true
	}
	for _, v := range inflector.IngredientVariants(name) {
		if e, ok := c.lookup(v); ok {
			return e, true
		}
	}
	return nil, false
}

func (c *Catalog) lookup(name string) (*Entry, bool) {
	if e, ok := c.entries[name]; ok {
		return e, true
	}
	e, ok := c.folded[fold(name)]
	return e, ok
}

// Len returns the number of valid entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Names returns the valid entry names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for n := range c.entries {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// fold builds a new Caser per call since Casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

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

package recipe

import (
	"github.com/mchmarny/cookbook/pkg/inflector"
	"github.com/mchmarny/cookbook/pkg/recipe/numeric"
)

// Quantity is one measured amount. An empty Unit is a bare count ("3 eggs").
// Text holds an amount written without a leading number ("a pinch"); Value
// and Unit are then unset and the amount can be shown but not converted.
type Quantity struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Text  string  `json:"text,omitempty" yaml:"text,omitempty"`
}

// Numeric reports whether q carries a numeric value and unit.
func (q *Quantity) Numeric() bool {
	return q != nil && q.Text == ""
}

// Ingredient is a plain ingredient line such as "Flour, 500 g: sifted".
// RawQuantity and PrepNote are empty when absent.
type Ingredient struct {
	Name        string `json:"name" yaml:"name"`
	RawQuantity string `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	PrepNote    string `json:"prepNote,omitempty" yaml:"prepNote,omitempty"`
}

// QuantityValue returns the numeric amount (high end of a range, fractions
// and mixed numbers resolved). The boolean is false when the ingredient is
// unquantified or its quantity does not start with a number.
func (i Ingredient) QuantityValue() (float64, bool) {
	if i.RawQuantity == "" {
		return 0, false
	}
	return numeric.QuantityValue(i.RawQuantity)
}

// QuantityUnit returns the normalized unit, or "" for a bare count or a
// quantity without a leading number.
func (i Ingredient) QuantityUnit() string {
	_, unit, ok := numeric.SplitQuantity(i.RawQuantity)
	if !ok {
		return ""
	}
	return inflector.NormalizeUnit(unit)
}

// Quantity returns the parsed amount. It is nil when the ingredient was
// listed without a measurement, and a Text quantity when the measurement
// has no leading number.
func (i Ingredient) Quantity() *Quantity {
	if i.RawQuantity == "" {
		return nil
	}
	v, unit, ok := numeric.SplitQuantity(i.RawQuantity)
	if !ok {
		return &Quantity{Text: i.RawQuantity}
	}
	return &Quantity{Value: v, Unit: inflector.NormalizeUnit(unit)}
}

// CrossReference includes another recipe, scaled by Multiplier.
type CrossReference struct {
	TargetTitle string  `json:"targetTitle" yaml:"targetTitle"`
	TargetSlug  string  `json:"targetSlug" yaml:"targetSlug"`
	Multiplier  float64 `json:"multiplier" yaml:"multiplier"`
	PrepNote    string  `json:"prepNote,omitempty" yaml:"prepNote,omitempty"`
}

// ItemKind discriminates the two kinds of ingredient-list entries.
type ItemKind string

const (
	ItemIngredient     ItemKind = "ingredient"
	ItemCrossReference ItemKind = "crossReference"
)

// Item is one ingredient-list entry. Exactly one of Ingredient or
// CrossReference is set, matching Kind.
type Item struct {
	Kind           ItemKind        `json:"kind" yaml:"kind"`
	Ingredient     *Ingredient     `json:"ingredient,omitempty" yaml:"ingredient,omitempty"`
	CrossReference *CrossReference `json:"crossReference,omitempty" yaml:"crossReference,omitempty"`
}

// IngredientItem wraps an ingredient as an Item.
func IngredientItem(i Ingredient) Item {
	return Item{Kind: ItemIngredient, Ingredient: &i}
}

// CrossReferenceItem wraps a cross-reference as an Item.
func CrossReferenceItem(x CrossReference) Item {
	return Item{Kind: ItemCrossReference, CrossReference: &x}
}

// Step is one "## " section of a recipe.
type Step struct {
	TLDR         string `json:"tldr,omitempty" yaml:"tldr,omitempty"`
	Items        []Item `json:"items,omitempty" yaml:"items,omitempty"`
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// Ingredients returns the plain ingredients of the step in order.
func (s Step) Ingredients() []Ingredient {
	var out []Ingredient
	for _, it := range s.Items {
		if it.Kind == ItemIngredient && it.Ingredient != nil {
			out = append(out, *it.Ingredient)
		}
	}
	return out
}

// CrossReferences returns the cross-references of the step in order.
func (s Step) CrossReferences() []CrossReference {
	var out []CrossReference
	for _, it := range s.Items {
		if it.Kind == ItemCrossReference && it.CrossReference != nil {
			out = append(out, *it.CrossReference)
		}
	}
	return out
}

// Makes is the parsed "Makes:" front matter, e.g. 12 rolls.
type Makes struct {
	Quantity float64 `json:"quantity" yaml:"quantity"`
	UnitNoun string  `json:"unitNoun" yaml:"unitNoun"`
}

// Recipe is a parsed recipe document. It is never mutated after Parse returns.
type Recipe struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string `json:"category" yaml:"category"`
	Makes       *Makes `json:"makes,omitempty" yaml:"makes,omitempty"`
	Serves      *int   `json:"serves,omitempty" yaml:"serves,omitempty"`
	Steps       []Step `json:"steps" yaml:"steps"`
	Footer      string `json:"footer,omitempty" yaml:"footer,omitempty"`
	VersionHash string `json:"versionHash" yaml:"versionHash"`
}

// Ingredients returns every plain ingredient across all steps.
func (r *Recipe) Ingredients() []Ingredient {
	var out []Ingredient
	for _, s := range r.Steps {
		out = append(out, s.Ingredients()...)
	}
	return out
}

// CrossReferences returns every cross-reference across all steps.
func (r *Recipe) CrossReferences() []CrossReference {
	var out []CrossReference
	for _, s := range r.Steps {
		out = append(out, s.CrossReferences()...)
	}
	return out
}

// OwnIngredients groups the recipe's plain ingredients by name, in order of
// first appearance, each with its aggregated amounts. Cross-references are not
// expanded.
func (r *Recipe) OwnIngredients() []IngredientAmounts {
	var order []string
	groups := make(map[string][]Ingredient)
	for _, ing := range r.Ingredients() {
		if _, seen := groups[ing.Name]; !seen {
			order = append(order, ing.Name)
		}
		groups[ing.Name] = append(groups[ing.Name], ing)
	}

	out := make([]IngredientAmounts, 0, len(order))
	for _, name := range order {
		out = append(out, IngredientAmounts{Name: name, Amounts: AggregateAmounts(groups[name])})
	}
	return out
}

// ServingCount returns Serves when set, otherwise the whole part of the Makes
// quantity. Non-positive counts are reported as absent.
func (r *Recipe) ServingCount() (int, bool) {
	if r.Serves != nil && *r.Serves > 0 {
		return *r.Serves, true
	}
	if r.Makes != nil {
		if n := int(r.Makes.Quantity); n > 0 {
			return n, true
		}
	}
	return 0, false
}

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
	stderrors "errors"
	"fmt"
	"slices"
	"strings"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/recipe"
)

// ValidateReferences fails on the first cross-reference whose target slug is
// not in lookup.
func ValidateReferences(r *recipe.Recipe, lookup Lookup) error {
	for _, x := range r.CrossReferences() {
		if _, ok := lookup.Resolve(x.TargetSlug); !ok {
			return cberrors.NewWithContext(cberrors.ErrCodeGraph,
				fmt.Sprintf("Recipe %q references unknown recipe %q (slug %q)", r.Title, x.TargetTitle, x.TargetSlug),
				map[string]any{"recipe": r.ID, "target": x.TargetTitle, "slug": x.TargetSlug})
		}
	}
	return nil
}

// ValidateSlug fails when the slugified title differs from the recipe id.
func ValidateSlug(r *recipe.Recipe) error {
	if slug := recipe.Slugify(r.Title); slug != r.ID {
		return cberrors.NewWithContext(cberrors.ErrCodeSemantic,
			fmt.Sprintf("Recipe title %q slugifies to %q but its id is %q", r.Title, slug, r.ID),
			map[string]any{"recipe": r.ID, "title": r.Title, "slug": slug})
	}
	return nil
}

// DetectCycles walks references depth first from r and fails if any recipe
// is reached again on the same path. Unresolved targets are skipped.
func DetectCycles(r *recipe.Recipe, lookup Lookup) error {
	d := &cycleDetector{lookup: lookup, done: make(map[string]bool)}
	return d.visit(r, nil)
}

type cycleDetector struct {
	lookup Lookup
	// recipes already fully explored without finding a cycle
	done map[string]bool
}

func (d *cycleDetector) visit(r *recipe.Recipe, path []string) error {
	if i := slices.Index(path, r.ID); i >= 0 {
		cycle := append(slices.Clone(path[i:]), r.ID)
		return cberrors.NewWithContext(cberrors.ErrCodeGraph,
			fmt.Sprintf("Circular cross-reference: %s", strings.Join(cycle, " -> ")),
			map[string]any{"cycle": cycle})
	}
	if d.done[r.ID] {
		return nil
	}

	path = append(path, r.ID)
	for _, x := range r.CrossReferences() {
		target, ok := d.lookup.Resolve(x.TargetSlug)
		if !ok {
			continue
		}
		if err := d.visit(target, path); err != nil {
			return err
		}
	}
	d.done[r.ID] = true
	return nil
}

// Validate runs the unresolved, slug and cycle checks on one recipe and
// returns every failure joined.
func Validate(r *recipe.Recipe, lookup Lookup) error {
	return stderrors.Join(
		ValidateReferences(r, lookup),
		ValidateSlug(r),
		DetectCycles(r, lookup),
	)
}

// ValidateAll validates every recipe in m in slug order and returns every
// failure joined, or nil.
func ValidateAll(m Map) error {
	var errs []error
	for _, slug := range m.Slugs() {
		if err := Validate(m[slug], m); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

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
	"fmt"
	"regexp"
	"strings"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/recipe/numeric"
)

var (
	// "- 2 @[Pizza Dough]" was the old way to scale a reference.
	deprecatedReference = regexp.MustCompile(`^\d+(/\d+)?(\.\d+)?x?\s*@\[`)

	// @[Title] with optional trailing '.', ", multiplier" and ": prep note".
	crossReference = regexp.MustCompile(`^@\[([^\]]+)\]\.?(?:\s*,\s*([^:]*?))?\s*(?::\s*(.*))?$`)
)

// ParseItem parses the text of one ingredient-list line (after "- ") into
// either a plain ingredient or a cross-reference.
func ParseItem(text string) (Item, error) {
	text = strings.TrimSpace(text)

	if deprecatedReference.MatchString(text) {
		return Item{}, cberrors.NewWithContext(cberrors.ErrCodeSyntax,
			`Quantity before a cross-reference is no longer supported; put the multiplier after the reference, e.g. "- @[Pizza Dough], 2"`,
			map[string]any{"text": text})
	}

	if m := crossReference.FindStringSubmatch(text); m != nil {
		x, err := parseCrossReference(m[1], m[2], m[3])
		if err != nil {
			return Item{}, err
		}
		return CrossReferenceItem(x), nil
	}

	if strings.HasPrefix(text, "@[") {
		return Item{}, cberrors.NewWithContext(cberrors.ErrCodeSyntax,
			fmt.Sprintf(`Malformed cross-reference %q; expected "@[Title], multiplier: note"`, text),
			map[string]any{"text": text})
	}

	ing, err := parseIngredient(text)
	if err != nil {
		return Item{}, err
	}
	return IngredientItem(ing), nil
}

func parseCrossReference(title, multiplier, note string) (CrossReference, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return CrossReference{}, cberrors.New(cberrors.ErrCodeSyntax, "Cross-reference title cannot be blank")
	}

	x := CrossReference{
		TargetTitle: title,
		TargetSlug:  Slugify(title),
		Multiplier:  1.0,
		PrepNote:    strings.TrimSpace(note),
	}

	multiplier = strings.TrimSpace(multiplier)
	if multiplier == "" {
		return x, nil
	}
	v, err := numeric.Parse(strings.TrimSpace(strings.TrimSuffix(multiplier, "x")))
	if err != nil {
		return CrossReference{}, cberrors.WrapWithContext(cberrors.ErrCodeSyntax,
			fmt.Sprintf("Invalid multiplier %q for cross-reference to %q", multiplier, title), err,
			map[string]any{"multiplier": multiplier})
	}
	if v <= 0 {
		return CrossReference{}, cberrors.NewWithContext(cberrors.ErrCodeSyntax,
			fmt.Sprintf("Multiplier for cross-reference to %q must be positive, got %q", title, multiplier),
			map[string]any{"multiplier": multiplier})
	}
	x.Multiplier = v
	return x, nil
}

// parseIngredient splits "Name, quantity: prep note".
func parseIngredient(text string) (Ingredient, error) {
	left, note, _ := strings.Cut(text, ":")
	name, quantity, _ := strings.Cut(left, ",")

	ing := Ingredient{
		Name:        strings.TrimSpace(name),
		RawQuantity: strings.TrimSpace(quantity),
		PrepNote:    strings.TrimSpace(note),
	}
	if ing.Name == "" {
		return Ingredient{}, cberrors.NewWithContext(cberrors.ErrCodeSyntax,
			"Ingredient name cannot be blank", map[string]any{"text": text})
	}
	return ing, nil
}

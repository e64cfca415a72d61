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

// Package inflector holds the English word rules used for ingredient names
// and units: singular/plural forms, unit normalization, display forms and
// catalog-name variants. All functions are pure.
package inflector

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnitlessKey is the portion key for a bare count ("3 eggs").
const UnitlessKey = "~unitless"

var (
	irregularPlurals = map[string]string{
		"cookie": "cookies",
		"leaf":   "leaves",
		"loaf":   "loaves",
		"taco":   "tacos",
	}

	irregularSingulars = invert(irregularPlurals)

	// mass nouns never change form
	uncountable = map[string]bool{
		"asparagus": true,
		"broth":     true,
		"butter":    true,
		"cinnamon":  true,
		"couscous":  true,
		"cream":     true,
		"flour":     true,
		"garlic":    true,
		"honey":     true,
		"hummus":    true,
		"juice":     true,
		"milk":      true,
		"molasses":  true,
		"oil":       true,
		"pepper":    true,
		"rice":      true,
		"salt":      true,
		"sugar":     true,
		"vinegar":   true,
		"water":     true,
		"yeast":     true,
	}

	unitAliases = map[string]string{
		"small slice":  "slice",
		"small slices": "slice",
	}

	abbreviations = map[string]string{
		"g":           "g",
		"gram":        "g",
		"grams":       "g",
		"kg":          "kg",
		"kgs":         "kg",
		"kilogram":    "kg",
		"kilograms":   "kg",
		"oz":          "oz",
		"ounce":       "oz",
		"ounces":      "oz",
		"lb":          "lb",
		"lbs":         "lb",
		"pound":       "lb",
		"pounds":      "lb",
		"ml":          "ml",
		"milliliter":  "ml",
		"milliliters": "ml",
		"millilitre":  "ml",
		"millilitres": "ml",
		"l":           "l",
		"liter":       "l",
		"liters":      "l",
		"litre":       "l",
		"litres":      "l",
		"tbsp":        "tbsp",
		"tbsps":       "tbsp",
		"tablespoon":  "tbsp",
		"tablespoons": "tbsp",
		"tsp":         "tsp",
		"tsps":        "tsp",
		"teaspoon":    "tsp",
		"teaspoons":   "tsp",
	}

	abbreviated = values(abbreviations)

	// a single s or z before "es" is left to the plain "s" rule so that
	// "slices" and "sauces" keep their e; "buses" becomes "buse"
	sibilantPluralSuffix = regexp.MustCompile(`(ss|x|zz|ch|sh)es$`)
	sibilantSuffix       = regexp.MustCompile(`(s|x|z|ch|sh)$`)
	qualifierSuffix      = regexp.MustCompile(`^(.*?)(\s*\([^)]*\))?$`)
)

// Singular returns the singular form of word. Blank input and mass nouns
// pass through unchanged; a leading capital is preserved.
func Singular(word string) string {
	if strings.TrimSpace(word) == "" {
		return word
	}
	lower := strings.ToLower(word)
	if uncountable[lower] {
		return word
	}
	if s, ok := irregularSingulars[lower]; ok {
		return matchCase(word, s)
	}

	var out string
	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 3:
		out = lower[:len(lower)-3] + "y"
	case sibilantPluralSuffix.MatchString(lower):
		out = lower[:len(lower)-2]
	case strings.HasSuffix(lower, "oes"):
		out = lower[:len(lower)-2]
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		out = lower[:len(lower)-1]
	default:
		return word
	}
	return matchCase(word, out)
}

// Plural returns the plural form of word. Blank input and mass nouns pass
// through unchanged; a leading capital is preserved.
func Plural(word string) string {
	if strings.TrimSpace(word) == "" {
		return word
	}
	lower := strings.ToLower(word)
	if uncountable[lower] {
		return word
	}
	if p, ok := irregularPlurals[lower]; ok {
		return matchCase(word, p)
	}

	var out string
	switch {
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(lower[len(lower)-2]):
		out = lower[:len(lower)-1] + "ies"
	case sibilantSuffix.MatchString(lower), strings.HasSuffix(lower, "o"):
		out = lower + "es"
	default:
		out = lower + "s"
	}
	return matchCase(word, out)
}

// NormalizeUnit maps a raw unit ("Tablespoons.", "small slices", "cups") to
// its canonical form ("tbsp", "slice", "cup"). Abbreviations are fixed points.
func NormalizeUnit(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, ".")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	if alias, ok := unitAliases[s]; ok {
		return alias
	}
	if abbr, ok := abbreviations[s]; ok {
		return abbr
	}
	return Singular(s)
}

// IsAbbreviated reports whether unit is one of the abbreviated canonical units.
func IsAbbreviated(unit string) bool {
	return abbreviated[unit]
}

// UnitDisplay returns the unit as it should be printed next to count.
// Abbreviations never pluralize; full words pluralize unless count is 1.
func UnitDisplay(unit string, count float64) string {
	if unit == "" || abbreviated[unit] || count == 1 {
		return unit
	}
	return Plural(unit)
}

// IngredientVariants returns the alternate singular/plural form of a catalog
// ingredient name so lookups match either "Egg" or "Eggs". Only the last word
// changes and a trailing parenthetical qualifier is kept:
// "Tomato (fresh)" yields "Tomatoes (fresh)". The result never contains the
// input itself and is empty when no distinct form exists.
func IngredientVariants(name string) []string {
	m := qualifierSuffix.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return nil
	}
	base, qualifier := strings.TrimSpace(m[1]), m[2]
	if base == "" {
		return nil
	}

	prefix, last := "", base
	if i := strings.LastIndex(base, " "); i >= 0 {
		prefix, last = base[:i+1], base[i+1:]
	}
	if uncountable[strings.ToLower(last)] {
		return nil
	}

	var alt string
	if strings.HasSuffix(strings.ToLower(last), "s") {
		if s := Singular(last); s != last {
			alt = s
		} else {
			alt = Plural(last)
		}
	} else {
		alt = Plural(last)
	}
	if alt == last {
		return nil
	}
	return []string{prefix + alt + qualifier}
}

func matchCase(original, word string) string {
	first, _ := utf8.DecodeRuneInString(original)
	if !unicode.IsUpper(first) {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func values(m map[string]string) map[string]bool {
	out := make(map[string]bool, len(m))
	for _, v := range m {
		out[v] = true
	}
	return out
}

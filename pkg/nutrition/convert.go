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
	"strings"

	"github.com/mchmarny/cookbook/pkg/defaults"
	"github.com/mchmarny/cookbook/pkg/inflector"
)

var (
	// grams per unit
	weightGrams = map[string]float64{
		"g":  1,
		"oz": 28.3495,
		"lb": 453.592,
		"kg": 1000,
	}

	// milliliters per unit
	volumeMilliliters = map[string]float64{
		"cup":  236.588,
		"tbsp": 14.787,
		"tsp":  4.929,
		"ml":   1,
		"l":    1000,
	}
)

// ToGrams converts value of unit to grams for entry. An empty unit is a bare
// count. Strategies are tried in order: unitless portion, weight table, named
// portion, then density for volumes. The boolean is false when none applies.
func ToGrams(value float64, unit string, entry *Entry) (float64, bool) {
	if entry == nil {
		return 0, false
	}

	if strings.TrimSpace(unit) == "" {
		if g, ok := entry.Portions[defaults.CatalogUnitless]; ok {
			return value * g, true
		}
		return 0, false
	}

	if f, ok := tableFactor(weightGrams, unit); ok {
		return value * f, true
	}

	if g, ok := portion(entry, unit); ok {
		return value * g, true
	}

	if ml, ok := tableFactor(volumeMilliliters, unit); ok {
		if density, ok := gramsPerMilliliter(entry.Density); ok {
			return value * ml * density, true
		}
	}

	return 0, false
}

// Resolvable reports whether ToGrams succeeds for the same arguments.
func Resolvable(value float64, unit string, entry *Entry) bool {
	_, ok := ToGrams(value, unit, entry)
	return ok
}

// tableFactor matches unit case-insensitively, then in normalized form.
func tableFactor(table map[string]float64, unit string) (float64, bool) {
	if f, ok := table[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return f, true
	}
	f, ok := table[inflector.NormalizeUnit(unit)]
	return f, ok
}

func portion(entry *Entry, unit string) (float64, bool) {
	if g, ok := entry.Portions[unit]; ok {
		return g, true
	}
	g, ok := entry.Portions[inflector.NormalizeUnit(unit)]
	return g, ok
}

func gramsPerMilliliter(d *Density) (float64, bool) {
	if d == nil {
		return 0, false
	}
	f, ok := tableFactor(volumeMilliliters, d.Unit)
	if !ok {
		return 0, false
	}
	ml := d.Volume * f
	if ml <= 0 {
		return 0, false
	}
	return d.Grams / ml, true
}

// Package nutrition computes recipe nutrition from an ingredient catalog.
//
// A catalog maps ingredient names to nutrient values for basis_grams grams,
// optional named portions ("stick", "slice", or "~unitless" for a bare
// count) and an optional density used to weigh volumes:
//
//	Eggs:
//	  nutrients:
//	    basis_grams: 50
//	    calories: 71.5
//	    protein: 6.3
//	  portions:
//	    "~unitless": 50
//	Olive oil:
//	  nutrients:
//	    basis_grams: 14
//	    calories: 119
//	    fat: 13.5
//	  density:
//	    volume: 1
//	    unit: tbsp
//	    grams: 14
//
// Amounts are converted to grams by ToGrams, trying in order:
//  1. a bare count through the "~unitless" portion
//  2. a weight unit (g, oz, lb, kg)
//  3. a named portion
//  4. a volume unit (cup, tbsp, tsp, ml, l) through the density
//
// Calculation never fails. Ingredients missing from the catalog and amounts
// that cannot be weighed are reported in the Result so callers can decide
// whether partial data is acceptable.
package nutrition

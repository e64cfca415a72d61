// Package crossref resolves cross-references between recipes.
//
// A cross-reference ("- @[Pizza Dough], 2") pulls the complete ingredient list
// of another recipe into the referencing one, scaled by a multiplier. Targets
// are found by slug through a read-only Lookup, usually a Map built from
// every recipe in a library.
//
// Validation:
//   - ValidateReferences - every reference resolves
//   - ValidateSlug - the recipe id matches its slugified title
//   - DetectCycles - no recipe reaches itself through references
//   - ValidateAll - all of the above for every recipe in a Map
//
// Expansion:
//
//	m := crossref.NewMap(dough, focaccia)
//	if err := crossref.ValidateAll(m); err != nil {
//	    return err
//	}
//	list := crossref.AllIngredientsWithQuantities(focaccia, m)
//
// Run the validators before expanding. Expansion itself never fails: an
// unresolved target contributes nothing and a reference back onto a recipe
// already being expanded is skipped.
package crossref

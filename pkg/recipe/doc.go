// Package recipe parses recipe source text into a structured Recipe and
// aggregates ingredient quantities.
//
// # Source Format
//
//	# Pizza Dough
//
//	A plain Neapolitan-style dough.
//
//	Category: Bread
//	Makes: 4 balls
//
//	## Mix (make dough)
//
//	- Flour, 500 g
//	- Water, 325 g: lukewarm
//	- Salt
//	- @[Sourdough Starter], 0.5
//
//	Knead until smooth.
//
//	---
//
//	Footer notes.
//
// The first non-blank line is the title. An optional single prose line is the
// description, followed by front matter (Category, Makes, Serves). Each "## "
// header starts a step holding ingredient lines and prose instructions. A
// "---" divider starts the footer.
//
// Ingredient lines are "Name, quantity: prep note". Lines starting with "@["
// are cross-references to other recipes by title, with an optional
// multiplier and prep note.
//
// # Usage
//
//	r, err := recipe.Parse(src, recipe.WithID("pizza-dough"), recipe.WithCategory("Bread"))
//	if err != nil {
//	    return err
//	}
//	for _, ing := range r.OwnIngredients() {
//	    fmt.Println(ing.Name, ing.Amounts)
//	}
//
// # Errors
//
// Parse fails fast with a *errors.StructuredError. Malformed text is
// ErrCodeSyntax and carries the line number, front matter rule violations are
// ErrCodeSemantic, and bad numbers are ErrCodeNumeric.
//
// # Aggregation
//
// AggregateAmounts and MergeAmounts sum quantities per normalized unit. An
// ingredient listed without a measurement contributes a single nil entry,
// which survives every merge and scale.
//
// Recipes are immutable after Parse and safe to share across goroutines.
package recipe

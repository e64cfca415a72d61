// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Recipe failures are classified by code: SYNTAX for malformed text, SEMANTIC
// for front matter and naming rules, GRAPH for cross-reference problems and
// NUMERIC for bad number literals.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeSyntax,
//	    "Line 1: First line must be a level-one header (# Title)",
//	    map[string]any{
//	        "line": 1,
//	        "text": "Pizza Dough",
//	    },
//	)
package errors

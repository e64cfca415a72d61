// Package store loads recipe source files from disk.
//
// Recipes live one directory below the root; the directory name is the
// category and the file name (without .md) is the recipe id:
//
//	recipes/
//	  bread/
//	    pizza-dough.md
//	    focaccia.md
//	  sauces/
//	    pesto.md
//
// Files are parsed in parallel. One bad file never stops the load: its error
// is recorded in Library.Errors and the remaining recipes are still returned.
//
//	s, err := store.New("recipes", store.WithConcurrency(4))
//	if err != nil {
//	    return err
//	}
//	lib, err := s.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	if err := crossref.ValidateAll(lib.Recipes); err != nil {
//	    return err
//	}
//
// Parsed recipes are cached by content hash, id and category, so calling
// Load again only parses files whose text changed.
package store

package crossref

import (
	"slices"

	"github.com/mchmarny/cookbook/pkg/recipe"
)

// Lookup resolves a recipe slug to a parsed recipe.
type Lookup interface {
	Resolve(slug string) (*recipe.Recipe, bool)
}

// Map is a slug to recipe Lookup. It is treated as read-only.
type Map map[string]*recipe.Recipe

// NewMap indexes recipes by their ID. Later recipes with the same ID replace
// earlier ones.
func NewMap(recipes ...*recipe.Recipe) Map {
	m := make(Map, len(recipes))
	for _, r := range recipes {
		if r != nil {
			m[r.ID] = r
		}
	}
	return m
}

// Resolve implements Lookup.
func (m Map) Resolve(slug string) (*recipe.Recipe, bool) {
	r, ok := m[slug]
	return r, ok && r != nil
}

// Slugs returns the recipe slugs in sorted order.
func (m Map) Slugs() []string {
	slugs := make([]string, 0, len(m))
	for s := range m {
		slugs = append(slugs, s)
	}
	slices.Sort(slugs)
	return slugs
}

package cli

import (
	"strconv"
	"strings"

	"github.com/mchmarny/cookbook/pkg/header"
	"github.com/mchmarny/cookbook/pkg/nutrition"
	"github.com/mchmarny/cookbook/pkg/recipe"
)

// RecipeDocument is the output of the parse command.
type RecipeDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Source string         `json:"source" yaml:"source"`
	Recipe *recipe.Recipe `json:"recipe" yaml:"recipe"`
}

// IngredientListDocument is the output of the ingredients command.
type IngredientListDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipe      string                     `json:"recipe" yaml:"recipe"`
	Ingredients []recipe.IngredientAmounts `json:"ingredients" yaml:"ingredients"`
}

// TableHeader implements serializer.Tabular.
func (d *IngredientListDocument) TableHeader() []string {
	return []string{"INGREDIENT", "AMOUNT"}
}

// TableRows implements serializer.Tabular.
func (d *IngredientListDocument) TableRows() [][]string {
	rows := make([][]string, 0, len(d.Ingredients))
	for _, ia := range d.Ingredients {
		rows = append(rows, []string{ia.Name, formatAmounts(ia.Amounts)})
	}
	return rows
}

// formatAmounts renders "500 g + 2 cups", with "some" for an unmeasured entry.
func formatAmounts(amounts []*recipe.Quantity) string {
	parts := make([]string, 0, len(amounts))
	for _, q := range amounts {
		if q == nil {
			parts = append(parts, "some")
			continue
		}
		parts = append(parts, recipe.FormatQuantity(q))
	}
	return strings.Join(parts, " + ")
}

// NutritionDocument is the output of the nutrition command.
type NutritionDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipe    string            `json:"recipe" yaml:"recipe"`
	Complete  bool              `json:"complete" yaml:"complete"`
	Nutrition *nutrition.Result `json:"nutrition" yaml:"nutrition"`
}

// TableHeader implements serializer.Tabular.
func (d *NutritionDocument) TableHeader() []string {
	return []string{"NUTRIENT", "TOTAL", "PER SERVING"}
}

// TableRows implements serializer.Tabular. Missing and partial ingredients
// follow the nutrient rows.
func (d *NutritionDocument) TableRows() [][]string {
	res := d.Nutrition
	rows := make([][]string, 0, len(nutrition.NutrientKeys)+2)
	for _, k := range nutrition.NutrientKeys {
		per := "-"
		if res.PerServing != nil {
			per = formatFloat(res.PerServing[k])
		}
		rows = append(rows, []string{k, formatFloat(res.Totals[k]), per})
	}
	if len(res.MissingIngredients) > 0 {
		rows = append(rows, []string{"(missing)", strings.Join(res.MissingIngredients, ", "), ""})
	}
	if len(res.PartialIngredients) > 0 {
		rows = append(rows, []string{"(partial)", strings.Join(res.PartialIngredients, ", "), ""})
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

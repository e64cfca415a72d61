package recipe

import (
	"math"
	"strconv"

	"github.com/mchmarny/cookbook/pkg/inflector"
)

// IngredientAmounts is one ingredient name with its aggregated amounts.
// A nil entry in Amounts means the ingredient was listed at least once
// without a measurement. Text amounts are kept once each, unsummed.
type IngredientAmounts struct {
	Name    string      `json:"name" yaml:"name"`
	Amounts []*Quantity `json:"amounts" yaml:"amounts"`
}

// AggregateAmounts sums the quantities of same-named ingredients unit by unit.
// If any ingredient was unquantified a single nil entry is appended. The
// result is never empty: with nothing measurable it is [nil].
func AggregateAmounts(ingredients []Ingredient) []*Quantity {
	amounts := make([]*Quantity, 0, len(ingredients))
	for _, ing := range ingredients {
		amounts = append(amounts, ing.Quantity())
	}
	return combine(amounts)
}

// MergeAmounts folds two aggregated amount lists together with the same
// summing rules as AggregateAmounts.
func MergeAmounts(existing, incoming []*Quantity) []*Quantity {
	all := make([]*Quantity, 0, len(existing)+len(incoming))
	all = append(all, existing...)
	all = append(all, incoming...)
	return combine(all)
}

// ScaleAmounts multiplies every numeric amount by factor. Nil and Text
// entries are kept as they are.
func ScaleAmounts(amounts []*Quantity, factor float64) []*Quantity {
	out := make([]*Quantity, len(amounts))
	for i, q := range amounts {
		if !q.Numeric() {
			out[i] = q
			continue
		}
		out[i] = &Quantity{Value: q.Value * factor, Unit: q.Unit}
	}
	return out
}

// FormatQuantity renders a quantity for display: "200 g", "2 cups", "3".
// Values are rounded to two decimals. A nil quantity renders as "" and a
// Text quantity as its text.
func FormatQuantity(q *Quantity) string {
	if q == nil {
		return ""
	}
	if q.Text != "" {
		return q.Text
	}
	v := math.Round(q.Value*100) / 100
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if q.Unit == "" {
		return s
	}
	return s + " " + inflector.UnitDisplay(q.Unit, v)
}

// combine sums amounts per unit in order of first appearance. Distinct
// Text amounts follow the sums, then the nil marker.
func combine(amounts []*Quantity) []*Quantity {
	var (
		units        []string
		texts        []string
		sums         = make(map[string]float64)
		seenText     = make(map[string]bool)
		unquantified bool
	)
	for _, q := range amounts {
		if q == nil {
			unquantified = true
			continue
		}
		if q.Text != "" {
			if !seenText[q.Text] {
				seenText[q.Text] = true
				texts = append(texts, q.Text)
			}
			continue
		}
		if _, seen := sums[q.Unit]; !seen {
			units = append(units, q.Unit)
		}
		sums[q.Unit] += q.Value
	}

	out := make([]*Quantity, 0, len(units)+len(texts)+1)
	for _, u := range units {
		out = append(out, &Quantity{Value: sums[u], Unit: u})
	}
	for _, t := range texts {
		out = append(out, &Quantity{Text: t})
	}
	if unquantified || len(out) == 0 {
		out = append(out, nil)
	}
	return out
}

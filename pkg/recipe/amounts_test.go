package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateAmounts(t *testing.T) {
	tests := []struct {
		name string
		in   []Ingredient
		want []*Quantity
	}{
		{
			name: "same unit sums",
			in:   []Ingredient{{Name: "Butter", RawQuantity: "60 g"}, {Name: "Butter", RawQuantity: "140 g"}},
			want: []*Quantity{{Value: 200, Unit: "g"}},
		},
		{
			name: "order does not matter",
			in:   []Ingredient{{Name: "Butter", RawQuantity: "140 g"}, {Name: "Butter", RawQuantity: "60 g"}},
			want: []*Quantity{{Value: 200, Unit: "g"}},
		},
		{
			name: "unquantified preserved",
			in:   []Ingredient{{Name: "Oil", RawQuantity: "50 g"}, {Name: "Oil"}},
			want: []*Quantity{{Value: 50, Unit: "g"}, nil},
		},
		{
			name: "units kept apart and normalized",
			in: []Ingredient{
				{Name: "Sugar", RawQuantity: "1 cup"},
				{Name: "Sugar", RawQuantity: "2 tablespoons"},
				{Name: "Sugar", RawQuantity: "1 cups"},
			},
			want: []*Quantity{{Value: 2, Unit: "cup"}, {Value: 2, Unit: "tbsp"}},
		},
		{
			name: "empty input",
			in:   nil,
			want: []*Quantity{nil},
		},
		{
			name: "only unquantified",
			in:   []Ingredient{{Name: "Salt"}, {Name: "Salt"}},
			want: []*Quantity{nil},
		},
		{
			name: "text amounts kept once after sums",
			in: []Ingredient{
				{Name: "Salt", RawQuantity: "to taste"},
				{Name: "Salt", RawQuantity: "5g"},
				{Name: "Salt"},
				{Name: "Salt", RawQuantity: "to taste"},
			},
			want: []*Quantity{{Value: 5, Unit: "g"}, {Text: "to taste"}, nil},
		},
		{
			name: "mixed numbers and unspaced units",
			in: []Ingredient{
				{Name: "Sugar", RawQuantity: "1 1/2 cups"},
				{Name: "Sugar", RawQuantity: "1/2 cup"},
				{Name: "Sugar", RawQuantity: "100g"},
			},
			want: []*Quantity{{Value: 2, Unit: "cup"}, {Value: 100, Unit: "g"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateAmounts(tt.in))
		})
	}
}

func TestMergeAmounts(t *testing.T) {
	a := []*Quantity{{Value: 500, Unit: "g"}, nil}
	b := []*Quantity{{Value: 2, Unit: "cup"}, {Value: 250, Unit: "g"}}

	ab := MergeAmounts(a, b)
	assert.Equal(t, []*Quantity{{Value: 750, Unit: "g"}, {Value: 2, Unit: "cup"}, nil}, ab)

	ba := MergeAmounts(b, a)
	require.Len(t, ba, 3)
	assert.ElementsMatch(t, ab, ba)

	assert.Equal(t, []*Quantity{nil}, MergeAmounts(nil, nil))
	assert.Equal(t, []*Quantity{nil}, MergeAmounts([]*Quantity{nil}, []*Quantity{nil}))
}

func TestScaleAmounts(t *testing.T) {
	in := []*Quantity{{Value: 500, Unit: "g"}, {Text: "a pinch"}, nil}
	out := ScaleAmounts(in, 2)

	assert.Equal(t, []*Quantity{{Value: 1000, Unit: "g"}, {Text: "a pinch"}, nil}, out)
	assert.InDelta(t, 500, in[0].Value, 0, "input must not be modified")
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		q    *Quantity
		want string
	}{
		{nil, ""},
		{&Quantity{Value: 200, Unit: "g"}, "200 g"},
		{&Quantity{Value: 2, Unit: "cup"}, "2 cups"},
		{&Quantity{Value: 1, Unit: "cup"}, "1 cup"},
		{&Quantity{Value: 3}, "3"},
		{&Quantity{Value: 1.0 / 3, Unit: "tbsp"}, "0.33 tbsp"},
		{&Quantity{Text: "a pinch"}, "a pinch"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuantity(tt.q))
		})
	}
}

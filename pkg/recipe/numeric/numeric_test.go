package numeric

import (
	"errors"
	"math"
	"testing"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{name: "integer", input: "3", want: 3},
		{name: "decimal", input: "0.25", want: 0.25},
		{name: "padded", input: "  2 ", want: 2},
		{name: "fraction", input: "1/2", want: 0.5},
		{name: "decimal numerator", input: "1.5/3", want: 0.5},
		{name: "decimal denominator", input: "3/1.5", want: 2},
		{name: "spaced fraction", input: "3 / 4", want: 0.75},
		{name: "empty", input: "", wantErr: ErrEmpty},
		{name: "whitespace only", input: "   ", wantErr: ErrEmpty},
		{name: "word", input: "pinch", wantErr: ErrInvalid},
		{name: "bad numerator", input: "a/2", wantErr: ErrInvalid},
		{name: "bad denominator", input: "1/b", wantErr: ErrInvalid},
		{name: "missing denominator", input: "1/", wantErr: ErrEmpty},
		{name: "zero denominator", input: "1/0", wantErr: ErrDivisionByZero},
		{name: "decimal zero denominator", input: "1/0.0", wantErr: ErrDivisionByZero},
		{name: "double slash", input: "1/2/3", wantErr: ErrInvalid},
		{name: "nan", input: "NaN", wantErr: ErrInvalid},
		{name: "infinity", input: "Inf", wantErr: ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				if !cberrors.IsCode(err, cberrors.ErrCodeNumeric) {
					t.Errorf("Parse(%q) error code = %q, want NUMERIC", tt.input, cberrors.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional(nil)
	if err != nil || got != nil {
		t.Fatalf("ParseOptional(nil) = %v, %v; want nil, nil", got, err)
	}

	s := "3/4"
	got, err = ParseOptional(&s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != 0.75 {
		t.Fatalf("ParseOptional(%q) = %v, want 0.75", s, got)
	}

	bad := ""
	if _, err := ParseOptional(&bad); !errors.Is(err, ErrEmpty) {
		t.Fatalf("ParseOptional(\"\") error = %v, want ErrEmpty", err)
	}
}

func TestQuantityValue(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{raw: "500 g", want: 500, wantOK: true},
		{raw: "3", want: 3, wantOK: true},
		{raw: "1/2 cup", want: 0.5, wantOK: true},
		{raw: "2-3 cloves", want: 3, wantOK: true},
		{raw: "1–2 tbsp", want: 2, wantOK: true},
		{raw: "0.5 lb", want: 0.5, wantOK: true},
		{raw: "a pinch", wantOK: false},
		{raw: "", wantOK: false},
		{raw: "2- cups", wantOK: false},
		{raw: "1/0 cup", wantOK: false},
		{raw: "500g", want: 500, wantOK: true},
		{raw: "1 1/2 cups", want: 1.5, wantOK: true},
		{raw: "2 - 3 cloves", want: 3, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := QuantityValue(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("QuantityValue(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("QuantityValue(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitQuantity(t *testing.T) {
	tests := []struct {
		raw      string
		want     float64
		wantUnit string
		wantOK   bool
	}{
		{raw: "500 g", want: 500, wantUnit: "g", wantOK: true},
		{raw: "500g", want: 500, wantUnit: "g", wantOK: true},
		{raw: "1.5kg", want: 1.5, wantUnit: "kg", wantOK: true},
		{raw: "1 1/2 cups", want: 1.5, wantUnit: "cups", wantOK: true},
		{raw: "2 1/4", want: 2.25, wantOK: true},
		{raw: "1/2 cup", want: 0.5, wantUnit: "cup", wantOK: true},
		{raw: "2-3 cloves", want: 3, wantUnit: "cloves", wantOK: true},
		{raw: "2 12-oz cans", want: 2, wantUnit: "12-oz cans", wantOK: true},
		{raw: "3", want: 3, wantOK: true},
		{raw: "  4 slices ", want: 4, wantUnit: "slices", wantOK: true},
		{raw: "a pinch", wantOK: false},
		{raw: "to taste", wantOK: false},
		{raw: "1 1/0 cup", wantOK: false},
		{raw: ".", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, unit, ok := SplitQuantity(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("SplitQuantity(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SplitQuantity(%q) value = %v, want %v", tt.raw, got, tt.want)
			}
			if unit != tt.wantUnit {
				t.Errorf("SplitQuantity(%q) unit = %q, want %q", tt.raw, unit, tt.wantUnit)
			}
		})
	}
}

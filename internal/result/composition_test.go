package result

import (
	"testing"
)

func TestParseComposition(t *testing.T) {
	tests := []struct {
		name string
		want Composition
		id   string
		ok   bool
	}{
		{"Comp01_Al100_Fe00_Ni00", Composition{100, 0, 0}, "Al100Fe00Ni00", true},
		{"Comp07_Al00_Fe00_Ni100", Composition{0, 0, 100}, "Al00Fe00Ni100", true},
		{"Comp03_Al33_Fe33_Ni34", Composition{33, 33, 34}, "Al33Fe33Ni34", true},
		{"Al10Fe20Ni70", Composition{10, 20, 70}, "Al10Fe20Ni70", true},
		{"Comp01", Composition{}, "", false},
		{"Comp05_Al50_Fe00_Ni00", Composition{}, "", false}, // sums to 50
		{"random_dir", Composition{}, "", false},
	}
	for _, test := range tests {
		got, err := ParseComposition(test.name)
		if test.ok && err != nil {
			t.Errorf("ParseComposition(%q): unexpected error %v", test.name, err)
			continue
		}
		if !test.ok {
			if err == nil {
				t.Errorf("ParseComposition(%q): expected error", test.name)
			}
			continue
		}
		if got != test.want {
			t.Errorf("ParseComposition(%q) = %v, want %v", test.name, got, test.want)
		}
		if id := got.ID(); id != test.id {
			t.Errorf("ID() = %q, want %q", id, test.id)
		}
	}
}

func TestFractions(t *testing.T) {
	c := Composition{Al: 33, Fe: 33, Ni: 34}
	al, fe, ni := c.Fractions()
	if sum := al + fe + ni; sum != 1.0 {
		t.Errorf("fractions sum to %v, want 1.0", sum)
	}
	if al != 0.33 || fe != 0.33 || ni != 0.34 {
		t.Errorf("got %v %v %v", al, fe, ni)
	}
}

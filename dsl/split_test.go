package dsl

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitReaction(t *testing.T) {
	r, err := SplitReaction("X+Y > kk*X*Y/vol > @", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.Reactants) != 2 || r.Reactants[0] != "X" || r.Reactants[1] != "Y" {
		t.Errorf("reactants = %v, want [X Y]", r.Reactants)
	}
	if r.Propensity != "kk*X*Y/vol" {
		t.Errorf("propensity = %q, want %q", r.Propensity, "kk*X*Y/vol")
	}
	if r.Products != nil {
		t.Errorf("products = %v, want nil", r.Products)
	}
	if r.Index != 1 {
		t.Errorf("index = %d, want 1", r.Index)
	}
}

func TestSplitReactionEmptyReactants(t *testing.T) {
	r, err := SplitReaction("@ > k*vol > X", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Reactants != nil {
		t.Errorf("reactants = %v, want nil", r.Reactants)
	}
	if len(r.Products) != 1 || r.Products[0] != "X" {
		t.Errorf("products = %v, want [X]", r.Products)
	}
}

func TestSplitReactionMalformed(t *testing.T) {
	cases := []string{
		"X > mu*X",        // one separator
		"X mu*X @",        // no separator
		"X > a > b > @",   // three separators
		"",                // empty
	}

	for _, s := range cases {
		_, err := SplitReaction(s, 3)
		if !errors.Is(err, ErrMalformedReaction) {
			t.Errorf("SplitReaction(%q) error = %v, want ErrMalformedReaction", s, err)
		}
		if err != nil && !strings.Contains(err.Error(), "#3") {
			t.Errorf("SplitReaction(%q) error should carry reaction position, got %v", s, err)
		}
	}
}

func TestSplitTerms(t *testing.T) {
	tests := []struct {
		segment string
		want    []string
	}{
		{"X+Y", []string{"X", "Y"}},
		{" X + Y ", []string{"X", "Y"}},
		{"X+X", []string{"X", "X"}},
		{"@", nil},
		{"  ", nil},
		{"", nil},
	}

	for _, tc := range tests {
		got := SplitTerms(tc.segment)
		if len(got) != len(tc.want) {
			t.Errorf("SplitTerms(%q) = %v, want %v", tc.segment, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("SplitTerms(%q) = %v, want %v", tc.segment, got, tc.want)
			}
		}
	}
}

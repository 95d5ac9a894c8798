package text

import (
	"reflect"
	"testing"
)

func TestRules_Normalize(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Kansas City", "kansas city"},
		{"article removal", "The Cat", "cat"},
		{"interior article", "mayor of the city", "mayor of city"},
		{"all articles", "the a an", ""},
		{"non-breaking space", "William\u00a0Pitt", "william pitt"},
		{"trim punctuation", "  \"1897.\" ", "1897"},
		{"interior punctuation kept", "mid-19th century", "mid-19th century"},
		{"empty", "", ""},
		{"only punctuation", "?!.", ""},
		{"collapse whitespace", "three   rivers", "three rivers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRules_Normalize_Idempotent(t *testing.T) {
	rules := DefaultRules()

	inputs := []string{
		"The Carnegie Mellon University",
		"William\u00a0Pitt",
		"  \"1897.\" ",
		"",
		"three   rivers",
	}

	for _, in := range inputs {
		once := rules.Normalize(in)
		twice := rules.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestRules_Normalize_ArticleSymmetry(t *testing.T) {
	rules := DefaultRules()

	if rules.Normalize("the cat") != rules.Normalize("cat") {
		t.Error("expected \"the cat\" and \"cat\" to normalize identically")
	}
	if rules.Normalize("William\u00a0Pitt") != rules.Normalize("William Pitt") {
		t.Error("expected NBSP and space variants to normalize identically")
	}
}

func TestRules_Tokenize(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		in   string
		want map[string]int
	}{
		{"simple", "Kansas City", map[string]int{"kansas": 1, "city": 1}},
		{"hyphen splits", "mid-19th century", map[string]int{"mid": 1, "19th": 1, "century": 1}},
		{"repeat counts", "day after day", map[string]int{"day": 2, "after": 1}},
		{"articles dropped", "the 3 years", map[string]int{"3": 1, "years": 1}},
		{"empty", "", map[string]int{}},
		{"punctuation only", "...", map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBagOverlap(t *testing.T) {
	rules := DefaultRules()

	pred := rules.Tokenize("3 year")
	gold := rules.Tokenize("3 years")

	if got := BagOverlap(pred, gold); got != 1 {
		t.Errorf("expected overlap 1, got %d", got)
	}

	if got := BagOverlap(rules.Tokenize("day after day"), rules.Tokenize("day by day")); got != 2 {
		t.Errorf("expected multiset overlap 2, got %d", got)
	}

	if got := BagOverlap(rules.Tokenize(""), gold); got != 0 {
		t.Errorf("expected overlap 0 for empty bag, got %d", got)
	}
}

func TestBagSize(t *testing.T) {
	rules := DefaultRules()

	if got := BagSize(rules.Tokenize("day after day")); got != 3 {
		t.Errorf("expected size 3, got %d", got)
	}
	if got := BagSize(rules.Tokenize("")); got != 0 {
		t.Errorf("expected size 0, got %d", got)
	}
}

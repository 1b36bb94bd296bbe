package textnorm

import "testing"

func TestFold_CaseAndAccents(t *testing.T) {
	x := Fold("Session MAGNETIZE du jour")
	if x.Norm != "session magnetize du jour" {
		t.Fatalf("unexpected fold: %q", x.Norm)
	}

	x = Fold("Après-Demain")
	if x.Norm != "apres-demain" {
		t.Fatalf("accents should fold away: %q", x.Norm)
	}
}

func TestFold_WhitespaceCollapse(t *testing.T) {
	x := Fold("  Note   pour \t ALPHA ,   test  ")
	if x.Norm != "note pour alpha , test" {
		t.Fatalf("unexpected fold: %q", x.Norm)
	}
}

func TestSlice_PreservesOriginalCasing(t *testing.T) {
	in := "Session   MAGNETIZE du jour, test"
	x := Fold(in)
	// "magnetize" in the folded form
	const a, b = len("session "), len("session magnetize")
	if got := x.Norm[a:b]; got != "magnetize" {
		t.Fatalf("span setup wrong: %q", got)
	}
	if got := x.Slice(a, b); got != "MAGNETIZE" {
		t.Fatalf("expected original casing back, got %q", got)
	}
}

func TestSlice_MultilineSpan(t *testing.T) {
	in := "Beta, ligne une\nligne deux"
	x := Fold(in)
	a := len("beta, ")
	got := x.Slice(a, len(x.Norm))
	if got != "ligne une\nligne deux" {
		t.Fatalf("newlines must survive re-slicing: %q", got)
	}
}

func TestSlice_Bounds(t *testing.T) {
	x := Fold("abc")
	if x.Slice(2, 2) != "" || x.Slice(-1, 1) != "" || x.Slice(0, 99) != "" {
		t.Fatalf("out of range spans must return empty")
	}
}

func TestSlice_InvalidUTF8Repaired(t *testing.T) {
	// an invalid byte ahead of the span must not shift the offset map
	in := "\xffSession MAGNETIZE du jour, test"
	x := Fold(in)
	if x.Norm != "session magnetize du jour, test" {
		t.Fatalf("unexpected fold: %q", x.Norm)
	}
	const a, b = len("session "), len("session magnetize")
	if got := x.Slice(a, b); got != "MAGNETIZE" {
		t.Fatalf("offset map misaligned after repair, got %q", got)
	}
	if x.Original() != "Session MAGNETIZE du jour, test" {
		t.Fatalf("orig must be the repaired string, got %q", x.Original())
	}
}

func TestFold_Empty(t *testing.T) {
	if x := Fold(""); x.Norm != "" {
		t.Fatalf("empty in, empty out")
	}
	if x := Fold("   \n\t "); x.Norm != "" {
		t.Fatalf("pure whitespace folds to empty, got %q", x.Norm)
	}
}

package noteintent

import (
	"testing"

	"atelier/internal/core/notepattern"
)

func mustExtractor(t *testing.T) *Extractor {
	t.Helper()
	p, err := notepattern.Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	return New(p)
}

func TestExtract_SessionForm(t *testing.T) {
	e := mustExtractor(t)

	in, ok := e.Extract("Session MAGNETIZE du jour, test")
	if !ok {
		t.Fatalf("expected a match")
	}
	if in.ProjectName != "MAGNETIZE" {
		t.Fatalf("capture must keep original casing, got %q", in.ProjectName)
	}
	if in.Note != "test" {
		t.Fatalf("unexpected note %q", in.Note)
	}
}

func TestExtract_InvalidUTF8Prefix(t *testing.T) {
	e := mustExtractor(t)

	// stray invalid bytes must not shift the captured spans
	in, ok := e.Extract("\xffSession MAGNETIZE du jour, test")
	if !ok {
		t.Fatalf("expected a match")
	}
	if in.ProjectName != "MAGNETIZE" || in.Note != "test" {
		t.Fatalf("captures shifted: {%q %q}", in.ProjectName, in.Note)
	}
}

func TestExtract_FormPriority(t *testing.T) {
	e := mustExtractor(t)

	cases := []struct {
		text string
		name string
		note string
	}{
		{"Session Magnetize du jour : on avance", "Magnetize", "on avance"},
		{"Note pour Magnetize, mixer le refrain", "Magnetize", "mixer le refrain"},
		{"Ajoute une note à Magnetize : refaire la basse", "Magnetize", "refaire la basse"},
		{"ajoute note a Magnetize, ok pour mardi", "Magnetize", "ok pour mardi"},
		{"Note Magnetize : caler la batterie", "Magnetize", "caler la batterie"},
		{"Magnetize du jour - intro validée", "Magnetize", "intro validée"},
		{"Magnetize, passer en 128 bpm", "Magnetize", "passer en 128 bpm"},
	}
	for _, c := range cases {
		in, ok := e.Extract(c.text)
		if !ok {
			t.Fatalf("%q: expected a match", c.text)
		}
		if in.ProjectName != c.name || in.Note != c.note {
			t.Fatalf("%q: got {%q %q}, want {%q %q}", c.text, in.ProjectName, in.Note, c.name, c.note)
		}
	}
}

func TestExtract_SpacingAndCaseNoise(t *testing.T) {
	e := mustExtractor(t)

	in, ok := e.Extract("  sEsSiOn   Magnetize   DU   JOUR ,   la prod est propre ")
	if !ok {
		t.Fatalf("expected a match despite noise")
	}
	if in.ProjectName != "Magnetize" || in.Note != "la prod est propre" {
		t.Fatalf("got {%q %q}", in.ProjectName, in.Note)
	}
}

func TestExtract_MultilineNotePreserved(t *testing.T) {
	e := mustExtractor(t)

	in, ok := e.Extract("Magnetize du jour : idée\nrefaire l'intro")
	if !ok {
		t.Fatalf("expected a match")
	}
	if in.Note != "idée\nrefaire l'intro" {
		t.Fatalf("newlines inside the note must survive: %q", in.Note)
	}
}

func TestExtract_Rejections(t *testing.T) {
	e := mustExtractor(t)

	for _, text := range []string{
		"Session du jour, test",           // no name at all
		"session du jour, test",           // stoplisted words only
		"a du jour, test",                 // direct-form name too short / stoplisted
		"Session magnetize du jour, ",     // note under 2 chars after trim
		"Le, test",                        // stoplisted minimal form
		"xy, z",                           // minimal form name under 3 chars
		"Session magnetize du jour! test", // '!' is not a separator
		"juste une phrase sans commande",
		"",
	} {
		if in, ok := e.Extract(text); ok {
			t.Fatalf("%q: expected no match, got %+v", text, in)
		}
	}
}

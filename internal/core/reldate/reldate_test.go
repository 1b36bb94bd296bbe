package reldate

import (
	"testing"
	"time"
)

var anchor = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestResolve_Vocabulary(t *testing.T) {
	cases := []struct {
		phrase string
		want   string
	}{
		{"demain", "2024-01-02"},
		{"Demain", "2024-01-02"},
		{"tomorrow", "2024-01-02"},
		{"aujourd'hui", "2024-01-01"},
		{"today", "2024-01-01"},
		{"après-demain", "2024-01-03"},
		{"apres-demain", "2024-01-03"},
		{"day after tomorrow", "2024-01-03"},
		{"la semaine prochaine", "2024-01-08"},
		{"semaine pro", "2024-01-08"},
		{"next week", "2024-01-08"},
		{"  demain  ", "2024-01-02"},
	}
	for _, c := range cases {
		got, ok := Resolve(c.phrase, anchor)
		if !ok {
			t.Fatalf("Resolve(%q): expected a match", c.phrase)
		}
		if got != c.want {
			t.Fatalf("Resolve(%q) = %q, want %q", c.phrase, got, c.want)
		}
	}
}

func TestResolve_ISOPassthrough(t *testing.T) {
	got, ok := Resolve("2024-05-10", anchor)
	if !ok || got != "2024-05-10" {
		t.Fatalf("ISO dates must pass through, got %q ok=%v", got, ok)
	}
}

func TestResolve_Unknown(t *testing.T) {
	for _, phrase := range []string{"gibberish", "le 12", "2024-5-1", ""} {
		if got, ok := Resolve(phrase, anchor); ok {
			t.Fatalf("Resolve(%q) should not match, got %q", phrase, got)
		}
	}
}

func TestResolve_TimeOfDayIgnored(t *testing.T) {
	late := time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC)
	got, ok := Resolve("demain", late)
	if !ok || got != "2024-01-02" {
		t.Fatalf("time of day must not shift the day count, got %q", got)
	}
}

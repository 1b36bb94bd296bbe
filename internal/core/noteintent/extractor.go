// Package noteintent turns free-form French text into a note-update intent
package noteintent

import (
	"strings"
	"unicode/utf8"

	"atelier/internal/core/notepattern"
	"atelier/internal/core/textnorm"
)

// Intent is a validated note command: which project, what to note.
// Both fields keep the user's original casing and accents
type Intent struct {
	ProjectName string
	Note        string
}

// Extractor matches the ordered pattern pack against folded text.
// Stateless and safe for concurrent use
type Extractor struct {
	pack *notepattern.Pack
}

// New creates an Extractor over a loaded pack
func New(p *notepattern.Pack) *Extractor { return &Extractor{pack: p} }

// Extract returns the first valid intent produced by the pattern forms, or
// ok=false when the text is not a note command. Not matching is an expected
// outcome, never an error.
//
// Matching happens on the folded form; captures are re-sliced from the
// original text through the fold's offset map, so "Session MAGNETIZE du jour"
// yields ProjectName "MAGNETIZE" even though the pattern saw "magnetize"
func (e *Extractor) Extract(text string) (Intent, bool) {
	t := textnorm.Fold(text)
	if t.Norm == "" {
		return Intent{}, false
	}

	for _, form := range e.pack.Forms {
		m := form.Re.FindStringSubmatchIndex(t.Norm)
		if m == nil {
			continue
		}

		// folded candidate for validation, original slice for the result
		foldName := strings.TrimSpace(t.Norm[m[2]:m[3]])
		if utf8.RuneCountInString(foldName) < form.MinName {
			continue
		}
		if e.pack.Stoplisted(foldName) {
			continue
		}

		note := strings.TrimSpace(t.Slice(m[4], m[5]))
		if utf8.RuneCountInString(note) < 2 {
			// a syntactic match with no real note is discarded, not returned empty
			continue
		}

		name := strings.TrimSpace(t.Slice(m[2], m[3]))
		if name == "" {
			continue
		}
		return Intent{ProjectName: name, Note: note}, true
	}
	return Intent{}, false
}

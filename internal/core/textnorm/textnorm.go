// Package textnorm provides a deterministic text normalizer for command matching
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFD decomposition
// 3 Case folding
// 4 Remove combining marks (accent folding) and zero-width format chars
// 5 Width fold fullwidth to ASCII
// 6 Collapse whitespace runs to single spaces and trim
//
// Unlike a plain normalizer, Fold keeps a byte offset map from every
// normalized position back to the original string, so a span matched on the
// folded form can be re-sliced from the user's text with casing and accents
// intact. That mapping is the invariant the intent extractor relies on.
package textnorm

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFD,                           // decompose so accents become combining marks
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// Text is a folded string plus the offset map back into the original
type Text struct {
	// Norm is the folded form patterns are matched against
	Norm string

	orig  string
	start []int // start[i]: offset in orig of the source rune behind Norm byte i
	end   []int // end[i]: offset in orig just past that source rune (or space run)
}

// Fold normalizes s and records the offset map.
// The fold is applied rune by rune so every output byte stays attributable
// to the input rune that produced it
func Fold(s string) *Text {
	// repair before anything else: the offset map must index the same string
	// Slice reads from, so orig is the repaired form
	s = strings.ToValidUTF8(s, "")
	t := &Text{orig: s}
	if s == "" {
		return t
	}

	tr := chainPool.Get().(transform.Transformer)
	defer func() {
		tr.Reset()
		chainPool.Put(tr)
	}()

	var b strings.Builder
	b.Grow(len(s))

	emit := func(out string, a, z int) {
		for j := 0; j < len(out); j++ {
			t.start = append(t.start, a)
			t.end = append(t.end, z)
		}
		b.WriteString(out)
	}

	wsStart := -1 // start of a pending whitespace run, -1 when none
	wsEnd := 0
	flushWS := func() {
		if wsStart < 0 {
			return
		}
		if b.Len() > 0 { // drop leading whitespace entirely
			emit(" ", wsStart, wsEnd)
		}
		wsStart = -1
	}

	for i, r := range s {
		size := utf8.RuneLen(r)
		if unicode.IsSpace(r) {
			if wsStart < 0 {
				wsStart = i
			}
			wsEnd = i + size
			continue
		}
		flushWS()
		tr.Reset()
		out, _, err := transform.String(tr, string(r))
		if err != nil || out == "" {
			continue
		}
		emit(out, i, i+size)
	}
	// a pending run here is trailing whitespace, dropped on purpose

	t.Norm = b.String()
	return t
}

// Slice returns the original text behind the normalized span [a,b).
// Bounds are in bytes of Norm; an empty or inverted span yields ""
func (t *Text) Slice(a, b int) string {
	if a < 0 || b > len(t.Norm) || a >= b {
		return ""
	}
	return t.orig[t.start[a]:t.end[b-1]]
}

// Original returns the untouched input
func (t *Text) Original() string { return t.orig }

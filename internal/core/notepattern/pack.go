// Package notepattern loads and compiles the note command forms from the
// embedded patterns.json. Forms are ordered by priority; the extractor tries
// them first-match-wins. Patterns are written against folded text (lowercase,
// accents stripped, whitespace runs collapsed to single spaces), which is what
// textnorm.Fold produces
package notepattern

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

//go:embed patterns.json
var embedded []byte

type rawForm struct {
	ID      string `json:"id"`
	Pattern string `json:"pattern"`
	MinName int    `json:"min_name"`
}

type rawPack struct {
	Version  int       `json:"version"`
	Forms    []rawForm `json:"forms"`
	Stoplist []string  `json:"stoplist"`
}

// Form is one compiled command shape with two capture groups: name, note
type Form struct {
	ID      string
	Re      *regexp.Regexp
	MinName int // minimum rune length of the captured project name
}

// Pack is the compiled, immutable pattern set.
// Load it once at startup; it is never mutated afterwards
type Pack struct {
	Version int
	Forms   []Form

	stopset map[string]struct{}
}

// Load returns the compiled pack from the embedded patterns.json
func Load() (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("notepattern: parse patterns.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("notepattern: unsupported patterns.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version: rp.Version,
		Forms:   make([]Form, 0, len(rp.Forms)),
		stopset: make(map[string]struct{}, len(rp.Stoplist)),
	}

	// JSON order is priority order; do not sort
	for _, f := range rp.Forms {
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("notepattern: compile %q: %w", f.Pattern, err)
		}
		if re.NumSubexp() != 2 {
			return nil, fmt.Errorf("notepattern: form %q wants exactly 2 capture groups", f.ID)
		}
		minName := f.MinName
		if minName < 2 {
			minName = 2
		}
		p.Forms = append(p.Forms, Form{ID: f.ID, Re: re, MinName: minName})
	}

	for _, s := range rp.Stoplist {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			p.stopset[s] = struct{}{}
		}
	}

	return p, nil
}

// Stoplisted reports whether name is disallowed as a project name.
// name must already be folded (lowercase, accentless). A name is rejected when
// the whole string is a stoplist entry, or when every space-separated token is
// one - so "session du jour" cannot sneak through the minimal comma form as a
// three word "name"
func (p *Pack) Stoplisted(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}
	if _, ok := p.stopset[name]; ok {
		return true
	}
	toks := strings.Fields(name)
	if len(toks) < 2 {
		return false
	}
	for _, tok := range toks {
		if _, ok := p.stopset[tok]; !ok {
			return false
		}
	}
	return true
}
